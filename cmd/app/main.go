// @title Lootsmith API
// @version 1.0
// @description Procedural item generation service: weighted rarity rolls, modifier selection, stat aggregation and pricing.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tavernworks/lootsmith/internal/bootstrap"
	"github.com/tavernworks/lootsmith/internal/config"
	"github.com/tavernworks/lootsmith/internal/database"
	"github.com/tavernworks/lootsmith/internal/handler"
	"github.com/tavernworks/lootsmith/internal/loot"
	"github.com/tavernworks/lootsmith/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx := context.Background()

	var dbPool *pgxpool.Pool
	if cfg.DBEnabled {
		dbPool, err = database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
		if err != nil {
			slog.Error("Database connection failed", "error", err)
			os.Exit(1)
		}
	}

	lootService := loot.NewService()
	if err := bootstrap.LoadLootTables(ctx, cfg, lootService, dbPool); err != nil {
		slog.Error("Loot table loading failed", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	// The interface holds a typed nil when no pool exists; pass nil
	// explicitly so readiness degrades to liveness.
	var poolIface database.Pool
	if dbPool != nil {
		poolIface = dbPool
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, poolIface, lootService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: poolIface,
	})
}

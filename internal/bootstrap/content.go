package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tavernworks/lootsmith/internal/config"
	"github.com/tavernworks/lootsmith/internal/content"
	"github.com/tavernworks/lootsmith/internal/database/postgres"
	"github.com/tavernworks/lootsmith/internal/loot"
	"github.com/tavernworks/lootsmith/internal/metrics"
)

// LoadLootTables loads, validates, and registers the loot table
// configuration. With a database pool present, the file content is first
// synced into the admin-authored store and the registry is rebuilt from
// the store, so admin-added tables survive alongside file-authored ones.
// Registration must finish before the server starts serving generation
// requests; the registry takes no writes after this point.
func LoadLootTables(ctx context.Context, cfg *config.Config, svc loot.Service, dbPool *pgxpool.Pool) error {
	slog.Info(LogMsgLoadingLootTables)

	loader := content.NewLoader(cfg.ContentDir)
	configPath := filepath.Join(cfg.ContentDir, config.ConfigPathLootTables)

	tableConfig, err := loader.Load(configPath)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedLoadLootTables+": %w", err)
	}

	if err := loader.Validate(tableConfig); err != nil {
		return fmt.Errorf(ErrMsgInvalidLootTables+": %w", err)
	}

	tables := loader.ToDomain(tableConfig)

	if dbPool != nil {
		repo := postgres.NewTablesRepository(dbPool)

		syncResult, err := content.SyncToDatabase(ctx, tables, repo, configPath)
		if err != nil {
			return fmt.Errorf(ErrMsgFailedSyncLootTables+": %w", err)
		}
		if syncResult.TablesUpserted > 0 {
			slog.Info(LogMsgLootTablesSynced, "upserted", syncResult.TablesUpserted)
		} else {
			slog.Info(LogMsgLootTablesUnchanged)
		}

		tables, err = repo.GetAllTables(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgFailedReadStore+": %w", err)
		}
	}

	for _, table := range tables {
		svc.RegisterLootTable(ctx, table)
	}
	metrics.TablesRegistered.Set(float64(len(tables)))

	slog.Info(LogMsgTablesRegistered, "count", len(tables))
	return nil
}

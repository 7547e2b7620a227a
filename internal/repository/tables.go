package repository

import (
	"context"

	"github.com/tavernworks/lootsmith/internal/domain"
)

// Tables defines the persistence interface for the admin-authored loot
// table store. Generated items are never persisted; only the table
// definitions that feed the registry live here.
type Tables interface {
	UpsertTable(ctx context.Context, table domain.LootTable) error
	GetTable(ctx context.Context, id string) (*domain.LootTable, error)
	GetAllTables(ctx context.Context) ([]domain.LootTable, error)

	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/repository"
)

type tablesRepository struct {
	db *pgxpool.Pool
}

// NewTablesRepository creates a new PostgreSQL loot table repository.
// Table definitions are stored as one JSONB document per table: they are
// read whole at startup and never queried field-by-field, so a document
// column beats a relational decomposition here.
func NewTablesRepository(db *pgxpool.Pool) repository.Tables {
	return &tablesRepository{db: db}
}

// UpsertTable inserts or replaces a table definition by id
func (r *tablesRepository) UpsertTable(ctx context.Context, table domain.LootTable) error {
	query := `
		INSERT INTO loot_tables (table_id, definition, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (table_id) DO UPDATE
		SET definition = EXCLUDED.definition, updated_at = NOW()
	`

	definition, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal table %q: %w", table.ID, err)
	}

	_, err = r.db.Exec(ctx, query, table.ID, definition)
	return err
}

// GetTable retrieves one table definition by id
func (r *tablesRepository) GetTable(ctx context.Context, id string) (*domain.LootTable, error) {
	query := `SELECT definition FROM loot_tables WHERE table_id = $1`

	var definition []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&definition)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", domain.ErrTableNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	var table domain.LootTable
	if err := json.Unmarshal(definition, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table %q: %w", id, err)
	}
	return &table, nil
}

// GetAllTables retrieves every stored table definition
func (r *tablesRepository) GetAllTables(ctx context.Context) ([]domain.LootTable, error) {
	query := `SELECT definition FROM loot_tables ORDER BY table_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.LootTable
	for rows.Next() {
		var definition []byte
		if err := rows.Scan(&definition); err != nil {
			return nil, err
		}

		var table domain.LootTable
		if err := json.Unmarshal(definition, &table); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored table: %w", err)
		}
		tables = append(tables, table)
	}

	return tables, rows.Err()
}

// GetSyncMetadata retrieves the last sync record for a config file
func (r *tablesRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	query := `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata
		WHERE config_name = $1
	`

	var meta domain.SyncMetadata
	err := r.db.QueryRow(ctx, query, configName).Scan(
		&meta.ConfigName,
		&meta.LastSyncTime,
		&meta.FileHash,
		&meta.FileModTime,
	)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// UpsertSyncMetadata records a completed sync
func (r *tablesRepository) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	query := `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time
	`

	_, err := r.db.Exec(ctx, query, meta.ConfigName, meta.LastSyncTime, meta.FileHash, meta.FileModTime)
	return err
}

package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernworks/lootsmith/internal/domain"
)

// fakeTablesRepo is an in-memory stand-in for the postgres store.
type fakeTablesRepo struct {
	tables    map[string]domain.LootTable
	meta      map[string]*domain.SyncMetadata
	upsertErr error
}

func newFakeTablesRepo() *fakeTablesRepo {
	return &fakeTablesRepo{
		tables: make(map[string]domain.LootTable),
		meta:   make(map[string]*domain.SyncMetadata),
	}
}

func (f *fakeTablesRepo) UpsertTable(_ context.Context, table domain.LootTable) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.tables[table.ID] = table
	return nil
}

func (f *fakeTablesRepo) GetTable(_ context.Context, id string) (*domain.LootTable, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	return &t, nil
}

func (f *fakeTablesRepo) GetAllTables(_ context.Context) ([]domain.LootTable, error) {
	out := make([]domain.LootTable, 0, len(f.tables))
	for _, t := range f.tables {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTablesRepo) GetSyncMetadata(_ context.Context, configName string) (*domain.SyncMetadata, error) {
	m, ok := f.meta[configName]
	if !ok {
		return nil, errors.New("no metadata")
	}
	return m, nil
}

func (f *fakeTablesRepo) UpsertSyncMetadata(_ context.Context, meta *domain.SyncMetadata) error {
	f.meta[meta.ConfigName] = meta
	return nil
}

func TestSyncToDatabase(t *testing.T) {
	ctx := context.Background()
	tables := []domain.LootTable{
		{ID: "goblin_blade", Name: "Goblin Blade", ItemLevel: 10},
		{ID: "wolf_pelt_cloak", Name: "Wolf Pelt Cloak", ItemLevel: 6},
	}

	t.Run("first sync upserts everything", func(t *testing.T) {
		repo := newFakeTablesRepo()
		configPath := createTempFile(t, `{"version":"1.0"}`)

		result, err := SyncToDatabase(ctx, tables, repo, configPath)
		require.NoError(t, err)
		assert.Equal(t, 2, result.TablesUpserted)
		assert.Equal(t, 0, result.TablesSkipped)
		assert.Len(t, repo.tables, 2)

		meta, ok := repo.meta[ConfigFileName]
		require.True(t, ok, "sync metadata should be recorded")
		assert.NotEmpty(t, meta.FileHash)
		assert.False(t, meta.FileModTime.IsZero())
	})

	t.Run("unchanged file skips the write", func(t *testing.T) {
		repo := newFakeTablesRepo()
		configPath := createTempFile(t, `{"version":"1.0"}`)

		_, err := SyncToDatabase(ctx, tables, repo, configPath)
		require.NoError(t, err)

		result, err := SyncToDatabase(ctx, tables, repo, configPath)
		require.NoError(t, err)
		assert.Equal(t, 0, result.TablesUpserted)
		assert.Equal(t, 2, result.TablesSkipped)
	})

	t.Run("stale hash triggers resync", func(t *testing.T) {
		repo := newFakeTablesRepo()
		configPath := createTempFile(t, `{"version":"1.0"}`)

		_, err := SyncToDatabase(ctx, tables, repo, configPath)
		require.NoError(t, err)

		// Simulate metadata from a previous file revision.
		repo.meta[ConfigFileName].FileHash = "deadbeef"

		result, err := SyncToDatabase(ctx, tables, repo, configPath)
		require.NoError(t, err)
		assert.Equal(t, 2, result.TablesUpserted)
	})

	t.Run("missing config file fails", func(t *testing.T) {
		repo := newFakeTablesRepo()
		_, err := SyncToDatabase(ctx, tables, repo, "/nonexistent/loot_tables.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check config file")
	})

	t.Run("upsert failure aborts the sync", func(t *testing.T) {
		repo := newFakeTablesRepo()
		repo.upsertErr = errors.New("connection refused")
		configPath := createTempFile(t, `{"version":"1.0"}`)

		_, err := SyncToDatabase(ctx, tables, repo, configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "goblin_blade")
	})
}

func TestHasFileChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("mod time change alone triggers resync", func(t *testing.T) {
		repo := newFakeTablesRepo()
		configPath := createTempFile(t, `{"version":"1.0"}`)

		changed, hash, modTime, err := hasFileChanged(ctx, repo, configPath)
		require.NoError(t, err)
		assert.True(t, changed, "first look is always a change")

		repo.meta[ConfigFileName] = &domain.SyncMetadata{
			ConfigName:  ConfigFileName,
			FileHash:    hash,
			FileModTime: modTime.Add(-time.Hour),
		}

		changed, _, _, err = hasFileChanged(ctx, repo, configPath)
		require.NoError(t, err)
		assert.True(t, changed)
	})
}

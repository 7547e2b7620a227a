package loot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLootTable_ClonesInput(t *testing.T) {
	svc := NewService()
	table := goblinBladeTable()
	svc.RegisterLootTable(context.Background(), table)

	// Mutating the caller's copy after registration must not leak into
	// registered state.
	table.Name = "Tampered"
	table.BaseStats["damage"] = 999
	table.PrefixPools[0].Modifiers[0].Stats["damage"] = 999

	got, ok := svc.Table("goblin_blade")
	require.True(t, ok)
	assert.Equal(t, "Goblin Blade", got.Name)
	assert.Equal(t, 7.0, got.BaseStats["damage"])

	mod, ok := svc.Modifier("sharp")
	require.True(t, ok)
	assert.Equal(t, 5.0, mod.Stats["damage"])
}

func TestRegisterLootTable_Overwrite(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	svc.RegisterLootTable(ctx, goblinBladeTable())

	replacement := goblinBladeTable()
	replacement.ItemLevel = 42
	svc.RegisterLootTable(ctx, replacement)

	got, ok := svc.Table("goblin_blade")
	require.True(t, ok)
	assert.Equal(t, 42, got.ItemLevel)
	assert.Len(t, svc.Tables(), 1)
}

func TestRegistryLookups(t *testing.T) {
	svc := newGoblinService(t)

	t.Run("Pool lookup spans prefix and suffix pools", func(t *testing.T) {
		for _, id := range []string{"blade_prefixes_rare", "blade_prefixes_epic", "blade_suffixes_rare"} {
			_, ok := svc.Pool(id)
			assert.True(t, ok, id)
		}
	})

	t.Run("Misses report not found", func(t *testing.T) {
		_, ok := svc.Table("nope")
		assert.False(t, ok)
		_, ok = svc.Pool("nope")
		assert.False(t, ok)
		_, ok = svc.Modifier("nope")
		assert.False(t, ok)
	})
}

func TestLookups_ReturnClones(t *testing.T) {
	svc := newGoblinService(t)

	table, ok := svc.Table("goblin_blade")
	require.True(t, ok)
	table.BaseStats["damage"] = 999

	pool, ok := svc.Pool("blade_prefixes_rare")
	require.True(t, ok)
	pool.Modifiers[0].Stats["damage"] = 999

	mod, ok := svc.Modifier("sharp")
	require.True(t, ok)
	mod.Stats["damage"] = 999

	again, ok := svc.Table("goblin_blade")
	require.True(t, ok)
	assert.Equal(t, 7.0, again.BaseStats["damage"])

	freshMod, ok := svc.Modifier("sharp")
	require.True(t, ok)
	assert.Equal(t, 5.0, freshMod.Stats["damage"])
}

func TestTables_ReturnsClones(t *testing.T) {
	svc := newGoblinService(t)

	listed := svc.Tables()
	require.Len(t, listed, 1)
	listed[0].BaseStats["damage"] = 999

	got, ok := svc.Table("goblin_blade")
	require.True(t, ok)
	assert.Equal(t, 7.0, got.BaseStats["damage"])
}

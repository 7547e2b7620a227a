package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRarity(t *testing.T) {
	for _, rarity := range Rarities {
		parsed, ok := ParseRarity(string(rarity))
		assert.True(t, ok, rarity)
		assert.Equal(t, rarity, parsed)
	}

	for _, bad := range []string{"", "shiny", "COMMON", "Rare"} {
		_, ok := ParseRarity(bad)
		assert.False(t, ok, bad)
	}
}

func TestRarityOrdering(t *testing.T) {
	assert.Len(t, Rarities, 6)
	for i, rarity := range Rarities {
		assert.Equal(t, i, rarity.Index())
	}
	assert.Equal(t, -1, ItemRarity("shiny").Index())
}

func TestPriceMultiplier(t *testing.T) {
	// Strictly increasing across the tier order keeps pricing monotonic.
	for i := 1; i < len(Rarities); i++ {
		assert.Greater(t, Rarities[i].PriceMultiplier(), Rarities[i-1].PriceMultiplier())
	}

	assert.Equal(t, 1.0, RarityCommon.PriceMultiplier())
	assert.Equal(t, 50.0, RarityUnique.PriceMultiplier())
	assert.Equal(t, RarityCommon.PriceMultiplier(), ItemRarity("shiny").PriceMultiplier())
}

func TestPalette(t *testing.T) {
	t.Run("glow starts at rare", func(t *testing.T) {
		assert.Empty(t, RarityCommon.Palette().Glow)
		assert.Empty(t, RarityUncommon.Palette().Glow)
		for _, rarity := range Rarities[RarityRare.Index():] {
			assert.NotEmpty(t, rarity.Palette().Glow, rarity)
		}
	})

	t.Run("every tier has primary and secondary", func(t *testing.T) {
		for _, rarity := range Rarities {
			p := rarity.Palette()
			assert.NotEmpty(t, p.Primary, rarity)
			assert.NotEmpty(t, p.Secondary, rarity)
		}
	})

	t.Run("unknown tier falls back to common", func(t *testing.T) {
		assert.Equal(t, RarityCommon.Palette(), ItemRarity("shiny").Palette())
	})
}

package loot

import "github.com/tavernworks/lootsmith/internal/domain"

// rollRarity picks a tier from the table's drop-chance distribution.
//
// A forced rarity bypasses weighting entirely (guaranteed drops). Otherwise
// the draw lands in [0,100) and the six tiers are walked in ascending
// order, accumulating each tier's configured percentage; the first tier
// whose cumulative sum reaches the draw wins. If rounding drift or a
// misconfigured distribution leaves no winner, common is returned so a
// generation never aborts over a floating-point edge case.
func rollRarity(table *domain.LootTable, forced *domain.ItemRarity, draws *drawSource) domain.ItemRarity {
	if forced != nil {
		return *forced
	}

	roll := draws.next(drawLabelRarity) * 100

	cumulative := 0.0
	for _, rarity := range domain.Rarities {
		cumulative += table.DropChances[rarity]
		if cumulative >= roll {
			return rarity
		}
	}

	return domain.RarityCommon
}

package loot

import "github.com/tavernworks/lootsmith/internal/domain"

// aggregateStats folds the base stat set with every chosen modifier's
// deltas, key by key. Unseen keys initialize from zero. Prefixes apply
// before suffixes in selection order; aggregation is pure addition, so the
// order cannot change the final result.
func aggregateStats(base map[string]float64, prefixes, suffixes []domain.ItemModifier) map[string]float64 {
	stats := make(map[string]float64, len(base))
	for k, v := range base {
		stats[k] = v
	}

	for _, m := range prefixes {
		for k, v := range m.Stats {
			stats[k] += v
		}
	}
	for _, m := range suffixes {
		for k, v := range m.Stats {
			stats[k] += v
		}
	}

	return stats
}

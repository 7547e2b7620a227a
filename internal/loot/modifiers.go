package loot

import (
	"context"

	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/logger"
	"github.com/tavernworks/lootsmith/internal/metrics"
)

// modifierCounts resolves how many prefixes and suffixes one generation
// will request, before pool availability is known.
//
// Both counts come from a single shared draw, each scaled into its own
// [min,max]. Under a fixed seed this makes the two counts correlated by
// construction; reproducibility fixtures depend on exactly this stream, so
// the correlation is preserved rather than fixed. Flagged for game-design
// review: whether the original behavior was intentional is unknown.
func modifierCounts(bounds domain.ModifierBounds, minTotal, maxTotal int, draws *drawSource) (int, int) {
	u := draws.next(drawLabelModifierCount)

	prefixes := scaleToRange(u, bounds.MinPrefixes, bounds.MaxPrefixes)
	suffixes := scaleToRange(u, bounds.MinSuffixes, bounds.MaxSuffixes)

	// Top up toward the overall minimum, preferring prefixes, while each
	// kind still has headroom under its own max. Bounded by the per-kind
	// maxima so starvation can never loop.
	for prefixes+suffixes < minTotal {
		switch {
		case prefixes < bounds.MaxPrefixes:
			prefixes++
		case suffixes < bounds.MaxSuffixes:
			suffixes++
		default:
			return prefixes, suffixes
		}
	}

	// Clamp to the overall maximum, trimming suffixes first (mirror of the
	// prefix-preferred top-up).
	for prefixes+suffixes > maxTotal {
		if suffixes > 0 {
			suffixes--
		} else {
			prefixes--
		}
	}

	return prefixes, suffixes
}

// scaleToRange maps a uniform draw in [0,1) onto the inclusive [min,max].
func scaleToRange(u float64, min, max int) int {
	if max <= min {
		return min
	}
	return min + int(u*float64(max-min+1))
}

// selectModifiers picks up to count modifiers of one kind via weighted-pool
// sampling. Pools are weighted (operator-controlled thematic bias);
// modifiers within a pool are uniform (equally likely variants).
//
// Eligible pools match the rolled rarity and contain the effective item
// level in their [min,max] range. No eligible pools is not an error: some
// rarity/level combinations legitimately have no content. A pick whose
// chosen pool has no remaining eligible modifiers is skipped outright, with
// no substitution from another pool and no retry, so a request for N may
// yield fewer than N.
func selectModifiers(ctx context.Context, pools []domain.ModifierPool, rarity domain.ItemRarity, itemLevel, count int, chosen map[string]bool, kind string, draws *drawSource) []domain.ItemModifier {
	log := logger.FromContext(ctx)

	eligible := eligiblePools(pools, rarity, itemLevel)
	if len(eligible) == 0 {
		if count > 0 {
			log.Debug(LogMsgNoEligiblePools,
				LogFieldKind, kind,
				LogFieldRarity, string(rarity),
				LogFieldItemLevel, itemLevel)
		}
		return nil
	}

	totalWeight := 0.0
	for _, p := range eligible {
		totalWeight += p.Weight
	}

	var selected []domain.ItemModifier
	for i := 0; i < count; i++ {
		pool := pickPool(eligible, totalWeight, draws.next(drawLabelPool))

		candidates := eligibleModifiers(pool, itemLevel, chosen)
		if len(candidates) == 0 {
			log.Debug(LogMsgPoolStarvation, LogFieldKind, kind, "pool", pool.ID)
			metrics.ModifierStarvation.WithLabelValues(kind).Inc()
			continue
		}

		idx := int(draws.next(drawLabelModifier) * float64(len(candidates)))
		if idx >= len(candidates) {
			idx = len(candidates) - 1
		}

		mod := candidates[idx].Clone()
		chosen[mod.ID] = true
		selected = append(selected, mod)
	}

	return selected
}

func eligiblePools(pools []domain.ModifierPool, rarity domain.ItemRarity, itemLevel int) []*domain.ModifierPool {
	var out []*domain.ModifierPool
	for i := range pools {
		p := &pools[i]
		if p.Rarity != rarity {
			continue
		}
		if itemLevel < p.MinItemLevel || itemLevel > p.MaxItemLevel {
			continue
		}
		out = append(out, p)
	}
	return out
}

// pickPool walks the eligible pools' cumulative weights against a draw in
// [0,totalWeight). The last pool is the fallback on rounding drift, the
// same shape as the rarity roll; fixtures may depend on the fallback
// firing, so it stays.
func pickPool(eligible []*domain.ModifierPool, totalWeight, u float64) *domain.ModifierPool {
	roll := u * totalWeight

	cumulative := 0.0
	for _, p := range eligible {
		cumulative += p.Weight
		if cumulative >= roll {
			return p
		}
	}

	return eligible[len(eligible)-1]
}

func eligibleModifiers(pool *domain.ModifierPool, itemLevel int, chosen map[string]bool) []domain.ItemModifier {
	var out []domain.ItemModifier
	for _, m := range pool.Modifiers {
		if chosen[m.ID] {
			continue
		}
		if m.MinItemLevel > itemLevel {
			continue
		}
		out = append(out, m)
	}
	return out
}

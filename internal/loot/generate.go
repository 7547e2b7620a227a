package loot

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/logger"
	"github.com/tavernworks/lootsmith/internal/metrics"
)

// GenerateItem produces one randomized item instance from the named table.
//
// Generation runs on hot paths (combat and drop events), so the contract is
// "always return a result": an unknown table comes back as
// domain.ErrTableNotFound, and any unexpected internal fault is recovered
// and wrapped in domain.ErrGenerationFailed. Nothing escapes this entry
// point as a panic. Starvation — a rarity/level combination with no
// content — is not an error; the item simply carries fewer modifiers.
func (s *service) GenerateItem(ctx context.Context, tableID string, opts domain.GenerateOptions) (item *domain.GeneratedItem, err error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgGenerationRecover, LogFieldTable, tableID, "fault", r)
			item = nil
			err = fmt.Errorf("%w: %s: %v", domain.ErrGenerationFailed, ErrContextRecoveredPanic, r)
			metrics.GenerationFailures.WithLabelValues(metrics.ReasonInternalFault).Inc()
		}
	}()

	table, ok := s.tables[tableID]
	if !ok {
		metrics.GenerationFailures.WithLabelValues(metrics.ReasonUnknownTable).Inc()
		return nil, fmt.Errorf("%w: %s %q", domain.ErrTableNotFound, ErrContextUnknownTable, tableID)
	}

	draws := newDrawSource(s.rnd, opts.Seed)

	itemLevel := table.ItemLevel
	if opts.ItemLevel != nil {
		itemLevel = *opts.ItemLevel
	}

	rarity := rollRarity(table, opts.ForcedRarity, draws)

	bounds := table.Bounds[rarity]
	minTotal := bounds.MinPrefixes + bounds.MinSuffixes
	maxTotal := bounds.MaxPrefixes + bounds.MaxSuffixes
	if opts.MinModifiers != nil {
		minTotal = *opts.MinModifiers
	}
	if opts.MaxModifiers != nil {
		maxTotal = *opts.MaxModifiers
	}

	prefixCount, suffixCount := modifierCounts(bounds, minTotal, maxTotal, draws)

	chosen := make(map[string]bool)
	prefixes := selectModifiers(ctx, table.PrefixPools, rarity, itemLevel, prefixCount, chosen, KindPrefix, draws)
	suffixes := selectModifiers(ctx, table.SuffixPools, rarity, itemLevel, suffixCount, chosen, KindSuffix, draws)

	// Baseline stats only apply when the table's own declared base rarity
	// matches the rolled one; otherwise the fold starts empty.
	base := table.BaseStats
	if table.BaseRarity != rarity {
		base = nil
	}
	stats := aggregateStats(base, prefixes, suffixes)

	fullName := composeName(table.Name, prefixes, suffixes)
	price := basePrice(itemLevel, rarity)

	result := &domain.GeneratedItem{
		Template: domain.ItemTemplate{
			Code:          fmt.Sprintf("%s_%s", table.ID, rarity),
			Name:          table.Name,
			RequiredLevel: itemLevel,
			Price:         price,
		},
		BaseName:    table.Name,
		FullName:    fullName,
		Rarity:      rarity,
		ItemLevel:   itemLevel,
		Prefixes:    prefixes,
		Suffixes:    suffixes,
		Stats:       stats,
		Palette:     rarity.Palette(),
		GeneratedAt: time.Now(),
		Seed:        opts.Seed,
	}

	metrics.ItemsGenerated.WithLabelValues(table.ID, string(rarity)).Inc()
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	log.Debug(LogMsgItemGenerated,
		LogFieldTable, table.ID,
		LogFieldRarity, string(rarity),
		LogFieldItemLevel, itemLevel,
		"prefixes", len(prefixes),
		"suffixes", len(suffixes),
		LogFieldSeed, opts.Seed)

	return result, nil
}

// basePrice derives the sell price: floor(level * 10 * rarity multiplier).
// Monotonic by construction in both item level and rarity.
func basePrice(itemLevel int, rarity domain.ItemRarity) int {
	return int(math.Floor(float64(itemLevel) * PriceLevelFactor * rarity.PriceMultiplier()))
}

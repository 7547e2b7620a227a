package loot

import (
	"context"

	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/logger"
)

// RegisterLootTable deep-copies the table so registered state is immutable
// after construction, then flattens reachable pools and modifiers into the
// secondary indices. No structural validation happens here: invalid
// configurations surface later as generation results, never as
// registration failures, keeping registration cheap.
func (s *service) RegisterLootTable(ctx context.Context, table domain.LootTable) {
	log := logger.FromContext(ctx)

	if _, exists := s.tables[table.ID]; exists {
		log.Warn(LogMsgTableOverwritten, LogFieldTable, table.ID)
	}

	copied := table.Clone()
	s.tables[copied.ID] = &copied

	s.indexPools(copied.PrefixPools)
	s.indexPools(copied.SuffixPools)

	log.Info(LogMsgTableRegistered,
		LogFieldTable, copied.ID,
		"prefix_pools", len(copied.PrefixPools),
		"suffix_pools", len(copied.SuffixPools))
}

func (s *service) indexPools(pools []domain.ModifierPool) {
	for i := range pools {
		pool := &pools[i]
		s.pools[pool.ID] = pool
		for j := range pool.Modifiers {
			mod := &pool.Modifiers[j]
			s.modifiers[mod.ID] = mod
		}
	}
}

// Table returns a copy of the registered table with the given id. Callers
// may mutate the result without touching registered state.
func (s *service) Table(id string) (*domain.LootTable, bool) {
	t, ok := s.tables[id]
	if !ok {
		return nil, false
	}
	copied := t.Clone()
	return &copied, true
}

// Pool returns a copy of a flattened pool by id, from whichever table
// registered it last.
func (s *service) Pool(id string) (*domain.ModifierPool, bool) {
	p, ok := s.pools[id]
	if !ok {
		return nil, false
	}
	copied := p.Clone()
	return &copied, true
}

// Modifier returns a copy of a flattened modifier by id.
func (s *service) Modifier(id string) (*domain.ItemModifier, bool) {
	m, ok := s.modifiers[id]
	if !ok {
		return nil, false
	}
	copied := m.Clone()
	return &copied, true
}

// Tables returns copies of every registered table.
func (s *service) Tables() []domain.LootTable {
	out := make([]domain.LootTable, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t.Clone())
	}
	return out
}

package loot

import (
	"context"

	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/utils"
)

// Service is the loot registry plus generator.
//
// The registry is write-once-then-read-many shared state: register every
// table before spawning concurrent generation callers. Registration takes
// no lock; a multi-threaded host must complete setup single-threaded
// (typically at bootstrap) before serving generation reads.
type Service interface {
	// RegisterLootTable indexes a fully-formed table by id and flattens
	// every reachable pool and modifier into secondary indices.
	// Re-registration under the same id overwrites the prior entry.
	RegisterLootTable(ctx context.Context, table domain.LootTable)

	// GenerateItem produces one randomized item from the named table.
	// It never panics outward: unexpected internal faults are recovered
	// and converted into an error result.
	GenerateItem(ctx context.Context, tableID string, opts domain.GenerateOptions) (*domain.GeneratedItem, error)

	// Read-only registry views.
	Table(id string) (*domain.LootTable, bool)
	Pool(id string) (*domain.ModifierPool, bool)
	Modifier(id string) (*domain.ItemModifier, bool)
	Tables() []domain.LootTable
}

type service struct {
	tables    map[string]*domain.LootTable
	pools     map[string]*domain.ModifierPool
	modifiers map[string]*domain.ItemModifier

	// rnd is the unseeded uniform source, injectable for tests.
	rnd func() float64
}

// NewService creates an empty loot service.
func NewService() Service {
	return &service{
		tables:    make(map[string]*domain.LootTable),
		pools:     make(map[string]*domain.ModifierPool),
		modifiers: make(map[string]*domain.ItemModifier),
		rnd:       utils.RandomFloat,
	}
}

// NewServiceWithRand creates a loot service with a custom unseeded uniform
// source. Used by tests and benchmarks to pin the random stream.
func NewServiceWithRand(rnd func() float64) Service {
	svc := NewService().(*service)
	svc.rnd = rnd
	return svc
}

package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tavernworks/lootsmith/internal/config"
	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/validation"

	"encoding/json"
)

// Sentinel errors for the loot tables loader. Loader errors are
// configuration-time failures, distinct from the generator's defensive
// runtime results.
var (
	ErrDuplicateID   = errors.New("duplicate id")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for loot tables
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Tables []TableDef `json:"tables"`
}

// TableDef represents a single loot table definition in the JSON
type TableDef struct {
	ID          string               `json:"id"`
	Name        string               `json:"name,omitempty"`
	ItemLevel   int                  `json:"item_level"`
	BaseRarity  string               `json:"base_rarity,omitempty"`
	BaseStats   map[string]float64   `json:"base_stats,omitempty"`
	DropChances map[string]float64   `json:"drop_chances"`
	Bounds      map[string]BoundsDef `json:"bounds,omitempty"`
	PrefixPools []PoolDef            `json:"prefix_pools,omitempty"`
	SuffixPools []PoolDef            `json:"suffix_pools,omitempty"`
}

// BoundsDef represents per-rarity modifier count bounds
type BoundsDef struct {
	MinPrefixes int `json:"min_prefixes"`
	MaxPrefixes int `json:"max_prefixes"`
	MinSuffixes int `json:"min_suffixes"`
	MaxSuffixes int `json:"max_suffixes"`
}

// PoolDef represents a weighted modifier pool definition
type PoolDef struct {
	ID           string        `json:"id"`
	Rarity       string        `json:"rarity"`
	MinItemLevel int           `json:"min_item_level"`
	MaxItemLevel int           `json:"max_item_level"`
	Weight       float64       `json:"weight"`
	Modifiers    []ModifierDef `json:"modifiers"`
}

// ModifierDef represents a single modifier definition
type ModifierDef struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	MinItemLevel int                `json:"min_item_level"`
	Stats        map[string]float64 `json:"stats"`
}

// Loader handles loading and validating loot table configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(cfg *Config) error
	ToDomain(cfg *Config) []domain.LootTable
}

type lootLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a new Loader instance. contentDir is the directory
// holding the schema files.
func NewLoader(contentDir string) Loader {
	return &lootLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      filepath.Join(contentDir, config.ConfigPathLootTablesSchema),
	}
}

// Load reads and parses a loot tables JSON file, validating it against the
// schema first.
func (l *lootLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &cfg, nil
}

// Validate checks the loot table configuration for structural errors the
// schema cannot express: duplicate ids, unknown rarities, inverted bounds.
func (l *lootLoader) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(cfg.Tables) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoTablesDefined)
	}

	tableIDs := make(map[string]bool, len(cfg.Tables))
	for i := range cfg.Tables {
		table := &cfg.Tables[i]
		if err := l.validateTableDef(i, table, tableIDs); err != nil {
			return err
		}
	}

	return nil
}

func (l *lootLoader) validateTableDef(index int, table *TableDef, tableIDs map[string]bool) error {
	if table.ID == "" {
		return fmt.Errorf("%w: table at index %d has empty id", ErrInvalidConfig, index)
	}
	if tableIDs[table.ID] {
		return fmt.Errorf("%w: table '%s'", ErrDuplicateID, table.ID)
	}
	tableIDs[table.ID] = true

	if table.ItemLevel < 0 {
		return fmt.Errorf("%w: table '%s' has negative item level", ErrInvalidConfig, table.ID)
	}

	if table.BaseRarity != "" {
		if _, ok := domain.ParseRarity(table.BaseRarity); !ok {
			return fmt.Errorf("%w: table '%s' has unknown base rarity %q", ErrInvalidConfig, table.ID, table.BaseRarity)
		}
	}

	for rarity := range table.DropChances {
		if _, ok := domain.ParseRarity(rarity); !ok {
			return fmt.Errorf("%w: table '%s' has drop chance for unknown rarity %q", ErrInvalidConfig, table.ID, rarity)
		}
	}

	for rarity, bounds := range table.Bounds {
		if _, ok := domain.ParseRarity(rarity); !ok {
			return fmt.Errorf("%w: table '%s' has bounds for unknown rarity %q", ErrInvalidConfig, table.ID, rarity)
		}
		if bounds.MinPrefixes > bounds.MaxPrefixes || bounds.MinSuffixes > bounds.MaxSuffixes {
			return fmt.Errorf("%w: table '%s' rarity %q has min > max bounds", ErrInvalidConfig, table.ID, rarity)
		}
	}

	poolIDs := make(map[string]bool)
	modifierIDs := make(map[string]bool)
	for _, pools := range [][]PoolDef{table.PrefixPools, table.SuffixPools} {
		for i := range pools {
			if err := validatePoolDef(table.ID, &pools[i], poolIDs, modifierIDs); err != nil {
				return err
			}
		}
	}

	return nil
}

func validatePoolDef(tableID string, pool *PoolDef, poolIDs, modifierIDs map[string]bool) error {
	if pool.ID == "" {
		return fmt.Errorf("%w: table '%s' has pool with empty id", ErrInvalidConfig, tableID)
	}
	if poolIDs[pool.ID] {
		return fmt.Errorf("%w: pool '%s'", ErrDuplicateID, pool.ID)
	}
	poolIDs[pool.ID] = true

	if _, ok := domain.ParseRarity(pool.Rarity); !ok {
		return fmt.Errorf("%w: pool '%s' has unknown rarity %q", ErrInvalidConfig, pool.ID, pool.Rarity)
	}
	if pool.Weight <= 0 {
		return fmt.Errorf("%w: pool '%s' must have positive weight", ErrInvalidConfig, pool.ID)
	}
	if pool.MinItemLevel > pool.MaxItemLevel {
		return fmt.Errorf("%w: pool '%s' has inverted item-level range", ErrInvalidConfig, pool.ID)
	}

	for _, mod := range pool.Modifiers {
		if mod.ID == "" {
			return fmt.Errorf("%w: pool '%s' has modifier with empty id", ErrInvalidConfig, pool.ID)
		}
		if modifierIDs[mod.ID] {
			return fmt.Errorf("%w: modifier '%s'", ErrDuplicateID, mod.ID)
		}
		modifierIDs[mod.ID] = true
		if mod.Name == "" {
			return fmt.Errorf("%w: modifier '%s' has empty name", ErrInvalidConfig, mod.ID)
		}
	}

	return nil
}

// ToDomain converts validated definitions into domain loot tables.
// A table without an explicit display name derives one from its id
// ("goblin_blade" becomes "Goblin Blade").
func (l *lootLoader) ToDomain(cfg *Config) []domain.LootTable {
	tables := make([]domain.LootTable, 0, len(cfg.Tables))
	for i := range cfg.Tables {
		tables = append(tables, tableToDomain(&cfg.Tables[i]))
	}
	return tables
}

func tableToDomain(def *TableDef) domain.LootTable {
	name := def.Name
	if name == "" {
		name = DisplayNameFromID(def.ID)
	}

	baseRarity := domain.RarityCommon
	if r, ok := domain.ParseRarity(def.BaseRarity); ok {
		baseRarity = r
	}

	chances := make(map[domain.ItemRarity]float64, len(def.DropChances))
	for rarity, chance := range def.DropChances {
		if r, ok := domain.ParseRarity(rarity); ok {
			chances[r] = chance
		}
	}

	bounds := make(map[domain.ItemRarity]domain.ModifierBounds, len(def.Bounds))
	for rarity, b := range def.Bounds {
		if r, ok := domain.ParseRarity(rarity); ok {
			bounds[r] = domain.ModifierBounds{
				MinPrefixes: b.MinPrefixes,
				MaxPrefixes: b.MaxPrefixes,
				MinSuffixes: b.MinSuffixes,
				MaxSuffixes: b.MaxSuffixes,
			}
		}
	}

	return domain.LootTable{
		ID:          def.ID,
		Name:        name,
		ItemLevel:   def.ItemLevel,
		BaseRarity:  baseRarity,
		BaseStats:   def.BaseStats,
		DropChances: chances,
		Bounds:      bounds,
		PrefixPools: poolsToDomain(def.PrefixPools),
		SuffixPools: poolsToDomain(def.SuffixPools),
	}
}

func poolsToDomain(defs []PoolDef) []domain.ModifierPool {
	pools := make([]domain.ModifierPool, 0, len(defs))
	for _, def := range defs {
		rarity, _ := domain.ParseRarity(def.Rarity)
		mods := make([]domain.ItemModifier, 0, len(def.Modifiers))
		for _, m := range def.Modifiers {
			mods = append(mods, domain.ItemModifier{
				ID:           m.ID,
				Name:         m.Name,
				MinItemLevel: m.MinItemLevel,
				Stats:        m.Stats,
			})
		}
		pools = append(pools, domain.ModifierPool{
			ID:           def.ID,
			Rarity:       rarity,
			MinItemLevel: def.MinItemLevel,
			MaxItemLevel: def.MaxItemLevel,
			Weight:       def.Weight,
			Modifiers:    mods,
		})
	}
	return pools
}

// DisplayNameFromID derives a human-readable display name from a
// snake_case id.
func DisplayNameFromID(id string) string {
	words := strings.ReplaceAll(id, "_", " ")
	return cases.Title(language.English).String(words)
}

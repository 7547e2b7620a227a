package domain

import "time"

// ItemModifier is a named bundle of stat deltas that can attach to a
// generated item as a prefix or suffix. Immutable once registered.
type ItemModifier struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	MinItemLevel int                `json:"min_item_level"`
	Stats        map[string]float64 `json:"stats"`
}

// Clone returns a deep copy so generated items never alias registered state.
func (m ItemModifier) Clone() ItemModifier {
	out := m
	out.Stats = make(map[string]float64, len(m.Stats))
	for k, v := range m.Stats {
		out.Stats[k] = v
	}
	return out
}

// ModifierPool is a rarity- and level-scoped weighted collection of
// modifiers. A pool is only selectable when its Weight is positive.
type ModifierPool struct {
	ID           string         `json:"id"`
	Rarity       ItemRarity     `json:"rarity"`
	MinItemLevel int            `json:"min_item_level"`
	MaxItemLevel int            `json:"max_item_level"`
	Weight       float64        `json:"weight"`
	Modifiers    []ItemModifier `json:"modifiers"`
}

// Clone returns a deep copy of the pool and its modifiers.
func (p ModifierPool) Clone() ModifierPool {
	out := p
	out.Modifiers = make([]ItemModifier, len(p.Modifiers))
	for i, m := range p.Modifiers {
		out.Modifiers[i] = m.Clone()
	}
	return out
}

// ModifierBounds holds the per-rarity min/max counts for each modifier kind.
// Invariant: min <= max for each kind.
type ModifierBounds struct {
	MinPrefixes int `json:"min_prefixes"`
	MaxPrefixes int `json:"max_prefixes"`
	MinSuffixes int `json:"min_suffixes"`
	MaxSuffixes int `json:"max_suffixes"`
}

// LootTable is the top-level configuration for one item family: its
// drop-chance distribution across the six tiers, per-rarity modifier
// bounds, and every prefix/suffix pool reachable for any rarity.
// Drop chances should sum to 100; the roller tolerates drift.
type LootTable struct {
	ID          string                        `json:"id"`
	Name        string                        `json:"name"`
	ItemLevel   int                           `json:"item_level"`
	BaseRarity  ItemRarity                    `json:"base_rarity"`
	BaseStats   map[string]float64            `json:"base_stats"`
	DropChances map[ItemRarity]float64        `json:"drop_chances"`
	Bounds      map[ItemRarity]ModifierBounds `json:"bounds"`
	PrefixPools []ModifierPool                `json:"prefix_pools"`
	SuffixPools []ModifierPool                `json:"suffix_pools"`
}

// Clone returns a deep copy of the table and everything reachable from it.
func (t LootTable) Clone() LootTable {
	out := t
	out.BaseStats = make(map[string]float64, len(t.BaseStats))
	for k, v := range t.BaseStats {
		out.BaseStats[k] = v
	}
	out.DropChances = make(map[ItemRarity]float64, len(t.DropChances))
	for k, v := range t.DropChances {
		out.DropChances[k] = v
	}
	out.Bounds = make(map[ItemRarity]ModifierBounds, len(t.Bounds))
	for k, v := range t.Bounds {
		out.Bounds[k] = v
	}
	out.PrefixPools = make([]ModifierPool, len(t.PrefixPools))
	for i, p := range t.PrefixPools {
		out.PrefixPools[i] = p.Clone()
	}
	out.SuffixPools = make([]ModifierPool, len(t.SuffixPools))
	for i, p := range t.SuffixPools {
		out.SuffixPools[i] = p.Clone()
	}
	return out
}

// ItemTemplate is the derived template attached to a generated item.
// Code is "{tableID}_{rarity}".
type ItemTemplate struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	RequiredLevel int    `json:"required_level"`
	Price         int    `json:"price"`
}

// GeneratedItem is one rolled item instance. It is a snapshot with no
// back-reference to the table; ownership passes to the caller on return.
type GeneratedItem struct {
	Template    ItemTemplate       `json:"template"`
	BaseName    string             `json:"base_name"`
	FullName    string             `json:"full_name"`
	Rarity      ItemRarity         `json:"rarity"`
	ItemLevel   int                `json:"item_level"`
	Prefixes    []ItemModifier     `json:"prefixes"`
	Suffixes    []ItemModifier     `json:"suffixes"`
	Stats       map[string]float64 `json:"stats"`
	Palette     RarityPalette      `json:"palette"`
	GeneratedAt time.Time          `json:"generated_at"`
	Seed        string             `json:"seed,omitempty"`
}

// GenerateOptions are the optional per-call overrides for item generation.
// Nil pointer fields mean "use the table's configuration". A non-empty
// Seed makes the whole call deterministic.
type GenerateOptions struct {
	ItemLevel    *int        `json:"item_level,omitempty"`
	ForcedRarity *ItemRarity `json:"forced_rarity,omitempty"`
	MinModifiers *int        `json:"min_modifiers,omitempty"`
	MaxModifiers *int        `json:"max_modifiers,omitempty"`
	Seed         string      `json:"seed,omitempty"`
}

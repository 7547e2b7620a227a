package domain

// ItemRarity represents the quality tier of a generated item
type ItemRarity string

const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
	RarityUnique    ItemRarity = "unique"
)

// Rarities lists all tiers in ascending quality order. Cumulative-weight
// walks over a drop-chance distribution must iterate in this order.
var Rarities = []ItemRarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityUnique,
}

// rarityIndex maps ItemRarity to its position in the ascending order
var rarityIndex = map[ItemRarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityUnique:    5,
}

// priceMultipliers drive base-price derivation; strictly increasing with
// rarity so pricing stays monotonic by construction.
var priceMultipliers = map[ItemRarity]float64{
	RarityCommon:    1,
	RarityUncommon:  2,
	RarityRare:      5,
	RarityEpic:      10,
	RarityLegendary: 25,
	RarityUnique:    50,
}

// ParseRarity converts a string to an ItemRarity.
// Returns false for anything outside the six known tiers.
func ParseRarity(s string) (ItemRarity, bool) {
	r := ItemRarity(s)
	if _, ok := rarityIndex[r]; !ok {
		return "", false
	}
	return r, true
}

// Index returns the tier's position in ascending order, or -1 if unknown.
func (r ItemRarity) Index() int {
	if i, ok := rarityIndex[r]; ok {
		return i
	}
	return -1
}

// Valid reports whether the rarity is one of the six known tiers.
func (r ItemRarity) Valid() bool {
	_, ok := rarityIndex[r]
	return ok
}

// PriceMultiplier returns the pricing factor for the tier.
// Unknown tiers fall back to the common multiplier.
func (r ItemRarity) PriceMultiplier() float64 {
	if m, ok := priceMultipliers[r]; ok {
		return m
	}
	return priceMultipliers[RarityCommon]
}

// RarityPalette holds the display colors associated with a rarity tier.
// Glow is empty for tiers that do not glow.
type RarityPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Glow      string `json:"glow,omitempty"`
}

// rarityPalettes is the fixed presentation lookup. Purely cosmetic and
// deliberately free of randomness; glow starts at rare.
var rarityPalettes = map[ItemRarity]RarityPalette{
	RarityCommon:    {Primary: "#9d9d9d", Secondary: "#ffffff"},
	RarityUncommon:  {Primary: "#1eff00", Secondary: "#63ff4d"},
	RarityRare:      {Primary: "#0070dd", Secondary: "#4d9fff", Glow: "#66b3ff"},
	RarityEpic:      {Primary: "#a335ee", Secondary: "#c177ff", Glow: "#d9a6ff"},
	RarityLegendary: {Primary: "#ff8000", Secondary: "#ffa64d", Glow: "#ffc180"},
	RarityUnique:    {Primary: "#af6025", Secondary: "#d88a4a", Glow: "#ffd9a6"},
}

// Palette returns the display colors for the tier.
// Unknown tiers fall back to the common palette.
func (r ItemRarity) Palette() RarityPalette {
	if p, ok := rarityPalettes[r]; ok {
		return p
	}
	return rarityPalettes[RarityCommon]
}

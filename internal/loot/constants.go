package loot

// ============================================================================
// Pricing
// ============================================================================

// PriceLevelFactor is multiplied by item level before the rarity multiplier
// when deriving a base price: floor(level * PriceLevelFactor * multiplier).
const PriceLevelFactor = 10

// ============================================================================
// Seeded Draw Labels
// ============================================================================

// Draw labels discriminate the seeded draws inside one generation call so
// that every draw hashes to an independent value. The rarity roll, the
// shared modifier-count roll, and each pool/modifier pick carry their own
// label plus a per-call sequence number.
const (
	drawLabelRarity        = "rarity"
	drawLabelModifierCount = "modifier_count"
	drawLabelPool          = "pool"
	drawLabelModifier      = "modifier"
)

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during generation
const (
	ErrContextUnknownTable   = "unknown loot table"
	ErrContextRecoveredPanic = "recovered internal fault"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgTableRegistered   = "Loot table registered"
	LogMsgTableOverwritten  = "Loot table re-registered, previous entry overwritten"
	LogMsgItemGenerated     = "Item generated"
	LogMsgPoolStarvation    = "No eligible modifiers for pick, skipping"
	LogMsgNoEligiblePools   = "No eligible pools for rarity/level, empty selection"
	LogMsgGenerationRecover = "Item generation recovered from internal fault"
)

// Log field keys for structured logging
const (
	LogFieldTable     = "table"
	LogFieldRarity    = "rarity"
	LogFieldItemLevel = "item_level"
	LogFieldKind      = "kind"
	LogFieldSeed      = "seed"
)

// Modifier kinds, used in logs and metrics labels
const (
	KindPrefix = "prefix"
	KindSuffix = "suffix"
)

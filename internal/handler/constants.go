package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgGenerateItemFailed = "Failed to generate item"
	ErrMsgTableNotFoundHTTP  = "Loot table not found"
	ErrMsgPoolNotFoundHTTP   = "Modifier pool not found"
	ErrMsgModNotFoundHTTP    = "Modifier not found"

	ErrMsgInvalidLimit     = "Invalid limit parameter"
	ErrMsgInvalidItemLevel = "Item level must be positive"
	ErrMsgInvalidRarityArg = "Invalid rarity. Valid tiers: common, uncommon, rare, epic, legendary, unique"
)

// User-facing error messages for mapped service errors.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgTableNotFoundError = "Loot table not found"
	ErrMsgPoolNotFoundError  = "Modifier pool not found"
	ErrMsgModNotFoundError   = "Modifier not found"
	ErrMsgGenerationError    = "Item generation failed. Please try again"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
)

// Defaults for the recent-items endpoint.
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

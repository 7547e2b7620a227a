package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Registry errors
	ErrMsgTableNotFound    = "loot table not found"
	ErrMsgPoolNotFound     = "modifier pool not found"
	ErrMsgModifierNotFound = "modifier not found"

	// Generation errors
	ErrMsgGenerationFailed = "item generation failed"
	ErrMsgInvalidRarity    = "invalid rarity"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError     = "database error"
	ErrMsgConnectionTimeout = "connection timeout"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Registry errors
	ErrTableNotFound    = errors.New(ErrMsgTableNotFound)
	ErrPoolNotFound     = errors.New(ErrMsgPoolNotFound)
	ErrModifierNotFound = errors.New(ErrMsgModifierNotFound)

	// Generation errors
	ErrGenerationFailed = errors.New(ErrMsgGenerationFailed)
	ErrInvalidRarity    = errors.New(ErrMsgInvalidRarity)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
)

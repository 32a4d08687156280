package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgInvalidPaytable = "invalid paytable"

	// Invariant errors
	ErrMsgUnknownSymbol = "symbol not in paytable"

	// Session errors
	ErrMsgSessionEnded = "session has ended"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidConfig   = errors.New(ErrMsgInvalidConfig)
	ErrInvalidPaytable = errors.New(ErrMsgInvalidPaytable)

	// ErrUnknownSymbol means a spin produced a symbol the paytable does not know.
	// The spinner and paytable share one symbol set, so this is never a legitimate game state.
	ErrUnknownSymbol = errors.New(ErrMsgUnknownSymbol)

	ErrSessionEnded = errors.New(ErrMsgSessionEnded)
)

// Package errors provides error handling for patmint.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints on pattern mistakes
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrEmptyChoice) {
//	    // handle empty choice group
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll

	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for use across patmint.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidPattern indicates the pattern text failed to parse
	ErrInvalidPattern = New("invalid pattern")

	// ErrEmptyChoice indicates a choice group with no alternatives was
	// asked to generate a value
	ErrEmptyChoice = New("empty choice group")

	// ErrEmptySampleSet indicates a sample set with no characters was
	// asked to generate a value
	ErrEmptySampleSet = New("empty sample set")
)

// IsInvalidPatternError checks if an error is or wraps ErrInvalidPattern
func IsInvalidPatternError(err error) bool {
	return err != nil && Is(err, ErrInvalidPattern)
}

// IsEvaluationError reports whether an error is one of the runtime
// generation faults (as opposed to a parse-time fault).
func IsEvaluationError(err error) bool {
	return err != nil && IsAny(err, ErrEmptyChoice, ErrEmptySampleSet)
}

// NewInvalidPatternError creates an invalid-pattern error with a formatted message
func NewInvalidPatternError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidPattern, Newf(format, args...).Error())
}

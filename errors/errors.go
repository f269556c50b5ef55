// Package errors provides error handling for cegconf.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints on CLI failures
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := ids.Parse(id); err != nil {
//	    return errors.Wrap(err, "failed to parse node id")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "ids look like node-3")
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
	Join         = crdb.Join
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions and panics
var (
	AssertionFailedf    = crdb.AssertionFailedf
	IsAssertionFailure  = crdb.IsAssertionFailure
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors shared across cegconf.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidID indicates an identifier that cannot be parsed or violates the id rules
	ErrInvalidID = New("invalid id")

	// ErrInvalidName indicates an empty, blank or malformed element name
	ErrInvalidName = New("invalid name")

	// ErrDuplicateID indicates two siblings sharing the same id
	ErrDuplicateID = New("duplicate id")

	// ErrTextTooLong indicates a text value above the configured maximum
	ErrTextTooLong = New("text too long")

	// ErrUnknownKey indicates a registry key that does not exist
	ErrUnknownKey = New("unknown key")

	// ErrDrift indicates an exported registry that no longer matches the compiled values
	ErrDrift = New("registry drift")
)

// IsValidationError reports whether err wraps one of the element validation sentinels.
func IsValidationError(err error) bool {
	return err != nil && IsAny(err, ErrInvalidID, ErrInvalidName, ErrDuplicateID, ErrTextTooLong)
}

// NewInvalidIDError creates an invalid-id error with a formatted message
func NewInvalidIDError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidID, Newf(format, args...).Error())
}

// NewInvalidNameError creates an invalid-name error with a formatted message
func NewInvalidNameError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidName, Newf(format, args...).Error())
}

// Package errors provides error handling for btk-graph.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints for remediation
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
//	// Add hints for users
//	return errors.WithHint(err, "run 'btk-graph build' first")
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotBuilt) {
//	    // handle missing graph
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
)

// Common sentinel errors for use across btk-graph.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates the requested bookmark does not exist
	ErrNotFound = New("not found")

	// ErrNotBuilt indicates a persisted graph was requested before any
	// build has been saved. The remediation is to run a build.
	ErrNotBuilt = New("graph not built")

	// ErrEmptyGraph indicates an export format that requires at least one
	// edge was invoked against zero post-filter edges.
	ErrEmptyGraph = New("no edges at this threshold")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsNotBuiltError checks if an error is or wraps ErrNotBuilt
func IsNotBuiltError(err error) bool {
	return err != nil && Is(err, ErrNotBuilt)
}

// IsEmptyGraphError checks if an error is or wraps ErrEmptyGraph
func IsEmptyGraphError(err error) bool {
	return err != nil && Is(err, ErrEmptyGraph)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All methods return these sentinels and tests check them
// via errors.Is. No method panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when row data passed to a constructor is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

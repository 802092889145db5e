// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the algebra
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is.

package algebra

import "errors"

var (
	// ErrEmptySignature indicates a signature with no generators at all.
	ErrEmptySignature = errors.New("algebra: signature is empty")

	// ErrDegenerateSignature indicates a zero entry in the signature. Degenerate
	// metrics are not supported: every generator must square to +1 or -1.
	ErrDegenerateSignature = errors.New("algebra: signature entry is zero")

	// ErrTooManyGenerators guards the dense multiplication tables: beyond
	// MaxGenerators the 2ⁿ×2ⁿ×2ⁿ structure tensor no longer fits sane memory.
	ErrTooManyGenerators = errors.New("algebra: too many generators for dense tables")

	// ErrIndexRange indicates a basis index outside [0, 2ⁿ-1]. Indicates a
	// caller bug; surfaced immediately by the grade classifier and accessors.
	ErrIndexRange = errors.New("algebra: basis index out of range")

	// ErrBadGrade indicates a grade outside [0, n] passed to a mask or
	// projection helper.
	ErrBadGrade = errors.New("algebra: grade out of range")
)

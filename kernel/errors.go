// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the kernel
// package. All synthesis functions MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package kernel

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "kernel: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil tensor -> shape -> grade function -> grade domain -> vector length
// -> grade violation (opt-in, apply time).

var (
	// ErrNilTensor indicates that a nil *Tensor was passed to a synthesis
	// function. Synthesis must validate before touching the tensor.
	ErrNilTensor = errors.New("kernel: tensor is nil")

	// ErrShape is returned when tensor dimensions disagree with the requested
	// output dimensionality, or when a requested tensor shape is invalid
	// (dims <= 0). Surfaced at synthesis time, never at apply time.
	ErrShape = errors.New("kernel: tensor shape mismatch")

	// ErrTensorIndex indicates that a (k,l,m) index is outside valid bounds.
	// Public accessors (At/Set/Add) MUST return this, not panic.
	ErrTensorIndex = errors.New("kernel: tensor index out of range")

	// ErrNilGradeFunc indicates that SynthesizeSparse was given a nil grade
	// classifier. Filtering cannot proceed without one.
	ErrNilGradeFunc = errors.New("kernel: grade function is nil")

	// ErrGradeDomain indicates an invalid grade specification during sparse
	// synthesis: a grade outside [0, n], or an empty grade set under
	// WithStrictGrades. Fatal, surfaced at synthesis time.
	ErrGradeDomain = errors.New("kernel: grade set outside valid domain")

	// ErrVectorLen indicates that an operand passed to Kernel.Apply does not
	// match the kernel's dimensionality. Checked once, outside the term loop.
	ErrVectorLen = errors.New("kernel: coefficient vector length mismatch")

	// ErrGradeViolation is returned by Apply ONLY under WithGradeCheck when an
	// operand carries a nonzero coefficient outside its declared grade set.
	// Without the option the violation is silent by contract.
	ErrGradeViolation = errors.New("kernel: operand violates declared grade restriction")
)

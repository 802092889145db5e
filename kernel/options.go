// SPDX-License-Identifier: MIT

// Package kernel: functional configuration for kernel synthesis.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults then overrides.
//
// Design goals:
//   - Deterministic behavior: no global state, options only narrow behavior.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Zero hot-path cost by default: both switches default to off so the
//     synthesized kernel stays a flat loop over the term list.

package kernel

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in gatherOptions.
const (
	// DefaultStrictGrades controls whether an empty grade set is rejected at
	// synthesis time. false ⇒ an empty set is legal and yields a degenerate
	// kernel whose output is always the zero vector (queryable via
	// Kernel.Degenerate).
	DefaultStrictGrades = false

	// DefaultGradeCheck controls whether Apply verifies, per call, that each
	// operand is zero outside its declared grade set. false ⇒ violations are
	// silent by contract: the kernel under-accumulates and the caller owns
	// correctness. Enabling costs one O(dims) scan per operand per call.
	DefaultGradeCheck = false
)

// options carries the gathered synthesis configuration. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	strictGrades bool
	gradeCheck   bool
}

// Option mutates the synthesis configuration.
type Option func(*options)

// WithStrictGrades makes SynthesizeSparse fail with ErrGradeDomain when either
// grade set is empty, instead of returning a degenerate always-zero kernel.
// Use when an empty set can only mean a caller bug.
func WithStrictGrades() Option {
	return func(o *options) { o.strictGrades = true }
}

// WithGradeCheck makes the synthesized sparse kernel verify on every Apply
// that both operands respect their declared grade restriction, returning
// ErrGradeViolation instead of silently under-accumulating.
//
// This trades one branch-free O(dims) pass per operand for the contract
// guarantee the default mode leaves to the caller. Dense kernels ignore it.
func WithGradeCheck() Option {
	return func(o *options) { o.gradeCheck = true }
}

// gatherOptions applies defaults, then each Option in order.
func gatherOptions(opts ...Option) options {
	o := options{
		strictGrades: DefaultStrictGrades,
		gradeCheck:   DefaultGradeCheck,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

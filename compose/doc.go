// Package compose expresses derived geometric operations as compositions of
// product kernels and pure sign steps: rotor conjugation (Sandwich), duality
// (Dual), the meet (Vee), reversion and grade projection.
//
// Every composite is built once at setup from a Layout plus the kernels the
// caller chose to specialize, and is then a pure function safe for concurrent
// use — the same compile-once/call-many discipline as the kernel package.
//
// ⚙️ Usage:
//
//	l, _ := algebra.New(algebra.Euclidean(3))
//	sw, _ := compose.NewRotorSandwich(l) // even-grade-specialized pair
//	rotated, err := sw.Apply(rotor, vec)
//
// See example_test.go for dual/meet round trips.
package compose

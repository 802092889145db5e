// Package algebra defines metric signatures and the canonical blade layout of
// a geometric algebra, and builds the structure-constant tensors the kernel
// package compiles.
package algebra

// Signature lists the squares of the generator vectors: one entry per
// generator, positive meaning the generator squares to +1 and negative to -1.
// Magnitudes are irrelevant; only the sign is used. Zero entries (degenerate
// metrics) are rejected by New.
//
// Examples:
//
//	Signature{+1, +1, +1}     // 3-D Euclidean space
//	Signature{+1, -1, -1, -1} // spacetime algebra
type Signature []int

// Euclidean returns the signature of an n-dimensional Euclidean algebra:
// n generators, all squaring to +1. Validation happens in New.
func Euclidean(n int) Signature {
	sig := make(Signature, 0, max(n, 0))
	for i := 0; i < n; i++ {
		sig = append(sig, +1)
	}

	return sig
}

// Cl returns the signature of the Clifford algebra Cl(p,q): p generators
// squaring to +1 followed by q squaring to -1. Validation happens in New.
func Cl(p, q int) Signature {
	sig := make(Signature, 0, max(p, 0)+max(q, 0))
	for i := 0; i < p; i++ {
		sig = append(sig, +1)
	}
	for i := 0; i < q; i++ {
		sig = append(sig, -1)
	}

	return sig
}

// normalize returns the ±1 form of the signature, or a sentinel for an empty,
// degenerate or oversized one.
func (s Signature) normalize() ([]int, error) {
	if len(s) == 0 {
		return nil, ErrEmptySignature
	}
	if len(s) > MaxGenerators {
		return nil, ErrTooManyGenerators
	}

	norm := make([]int, len(s))
	for i, v := range s {
		switch {
		case v > 0:
			norm[i] = +1
		case v < 0:
			norm[i] = -1
		default:
			return nil, ErrDegenerateSignature
		}
	}

	return norm, nil
}

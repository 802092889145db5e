// Package compose: sign-vector involutions (reversion, complements).
// These are the pure sign/permutation steps composite operations wrap around
// product kernels; none of them multiplies blades, so none needs a kernel.
package compose

import (
	"fmt"

	"github.com/katalvlaran/gakernel/algebra"
)

// Reverser applies reversion (the ~ adjoint): each grade-r coefficient picks
// up the sign (-1)^(r(r-1)/2). A Reverser is immutable and safe for
// concurrent use.
type Reverser struct {
	signs []float64 // per-index reversion sign
}

// NewReverser precomputes the reversion sign vector for the layout.
// Returns ErrNilLayout on a nil layout. Complexity: O(2ⁿ).
func NewReverser(l *algebra.Layout) (*Reverser, error) {
	if l == nil {
		return nil, fmt.Errorf("NewReverser: %w", ErrNilLayout)
	}

	signs := make([]float64, l.BladeCount())
	gradeOf := l.GradeFunc()
	for i := range signs {
		g := gradeOf(i)
		if (g*(g-1)/2)%2 == 0 {
			signs[i] = +1
		} else {
			signs[i] = -1
		}
	}

	return &Reverser{signs: signs}, nil
}

// Apply returns the reversed coefficient vector, freshly allocated.
// Returns ErrDimsMismatch on operand length mismatch. Complexity: O(2ⁿ).
func (r *Reverser) Apply(x []float64) ([]float64, error) {
	if len(x) != len(r.signs) {
		return nil, fmt.Errorf("Reverser.Apply: got %d, want %d: %w", len(x), len(r.signs), ErrDimsMismatch)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * r.signs[i]
	}

	return out, nil
}

// complementSigns builds the sign list of the right (or left) complement:
// the map sending blade i to its bitmap complement N-1-i with the sign that
// makes b_i ∧ rc(b_i) = I (respectively lc(b_i) ∧ b_i = I).
//
// The sign is read off the outer table: the pseudoscalar coefficient of the
// wedge of the two complementary blades, which is always ±1.
func complementSigns(l *algebra.Layout, left bool) []float64 {
	n := l.BladeCount()
	ps := l.PseudoscalarIndex()
	outer := l.OuterTensor()

	signs := make([]float64, n)
	var w float64
	for i := 0; i < n; i++ {
		j := n - 1 - i
		if left {
			w, _ = outer.At(j, ps, i) // lc: complement wedged on the left
		} else {
			w, _ = outer.At(i, ps, j) // rc: complement wedged on the right
		}
		signs[i] = w // w ∈ {+1, -1}: complementary blades share no generator
	}

	return signs
}

// applyComplement maps x[i] to slot N-1-i with the given sign list.
func applyComplement(signs, x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i, v := range x {
		out[n-1-i] = signs[i] * v
	}

	return out
}

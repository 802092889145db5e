package compose

import (
	"fmt"

	"github.com/katalvlaran/gakernel/algebra"
	"github.com/katalvlaran/gakernel/kernel"
)

// Composite Operations
//
// Description:
//
//	Higher-level geometric operations factor into one or two product
//	kernels plus a pure sign/permutation step and, for duality-based
//	operations, the pseudoscalar's own coefficient vector as a fixed
//	operand:
//	  - Sandwich:     R x ~R          (two geometric products + reversion)
//	  - Dual:         x I⁻¹           (one geometric product, fixed operand)
//	  - Vee (meet):   lc(rc(a)∧rc(b)) (one outer product + complements)
//	  - Projection:   ⟨x⟩_r           (pure mask, no kernel at all)
//
//	Each composite is itself eligible for kernel specialization: pass
//	grade-sparse kernels wherever the operands' grade support is known
//	(NewRotorSandwich does exactly that). Fusing a composite into a single
//	larger term list is a further optimization, not attempted here.
//
// All composite values are immutable after construction and safe for
// concurrent Apply, since they only ever call pure kernels and allocate
// fresh vectors.

// Sandwich computes the conjugation R x ~R, the rotor application map.
// The left kernel multiplies R·x, the right kernel multiplies (Rx)·~R; both
// must be geometric-product kernels over the same layout.
type Sandwich struct {
	left  *kernel.Kernel // computes R · x
	right *kernel.Kernel // computes (Rx) · ~R
	rev   *Reverser
}

// NewSandwich builds the conjugation from an explicit kernel pair, letting
// the caller choose the specialization of each side.
// Stage 1 (Validate): non-nil layout and kernels, agreeing dimensionality.
// Stage 2 (Prepare): precompute the reversion sign vector.
// Complexity: O(2ⁿ) setup.
func NewSandwich(l *algebra.Layout, left, right *kernel.Kernel) (*Sandwich, error) {
	if l == nil {
		return nil, fmt.Errorf("NewSandwich: %w", ErrNilLayout)
	}
	if left == nil || right == nil {
		return nil, fmt.Errorf("NewSandwich: %w", ErrNilKernel)
	}
	if left.Dims() != l.BladeCount() || right.Dims() != l.BladeCount() {
		return nil, fmt.Errorf("NewSandwich: kernels %d×%d vs layout %d: %w",
			left.Dims(), right.Dims(), l.BladeCount(), ErrDimsMismatch)
	}
	rev, err := NewReverser(l)
	if err != nil {
		return nil, fmt.Errorf("NewSandwich: %w", err)
	}

	return &Sandwich{left: left, right: right, rev: rev}, nil
}

// NewRotorSandwich builds the conjugation specialized for rotor R: the left
// kernel keeps only even-grade rows for R, the right kernel only even-grade
// columns for ~R (reversion preserves grade, so ~R is even-grade too).
//
// PRECONDITION: R passed to Apply must genuinely populate only even grades;
// the sparse kernels silently under-accumulate otherwise.
func NewRotorSandwich(l *algebra.Layout) (*Sandwich, error) {
	if l == nil {
		return nil, fmt.Errorf("NewRotorSandwich: %w", ErrNilLayout)
	}
	n, dims, gradeOf := l.Generators(), l.BladeCount(), l.GradeFunc()

	left, err := kernel.SynthesizeSparse(l.GeometricTensor(), dims, gradeOf,
		kernel.EvenGrades(n), kernel.AllGrades(n))
	if err != nil {
		return nil, fmt.Errorf("NewRotorSandwich: %w", err)
	}
	right, err := kernel.SynthesizeSparse(l.GeometricTensor(), dims, gradeOf,
		kernel.AllGrades(n), kernel.EvenGrades(n))
	if err != nil {
		return nil, fmt.Errorf("NewRotorSandwich: %w", err)
	}

	return NewSandwich(l, left, right)
}

// Apply computes R x ~R. Complexity: two kernel applications plus one O(2ⁿ)
// sign pass; three fresh vectors, no shared state.
func (s *Sandwich) Apply(r, x []float64) ([]float64, error) {
	rx, err := s.left.Apply(r, x)
	if err != nil {
		return nil, fmt.Errorf("Sandwich.Apply: %w", err)
	}
	rrev, err := s.rev.Apply(r)
	if err != nil {
		return nil, fmt.Errorf("Sandwich.Apply: %w", err)
	}
	out, err := s.right.Apply(rx, rrev)
	if err != nil {
		return nil, fmt.Errorf("Sandwich.Apply: %w", err)
	}

	return out, nil
}

// Dual computes x I⁻¹: right multiplication by the inverse pseudoscalar as a
// fixed operand of a geometric-product kernel.
type Dual struct {
	geo  *kernel.Kernel
	iinv []float64
}

// NewDual builds the dual map from a geometric-product kernel over l.
// A grade-sparse kernel restricted on the right to the pseudoscalar's grade
// works just as well as a dense one, since the fixed operand has exactly one
// populated slot.
func NewDual(l *algebra.Layout, geo *kernel.Kernel) (*Dual, error) {
	if l == nil {
		return nil, fmt.Errorf("NewDual: %w", ErrNilLayout)
	}
	if geo == nil {
		return nil, fmt.Errorf("NewDual: %w", ErrNilKernel)
	}
	if geo.Dims() != l.BladeCount() {
		return nil, fmt.Errorf("NewDual: kernel %d vs layout %d: %w", geo.Dims(), l.BladeCount(), ErrDimsMismatch)
	}

	return &Dual{geo: geo, iinv: l.PseudoscalarInverse()}, nil
}

// Apply returns the dual of x.
func (d *Dual) Apply(x []float64) ([]float64, error) {
	out, err := d.geo.Apply(x, d.iinv)
	if err != nil {
		return nil, fmt.Errorf("Dual.Apply: %w", err)
	}

	return out, nil
}

// Vee computes the meet (regressive product) a ∨ b = lc(rc(a) ∧ rc(b)),
// built from the outer-product kernel and the two complement sign maps.
// The complement route avoids invoking the metric for a product that is
// itself non-metric.
type Vee struct {
	outer *kernel.Kernel
	rc    []float64 // right-complement signs, per source index
	lc    []float64 // left-complement signs, per source index
}

// NewVee builds the meet from an outer-product kernel over l.
func NewVee(l *algebra.Layout, outer *kernel.Kernel) (*Vee, error) {
	if l == nil {
		return nil, fmt.Errorf("NewVee: %w", ErrNilLayout)
	}
	if outer == nil {
		return nil, fmt.Errorf("NewVee: %w", ErrNilKernel)
	}
	if outer.Dims() != l.BladeCount() {
		return nil, fmt.Errorf("NewVee: kernel %d vs layout %d: %w", outer.Dims(), l.BladeCount(), ErrDimsMismatch)
	}

	return &Vee{
		outer: outer,
		rc:    complementSigns(l, false),
		lc:    complementSigns(l, true),
	}, nil
}

// Apply computes a ∨ b.
func (v *Vee) Apply(a, b []float64) ([]float64, error) {
	if len(a) != len(v.rc) || len(b) != len(v.rc) {
		return nil, fmt.Errorf("Vee.Apply: got %d×%d, want %d: %w", len(a), len(b), len(v.rc), ErrDimsMismatch)
	}

	w, err := v.outer.Apply(applyComplement(v.rc, a), applyComplement(v.rc, b))
	if err != nil {
		return nil, fmt.Errorf("Vee.Apply: %w", err)
	}

	return applyComplement(v.lc, w), nil
}

// Projector extracts the grade-r part of a multivector: a pure mask over the
// coefficient vector, no kernel involved.
type Projector struct {
	mask []bool
}

// NewGradeProject builds the grade-r projector for l.
// Returns algebra.ErrBadGrade (wrapped) for r outside [0, n].
func NewGradeProject(l *algebra.Layout, r int) (*Projector, error) {
	if l == nil {
		return nil, fmt.Errorf("NewGradeProject: %w", ErrNilLayout)
	}
	mask, err := l.GradeMask(r)
	if err != nil {
		return nil, fmt.Errorf("NewGradeProject: %w", err)
	}

	return &Projector{mask: mask}, nil
}

// Apply returns ⟨x⟩_r, freshly allocated.
func (p *Projector) Apply(x []float64) ([]float64, error) {
	if len(x) != len(p.mask) {
		return nil, fmt.Errorf("Projector.Apply: got %d, want %d: %w", len(x), len(p.mask), ErrDimsMismatch)
	}

	out := make([]float64, len(x))
	for i, keep := range p.mask {
		if keep {
			out[i] = x[i]
		}
	}

	return out, nil
}

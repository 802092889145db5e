// SPDX-License-Identifier: MIT
// Package algebra: canonical blade layout.
//
// Purpose:
//   - Fix the canonical coefficient-vector ordering: ascending grade, then
//     ascending generator bitmap within a grade (scalar first, pseudoscalar
//     last).
//   - Precompute the grade-boundary offsets (binomial counts) that back the
//     grade classifier.
//   - Own the structure-constant tensors handed to the kernel package.

package algebra

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/gakernel/kernel"
)

// MaxGenerators caps the algebra size. The dense structure tensor holds 8ⁿ
// entries; eight generators (a 256-blade algebra, 134 MB per table) is the
// point past which dense tables stop being a reasonable trade.
const MaxGenerators = 8

// Layout is the immutable description of one geometric algebra: its
// normalized signature, the canonical blade ordering, the grade classifier
// data and the multiplication tables. Build one per algebra at setup time and
// share it freely; all methods on a fully constructed Layout are read-only.
//
// Construction of the derived product tables is lazy and NOT synchronized:
// per the compile-once/call-many model, synthesize every kernel you need
// during single-threaded setup before going concurrent.
type Layout struct {
	sig    []int // normalized ±1 signature, one entry per generator
	n      int   // generator count
	count  int   // blade count, 2ⁿ
	grades []int // grade per linear index
	offset []int // offset[r] = first linear index of grade r; len n+2, offset[n+1] = count

	idxToBitmap []uint // linear index -> generator bitmap
	bitmapToIdx []int  // generator bitmap -> linear index

	geo, outer, inner, leftContract *kernel.Tensor // built on demand, then cached
}

// New validates sig and builds the Layout: blade ordering, grade offsets and
// the geometric-product tensor.
// Stage 1 (Validate): non-empty, non-degenerate, within MaxGenerators.
// Stage 2 (Order): sort bitmaps by (grade, bitmap) into the canonical order.
// Stage 3 (Tables): precompute grade offsets; fill the geometric tensor.
// Complexity: O(4ⁿ) time for the table, O(8ⁿ) memory for the tensor.
func New(sig Signature) (*Layout, error) {
	norm, err := sig.normalize()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	l := &Layout{sig: norm, n: len(norm), count: 1 << len(norm)}

	// Canonical order: ascending grade, then ascending bitmap within a grade.
	l.idxToBitmap = make([]uint, l.count)
	for b := 0; b < l.count; b++ {
		l.idxToBitmap[b] = uint(b)
	}
	sort.Slice(l.idxToBitmap, func(i, j int) bool {
		bi, bj := l.idxToBitmap[i], l.idxToBitmap[j]
		gi, gj := bits.OnesCount(bi), bits.OnesCount(bj)
		if gi != gj {
			return gi < gj
		}

		return bi < bj
	})

	l.bitmapToIdx = make([]int, l.count)
	l.grades = make([]int, l.count)
	for idx, bm := range l.idxToBitmap {
		l.bitmapToIdx[bm] = idx
		l.grades[idx] = bits.OnesCount(bm)
	}

	// Grade boundaries: offset[r] = Σ C(n, s) for s < r. With the canonical
	// order, indices [offset[r], offset[r+1]) are exactly the grade-r blades.
	l.offset = make([]int, l.n+2)
	for r := 0; r <= l.n; r++ {
		l.offset[r+1] = l.offset[r] + binomial(l.n, r)
	}

	l.geo = l.buildGeometricTensor()

	return l, nil
}

// Generators returns n, the number of generator vectors. Complexity: O(1).
func (l *Layout) Generators() int { return l.n }

// BladeCount returns 2ⁿ, the coefficient-vector length. Complexity: O(1).
func (l *Layout) BladeCount() int { return l.count }

// Signature returns a copy of the normalized ±1 signature.
func (l *Layout) Signature() Signature {
	out := make(Signature, l.n)
	for i, v := range l.sig {
		out[i] = v
	}

	return out
}

// Grade classifies a canonical basis index into its grade by walking the
// precomputed grade-boundary offsets. Returns ErrIndexRange for indices
// outside [0, 2ⁿ-1]. Complexity: O(n).
func (l *Layout) Grade(index int) (int, error) {
	if index < 0 || index >= l.count {
		return 0, fmt.Errorf("Grade(%d): blade count %d: %w", index, l.count, ErrIndexRange)
	}
	r := 0
	for index >= l.offset[r+1] {
		r++
	}

	return r, nil
}

// GradeFunc returns the classifier in the form the kernel synthesizer
// consumes: a plain total function over valid indices. Callers must keep
// indices in [0, 2ⁿ); use Grade for the checked variant.
func (l *Layout) GradeFunc() kernel.GradeFunc {
	grades := l.grades // immutable after New

	return func(index int) int { return grades[index] }
}

// GradeMask reports, per basis index, membership in grade r.
// Returns ErrBadGrade for r outside [0, n]. Complexity: O(2ⁿ).
func (l *Layout) GradeMask(r int) ([]bool, error) {
	if r < 0 || r > l.n {
		return nil, fmt.Errorf("GradeMask(%d): top grade %d: %w", r, l.n, ErrBadGrade)
	}
	mask := make([]bool, l.count)
	for i := l.offset[r]; i < l.offset[r+1]; i++ {
		mask[i] = true
	}

	return mask, nil
}

// GeometricTensor returns the structure-constant tensor of the full geometric
// product. The returned tensor is shared and must be treated as read-only.
func (l *Layout) GeometricTensor() *kernel.Tensor { return l.geo }

// OuterTensor returns the wedge-product table: the geometric tensor restricted
// to grade-raising terms. Built on first call, then cached; see the Layout
// note on lazy construction.
func (l *Layout) OuterTensor() *kernel.Tensor {
	if l.outer == nil {
		l.outer = l.deriveTensor(outerMask)
	}

	return l.outer
}

// InnerTensor returns the inner-product table (Hestenes convention: scalar
// operands contribute nothing). Built on first call, then cached.
func (l *Layout) InnerTensor() *kernel.Tensor {
	if l.inner == nil {
		l.inner = l.deriveTensor(innerMask)
	}

	return l.inner
}

// LeftContractionTensor returns the left-contraction table. Built on first
// call, then cached.
func (l *Layout) LeftContractionTensor() *kernel.Tensor {
	if l.leftContract == nil {
		l.leftContract = l.deriveTensor(leftContractionMask)
	}

	return l.leftContract
}

// PseudoscalarIndex returns the linear index of the pseudoscalar, always the
// last slot of the canonical order.
func (l *Layout) PseudoscalarIndex() int { return l.count - 1 }

// Pseudoscalar returns the coefficient vector of the unit pseudoscalar.
func (l *Layout) Pseudoscalar() []float64 {
	v := make([]float64, l.count)
	v[l.count-1] = 1

	return v
}

// PseudoscalarInverse returns the coefficient vector of I⁻¹. Since I² = s with
// s = ±1 for non-degenerate signatures, I⁻¹ = s·I.
func (l *Layout) PseudoscalarInverse() []float64 {
	full := uint(l.count - 1)
	s, _ := bladeMul(full, full, l.sig) // I² is always a scalar

	v := make([]float64, l.count)
	v[l.count-1] = s

	return v
}

// binomial computes C(n, r) iteratively; n never exceeds MaxGenerators so
// overflow is not a concern.
func binomial(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	c := 1
	for i := 0; i < r; i++ {
		c = c * (n - i) / (i + 1)
	}

	return c
}

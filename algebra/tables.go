// SPDX-License-Identifier: MIT
// Package algebra: multiplication-table construction.
//
// Purpose:
//   - Represent basis blades as generator bitmasks (bit i set ⇔ generator i
//     participates in the blade).
//   - Multiply two blades via XOR of bitmaps with the canonical reordering
//     sign and the metric signs of annihilated generators.
//   - Fill the dense geometric-product structure tensor and derive the
//     grade-filtered product tables (outer, inner, left contraction) from it.
//
// Determinism & Performance:
//   - All constructions are pure functions of the layout; no randomness.
//   - Table fill is O(4ⁿ) blade pairs, one-time setup cost.

package algebra

import (
	"math/bits"

	"github.com/katalvlaran/gakernel/kernel"
)

// reorderSign returns the (-1)^swaps sign of sorting the concatenated
// generator lists of blades a and b (as bitmaps) into canonical ascending
// order: the number of transpositions is the number of generator pairs
// (i in a, j in b) with i > j.
func reorderSign(a, b uint) float64 {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.OnesCount(a & b)
		a >>= 1
	}
	if swaps&1 == 0 {
		return +1
	}

	return -1
}

// bladeMul multiplies basis blades a and b (bitmap form) under the normalized
// signature sig. Shared generators annihilate, each contributing its metric
// sign; the surviving blade is the symmetric difference a XOR b.
func bladeMul(a, b uint, sig []int) (sign float64, out uint) {
	sign = reorderSign(a, b)
	common := a & b
	for i := 0; common != 0; i, common = i+1, common>>1 {
		if common&1 != 0 && sig[i] < 0 {
			sign = -sign
		}
	}

	return sign, a ^ b
}

// buildGeometricTensor fills the dense structure-constant tensor of the full
// geometric product: for every blade pair (k, m) exactly one output slot l
// receives the product sign.
func (l *Layout) buildGeometricTensor() *kernel.Tensor {
	t, err := kernel.NewTensor(l.count)
	if err != nil {
		panic("algebra: geometric tensor allocation: " + err.Error()) // count > 0 by construction
	}

	var sign float64
	var outBitmap uint
	for k := 0; k < l.count; k++ {
		for m := 0; m < l.count; m++ {
			sign, outBitmap = bladeMul(l.idxToBitmap[k], l.idxToBitmap[m], l.sig)
			// Set never fails here: all three indices are in range.
			_ = t.Set(k, l.bitmapToIdx[outBitmap], m, sign)
		}
	}

	return t
}

// productMask selects which (k, l, m) entries of the geometric tensor survive
// into a derived product table, given the three grades involved.
type productMask func(gk, gl, gm int) bool

// outerMask keeps grade-raising terms only: k∧m lives in grade gk+gm.
func outerMask(gk, gl, gm int) bool { return gl == gk+gm }

// innerMask keeps grade-lowering terms, excluding scalar operands, matching
// the Hestenes inner product convention of the source material.
func innerMask(gk, gl, gm int) bool {
	if gk == 0 || gm == 0 {
		return false
	}
	d := gk - gm
	if d < 0 {
		d = -d
	}

	return gl == d
}

// leftContractionMask keeps terms where k is fully contracted into m.
func leftContractionMask(gk, gl, gm int) bool { return gl == gm-gk }

// deriveTensor copies the geometric-tensor entries whose grade triple passes
// the mask, zeroing everything else. O(4ⁿ) blade pairs, since each pair has a
// single output slot.
func (l *Layout) deriveTensor(keep productMask) *kernel.Tensor {
	t, err := kernel.NewTensor(l.count)
	if err != nil {
		panic("algebra: derived tensor allocation: " + err.Error())
	}

	geo := l.GeometricTensor()
	for k := 0; k < l.count; k++ {
		for m := 0; m < l.count; m++ {
			_, outBitmap := bladeMul(l.idxToBitmap[k], l.idxToBitmap[m], l.sig)
			out := l.bitmapToIdx[outBitmap]
			if !keep(l.grades[k], l.grades[out], l.grades[m]) {
				continue
			}
			c, _ := geo.At(k, out, m)
			_ = t.Set(k, out, m, c)
		}
	}

	return t
}

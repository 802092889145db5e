package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gakernel/algebra"
)

// at reads one structure constant, failing the test on bad indices.
func at(t *testing.T, ten interface {
	At(k, l, m int) (float64, error)
}, k, l, m int) float64 {
	t.Helper()
	c, err := ten.At(k, l, m)
	require.NoError(t, err)

	return c
}

// TestGeometricTensor_Cl3 pins hand-computed blade products in the 3-D
// Euclidean algebra. Canonical order: 1, e1, e2, e3, e12, e13, e23, e123.
func TestGeometricTensor_Cl3(t *testing.T) {
	l, err := algebra.New(algebra.Euclidean(3))
	require.NoError(t, err)
	geo := l.GeometricTensor()

	assert.Equal(t, 1.0, at(t, geo, 1, 0, 1), "e1 e1 = 1")
	assert.Equal(t, 1.0, at(t, geo, 1, 4, 2), "e1 e2 = e12")
	assert.Equal(t, -1.0, at(t, geo, 2, 4, 1), "e2 e1 = -e12")
	assert.Equal(t, 1.0, at(t, geo, 1, 6, 7), "e1 e123 = e23")
	assert.Equal(t, -1.0, at(t, geo, 7, 0, 7), "e123 e123 = -1")
	assert.Equal(t, 1.0, at(t, geo, 0, 3, 3), "1 e3 = e3")
}

// TestGeometricTensor_NegativeSignature checks the metric sign: a generator
// squaring to -1 contributes its sign on annihilation.
func TestGeometricTensor_NegativeSignature(t *testing.T) {
	l, err := algebra.New(algebra.Cl(0, 1))
	require.NoError(t, err)

	assert.Equal(t, -1.0, at(t, l.GeometricTensor(), 1, 0, 1), "e1 e1 = -1 in Cl(0,1)")
}

// TestOuterTensor checks grade-raising selection: wedge keeps e1 e2 but kills
// the annihilating e1 e1 term.
func TestOuterTensor(t *testing.T) {
	l, err := algebra.New(algebra.Euclidean(3))
	require.NoError(t, err)
	outer := l.OuterTensor()

	assert.Equal(t, 1.0, at(t, outer, 1, 4, 2), "e1 ∧ e2 = e12 survives")
	assert.Equal(t, 0.0, at(t, outer, 1, 0, 1), "e1 ∧ e1 = 0")
	assert.Equal(t, 1.0, at(t, outer, 0, 2, 2), "1 ∧ e2 = e2 (scalar wedge is scaling)")
}

// TestInnerTensor checks the Hestenes convention: grade-lowering terms only,
// scalar operands excluded.
func TestInnerTensor(t *testing.T) {
	l, err := algebra.New(algebra.Euclidean(3))
	require.NoError(t, err)
	inner := l.InnerTensor()

	assert.Equal(t, 1.0, at(t, inner, 1, 0, 1), "e1 · e1 = 1 survives")
	assert.Equal(t, 0.0, at(t, inner, 1, 4, 2), "e1 · e2 has no grade-0 part")
	assert.Equal(t, 0.0, at(t, inner, 0, 2, 2), "scalar operands contribute nothing")
}

// TestLeftContractionTensor checks k-into-m contraction: e1 ⌋ e12 = e2 but
// e12 ⌋ e1 vanishes (cannot contract a bivector into a vector).
func TestLeftContractionTensor(t *testing.T) {
	l, err := algebra.New(algebra.Euclidean(3))
	require.NoError(t, err)
	lc := l.LeftContractionTensor()

	assert.Equal(t, 1.0, at(t, lc, 1, 2, 4), "e1 ⌋ e12 = e2")
	assert.Equal(t, 0.0, at(t, lc, 4, 2, 1), "e12 ⌋ e1 = 0")
}

// TestDerivedTensors_SubsetOfGeometric checks that every derived table entry
// either matches the geometric tensor or is zero: masks filter, never invent.
func TestDerivedTensors_SubsetOfGeometric(t *testing.T) {
	l, err := algebra.New(algebra.Cl(2, 1))
	require.NoError(t, err)
	geo := l.GeometricTensor()

	for name, derived := range map[string]interface {
		At(k, l, m int) (float64, error)
	}{
		"outer":            l.OuterTensor(),
		"inner":            l.InnerTensor(),
		"left_contraction": l.LeftContractionTensor(),
	} {
		n := l.BladeCount()
		for k := 0; k < n; k++ {
			for li := 0; li < n; li++ {
				for m := 0; m < n; m++ {
					d := at(t, derived, k, li, m)
					if d == 0 {
						continue
					}
					assert.Equal(t, at(t, geo, k, li, m), d,
						"%s entry (%d,%d,%d) must come from the geometric tensor", name, k, li, m)
				}
			}
		}
	}
}

package multivector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gakernel/algebra"
	"github.com/katalvlaran/gakernel/multivector"
)

// newProduct builds the kernel bundle for Euclidean 3-space.
func newProduct(t *testing.T) *multivector.Product {
	t.Helper()
	l, err := algebra.New(algebra.Euclidean(3))
	require.NoError(t, err)
	p, err := multivector.NewProduct(l)
	require.NoError(t, err)

	return p
}

// TestNewProduct_NilLayout covers the constructor guard.
func TestNewProduct_NilLayout(t *testing.T) {
	_, err := multivector.NewProduct(nil)
	assert.ErrorIs(t, err, multivector.ErrNilLayout)
}

// TestProduct_New_LengthGuard covers the wrap-time length check and the copy
// semantics of the facade.
func TestProduct_New_LengthGuard(t *testing.T) {
	p := newProduct(t)

	_, err := p.New([]float64{1, 2, 3})
	assert.ErrorIs(t, err, multivector.ErrValueLen, "short coefficient slice must error")

	coeffs := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	mv, err := p.New(coeffs)
	require.NoError(t, err)

	coeffs[0] = 99 // caller mutation must not leak into the multivector
	assert.Equal(t, 1.0, mv.Value()[0], "New must copy its input")

	v := mv.Value()
	v[0] = 77 // and Value must hand out a copy too
	assert.Equal(t, 1.0, mv.Value()[0], "Value must copy the state")
}

// TestProduct_Blade covers the single-blade constructor and its index guard.
func TestProduct_Blade(t *testing.T) {
	p := newProduct(t)

	e2, err := p.Blade(2, 3.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3.5, 0, 0, 0, 0, 0}, e2.Value())

	_, err = p.Blade(8, 1)
	assert.ErrorIs(t, err, algebra.ErrIndexRange, "index past the blade count must error")
}

// TestMultivector_Products checks the facade forwards to the right kernels:
// geometric, outer and inner products of two basis vectors.
func TestMultivector_Products(t *testing.T) {
	p := newProduct(t)
	e1, err := p.Blade(1, 1)
	require.NoError(t, err)
	e2, err := p.Blade(2, 1)
	require.NoError(t, err)

	mul, err := e1.Mul(e2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 0, 0, 0}, mul.Value(), "e1 e2 = e12")

	wedge, err := e1.Wedge(e1)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), wedge.Value(), "e1 ∧ e1 = 0")

	dot, err := e1.Dot(e1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 0, 0, 0, 0}, dot.Value(), "e1 · e1 = 1")
}

// TestMultivector_ProductMismatch rejects operands from different bundles:
// coefficient vectors only mean anything relative to one layout.
func TestMultivector_ProductMismatch(t *testing.T) {
	p1, p2 := newProduct(t), newProduct(t)

	a, err := p1.Blade(1, 1)
	require.NoError(t, err)
	b, err := p2.Blade(1, 1)
	require.NoError(t, err)

	_, err = a.Mul(b)
	assert.ErrorIs(t, err, multivector.ErrProductMismatch)
	_, err = a.Wedge(nil)
	assert.ErrorIs(t, err, multivector.ErrProductMismatch, "nil operand must error, not panic")
}

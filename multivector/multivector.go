package multivector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gakernel/algebra"
	"github.com/katalvlaran/gakernel/kernel"
)

var (
	// ErrNilLayout indicates a nil *algebra.Layout passed to NewProduct.
	ErrNilLayout = errors.New("multivector: layout is nil")

	// ErrValueLen indicates a coefficient slice whose length differs from the
	// layout's blade count.
	ErrValueLen = errors.New("multivector: coefficient vector length mismatch")

	// ErrProductMismatch indicates two multivectors from different Product
	// bundles being multiplied together.
	ErrProductMismatch = errors.New("multivector: operands belong to different products")
)

// Product bundles the compiled kernels of one algebra: geometric, outer and
// inner products, synthesized once from the layout's tables. It is the single
// piece of shared state multivectors refer to, and it is immutable.
type Product struct {
	layout *algebra.Layout
	geo    *kernel.Kernel
	outer  *kernel.Kernel
	inner  *kernel.Kernel
}

// NewProduct compiles the three product kernels for l.
// Complexity: O(8ⁿ) tensor scans, once per algebra.
func NewProduct(l *algebra.Layout) (*Product, error) {
	if l == nil {
		return nil, fmt.Errorf("NewProduct: %w", ErrNilLayout)
	}
	dims := l.BladeCount()

	geo, err := kernel.Synthesize(l.GeometricTensor(), dims)
	if err != nil {
		return nil, fmt.Errorf("NewProduct: %w", err)
	}
	outer, err := kernel.Synthesize(l.OuterTensor(), dims)
	if err != nil {
		return nil, fmt.Errorf("NewProduct: %w", err)
	}
	inner, err := kernel.Synthesize(l.InnerTensor(), dims)
	if err != nil {
		return nil, fmt.Errorf("NewProduct: %w", err)
	}

	return &Product{layout: l, geo: geo, outer: outer, inner: inner}, nil
}

// Layout returns the algebra layout the product was compiled for.
func (p *Product) Layout() *algebra.Layout { return p.layout }

// Multivector is the thin facade over a raw coefficient vector: it knows its
// Product bundle and forwards every multiplication to a compiled kernel. The
// facade never participates in the hot loop; kernels see only raw slices.
//
// A Multivector is immutable: products return fresh values.
type Multivector struct {
	p     *Product
	value []float64 // owned, never aliased with caller memory
}

// New wraps a copy of coeffs. Returns ErrValueLen on length mismatch.
func (p *Product) New(coeffs []float64) (*Multivector, error) {
	if len(coeffs) != p.layout.BladeCount() {
		return nil, fmt.Errorf("Product.New: got %d, want %d: %w", len(coeffs), p.layout.BladeCount(), ErrValueLen)
	}
	value := make([]float64, len(coeffs))
	copy(value, coeffs)

	return &Multivector{p: p, value: value}, nil
}

// Blade returns the multivector coeff·b_index. Returns algebra.ErrIndexRange
// (wrapped) for an index outside the blade range.
func (p *Product) Blade(index int, coeff float64) (*Multivector, error) {
	if _, err := p.layout.Grade(index); err != nil {
		return nil, fmt.Errorf("Product.Blade: %w", err)
	}
	value := make([]float64, p.layout.BladeCount())
	value[index] = coeff

	return &Multivector{p: p, value: value}, nil
}

// Value returns a copy of the raw coefficient vector, in canonical order.
func (mv *Multivector) Value() []float64 {
	out := make([]float64, len(mv.value))
	copy(out, mv.value)

	return out
}

// Mul computes the geometric product mv * other.
func (mv *Multivector) Mul(other *Multivector) (*Multivector, error) {
	return mv.apply("Mul", mv.p.geo, other)
}

// Wedge computes the outer product mv ∧ other.
func (mv *Multivector) Wedge(other *Multivector) (*Multivector, error) {
	return mv.apply("Wedge", mv.p.outer, other)
}

// Dot computes the inner product mv · other (Hestenes convention: scalar
// parts contribute nothing).
func (mv *Multivector) Dot(other *Multivector) (*Multivector, error) {
	return mv.apply("Dot", mv.p.inner, other)
}

// apply unwraps both operands, calls the kernel and rewraps the result.
func (mv *Multivector) apply(op string, k *kernel.Kernel, other *Multivector) (*Multivector, error) {
	if other == nil || other.p != mv.p {
		return nil, fmt.Errorf("Multivector.%s: %w", op, ErrProductMismatch)
	}
	out, err := k.Apply(mv.value, other.value)
	if err != nil {
		return nil, fmt.Errorf("Multivector.%s: %w", op, err)
	}

	return &Multivector{p: mv.p, value: out}, nil
}

// SPDX-License-Identifier: MIT
// Package kernel: three-index structure-constant storage.
// Tensor is a concrete, flat implementation of the (k, l, m) structure-constant
// array, storing entries in a single slice for cache friendliness, the same way
// a dense matrix keeps a flat row-major backing store.

package kernel

import "fmt"

// Tensor holds the structure constants of a bilinear product on a
// dims-dimensional coefficient space. Entry (k, l, m) is the signed
// contribution of left[k] * right[m] to output slot l.
//
// A Tensor is mutable during construction (the algebra layer fills it in) and
// MUST be treated as read-only once handed to a synthesis function: synthesized
// kernels keep no reference to it, but concurrent mutation during synthesis is
// a data race.
type Tensor struct {
	dims int       // extent of each of the three indices
	data []float64 // flat backing storage, length == dims³, index ((k*dims)+l)*dims+m
}

// tensorErrorf wraps an underlying error with Tensor method context.
func tensorErrorf(method string, k, l, m int, err error) error {
	return fmt.Errorf("Tensor.%s(%d,%d,%d): %w", method, k, l, m, err)
}

// NewTensor creates a dims×dims×dims tensor initialized to zeros.
// Stage 1 (Validate): ensure dims > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Tensor or ErrShape.
// Complexity: O(dims³) time and memory.
func NewTensor(dims int) (*Tensor, error) {
	if dims <= 0 {
		return nil, ErrShape
	}

	return &Tensor{dims: dims, data: make([]float64, dims*dims*dims)}, nil
}

// Dims returns the extent of each tensor index. Complexity: O(1).
func (t *Tensor) Dims() int { return t.dims }

// indexOf computes the flat index for (k, l, m) or returns ErrTensorIndex.
func (t *Tensor) indexOf(k, l, m int) (int, error) {
	if k < 0 || k >= t.dims || l < 0 || l >= t.dims || m < 0 || m >= t.dims {
		return 0, ErrTensorIndex
	}

	return (k*t.dims+l)*t.dims + m, nil
}

// At returns the structure constant at (k, l, m).
// Returns ErrTensorIndex if any index is out of bounds. Complexity: O(1).
func (t *Tensor) At(k, l, m int) (float64, error) {
	idx, err := t.indexOf(k, l, m)
	if err != nil {
		return 0, tensorErrorf("At", k, l, m, err)
	}

	return t.data[idx], nil
}

// Set stores v at (k, l, m).
// Returns ErrTensorIndex if any index is out of bounds. Complexity: O(1).
func (t *Tensor) Set(k, l, m int, v float64) error {
	idx, err := t.indexOf(k, l, m)
	if err != nil {
		return tensorErrorf("Set", k, l, m, err)
	}
	t.data[idx] = v

	return nil
}

// Add accumulates v into (k, l, m). Used by table builders where several blade
// products can land on the same slot. Returns ErrTensorIndex on bad indices.
func (t *Tensor) Add(k, l, m int, v float64) error {
	idx, err := t.indexOf(k, l, m)
	if err != nil {
		return tensorErrorf("Add", k, l, m, err)
	}
	t.data[idx] += v

	return nil
}

// Clone returns a deep copy of the tensor. Complexity: O(dims³).
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)

	return &Tensor{dims: t.dims, data: data}
}

// Contract computes the direct dense triple-sum contraction of the tensor
// against two coefficient vectors, with no sparsity shortcuts. It is the
// reference semantics a synthesized kernel must reproduce and is intended for
// verification, not for hot paths. Returns ErrVectorLen on operand length
// mismatch. Complexity: O(dims³).
func (t *Tensor) Contract(a, b []float64) ([]float64, error) {
	if len(a) != t.dims || len(b) != t.dims {
		return nil, ErrVectorLen
	}

	out := make([]float64, t.dims)
	for k := 0; k < t.dims; k++ {
		for l := 0; l < t.dims; l++ {
			for m := 0; m < t.dims; m++ {
				out[l] += t.data[(k*t.dims+l)*t.dims+m] * a[k] * b[m]
			}
		}
	}

	return out, nil
}

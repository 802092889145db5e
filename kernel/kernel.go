package kernel

import (
	"fmt"
)

// Kernel Synthesis
//
// Description:
//
//	A geometric-algebra product is a bilinear map on coefficient vectors,
//	fully described by a three-index structure-constant tensor T where
//	T[k][l][m] is the signed contribution of left[k]*right[m] to out[l].
//	Such tensors are extremely sparse (one output blade per blade pair),
//	so instead of contracting the dense tensor on every product this
//	package "compiles" it once into a Kernel: a flat, precomputed list of
//	nonzero (k, l, m, coeff) terms replayed by a single loop.
//
// Algorithm Outline:
//  1. Validate the tensor shape against the requested dimensionality.
//  2. Scan the tensor in fixed k→l→m order, collecting nonzero entries
//     into an immutable term list. Scan order = accumulation order, so
//     repeated applications are bit-for-bit reproducible.
//  3. (Sparse variant) Drop every term whose left-operand grade is outside
//     leftGrades or whose right-operand grade is outside rightGrades.
//     Filtering preserves relative term order, so on operands that truly
//     respect the restriction the sparse kernel reproduces the dense
//     kernel's output exactly, rounding included.
//  4. Return a Kernel closed over the term list. Apply allocates one fresh
//     output vector per call and touches no shared state, so a Kernel is
//     safe for concurrent use.
//
// Complexity:
//
//	Synthesis: O(dims³) scan, once per kernel.
//	Apply:     O(|terms|) multiply-accumulates, |terms| ≪ dims³.
//
// Errors:
//   - ErrNilTensor, ErrShape      — malformed input, at synthesis time.
//   - ErrNilGradeFunc             — sparse synthesis without a classifier.
//   - ErrGradeDomain              — grade outside [0, n]; or empty grade set
//     under WithStrictGrades.
//   - ErrVectorLen                — operand length mismatch, at apply time.
//   - ErrGradeViolation           — only under WithGradeCheck.

// Kernel is a compiled bilinear product: a precomputed sparse term list plus
// the output dimensionality. The zero value is unusable; obtain kernels from
// Synthesize or SynthesizeSparse.
//
// Kernels are immutable and safe to share across goroutines: Apply reads only
// the closed-over term list and writes only its own fresh output vector.
type Kernel struct {
	dims  int    // operand and output vector length
	terms []Term // nonzero terms in tensor scan order; never mutated after synthesis

	// grade-check state, populated only under WithGradeCheck
	checkGrades bool
	leftOK      []bool // leftOK[k] ⇔ grade(k) ∈ leftGrades
	rightOK     []bool // rightOK[m] ⇔ grade(m) ∈ rightGrades
}

// Synthesize compiles the dense kernel for tensor t: every nonzero structure
// constant becomes a term, so the kernel reproduces the full tensor
// contraction on arbitrary operands.
//
// Stage 1 (Validate): t non-nil, t.Dims() == dims.
// Stage 2 (Scan): collect nonzero entries in k→l→m order.
// Stage 3 (Finalize): return the Kernel value.
// Complexity: O(dims³) once; the resulting Apply is O(|terms|).
func Synthesize(t *Tensor, dims int, opts ...Option) (*Kernel, error) {
	if err := validateTensor(t, dims); err != nil {
		return nil, fmt.Errorf("Synthesize: %w", err)
	}
	gatherOptions(opts...) // dense synthesis has no active switches today

	return &Kernel{dims: dims, terms: scanTerms(t, nil, 0, 0)}, nil
}

// SynthesizeSparse compiles a grade-specialized kernel: a term (k,l,m,coeff)
// is kept iff gradeOf(k) ∈ leftGrades AND gradeOf(m) ∈ rightGrades.
//
// The specialization exploits caller knowledge that an operand is zero outside
// certain grades (a rotor populates only even grades, a vector only grade 1),
// skipping multiply-accumulates that are provably zero for such operands.
//
// PRECONDITION (not checked by default): operands passed to the resulting
// kernel must actually be zero outside the declared grades. A violating
// operand silently yields an under-accumulated result; enable WithGradeCheck
// to turn the violation into ErrGradeViolation at apply time.
//
// An empty grade set is legal and produces a degenerate kernel whose output is
// always the zero vector; WithStrictGrades rejects it with ErrGradeDomain
// instead. Grades above the algebra's top grade fail with ErrGradeDomain.
func SynthesizeSparse(t *Tensor, dims int, gradeOf GradeFunc, leftGrades, rightGrades GradeSet, opts ...Option) (*Kernel, error) {
	if err := validateTensor(t, dims); err != nil {
		return nil, fmt.Errorf("SynthesizeSparse: %w", err)
	}
	if gradeOf == nil {
		return nil, fmt.Errorf("SynthesizeSparse: %w", ErrNilGradeFunc)
	}
	o := gatherOptions(opts...)

	// Top grade of the algebra, from the classifier itself: the largest grade
	// any basis index actually carries.
	top := 0
	for i := 0; i < dims; i++ {
		if g := gradeOf(i); g > top {
			top = g
		}
	}
	if leftGrades.Max() > top || rightGrades.Max() > top {
		return nil, fmt.Errorf("SynthesizeSparse: grade beyond top grade %d: %w", top, ErrGradeDomain)
	}
	if o.strictGrades && (leftGrades.Empty() || rightGrades.Empty()) {
		return nil, fmt.Errorf("SynthesizeSparse: empty grade set: %w", ErrGradeDomain)
	}

	kn := &Kernel{
		dims:  dims,
		terms: scanTerms(t, gradeOf, leftGrades, rightGrades),
	}
	if o.gradeCheck {
		kn.checkGrades = true
		kn.leftOK = gradeMask(dims, gradeOf, leftGrades)
		kn.rightOK = gradeMask(dims, gradeOf, rightGrades)
	}

	return kn, nil
}

// Apply computes the bilinear product of a and b: a fresh output vector where
// out[l] accumulates coeff*a[k]*b[m] over the term list in its fixed order.
//
// Length mismatches fail with ErrVectorLen before any arithmetic. Under
// WithGradeCheck a restriction violation fails with ErrGradeViolation.
// Complexity: O(|terms|); allocates exactly the output vector.
func (kn *Kernel) Apply(a, b []float64) ([]float64, error) {
	if len(a) != kn.dims || len(b) != kn.dims {
		return nil, fmt.Errorf("Apply: got %d×%d, want %d×%d: %w", len(a), len(b), kn.dims, kn.dims, ErrVectorLen)
	}
	if kn.checkGrades {
		for i := 0; i < kn.dims; i++ {
			if (a[i] != 0 && !kn.leftOK[i]) || (b[i] != 0 && !kn.rightOK[i]) {
				return nil, fmt.Errorf("Apply: nonzero coefficient at index %d: %w", i, ErrGradeViolation)
			}
		}
	}

	// Hot path: one flat loop, no branches, no shared state.
	out := make([]float64, kn.dims)
	for i := range kn.terms {
		t := &kn.terms[i]
		out[t.L] += t.Coeff * a[t.K] * b[t.M]
	}

	return out, nil
}

// Dims returns the operand/output vector length. Complexity: O(1).
func (kn *Kernel) Dims() int { return kn.dims }

// TermCount returns the number of multiply-accumulate terms the kernel
// replays per Apply. A sparse kernel's count never exceeds its dense
// counterpart's. Complexity: O(1).
func (kn *Kernel) TermCount() int { return len(kn.terms) }

// Degenerate reports whether the kernel has no terms at all, i.e. every
// Apply returns the zero vector. Arises from an all-zero tensor or from an
// empty grade set without WithStrictGrades.
func (kn *Kernel) Degenerate() bool { return len(kn.terms) == 0 }

// Terms returns a copy of the term list in accumulation order. Intended for
// inspection, composition and tests; the kernel's own list is never exposed.
func (kn *Kernel) Terms() []Term {
	out := make([]Term, len(kn.terms))
	copy(out, kn.terms)

	return out
}

// validateTensor is the shared synthesis-time guard: nil tensor, then shape.
func validateTensor(t *Tensor, dims int) error {
	if t == nil {
		return ErrNilTensor
	}
	if dims <= 0 || t.dims != dims {
		return fmt.Errorf("tensor dims %d vs requested %d: %w", t.dims, dims, ErrShape)
	}

	return nil
}

// scanTerms collects nonzero tensor entries in k→l→m order. With a nil
// gradeOf no filtering happens (dense scan); otherwise a term survives iff
// both operand grades are in their respective sets. The shared scan order is
// what makes sparse output bitwise-equal to dense output on conforming
// operands.
func scanTerms(t *Tensor, gradeOf GradeFunc, left, right GradeSet) []Term {
	var terms []Term
	for k := 0; k < t.dims; k++ {
		if gradeOf != nil && !left.Has(gradeOf(k)) {
			continue
		}
		for l := 0; l < t.dims; l++ {
			base := (k*t.dims + l) * t.dims
			for m := 0; m < t.dims; m++ {
				c := t.data[base+m]
				if c == 0 {
					continue
				}
				if gradeOf != nil && !right.Has(gradeOf(m)) {
					continue
				}
				terms = append(terms, Term{K: k, L: l, M: m, Coeff: c})
			}
		}
	}

	return terms
}

// gradeMask precomputes the per-index membership table used by WithGradeCheck.
func gradeMask(dims int, gradeOf GradeFunc, set GradeSet) []bool {
	mask := make([]bool, dims)
	for i := 0; i < dims; i++ {
		mask[i] = set.Has(gradeOf(i))
	}

	return mask
}

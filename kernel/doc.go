// Package kernel compiles geometric-algebra product tables into specialized
// numeric kernels: flat, precomputed multiply-accumulate loops over the
// nonzero structure constants of a bilinear product.
//
// 🚀 Why compile products?
//
//	A geometric product over 2ⁿ basis blades is a triple contraction of a
//	2ⁿ×2ⁿ×2ⁿ tensor that is almost entirely zeros. Contracting it densely
//	on every multiplication wastes nearly all of its work; compiling the
//	nonzero entries once into a term list turns each product into a short
//	branch-free loop — "compile once, call many times".
//
// ✨ Key features:
//   - Synthesize: dense kernel, exact tensor-contraction semantics
//   - SynthesizeSparse: grade-filtered kernel for known-sparse operands
//     (rotors populate only even grades — prune the rest at compile time)
//   - deterministic accumulation order ⇒ bit-reproducible output
//   - kernels are pure values: no locks, safe for concurrent Apply
//   - opt-in precondition checking (WithGradeCheck, WithStrictGrades)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gakernel/kernel"
//
//	geo, err := kernel.Synthesize(tensor, dims)
//	rot, err := kernel.SynthesizeSparse(tensor, dims, gradeOf,
//	    kernel.EvenGrades(n), kernel.AllGrades(n))
//
//	out, err := rot.Apply(rotor, anything) // same bits as geo.Apply, fewer terms
//
// Performance:
//
//   - Synthesis: O(dims³), once per kernel at setup time.
//   - Apply:     O(|terms|) multiply-accumulates, one output allocation.
//
// See examples in example_test.go; tensors are built by the algebra package.
package kernel

// Package algebra builds the metadata a geometric algebra needs before any
// product can be compiled: the canonical blade ordering, the grade
// classifier and the structure-constant multiplication tables.
//
// 🚀 What lives here?
//
//	A Layout fixes, for one signature, how a multivector's coefficient
//	vector is laid out (scalar, vectors, bivectors, ..., pseudoscalar) and
//	owns the 2ⁿ×2ⁿ×2ⁿ tensors describing how basis blades multiply. The
//	kernel package then compiles those tensors into fast product kernels.
//
// ✨ Key features:
//   - signatures: Euclidean(n), Cl(p, q), or any custom ±1 list
//   - canonical ordering: ascending grade, then ascending bitmap
//   - grade classifier backed by precomputed binomial offsets
//   - geometric, outer, inner and left-contraction product tables
//   - pseudoscalar helpers for duality-based composites
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gakernel/algebra"
//
//	l, err := algebra.New(algebra.Euclidean(3))
//	geo, err := kernel.Synthesize(l.GeometricTensor(), l.BladeCount())
//
// Construction cost is O(4ⁿ) blade pairs, paid once at setup; every accessor
// on a built Layout is read-only.
package algebra

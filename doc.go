// Package gakernel compiles geometric-algebra products into specialized
// numeric kernels — sparse, grade-filtered multiply-accumulate loops built
// once from a multiplication table and called many times.
//
// 🚀 What is gakernel?
//
//	A small, pure-Go library that brings together:
//		• algebra/     — signatures, canonical blade layout, grade classifier,
//		  structure-constant multiplication tables
//		• kernel/      — THE CORE: dense & grade-sparse kernel synthesis
//		• compose/     — rotor sandwich, dual, meet, reversion, projection
//		• multivector/ — thin facade forwarding products to compiled kernels
//
// ✨ Why gakernel?
//
//   - Compile once, call many — tensors are scanned at setup, products run
//     as flat branch-free loops over precomputed term lists
//   - Grade-sparse specialization — rotors populate only even grades, so
//     rotor kernels drop every provably-zero term at compile time
//   - Deterministic — fixed accumulation order, bit-reproducible output
//   - Concurrent-safe — kernels are pure values, no locks anywhere
//   - Pure Go — no cgo, no code generation, no reflection
//
// Start with algebra.New to build a Layout, hand its tensors to
// kernel.Synthesize / kernel.SynthesizeSparse, and wrap the results with
// compose or multivector as needed.
package gakernel

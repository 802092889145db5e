// Package multivector is the thin facade layer over raw coefficient vectors:
// a Product bundle compiles the geometric, outer and inner kernels for one
// algebra, and Multivector values forward their products to those kernels.
//
// The split is deliberate: the facade owns convenience and safety (copying,
// length checks, layout identity), while the hot path — kernel.Apply over a
// flat term list — never sees a Multivector at all.
//
// General multivector arithmetic (addition, exponentials, inverses, parsing,
// blade naming) is out of scope here; this package exists to wrap/unwrap
// around kernels, nothing more.
package multivector

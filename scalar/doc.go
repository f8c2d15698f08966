// Package scalar provides the generic numeric primitives the sagmg kernels
// are built on: conjugation, magnitude, squared magnitude, conjugated dot
// product, and a small dense matrix multiply (GEMM), all parameterized over
// the four machine scalar types.
//
// What
//
//   - Scalar constraint: float32 | float64 | complex64 | complex128.
//   - Real constraint:   float32 | float64 (thresholds, tolerances, norms).
//   - Conj, Abs, AbsSq, Dot — real types implement conjugation as identity,
//     so a single generic code path serves real and complex instantiations.
//   - Gemm — row-major dense multiply with NoTrans/Trans/ConjTrans operand
//     views and overwrite-or-accumulate output, sized for the small blocks
//     that appear inside blocked sparse kernels. The float64 instantiation
//     is routed through gonum's blas64.
//
// Why
//
//   - The blocked AMG kernels (tentative prolongation, constraint
//     enforcement, masked products) need exactly these five operations and
//     nothing else from a numeric library.
//   - Keeping them generic lets every kernel compile once for real and
//     complex systems with identical semantics.
//
// Contracts
//
//	All functions are total over their constraint sets and never allocate.
//	Gemm does not validate dimensions: callers pass slices of exactly the
//	documented lengths, and out-of-range access panics as ordinary Go slice
//	misuse. This mirrors the preallocation contract of the kernel packages.
package scalar

// Package strength computes the symmetric strength-of-connection graph used
// to guide smoothed-aggregation coarsening: a filtered CSR subset of a
// matrix in which only the "strong" couplings survive.
//
// What
//
//   - Filter thresholds a square CSR matrix A against
//
//     |A(i,j)|² ≥ θ²·|A(i,i)|·|A(j,j)|
//
//     keeping every off-diagonal entry that passes and every diagonal entry
//     unconditionally. Duplicate diagonal entries are summed before taking
//     the magnitude.
//   - Output row pointers are recomputed densely, so the result is a valid
//     CSR matrix with no gaps and nnz(S) ≤ nnz(A).
//
// Why
//
//   - Aggregation quality — and with it multigrid convergence — depends on
//     clustering along strong couplings only; weak entries merely inflate
//     aggregate overlap.
//
// Degenerate diagonals
//
//	A zero diagonal magnitude makes the right-hand side of the comparison
//	zero, so every off-diagonal entry in that row except exact zeros passes.
//	This is accepted behavior, not an error: such rows simply keep all their
//	couplings.
//
// Complexity: O(nnz(A)) time, O(rows) scratch for the diagonal magnitudes.
package strength

// Package energymin provides the kernels behind energy minimization of a
// smoothed-aggregation prolongator: assembling the local Gram matrices of
// the near-nullspace candidates, enforcing exact candidate reproduction on
// a prolongator update, and a sparse matrix product restricted to a fixed
// sparsity pattern.
//
// What
//
//   - PackBsq / BsqCols: pack the pairwise candidate products
//     conj(B[k,m])·B[k,n] (m ≤ n) row by row — the "B-squared" input the
//     Gram assembler consumes.
//   - AssembleGram: for every block row of a BSR pattern, the Hermitian
//     Gram matrix of the candidates restricted to that row's column
//     neighborhood, stored column-major per block row.
//   - GramPseudoInverse: in-place Moore–Penrose pseudoinversion of the
//     assembled float64 Gram blocks via SVD, reporting (never silently
//     approximating) rank-deficient blocks.
//   - SatisfyConstraints: subtract UB[i]·(BtBinv[i]·B[j]ᴴ) from every
//     nonzero block of an update S so that S·B = 0 afterwards — the update
//     then cannot disturb the exact reproduction of the candidates.
//   - MaskedMultiply: S += A·B evaluated only at S's pre-existing nonzero
//     blocks (SMMP-style exact-but-incomplete product). Entries of the true
//     product outside S's pattern are discarded, not computed.
//
// Why
//
//	Energy minimization smooths the tentative prolongator to cut solver
//	iterations, but every smoothing step must stay inside an affordable
//	sparsity pattern and keep the near-nullspace reproduced exactly. These
//	kernels are precisely that projection machinery.
//
// All kernels mutate caller-owned buffers in place; scratch is fixed-size
// and reused across the outer loop.
package energymin

// Package sagmg provides the setup-phase kernels of a smoothed-aggregation
// algebraic multigrid (AMG) method: everything needed to turn a fine-level
// sparse system and its near-nullspace candidates into a coarser level.
//
// 🚀 What is sagmg?
//
//	A generic Go kernel library covering the numerically hard core of AMG setup:
//		• Strength of connection: threshold a CSR matrix into its "strong" graph
//		• Aggregation: partition graph nodes into aggregates (standard & naive)
//		• Tentative prolongation: per-aggregate orthonormalization of candidates
//		• Energy minimization support: local Gram assembly, nullspace-constraint
//		  enforcement, and a sparsity-restricted sparse matrix product
//
// ✨ Why choose sagmg?
//
//   - Allocation discipline – kernels mutate caller-owned buffers in place
//   - Real and complex – one generic code path for float32/64 and complex64/128
//   - Deterministic – fixed ascending node order, reproducible tie-breaks
//   - Self-contained – no solver loop, no I/O, just the linear-algebra core
//
// Everything is organized under six subpackages:
//
//	sparse/    — CSR and BSR container types, format validators, sentinel errors
//	scalar/    — generic numeric primitives: conjugate, norms, dot, small GEMM
//	strength/  — symmetric strength-of-connection filter
//	aggregate/ — standard & naive aggregation over a strength graph
//	tentative/ — tentative prolongator builder (blockwise Gram-Schmidt)
//	energymin/ — Gram assembler, constraint enforcer, masked sparse multiply
//
// Quick pipeline sketch (fine matrix A, candidates B):
//
//	A ──strength.Filter──▶ S ──aggregate.Standard──▶ x,y
//	x ──aggregate.BuildOperator──▶ op ──tentative.Fit(B)──▶ P, R
//	P ──energymin.{AssembleGram, SatisfyConstraints, MaskedMultiply}──▶ P_smooth
//
// The multigrid cycle itself (smoothing iterations, V/W recursion, solve
// phase) is out of scope: sagmg builds the hierarchy, your solver runs it.
//
//	go get github.com/velmarin/sagmg
package sagmg

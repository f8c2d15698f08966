// Package sparse defines the compressed sparse row (CSR) and block sparse
// row (BSR) container types shared by every sagmg kernel, together with the
// structural validators and sentinel errors for their format contracts.
//
// What
//
//   - CSR[I, T]: row-pointer / column-index / value triplet with scalar
//     entries. Entries within a row need not be sorted and duplicate column
//     indices are permitted; kernels that need a unique diagonal sum the
//     duplicates.
//   - BSR[I, T]: the same structure at block granularity. Every nonzero is a
//     dense R×C block stored contiguously in row-major order; scalar
//     dimensions relate to block dimensions by rows = BlockRows·R.
//   - Validators in the style of central fail-fast checks: Validate methods
//     on both types plus ValidateBufferLen for kernel argument buffers.
//
// Why
//
//   - The kernels never allocate or resize caller storage (preallocation
//     contract), so structural errors must surface before a kernel touches a
//     byte. Centralizing the checks keeps the kernels total functions.
//
// Format contracts
//
//	Ap has length rows+1 with Ap[0] == 0 and nondecreasing entries; Aj and Ax
//	hold at least Ap[rows] entries (physical capacity may exceed the logical
//	count — the strength filter writes into oversized buffers). Column
//	indices lie in [0, cols). BSR additionally requires one fixed R×C block
//	shape per matrix and len(Ax) ≥ Ap[rows]·R·C.
package sparse

// SPDX-License-Identifier: MIT

// Package sparse: CSR and BSR container types.
// These are plain data holders: all fields are exported and caller-owned,
// kernels mutate value arrays in place and never reallocate them.
package sparse

import "github.com/velmarin/sagmg/scalar"

// Index is the set of types usable as row pointers and column indices.
// Kernels are generic over Index independently of the value type, matching
// hosts that ship 32-bit index arrays next to 64-bit values.
type Index interface {
	int | int32 | int64
}

// CSR is a sparse matrix in compressed sparse row format.
//
// Invariants (checked by Validate, assumed by kernels):
//   - len(Ap) == Rows+1, Ap[0] == 0, Ap nondecreasing
//   - len(Aj) ≥ Ap[Rows] and len(Ax) ≥ Ap[Rows] (capacity may exceed the
//     logical nonzero count)
//   - every Aj value lies in [0, Cols)
//
// Entries within a row are not necessarily sorted, and a row may carry
// duplicate column indices.
type CSR[I Index, T scalar.Scalar] struct {
	Rows, Cols int
	Ap         []I // row pointers, len Rows+1
	Aj         []I // column indices
	Ax         []T // values, parallel to Aj
}

// NewCSR bundles caller-owned storage into a CSR header. No copying occurs.
func NewCSR[I Index, T scalar.Scalar](rows, cols int, ap, aj []I, ax []T) *CSR[I, T] {
	return &CSR[I, T]{Rows: rows, Cols: cols, Ap: ap, Aj: aj, Ax: ax}
}

// NNZ returns the logical nonzero count, Ap[Rows].
func (m *CSR[I, T]) NNZ() int {
	return int(m.Ap[m.Rows])
}

// BSR is a sparse matrix in block sparse row format: CSR structure over
// blocks, each nonzero a dense R×C block stored row-major and contiguously
// in Ax. Scalar dimensions are BlockRows·R × BlockCols·C.
type BSR[I Index, T scalar.Scalar] struct {
	BlockRows, BlockCols int
	R, C                 int // block shape
	Ap                   []I // block-row pointers, len BlockRows+1
	Aj                   []I // block-column indices
	Ax                   []T // block values, len ≥ Ap[BlockRows]·R·C
}

// NewBSR bundles caller-owned storage into a BSR header. No copying occurs.
func NewBSR[I Index, T scalar.Scalar](blockRows, blockCols, r, c int, ap, aj []I, ax []T) *BSR[I, T] {
	return &BSR[I, T]{BlockRows: blockRows, BlockCols: blockCols, R: r, C: c, Ap: ap, Aj: aj, Ax: ax}
}

// NNZBlocks returns the logical nonzero block count, Ap[BlockRows].
func (m *BSR[I, T]) NNZBlocks() int {
	return int(m.Ap[m.BlockRows])
}

// BlockSize returns the number of scalars per block, R·C.
func (m *BSR[I, T]) BlockSize() int {
	return m.R * m.C
}

// Block returns the value slice of the p-th stored block (a view, not a
// copy). p indexes stored blocks, not block columns.
func (m *BSR[I, T]) Block(p int) []T {
	bs := m.R * m.C
	return m.Ax[p*bs : (p+1)*bs]
}

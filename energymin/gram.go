// SPDX-License-Identifier: MIT

// Package energymin: local Gram-matrix assembly.
package energymin

import (
	"errors"
	"fmt"

	"github.com/velmarin/sagmg/scalar"
	"github.com/velmarin/sagmg/sparse"
)

// ErrBadNullDim is returned for a non-positive null-space dimension.
var ErrBadNullDim = errors.New("energymin: null-space dimension must be positive")

// BsqCols returns the packed width of the pairwise candidate products for
// nullDim candidates: nullDim·(nullDim+1)/2.
func BsqCols(nullDim int) int {
	return nullDim * (nullDim + 1) / 2
}

// PackBsq fills bsq with the upper-triangular pairwise products of the
// candidate matrix b (rows × nullDim, row-major):
//
//	bsq[k, idx(m,n)] = conj(B[k,m])·B[k,n]   for m ≤ n
//
// packed row-major with BsqCols(nullDim) entries per row in the order
// (0,0), (0,1), …, (0,nullDim-1), (1,1), …. This is the exact layout
// AssembleGram consumes.
func PackBsq[T scalar.Scalar](b []T, rows, nullDim int, bsq []T) error {
	if nullDim < 1 {
		return fmt.Errorf("%w: %d", ErrBadNullDim, nullDim)
	}
	cols := BsqCols(nullDim)
	if err := sparse.ValidateBufferLen("candidates b", len(b), rows*nullDim); err != nil {
		return err
	}
	if err := sparse.ValidateBufferLen("packed products bsq", len(bsq), rows*cols); err != nil {
		return err
	}

	for k := 0; k < rows; k++ {
		row := b[k*nullDim : (k+1)*nullDim]
		out := bsq[k*cols : (k+1)*cols]
		idx := 0
		for m := 0; m < nullDim; m++ {
			cm := scalar.Conj(row[m])
			for n := m; n < nullDim; n++ {
				out[idx] = cm * row[n]
				idx++
			}
		}
	}

	return nil
}

// AssembleGram accumulates, for every block row i of the sparsity pattern
// s, the Hermitian Gram matrix of the candidates restricted to i's nonzero
// column neighborhood:
//
//	BtB[i] = B_iᴴ·B_i,  B_i = B[neighborhood(i), :]
//
// bsq holds the packed pairwise products from PackBsq for every scalar
// column of s (s.BlockCols·s.C rows). btb receives one column-major
// nullDim×nullDim block per block row, overwritten in place. Hermitian
// symmetry holds by construction: the packed upper triangle feeds both the
// (m,n) slot and the conjugated (n,m) slot.
func AssembleGram[I sparse.Index, T scalar.Scalar](s *sparse.BSR[I, T], bsq []T, nullDim int, btb []T) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if nullDim < 1 {
		return fmt.Errorf("%w: %d", ErrBadNullDim, nullDim)
	}
	cols := BsqCols(nullDim)
	nds := nullDim * nullDim
	if err := sparse.ValidateBufferLen("packed products bsq", len(bsq), s.BlockCols*s.C*cols); err != nil {
		return err
	}
	if err := sparse.ValidateBufferLen("gram matrices btb", len(btb), s.BlockRows*nds); err != nil {
		return err
	}

	loc := make([]T, nds) // per-row accumulator, reused
	for i := 0; i < s.BlockRows; i++ {
		for q := range loc {
			loc[q] = 0
		}

		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			// Scalar column range covered by block column Aj[jj].
			colStart := int(s.Aj[jj]) * s.C
			for k := colStart; k < colStart+s.C; k++ {
				// Diagonal: packed (m,m) entries sit at stride nullDim-m.
				bc := 0
				bq := k * cols
				for m := 0; m < nullDim; m++ {
					loc[bc] += bsq[bq]
					bc += nullDim + 1
					bq += nullDim - m
				}
				// Off-diagonals: the packed (m,n) entry lands at
				// column-major (m,n), its conjugate at (n,m).
				bq = k * cols
				for m := 0; m < nullDim; m++ {
					for n := m + 1; n < nullDim; n++ {
						e := bsq[bq+n-m]
						loc[m*nullDim+n] += scalar.Conj(e)
						loc[n*nullDim+m] += e
					}
					bq += nullDim - m
				}
			}
		}

		copy(btb[i*nds:(i+1)*nds], loc)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package energymin: sparsity-restricted sparse matrix product (SMMP).
package energymin

import (
	"fmt"

	"github.com/velmarin/sagmg/scalar"
	"github.com/velmarin/sagmg/sparse"
)

// MaskedMultiply accumulates the block product A·B into S, but only at S's
// pre-existing sparsity pattern: an exact, incomplete product. Blocks of
// the true product that fall outside S's pattern are discarded without ever
// being computed, so the cost is bounded by nnz(A) times B's average row
// length instead of the full sparse-multiply cost.
//
// Block shapes must chain: A is R_A×C_A blocked, B is C_A×C_B blocked, and
// S is R_A×C_B blocked; block dimensions A(BlockRows×BlockMid),
// B(BlockMid×BlockCols) must frame S(BlockRows×BlockCols). Existing values
// of S are accumulated onto, not overwritten — zero s.Ax first for a plain
// restricted product.
//
// A dense scatter table over S's block columns maps each reachable column
// to its row-i value slot; it is rebuilt and cleared per block row, so the
// table does O(nnz(S)) total resets. 1×1 blocks take a scalar
// multiply-accumulate fast path.
func MaskedMultiply[I sparse.Index, T scalar.Scalar](a, b, s *sparse.BSR[I, T]) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if a.C != b.R || a.R != s.R || b.C != s.C {
		return fmt.Errorf("block chain %dx%d · %dx%d -> %dx%d: %w",
			a.R, a.C, b.R, b.C, s.R, s.C, sparse.ErrBlockShape)
	}
	if a.BlockCols != b.BlockRows || s.BlockRows != a.BlockRows || s.BlockCols != b.BlockCols {
		return fmt.Errorf("dimension chain %dx%d · %dx%d -> %dx%d: %w",
			a.BlockRows, a.BlockCols, b.BlockRows, b.BlockCols,
			s.BlockRows, s.BlockCols, sparse.ErrShapeMismatch)
	}

	abs, bbs, sbs := a.BlockSize(), b.BlockSize(), s.BlockSize()
	oneByOne := abs == 1 && bbs == 1 && sbs == 1

	// Scatter table: block column -> 1+slot of S's row-i block, 0 = absent.
	slot := make([]int, s.BlockCols)

	for i := 0; i < a.BlockRows; i++ {
		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			slot[s.Aj[jj]] = int(jj) + 1
		}

		for jj := a.Ap[i]; jj < a.Ap[i+1]; jj++ {
			j := int(a.Aj[jj])
			for kk := b.Ap[j]; kk < b.Ap[j+1]; kk++ {
				sk := slot[b.Aj[kk]]
				if sk == 0 {
					continue // outside S's pattern: discard
				}
				if oneByOne {
					s.Ax[sk-1] += a.Ax[jj] * b.Ax[kk]

					continue
				}
				scalar.Gemm(scalar.NoTrans, scalar.NoTrans, a.R, b.C, a.C,
					a.Ax[int(jj)*abs:(int(jj)+1)*abs],
					b.Ax[int(kk)*bbs:(int(kk)+1)*bbs],
					s.Ax[(sk-1)*sbs:sk*sbs],
					true)
			}
		}

		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			slot[s.Aj[jj]] = 0
		}
	}

	return nil
}

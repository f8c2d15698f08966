// SPDX-License-Identifier: MIT

// Package energymin: null-space constraint enforcement on a prolongator
// update.
package energymin

import (
	"github.com/velmarin/sagmg/scalar"
	"github.com/velmarin/sagmg/sparse"
)

// SatisfyConstraints projects the BSR update s so that it reproduces the
// near-nullspace candidates exactly: for every nonzero block (i, j),
//
//	S[i,j] -= UB[i] · ( BtBinv[i] · B[j]ᴴ )
//
// after which S·B = 0 and the update cannot disturb candidate reproduction
// when applied to the prolongator.
//
// Arguments, with R = s.R rows and C = s.C columns per block:
//
//	bt:     conj(B), row-major C×nullDim block per block column of s —
//	        because it is pre-conjugated, a plain transpose yields B[j]ᴴ
//	ub:     S·B, row-major R×nullDim block per block row of s
//	btbinv: pseudoinverses of the restricted Gram matrices, one row-major
//	        nullDim×nullDim block per block row (Hermitian, so the
//	        column-major blocks from AssembleGram feed in unchanged for
//	        real scalars; conjugate first for complex ones)
//
// The two scratch products are fixed-size and reused across the whole
// sweep; no other allocation occurs. s.Ax is mutated in place.
func SatisfyConstraints[I sparse.Index, T scalar.Scalar](s *sparse.BSR[I, T], nullDim int, bt, ub, btbinv []T) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if nullDim < 1 {
		return ErrBadNullDim
	}
	nds := nullDim * nullDim
	if err := sparse.ValidateBufferLen("conjugated candidates bt", len(bt), s.BlockCols*s.C*nullDim); err != nil {
		return err
	}
	if err := sparse.ValidateBufferLen("update product ub", len(ub), s.BlockRows*s.R*nullDim); err != nil {
		return err
	}
	if err := sparse.ValidateBufferLen("gram pseudoinverses btbinv", len(btbinv), s.BlockRows*nds); err != nil {
		return err
	}

	bs := s.R * s.C
	c := make([]T, nullDim*s.C) // BtBinv[i]·B[j]ᴴ
	update := make([]T, bs)     // UB[i]·c

	for i := 0; i < s.BlockRows; i++ {
		gi := btbinv[i*nds : (i+1)*nds]
		ubi := ub[i*s.R*nullDim : (i+1)*s.R*nullDim]

		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			j := int(s.Aj[jj])
			btj := bt[j*s.C*nullDim : (j+1)*s.C*nullDim]

			// c = BtBinv[i] · btjᵀ; btj is already conjugated, so the
			// plain transpose is the conjugate transpose of B[j].
			scalar.Gemm(scalar.NoTrans, scalar.Trans, nullDim, s.C, nullDim, gi, btj, c, false)
			// update = UB[i] · c
			scalar.Gemm(scalar.NoTrans, scalar.NoTrans, s.R, s.C, nullDim, ubi, c, update, false)

			blk := s.Block(int(jj))
			for q, u := range update {
				blk[q] -= u
			}
		}
	}

	return nil
}

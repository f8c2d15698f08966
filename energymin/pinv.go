// Package energymin: SVD pseudoinversion of the assembled Gram matrices.
package energymin

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/velmarin/sagmg/sparse"
)

var (
	// ErrSVDFailed is returned when the SVD of a Gram block does not
	// converge.
	ErrSVDFailed = errors.New("energymin: SVD failed to converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("energymin: invalid option supplied")
)

// defaultRCond is the relative singular-value cutoff below which a Gram
// direction is treated as numerically null.
const defaultRCond = 1e-12

// Option configures GramPseudoInverse via functional arguments.
type Option func(*pinvOptions)

type pinvOptions struct {
	rcond float64
	err   error
}

// WithRCond sets the relative cutoff: singular values below rcond times
// the largest one are truncated. rcond must lie in (0, 1).
func WithRCond(rcond float64) Option {
	return func(o *pinvOptions) {
		if rcond <= 0 || rcond >= 1 {
			o.err = fmt.Errorf("%w: rcond = %g", ErrOptionViolation, rcond)

			return
		}
		o.rcond = rcond
	}
}

// GramPseudoInverse replaces each nullDim×nullDim block of btb with its
// Moore–Penrose pseudoinverse, computed by SVD with relative truncation.
// Blocks are Hermitian (real symmetric here), so their row-major and
// column-major layouts coincide and AssembleGram output feeds in directly.
//
// Rank-deficient blocks are still pseudoinverted by truncation, but their
// block-row indices are returned so the caller can react instead of
// proceeding on a silently regularized constraint system — near-singular
// local Gram matrices are a conditioning signal, not a detail.
func GramPseudoInverse(btb []float64, nullDim int, opts ...Option) ([]int, error) {
	if nullDim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadNullDim, nullDim)
	}
	o := pinvOptions{rcond: defaultRCond}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	nds := nullDim * nullDim
	if len(btb)%nds != 0 {
		return nil, fmt.Errorf("gram buffer %d not a multiple of %d: %w",
			len(btb), nds, sparse.ErrBufferLength)
	}

	var deficient []int
	var svd mat.SVD
	var u, v, pinv mat.Dense
	w := mat.NewDense(nullDim, nullDim, nil)

	for i := 0; i < len(btb)/nds; i++ {
		block := btb[i*nds : (i+1)*nds]
		g := mat.NewDense(nullDim, nullDim, block)
		if !svd.Factorize(g, mat.SVDFull) {
			return deficient, fmt.Errorf("block row %d: %w", i, ErrSVDFailed)
		}
		svd.UTo(&u)
		svd.VTo(&v)
		sv := svd.Values(nil)

		// Truncated rank under the relative cutoff.
		rank := 0
		for _, sval := range sv {
			if sval > o.rcond*sv[0] {
				rank++
			}
		}
		if rank < nullDim {
			deficient = append(deficient, i)
		}

		// pinv = V · Σ⁺ · Uᵀ with the truncated spectrum.
		w.Zero()
		for k := 0; k < rank; k++ {
			for r := 0; r < nullDim; r++ {
				w.Set(r, k, v.At(r, k)/sv[k])
			}
		}
		pinv.Mul(w, u.T())
		copy(block, pinv.RawMatrix().Data)
	}

	return deficient, nil
}

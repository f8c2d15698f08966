package tentative

import (
	"errors"
	"fmt"
	"math"

	"github.com/velmarin/sagmg/aggregate"
	"github.com/velmarin/sagmg/scalar"
	"github.com/velmarin/sagmg/sparse"
)

var (
	// ErrNilOperator is returned when the aggregate operator is nil.
	ErrNilOperator = errors.New("tentative: aggregate operator is nil")

	// ErrBadBlockShape is returned for non-positive candidate block
	// dimensions.
	ErrBadBlockShape = errors.New("tentative: block dimensions must be positive")

	// ErrNegativeTol is returned when the drop tolerance is negative.
	ErrNegativeTol = errors.New("tentative: tolerance must be non-negative")
)

// Fit fills the tentative prolongator values p and the coarse candidate
// factor r from the fine candidates b, aggregate by aggregate.
//
// op gives each aggregate's member nodes. Each fine node carries a k1×k2
// row-major candidate block (k1 scalar rows, k2 candidate columns), so
//
//	b: op.Nodes·k1·k2 values, the fine-level candidates
//	p: len(op.Rows)·k1·k2 values, the prolongator blocks in member order
//	r: op.Aggregates·k2·k2 values, row-major k2×k2 upper-triangular factors
//
// p and r are caller-allocated; Fit overwrites both (r is zeroed first) and
// allocates nothing. A candidate column whose post-orthogonalization norm
// ends up ≤ tol times its pre-orthogonalization norm is zeroed with a zero
// diagonal entry in R.
func Fit[I sparse.Index, T scalar.Scalar, F scalar.Real](op *aggregate.Operator[I], k1, k2 int, p, b, r []T, tol F) error {
	if op == nil {
		return ErrNilOperator
	}
	if k1 < 1 || k2 < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadBlockShape, k1, k2)
	}
	if tol < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeTol, tol)
	}
	bs := k1 * k2
	if err := sparse.ValidateBufferLen("prolongator p", len(p), len(op.Rows)*bs); err != nil {
		return err
	}
	if err := sparse.ValidateBufferLen("candidates b", len(b), op.Nodes*bs); err != nil {
		return err
	}
	if err := sparse.ValidateBufferLen("coarse factor r", len(r), op.Aggregates*k2*k2); err != nil {
		return err
	}

	for i := range r[:op.Aggregates*k2*k2] {
		r[i] = 0
	}

	// Copy each aggregate's member candidate blocks into p, member order.
	for j := 0; j < op.Aggregates; j++ {
		dst := int(op.Ptr[j]) * bs
		for ii := op.Ptr[j]; ii < op.Ptr[j+1]; ii++ {
			src := int(op.Rows[ii]) * bs
			copy(p[dst:dst+bs], b[src:src+bs])
			dst += bs
		}
	}

	// Orthonormalize the k2 candidate columns within each aggregate.
	// Columns are strided by k2 inside the aggregate's contiguous region.
	for j := 0; j < op.Aggregates; j++ {
		start := int(op.Ptr[j]) * bs
		end := int(op.Ptr[j+1]) * bs
		rj := r[j*k2*k2 : (j+1)*k2*k2]

		for bj := 0; bj < k2; bj++ {
			threshold := float64(tol) * colNorm(p, start+bj, end, k2)

			// Orthogonalize bj against the processed columns bi < bj.
			for bi := 0; bi < bj; bi++ {
				var dot T
				for qi, qj := start+bi, start+bj; qi < end; qi, qj = qi+k2, qj+k2 {
					dot += scalar.Dot(p[qj], p[qi])
				}
				for qi, qj := start+bi, start+bj; qi < end; qi, qj = qi+k2, qj+k2 {
					p[qj] -= dot * p[qi]
				}
				rj[k2*bi+bj] = dot
			}

			norm := colNorm(p, start+bj, end, k2)

			// Normalize if the column kept enough mass, else drop it to
			// zero (numerically redundant candidate).
			var scale T
			if norm > threshold {
				scale = scalar.FromFloat[T](1 / norm)
				rj[k2*bj+bj] = scalar.FromFloat[T](norm)
			}
			for q := start + bj; q < end; q += k2 {
				p[q] *= scale
			}
		}
	}

	return nil
}

// colNorm returns the Euclidean norm of the strided column p[from:to:step].
func colNorm[T scalar.Scalar](p []T, from, to, step int) float64 {
	var sq float64
	for q := from; q < to; q += step {
		sq += scalar.AbsSq(p[q])
	}

	return math.Sqrt(sq)
}

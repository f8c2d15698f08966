package strength

import (
	"errors"
	"fmt"

	"github.com/velmarin/sagmg/scalar"
	"github.com/velmarin/sagmg/sparse"
)

// ErrNegativeTheta is returned when the strength threshold is negative.
var ErrNegativeTheta = errors.New("strength: threshold must be non-negative")

// Filter writes into s the strength-of-connection graph of the square CSR
// matrix a under threshold theta.
//
// An off-diagonal entry A(i,j) is strong iff
//
//	|A(i,j)|² ≥ θ²·diag[i]·diag[j]
//
// where diag[i] is the magnitude of row i's diagonal (duplicate diagonal
// entries summed first). Diagonal entries are always kept.
//
// s is caller-preallocated with len(s.Ap) ≥ a.Rows+1 and index/value
// capacity of at least nnz(a); Filter fills s.Ap densely and sets s's
// dimensions, never reallocating. Returns ErrNegativeTheta for theta < 0,
// sparse.ErrShapeMismatch for non-square a, sparse.ErrCapacity for an
// undersized s, and passes through a.Validate() failures.
func Filter[I sparse.Index, T scalar.Scalar, F scalar.Real](a *sparse.CSR[I, T], theta F, s *sparse.CSR[I, T]) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.Rows != a.Cols {
		return fmt.Errorf("strength matrix is %dx%d: %w", a.Rows, a.Cols, sparse.ErrShapeMismatch)
	}
	if theta < 0 {
		return fmt.Errorf("%w: theta = %v", ErrNegativeTheta, theta)
	}
	if s == nil {
		return sparse.ErrNilMatrix
	}
	if len(s.Ap) < a.Rows+1 {
		return fmt.Errorf("output row pointer: %w", sparse.ErrCapacity)
	}
	if len(s.Aj) < a.NNZ() || len(s.Ax) < a.NNZ() {
		return fmt.Errorf("output needs capacity %d (%d indices, %d values): %w",
			a.NNZ(), len(s.Aj), len(s.Ax), sparse.ErrCapacity)
	}

	n := a.Rows

	// Diagonal magnitudes, duplicates summed before taking |·|.
	diags := make([]float64, n)
	for i := 0; i < n; i++ {
		var d T
		for jj := a.Ap[i]; jj < a.Ap[i+1]; jj++ {
			if int(a.Aj[jj]) == i {
				d += a.Ax[jj]
			}
		}
		diags[i] = scalar.Abs(d)
	}

	thetaSq := float64(theta) * float64(theta)

	var nnz I
	s.Ap[0] = 0
	for i := 0; i < n; i++ {
		eps := thetaSq * diags[i] // row budget: θ²·diag[i]

		for jj := a.Ap[i]; jj < a.Ap[i+1]; jj++ {
			j := a.Aj[jj]
			aij := a.Ax[jj]

			if int(j) == i {
				// Always keep the diagonal.
				s.Aj[nnz] = j
				s.Ax[nnz] = aij
				nnz++
			} else if scalar.AbsSq(aij) >= eps*diags[j] {
				s.Aj[nnz] = j
				s.Ax[nnz] = aij
				nnz++
			}
		}
		s.Ap[i+1] = nnz
	}

	s.Rows, s.Cols = n, n

	return nil
}

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmarin/sagmg/sparse"
)

func TestLaplacian1D(t *testing.T) {
	a, err := sparse.Laplacian1D[int32, float64](3)
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	assert.Equal(t, []int32{0, 2, 5, 7}, a.Ap)
	assert.Equal(t, []int32{0, 1, 0, 1, 2, 1, 2}, a.Aj)
	assert.Equal(t, []float64{2, -1, -1, 2, -1, -1, 2}, a.Ax)
}

func TestLaplacian1DSingleton(t *testing.T) {
	a, err := sparse.Laplacian1D[int, float64](1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, a.Ax)
	assert.Equal(t, 1, a.NNZ())
}

func TestLaplacian2D(t *testing.T) {
	a, err := sparse.Laplacian2D[int32, float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	// Each cell of a 2×2 grid has exactly two neighbors.
	assert.Equal(t, 4, a.Rows)
	assert.Equal(t, 12, a.NNZ())
	for i := 0; i < 4; i++ {
		var rowSum float64
		var diag float64
		for jj := a.Ap[i]; jj < a.Ap[i+1]; jj++ {
			rowSum += a.Ax[jj]
			if int(a.Aj[jj]) == i {
				diag = a.Ax[jj]
			}
		}
		assert.Equal(t, 4.0, diag)
		assert.Equal(t, 2.0, rowSum, "4 on the diagonal minus two neighbors")
	}
}

func TestLaplacian2DDegenerateStrip(t *testing.T) {
	// A w×1 strip is the 1D stencil with a stiffer diagonal.
	a, err := sparse.Laplacian2D[int, float64](3, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5, 7}, a.Ap)
	assert.Equal(t, []float64{4, -1, -1, 4, -1, -1, 4}, a.Ax)
}

func TestLatticeErrors(t *testing.T) {
	_, err := sparse.Laplacian1D[int, float64](0)
	assert.ErrorIs(t, err, sparse.ErrEmptyLattice)

	_, err = sparse.Laplacian2D[int, float64](3, 0)
	assert.ErrorIs(t, err, sparse.ErrEmptyLattice)
	_, err = sparse.Laplacian2D[int, float64](-1, 3)
	assert.ErrorIs(t, err, sparse.ErrEmptyLattice)
}

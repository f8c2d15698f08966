package energymin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmarin/sagmg/energymin"
	"github.com/velmarin/sagmg/sparse"
)

// toDense expands a BSR matrix to a dense scalar matrix for reference
// computations.
func toDense(m *sparse.BSR[int32, float64]) [][]float64 {
	rows := m.BlockRows * m.R
	cols := m.BlockCols * m.C
	d := make([][]float64, rows)
	for i := range d {
		d[i] = make([]float64, cols)
	}
	for i := 0; i < m.BlockRows; i++ {
		for jj := m.Ap[i]; jj < m.Ap[i+1]; jj++ {
			blk := m.Block(int(jj))
			j := int(m.Aj[jj])
			for r := 0; r < m.R; r++ {
				for c := 0; c < m.C; c++ {
					d[i*m.R+r][j*m.C+c] += blk[r*m.C+c]
				}
			}
		}
	}
	return d
}

// denseMul multiplies two dense matrices.
func denseMul(a, b [][]float64) [][]float64 {
	m, k, n := len(a), len(b), len(b[0])
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, n)
		for l := 0; l < k; l++ {
			for j := 0; j < n; j++ {
				out[i][j] += a[i][l] * b[l][j]
			}
		}
	}
	return out
}

// TestMaskedMultiplyScalar: for 1×1 blocks, the masked product equals the
// full product restricted to S's pattern, exactly.
func TestMaskedMultiplyScalar(t *testing.T) {
	// A: 3×3, a small unsymmetric pattern.
	a := sparse.NewBSR[int32, float64](3, 3, 1, 1,
		[]int32{0, 2, 4, 6},
		[]int32{0, 1, 1, 2, 0, 2},
		[]float64{2, -1, 3, 0.5, 1, 4},
	)
	b := sparse.NewBSR[int32, float64](3, 3, 1, 1,
		[]int32{0, 2, 3, 5},
		[]int32{0, 2, 1, 0, 2},
		[]float64{1, 2, -2, 3, 1},
	)
	// S's pattern deliberately misses some true-product entries (e.g.
	// (0,1)) and includes one that stays zero.
	s := sparse.NewBSR[int32, float64](3, 3, 1, 1,
		[]int32{0, 2, 4, 6},
		[]int32{0, 2, 0, 1, 1, 2},
		make([]float64, 6),
	)

	require.NoError(t, energymin.MaskedMultiply(a, b, s))

	want := denseMul(toDense(a), toDense(b))
	for i := 0; i < 3; i++ {
		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			assert.Equal(t, want[i][s.Aj[jj]], s.Ax[jj],
				"S(%d,%d) must equal the exact product", i, s.Aj[jj])
		}
	}
}

// TestMaskedMultiplyDiscardsOutside: positions outside S's pattern are
// never computed — S's storage holds only pattern entries, and the entries
// that are present match the reference, so the discarded mass shows up
// nowhere.
func TestMaskedMultiplyDiscardsOutside(t *testing.T) {
	// Dense 2×2 product, but S keeps only the diagonal.
	a := sparse.NewBSR[int32, float64](2, 2, 1, 1,
		[]int32{0, 2, 4}, []int32{0, 1, 0, 1}, []float64{1, 2, 3, 4})
	b := sparse.NewBSR[int32, float64](2, 2, 1, 1,
		[]int32{0, 2, 4}, []int32{0, 1, 0, 1}, []float64{5, 6, 7, 8})
	s := sparse.NewBSR[int32, float64](2, 2, 1, 1,
		[]int32{0, 1, 2}, []int32{0, 1}, make([]float64, 2))

	require.NoError(t, energymin.MaskedMultiply(a, b, s))

	want := denseMul(toDense(a), toDense(b))
	assert.Equal(t, []float64{want[0][0], want[1][1]}, s.Ax)
}

// TestMaskedMultiplyAccumulates: existing S values are accumulated onto,
// matching the in-place contract.
func TestMaskedMultiplyAccumulates(t *testing.T) {
	a := sparse.NewBSR[int32, float64](1, 1, 1, 1,
		[]int32{0, 1}, []int32{0}, []float64{2})
	b := sparse.NewBSR[int32, float64](1, 1, 1, 1,
		[]int32{0, 1}, []int32{0}, []float64{3})
	s := sparse.NewBSR[int32, float64](1, 1, 1, 1,
		[]int32{0, 1}, []int32{0}, []float64{100})

	require.NoError(t, energymin.MaskedMultiply(a, b, s))
	assert.Equal(t, []float64{106}, s.Ax)
}

// TestMaskedMultiplyBlocked checks the GEMM path with a 2×2 · 2×1 block
// chain against the dense reference.
func TestMaskedMultiplyBlocked(t *testing.T) {
	a := sparse.NewBSR[int32, float64](2, 2, 2, 2,
		[]int32{0, 2, 3},
		[]int32{0, 1, 1},
		[]float64{
			1, 2, 3, 4, // block (0,0)
			-1, 0, 2, 1, // block (0,1)
			0.5, 1, -2, 3, // block (1,1)
		},
	)
	b := sparse.NewBSR[int32, float64](2, 2, 2, 1,
		[]int32{0, 2, 3},
		[]int32{0, 1, 0},
		[]float64{
			1, -1, // block (0,0)
			2, 0.5, // block (0,1)
			3, -2, // block (1,0)
		},
	)
	s := sparse.NewBSR[int32, float64](2, 2, 2, 1,
		[]int32{0, 2, 3},
		[]int32{0, 1, 0},
		make([]float64, 3*2),
	)

	require.NoError(t, energymin.MaskedMultiply(a, b, s))

	want := denseMul(toDense(a), toDense(b))
	got := toDense(s)
	for i := 0; i < 2; i++ {
		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			j := int(s.Aj[jj])
			for r := 0; r < s.R; r++ {
				assert.InDelta(t, want[i*s.R+r][j], got[i*s.R+r][j], 1e-13,
					"scalar entry (%d,%d)", i*s.R+r, j)
			}
		}
	}
}

// TestMaskedMultiplyComplex exercises the generic GEMM path.
func TestMaskedMultiplyComplex(t *testing.T) {
	a := sparse.NewBSR[int32, complex128](1, 1, 1, 1,
		[]int32{0, 1}, []int32{0}, []complex128{complex(0, 2)})
	b := sparse.NewBSR[int32, complex128](1, 1, 1, 1,
		[]int32{0, 1}, []int32{0}, []complex128{complex(3, 0)})
	s := sparse.NewBSR[int32, complex128](1, 1, 1, 1,
		[]int32{0, 1}, []int32{0}, make([]complex128, 1))

	require.NoError(t, energymin.MaskedMultiply(a, b, s))
	assert.Equal(t, complex(0.0, 6), s.Ax[0])
}

func TestMaskedMultiplyErrors(t *testing.T) {
	a := sparse.NewBSR[int32, float64](1, 1, 2, 2,
		[]int32{0, 1}, []int32{0}, make([]float64, 4))
	b := sparse.NewBSR[int32, float64](1, 1, 1, 1,
		[]int32{0, 1}, []int32{0}, make([]float64, 1))
	s := sparse.NewBSR[int32, float64](1, 1, 2, 1,
		[]int32{0, 1}, []int32{0}, make([]float64, 2))

	// a.C (2) != b.R (1): broken block chain.
	err := energymin.MaskedMultiply(a, b, s)
	assert.ErrorIs(t, err, sparse.ErrBlockShape)

	// Dimension chain mismatch.
	b2 := sparse.NewBSR[int32, float64](2, 1, 2, 1,
		[]int32{0, 1, 1}, []int32{0}, make([]float64, 2))
	a2 := sparse.NewBSR[int32, float64](1, 1, 2, 2,
		[]int32{0, 1}, []int32{0}, make([]float64, 4))
	err = energymin.MaskedMultiply(a2, b2, s)
	assert.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

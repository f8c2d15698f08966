// SPDX-License-Identifier: MIT
// Package sparse: structured lattice matrices.
// Finite-difference Laplacians on regular grids are the canonical smooth
// test problems for multilevel setup; building them here keeps kernel
// tests and examples free of ad-hoc assembly loops.

package sparse

import "github.com/velmarin/sagmg/scalar"

// Laplacian1D returns the n×n tridiagonal matrix of the 1D Poisson
// stencil [-1, 2, -1] with natural (Dirichlet) boundaries.
// Returns ErrEmptyLattice when n < 1.
// Complexity: O(n) time and memory.
func Laplacian1D[I Index, T scalar.Scalar](n int) (*CSR[I, T], error) {
	if n < 1 {
		return nil, ErrEmptyLattice
	}
	nnz := 3*n - 2
	ap := make([]I, n+1)
	aj := make([]I, 0, nnz)
	ax := make([]T, 0, nnz)
	for i := 0; i < n; i++ {
		if i > 0 {
			aj = append(aj, I(i-1))
			ax = append(ax, T(-1))
		}
		aj = append(aj, I(i))
		ax = append(ax, T(2))
		if i < n-1 {
			aj = append(aj, I(i+1))
			ax = append(ax, T(-1))
		}
		ap[i+1] = I(len(aj))
	}

	return NewCSR(n, n, ap, aj, ax), nil
}

// Laplacian2D returns the (w·h)×(w·h) matrix of the 5-point Poisson
// stencil on a w×h grid with 4-connectivity and Dirichlet boundaries:
// 4 on the diagonal, -1 toward each in-bounds neighbor. Cells are
// numbered row by row, so cell (x, y) is row y·w + x.
// Returns ErrEmptyLattice when w < 1 or h < 1.
// Complexity: O(w×h) time and memory.
func Laplacian2D[I Index, T scalar.Scalar](w, h int) (*CSR[I, T], error) {
	if w < 1 || h < 1 {
		return nil, ErrEmptyLattice
	}
	n := w * h
	ap := make([]I, n+1)
	aj := make([]I, 0, 5*n)
	ax := make([]T, 0, 5*n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if y > 0 {
				aj = append(aj, I(i-w))
				ax = append(ax, T(-1))
			}
			if x > 0 {
				aj = append(aj, I(i-1))
				ax = append(ax, T(-1))
			}
			aj = append(aj, I(i))
			ax = append(ax, T(4))
			if x < w-1 {
				aj = append(aj, I(i+1))
				ax = append(ax, T(-1))
			}
			if y < h-1 {
				aj = append(aj, I(i+w))
				ax = append(ax, T(-1))
			}
			ap[i+1] = I(len(aj))
		}
	}

	return NewCSR(n, n, ap, aj, ax), nil
}

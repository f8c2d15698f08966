// Package scalar: small dense GEMM used by the blocked sparse kernels.
// Blocks in BSR storage are row-major, so the multiply is defined row-major
// throughout; transposition is a view, never a copy.
package scalar

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Op selects how a GEMM operand is viewed.
type Op uint8

const (
	// NoTrans uses the operand as stored.
	NoTrans Op = iota
	// Trans uses the (non-conjugating) transpose of the operand.
	Trans
	// ConjTrans uses the conjugate transpose of the operand.
	// For real instantiations it is identical to Trans.
	ConjTrans
)

// Gemm computes c = op(a)·op(b), or c += op(a)·op(b) when accumulate is set.
//
// All matrices are dense and row-major. op(a) is m×k and op(b) is k×n, so
// the stored operands are:
//
//	a: m×k when opA == NoTrans, k×m otherwise
//	b: k×n when opB == NoTrans, n×k otherwise
//	c: m×n, always stored directly
//
// The float64 instantiation is delegated to gonum's blas64; the generic
// path is a plain triple loop, which is the right shape for the tiny blocks
// (null-space dimension × block size) this package serves.
// Dimensions are a caller contract and are not validated here.
func Gemm[T Scalar](opA, opB Op, m, n, k int, a, b, c []T, accumulate bool) {
	if af, ok := any(a).([]float64); ok {
		gemm64(opA, opB, m, n, k, af, any(b).([]float64), any(c).([]float64), accumulate)
		return
	}

	ldA, ldB := k, n
	if opA != NoTrans {
		ldA = m
	}
	if opB != NoTrans {
		ldB = k
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for l := 0; l < k; l++ {
				sum += at(a, ldA, i, l, opA) * at(b, ldB, l, j, opB)
			}
			if accumulate {
				c[i*n+j] += sum
			} else {
				c[i*n+j] = sum
			}
		}
	}
}

// at reads element (i, j) of the virtual operand op(x) with leading
// dimension ld of the stored matrix.
func at[T Scalar](x []T, ld, i, j int, op Op) T {
	switch op {
	case NoTrans:
		return x[i*ld+j]
	case Trans:
		return x[j*ld+i]
	default:
		return Conj(x[j*ld+i])
	}
}

// gemm64 is the float64 fast path through blas64.
func gemm64(opA, opB Op, m, n, k int, a, b, c []float64, accumulate bool) {
	ga := blas64.General{Rows: m, Cols: k, Stride: k, Data: a}
	ta := blas.NoTrans
	if opA != NoTrans {
		ga.Rows, ga.Cols, ga.Stride = k, m, m
		ta = blas.Trans
	}
	gb := blas64.General{Rows: k, Cols: n, Stride: n, Data: b}
	tb := blas.NoTrans
	if opB != NoTrans {
		gb.Rows, gb.Cols, gb.Stride = n, k, k
		tb = blas.Trans
	}
	gc := blas64.General{Rows: m, Cols: n, Stride: n, Data: c}
	beta := 0.0
	if accumulate {
		beta = 1.0
	}
	blas64.Gemm(ta, tb, 1, ga, gb, beta, gc)
}

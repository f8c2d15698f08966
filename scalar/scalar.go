// Package scalar: generic primitives over the four machine scalar types.
// Conj/Abs/AbsSq/Dot resolve real-versus-complex behavior with exhaustive
// type switches; the switch is free after inlining for a fixed instantiation.
package scalar

import (
	"math"
	"math/cmplx"
)

// Scalar is the set of value types the kernels operate on.
// The constraint is deliberately exact (no ~) so that the primitives can
// dispatch with a plain type switch.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Real is the set of types used for norms, thresholds and tolerances.
// A kernel over complex values still takes its tolerance as a Real.
type Real interface {
	float32 | float64
}

// Conj returns the complex conjugate of v.
// Real types implement conjugation as identity.
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v
	}
}

// Abs returns |v| as a float64.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0 // unreachable: Scalar is exhaustive
}

// AbsSq returns |v|² as a float64, without the square root.
func AbsSq[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x) * float64(x)
	case float64:
		return x * x
	case complex64:
		return float64(real(x))*float64(real(x)) + float64(imag(x))*float64(imag(x))
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}
	return 0 // unreachable: Scalar is exhaustive
}

// Dot returns a·conj(b), the elementwise term of the conjugated inner
// product Σ aₖ·conj(bₖ). For real types this is plain multiplication.
func Dot[T Scalar](a, b T) T {
	return a * Conj(b)
}

// FromFloat converts a float64 into T, mapping onto the real axis for
// complex instantiations. Go forbids the direct conversion when T ranges
// over both real and complex types, hence the switch.
func FromFloat[T Scalar](f float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(f)).(T)
	case float64:
		return any(f).(T)
	case complex64:
		return any(complex64(complex(f, 0))).(T)
	case complex128:
		return any(complex(f, 0)).(T)
	}
	return z // unreachable: Scalar is exhaustive
}

// SPDX-License-Identifier: MIT

// Package so2 - group-level (static) operations.
//
// The tangent space so(2) is the real line: a tangent element is an angle θ.
// hat/vee move between θ and its 2×2 skew-symmetric form, exp/log between θ
// and the group.

package so2

import (
	"math"

	"github.com/katalvlaran/liegroup/matrix"
)

const (
	ctxVee       = "Vee"
	ctxVeeMatrix = "VeeMatrix"
)

// Exp maps the tangent element theta to the rotation (cos θ, sin θ).
// Defined for every finite theta; the result is unit length up to rounding
// and is not renormalized.
func Exp[T Scalar](theta T) SO2[T] {
	s, c := math.Sincos(float64(theta))

	return SO2[T]{c: [2]T{T(c), T(s)}}
}

// Log maps g to its principal angle atan2(im, re) in (-π, π].
func Log[T Scalar](g SO2[T]) T {
	return logOf[T](g)
}

// Generator returns the infinitesimal generator of SO(2), hat(1):
//
//	| 0 -1 |
//	| 1  0 |
func Generator[T Scalar]() matrix.Mat2[T] {
	return Hat[T](1)
}

// Hat returns the Lie algebra matrix of theta, [[0, -θ], [θ, 0]].
func Hat[T Scalar](theta T) matrix.Mat2[T] {
	return matrix.NewMat2(0, -theta, theta, 0)
}

// Vee is the inverse of Hat: it returns omega(1,0).
//
// Only the off-diagonal pair is inspected; the diagonal is ignored.
//
// Errors:
//   - ErrAsymmetry when |Ω(1,0) + Ω(0,1)| ≥ Epsilon[T]().
func Vee[T Scalar](omega matrix.Mat2[T]) (T, error) {
	return vee(omega, Epsilon[T](), ctxVee)
}

// VeeMatrix is Vee for a dynamic 2×2 matrix, e.g. a *matrix.Dense coming
// from a solver. The asymmetry tolerance defaults to Epsilon[T]() and can be
// overridden with WithEpsilon.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for a nil or non-2×2 input.
//   - ErrAsymmetry as in Vee.
func VeeMatrix[T Scalar](m matrix.Matrix, opts ...Option) (T, error) {
	omega, err := matrix.Mat2From[T](m)
	if err != nil {
		return 0, so2Errorf(ctxVeeMatrix, err)
	}

	return vee(omega, tolerance[T](gatherOptions(opts...)), ctxVeeMatrix)
}

func vee[T Scalar](omega matrix.Mat2[T], eps T, op string) (T, error) {
	// Negated so a NaN entry fails the check too.
	if !(abs(omega[1][0]+omega[0][1]) < eps) {
		return 0, so2Errorf(op, ErrAsymmetry)
	}

	return omega[1][0], nil
}

// LieBracket returns [θ1, θ2], which is 0 because so(2) is commutative.
func LieBracket[T Scalar](theta1, theta2 T) T {
	return 0
}

// Cast converts any rotation to scalar type U. The converted pair is not
// renormalized; narrowing to float32 keeps unit length to float32 precision.
func Cast[U, T Scalar, E Element[T]](e E) SO2[U] {
	return SO2[U]{c: [2]U(matrix.CastVec2[U](e.UnitComplex()))}
}

// ApproxEqual reports whether a and b have coefficient-wise distance within
// the tolerance (Epsilon[T]() unless WithEpsilon is given).
//
// Note: this compares representations, and (re, im) is unique per rotation,
// so no angle wrapping is involved.
func ApproxEqual[T Scalar](a, b SO2[T], opts ...Option) bool {
	tol := tolerance[T](gatherOptions(opts...))

	return a.UnitComplex().ApproxEqual(b.UnitComplex(), tol)
}

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

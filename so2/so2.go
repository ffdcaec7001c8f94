// SPDX-License-Identifier: MIT

package so2

import (
	"fmt"

	"github.com/katalvlaran/liegroup/matrix"
)

// ---------- constructor context tags ----------

const (
	ctxFromPair    = "FromPair"
	ctxFromVec     = "FromVec"
	ctxFromComplex = "FromComplex"
	ctxFromMatrix  = "FromMatrix"
	ctxSetComplex  = "SetComplex"
	ctxNormalize   = "Normalize"
)

// SO2 is a planar rotation that owns its unit complex number re + i·im.
//
// SO2 has value semantics: it is two scalars, copies are independent, and it
// never allocates. The zero value is NOT a valid rotation; start from
// Identity, Exp or one of the From* constructors.
//
// Read operations use value receivers; the few mutating operations use
// pointer receivers and keep re² + im² = 1 on return, except FastMultiply
// and writes through Data, which leave repairing the invariant to an
// explicit Normalize.
type SO2[T Scalar] struct {
	c [2]T // (real, imaginary)
}

// Identity returns the rotation by zero radians, (1, 0).
func Identity[T Scalar]() SO2[T] {
	return SO2[T]{c: [2]T{1, 0}}
}

// FromAngle returns the rotation by theta radians. Same as Exp(theta).
func FromAngle[T Scalar](theta T) SO2[T] {
	return Exp(theta)
}

// FromPair builds a rotation from a (not necessarily unit) complex number
// re + i·im, normalized to unit length.
//
// Errors:
//   - ErrDegenerateInput when re² + im² ≤ Epsilon[T]() or is NaN.
func FromPair[T Scalar](re, im T) (SO2[T], error) {
	var g SO2[T]
	if err := setComplex[T](&g, matrix.Vec2[T]{re, im}); err != nil {
		return SO2[T]{}, so2Errorf(ctxFromPair, err)
	}

	return g, nil
}

// FromVec is FromPair for a 2-vector laid out as (real, imaginary).
func FromVec[T Scalar](v matrix.Vec2[T]) (SO2[T], error) {
	var g SO2[T]
	if err := setComplex[T](&g, v); err != nil {
		return SO2[T]{}, so2Errorf(ctxFromVec, err)
	}

	return g, nil
}

// FromComplex is FromPair for a native complex value, converted to T.
func FromComplex[T Scalar](z complex128) (SO2[T], error) {
	var g SO2[T]
	if err := setComplex[T](&g, matrix.Vec2[T]{T(real(z)), T(imag(z))}); err != nil {
		return SO2[T]{}, so2Errorf(ctxFromComplex, err)
	}

	return g, nil
}

// FromMatrix recovers a rotation from a 2×2 rotation matrix R using
//
//	re = ½(R00 + R11),  im = ½(R10 − R01)
//
// followed by normalization.
//
// Precondition: R is orthogonal with det(R) = 1. This is NOT checked; any
// other matrix silently yields the rotation closest to its averaged
// skew/symmetric parts.
//
// Errors:
//   - ErrDegenerateInput when the averaged pair is ~0 (e.g. R = 0).
func FromMatrix[T Scalar](r matrix.Mat2[T]) (SO2[T], error) {
	var g SO2[T]
	re := T(0.5) * (r[0][0] + r[1][1])
	im := T(0.5) * (r[1][0] - r[0][1])
	if err := setComplex[T](&g, matrix.Vec2[T]{re, im}); err != nil {
		return SO2[T]{}, so2Errorf(ctxFromMatrix, err)
	}

	return g, nil
}

// From copies any rotation (owned or viewed) into a new owned SO2.
// No renormalization is performed; the source is trusted to be unit length.
func From[T Scalar, E Element[T]](e E) SO2[T] {
	return SO2[T]{c: [2]T(e.UnitComplex())}
}

// Must returns g or panics if err is non-nil. Intended for rotations built
// from constants, e.g. so2.Must(so2.FromPair(3.0, 4.0)).
func Must[T Scalar](g SO2[T], err error) SO2[T] {
	if err != nil {
		panic(err)
	}

	return g
}

// ---------- storage capability ----------

func (g SO2[T]) coeffs() [2]T { return g.c }

func (g *SO2[T]) pair() *[2]T { return &g.c }

// ---------- read operations ----------

// Adj returns the adjoint of g, which is 1 for every element of SO(2).
func (g SO2[T]) Adj() T { return 1 }

// Coeffs returns a copy of the backing scalars in (real, imaginary) order.
func (g SO2[T]) Coeffs() [2]T { return g.c }

// UnitComplex returns the backing unit complex number as a vector.
func (g SO2[T]) UnitComplex() matrix.Vec2[T] { return unitComplexOf[T](g) }

// Real returns the real part, cos θ.
func (g SO2[T]) Real() T { return g.c[0] }

// Imag returns the imaginary part, sin θ.
func (g SO2[T]) Imag() T { return g.c[1] }

// Complex returns g as a native complex128.
func (g SO2[T]) Complex() complex128 { return complexOf[T](g) }

// Inverse returns g⁻¹, the complex conjugate.
func (g SO2[T]) Inverse() SO2[T] { return inverseOf[T](g) }

// Log returns the rotation angle in (-π, π].
func (g SO2[T]) Log() T { return logOf[T](g) }

// Matrix returns the 2×2 rotation matrix [[re, -im], [im, re]].
func (g SO2[T]) Matrix() matrix.Mat2[T] { return matrixOf[T](g) }

// Mul returns the composition g·h, renormalized.
func (g SO2[T]) Mul(h SO2[T]) SO2[T] { return compose[T](g, h) }

// Act rotates the point p by g.
func (g SO2[T]) Act(p matrix.Vec2[T]) matrix.Vec2[T] { return act[T](g, p) }

// String implements fmt.Stringer.
func (g SO2[T]) String() string {
	return fmt.Sprintf("SO2(%g, %g)", float64(g.c[0]), float64(g.c[1]))
}

// ---------- mutating operations ----------

// Data returns a pointer to the backing scalars (real, imaginary).
// Writes through it bypass the unit-length invariant; call Normalize before
// using g for anything else.
func (g *SO2[T]) Data() *[2]T { return g.pair() }

// FastMultiply sets g to g·h WITHOUT renormalizing. Use it to batch many
// compositions and call Normalize once at the end.
func (g *SO2[T]) FastMultiply(h SO2[T]) { fastMultiply[T](g, h) }

// MulAssign sets g to g·h and renormalizes.
func (g *SO2[T]) MulAssign(h SO2[T]) { mulAssign[T](g, h) }

// SetComplex overwrites g with z rescaled to unit length.
//
// Errors:
//   - ErrDegenerateInput when |z|² ≤ Epsilon[T](); g is left unchanged.
func (g *SO2[T]) SetComplex(z matrix.Vec2[T]) error {
	if err := setComplex[T](g, z); err != nil {
		return so2Errorf(ctxSetComplex, err)
	}

	return nil
}

// Normalize rescales the backing pair to unit length.
//
// Errors:
//   - ErrNonNormalizable when the current squared norm is ≤ Epsilon[T]().
func (g *SO2[T]) Normalize() error {
	if err := normalize[T](g); err != nil {
		return so2Errorf(ctxNormalize, err)
	}

	return nil
}

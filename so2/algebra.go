// SPDX-License-Identifier: MIT

// Package so2 - shared group algebra.
//
// Purpose:
//   - Implement every group operation exactly once, generic over the storage
//     a variant uses for its (real, imaginary) pair.
//   - Variants (SO2, Map, ConstMap) only provide the storage capability and
//     one-line method delegations; the instantiation is resolved at compile
//     time, so no interface dispatch happens on the hot path.
//
// Capabilities:
//   - reader:  coeffs() returns a copy of the pair. Every variant has it.
//   - mutator: pair() returns a pointer to the backing pair. It is the
//     privileged mutation accessor: unexported, so only this package can
//     write through it, and only *SO2 and Map provide it.

package so2

import (
	"math"

	"github.com/katalvlaran/liegroup/matrix"
)

// Element is any rotation, owned or viewed, that can expose its unit complex
// number. It is the parameter constraint of the copy constructor From and
// of Cast.
type Element[T Scalar] interface {
	UnitComplex() matrix.Vec2[T]
}

// reader is the read half of the storage capability.
type reader[T Scalar] interface {
	coeffs() [2]T
}

// mutator is the write half of the storage capability.
type mutator[T Scalar] interface {
	reader[T]
	pair() *[2]T
}

// Compile-time capability checks.
var (
	_ reader[float64]  = SO2[float64]{}
	_ mutator[float64] = (*SO2[float64])(nil)
	_ mutator[float32] = Map[float32]{}
	_ reader[float32]  = ConstMap[float32]{}

	_ Element[float64] = SO2[float64]{}
	_ Element[float64] = Map[float64]{}
	_ Element[float64] = ConstMap[float64]{}
)

// ---------- read-only operations ----------

func unitComplexOf[T Scalar, R reader[T]](g R) matrix.Vec2[T] {
	return matrix.Vec2[T](g.coeffs())
}

// inverseOf returns the conjugate (re, -im); exact for unit inputs.
func inverseOf[T Scalar, R reader[T]](g R) SO2[T] {
	c := g.coeffs()

	return SO2[T]{c: [2]T{c[0], -c[1]}}
}

// matrixOf returns [[re, -im], [im, re]].
func matrixOf[T Scalar, R reader[T]](g R) matrix.Mat2[T] {
	c := g.coeffs()

	return matrix.NewMat2(c[0], -c[1], c[1], c[0])
}

// compose returns g·h, renormalized.
func compose[T Scalar, R reader[T]](g R, h SO2[T]) SO2[T] {
	out := SO2[T]{c: g.coeffs()}
	mulAssign[T](&out, h)

	return out
}

// act rotates p: (re·x − im·y, im·x + re·y).
func act[T Scalar, R reader[T]](g R, p matrix.Vec2[T]) matrix.Vec2[T] {
	c := g.coeffs()

	return matrix.Vec2[T]{
		c[0]*p[0] - c[1]*p[1],
		c[1]*p[0] + c[0]*p[1],
	}
}

// logOf returns atan2(im, re) in (-π, π].
// atan2 yields -π only for a negative-zero imaginary part; that angle is
// folded onto +π so the range stays half-open.
func logOf[T Scalar, R reader[T]](g R) T {
	c := g.coeffs()
	// Fold after narrowing: a float64 angle just above -π can round to
	// -float32(π).
	r := T(math.Atan2(float64(c[1]), float64(c[0])))
	if r <= -T(math.Pi) {
		r = T(math.Pi)
	}

	return r
}

func complexOf[T Scalar, R reader[T]](g R) complex128 {
	c := g.coeffs()

	return complex(float64(c[0]), float64(c[1]))
}

// ---------- privileged mutation ----------

// fastMultiply overwrites g with g·h without renormalizing.
func fastMultiply[T Scalar, M mutator[T]](g M, h SO2[T]) {
	p := g.pair()
	re, im := p[0], p[1]
	p[0] = re*h.c[0] - im*h.c[1]
	p[1] = re*h.c[1] + im*h.c[0]
}

// mulAssign is fastMultiply followed by an unchecked rescale. The product of
// two unit numbers is never degenerate, so the check Normalize performs
// would only cost time here.
func mulAssign[T Scalar, M mutator[T]](g M, h SO2[T]) {
	fastMultiply(g, h)
	rescale(g.pair())
}

// setComplex stores z rescaled to unit length.
func setComplex[T Scalar, M mutator[T]](g M, z matrix.Vec2[T]) error {
	if !isRecoverable(z[0], z[1]) {
		return ErrDegenerateInput
	}
	p := g.pair()
	p[0], p[1] = z[0], z[1]
	rescale(p)

	return nil
}

// normalize rescales the backing pair in place.
func normalize[T Scalar, M mutator[T]](g M) error {
	p := g.pair()
	if !isRecoverable(p[0], p[1]) {
		return ErrNonNormalizable
	}
	rescale(p)

	return nil
}

// isRecoverable reports that both components are finite and re² + im² > ε.
// The comparison is positive so NaN fails it. A float64 square that overflows
// to +Inf comes from finite input and still passes.
func isRecoverable[T Scalar](re, im T) bool {
	r, i := float64(re), float64(im)
	if math.IsInf(r, 0) || math.IsInf(i, 0) {
		return false
	}

	return r*r+i*i > float64(Epsilon[T]())
}

// rescale divides the pair by its Euclidean length. Caller guarantees the
// pair is finite and its length is not ~0. Hypot in float64 cannot overflow
// for any finite float32 or float64 pair.
func rescale[T Scalar](p *[2]T) {
	re, im := float64(p[0]), float64(p[1])
	n := math.Hypot(re, im)
	p[0] = T(re / n)
	p[1] = T(im / n)
}

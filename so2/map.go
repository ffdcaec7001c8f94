// SPDX-License-Identifier: MIT

// Package so2 - borrowed views over external buffers.
//
// Purpose:
//   - Let a rotation live inside storage the caller owns (e.g. a slice of an
//     optimizer's state vector) without copying.
//   - Map exposes reads and the same narrow mutation set as *SO2.
//   - ConstMap exposes reads only; mutating it does not compile.
//
// Lifetime contract:
//   - A view holds a non-owning pointer to exactly two adjacent scalars
//     (real, then imaginary). The caller keeps that memory alive and laid
//     out unchanged while the view is used.
//   - Views are not synchronized. Sharing a buffer between goroutines
//     requires external locking.

package so2

import (
	"fmt"

	"github.com/katalvlaran/liegroup/matrix"
)

const (
	ctxMapSlice      = "MapSlice"
	ctxConstMapSlice = "ConstMapSlice"
)

// ConstMap is a read-only rotation view over two caller-owned scalars.
type ConstMap[T Scalar] struct {
	p *[2]T
}

// NewConstMap views buf as a rotation. buf must be non-nil and hold a unit
// complex number.
func NewConstMap[T Scalar](buf *[2]T) ConstMap[T] {
	return ConstMap[T]{p: buf}
}

// ConstMapSlice views the first two elements of buf, which must have length
// exactly NumParameters. The view aliases buf's backing array.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil slice, matrix.ErrDimensionMismatch for
//     any other length (both wrapped).
func ConstMapSlice[T Scalar](buf []T) (ConstMap[T], error) {
	if err := matrix.ValidateVecLen(buf, NumParameters); err != nil {
		return ConstMap[T]{}, so2Errorf(ctxConstMapSlice, err)
	}

	return ConstMap[T]{p: (*[2]T)(buf)}, nil
}

func (m ConstMap[T]) coeffs() [2]T { return *m.p }

// Adj returns 1.
func (m ConstMap[T]) Adj() T { return 1 }

// Coeffs returns a copy of the viewed scalars in (real, imaginary) order.
func (m ConstMap[T]) Coeffs() [2]T { return *m.p }

// UnitComplex returns the viewed unit complex number.
func (m ConstMap[T]) UnitComplex() matrix.Vec2[T] { return unitComplexOf[T](m) }

// Real returns the viewed real part.
func (m ConstMap[T]) Real() T { return m.p[0] }

// Imag returns the viewed imaginary part.
func (m ConstMap[T]) Imag() T { return m.p[1] }

// Complex returns the view as a native complex128.
func (m ConstMap[T]) Complex() complex128 { return complexOf[T](m) }

// Inverse returns the inverse as an owned rotation.
func (m ConstMap[T]) Inverse() SO2[T] { return inverseOf[T](m) }

// Log returns the rotation angle in (-π, π].
func (m ConstMap[T]) Log() T { return logOf[T](m) }

// Matrix returns the 2×2 rotation matrix.
func (m ConstMap[T]) Matrix() matrix.Mat2[T] { return matrixOf[T](m) }

// Mul returns the composition m·h as an owned rotation.
func (m ConstMap[T]) Mul(h SO2[T]) SO2[T] { return compose[T](m, h) }

// Act rotates the point p.
func (m ConstMap[T]) Act(p matrix.Vec2[T]) matrix.Vec2[T] { return act[T](m, p) }

// Copy returns an owned copy of the viewed rotation.
func (m ConstMap[T]) Copy() SO2[T] { return SO2[T]{c: *m.p} }

// String implements fmt.Stringer.
func (m ConstMap[T]) String() string {
	return fmt.Sprintf("SO2(%g, %g)", float64(m.p[0]), float64(m.p[1]))
}

// Map is a mutable rotation view over two caller-owned scalars.
//
// The embedded ConstMap supplies every read operation and doubles as the
// read-only view of the same buffer (m.ConstMap). Map is a handle: copying
// it copies the pointer, not the scalars.
type Map[T Scalar] struct {
	ConstMap[T]
}

// NewMap views buf as a mutable rotation. buf must be non-nil and hold a
// unit complex number.
func NewMap[T Scalar](buf *[2]T) Map[T] {
	return Map[T]{ConstMap[T]{p: buf}}
}

// MapSlice is the mutable counterpart of ConstMapSlice.
func MapSlice[T Scalar](buf []T) (Map[T], error) {
	if err := matrix.ValidateVecLen(buf, NumParameters); err != nil {
		return Map[T]{}, so2Errorf(ctxMapSlice, err)
	}

	return Map[T]{ConstMap[T]{p: (*[2]T)(buf)}}, nil
}

func (m Map[T]) pair() *[2]T { return m.p }

// Data returns the pointer to the viewed scalars. Writes bypass the
// unit-length invariant; call Normalize afterwards.
func (m Map[T]) Data() *[2]T { return m.p }

// Assign copies g into the viewed buffer.
func (m Map[T]) Assign(g SO2[T]) { *m.p = g.c }

// FastMultiply sets the view to m·h WITHOUT renormalizing.
func (m Map[T]) FastMultiply(h SO2[T]) { fastMultiply[T](m, h) }

// MulAssign sets the view to m·h and renormalizes.
func (m Map[T]) MulAssign(h SO2[T]) { mulAssign[T](m, h) }

// SetComplex overwrites the view with z rescaled to unit length.
//
// Errors:
//   - ErrDegenerateInput when |z|² ≤ Epsilon[T](); the buffer is unchanged.
func (m Map[T]) SetComplex(z matrix.Vec2[T]) error {
	if err := setComplex[T](m, z); err != nil {
		return so2Errorf(ctxSetComplex, err)
	}

	return nil
}

// Normalize rescales the viewed pair to unit length.
//
// Errors:
//   - ErrNonNormalizable when the current squared norm is ≤ Epsilon[T]().
func (m Map[T]) Normalize() error {
	if err := normalize[T](m); err != nil {
		return so2Errorf(ctxNormalize, err)
	}

	return nil
}

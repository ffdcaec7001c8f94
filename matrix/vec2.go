// SPDX-License-Identifier: MIT

package matrix

import "math"

// Vec2 is a 2-element column vector stored as two adjacent scalars (x, y).
// The array form gives it value semantics and a layout that can alias any
// external buffer of two contiguous T values.
type Vec2[T Float] [2]T

// NewVec2 returns the vector (x, y).
func NewVec2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + o[0], v[1] + o[1]}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - o[0], v[1] - o[1]}
}

// Scale returns s*v.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{s * v[0], s * v[1]}
}

// Dot returns the inner product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v[0]*o[0] + v[1]*o[1]
}

// Cross returns the z-component of the 3D cross product (v,0) × (o,0).
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v[0]*o[1] - v[1]*o[0]
}

// SquaredNorm returns x² + y².
func (v Vec2[T]) SquaredNorm() T {
	return v[0]*v[0] + v[1]*v[1]
}

// Norm returns the Euclidean length of v.
// The square root is taken in float64 so float32 vectors keep full accuracy
// up to the final rounding.
func (v Vec2[T]) Norm() T {
	return T(math.Sqrt(float64(v.SquaredNorm())))
}

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vec2[T]) ApproxEqual(o Vec2[T], tol T) bool {
	return abs(v[0]-o[0]) <= tol && abs(v[1]-o[1]) <= tol
}

// CastVec2 converts the scalar type of v from T to U.
func CastVec2[U, T Float](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}

// abs is the generic counterpart of math.Abs.
func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

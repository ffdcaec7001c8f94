// SPDX-License-Identifier: MIT

// Package matrix - fixed-size 2×2 matrices.
//
// Purpose:
//   - Value-typed 2×2 matrix for rotation and skew-symmetric (Lie algebra) forms.
//   - Bridge to the dynamic Matrix surface through ToDense / Mat2From.
//
// Layout:
//   - Mat2[T] is [2][2]T in row-major order: m[row][col].

package matrix

import "fmt"

const (
	// mat2Dim is the row and column count of Mat2.
	mat2Dim = 2

	ctxMat2From = "Mat2From" // tag used in error wrappers
)

// Mat2 is a 2×2 matrix stored in row-major order.
type Mat2[T Float] [2][2]T

// NewMat2 builds the matrix [[m00, m01], [m10, m11]].
func NewMat2[T Float](m00, m01, m10, m11 T) Mat2[T] {
	return Mat2[T]{{m00, m01}, {m10, m11}}
}

// Identity2 returns the 2×2 identity matrix.
func Identity2[T Float]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

// At returns the element at (row, col).
// Indices are not bounds-checked beyond Go's array bounds check, which
// panics on out-of-range access as for any array.
func (m Mat2[T]) At(row, col int) T {
	return m[row][col]
}

// MulVec returns the matrix-vector product m·v.
// Complexity: O(1).
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Mul returns the matrix product m·o.
// Complexity: O(1).
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	return Mat2[T]{
		{m[0][0]*o[0][0] + m[0][1]*o[1][0], m[0][0]*o[0][1] + m[0][1]*o[1][1]},
		{m[1][0]*o[0][0] + m[1][1]*o[1][0], m[1][0]*o[0][1] + m[1][1]*o[1][1]},
	}
}

// Add returns m + o.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	return Mat2[T]{
		{m[0][0] + o[0][0], m[0][1] + o[0][1]},
		{m[1][0] + o[1][0], m[1][1] + o[1][1]},
	}
}

// Scale returns s·m.
func (m Mat2[T]) Scale(s T) Mat2[T] {
	return Mat2[T]{
		{s * m[0][0], s * m[0][1]},
		{s * m[1][0], s * m[1][1]},
	}
}

// Transpose returns mᵀ.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Det returns the determinant m00·m11 − m01·m10.
func (m Mat2[T]) Det() T {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Trace returns m00 + m11.
func (m Mat2[T]) Trace() T {
	return m[0][0] + m[1][1]
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Mat2[T]) ApproxEqual(o Mat2[T], tol T) bool {
	var i, j int
	for i = 0; i < mat2Dim; i++ {
		for j = 0; j < mat2Dim; j++ {
			if abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// ToDense copies m into a freshly allocated 2×2 *Dense (float64).
// Complexity: O(1) work, one small allocation.
func (m Mat2[T]) ToDense() *Dense {
	d := &Dense{r: mat2Dim, c: mat2Dim, data: make([]float64, mat2Dim*mat2Dim)}
	var i, j int
	for i = 0; i < mat2Dim; i++ {
		for j = 0; j < mat2Dim; j++ {
			d.data[i*mat2Dim+j] = float64(m[i][j])
		}
	}

	return d
}

// Mat2From reads a dynamic 2×2 Matrix into a fixed-size Mat2[T].
// Implementation:
//   - Stage 1: ValidateShape(src, 2, 2).
//   - Stage 2: copy elements in fixed row-major order, converting to T.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mat2From").
//   - Any error returned by src.At (propagated, wrapped).
//
// Complexity:
//   - Time O(1), Space O(1).
func Mat2From[T Float](src Matrix) (Mat2[T], error) {
	var out Mat2[T]
	if err := ValidateShape(src, mat2Dim, mat2Dim); err != nil {
		return out, fmt.Errorf("%s: %w", ctxMat2From, err)
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < mat2Dim; i++ {
		for j = 0; j < mat2Dim; j++ {
			if v, err = src.At(i, j); err != nil {
				return out, fmt.Errorf("%s: %w", ctxMat2From, err)
			}
			out[i][j] = T(v)
		}
	}

	return out, nil
}

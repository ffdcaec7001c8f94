// SPDX-License-Identifier: MIT

// Package matrix: shared type definitions.
// This file contains ONLY the scalar constraint and the public Matrix
// interface. Fixed-size types live in vec2.go / mat2.go, errors in errors.go.
package matrix

// Float is the set of scalar types every generic primitive accepts.
// Named types with a float32/float64 underlying type are allowed.
type Float interface {
	~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

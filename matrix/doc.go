// SPDX-License-Identifier: MIT

// Package matrix provides the small linear-algebra primitives used by the
// Lie group packages of this module.
//
// The package offers two families of types:
//
//   - Fixed-size value types Vec2[T] and Mat2[T], generic over the Float
//     constraint (float32 or float64). They are plain arrays, trivially
//     copyable, never allocate, and have a guaranteed memory layout:
//     Vec2 is two adjacent scalars, Mat2 is four scalars in row-major order.
//   - The dynamic Matrix interface with its row-major Dense implementation,
//     used to exchange data with code that works on general-shaped float64
//     matrices (optimizers, estimators, I/O layers).
//
// Validators (ValidateNotNil, ValidateShape, ValidateSquare, ValidateVecLen)
// are the single source of truth for shape checks and return sentinel
// errors that callers match with errors.Is.
//
// Complexity:
//
//	Every Vec2/Mat2 operation is O(1) and allocation-free.
//	Dense.At and Dense.Set are O(1) with bounds checking; Clone is O(r*c).
package matrix

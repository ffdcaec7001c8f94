// SPDX-License-Identifier: MIT

package so2

import (
	"unsafe"

	"github.com/katalvlaran/liegroup/matrix"
)

// Scalar is the set of numeric types a rotation can be built over.
type Scalar = matrix.Float

const (
	// DoF is the number of degrees of freedom of the group (the angle θ).
	DoF = 1

	// NumParameters is the number of scalars used to store one element
	// (real and imaginary part of the unit complex number).
	NumParameters = 2
)

// Epsilon thresholds per scalar width.
const (
	epsilon64 = 1e-10
	epsilon32 = 1e-5
)

// Epsilon returns the tolerance used by the precondition checks for the
// scalar type T: 1e-10 for 64-bit floats and 1e-5 for 32-bit floats.
func Epsilon[T Scalar]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(epsilon32)
	}

	return T(epsilon64)
}

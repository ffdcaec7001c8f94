// SPDX-License-Identifier: MIT
// Package so2: sentinel error set.
// All three sentinels describe precondition violations detected at an entry
// point that validates its input (constructors, SetComplex, Normalize, Vee).
// Composition and group action never validate; they trust the unit-length
// invariant and propagate NaN if it was broken through Data().

package so2

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateInput is returned when a constructor or SetComplex receives
	// a pair with a NaN or infinite component, or whose squared norm is
	// ≤ epsilon: no direction can be recovered from it.
	ErrDegenerateInput = errors.New("so2: degenerate input, non-finite or squared norm <= epsilon")

	// ErrNonNormalizable is returned by Normalize when the current backing pair
	// has a NaN or infinite component, or squared norm ≤ epsilon.
	ErrNonNormalizable = errors.New("so2: cannot normalize, non-finite or squared norm <= epsilon")

	// ErrAsymmetry is returned by Vee when |Ω(1,0) + Ω(0,1)| ≥ epsilon, i.e. the
	// matrix is not an element of so(2).
	ErrAsymmetry = errors.New("so2: matrix is not antisymmetric within eps")
)

// so2Errorf wraps a sentinel with the name of the operation that detected it.
func so2Errorf(op string, err error) error {
	return fmt.Errorf("so2.%s: %w", op, err)
}

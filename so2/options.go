// SPDX-License-Identifier: MIT

// Package so2: functional configuration for tolerance-driven helpers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The hot algebra (Mul, MulAssign, Act, Exp, Log) never takes options.
//     Options only configure comparison and checked conversion helpers
//     (ApproxEqual, VeeMatrix).
package so2

import "math"

// DefaultEpsilon of zero means "use Epsilon[T]() for the scalar type at hand".
const DefaultEpsilon = 0.0

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "so2: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon (0 ⇒ scalar-specific Epsilon[T])
}

// WithEpsilon sets the tolerance used by ApproxEqual and VeeMatrix.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid (programmer error).
//
// AI-Hints:
//   - After long chains of FastMultiply on float32, 1e-5 is about the best
//     achievable; prefer 1e-9 for float64 chains.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user setters over the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}

// tolerance resolves the effective epsilon for scalar type T.
func tolerance[T Scalar](o Options) T {
	if o.eps == DefaultEpsilon {
		return Epsilon[T]()
	}

	return T(o.eps)
}

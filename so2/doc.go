// SPDX-License-Identifier: MIT

// Package so2 implements the group SO(2) of planar rotations and its Lie
// algebra so(2).
//
// A rotation by θ is stored as the unit complex number cos θ + i·sin θ,
// i.e. two scalars (real, imaginary) that always satisfy re² + im² = 1 up to
// rounding. All types are generic over float32 and float64.
//
// Storage variants:
//
//	SO2[T]      — owns its two scalars (value type, no allocation).
//	Map[T]      — mutable view over two scalars owned by the caller.
//	ConstMap[T] — read-only view over two scalars owned by the caller.
//
// The three variants share one implementation of the group algebra
// (Inverse, Mul, Act, Log, Matrix, ...). Mutating operations (MulAssign,
// FastMultiply, SetComplex, Normalize, Data) exist only on *SO2 and Map;
// calling them on a ConstMap does not compile.
//
// Group-level operations:
//
//	Exp(θ)        tangent angle → rotation
//	Log(g)        rotation → angle in (-π, π]
//	Hat(θ)        angle → [[0,-θ],[θ,0]]
//	Vee(Ω)        inverse of Hat, rejects non-antisymmetric input
//	Generator()   Hat(1)
//	LieBracket    always 0 (so(2) is commutative)
//
// Numeric discipline:
//
// Constructors, SetComplex and Normalize validate their input and return
// ErrDegenerateInput / ErrNonNormalizable when the pair is too close to
// zero to define a direction. The composition and action paths do not
// validate: they trust the invariant, so a rotation corrupted through Data
// and never normalized propagates NaN instead of failing.
//
// Quick example:
//
//	g := so2.Exp(math.Pi / 4)
//	h := g.Mul(g)                       // quarter turn
//	p := h.Act(matrix.NewVec2(1.0, 0))  // (0, 1)
//
//	state := []float64{1, 0, 42}
//	view, _ := so2.MapSlice(state[:2])  // rotation living inside state
//	view.MulAssign(h)
package so2

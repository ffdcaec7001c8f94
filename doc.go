// Package liegroup is a small, allocation-free toolkit for Lie groups used in
// state estimation and robotics, starting with planar rotations.
//
// What is inside?
//
//	so2/    — SO(2) rotations as unit complex numbers: exp/log, hat/vee,
//	          composition, inverse, adjoint, action on 2D points; owned values
//	          plus zero-copy views over caller-owned buffers.
//	matrix/ — the 2-vectors, 2×2 matrices and Dense interop surface the
//	          group packages are built on.
//
// Why this shape?
//
//   - Generic over float32 and float64; every hot operation is O(1) and
//     never allocates.
//   - One algebra implementation per group, shared by every storage variant
//     through generics instead of interfaces, so there is no dynamic
//     dispatch on the numeric path.
//   - Views let a rotation live inside an optimizer's state vector without
//     copying.
//   - Validating entry points return sentinel errors (errors.Is); the hot
//     paths trust the unit-length invariant.
//
// Quick example:
//
//	g := so2.Exp(math.Pi / 4)
//	p := g.Mul(g).Act(matrix.NewVec2(1.0, 0)) // (0, 1)
//
//	go get github.com/katalvlaran/liegroup
package liegroup

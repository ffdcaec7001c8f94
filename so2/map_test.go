// SPDX-License-Identifier: MIT
// Package so2_test contains unit tests for the borrowed-view variants.
package so2_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liegroup/matrix"
	"github.com/katalvlaran/liegroup/so2"
)

// TestMapAliasesBuffer checks that every write through a Map lands in the
// caller's storage and nothing else.
func TestMapAliasesBuffer(t *testing.T) {
	t.Parallel()
	state := []float64{1, 0, 42, 1, 0}

	m, err := so2.MapSlice(state[3:5])
	require.NoError(t, err)

	m.MulAssign(so2.Exp(math.Pi / 2))
	require.InDelta(t, 0.0, state[3], tol64)
	require.InDelta(t, 1.0, state[4], tol64)
	require.Equal(t, []float64{1, 0, 42}, state[:3])

	// External writes are visible through the view.
	state[3], state[4] = 0, -1
	require.InDelta(t, -math.Pi/2, m.Log(), tol64)
}

func TestMapSliceRejectsBadBuffers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		buf  []float64
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"empty", []float64{}, matrix.ErrDimensionMismatch},
		{"short", []float64{1}, matrix.ErrDimensionMismatch},
		{"long", []float64{1, 0, 0}, matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := so2.MapSlice(tc.buf)
			require.ErrorIs(t, err, tc.want)
			_, err = so2.ConstMapSlice(tc.buf)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMapMutations(t *testing.T) {
	t.Parallel()
	buf := [2]float64{1, 0}
	m := so2.NewMap(&buf)

	require.NoError(t, m.SetComplex(matrix.NewVec2(3.0, 4.0)))
	require.InDelta(t, 0.6, buf[0], tol64)
	require.InDelta(t, 0.8, buf[1], tol64)

	require.ErrorIs(t, m.SetComplex(matrix.NewVec2(0.0, 0.0)), so2.ErrDegenerateInput)
	require.InDelta(t, 0.6, buf[0], tol64) // unchanged on failure

	m.Assign(so2.Identity[float64]())
	require.Equal(t, [2]float64{1, 0}, buf)

	m.FastMultiply(so2.Exp(0.5))
	m.FastMultiply(so2.Exp(0.5))
	require.NoError(t, m.Normalize())
	require.True(t, so2.ApproxEqual(so2.Exp(1.0), m.Copy()))

	d := m.Data()
	require.Same(t, &buf, d)
	d[0], d[1] = 0, 0
	require.ErrorIs(t, m.Normalize(), so2.ErrNonNormalizable)
}

// TestViewsMatchOwned runs the read operations on all three variants over
// the same rotation and requires identical results.
func TestViewsMatchOwned(t *testing.T) {
	t.Parallel()
	g := so2.Exp(-2.2)
	h := so2.Exp(0.9)
	p := matrix.NewVec2(3.0, -1.5)

	buf := g.Coeffs()
	m := so2.NewMap(&buf)
	c := so2.NewConstMap(&buf)

	require.Equal(t, g.Coeffs(), m.Coeffs())
	require.Equal(t, g.UnitComplex(), c.UnitComplex())
	require.Equal(t, g.Real(), c.Real())
	require.Equal(t, g.Imag(), c.Imag())
	require.Equal(t, g.Complex(), c.Complex())
	require.Equal(t, g.Adj(), c.Adj())
	require.Equal(t, g.Inverse(), c.Inverse())
	require.Equal(t, g.Inverse(), m.Inverse())
	require.Equal(t, g.Log(), c.Log())
	require.Equal(t, g.Matrix(), c.Matrix())
	require.Equal(t, g.Mul(h), c.Mul(h))
	require.Equal(t, g.Mul(h), m.Mul(h))
	require.Equal(t, g.Act(p), c.Act(p))
	require.Equal(t, g.String(), c.String())
	require.Equal(t, g, c.Copy())
	require.Equal(t, g, so2.From[float64](m))

	// The embedded ConstMap of a Map is a read-only view of the same buffer.
	require.Equal(t, c, m.ConstMap)
}

// TestConstMapHasNoMutators pins the type-level split: the read-only view
// must not grow any method that writes.
func TestConstMapHasNoMutators(t *testing.T) {
	t.Parallel()
	mutators := []string{"Data", "FastMultiply", "MulAssign", "SetComplex", "Normalize", "Assign"}

	constT := reflect.TypeOf(so2.ConstMap[float64]{})
	mapT := reflect.TypeOf(so2.Map[float64]{})
	ownedT := reflect.TypeOf(&so2.SO2[float64]{})
	for _, name := range mutators {
		_, ok := constT.MethodByName(name)
		require.Falsef(t, ok, "ConstMap must not have %s", name)
		_, ok = mapT.MethodByName(name)
		require.Truef(t, ok, "Map must have %s", name)
		if name != "Assign" {
			_, ok = ownedT.MethodByName(name)
			require.Truef(t, ok, "*SO2 must have %s", name)
		}
	}
}

func TestFloat32Views(t *testing.T) {
	t.Parallel()
	state := []float32{0, 1}
	m, err := so2.MapSlice(state)
	require.NoError(t, err)
	m.MulAssign(so2.Exp[float32](math.Pi / 2))
	require.InDelta(t, -1.0, float64(state[0]), 1e-6)
	require.InDelta(t, 0.0, float64(state[1]), 1e-6)

	c, err := so2.ConstMapSlice(state)
	require.NoError(t, err)
	// the imaginary part is about -4e-8, so the angle sits just above -π
	require.InDelta(t, math.Pi, math.Abs(float64(c.Log())), 1e-6)
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/optionfdm/matrix"
	"github.com/stretchr/testify/require"
)

// TestSolveTridiagonal_Known solves a small system with a hand-checked answer.
//
//	| 2 1 0 | |x0|   | 4 |
//	| 1 2 1 | |x1| = | 8 |   ⇒ x = (1, 2, 3)
//	| 0 1 2 | |x2|   | 8 |
func TestSolveTridiagonal_Known(t *testing.T) {
	t.Parallel()
	x, err := matrix.SolveTridiagonal(
		[]float64{99, 1, 1}, // sub[0] ignored
		[]float64{2, 2, 2},
		[]float64{1, 1, 99}, // super[n-1] ignored
		[]float64{4, 8, 8},
	)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-12)
}

// TestThomas_RoundTrip checks T·solve(T, b) == b on random dominant systems.
func TestThomas_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 3, 17, 200} {
		sub, diag, super := randomDominantBands(n, int64(n))
		tri, err := matrix.NewTridiagonal(sub, diag, super)
		require.NoError(t, err)
		require.Equal(t, n, tri.Size())

		f, err := tri.Factorize()
		require.NoError(t, err)
		require.Equal(t, n, f.Size())

		rhs := randomVector(n, int64(100+n))
		x := make([]float64, n)
		require.NoError(t, f.SolveInto(x, rhs))

		back, err := tri.MatVec(x)
		require.NoError(t, err)
		require.InDeltaSlice(t, rhs, back, 1e-10, "n=%d", n)
	}
}

// TestThomas_FactorReuse solves several right-hand sides against one factorization,
// including the aliasing dst == rhs form used by time-stepping loops.
func TestThomas_FactorReuse(t *testing.T) {
	t.Parallel()
	sub, diag, super := randomDominantBands(32, 7)
	tri, err := matrix.NewTridiagonal(sub, diag, super)
	require.NoError(t, err)
	f, err := tri.Factorize()
	require.NoError(t, err)

	for seed := int64(1); seed <= 3; seed++ {
		rhs := randomVector(32, seed)
		want, err := matrix.SolveTridiagonal(sub, diag, super, rhs)
		require.NoError(t, err)

		inPlace := append([]float64(nil), rhs...)
		require.NoError(t, f.SolveInto(inPlace, inPlace))
		require.Equal(t, want, inPlace) // bit-identical: same arithmetic order
	}
}

// TestThomas_Pivots checks the forward-elimination sequence y.
func TestThomas_Pivots(t *testing.T) {
	t.Parallel()
	tri, err := matrix.NewTridiagonal([]float64{0, 1, 1}, []float64{2, 2, 2}, []float64{1, 1, 0})
	require.NoError(t, err)
	f, err := tri.Factorize()
	require.NoError(t, err)
	// y0 = 2, y1 = 2 - 1/2 = 1.5, y2 = 2 - 1/1.5 = 4/3
	require.InDeltaSlice(t, []float64{2, 1.5, 4.0 / 3.0}, f.Pivots(), 1e-15)
}

func TestThomas_Singular(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name             string
		sub, diag, super []float64
	}{
		{"zero first pivot", []float64{0, 1}, []float64{0, 1}, []float64{1, 0}},
		// y1 = 1 - 1*1/1 = 0
		{"zero later pivot", []float64{0, 1, 1}, []float64{1, 1, 1}, []float64{1, 1, 0}},
		{"order one", []float64{0}, []float64{0}, []float64{0}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tri, err := matrix.NewTridiagonal(tc.sub, tc.diag, tc.super)
			require.NoError(t, err)
			_, err = tri.Factorize()
			require.ErrorIs(t, err, matrix.ErrSingular)

			_, err = matrix.SolveTridiagonal(tc.sub, tc.diag, tc.super, make([]float64, len(tc.diag)))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestTridiagonal_Validation(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewTridiagonal(nil, []float64{1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewTridiagonal([]float64{}, []float64{}, []float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewTridiagonal([]float64{1}, []float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewTridiagonal([]float64{0, 1}, []float64{1, math.NaN()}, []float64{1, 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	tri, err := matrix.NewTridiagonal([]float64{0, 1}, []float64{2, 2}, []float64{1, 0})
	require.NoError(t, err)
	f, err := tri.Factorize()
	require.NoError(t, err)
	require.ErrorIs(t, f.SolveInto(make([]float64, 3), []float64{1, 1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, f.SolveInto(make([]float64, 2), nil), matrix.ErrNilMatrix)
	_, err = tri.MatVec([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTridiagonal_At(t *testing.T) {
	t.Parallel()
	tri, err := matrix.NewTridiagonal([]float64{9, 1, 2}, []float64{3, 4, 5}, []float64{6, 7, 9})
	require.NoError(t, err)

	want := [][]float64{
		{3, 6, 0},
		{1, 4, 7},
		{0, 2, 5},
	}
	for i := range want {
		for j := range want[i] {
			v, err := tri.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "(%d,%d)", i, j)
		}
	}
	_, err = tri.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the operator tests.
//   • Keep random data integer-valued so sums, differences and power-of-two
//     scalings are exact in float64 and float32 alike.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// Fixtures used across files: A=[[1,2],[3,4]], B=[[5,6],[7,8]].
var (
	gridA = [][]float64{{1, 2}, {3, 4}}
	gridB = [][]float64{{5, 6}, {7, 8}}
)

// fixtureAB returns fresh copies of the A and B fixtures.
func fixtureAB() (*matrix.Matrix64, *matrix.Matrix64) {
	return matrix.FromGrid(gridA), matrix.FromGrid(gridB)
}

// CompareExact asserts m has exactly the contents of want (shape included).
func CompareExact[T matrix.Float](t *testing.T, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Row(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), m.Col(), "cols")
	}
	for i := range want {
		for j := range want[i] {
			require.Equalf(t, want[i][j], m.Index(i)[j], "cell (%d,%d)", i, j)
		}
	}
}

// MustDims asserts the shape of m.
func MustDims[T matrix.Float](t *testing.T, m *matrix.Matrix[T], r, c int) {
	t.Helper()
	gotR, gotC := m.Shape()
	require.Equal(t, r, gotR, "rows")
	require.Equal(t, c, gotC, "cols")
}

// RandFilled builds an r×c matrix of integers in [-8, 8] from a fixed seed.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix64 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New[float64](r, c)
	for i := 0; i < r; i++ {
		row := m.Index(i)
		for j := range row {
			row[j] = float64(rng.Intn(17) - 8)
		}
	}

	return m
}

// NonZeroFilled is RandFilled with zeros replaced by 1 (safe divisors).
func NonZeroFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix64 {
	t.Helper()
	m := RandFilled(t, r, c, seed)
	_ = m.Apply(func(_, _ int, v float64) float64 {
		if v == 0 {
			return 1
		}
		return v
	})

	return m
}

// ExpectPanic fails the test unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	require.Panics(t, fn)
}

// shapes covers square, wide, tall, vector and degenerate shapes.
var shapes = []struct{ r, c int }{
	{1, 1}, {2, 2}, {3, 3}, {2, 3}, {3, 2}, {1, 5}, {5, 1}, {0, 0}, {0, 3}, {3, 0},
}

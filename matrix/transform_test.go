// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5.0, matrix.FromGrid([][]float64{{5}}).Trace())
	require.Equal(t, 2.0, matrix.FromGrid([][]float64{{1, 0}, {0, 1}}).Trace())
	a, _ := fixtureAB()
	require.Equal(t, 5.0, a.Trace())
	require.Equal(t, 0.0, matrix.Empty[float64]().Trace())

	// Wide shapes are fine: the walk covers one cell per row.
	wide := matrix.FromGrid([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 6.0, wide.Trace())
}

func TestTrace_TallPanics(t *testing.T) {
	t.Parallel()

	tall := matrix.New[float64](3, 2)
	ExpectPanic(t, func() { _ = tall.Trace() })
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, matrix.New[float64](2, 2).Identity())

	// Shape-preserving, receiver untouched, values ignored.
	a, _ := fixtureAB()
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, a.Identity())
	CompareExact(t, gridA, a)

	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, matrix.New[float64](2, 3).Identity())
	CompareExact(t, [][]float64{{1, 0}, {0, 1}, {0, 0}}, matrix.New[float64](3, 2).Identity())
	MustDims(t, matrix.New[float64](0, 4).Identity(), 0, 4)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := matrix.FromGrid([][]float64{{1, 2, 3}, {4, 5, 6}})
	got := m.Transpose()
	MustDims(t, got, 3, 2)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, got)
	require.True(t, got.Equal(m.T()))

	MustDims(t, matrix.New[float64](0, 3).T(), 3, 0)
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	for _, s := range shapes {
		m := RandFilled(t, s.r, s.c, int64(s.r*10+s.c))
		require.True(t, m.T().T().Equal(m), "shape %dx%d", s.r, s.c)
	}
}

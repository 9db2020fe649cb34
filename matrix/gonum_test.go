// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// gonum is the oracle: its element-wise and transpose results must match ours.

func TestGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range shapes {
		m := RandFilled(t, s.r, s.c, 3)
		back := matrix.FromGonum[float64](m.Gonum())
		if s.r == 0 || s.c == 0 {
			MustDims(t, back, 0, 0) // gonum has no zero-length shapes
			continue
		}
		require.True(t, back.Equal(m), "shape %dx%d", s.r, s.c)
	}
}

func TestGonum_MulElemOracle(t *testing.T) {
	t.Parallel()

	x := RandFilled(t, 4, 3, 11)
	y := RandFilled(t, 4, 3, 12)

	var want mat.Dense
	want.MulElem(x.Gonum(), y.Gonum())
	require.True(t, mat.Equal(&want, x.Mul(y).Gonum()))

	var sum mat.Dense
	sum.Add(x.Gonum(), y.Gonum())
	require.True(t, mat.Equal(&sum, x.Add(y).Gonum()))

	var diff mat.Dense
	diff.Sub(x.Gonum(), y.Gonum())
	require.True(t, mat.Equal(&diff, x.Sub(y).Gonum()))
}

func TestGonum_MatrixProductDiffers(t *testing.T) {
	t.Parallel()

	a, b := fixtureAB()
	var prod mat.Dense
	prod.Mul(a.Gonum(), b.Gonum())
	got := matrix.FromGonum[float64](&prod)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, got)
	require.False(t, got.Equal(a.Mul(b)))
}

func TestGonum_TransposeOracle(t *testing.T) {
	t.Parallel()

	m := RandFilled(t, 3, 5, 21)
	want := matrix.FromGonum[float64](m.Gonum().T())
	require.True(t, want.Equal(m.Transpose()))

	tr := mat.Trace(matrix.FromGonum[float64](mat.NewDense(2, 2, []float64{1, 2, 3, 4})).Gonum())
	a, _ := fixtureAB()
	require.Equal(t, tr, a.Trace())
}

func TestGonum_Float32Conversion(t *testing.T) {
	t.Parallel()

	m := matrix.FromGrid([][]float32{{0.5, 1.25}})
	d := m.Gonum()
	require.Equal(t, 1.25, d.At(0, 1))
	back := matrix.FromGonum[float32](d)
	require.True(t, back.Equal(m))
}

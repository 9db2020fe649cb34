// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// lvmat deliberately stops at element-wise algebra. When a caller needs the
// conventional matrix product, factorizations or an inverse, it hands the
// values to gonum and comes back:
//
//	var p mat.Dense
//	p.Mul(a.Gonum(), b.Gonum())
//	prod := matrix.FromGonum[float64](&p)

package matrix

import "gonum.org/v1/gonum/mat"

// Gonum copies m into a new *mat.Dense (float64 storage).
// A matrix with a zero dimension maps to an empty mat.Dense, since gonum
// refuses zero-length shapes in NewDense.
// Complexity: O(r*c).
func (m *Matrix[T]) Gonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	buf := make([]float64, len(m.data))
	for idx, v := range m.data {
		buf[idx] = float64(v)
	}

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum matrix into a new Matrix[T]. Values are converted
// with T(v); converting to float32 rounds.
// Complexity: O(r*c) calls to src.At.
func FromGonum[T Float](src mat.Matrix) *Matrix[T] {
	r, c := src.Dims()
	out := newMatrix[T](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		row := out.rows[i]
		for j = 0; j < c; j++ {
			row[j] = T(src.At(i, j))
		}
	}

	return out
}

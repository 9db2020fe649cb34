// SPDX-License-Identifier: MIT

// Package matrix - shape-level transforms: trace, identity, transpose.

package matrix

// Trace returns the sum of the diagonal data[i][i] for i in [0, Size()).
//
// Unchecked: when cols < rows the walk indexes past a row's end and the
// runtime panics. The checked Trace in api.go reports ErrIndexOutOfBounds instead.
//
// Complexity: Time O(rows), Space O(1).
func (m *Matrix[T]) Trace() T {
	var sum T
	for i := range m.rows {
		sum += m.rows[i][i]
	}

	return sum
}

// Identity returns a new matrix shaped like m with 1 where i == j and 0 elsewhere.
// The receiver is not modified; non-square shapes get a partial diagonal.
//
// Complexity: O(r*c) zeroing + O(min(r,c)) writes.
func (m *Matrix[T]) Identity() *Matrix[T] {
	out := m.like(m.r, m.c)
	n := min(m.r, m.c)
	for i := 0; i < n; i++ {
		out.data[i*m.c+i] = 1
	}

	return out
}

// Transpose returns a new (cols, rows) matrix with out[i][j] = m[j][i].
//
// Implementation:
//   - Walk the source row-major and scatter into the destination:
//     m.data[i*cols + j] → out.data[j*rows + i].
//
// Complexity: O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.r, m.c
	out := m.like(cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return out
}

// T is an alias for Transpose.
func (m *Matrix[T]) T() *Matrix[T] { return m.Transpose() }

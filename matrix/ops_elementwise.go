// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix-matrix element-wise operators (+, -, *, /, their in-place forms), Dot and Cross.
//   - One private kernel (ewZip) so every operator shares the same loops.
//
// Contract (unchecked path):
//   - Cell (i,j) of the receiver is paired with cell (i,j) of rhs. Nothing is
//     validated: a rhs smaller than the iterated shape panics with the runtime's
//     index error; a larger rhs has its extra cells ignored.
//   - Add/Sub/Div and all in-place forms iterate the receiver's shape.
//   - Mul/Hadamard and Dot produce (receiver.rows, rhs.cols) results.
//   - The validated counterparts live in api.go.
//
// Determinism & Performance:
//   - Equal shapes take a flat 0..n-1 walk over the row-major buffers.
//   - Otherwise a fixed i→j walk through the row tables reproduces the
//     per-row indexing contract exactly.

package matrix

// cellFn computes the new value of a destination cell from its current value
// and the two operand cells at the same coordinates.
type cellFn[T Float] func(cur, x, y T) T

func cellAdd[T Float](_, x, y T) T { return x + y }
func cellSub[T Float](_, x, y T) T { return x - y }
func cellMul[T Float](_, x, y T) T { return x * y }
func cellDiv[T Float](_, x, y T) T { return x / y }

// cellAccum adds the product into the (zero-initialized) destination cell.
func cellAccum[T Float](acc, x, y T) T { return acc + x*y }

// cellNegAccum subtracts the product from the (zero-initialized) destination cell.
func cellNegAccum[T Float](acc, x, y T) T { return acc - x*y }

// ewZip writes dst[i][j] = f(dst[i][j], a[i][j], b[i][j]) for i<rows, j<cols and returns dst.
// dst may alias a (in-place operators).
//
// Complexity: Time O(rows*cols), Space O(1).
func ewZip[T Float](dst, a, b *Matrix[T], rows, cols int, f cellFn[T]) *Matrix[T] {
	// Fast-path: all three buffers share the iterated shape → flat walk.
	if a.r == rows && a.c == cols && b.r == rows && b.c == cols && dst.r == rows && dst.c == cols {
		for idx := range dst.data {
			dst.data[idx] = f(dst.data[idx], a.data[idx], b.data[idx])
		}
		return dst
	}

	// Row-table walk: indexes each operand by (i,j) exactly as requested.
	var i, j int
	var dr, ar, br []T
	for i = 0; i < rows; i++ {
		dr, ar, br = dst.rows[i], a.rows[i], b.rows[i] // row references
		for j = 0; j < cols; j++ {
			dr[j] = f(dr[j], ar[j], br[j])
		}
	}

	return dst
}

// Add returns m + rhs, element-wise, shaped like m.
func (m *Matrix[T]) Add(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m.like(m.r, m.c), m, rhs, m.r, m.c, cellAdd[T])
}

// Sub returns m - rhs, element-wise, shaped like m.
func (m *Matrix[T]) Sub(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m.like(m.r, m.c), m, rhs, m.r, m.c, cellSub[T])
}

// Div returns m / rhs, element-wise, shaped like m. Zero divisors yield ±Inf/NaN.
func (m *Matrix[T]) Div(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m.like(m.r, m.c), m, rhs, m.r, m.c, cellDiv[T])
}

// Hadamard returns the element-wise product m ⊙ rhs.
//
// The result is shaped (m.rows, rhs.cols) and out[i][j] = m[i][j] * rhs[i][j]:
// rhs is indexed at the SAME coordinates as m. This is not the conventional
// matrix product; [[1,2],[3,4]] ⊙ [[5,6],[7,8]] is [[5,12],[21,32]].
//
// Complexity: O(rows*cols).
func (m *Matrix[T]) Hadamard(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m.like(m.r, rhs.c), m, rhs, m.r, rhs.c, cellMul[T])
}

// Mul is the matrix `*` operator. It is element-wise, identical to Hadamard,
// consistent with Add, Sub and Div. Convert with Gonum() for a true matrix product.
func (m *Matrix[T]) Mul(rhs *Matrix[T]) *Matrix[T] {
	return m.Hadamard(rhs)
}

// AddInPlace performs m += rhs element-wise over m's shape and returns m.
func (m *Matrix[T]) AddInPlace(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m, m, rhs, m.r, m.c, cellAdd[T])
}

// SubInPlace performs m -= rhs element-wise over m's shape and returns m.
func (m *Matrix[T]) SubInPlace(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m, m, rhs, m.r, m.c, cellSub[T])
}

// MulInPlace performs m *= rhs element-wise (Hadamard) over m's shape and returns m.
func (m *Matrix[T]) MulInPlace(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m, m, rhs, m.r, m.c, cellMul[T])
}

// DivInPlace performs m /= rhs element-wise over m's shape and returns m.
func (m *Matrix[T]) DivInPlace(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m, m, rhs, m.r, m.c, cellDiv[T])
}

// Dot returns a (m.rows, rhs.cols) matrix where each zero-initialized cell
// accumulates m[i][j] * rhs[i][j].
//
// Despite the name this is not an inner product: values equal Hadamard's.
func (m *Matrix[T]) Dot(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m.like(m.r, rhs.c), m, rhs, m.r, rhs.c, cellAccum[T])
}

// Cross returns a matrix shaped like m where out[i][j] = 0 - m[i][j]*rhs[i][j]
// (the negated element-wise product). Not a vector cross product.
func (m *Matrix[T]) Cross(rhs *Matrix[T]) *Matrix[T] {
	return ewZip(m.like(m.r, m.c), m, rhs, m.r, m.c, cellNegAccum[T])
}

// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major), construction & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Hand out mutable row references (Index) for the fast, unchecked double-index idiom m.Index(i)[j].
//   - Offer safe accessors (At/Set) that return errors instead of panicking.
//   - Keep algorithmic determinism (fixed i→j loop orders).
//
// Complexity quicksheet:
//   - New/FromGrid/Clone: O(r*c); Row/Col/Size/Shape/Index/At/Set: O(1); Do/Apply: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the method name and call-site coordinates.
// Keeps "Matrix.<method>(row,col): <sentinel>" stable for logs; errors.Is still matches.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Matrix.%s(%d,%d)", method, row, col)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// newMatrix allocates a zero-filled rows×cols matrix and binds its row table.
// Negative dimensions make the runtime panic in make(); callers on the checked
// path validate before reaching here.
func newMatrix[T Float](rows, cols int) *Matrix[T] {
	m := &Matrix[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols), // make() zero-fills deterministically
		validateNaNInf: DefaultValidateNaNInf,
	}
	m.bindRows()

	return m
}

// bindRows rebuilds the per-row windows over the flat buffer.
// Each window has len == cap == c: writes go through, appends reallocate.
func (m *Matrix[T]) bindRows() {
	m.rows = make([][]T, m.r)
	var i, lo int
	for i = 0; i < m.r; i++ {
		lo = i * m.c
		m.rows[i] = m.data[lo : lo+m.c : lo+m.c]
	}
}

// like allocates a zero matrix of the given shape that inherits m's numeric policy.
func (m *Matrix[T]) like(rows, cols int) *Matrix[T] {
	out := newMatrix[T](rows, cols)
	out.validateNaNInf = m.validateNaNInf

	return out
}

// Empty returns a 0×0 matrix with empty storage.
// Equivalent to the zero value Matrix[T]{}.
func Empty[T Float]() *Matrix[T] {
	return newMatrix[T](0, 0)
}

// New creates a rows×cols matrix with every entry zero.
//
// Behavior highlights:
//   - Zero dimensions are legal (0×N, N×0).
//   - Negative dimensions are a caller bug: the runtime panics. Use NewDense
//     for a validated constructor returning ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Float](rows, cols int) *Matrix[T] {
	return newMatrix[T](rows, cols)
}

// FromGrid copies an externally supplied 2D grid.
//
// Implementation:
//   - Stage 1: rows = len(grid); cols = len(grid[0]) (0×0 for an empty grid).
//   - Stage 2: copy each row into the flat buffer.
//
// Behavior highlights:
//   - The grid is copied; later changes to grid do not affect the matrix.
//   - Rows are NOT checked for uniform length: a shorter row leaves trailing
//     zeros, a longer row is truncated to cols. Use FromRows to reject ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGrid[T Float](grid [][]T) *Matrix[T] {
	if len(grid) == 0 {
		return newMatrix[T](0, 0)
	}
	m := newMatrix[T](len(grid), len(grid[0]))
	for i, row := range grid {
		copy(m.rows[i], row) // copy() clamps to the shorter of the two
	}

	return m
}

// Copy returns a deep copy of other. Alias of other.Clone() mirroring the copy constructor.
func Copy[T Float](other *Matrix[T]) *Matrix[T] {
	return other.Clone()
}

// Clone returns a deep copy (new buffer, same shape, same numeric policy).
// Mutations of the copy never reach the original.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := m.like(m.r, m.c)
	copy(out.data, m.data)

	return out
}

// Row returns the stored row count.
// Complexity: O(1).
func (m *Matrix[T]) Row() int { return m.r }

// Col returns the stored column count.
// Complexity: O(1).
func (m *Matrix[T]) Col() int { return m.c }

// Size returns the number of stored rows (the length of the outer sequence),
// not the element count. It agrees with Row by construction.
func (m *Matrix[T]) Size() int { return len(m.rows) }

// Shape packs Row() and Col() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Index returns a mutable reference to row i: m.Index(i)[j] reads cell (i,j)
// and m.Index(i)[j] = v writes it.
//
// No bounds checking: i outside [0,rows) or j outside [0,cols) panics with the
// runtime's index error. Use At/Set for checked access.
func (m *Matrix[T]) Index(i int) []T {
	return m.rows[i]
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// Never panics on out-of-range coordinates.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrIndexOutOfBounds for invalid coordinates.
//   - ErrNaNInf when v is not finite and the matrix carries the finite-only policy.
//
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := ValidateIndex(m, row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row*m.c+col] = v // direct flat write

	return nil
}

// Grid returns a deep copy of the contents as a [][]T (one fresh slice per row).
// FromGrid(m.Grid()) reproduces m for any shape with at least one row.
func (m *Matrix[T]) Grid() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = append([]T(nil), m.rows[i]...)
	}

	return out
}

// String renders rows as lines of comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for diagnostics; not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
//
// Behavior highlights:
//   - Respects the finite-only policy: the first non-finite result aborts with
//     ErrNaNInf; cells written before it keep their new values.
//   - For all-or-nothing semantics, Apply on a Clone and swap on success.
//
// Complexity: O(r*c).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf for either precision.
func isNonFinite[T Float](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

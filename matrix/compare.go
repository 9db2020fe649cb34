// SPDX-License-Identifier: MIT

// Package matrix - exact comparison (== and !=).
//
// Both comparisons use exact floating-point equality, no tolerance. Note that
// NaN never equals NaN, so a matrix holding NaN is not Equal to its own Clone.

package matrix

// Equal reports whether m and rhs have the same shape and every pair of
// corresponding cells compares equal. Differing shapes yield false.
//
// Complexity: O(r*c) worst case; exits on the first differing cell.
func (m *Matrix[T]) Equal(rhs *Matrix[T]) bool {
	if m.r != rhs.r || m.c != rhs.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != rhs.data[idx] {
			return false
		}
	}

	return true
}

// NotEqual is the `!=` operator with its historical contract, which is NOT !Equal:
//   - Differing shapes yield false (the same shape prerequisite as Equal).
//   - For equal shapes it yields false as soon as any pair of cells is equal,
//     i.e. it is true only when every cell differs.
//
// Use the package-level NotEqual for the conventional negation of Equal.
//
// Complexity: O(r*c) worst case; exits on the first equal cell.
func (m *Matrix[T]) NotEqual(rhs *Matrix[T]) bool {
	if m.r != rhs.r || m.c != rhs.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] == rhs.data[idx] {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

// Package matrix - scalar arithmetic.
//
// Every scalar operator comes in two forms:
//   - XScalar(s) returns a fresh matrix of the same shape; the receiver is untouched.
//   - XScalarInPlace(s) mutates the receiver and returns it for chaining.
//
// Division by zero follows IEEE-754 (±Inf for x/0, NaN for 0/0); nothing here
// guards against it. All loops walk the flat buffer 0..r*c-1. Time O(r*c).

package matrix

// AddScalar returns m + s (s added to every element).
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	return m.Clone().AddScalarInPlace(s)
}

// SubScalar returns m - s (s subtracted from every element).
func (m *Matrix[T]) SubScalar(s T) *Matrix[T] {
	return m.Clone().SubScalarInPlace(s)
}

// MulScalar returns m * s (every element scaled by s).
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	return m.Clone().MulScalarInPlace(s)
}

// DivScalar returns m / s (every element divided by s).
func (m *Matrix[T]) DivScalar(s T) *Matrix[T] {
	return m.Clone().DivScalarInPlace(s)
}

// AddScalarInPlace performs m += s and returns m.
func (m *Matrix[T]) AddScalarInPlace(s T) *Matrix[T] {
	for idx := range m.data {
		m.data[idx] += s
	}

	return m
}

// SubScalarInPlace performs m -= s and returns m.
func (m *Matrix[T]) SubScalarInPlace(s T) *Matrix[T] {
	for idx := range m.data {
		m.data[idx] -= s
	}

	return m
}

// MulScalarInPlace performs m *= s and returns m.
func (m *Matrix[T]) MulScalarInPlace(s T) *Matrix[T] {
	for idx := range m.data {
		m.data[idx] *= s
	}

	return m
}

// DivScalarInPlace performs m /= s and returns m.
func (m *Matrix[T]) DivScalarInPlace(s T) *Matrix[T] {
	for idx := range m.data {
		m.data[idx] /= s
	}

	return m
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks the hardened
//    facades (api.go) and the checked accessors (At/Set) perform.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    add their own operation context on top.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - Shape/index checks are O(1); grid and finiteness scans are O(r*c).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "github.com/pkg/errors"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T Float](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims ensures rows and cols are non-negative.
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return errors.Wrapf(ErrInvalidDimensions, "ValidateDims(%d,%d)", rows, cols)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape[T Float](a, b *Matrix[T]) error {
	if a.r != b.r || a.c != b.c {
		return errors.Wrapf(ErrShapeMismatch, "ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c)
	}

	return nil
}

// ValidateBinarySameShape runs NotNil on both operands, then SameShape.
func ValidateBinarySameShape[T Float](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateIndex ensures 0 ≤ row < rows and 0 ≤ col < cols.
// Returns the bare sentinel so At/Set can attach coordinates themselves.
func ValidateIndex[T Float](m *Matrix[T], row, col int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrIndexOutOfBounds
	}

	return nil
}

// ValidateGrid ensures every row of grid has the length of the first row.
// An empty grid is valid (it describes a 0×0 matrix).
// Complexity: O(rows).
func ValidateGrid[T Float](grid [][]T) error {
	if len(grid) == 0 {
		return nil
	}
	want := len(grid[0])
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != want {
			return errors.Wrapf(ErrShapeMismatch, "ValidateGrid: row %d has %d columns, want %d", i, len(grid[i]), want)
		}
	}

	return nil
}

// ValidateDiagonal ensures every row reaches its diagonal cell (cols >= rows),
// the precondition of Trace. Assumes m is not nil.
func ValidateDiagonal[T Float](m *Matrix[T]) error {
	if m.c < m.r {
		return errors.Wrapf(ErrIndexOutOfBounds, "ValidateDiagonal: %dx%d has no cell (%d,%d)", m.r, m.c, m.c, m.c)
	}

	return nil
}

// ValidateFinite scans m for NaN/±Inf and reports the first offending cell.
// Complexity: O(r*c) worst case.
func ValidateFinite[T Float](m *Matrix[T]) error {
	var bad error
	m.Do(func(i, j int, v T) bool {
		if isNonFinite(v) {
			bad = errors.Wrapf(ErrNaNInf, "ValidateFinite(%d,%d)", i, j)
			return false
		}
		return true
	})

	return bad
}

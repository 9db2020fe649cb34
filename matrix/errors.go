// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Checked facades return
// these sentinels wrapped with operation context; tests and callers match them
// via errors.Is. Unchecked methods never return errors.

package matrix

import "github.com/pkg/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Validators wrap with errors.Wrapf(ErrX, "<Validator>: ...") and facades add
// the operation name on top, so shapes/coordinates travel with the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimensions -> shape -> index -> numeric policy.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates negative rows or cols at construction.
	// Zero is legal: 0×N, N×0 and 0×0 matrices exist.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrShapeMismatch indicates incompatible operand shapes, or a ragged input grid.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfBounds indicates a row or column index outside [0,rows)×[0,cols).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value where the finite-only policy is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

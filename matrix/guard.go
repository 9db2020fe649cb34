// SPDX-License-Identifier: MIT

// Package matrix - bridges between the unchecked (panicking) and checked (error) worlds.
//
// Guard lets a caller run a block of fast unchecked code (methods, Index) and
// still receive a sentinel error instead of a crash:
//
//	var c *matrix.Matrix64
//	err := matrix.Guard(func() { c = a.Add(b).Mul(w) })
//	if errors.Is(err, matrix.ErrIndexOutOfBounds) { ... }
//
// Must goes the other way: it turns a checked facade's error into a panic,
// which Guard recovers with the original sentinel intact.

package matrix

import (
	"runtime"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Guard runs fn and converts a panic carrying an error into a returned error.
//
// Behavior highlights:
//   - Runtime index/slice panics become ErrIndexOutOfBounds.
//   - Nil pointer dereferences (a nil *Matrix operand) become ErrNilMatrix.
//   - Errors panicked by Must are returned unchanged (sentinels still match errors.Is).
//   - Panics whose value is not an error are re-raised.
//   - Cells written before the panic keep their values; Guard does not roll back.
func Guard(fn func()) error {
	err := exceptions.TryCatch[error](fn)
	if err == nil {
		return nil
	}
	var rtErr runtime.Error
	if !errors.As(err, &rtErr) {
		return err
	}
	if strings.Contains(rtErr.Error(), "nil pointer") {
		return errors.Wrap(ErrNilMatrix, rtErr.Error())
	}

	return errors.Wrap(ErrIndexOutOfBounds, rtErr.Error())
}

// Must returns m, or panics with err when it is non-nil.
//
//	sum := matrix.Must(matrix.Add(a, b))
func Must[T Float](m *Matrix[T], err error) *Matrix[T] {
	if err != nil {
		panic(errors.WithMessage(err, "matrix.Must"))
	}

	return m
}

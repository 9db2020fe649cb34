// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraint and the Matrix value type.
// Storage helpers live in dense.go, errors in errors.go, options in options.go.
package matrix

import "golang.org/x/exp/constraints"

// Float is the element constraint: float32 or float64 (and named types over them).
type Float interface {
	constraints.Float
}

// Matrix is a dense rows×cols grid of floating-point values.
//
// Layout:
//   - data is one contiguous row-major buffer, len(data) == r*c (offset i*c + j).
//   - rows[i] aliases data[i*c : (i+1)*c] with capacity capped at c, so a row
//     handed out by Index can be written through but never appended into its neighbour.
//
// The zero value is a usable 0×0 matrix. A Matrix exclusively owns its storage;
// every constructor and every non-mutating operation returns fresh storage.
//
// Methods on *Matrix never validate shapes or indices (see doc.go, "Unchecked path").
// The package-level functions in api.go are the validated counterparts.
type Matrix[T Float] struct {
	r, c           int   // row and column counts (>= 0)
	data           []T   // contiguous row-major storage (len == r*c)
	rows           [][]T // per-row windows into data (len == r)
	validateNaNInf bool  // numeric guard honored by Set/Apply and the checked facades
}

// Matrix64 is the float64 instantiation most callers want.
type Matrix64 = Matrix[float64]

// Matrix32 is the float32 instantiation (single-precision storage).
type Matrix32 = Matrix[float32]

// Package matrix offers a small dense matrix value type with element-wise algebra.
//
// The package provides:
//
//   - Matrix[T], a rows×cols grid of float32 or float64 stored row-major, with
//     zero-filled (New), copied (FromGrid, Clone) and empty (Empty) constructors.
//   - Scalar and matrix element-wise operators, each with an in-place form:
//     Add, Sub, Mul (Hadamard), Div, AddScalar, ..., AddInPlace, ...
//   - Dot and Cross (element-wise accumulate / negated product), Trace,
//     Identity and Transpose (T).
//   - Exact comparison: Equal and NotEqual.
//
// Unchecked path:
//
// Methods on *Matrix never validate. Shapes and indices are the caller's
// contract; violating it panics with the Go runtime's index error. Index(i)
// returns a mutable reference to row i, so m.Index(i)[j] = v writes a cell.
//
// Checked path:
//
// The package-level functions (Add, Sub, Mul, Trace, ...) validate first and
// return sentinel errors: ErrShapeMismatch, ErrIndexOutOfBounds,
// ErrInvalidDimensions, ErrNilMatrix, ErrNaNInf. At/Set are the checked cell
// accessors. Guard converts panics from unchecked code into the same sentinels.
//
// Note that Mul is element-wise: [[1,2],[3,4]] * [[5,6],[7,8]] = [[5,12],[21,32]].
// For the conventional product, convert with Gonum() and use gonum/mat.
package matrix

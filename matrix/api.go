// SPDX-License-Identifier: MIT
// Package matrix - checked (hardened) facades.
//
// Purpose:
//   - Offer a validated counterpart for every operator method on *Matrix.
//   - Convert every precondition violation into a sentinel error (errors.go)
//     wrapped with the operation tag, instead of a runtime panic or a silent
//     partial result.
//   - Never mutate an operand when returning an error.
//
// Determinism & Policy:
//   - Facades validate, then delegate to the same kernels as the methods; loop
//     orders and results are bit-identical on valid input.
//   - Results carry the finite-only policy of their operands (either operand for
//     binary ops); when it is on, a non-finite result is rejected with ErrNaNInf.
//
// Deliberate deviations from the method contracts:
//   - Mul/Hadamard/Dot/Cross require equal shapes.
//   - NotEqual is the plain negation of Equal (differing shapes → true).

package matrix

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Operation name constants for unified error wrapping.
const (
	opNewDense   = "NewDense"
	opFromRows   = "FromRows"
	opAdd        = "Add"
	opSub        = "Sub"
	opHadamard   = "Hadamard"
	opDiv        = "Div"
	opDot        = "Dot"
	opCross      = "Cross"
	opAddScalar  = "AddScalar"
	opSubScalar  = "SubScalar"
	opMulScalar  = "MulScalar"
	opDivScalar  = "DivScalar"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
	opDivInPlace = "DivInPlace"
	opTrace      = "Trace"
	opIdentity   = "Identity"
	opTranspose  = "Transpose"
)

// matrixErrorf tags err with the operation name and logs the rejection at V(2).
// Use only when err != nil.
func matrixErrorf(op string, err error) error {
	err = errors.WithMessage(err, op)
	klog.V(2).Infof("matrix: rejected: %v", err)

	return err
}

// enforcePolicy rejects a non-finite result when m carries the finite-only policy.
func enforcePolicy[T Float](m *Matrix[T]) error {
	if !m.validateNaNInf {
		return nil
	}

	return ValidateFinite(m)
}

// ---------- Constructors ----------

// NewDense returns a zero-filled rows×cols matrix, validating the shape.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Options: WithValidateNaNInf turns on the finite-only policy for the result.
func NewDense[T Float](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}
	o := gatherOptions(opts...)
	m := newMatrix[T](rows, cols)
	m.validateNaNInf = o.validateNaNInf

	return m, nil
}

// FromRows copies grid into a new matrix, rejecting ragged input.
//
// Errors:
//   - ErrShapeMismatch when rows differ in length.
//   - ErrNaNInf when the finite-only policy is on and grid holds NaN/±Inf.
func FromRows[T Float](grid [][]T, opts ...Option) (*Matrix[T], error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	m := FromGrid(grid)
	m.validateNaNInf = o.validateNaNInf
	if err := enforcePolicy(m); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return m, nil
}

// ---------- Binary element-wise (O(r*c)) ----------

// checkedBinary validates operands, runs the kernel and enforces the numeric policy.
func checkedBinary[T Float](op string, a, b *Matrix[T], kernel func(a, b *Matrix[T]) *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := kernel(a, b)
	out.validateNaNInf = a.validateNaNInf || b.validateNaNInf
	if err := enforcePolicy(out); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return out, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrShapeMismatch, ErrNaNInf (policy).
func Add[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return checkedBinary(opAdd, a, b, (*Matrix[T]).Add)
}

// Sub returns a - b. Errors: ErrNilMatrix, ErrShapeMismatch, ErrNaNInf (policy).
func Sub[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return checkedBinary(opSub, a, b, (*Matrix[T]).Sub)
}

// Hadamard returns a ⊙ b for equal shapes.
func Hadamard[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return checkedBinary(opHadamard, a, b, (*Matrix[T]).Hadamard)
}

// Mul is an alias for Hadamard (the element-wise `*` operator).
func Mul[T Float](a, b *Matrix[T]) (*Matrix[T], error) { return Hadamard(a, b) }

// Div returns a / b element-wise. Zero divisors only fail under the finite-only policy.
func Div[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return checkedBinary(opDiv, a, b, (*Matrix[T]).Div)
}

// Dot returns the accumulated element-wise product for equal shapes.
func Dot[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return checkedBinary(opDot, a, b, (*Matrix[T]).Dot)
}

// Cross returns the negated element-wise product for equal shapes.
func Cross[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return checkedBinary(opCross, a, b, (*Matrix[T]).Cross)
}

// ---------- Scalar (O(r*c)) ----------

func checkedScalar[T Float](op string, m *Matrix[T], s T, kernel func(m *Matrix[T], s T) *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := kernel(m, s)
	if err := enforcePolicy(out); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return out, nil
}

// AddScalar returns m + s.
func AddScalar[T Float](m *Matrix[T], s T) (*Matrix[T], error) {
	return checkedScalar(opAddScalar, m, s, (*Matrix[T]).AddScalar)
}

// SubScalar returns m - s.
func SubScalar[T Float](m *Matrix[T], s T) (*Matrix[T], error) {
	return checkedScalar(opSubScalar, m, s, (*Matrix[T]).SubScalar)
}

// MulScalar returns m * s.
func MulScalar[T Float](m *Matrix[T], s T) (*Matrix[T], error) {
	return checkedScalar(opMulScalar, m, s, (*Matrix[T]).MulScalar)
}

// DivScalar returns m / s. Division by zero is an error only under the finite-only policy.
func DivScalar[T Float](m *Matrix[T], s T) (*Matrix[T], error) {
	return checkedScalar(opDivScalar, m, s, (*Matrix[T]).DivScalar)
}

// ---------- In-place (all-or-nothing) ----------

// checkedInPlace validates, then mutates dst. Under the finite-only policy the
// result is staged in a copy first so that a rejected result leaves dst intact.
func checkedInPlace[T Float](op string, dst, src *Matrix[T], kernel func(dst, src *Matrix[T]) *Matrix[T]) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(op, err)
	}
	if !dst.validateNaNInf {
		kernel(dst, src)
		return nil
	}
	staged := kernel(dst.Clone(), src)
	if err := ValidateFinite(staged); err != nil {
		return matrixErrorf(op, err)
	}
	copy(dst.data, staged.data)

	return nil
}

// AddInPlace performs dst += src.
func AddInPlace[T Float](dst, src *Matrix[T]) error {
	return checkedInPlace(opAddInPlace, dst, src, (*Matrix[T]).AddInPlace)
}

// SubInPlace performs dst -= src.
func SubInPlace[T Float](dst, src *Matrix[T]) error {
	return checkedInPlace(opSubInPlace, dst, src, (*Matrix[T]).SubInPlace)
}

// MulInPlace performs dst *= src element-wise.
func MulInPlace[T Float](dst, src *Matrix[T]) error {
	return checkedInPlace(opMulInPlace, dst, src, (*Matrix[T]).MulInPlace)
}

// DivInPlace performs dst /= src element-wise.
func DivInPlace[T Float](dst, src *Matrix[T]) error {
	return checkedInPlace(opDivInPlace, dst, src, (*Matrix[T]).DivInPlace)
}

// ---------- Transforms ----------

// Trace returns the diagonal sum.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrIndexOutOfBounds when cols < rows (some row has no diagonal cell).
//   - ErrNaNInf when the policy is on and the sum is not finite.
func Trace[T Float](m *Matrix[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if err := ValidateDiagonal(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := m.Trace()
	if m.validateNaNInf && isNonFinite(sum) {
		return 0, matrixErrorf(opTrace, ErrNaNInf)
	}

	return sum, nil
}

// Identity returns the shape-preserving identity of m.
func Identity[T Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return m.Identity(), nil
}

// Transpose returns mᵀ.
func Transpose[T Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// T is an alias for Transpose.
func T[E Float](m *Matrix[E]) (*Matrix[E], error) { return Transpose(m) }

// ---------- Comparison ----------

// Equal reports exact equality. Two nil matrices are equal; nil never equals non-nil.
func Equal[T Float](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}

// NotEqual is !Equal(a, b): differing shapes, or any differing cell, yield true.
// This intentionally differs from the (*Matrix).NotEqual method.
func NotEqual[T Float](a, b *Matrix[T]) bool {
	return !Equal(a, b)
}

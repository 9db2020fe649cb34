// Package lvmat is a minimal dense matrix value type for Go: element-wise
// arithmetic with a matrix or a scalar, transpose, trace, identity and exact
// equality, over float32 or float64.
//
// 🚀 What is in lvmat?
//
//		• Matrix[T]: a rows×cols grid stored row-major in one buffer
//		• Operators: Add, Sub, Mul (element-wise), Div, plus scalar and in-place forms
//		• Transforms: Transpose (T), Trace, Identity
//		• Comparison: Equal, NotEqual
//		• Two postures: fast unchecked methods, and validated package functions
//		  returning sentinel errors
//
// ✨ Why lvmat?
//
//   - Tiny surface - one type, operator-style methods, no hidden state
//   - Predictable - exact results, IEEE-754 semantics, deterministic loops
//   - Interoperable - Gonum()/FromGonum hand off to gonum for real linear algebra
//
// Layout:
//
//	matrix/   - the Matrix type, operators, checked facades, Guard/Must
//	examples/ - runnable programs
//
// Quick example:
//
//	a := matrix.FromGrid([][]float64{{1, 2}, {3, 4}})
//	b := matrix.FromGrid([][]float64{{5, 6}, {7, 8}})
//	fmt.Print(a.Mul(b)) // [5, 12]\n[21, 32]
//
// Note that Mul is element-wise. For the conventional product use gonum:
//
//	var p mat.Dense
//	p.Mul(a.Gonum(), b.Gonum())
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat

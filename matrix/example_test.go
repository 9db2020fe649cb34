// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/mat"
)

// ExampleMatrix_Mul shows that `*` is element-wise.
func ExampleMatrix_Mul() {
	a := matrix.FromGrid([][]float64{{1, 2}, {3, 4}})
	b := matrix.FromGrid([][]float64{{5, 6}, {7, 8}})
	fmt.Print(a.Mul(b))
	// Output:
	// [5, 12]
	// [21, 32]
}

// ExampleMatrix_Transpose flips a 2×3 into a 3×2.
func ExampleMatrix_Transpose() {
	m := matrix.FromGrid([][]float64{{1, 2, 3}, {4, 5, 6}})
	fmt.Print(m.T())
	fmt.Println(m.Trace())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
	// 6
}

// ExampleMatrix_AddScalarInPlace chains compound assignments.
func ExampleMatrix_AddScalarInPlace() {
	m := matrix.New[float64](1, 3)
	m.AddScalarInPlace(1).MulScalarInPlace(3)
	fmt.Print(m)
	// Output:
	// [3, 3, 3]
}

// ExampleAdd uses the checked facade to reject mismatched shapes.
func ExampleAdd() {
	a := matrix.New[float64](2, 2)
	b := matrix.New[float64](3, 3)
	_, err := matrix.Add(a, b)
	fmt.Println(errors.Is(err, matrix.ErrShapeMismatch))
	fmt.Println(a.NotEqual(b), matrix.NotEqual(a, b))
	// Output:
	// true
	// false true
}

// ExampleGuard turns an out-of-range access into an error.
func ExampleGuard() {
	m := matrix.New[float64](2, 2)
	err := matrix.Guard(func() { _ = m.Index(2) })
	fmt.Println(errors.Is(err, matrix.ErrIndexOutOfBounds))
	// Output:
	// true
}

// ExampleMatrix_Gonum hands off to gonum for the conventional product.
func ExampleMatrix_Gonum() {
	a := matrix.FromGrid([][]float64{{1, 2}, {3, 4}})
	b := matrix.FromGrid([][]float64{{5, 6}, {7, 8}})
	var p mat.Dense
	p.Mul(a.Gonum(), b.Gonum())
	fmt.Print(matrix.FromGonum[float64](&p))
	// Output:
	// [19, 22]
	// [43, 50]
}

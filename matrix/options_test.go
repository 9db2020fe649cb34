// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies NewOptions() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestOptions_LastWriterWins checks ordering and nil setters.
func TestOptions_LastWriterWins(t *testing.T) {
	require.True(t, matrix.NewOptions(matrix.WithValidateNaNInf()).ValidateNaNInf())
	require.False(t, matrix.NewOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf()).ValidateNaNInf())
	require.True(t, matrix.NewOptions(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf()).ValidateNaNInf())
}

// TestOptions_PolicyInherited checks that derived matrices keep the policy.
func TestOptions_PolicyInherited(t *testing.T) {
	strict, err := matrix.NewDense[float64](2, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)

	derived := []*matrix.Matrix64{
		strict.Clone(),
		strict.AddScalar(1),
		strict.Add(strict),
		strict.Transpose(),
		strict.Identity(),
	}
	for i, d := range derived {
		require.ErrorIsf(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf, "derived #%d", i)
	}

	// Unchecked constructors always start from the defaults.
	require.NoError(t, matrix.New[float64](1, 1).Set(0, 0, math.NaN()))
}

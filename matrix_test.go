// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repsim

import (
	"context"
	"math"
	"testing"

	"cogentcore.org/repsim/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func reps() []mat.Matrix {
	return []mat.Matrix{
		triangle(),
		doubled(),
		mat.NewDense(3, 2, []float64{0, 0, 1, 0, 0, 2}),
		mat.NewDense(3, 3, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}),
	}
}

func TestMatrix(t *testing.T) {
	rs := reps()
	for _, m := range MethodsValues() {
		out, err := Matrix(context.Background(), rs, m.String(), nil)
		require.NoError(t, err, m.String())
		require.Equal(t, len(rs), out.SymmetricDim())
		for i := range rs {
			for j := range rs {
				v, err := m.Compare(rs[i], rs[j], nil)
				require.NoError(t, err)
				assert.InDelta(t, v, out.At(i, j), 1.0e-6, "%v %d %d", m, i, j)
			}
		}
	}

	out, err := Matrix(context.Background(), rs, "Stress", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, out.At(1, 1), 1.0e-10)
	assert.InDelta(t, math.Sqrt(4.0/3.0), out.At(0, 1), 1.0e-10)
	assert.Equal(t, out.At(0, 1), out.At(1, 0))

	empty, err := Matrix(context.Background(), nil, "stress", nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestMatrixErrors(t *testing.T) {
	_, err := Matrix(context.Background(), reps(), "procrustes", nil)
	var ume *UnsupportedMethodError
	assert.ErrorAs(t, err, &ume)
	assert.Equal(t, "procrustes", ume.Method)

	bad := append(reps(), mat.NewDense(5, 2, nil))
	_, err = Matrix(context.Background(), bad, "stress", nil)
	assert.ErrorIs(t, err, metrics.ErrShape)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Matrix(ctx, reps(), "stress", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCrossMatrix(t *testing.T) {
	a := []mat.Matrix{triangle()}
	b := []mat.Matrix{triangle(), doubled()}
	out, err := CrossMatrix(context.Background(), a, b, "stress", nil)
	require.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
	assert.InDelta(t, 0, out.At(0, 0), 1.0e-10)
	assert.InDelta(t, math.Sqrt(4.0/3.0), out.At(0, 1), 1.0e-10)

	out, err = CrossMatrix(context.Background(), b, a, "PEARSON", nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, out.At(1, 0), 1.0e-10)

	_, err = CrossMatrix(context.Background(), a, b, "", nil)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)

	empty, err := CrossMatrix(context.Background(), nil, b, "stress", nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestTriangularLIndexes(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 0}, {2, 1}, {2, 2}}, triangularLIndexes(3))
	assert.Empty(t, triangularLIndexes(0))
}

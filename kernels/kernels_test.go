// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func points() *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		0, 0,
		3, 4,
		6, 8,
	})
}

func TestGramLinear(t *testing.T) {
	k := &Kernel{}
	g, err := k.Gram(points())
	require.NoError(t, err)
	assert.Equal(t, 3, g.SymmetricDim())
	assert.InDelta(t, 0, g.At(0, 0), 1.0e-12)
	assert.InDelta(t, 25, g.At(1, 1), 1.0e-12)
	assert.InDelta(t, 50, g.At(1, 2), 1.0e-12)
	assert.InDelta(t, 100, g.At(2, 2), 1.0e-12)

	_, err = k.Gram(&mat.Dense{})
	assert.Error(t, err)
}

func TestGramDistanceKernels(t *testing.T) {
	k := &Kernel{Type: SquaredExponential, LengthScale: 5}
	g, err := k.Gram(points())
	require.NoError(t, err)
	assert.InDelta(t, 1, g.At(1, 1), 1.0e-12)
	assert.InDelta(t, math.Exp(-0.5), g.At(0, 1), 1.0e-12)
	assert.InDelta(t, math.Exp(-2), g.At(0, 2), 1.0e-12)

	k = &Kernel{Type: Laplace, LengthScale: 5}
	g, err = k.Gram(points())
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), g.At(0, 1), 1.0e-12)
	assert.InDelta(t, math.Exp(-2), g.At(0, 2), 1.0e-12)

	// median of 5, 10, 5 is 5
	k = &Kernel{Type: Laplace}
	g, err = k.Gram(points())
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), g.At(0, 1), 1.0e-12)
}

func TestCenter(t *testing.T) {
	k := &Kernel{}
	g, err := k.Gram(points())
	require.NoError(t, err)
	c := Center(g)
	n := c.SymmetricDim()
	for i := range n {
		s := 0.0
		for j := range n {
			s += c.At(i, j)
		}
		assert.InDelta(t, 0, s, 1.0e-10)
	}
	// centering does not change distances
	assert.True(t, mat.EqualApprox(Distances(g), Distances(c), 1.0e-10))
}

func TestDistances(t *testing.T) {
	k := &Kernel{}
	g, err := k.Gram(points())
	require.NoError(t, err)
	d := Distances(g)
	assert.InDelta(t, 5, d.At(0, 1), 1.0e-10)
	assert.InDelta(t, 10, d.At(0, 2), 1.0e-10)
	assert.InDelta(t, 5, d.At(2, 1), 1.0e-10)
	assert.Equal(t, 0.0, d.At(1, 1))

	assert.InDeltaSlice(t, []float64{5, 10, 5}, UpperTriangle(d), 1.0e-10)
	assert.InDelta(t, 5, MedianDistance(d), 1.0e-10)
}

func TestTriangularN(t *testing.T) {
	assert.Equal(t, 0, TriangularN(0))
	assert.Equal(t, 0, TriangularN(1))
	assert.Equal(t, 1, TriangularN(2))
	assert.Equal(t, 6, TriangularN(4))
}

func TestKernelsString(t *testing.T) {
	assert.Equal(t, "squared_exponential", SquaredExponential.String())
	var k Kernels
	assert.NoError(t, k.SetString("laplace"))
	assert.Equal(t, Laplace, k)
	assert.Error(t, k.SetString("cubic"))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRep(t *testing.T) {
	vals := make([]float64, 3*2*4)
	for i := range vals {
		vals[i] = float64(i)
	}
	r, err := NewRep(vals, 3, 2, 4)
	require.NoError(t, err)
	rows, cols := r.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 8, cols)
	assert.Equal(t, 9.0, r.At(1, 1))

	c, err := NewRep([]float64{1, 2, 3}, 3)
	require.NoError(t, err)
	rows, cols = c.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)

	_, err = NewRep(vals, 5, 5)
	assert.Error(t, err)
	_, err = NewRep(vals)
	assert.Error(t, err)
	_, err = NewRep(nil, 0, 4)
	assert.Error(t, err)
}

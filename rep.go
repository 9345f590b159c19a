// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewRep returns a representation matrix from row-major values with
// the given shape sizes. The outermost dimension is the rows (stimuli),
// and all of the inner dimensions are flattened into the columns (cells),
// so that a 10 x 4 x 8 array is a 10 x 32 matrix.
// A single size is a column vector. The matrix shares the values.
func NewRep(values []float64, sizes ...int) (*mat.Dense, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("repsim.NewRep: no sizes")
	}
	rows := sizes[0]
	cells := 1
	for _, s := range sizes[1:] {
		cells *= s
	}
	if rows <= 0 || cells <= 0 {
		return nil, fmt.Errorf("repsim.NewRep: sizes %v must be positive", sizes)
	}
	if len(values) != rows*cells {
		return nil, fmt.Errorf("repsim.NewRep: %d values do not match sizes %v", len(values), sizes)
	}
	return mat.NewDense(rows, cells, values), nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"cogentcore.org/repsim/kernels"
	"gonum.org/v1/gonum/mat"
)

// Stress is the root mean squared difference between the pairwise
// feature-space distances of the two representations, over all
// pairs of rows. It is 0 for representations that are equal up to
// rotation and translation, and is sensitive to scale.
type Stress struct{}

func (st *Stress) Compare(x, y mat.Matrix, opts *Options) (float64, error) {
	kx, ky, err := GramMatrices(x, y, opts)
	if err != nil {
		return 0, err
	}
	dx := kernels.UpperTriangle(kernels.Distances(kx))
	dy := kernels.UpperTriangle(kernels.Distances(ky))
	ss := 0.0
	for i, d := range dx {
		diff := d - dy[i]
		ss += diff * diff
	}
	return math.Sqrt(ss / float64(len(dx))), nil
}

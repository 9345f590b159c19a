// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/repsim/kernels"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrTypes are the kinds of correlation used by [Corr].
type CorrTypes int32 //enums:enum -transform lower

const (
	// Pearson is the linear correlation coefficient.
	Pearson CorrTypes = iota

	// Spearman is the Pearson correlation of the ranks,
	// which only depends on the ordering of the values.
	Spearman
)

// Corr is classical representational similarity analysis:
// the correlation between the pairwise feature-space distances
// of the two representations, over all pairs of rows.
// It is a similarity in [-1, 1], with 1 for representations whose
// distances are linearly (Pearson) or monotonically (Spearman) related.
type Corr struct {

	// Type is the kind of correlation.
	Type CorrTypes
}

func (cr *Corr) Compare(x, y mat.Matrix, opts *Options) (float64, error) {
	kx, ky, err := GramMatrices(x, y, opts)
	if err != nil {
		return 0, err
	}
	dx := kernels.UpperTriangle(kernels.Distances(kx))
	dy := kernels.UpperTriangle(kernels.Distances(ky))
	if len(dx) < 2 {
		return 0, fmt.Errorf("%w: need at least 3 rows for %v correlation", ErrShape, cr.Type)
	}
	switch cr.Type {
	case Pearson:
	case Spearman:
		dx = Rank(dx)
		dy = Rank(dy)
	default:
		return 0, fmt.Errorf("metrics.Corr: correlation type %v not supported", cr.Type)
	}
	c := stat.Correlation(dx, dy, nil)
	if math.IsNaN(c) {
		return 0, fmt.Errorf("%w: pairwise distances have zero variance", ErrConstant)
	}
	return c, nil
}

// Rank returns the 1-based ranks of the values,
// with tied values given the average of their ranks.
func Rank(vals []float64) []float64 {
	n := len(vals)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case vals[a] < vals[b]:
			return -1
		case vals[a] > vals[b]:
			return 1
		}
		return 0
	})
	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && vals[idx[j]] == vals[idx[i]] {
			j++
		}
		r := 0.5 * float64(i+j+1) // mean of i+1 .. j
		for k := i; k < j; k++ {
			ranks[idx[k]] = r
		}
		i = j
	}
	return ranks
}

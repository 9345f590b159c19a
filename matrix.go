// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repsim

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Matrix computes the square matrix of comparisons between all pairs of
// the given representations, using the method with the given name.
// See [Dispatcher.Matrix].
func Matrix(ctx context.Context, reps []mat.Matrix, method string, opts *Options) (*mat.SymDense, error) {
	var d Dispatcher
	return d.Matrix(ctx, reps, method, opts)
}

// CrossMatrix computes the matrix of comparisons between each of
// the representations in a (rows) and in b (columns).
// See [Dispatcher.CrossMatrix].
func CrossMatrix(ctx context.Context, a, b []mat.Matrix, method string, opts *Options) (*mat.Dense, error) {
	var d Dispatcher
	return d.CrossMatrix(ctx, a, b, method, opts)
}

// Matrix computes the square matrix of comparisons between all pairs of
// the given representations, using the method with the given name.
// The diagonal holds the comparison of each representation with itself.
// Only the lower triangular part is computed, in parallel, and the result
// is symmetric. The method is checked before any comparisons are done.
// The first comparator error, or context cancellation, stops the
// remaining comparisons and is returned.
func (d *Dispatcher) Matrix(ctx context.Context, reps []mat.Matrix, method string, opts *Options) (*mat.SymDense, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	n := len(reps)
	if n == 0 {
		return &mat.SymDense{}, nil
	}
	out := mat.NewSymDense(n, nil)
	coords := triangularLIndexes(n)
	slog.Debug("repsim.Matrix", "method", m, "reps", n, "pairs", len(coords))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, c := range coords {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := d.CompareMethod(m, reps[c[0]], reps[c[1]], opts)
			if err != nil {
				return fmt.Errorf("repsim.Matrix: %v of %d and %d: %w", m, c[0], c[1], err)
			}
			out.SetSym(c[0], c[1], v)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// CrossMatrix computes the matrix of comparisons between each of
// the representations in a (rows) and in b (columns),
// in parallel, with the same error handling as [Dispatcher.Matrix].
func (d *Dispatcher) CrossMatrix(ctx context.Context, a, b []mat.Matrix, method string, opts *Options) (*mat.Dense, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(len(a), len(b), nil)
	slog.Debug("repsim.CrossMatrix", "method", m, "rows", len(a), "cols", len(b))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range a {
		for j := range b {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := d.CompareMethod(m, a[i], b[j], opts)
				if err != nil {
					return fmt.Errorf("repsim.CrossMatrix: %v of %d and %d: %w", m, i, j, err)
				}
				out.Set(i, j, v)
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// triangularLIndexes returns the row, column indexes for the
// lower triangular portion of a square matrix of size n,
// including the diagonal.
func triangularLIndexes(n int) [][2]int {
	coords := make([][2]int, 0, n+(n*(n-1))/2)
	for r := range n {
		for c := 0; c <= r; c++ {
			coords = append(coords, [2]int{r, c})
		}
	}
	return coords
}

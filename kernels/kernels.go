// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate core generate

// Package kernels computes kernel (Gram) matrices over the rows
// of a representation, along with the centering and feature-space
// distance transforms that the representational similarity
// metrics are built on.
package kernels

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Kernels are the standard kernel functions.
type Kernels int32 //enums:enum -transform snake

const (
	// Linear is the inner product of the two rows.
	Linear Kernels = iota

	// SquaredExponential is exp(-d^2 / (2 l^2)) of the Euclidean
	// distance d between the two rows, with length scale l.
	SquaredExponential

	// Laplace is exp(-d / l) of the Euclidean distance d
	// between the two rows, with length scale l.
	Laplace
)

// Kernel specifies the kernel used to compute the Gram matrix
// of a representation. The zero value is the [Linear] kernel.
type Kernel struct {

	// Type is the kernel function.
	Type Kernels `toml:"type" yaml:"type"`

	// LengthScale is the length scale of the distance-based kernels.
	// If <= 0, the median distance between rows is used.
	LengthScale float64 `toml:"length_scale" yaml:"length_scale"`
}

// Gram returns the n x n kernel matrix over the n rows of x.
func (k *Kernel) Gram(x mat.Matrix) (*mat.SymDense, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, mat.ErrZeroLength
	}
	lin := mat.NewSymDense(rows, nil)
	lin.SymOuterK(1, x)
	if k.Type == Linear {
		return lin, nil
	}
	d := Distances(lin)
	ls := k.LengthScale
	if ls <= 0 {
		ls = MedianDistance(d)
		if ls == 0 {
			ls = 1
		}
	}
	out := mat.NewSymDense(rows, nil)
	for i := range rows {
		for j := i; j < rows; j++ {
			dij := d.At(i, j)
			var v float64
			switch k.Type {
			case SquaredExponential:
				v = math.Exp(-dij * dij / (2 * ls * ls))
			case Laplace:
				v = math.Exp(-dij / ls)
			default:
				return nil, fmt.Errorf("kernels.Gram: kernel type %v not supported", k.Type)
			}
			out.SetSym(i, j, v)
		}
	}
	return out, nil
}

// Center returns the double-centered kernel matrix H K H,
// where H = I - 11^T/n, which is the Gram matrix of the rows
// after subtracting their mean in feature space.
func Center(k mat.Symmetric) *mat.SymDense {
	n := k.SymmetricDim()
	if n == 0 {
		return &mat.SymDense{}
	}
	out := mat.NewSymDense(n, nil)
	means := make([]float64, n)
	grand := 0.0
	for i := range n {
		s := 0.0
		for j := range n {
			s += k.At(i, j)
		}
		means[i] = s / float64(n)
		grand += s
	}
	grand /= float64(n * n)
	for i := range n {
		for j := i; j < n; j++ {
			out.SetSym(i, j, k.At(i, j)-means[i]-means[j]+grand)
		}
	}
	return out
}

// Distances returns the feature-space Euclidean distance matrix
// implied by the kernel matrix k:
// sqrt(k_ii + k_jj - 2 k_ij), with negative round-off clamped to 0.
func Distances(k mat.Symmetric) *mat.SymDense {
	n := k.SymmetricDim()
	if n == 0 {
		return &mat.SymDense{}
	}
	out := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i + 1; j < n; j++ {
			d2 := k.At(i, i) + k.At(j, j) - 2*k.At(i, j)
			out.SetSym(i, j, math.Sqrt(max(d2, 0)))
		}
	}
	return out
}

// UpperTriangle returns the elements above the diagonal of s,
// in row-major order, which is n(n-1)/2 values.
func UpperTriangle(s mat.Symmetric) []float64 {
	n := s.SymmetricDim()
	out := make([]float64, 0, TriangularN(n))
	for i := range n {
		for j := i + 1; j < n; j++ {
			out = append(out, s.At(i, j))
		}
	}
	return out
}

// TriangularN returns the number of elements strictly above
// the diagonal of a square matrix of size n.
func TriangularN(n int) int {
	if n < 2 {
		return 0
	}
	return (n * (n - 1)) / 2
}

// MedianDistance returns the median of the off-diagonal
// distances in d, or 0 if there are none.
func MedianDistance(d mat.Symmetric) float64 {
	vals := UpperTriangle(d)
	if len(vals) == 0 {
		return 0
	}
	slices.Sort(vals)
	m := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[m]
	}
	return 0.5 * (vals[m-1] + vals[m])
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/mat"
)

// Trace returns the sum of the diagonal of the square matrix a.
func Trace(a mat.Symmetric) float64 {
	n := a.SymmetricDim()
	t := 0.0
	for i := range n {
		t += a.At(i, i)
	}
	return t
}

// NuclearNorm returns the nuclear (trace) norm of a,
// which is the sum of its singular values.
func NuclearNorm(a mat.Matrix) (float64, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return 0, mat.ErrZeroLength
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0, errors.New("gonum mat.SVD Factorize failed")
	}
	sum := 0.0
	for _, v := range svd.Values(nil) {
		sum += v
	}
	return sum, nil
}

// Shrink returns (1-s) a + s (tr(a)/n) I, which moves a toward
// the identity matrix with the same trace.
// s = 0 returns a copy of a.
func Shrink(a mat.Symmetric, s float64) *mat.SymDense {
	n := a.SymmetricDim()
	if n == 0 {
		return &mat.SymDense{}
	}
	out := mat.NewSymDense(n, nil)
	out.CopySym(a)
	if s == 0 {
		return out
	}
	diag := s * Trace(a) / float64(n)
	out.ScaleSym(1-s, out)
	for i := range n {
		out.SetSym(i, i, out.At(i, i)+diag)
	}
	return out
}

// Symmetrize returns (a + a^T) / 2 for the square matrix a,
// which removes the round-off asymmetry of products like A B A.
func Symmetrize(a mat.Matrix) (*mat.SymDense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, mat.ErrSquare
	}
	if r == 0 {
		return nil, mat.ErrZeroLength
	}
	out := mat.NewSymDense(r, nil)
	for i := range r {
		for j := i; j < r; j++ {
			out.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}
	return out, nil
}

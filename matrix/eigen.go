// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/mat"
)

// EigenSym performs the eigen decomposition of the given symmetric matrix.
// The vectors are same size as the input. Each vector is a column
// in this 2D square matrix, ordered *lowest* to *highest* across the columns,
// i.e., maximum vector is the last column.
// The values are the size of one row, ordered *lowest* to *highest*.
func EigenSym(a mat.Symmetric) (vals []float64, vecs *mat.Dense, err error) {
	if a.SymmetricDim() == 0 {
		return nil, nil, mat.ErrZeroLength
	}
	var eig mat.EigenSym
	if !eig.Factorize(a, true) {
		return nil, nil, errors.New("gonum mat.EigenSym Factorize failed")
	}
	vals = eig.Values(nil)
	vecs = &mat.Dense{}
	eig.VectorsTo(vecs)
	return vals, vecs, nil
}

// EigenValues returns the eigenvalues of the given symmetric matrix,
// ordered *lowest* to *highest*.
func EigenValues(a mat.Symmetric) ([]float64, error) {
	if a.SymmetricDim() == 0 {
		return nil, mat.ErrZeroLength
	}
	var eig mat.EigenSym
	if !eig.Factorize(a, false) {
		return nil, errors.New("gonum mat.EigenSym Factorize failed")
	}
	return eig.Values(nil), nil
}

// SymFunc applies the scalar function f to the eigenvalues of the
// symmetric matrix a, returning V diag(f(vals)) V^T.
// Errors are logged; see [SymFuncOut].
func SymFunc(a mat.Symmetric, f func(v float64) float64) *mat.SymDense {
	out := &mat.SymDense{}
	errors.Log(SymFuncOut(a, f, out))
	return out
}

// SymFuncOut applies the scalar function f to the eigenvalues of the
// symmetric matrix a, putting V diag(f(vals)) V^T into out,
// which is resized as needed.
func SymFuncOut(a mat.Symmetric, f func(v float64) float64, out *mat.SymDense) error {
	vals, vecs, err := EigenSym(a)
	if err != nil {
		return err
	}
	n := len(vals)
	fv := make([]float64, n)
	for i, v := range vals {
		fv[i] = f(v)
	}
	out.Reset()
	out.ReuseAsSym(n)
	for i := range n {
		for j := i; j < n; j++ {
			s := 0.0
			for k := range n {
				s += vecs.At(i, k) * fv[k] * vecs.At(j, k)
			}
			out.SetSym(i, j, s)
		}
	}
	return nil
}

// Sqrt returns the principal square root of the positive
// semi-definite matrix a. Errors are logged; see [SqrtOut].
func Sqrt(a mat.Symmetric) *mat.SymDense {
	out := &mat.SymDense{}
	errors.Log(SqrtOut(a, out))
	return out
}

// SqrtOut puts the principal square root of the positive
// semi-definite matrix a into out. Slightly negative eigenvalues
// from round-off are treated as 0.
func SqrtOut(a mat.Symmetric, out *mat.SymDense) error {
	return SymFuncOut(a, func(v float64) float64 {
		return math.Sqrt(max(v, 0))
	}, out)
}

// InvSqrtOut puts the inverse principal square root of the
// positive definite matrix a into out. It returns [ErrNotSPD]
// if any eigenvalue is <= eps.
func InvSqrtOut(a mat.Symmetric, eps float64, out *mat.SymDense) error {
	vals, err := EigenValues(a)
	if err != nil {
		return err
	}
	if vals[0] <= eps {
		return fmt.Errorf("%w: smallest eigenvalue %g", ErrNotSPD, vals[0])
	}
	return SymFuncOut(a, func(v float64) float64 {
		return 1 / math.Sqrt(v)
	}, out)
}

// ErrNotSPD is returned when a matrix that must be symmetric
// positive definite has a non-positive eigenvalue.
var ErrNotSPD = errors.New("matrix is not symmetric positive definite")

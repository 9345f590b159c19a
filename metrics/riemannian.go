// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"math"

	"cogentcore.org/repsim/matrix"
	"gonum.org/v1/gonum/mat"
)

// AffineInvariantRiemannian is the affine-invariant Riemannian distance
// between the kernel matrices of the two representations, as points on
// the manifold of symmetric positive definite matrices:
// sqrt(sum log(l_i)^2) over the eigenvalues l_i of Kx^-1/2 Ky Kx^-1/2.
// Kernels are shrunk toward a scaled identity by
// [RiemannianOptions.Shrinkage] so that they are positive definite.
type AffineInvariantRiemannian struct{}

func (ar *AffineInvariantRiemannian) Compare(x, y mat.Matrix, opts *Options) (float64, error) {
	o := resolve(opts)
	shrink := o.Riemannian.Shrinkage
	switch {
	case shrink == 0:
		shrink = 0.1
	case shrink < 0:
		shrink = 0
	case shrink >= 1:
		return 0, fmt.Errorf("metrics.AffineInvariantRiemannian: Shrinkage %g must be < 1", shrink)
	}
	eps := o.Riemannian.Eps
	if eps <= 0 {
		eps = 1.0e-10
	}
	kx, ky, err := GramMatrices(x, y, o)
	if err != nil {
		return 0, err
	}
	sx := matrix.Shrink(kx, shrink)
	sy := matrix.Shrink(ky, shrink)
	isx := &mat.SymDense{}
	if err := matrix.InvSqrtOut(sx, eps, isx); err != nil {
		return 0, fmt.Errorf("x kernel: %w", err)
	}
	var p, q mat.Dense
	p.Mul(isx, sy)
	q.Mul(&p, isx)
	m, err := matrix.Symmetrize(&q)
	if err != nil {
		return 0, err
	}
	vals, err := matrix.EigenValues(m)
	if err != nil {
		return 0, err
	}
	ss := 0.0
	for _, v := range vals {
		if v <= eps {
			return 0, fmt.Errorf("y kernel: %w: eigenvalue %g", ErrNotSPD, v)
		}
		l := math.Log(v)
		ss += l * l
	}
	return math.Sqrt(ss), nil
}

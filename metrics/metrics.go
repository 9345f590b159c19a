// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate core generate

// Package metrics provides representational similarity comparators,
// which compare two representations of the same set of stimuli:
// matrices with one row per stimulus and one column per feature.
// The number of features may differ between the two representations.
package metrics

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/repsim/kernels"
	"cogentcore.org/repsim/matrix"
	"gonum.org/v1/gonum/mat"
)

// Comparator is a representational similarity method.
// Compare returns the (dis)similarity of x and y, whose rows
// must correspond. opts may be nil for the defaults, and is not modified.
type Comparator interface {
	Compare(x, y mat.Matrix, opts *Options) (float64, error)
}

// ComparatorFunc is a function that implements [Comparator].
type ComparatorFunc func(x, y mat.Matrix, opts *Options) (float64, error)

// Compare calls f(x, y, opts).
func (f ComparatorFunc) Compare(x, y mat.Matrix, opts *Options) (float64, error) {
	return f(x, y, opts)
}

var (
	// ErrShape is returned when the two representations
	// do not have compatible shapes.
	ErrShape = errors.New("representations have incompatible shapes")

	// ErrConstant is returned when a representation has no
	// variance, so that a normalized measure is undefined.
	ErrConstant = errors.New("representation is constant")

	// ErrNonFinite is returned when a representation or its
	// kernel matrix contains a NaN or infinite value.
	ErrNonFinite = errors.New("representation has non-finite values")

	// ErrNotSPD is returned by [AffineInvariantRiemannian] when a kernel
	// matrix is not positive definite; increase the shrinkage.
	ErrNotSPD = matrix.ErrNotSPD
)

// Options are the options for all of the comparators.
// Each comparator only uses the fields that apply to it.
// The zero value gives the defaults.
type Options struct {

	// Kernel is the kernel used for the Gram matrix of each representation.
	Kernel kernels.Kernel `toml:"kernel" yaml:"kernel"`

	// NoCenter turns off double-centering of the kernel matrices.
	NoCenter bool `toml:"no_center" yaml:"no_center"`

	// Shape has options for [GeneralizedShapeMetric].
	Shape ShapeOptions `toml:"shape" yaml:"shape"`

	// Riemannian has options for [AffineInvariantRiemannian].
	Riemannian RiemannianOptions `toml:"riemannian" yaml:"riemannian"`
}

// ShapeOptions are the options for [GeneralizedShapeMetric].
type ShapeOptions struct {

	// Alpha is the regularization in [0, 1] that interpolates between
	// the whitened (0) and raw (1) kernels. 0 means the default of 1.
	Alpha float64 `toml:"alpha" yaml:"alpha"`
}

// RiemannianOptions are the options for [AffineInvariantRiemannian].
type RiemannianOptions struct {

	// Shrinkage in [0, 1) moves each kernel toward a scaled identity so that
	// it is positive definite. 0 means the default of 0.1, and a negative
	// value means no shrinkage.
	Shrinkage float64 `toml:"shrinkage" yaml:"shrinkage"`

	// Eps is the smallest eigenvalue that counts as positive.
	// 0 means the default of 1e-10.
	Eps float64 `toml:"eps" yaml:"eps"`
}

// defaultOptions is used in place of nil options.
var defaultOptions = Options{}

func resolve(opts *Options) *Options {
	if opts == nil {
		return &defaultOptions
	}
	return opts
}

// GramMatrices returns the Gram matrices of x and y according to opts,
// after checking that their shapes are compatible.
func GramMatrices(x, y mat.Matrix, opts *Options) (kx, ky *mat.SymDense, err error) {
	opts = resolve(opts)
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr != yr {
		return nil, nil, fmt.Errorf("%w: x has %d rows and y has %d rows", ErrShape, xr, yr)
	}
	if xr < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 rows, have %d", ErrShape, xr)
	}
	if xc == 0 || yc == 0 {
		return nil, nil, fmt.Errorf("%w: x has %d columns and y has %d columns", ErrShape, xc, yc)
	}
	if err := checkFinite("x", x); err != nil {
		return nil, nil, err
	}
	if err := checkFinite("y", y); err != nil {
		return nil, nil, err
	}
	kx, err = opts.Kernel.Gram(x)
	if err != nil {
		return nil, nil, err
	}
	ky, err = opts.Kernel.Gram(y)
	if err != nil {
		return nil, nil, err
	}
	if err := checkFinite("kernel of x", kx); err != nil {
		return nil, nil, err
	}
	if err := checkFinite("kernel of y", ky); err != nil {
		return nil, nil, err
	}
	if !opts.NoCenter {
		kx = kernels.Center(kx)
		ky = kernels.Center(ky)
	}
	return kx, ky, nil
}

// checkFinite returns an [ErrNonFinite] error naming the first
// NaN or infinite element of m.
func checkFinite(name string, m mat.Matrix) error {
	r, c := m.Dims()
	for i := range r {
		for j := range c {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s[%d, %d] = %v", ErrNonFinite, name, i, j, v)
			}
		}
	}
	return nil
}

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

// GeneralizedShapeMetric is the angular shape distance between the
// two representations, in radians in [0, pi/2]. Each kernel is
// normalized to unit trace and regularized toward the identity according
// to [ShapeOptions.Alpha], and the distance is the arccos of the nuclear
// norm of the product of their square roots. With Alpha = 1 it is the
// angular Procrustes distance, invariant to rotation and scale.
type GeneralizedShapeMetric struct{}

func (sm *GeneralizedShapeMetric) Compare(x, y mat.Matrix, opts *Options) (float64, error) {
	o := resolve(opts)
	alpha := o.Shape.Alpha
	if alpha == 0 {
		alpha = 1
	}
	if alpha < 0 || alpha > 1 {
		return 0, fmt.Errorf("metrics.GeneralizedShapeMetric: Alpha %g must be in [0, 1]", alpha)
	}
	kx, ky, err := GramMatrices(x, y, o)
	if err != nil {
		return 0, err
	}
	ax, err := unitTrace(kx, alpha)
	if err != nil {
		return 0, err
	}
	ay, err := unitTrace(ky, alpha)
	if err != nil {
		return 0, err
	}
	sx := &mat.SymDense{}
	if err := matrix.SqrtOut(ax, sx); err != nil {
		return 0, err
	}
	sy := &mat.SymDense{}
	if err := matrix.SqrtOut(ay, sy); err != nil {
		return 0, err
	}
	var p mat.Dense
	p.Mul(sx, sy)
	nn, err := matrix.NuclearNorm(&p)
	if err != nil {
		return 0, err
	}
	cos := nn / math.Sqrt(matrix.Trace(ax)*matrix.Trace(ay))
	return math.Acos(max(-1, min(1, cos))), nil
}

// unitTrace returns alpha k/tr(k) + (1-alpha) I/n.
func unitTrace(k *mat.SymDense, alpha float64) (*mat.SymDense, error) {
	tr := matrix.Trace(k)
	if tr <= 0 {
		return nil, fmt.Errorf("%w: kernel has trace %g", ErrConstant, tr)
	}
	kn := mat.NewSymDense(k.SymmetricDim(), nil)
	kn.ScaleSym(1/tr, k)
	return matrix.Shrink(kn, 1-alpha), nil
}

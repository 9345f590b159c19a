// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repsim compares two representations of the same set of
// stimuli (e.g., neural network activations, one row per stimulus)
// using one of several representational similarity methods,
// selected by name. The methods themselves are in package metrics.
package repsim

import (
	"log/slog"

	"cogentcore.org/repsim/metrics"
	"gonum.org/v1/gonum/mat"
)

// Options are the options passed to the comparator.
type Options = metrics.Options

// Compare compares x and y using the method with the given name
// (case insensitive; see [Methods]), passing opts unchanged to the
// comparator. It returns an [*UnsupportedMethodError] for an unknown
// method, and otherwise exactly the result and error of the comparator.
func Compare(x, y mat.Matrix, method string, opts *Options) (float64, error) {
	var d Dispatcher
	return d.Compare(x, y, method, opts)
}

// CompareDefault compares x and y using the [DefaultMethod].
func CompareDefault(x, y mat.Matrix, opts *Options) (float64, error) {
	return DefaultMethod.Compare(x, y, opts)
}

// Factory makes the comparator for each method.
// A nil field uses the corresponding function in [DefaultFactory].
type Factory struct {
	Stress func() metrics.Comparator

	GeneralizedShapeMetric func() metrics.Comparator

	Riemannian func() metrics.Comparator

	// Corr makes the correlation comparator used for both
	// [MethodSpearman] and [MethodPearson].
	Corr func(ct metrics.CorrTypes) metrics.Comparator
}

// DefaultFactory makes the standard comparators in package metrics.
var DefaultFactory = Factory{
	Stress:                 func() metrics.Comparator { return &metrics.Stress{} },
	GeneralizedShapeMetric: func() metrics.Comparator { return &metrics.GeneralizedShapeMetric{} },
	Riemannian:             func() metrics.Comparator { return &metrics.AffineInvariantRiemannian{} },
	Corr:                   func(ct metrics.CorrTypes) metrics.Comparator { return &metrics.Corr{Type: ct} },
}

// New returns a new comparator for the given method.
func (f *Factory) New(m Methods) (metrics.Comparator, error) {
	fd := f.withDefaults()
	switch m {
	case MethodStress:
		return fd.Stress(), nil
	case MethodGeneralizedShapeMetric:
		return fd.GeneralizedShapeMetric(), nil
	case MethodRiemannian:
		return fd.Riemannian(), nil
	case MethodSpearman:
		return fd.Corr(metrics.Spearman), nil
	case MethodPearson:
		return fd.Corr(metrics.Pearson), nil
	}
	return nil, &UnsupportedMethodError{Method: m.String()}
}

// withDefaults returns a copy of f with nil fields
// filled in from [DefaultFactory].
func (f *Factory) withDefaults() Factory {
	fd := *f
	if fd.Stress == nil {
		fd.Stress = DefaultFactory.Stress
	}
	if fd.GeneralizedShapeMetric == nil {
		fd.GeneralizedShapeMetric = DefaultFactory.GeneralizedShapeMetric
	}
	if fd.Riemannian == nil {
		fd.Riemannian = DefaultFactory.Riemannian
	}
	if fd.Corr == nil {
		fd.Corr = DefaultFactory.Corr
	}
	return fd
}

// Dispatcher selects and runs comparators by method.
// The zero value uses the [DefaultFactory].
// Only the selected comparator is made, anew for each call,
// so a Dispatcher is safe for concurrent use.
type Dispatcher struct {
	Factory Factory
}

// Compare compares x and y using the method with the given name.
// See [Compare].
func (d *Dispatcher) Compare(x, y mat.Matrix, method string, opts *Options) (float64, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return 0, err
	}
	return d.CompareMethod(m, x, y, opts)
}

// CompareMethod compares x and y using the given method,
// returning the result and error of the comparator unchanged.
func (d *Dispatcher) CompareMethod(m Methods, x, y mat.Matrix, opts *Options) (float64, error) {
	c, err := d.Factory.New(m)
	if err != nil {
		return 0, err
	}
	slog.Debug("repsim: compare", "method", m)
	return c.Compare(x, y, opts)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repsim

import (
	"strings"

	"cogentcore.org/repsim/metrics"
	"gonum.org/v1/gonum/mat"
)

//go:generate core generate

// Methods are the representational similarity methods
// that [Compare] dispatches to.
type Methods int32 //enums:enum -trim-prefix Method -transform snake

const (
	// MethodStress is the [metrics.Stress] distance between
	// the pairwise distances of the two representations.
	MethodStress Methods = iota

	// MethodGeneralizedShapeMetric is the [metrics.GeneralizedShapeMetric]
	// angular shape distance.
	MethodGeneralizedShapeMetric

	// MethodRiemannian is the [metrics.AffineInvariantRiemannian] distance
	// between the kernel matrices.
	MethodRiemannian

	// MethodSpearman is the [metrics.Corr] rank correlation between
	// the pairwise distances of the two representations.
	MethodSpearman

	// MethodPearson is the [metrics.Corr] linear correlation between
	// the pairwise distances of the two representations.
	MethodPearson
)

// DefaultMethod is the method used by [CompareDefault].
const DefaultMethod = MethodStress

// ParseMethod returns the method with the given name, ignoring
// ASCII case. It returns an [*UnsupportedMethodError] with the name
// as given if there is no such method.
func ParseMethod(method string) (Methods, error) {
	lower := strings.Map(asciiLower, method)
	for _, m := range MethodsValues() {
		if m.String() == lower {
			return m, nil
		}
	}
	return DefaultMethod, &UnsupportedMethodError{Method: method}
}

// asciiLower maps A-Z to a-z, leaving all other runes as is,
// so that non-ASCII letters never fold into a method name.
func asciiLower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

// Compare compares x and y with this method, using the
// default comparators. See [Dispatcher.CompareMethod].
func (m Methods) Compare(x, y mat.Matrix, opts *metrics.Options) (float64, error) {
	var d Dispatcher
	return d.CompareMethod(m, x, y, opts)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repsim

import "cogentcore.org/core/base/errors"

// ErrUnsupportedMethod is wrapped by every [UnsupportedMethodError],
// for use with errors.Is.
var ErrUnsupportedMethod = errors.New("unsupported representational similarity method")

// UnsupportedMethodError is returned when a method name
// is not one of the [Methods].
type UnsupportedMethodError struct {

	// Method is the method name exactly as it was given.
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return `repsim: unrecognized representational similarity method "` + e.Method + `"`
}

func (e *UnsupportedMethodError) Unwrap() error { return ErrUnsupportedMethod }

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "cogentcore.org/plotaxes/base/errors"

var (
	// ErrInvalidAxisState is returned when a coordinate conversion is
	// requested against a degenerate pixel rectangle or axis range,
	// or when limits would be set to non-finite values.
	ErrInvalidAxisState = errors.New("plot: invalid axis state")

	// ErrNoRenderYet is returned by operations that need the pixel
	// rectangle of the last render before any render has happened.
	ErrNoRenderYet = errors.New("plot: no render yet")

	// ErrUnsupportedConfiguration is returned for axis configurations
	// that are not implemented, such as date/time ticks on a vertical edge.
	ErrUnsupportedConfiguration = errors.New("plot: unsupported configuration")

	// ErrAmbiguousEdge is returned by the primary axis accessors when
	// there is no axis on the requested edge.
	ErrAmbiguousEdge = errors.New("plot: no primary axis on edge")

	// ErrAxisNotFound is returned when an axis handle no longer refers
	// to an axis owned by the manager.
	ErrAxisNotFound = errors.New("plot: axis not found")

	ErrInfinity = errors.New("plotter: infinite data point")
	ErrNoData   = errors.New("plotter: no data points")
)

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"cogentcore.org/plotaxes/base/option"
	"cogentcore.org/plotaxes/math32/minmax"
	"cogentcore.org/plotaxes/plot"
)

// StepKind specifies a form of a connection of two consecutive points.
type StepKind int32

const (
	// NoStep connects two points by simple line
	NoStep StepKind = iota

	// PreStep connects two points by following lines: vertical, horizontal.
	PreStep

	// MidStep connects two points by following lines: horizontal, vertical, horizontal.
	// Vertical line is placed in the middle of the interval.
	MidStep

	// PostStep connects two points by following lines: horizontal, vertical.
	PostStep
)

// Line is a series of points connected by line segments.
type Line struct {
	Base

	// X and Y are copies of the point coordinates.
	X, Y plot.Values

	// Step is the kind of connection between consecutive points.
	// Steps stay within the bounding box of the points.
	Step StepKind

	// Fill, if valid, fills the area between the line and the given
	// Y baseline, which is then part of the data range.
	Fill option.Option[float64]
}

// NewLine returns a Line over a copy of the given coordinates.
func NewLine(x, y plot.Valuer) (*Line, error) {
	vs, err := copyAll([]string{"X", "Y"}, x, y)
	if err != nil {
		return nil, err
	}
	return &Line{X: vs[0], Y: vs[1]}, nil
}

// FillTo fills the area between the line and the given baseline.
func (ln *Line) FillTo(baseline float64) *Line {
	ln.Fill = option.Of(baseline)
	return ln
}

// DataRange implements [plot.Plottable].
func (ln *Line) DataRange(xr, yr *minmax.F64) {
	xyRange(ln.X, ln.Y, xr, yr)
	if ln.Fill.IsValid() {
		yr.FitValInRange(ln.Fill.Value)
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"cogentcore.org/plotaxes/math32/minmax"
	"cogentcore.org/plotaxes/plot"
)

// Scatter is a set of points drawn as markers at X, Y coordinates.
// NaN coordinates mark missing points and are skipped.
type Scatter struct {
	Base

	// X and Y are copies of the point coordinates.
	X, Y plot.Values
}

// NewScatter returns a Scatter over a copy of the given coordinates.
func NewScatter(x, y plot.Valuer) (*Scatter, error) {
	vs, err := copyAll([]string{"X", "Y"}, x, y)
	if err != nil {
		return nil, err
	}
	return &Scatter{X: vs[0], Y: vs[1]}, nil
}

// DataRange implements [plot.Plottable].
func (sc *Scatter) DataRange(xr, yr *minmax.F64) {
	xyRange(sc.X, sc.Y, xr, yr)
}

// xyRange fits the ranges around the points whose coordinates
// are both present.
func xyRange(x, y plot.Values, xr, yr *minmax.F64) {
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xr.FitValInRange(x[i])
		yr.FitValInRange(y[i])
	}
}

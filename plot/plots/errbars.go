// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"cogentcore.org/plotaxes/math32/minmax"
	"cogentcore.org/plotaxes/plot"
)

// YErrorBars draws vertical error bars, denoting error in Y values,
// using Low, High deviations around X, Y coordinates.
type YErrorBars struct {
	Base

	// copies of data for the bars
	X, Y, Low, High plot.Values
}

// NewYErrorBars returns new vertical error bars over copies of the
// given data, which must all have the same length.
func NewYErrorBars(x, y, low, high plot.Valuer) (*YErrorBars, error) {
	vs, err := copyAll([]string{"X", "Y", "Low", "High"}, x, y, low, high)
	if err != nil {
		return nil, err
	}
	return &YErrorBars{X: vs[0], Y: vs[1], Low: vs[2], High: vs[3]}, nil
}

// DataRange implements [plot.Plottable]. The Y range covers each
// value minus |Low| to plus |High|.
func (eb *YErrorBars) DataRange(xr, yr *minmax.F64) {
	errRange(eb.X, eb.Y, eb.Low, eb.High, xr, yr)
}

// XErrorBars draws horizontal error bars, denoting error in X values,
// using Low, High deviations around X, Y coordinates.
type XErrorBars struct {
	Base

	// copies of data for the bars
	X, Y, Low, High plot.Values
}

// NewXErrorBars returns new horizontal error bars over copies of the
// given data, which must all have the same length.
func NewXErrorBars(x, y, low, high plot.Valuer) (*XErrorBars, error) {
	vs, err := copyAll([]string{"X", "Y", "Low", "High"}, x, y, low, high)
	if err != nil {
		return nil, err
	}
	return &XErrorBars{X: vs[0], Y: vs[1], Low: vs[2], High: vs[3]}, nil
}

// DataRange implements [plot.Plottable]. The X range covers each
// value minus |Low| to plus |High|.
func (eb *XErrorBars) DataRange(xr, yr *minmax.F64) {
	errRange(eb.Y, eb.X, eb.Low, eb.High, yr, xr)
}

// errRange fits every present pos into pr, and val with its deviations
// into vr, skipping deviations with any missing data.
func errRange(pos, val, low, high plot.Values, pr, vr *minmax.F64) {
	plot.Range(pos, pr)
	for i := range val {
		v, lo, hi := val[i], low[i], high[i]
		if math.IsNaN(v) || math.IsNaN(lo) || math.IsNaN(hi) {
			continue
		}
		vr.FitInRange(minmax.F64{Min: v - math.Abs(lo), Max: v + math.Abs(hi)})
	}
}

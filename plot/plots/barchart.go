// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"cogentcore.org/plotaxes/math32/minmax"
	"cogentcore.org/plotaxes/plot"
)

// BarWidth has the category positioning of a bar chart, in data units.
type BarWidth struct {
	// Offset is the category coordinate of the first bar
	// (X = Offset + index * Stride).
	Offset float64 `default:"1"`

	// Stride is the distance between bars.
	Stride float64 `default:"1"`

	// Width is the width of the bars, which should be less than
	// the Stride to prevent bar overlap.
	Width float64 `min:"0.01" max:"1" default:"0.8"`

	// Pad is additional space at start / end of the category range,
	// to keep bars from overflowing the ends.
	Pad float64 `default:"1"`
}

func (bw *BarWidth) Defaults() {
	bw.Offset = 1
	bw.Stride = 1
	bw.Width = .8
	bw.Pad = 1
}

// A BarChart presents ordinally-organized data with rectangular bars
// with lengths proportional to the data values, and an optional
// error bar ("handle") at the top of the bar using given error value
// (single value, like a standard deviation etc, not drawn below the bar).
//
// The value range always includes the base of the bars, which is zero
// or the top of the bars stacked under them. Error handles of negative
// bars point down.
type BarChart struct {
	Base

	// Values are the plotted values
	Values plot.Values

	// Errors are the error handle sizes, if any.
	Errors plot.Values

	// Width is the category positioning of the bars.
	Width BarWidth

	// Horizontal dictates whether the bars should be in the vertical
	// (default) or horizontal direction. If Horizontal is true, the
	// categories are along Y and the values along X.
	Horizontal bool

	// StackedOn is the bar chart upon which this bar chart is stacked.
	StackedOn *BarChart
}

// NewBarChart returns a new bar chart with a single bar for each value.
// Error handle values are optional and must match the values in length.
func NewBarChart(vs, ers plot.Valuer) (*BarChart, error) {
	data := []plot.Valuer{vs}
	if ers != nil {
		data = append(data, ers)
	}
	cp, err := copyAll([]string{"Values", "Errors"}, data...)
	if err != nil {
		return nil, err
	}
	bc := &BarChart{Values: cp[0]}
	if ers != nil {
		bc.Errors = cp[1]
	}
	bc.Width.Defaults()
	return bc, nil
}

// BarHeight returns the maximum y value of the
// ith bar, taking into account any bars upon
// which it is stacked.
func (bc *BarChart) BarHeight(i int) float64 {
	ht := 0.0
	if bc == nil {
		return 0
	}
	if i >= 0 && i < len(bc.Values) && !math.IsNaN(bc.Values[i]) {
		ht += bc.Values[i]
	}
	if bc.StackedOn != nil {
		ht += bc.StackedOn.BarHeight(i)
	}
	return ht
}

// StackOn stacks a bar chart on top of another,
// and sets the bar positioning options to that of the
// chart upon which it is being stacked.
func (bc *BarChart) StackOn(on *BarChart) {
	bc.Width = on.Width
	bc.Horizontal = on.Horizontal
	bc.StackedOn = on
}

// DataRange implements [plot.Plottable].
func (bc *BarChart) DataRange(xr, yr *minmax.F64) {
	if len(bc.Values) == 0 {
		return
	}
	bw := bc.Width
	cat := minmax.F64{Min: bw.Offset - bw.Pad, Max: bw.Offset + float64(len(bc.Values)-1)*bw.Stride + bw.Pad}

	var val minmax.F64
	val.SetInfinity()
	for i, v := range bc.Values {
		if math.IsNaN(v) {
			continue
		}
		valBot := bc.StackedOn.BarHeight(i) // nil safe
		valTop := valBot + v
		val.FitValInRange(valBot)
		val.FitValInRange(valTop)
		if i < len(bc.Errors) && !math.IsNaN(bc.Errors[i]) {
			// the handle points away from the base
			val.FitValInRange(valTop + math.Copysign(math.Abs(bc.Errors[i]), v))
		}
	}
	if bc.Horizontal {
		xr, yr = yr, xr
	}
	xr.FitInRange(cat)
	if val.IsValid() {
		yr.FitInRange(val)
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"cogentcore.org/plotaxes/math32/minmax"
	"cogentcore.org/plotaxes/plot"
)

// HLine is a horizontal reference line spanning the data area at Y.
// It only contributes to the vertical range.
type HLine struct {
	Base
	Y float64
}

// NewHLine returns a horizontal line at the given Y.
func NewHLine(y float64) *HLine { return &HLine{Y: y} }

func (hl *HLine) DataRange(xr, yr *minmax.F64) {
	if plot.CheckFloats(hl.Y) == nil {
		yr.FitValInRange(hl.Y)
	}
}

// VLine is a vertical reference line spanning the data area at X.
// It only contributes to the horizontal range.
type VLine struct {
	Base
	X float64
}

// NewVLine returns a vertical line at the given X.
func NewVLine(x float64) *VLine { return &VLine{X: x} }

func (vl *VLine) DataRange(xr, yr *minmax.F64) {
	if plot.CheckFloats(vl.X) == nil {
		xr.FitValInRange(vl.X)
	}
}

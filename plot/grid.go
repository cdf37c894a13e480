// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Grid draws lines at the major ticks of one X and one Y axis.
// It refers to its axes by handle, so a grid whose axis has been
// removed fails lookup instead of holding on to the removed axis;
// [AxisManager.DateTimeTicks] rebinds grids when it replaces an axis.
type Grid struct {
	// XAxis is the horizontal axis whose ticks give the vertical lines.
	XAxis AxisID

	// YAxis is the vertical axis whose ticks give the horizontal lines.
	YAxis AxisID

	// Hidden turns the grid off.
	Hidden bool
}

// NewGrid returns a grid bound to the given axes.
func NewGrid(xAxis, yAxis *Axis) *Grid {
	return &Grid{XAxis: xAxis.ID(), YAxis: yAxis.ID()}
}

// Replace rebinds the grid to the given axis, replacing the X axis
// for horizontal axes and the Y axis for vertical ones.
func (gr *Grid) Replace(ax *Axis) {
	if ax.IsHorizontal() {
		gr.XAxis = ax.ID()
	} else {
		gr.YAxis = ax.ID()
	}
}

// References returns true if the grid is bound to the given axis.
func (gr *Grid) References(id AxisID) bool {
	return gr.XAxis == id || gr.YAxis == id
}

// Axes resolves the grid's axes in the given manager.
func (gr *Grid) Axes(am *AxisManager) (xAxis, yAxis *Axis, err error) {
	return am.axisPair(gr.XAxis, gr.YAxis)
}

// Lines returns the data coordinates of the vertical (xs) and
// horizontal (ys) grid lines.
func (gr *Grid) Lines(am *AxisManager) (xs, ys []float64, err error) {
	xa, ya, err := gr.Axes(am)
	if err != nil {
		return nil, nil, err
	}
	return xa.MajorTicks(), ya.MajorTicks(), nil
}

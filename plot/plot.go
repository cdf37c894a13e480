// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides the axis and coordinate management core of a
// 2D plot: axes with data ranges and data <-> pixel conversion, an
// autoscaler that fits axes to the plotted data, axis rules that
// constrain pan and zoom, and the [AxisManager] that ties them together.
//
// Painting is done elsewhere: a renderer calls [Plot.Render] with the
// figure rectangle before drawing, and then uses the axes and
// [Plot.LastRender] to map data to pixels.
//
// A Plot is not safe for concurrent use.
package plot

import (
	"slices"

	"cogentcore.org/plotaxes/math32/minmax"
)

// AxisBinding holds the axes a plottable is drawn against.
// A zero handle is unset, and is bound to the primary
// Bottom / Left axes by the next autoscale.
type AxisBinding struct {
	XAxis AxisID
	YAxis AxisID
}

// Set binds to the given axes.
func (ab *AxisBinding) Set(xAxis, yAxis *Axis) {
	ab.XAxis = xAxis.ID()
	ab.YAxis = yAxis.ID()
}

// IsSet returns true if both axes are bound.
func (ab *AxisBinding) IsSet() bool {
	return ab.XAxis != 0 && ab.YAxis != 0
}

// Plottable is an element of a plot that has data in data coordinates.
type Plottable interface {
	// AxisBinding returns the axes the plottable uses, which
	// may be modified in place.
	AxisBinding() *AxisBinding

	// IsVisible returns false for plottables that are turned off,
	// which are ignored by autoscaling.
	IsVisible() bool

	// DataRange fits the given ranges around the extent of the data
	// using [minmax.F64.FitValInRange], leaving a dimension untouched
	// when the plottable has no extent along it.
	DataRange(xr, yr *minmax.F64)
}

// RenderInfo records the layout of the most recent render.
type RenderInfo struct {
	// FigureRect is the full pixel area of the figure.
	FigureRect PixelRect

	// DataRect is the part of FigureRect that data is mapped into.
	DataRect PixelRect

	// Count is the number of renders so far.
	Count int
}

// HasRendered returns true once at least one render has happened.
func (ri *RenderInfo) HasRendered() bool { return ri.Count > 0 }

// Plot is a set of plottables drawn against the axes of its [AxisManager].
type Plot struct {
	// Axes manages the axes, grids, panels, rules and autoscaler.
	Axes *AxisManager

	// Plottables are the plotted elements, in drawing order.
	Plottables []Plottable

	// LastRender is the layout of the most recent [Plot.Render].
	LastRender RenderInfo
}

// New returns a new plot with the default axes and grid.
func New() *Plot {
	pt := &Plot{}
	pt.Axes = NewAxisManager(pt)
	return pt
}

// Add adds plottables to the plot.
func (pt *Plot) Add(ps ...Plottable) {
	pt.Plottables = append(pt.Plottables, ps...)
}

// Remove removes the given plottable, returning false if not present.
func (pt *Plot) Remove(p Plottable) bool {
	i := slices.Index(pt.Plottables, p)
	if i < 0 {
		return false
	}
	pt.Plottables = slices.Delete(pt.Plottables, i, i+1)
	return true
}

// Render prepares the axes for drawing into the given figure rectangle:
// it lays out the panels to find the data rectangle, records it in
// [Plot.LastRender], and applies the axis rules. Axis ranges are
// sanitized before and after the rules, so that rules see displayable
// ranges and no inverted, unset or zero-width range is drawn.
func (pt *Plot) Render(figure PixelRect) error {
	pt.LastRender.FigureRect = figure
	pt.LastRender.DataRect = layoutDataRect(figure, pt.Axes.GetPanels())
	pt.LastRender.Count++
	pt.sanitizeRanges()
	if err := pt.Axes.ApplyRules(); err != nil {
		return err
	}
	pt.sanitizeRanges()
	return nil
}

func (pt *Plot) sanitizeRanges() {
	for _, ax := range pt.Axes.GetAxes() {
		ax.SanitizeRange()
	}
}

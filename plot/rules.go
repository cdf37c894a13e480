// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/plotaxes/math32/minmax"
)

// Rule constrains or overrides axis limits. Rules are applied in list
// order, once, at the end of every explicit axis operation of the
// [AxisManager] and on every [Plot.Render]. There is no iteration to a
// fixed point: a later rule may undo what an earlier one enforced.
type Rule interface {
	Apply(pt *Plot) error
}

// MinimumBoundary keeps the view inside Limits: a pan past the boundary
// is shifted back, and a zoom out beyond the boundary is clipped to it.
type MinimumBoundary struct {
	XAxis, YAxis AxisID
	Limits       AxisLimits
}

// NewMinimumBoundary returns a rule keeping the view of the given axes
// within limits.
func NewMinimumBoundary(xAxis, yAxis *Axis, limits AxisLimits) *MinimumBoundary {
	return &MinimumBoundary{XAxis: xAxis.ID(), YAxis: yAxis.ID(), Limits: limits}
}

func (r *MinimumBoundary) Apply(pt *Plot) error {
	xa, ya, err := pt.Axes.axisPair(r.XAxis, r.YAxis)
	if err != nil {
		return err
	}
	keepWithin(&xa.Range, r.Limits.XRange())
	keepWithin(&ya.Range, r.Limits.YRange())
	return nil
}

// keepWithin moves and shrinks r so that it lies within bound.
func keepWithin(r *minmax.F64, bound minmax.F64) {
	bound.Normalize()
	r.Normalize()
	span := r.Span()
	switch {
	case !r.IsSet() || span >= bound.Span():
		*r = bound
	case r.Min < bound.Min:
		r.Set(bound.Min, math.Min(bound.Min+span, bound.Max))
	case r.Max > bound.Max:
		r.Set(math.Max(bound.Max-span, bound.Min), bound.Max)
	}
}

// MaximumBoundary keeps Limits inside the view: a zoom in beyond the
// boundary is widened back to it, and a pan that would push part of the
// boundary out of view is shifted back. Zooming out is unrestricted.
type MaximumBoundary struct {
	XAxis, YAxis AxisID
	Limits       AxisLimits
}

// NewMaximumBoundary returns a rule keeping limits within the view
// of the given axes.
func NewMaximumBoundary(xAxis, yAxis *Axis, limits AxisLimits) *MaximumBoundary {
	return &MaximumBoundary{XAxis: xAxis.ID(), YAxis: yAxis.ID(), Limits: limits}
}

func (r *MaximumBoundary) Apply(pt *Plot) error {
	xa, ya, err := pt.Axes.axisPair(r.XAxis, r.YAxis)
	if err != nil {
		return err
	}
	keepContaining(&xa.Range, r.Limits.XRange())
	keepContaining(&ya.Range, r.Limits.YRange())
	return nil
}

// keepContaining moves and grows r so that it contains bound.
func keepContaining(r *minmax.F64, bound minmax.F64) {
	bound.Normalize()
	r.Normalize()
	span := r.Span()
	switch {
	case !r.IsSet() || span <= bound.Span():
		*r = bound
	case r.Min > bound.Min:
		r.Set(bound.Min, math.Max(bound.Min+span, bound.Max))
	case r.Max < bound.Max:
		r.Set(math.Min(bound.Max-span, bound.Min), bound.Max)
	}
}

// unitsPerPixel returns the data units per pixel of both axes in the
// data rectangle of the last render. ok is false before the first
// render, or when the data rectangle has no area.
func unitsPerPixel(pt *Plot, xa, ya *Axis) (ux, uy float64, rect PixelRect, ok bool) {
	if !pt.LastRender.HasRendered() {
		return 0, 0, rect, false
	}
	rect = pt.LastRender.DataRect
	if !rect.HasArea() {
		return 0, 0, rect, false
	}
	ux = math.Abs(xa.Range.Span()) / rect.Width()
	uy = math.Abs(ya.Range.Span()) / rect.Height()
	return ux, uy, rect, true
}

// SquarePreserveX keeps one data unit the same number of pixels on both
// axes by adjusting the Y span around its center to match the X scale.
// It needs the data rectangle of a render and does nothing before one.
type SquarePreserveX struct {
	XAxis, YAxis AxisID
}

// NewSquarePreserveX returns a square-axes rule that preserves the X span.
func NewSquarePreserveX(xAxis, yAxis *Axis) *SquarePreserveX {
	return &SquarePreserveX{XAxis: xAxis.ID(), YAxis: yAxis.ID()}
}

func (r *SquarePreserveX) Apply(pt *Plot) error {
	xa, ya, err := pt.Axes.axisPair(r.XAxis, r.YAxis)
	if err != nil {
		return err
	}
	ux, _, rect, ok := unitsPerPixel(pt, xa, ya)
	if !ok {
		return nil
	}
	ya.Range.SetSpan(ux * rect.Height())
	return nil
}

// SquarePreserveY keeps one data unit the same number of pixels on both
// axes by adjusting the X span around its center to match the Y scale.
// It needs the data rectangle of a render and does nothing before one.
type SquarePreserveY struct {
	XAxis, YAxis AxisID
}

// NewSquarePreserveY returns a square-axes rule that preserves the Y span.
func NewSquarePreserveY(xAxis, yAxis *Axis) *SquarePreserveY {
	return &SquarePreserveY{XAxis: xAxis.ID(), YAxis: yAxis.ID()}
}

func (r *SquarePreserveY) Apply(pt *Plot) error {
	xa, ya, err := pt.Axes.axisPair(r.XAxis, r.YAxis)
	if err != nil {
		return err
	}
	_, uy, rect, ok := unitsPerPixel(pt, xa, ya)
	if !ok {
		return nil
	}
	xa.Range.SetSpan(uy * rect.Width())
	return nil
}

// SquareZoomOut squares the axes by widening whichever axis has fewer
// data units per pixel, so that nothing visible is lost.
// It needs the data rectangle of a render and does nothing before one.
type SquareZoomOut struct {
	XAxis, YAxis AxisID
}

// NewSquareZoomOut returns a square-axes rule that only zooms out.
func NewSquareZoomOut(xAxis, yAxis *Axis) *SquareZoomOut {
	return &SquareZoomOut{XAxis: xAxis.ID(), YAxis: yAxis.ID()}
}

func (r *SquareZoomOut) Apply(pt *Plot) error {
	xa, ya, err := pt.Axes.axisPair(r.XAxis, r.YAxis)
	if err != nil {
		return err
	}
	ux, uy, rect, ok := unitsPerPixel(pt, xa, ya)
	if !ok {
		return nil
	}
	if ux > uy {
		ya.Range.SetSpan(ux * rect.Height())
	} else if uy > ux {
		xa.Range.SetSpan(uy * rect.Width())
	}
	return nil
}

// MinimumSpan keeps the span of each axis at least XSpan / YSpan,
// widening it around its center.
type MinimumSpan struct {
	XAxis, YAxis AxisID
	XSpan, YSpan float64
}

// NewMinimumSpan returns a rule limiting how far the given axes zoom in.
func NewMinimumSpan(xAxis, yAxis *Axis, xSpan, ySpan float64) *MinimumSpan {
	return &MinimumSpan{XAxis: xAxis.ID(), YAxis: yAxis.ID(), XSpan: xSpan, YSpan: ySpan}
}

func (r *MinimumSpan) Apply(pt *Plot) error {
	xa, ya, err := pt.Axes.axisPair(r.XAxis, r.YAxis)
	if err != nil {
		return err
	}
	xa.Range.Normalize()
	ya.Range.Normalize()
	if xa.Range.Span() < r.XSpan {
		xa.Range.SetSpan(r.XSpan)
	}
	if ya.Range.Span() < r.YSpan {
		ya.Range.SetSpan(r.YSpan)
	}
	return nil
}

// MaximumSpan keeps the span of each axis at most XSpan / YSpan,
// narrowing it around its center.
type MaximumSpan struct {
	XAxis, YAxis AxisID
	XSpan, YSpan float64
}

// NewMaximumSpan returns a rule limiting how far the given axes zoom out.
func NewMaximumSpan(xAxis, yAxis *Axis, xSpan, ySpan float64) *MaximumSpan {
	return &MaximumSpan{XAxis: xAxis.ID(), YAxis: yAxis.ID(), XSpan: xSpan, YSpan: ySpan}
}

func (r *MaximumSpan) Apply(pt *Plot) error {
	xa, ya, err := pt.Axes.axisPair(r.XAxis, r.YAxis)
	if err != nil {
		return err
	}
	xa.Range.Normalize()
	ya.Range.Normalize()
	if xa.Range.Span() > r.XSpan {
		xa.Range.SetSpan(r.XSpan)
	}
	if ya.Range.Span() > r.YSpan {
		ya.Range.SetSpan(r.YSpan)
	}
	return nil
}

// LockedHorizontal restores the range an X axis had when the rule was
// created, undoing any pan or zoom since.
type LockedHorizontal struct {
	XAxis AxisID
	Range minmax.F64
}

// NewLockedHorizontal returns a rule locking the given axis at its
// current range.
func NewLockedHorizontal(xAxis *Axis) *LockedHorizontal {
	return &LockedHorizontal{XAxis: xAxis.ID(), Range: xAxis.Range}
}

func (r *LockedHorizontal) Apply(pt *Plot) error {
	xa, err := pt.Axes.Axis(r.XAxis)
	if err != nil {
		return err
	}
	xa.Range = r.Range
	return nil
}

// LockedVertical restores the range a Y axis had when the rule was
// created, undoing any pan or zoom since.
type LockedVertical struct {
	YAxis AxisID
	Range minmax.F64
}

// NewLockedVertical returns a rule locking the given axis at its
// current range.
func NewLockedVertical(yAxis *Axis) *LockedVertical {
	return &LockedVertical{YAxis: yAxis.ID(), Range: yAxis.Range}
}

func (r *LockedVertical) Apply(pt *Plot) error {
	ya, err := pt.Axes.Axis(r.YAxis)
	if err != nil {
		return err
	}
	ya.Range = r.Range
	return nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/plotaxes/math32/minmax"
)

// AutoScaler computes axis limits that fit the plotted data.
type AutoScaler interface {
	// GetAxisLimits returns limits for the given axis pair that fit
	// the visible plottables of the plot bound to either axis.
	GetAxisLimits(pt *Plot, xAxis, yAxis AxisID) (AxisLimits, error)

	// AutoScaleAll sets the limits of every axis used by the
	// given plottables to fit their data.
	AutoScaleAll(pt *Plot, plottables []Plottable) error
}

// DegeneratePadding is the padding added on each side of an axis when
// the data along it has zero span, such as a single point or a
// constant series, so that autoscaling never produces a zero-width axis.
const DegeneratePadding = 0.5

// FractionalAutoScaler pads the tight data bounds on each side by a
// fraction of the data span.
type FractionalAutoScaler struct {
	// Left, Right, Bottom and Top are the margin fractions for each side.
	Left, Right, Bottom, Top float64
}

// NewFractionalAutoScaler returns an autoscaler with the default
// margins: 10% horizontally and 15% vertically.
func NewFractionalAutoScaler() *FractionalAutoScaler {
	return NewFractionalAutoScalerXY(0.1, 0.15)
}

// NewFractionalAutoScalerXY returns an autoscaler with the given
// horizontal and vertical margin fractions.
func NewFractionalAutoScalerXY(horizontal, vertical float64) *FractionalAutoScaler {
	return NewFractionalAutoScalerSides(horizontal, horizontal, vertical, vertical)
}

// NewFractionalAutoScalerSides returns an autoscaler with a separate
// margin fraction for each side.
func NewFractionalAutoScalerSides(left, right, bottom, top float64) *FractionalAutoScaler {
	return &FractionalAutoScaler{Left: left, Right: right, Bottom: bottom, Top: top}
}

// GetAxisLimits implements [AutoScaler].
func (fa *FractionalAutoScaler) GetAxisLimits(pt *Plot, xAxis, yAxis AxisID) (AxisLimits, error) {
	return fa.limits(pt, pt.Plottables, xAxis, yAxis)
}

// AutoScaleAll implements [AutoScaler]. Each axis used by the given
// plottables is fitted to the union of the data of every visible
// plottable bound to it, then padded once. An axis shared by several
// axis pairs thus covers all of their data. With no bound plottables
// the primary Bottom / Left pair is scaled, which gives unset axes the
// [DefaultRange].
func (fa *FractionalAutoScaler) AutoScaleAll(pt *Plot, plottables []Plottable) error {
	var axes []*Axis
	data := map[AxisID]*minmax.F64{}
	use := func(id AxisID) (*minmax.F64, error) {
		if r, ok := data[id]; ok {
			return r, nil
		}
		ax, err := pt.Axes.Axis(id)
		if err != nil {
			return nil, err
		}
		r := &minmax.F64{}
		r.SetInfinity()
		data[id] = r
		axes = append(axes, ax)
		return r, nil
	}
	for _, p := range plottables {
		ab := *p.AxisBinding()
		if !ab.IsSet() {
			continue
		}
		xr, err := use(ab.XAxis)
		if err != nil {
			return err
		}
		yr, err := use(ab.YAxis)
		if err != nil {
			return err
		}
		if p.IsVisible() {
			p.DataRange(xr, yr)
		}
	}
	if len(axes) == 0 {
		bottom, left, err := pt.Axes.primaryPair()
		if err != nil {
			return err
		}
		for _, ax := range []*Axis{bottom, left} {
			if _, err := use(ax.id); err != nil {
				return err
			}
		}
	}
	for _, ax := range axes {
		lo, hi := fa.Bottom, fa.Top
		if ax.IsHorizontal() {
			lo, hi = fa.Left, fa.Right
		}
		ax.Range = padRange(*data[ax.id], ax.Range, lo, hi)
	}
	return nil
}

// limits computes padded limits for one axis pair. Each axis covers
// the visible plottables bound to it, whatever their other axis.
func (fa *FractionalAutoScaler) limits(pt *Plot, plottables []Plottable, xAxis, yAxis AxisID) (AxisLimits, error) {
	xa, ya, err := pt.Axes.axisPair(xAxis, yAxis)
	if err != nil {
		return UnsetLimits(), err
	}
	var xr, yr, other minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()
	for _, p := range plottables {
		if !p.IsVisible() {
			continue
		}
		ab := p.AxisBinding()
		switch {
		case ab.XAxis == xAxis && ab.YAxis == yAxis:
			p.DataRange(&xr, &yr)
		case ab.XAxis == xAxis:
			p.DataRange(&xr, &other)
		case ab.YAxis == yAxis:
			p.DataRange(&other, &yr)
		}
	}
	return NewAxisLimits(
		padRange(xr, xa.Range, fa.Left, fa.Right),
		padRange(yr, ya.Range, fa.Bottom, fa.Top),
	), nil
}

// padRange expands the tight data range by the given fractions of its
// span. If no data was fitted the current range is kept, or
// [DefaultRange] when the current range is unset.
func padRange(data, current minmax.F64, lo, hi float64) minmax.F64 {
	if !data.IsValid() {
		if current.IsSet() {
			return current
		}
		return DefaultRange
	}
	span := data.Span()
	if span == 0 {
		pad := DegeneratePadding
		if data.Min-pad == data.Max+pad {
			pad = math.Abs(data.Min) / 2
		}
		data.Expand(pad, pad)
		return data
	}
	data.Expand(lo*span, hi*span)
	return data
}

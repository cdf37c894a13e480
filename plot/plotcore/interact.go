// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcore

import (
	"fmt"
	"math"

	"cogentcore.org/plotaxes/plot"
)

// Modifiers are the keyboard modifiers held during a gesture.
type Modifiers struct {
	// Shift restricts the gesture to the horizontal axes.
	Shift bool

	// Alt restricts the gesture to the vertical axes.
	Alt bool
}

// ScrollZoomRate is the zoom per unit of scroll delta.
const ScrollZoomRate = 0.002

// Interactor turns pointer gestures on a rendered plot into pan and
// zoom operations on its axes. Positions are in the pixel space of
// the figure passed to [plot.Plot.Render].
type Interactor struct {
	// Plot is the plot being manipulated.
	Plot *plot.Plot

	// ReadOnly disables all gestures.
	ReadOnly bool
}

// NewInteractor returns an interactor for the given plot.
func NewInteractor(pt *plot.Plot) *Interactor {
	return &Interactor{Plot: pt}
}

// Drag pans the plot so that the data under the pointer follows a
// pointer move of (dx, dy) pixels.
func (in *Interactor) Drag(dx, dy float64, mods Modifiers) error {
	if in.ReadOnly || in.Plot == nil {
		return nil
	}
	xf, yf := 1.0, 1.0
	if mods.Shift {
		yf = 0
	} else if mods.Alt {
		xf = 0
	}
	return in.Plot.Axes.PanPixels(plot.PixelSize{Width: -dx * xf, Height: -dy * yf})
}

// Scroll zooms the plot around the center of the view, zooming in for
// positive delta and out for negative delta.
func (in *Interactor) Scroll(delta float64, mods Modifiers) error {
	if in.ReadOnly || in.Plot == nil {
		return nil
	}
	frac := math.Exp(delta * ScrollZoomRate)
	xf, yf := frac, frac
	if mods.Shift {
		yf = 1
	} else if mods.Alt {
		xf = 1
	}
	return in.Plot.Axes.Zoom(xf, yf)
}

// Reset autoscales the plot to fit the data, as on a double click.
func (in *Interactor) Reset() error {
	if in.ReadOnly || in.Plot == nil {
		return nil
	}
	return in.Plot.Axes.AutoScale()
}

// CoordinateAt returns the data coordinates of the primary axes at the
// given pixel position of the last render.
func (in *Interactor) CoordinateAt(px, py float64) (x, y float64, err error) {
	if !in.Plot.LastRender.HasRendered() {
		return 0, 0, plot.ErrNoRenderYet
	}
	am := in.Plot.Axes
	rect := in.Plot.LastRender.DataRect
	xa, err := am.Bottom()
	if err != nil {
		return 0, 0, err
	}
	ya, err := am.Left()
	if err != nil {
		return 0, 0, err
	}
	if x, err = xa.GetCoordinate(px, rect); err != nil {
		return 0, 0, err
	}
	if y, err = ya.GetCoordinate(py, rect); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Tooltip returns a description of the data coordinates at the given
// pixel position, or "" if there are none.
func (in *Interactor) Tooltip(px, py float64) string {
	x, y, err := in.CoordinateAt(px, py)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%g, %g)", x, y)
}

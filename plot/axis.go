// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"github.com/jinzhu/copier"
	gplot "gonum.org/v1/plot"

	"cogentcore.org/plotaxes/math32/minmax"
)

// AxisID is a stable handle to an [Axis] owned by an [AxisManager].
// Handles are never reused, so a handle to a removed axis fails
// lookup with [ErrAxisNotFound]. The zero value means "no axis".
type AxisID uint32

const (
	// DefaultPrimarySize is the layout thickness in dots of an axis
	// that shows a label and tick labels.
	DefaultPrimarySize float32 = 40

	// DefaultSecondarySize is the layout thickness in dots of a
	// labelless secondary axis, which only adds tick padding.
	DefaultSecondarySize float32 = 10

	// DateTimeFormat is the tick label format of date/time axes.
	DateTimeFormat = "2006-01-02\n15:04:05"
)

// DefaultRange is the range given to axes that are still unset
// when they have to be displayed.
var DefaultRange = minmax.F64{Min: -10, Max: 10}

// Axis is one horizontal or vertical axis bound to an [Edge] of the
// data area. It owns a mutable coordinate range and converts between
// data and pixel coordinates. The Range may be modified directly;
// every higher-level operation reduces to changing Range.Min and Range.Max.
type Axis struct {
	id AxisID

	// Edge is the side of the data area the axis is placed on.
	// Bottom and Top axes are horizontal (X); Left and Right are vertical (Y).
	Edge Edge `copier:"-"`

	// Range is the current data range of the axis.
	Range minmax.F64

	// Label is the axis label text.
	Label string

	// Size is the layout thickness of the axis in dots.
	Size float32

	// Ticker generates tick marks; [gplot.DefaultTicks] is used if nil.
	Ticker gplot.Ticker `copier:"-"`

	// DateTime indicates that coordinates are seconds since the Unix epoch
	// and ticks are labeled as dates and times.
	DateTime bool `copier:"-"`
}

// NewAxis returns a new axis on the given edge with an unset range.
func NewAxis(edge Edge) *Axis {
	return &Axis{Edge: edge, Range: minmax.Unset(), Size: DefaultPrimarySize}
}

// NewDateTimeAxis returns a new axis on the given edge whose ticks
// are dates and times. Only horizontal edges are supported.
func NewDateTimeAxis(edge Edge) (*Axis, error) {
	if !edge.IsHorizontal() {
		return nil, fmt.Errorf("%w: date/time axis on the %s edge", ErrUnsupportedConfiguration, edge)
	}
	ax := NewAxis(edge)
	ax.DateTime = true
	ax.Ticker = gplot.TimeTicks{Format: DateTimeFormat}
	return ax, nil
}

// ID returns the handle of the axis, which is zero until the axis
// is added to an [AxisManager].
func (ax *Axis) ID() AxisID { return ax.id }

// IsHorizontal returns true for X axes.
func (ax *Axis) IsHorizontal() bool { return ax.Edge.IsHorizontal() }

// Min returns the lower bound of the range.
func (ax *Axis) Min() float64 { return ax.Range.Min }

// Max returns the upper bound of the range.
func (ax *Axis) Max() float64 { return ax.Range.Max }

// CopyFrom copies the range, label and size from another axis,
// leaving edge, identity and tick configuration alone.
func (ax *Axis) CopyFrom(from *Axis) error {
	return copier.CopyWithOption(ax, from, copier.Option{DeepCopy: true})
}

func (ax *Axis) String() string {
	return fmt.Sprintf("%s axis #%d [%g, %g]", ax.Edge, ax.id, ax.Range.Min, ax.Range.Max)
}

// pixelSpan returns the extent of the rectangle along the axis dimension.
func (ax *Axis) pixelSpan(rect PixelRect) float64 {
	if ax.IsHorizontal() {
		return rect.Width()
	}
	return rect.Height()
}

// checkPixels returns the extent of rect along the axis, or an error
// if it has none.
func (ax *Axis) checkPixels(rect PixelRect) (float64, error) {
	px := ax.pixelSpan(rect)
	if px == 0 || math.IsNaN(px) || math.IsInf(px, 0) {
		return 0, fmt.Errorf("%w: %s axis: pixel rectangle has no extent", ErrInvalidAxisState, ax.Edge)
	}
	return px, nil
}

// checkConversion returns an error if data <-> pixel conversion is
// undefined for the current range and the given rectangle.
func (ax *Axis) checkConversion(rect PixelRect) (float64, error) {
	px, err := ax.checkPixels(rect)
	if err != nil {
		return 0, err
	}
	if !ax.Range.IsFinite() || ax.Range.Span() == 0 {
		return 0, fmt.Errorf("%w: %s axis: range [%g, %g] has no extent", ErrInvalidAxisState, ax.Edge, ax.Range.Min, ax.Range.Max)
	}
	return px, nil
}

// GetPixel returns the pixel position of the given data coordinate
// within rect. Horizontal axes map Min to rect.Left; vertical axes
// map Min to rect.Bottom.
func (ax *Axis) GetPixel(coord float64, rect PixelRect) (float64, error) {
	px, err := ax.checkConversion(rect)
	if err != nil {
		return 0, err
	}
	n := ax.Range.Norm(coord)
	if ax.IsHorizontal() {
		return rect.Left + n*px, nil
	}
	return rect.Bottom - n*px, nil
}

// GetCoordinate returns the data coordinate at the given pixel
// position within rect. It is the inverse of [Axis.GetPixel].
func (ax *Axis) GetCoordinate(pixel float64, rect PixelRect) (float64, error) {
	px, err := ax.checkConversion(rect)
	if err != nil {
		return 0, err
	}
	if ax.IsHorizontal() {
		return ax.Range.Proj((pixel - rect.Left) / px), nil
	}
	return ax.Range.Proj((rect.Bottom - pixel) / px), nil
}

// GetCoordinateDistance converts a pixel displacement along the axis into
// a data displacement. Vertical axes negate the sign, since pixel Y grows
// downward while data Y grows upward. An axis with an unset or
// zero-span range has a distance of 0.
func (ax *Axis) GetCoordinateDistance(pixelDelta float64, rect PixelRect) (float64, error) {
	px, err := ax.checkPixels(rect)
	if err != nil {
		return 0, err
	}
	if !ax.Range.IsFinite() {
		return 0, nil
	}
	d := pixelDelta * ax.Range.Span() / px
	if ax.IsHorizontal() {
		return d, nil
	}
	return -d, nil
}

// SanitizeRange makes the range safe to display: infinite bounds
// become 0, an unset range becomes [DefaultRange], an inverted range
// is swapped, and a zero-width range is widened by 1 on each side.
func (ax *Axis) SanitizeRange() {
	ax.Range = sanitizeRange(ax.Range)
}

func sanitizeRange(r minmax.F64) minmax.F64 {
	if !r.IsSet() {
		return DefaultRange
	}
	if math.IsInf(r.Min, 0) {
		r.Min = 0
	}
	if math.IsInf(r.Max, 0) {
		r.Max = 0
	}
	r.Normalize()
	if r.Min == r.Max {
		r.Min--
		r.Max++
	}
	return r
}

// Ticks returns the tick marks for the current range. The range is
// sanitized for tick generation only; the axis itself is not modified.
func (ax *Axis) Ticks() []gplot.Tick {
	r := sanitizeRange(ax.Range)
	tk := ax.Ticker
	if tk == nil {
		tk = gplot.DefaultTicks{}
	}
	return tk.Ticks(r.Min, r.Max)
}

// MajorTicks returns the positions of the labeled ticks within the range.
func (ax *Axis) MajorTicks() []float64 {
	var vals []float64
	for _, t := range ax.Ticks() {
		if t.IsMinor() {
			continue
		}
		vals = append(vals, t.Value)
	}
	return vals
}

// PanelEdge implements [Panel].
func (ax *Axis) PanelEdge() Edge { return ax.Edge }

// PanelSize implements [Panel].
func (ax *Axis) PanelSize() float32 { return ax.Size }

// IsVisible implements [Panel]. Axes are always laid out.
func (ax *Axis) IsVisible() bool { return true }

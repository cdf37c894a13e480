// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/plotaxes/math32/minmax"
)

// CoordinateRange is a one-dimensional interval in data space.
type CoordinateRange = minmax.F64

// Edge is the side of the data area that an axis or panel is placed on.
type Edge int32

const (
	// Left is the vertical edge to the left of the data area.
	Left Edge = iota

	// Right is the vertical edge to the right of the data area.
	Right

	// Bottom is the horizontal edge below the data area.
	Bottom

	// Top is the horizontal edge above the data area.
	Top
)

var edgeNames = [...]string{"Left", "Right", "Bottom", "Top"}

// String returns the name of the edge.
func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// IsHorizontal returns true for the Bottom and Top edges,
// which hold X axes.
func (e Edge) IsHorizontal() bool {
	return e == Bottom || e == Top
}

// IsVertical returns true for the Left and Right edges,
// which hold Y axes.
func (e Edge) IsVertical() bool {
	return e == Left || e == Right
}

// SetString sets the edge from its case-insensitive name.
func (e *Edge) SetString(s string) error {
	for i, nm := range edgeNames {
		if strings.EqualFold(nm, s) {
			*e = Edge(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Edge", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (e *Edge) UnmarshalText(text []byte) error {
	return e.SetString(string(text))
}

// EdgesValues returns all edges.
func EdgesValues() []Edge {
	return []Edge{Left, Right, Bottom, Top}
}

// AxisLimits is the resolved 2D rectangle of one X and one Y axis range
// at a point in time.
type AxisLimits struct {
	Left, Right, Bottom, Top float64
}

// NewAxisLimits returns the limits spanned by the given X and Y ranges.
func NewAxisLimits(xr, yr CoordinateRange) AxisLimits {
	return AxisLimits{Left: xr.Min, Right: xr.Max, Bottom: yr.Min, Top: yr.Max}
}

// UnsetLimits returns limits with NaN on every side.
func UnsetLimits() AxisLimits {
	nan := math.NaN()
	return AxisLimits{nan, nan, nan, nan}
}

// XRange returns the horizontal range.
func (al AxisLimits) XRange() CoordinateRange {
	return CoordinateRange{Min: al.Left, Max: al.Right}
}

// YRange returns the vertical range.
func (al AxisLimits) YRange() CoordinateRange {
	return CoordinateRange{Min: al.Bottom, Max: al.Top}
}

// HorizontalSpan returns Right - Left.
func (al AxisLimits) HorizontalSpan() float64 { return al.Right - al.Left }

// VerticalSpan returns Top - Bottom.
func (al AxisLimits) VerticalSpan() float64 { return al.Top - al.Bottom }

// IsFinite returns true if every side is a finite number.
func (al AxisLimits) IsFinite() bool {
	return al.XRange().IsFinite() && al.YRange().IsFinite()
}

// Contains returns true if the other limits lie entirely within these.
func (al AxisLimits) Contains(oth AxisLimits) bool {
	return al.XRange().ContainsRange(oth.XRange()) && al.YRange().ContainsRange(oth.YRange())
}

// Rect returns the limits as a [CoordinateRect].
func (al AxisLimits) Rect() CoordinateRect {
	return CoordinateRect(al)
}

func (al AxisLimits) String() string {
	return fmt.Sprintf("AxisLimits{X: [%g, %g], Y: [%g, %g]}", al.Left, al.Right, al.Bottom, al.Top)
}

// CoordinateRect is a rectangle in data space.
type CoordinateRect struct {
	Left, Right, Bottom, Top float64
}

// Width returns Right - Left.
func (cr CoordinateRect) Width() float64 { return cr.Right - cr.Left }

// Height returns Top - Bottom.
func (cr CoordinateRect) Height() float64 { return cr.Top - cr.Bottom }

// Limits returns the rectangle as [AxisLimits].
func (cr CoordinateRect) Limits() AxisLimits {
	return AxisLimits(cr)
}

// CoordinateSize is a displacement in data space.
type CoordinateSize struct {
	Width, Height float64
}

// PixelRect is a rectangle in pixel space, where Y grows downward:
// Top is numerically smaller than Bottom.
type PixelRect struct {
	Left, Right, Top, Bottom float64
}

// NewPixelRect returns a rectangle with the upper left corner
// at the origin and the given size.
func NewPixelRect(width, height float64) PixelRect {
	return PixelRect{Right: width, Bottom: height}
}

// Width returns Right - Left.
func (pr PixelRect) Width() float64 { return pr.Right - pr.Left }

// Height returns Bottom - Top.
func (pr PixelRect) Height() float64 { return pr.Bottom - pr.Top }

// Size returns the size of the rectangle.
func (pr PixelRect) Size() PixelSize {
	return PixelSize{Width: pr.Width(), Height: pr.Height()}
}

// HasArea returns true if both the width and height are positive.
func (pr PixelRect) HasArea() bool {
	return pr.Width() > 0 && pr.Height() > 0
}

// PixelSize is a size or displacement in pixel space.
type PixelSize struct {
	Width, Height float64
}

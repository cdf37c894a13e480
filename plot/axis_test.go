// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/plotaxes/math32/minmax"
)

func TestNewAxis(t *testing.T) {
	ax := NewAxis(Right)
	assert.False(t, ax.Range.IsSet())
	assert.False(t, ax.IsHorizontal())
	assert.Equal(t, DefaultPrimarySize, ax.Size)
	assert.Zero(t, ax.ID())
	assert.True(t, NewAxis(Top).IsHorizontal())
}

func TestPixelRoundTrip(t *testing.T) {
	rects := []PixelRect{
		{Left: 50, Right: 450, Top: 20, Bottom: 320},
		{Left: 0, Right: 1, Top: 0, Bottom: 1},
		{Left: -200, Right: 1e4, Top: 7.5, Bottom: 9.25},
	}
	ranges := []minmax.F64{{Min: -3, Max: 7}, {Min: 1e-9, Max: 2e-9}, {Min: -1e12, Max: 1e12}}
	for _, edge := range EdgesValues() {
		ax := NewAxis(edge)
		for _, r := range ranges {
			ax.Range = r
			for _, rect := range rects {
				for _, f := range []float64{0, 0.1, 0.5, 0.77, 1} {
					c := r.Proj(f)
					px, err := ax.GetPixel(c, rect)
					require.NoError(t, err)
					got, err := ax.GetCoordinate(px, rect)
					require.NoError(t, err)
					assert.InDelta(t, c, got, math.Abs(r.Span())*1e-9, "%s %v %v", edge, r, rect)
				}
			}
		}
	}
}

func TestPixelDirection(t *testing.T) {
	rect := PixelRect{Left: 50, Right: 450, Top: 20, Bottom: 320}

	bottom := NewAxis(Bottom)
	bottom.Range.Set(-3, 7)
	px, err := bottom.GetPixel(-3, rect)
	require.NoError(t, err)
	assert.Equal(t, 50.0, px)
	px, err = bottom.GetPixel(7, rect)
	require.NoError(t, err)
	assert.Equal(t, 450.0, px)

	left := NewAxis(Left)
	left.Range.Set(-3, 7)
	px, err = left.GetPixel(-3, rect)
	require.NoError(t, err)
	assert.Equal(t, 320.0, px)
	px, err = left.GetPixel(7, rect)
	require.NoError(t, err)
	assert.Equal(t, 20.0, px)
}

func TestCoordinateDistance(t *testing.T) {
	rect := PixelRect{Left: 0, Right: 400, Top: 0, Bottom: 200}

	bottom := NewAxis(Bottom)
	bottom.Range.Set(0, 100)
	d, err := bottom.GetCoordinateDistance(40, rect)
	require.NoError(t, err)
	assert.InDelta(t, 10, d, 1e-12)

	left := NewAxis(Left)
	left.Range.Set(0, 100)
	d, err = left.GetCoordinateDistance(20, rect)
	require.NoError(t, err)
	assert.InDelta(t, -10, d, 1e-12)
}

func TestConversionErrors(t *testing.T) {
	ax := NewAxis(Bottom)
	rect := NewPixelRect(100, 100)

	_, err := ax.GetPixel(1, rect)
	assert.ErrorIs(t, err, ErrInvalidAxisState, "unset range")

	ax.Range.Set(2, 2)
	_, err = ax.GetCoordinate(1, rect)
	assert.ErrorIs(t, err, ErrInvalidAxisState, "zero span")

	d, err := ax.GetCoordinateDistance(5, rect)
	require.NoError(t, err, "distance over a zero span")
	assert.Equal(t, 0.0, d)

	ax.Range = minmax.Unset()
	d, err = ax.GetCoordinateDistance(5, rect)
	require.NoError(t, err, "distance over an unset range")
	assert.Equal(t, 0.0, d)

	ax.Range.Set(0, 10)
	_, err = ax.GetCoordinateDistance(1, NewPixelRect(0, 100))
	assert.ErrorIs(t, err, ErrInvalidAxisState, "zero width")

	// a vertical axis only needs height
	vert := NewAxis(Left)
	vert.Range.Set(0, 10)
	_, err = vert.GetCoordinateDistance(1, NewPixelRect(0, 100))
	assert.NoError(t, err)
	_, err = vert.GetCoordinateDistance(1, NewPixelRect(100, 0))
	assert.ErrorIs(t, err, ErrInvalidAxisState)
}

func TestSanitizeRange(t *testing.T) {
	tests := []struct {
		in, want minmax.F64
	}{
		{minmax.Unset(), DefaultRange},
		{minmax.F64{Min: 5, Max: 5}, minmax.F64{Min: 4, Max: 6}},
		{minmax.F64{Min: 3, Max: 1}, minmax.F64{Min: 1, Max: 3}},
		{minmax.F64{Min: math.Inf(-1), Max: 2}, minmax.F64{Min: 0, Max: 2}},
		{minmax.F64{Min: -2, Max: 8}, minmax.F64{Min: -2, Max: 8}},
	}
	for _, tt := range tests {
		ax := NewAxis(Bottom)
		ax.Range = tt.in
		ax.SanitizeRange()
		assert.Equal(t, tt.want, ax.Range, "%v", tt.in)
	}
}

func TestTicks(t *testing.T) {
	ax := NewAxis(Left)
	ax.Range.Set(0, 10)
	majors := ax.MajorTicks()
	require.NotEmpty(t, majors)
	for _, v := range majors {
		assert.True(t, ax.Range.Contains(v), "tick %g", v)
	}

	// unset axes still produce ticks, for the default range
	assert.NotEmpty(t, NewAxis(Bottom).Ticks())
	assert.Equal(t, minmax.F64{Min: 0, Max: 10}, ax.Range)
}

func TestDateTimeAxis(t *testing.T) {
	_, err := NewDateTimeAxis(Left)
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)

	ax, err := NewDateTimeAxis(Bottom)
	require.NoError(t, err)
	assert.True(t, ax.DateTime)
	ax.Range.Set(1.7e9, 1.7e9+3*86400)

	var labeled int
	for _, tk := range ax.Ticks() {
		if tk.Label != "" {
			labeled++
			assert.Contains(t, tk.Label, "-")
		}
	}
	assert.NotZero(t, labeled)
}

func TestCopyFrom(t *testing.T) {
	src := NewAxis(Left)
	src.id = 3
	src.Range.Set(1, 2)
	src.Label = "Volts"
	src.Size = 12

	dst, err := NewDateTimeAxis(Bottom)
	require.NoError(t, err)
	dst.id = 7
	require.NoError(t, dst.CopyFrom(src))

	assert.Equal(t, minmax.F64{Min: 1, Max: 2}, dst.Range)
	assert.Equal(t, "Volts", dst.Label)
	assert.Equal(t, float32(12), dst.Size)
	assert.Equal(t, Bottom, dst.Edge)
	assert.True(t, dst.DateTime)
	assert.NotNil(t, dst.Ticker)
	assert.Equal(t, AxisID(7), dst.ID())
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/plotaxes/base/option"
	"cogentcore.org/plotaxes/math32/minmax"
)

func TestDefaultAxes(t *testing.T) {
	am := New().Axes
	assert.Len(t, am.GetAxes(), 4)
	assert.Len(t, am.XAxes(), 2)
	assert.Len(t, am.YAxes(), 2)
	for _, e := range EdgesValues() {
		axes := am.GetAxesOn(e)
		require.Len(t, axes, 1, e.String())
		assert.Equal(t, e, axes[0].Edge)
		assert.False(t, axes[0].Range.IsSet())
	}

	top, err := am.Top()
	require.NoError(t, err)
	assert.Equal(t, DefaultSecondarySize, top.Size)
	assert.Empty(t, top.Label)
	bottom, err := am.Bottom()
	require.NoError(t, err)
	assert.Equal(t, DefaultPrimarySize, bottom.Size)

	left, _ := am.Left()
	require.Len(t, am.Grids, 1)
	assert.Equal(t, &Grid{XAxis: bottom.ID(), YAxis: left.ID()}, am.Grids[0])

	// 4 axes + title
	assert.Len(t, am.GetPanels(), 5)
}

func TestAxisHandles(t *testing.T) {
	am := New().Axes
	seen := map[AxisID]bool{}
	for _, ax := range am.GetAxes() {
		assert.NotZero(t, ax.ID())
		assert.False(t, seen[ax.ID()])
		seen[ax.ID()] = true
	}

	top, _ := am.Top()
	old := top.ID()
	am.Remove(Top)
	top = am.AddTopAxis()
	assert.Greater(t, top.ID(), old)

	_, err := am.Axis(old)
	assert.ErrorIs(t, err, ErrAxisNotFound)
	got, err := am.Axis(top.ID())
	require.NoError(t, err)
	assert.Same(t, top, got)
}

func TestSetLimitsExact(t *testing.T) {
	am := New().Axes
	limits := []AxisLimits{
		{Left: 0.1, Right: 0.7, Bottom: -3.3, Top: 1e9},
		{Left: 1e-7, Right: 3e-7, Bottom: 1.0 / 3, Top: 2.0 / 3},
		{Left: -1e300, Right: 1e300, Bottom: 5, Top: 5},
		{Left: 7, Right: -7, Bottom: 0, Top: 1},
	}
	for _, al := range limits {
		require.NoError(t, am.SetAxisLimits(al))
		got, err := am.GetLimits()
		require.NoError(t, err)
		assert.Equal(t, al, got)
	}

	require.NoError(t, am.SetLimitsRect(CoordinateRect{Left: 1, Right: 2, Bottom: 3, Top: 4}))
	got, _ := am.GetLimits()
	assert.Equal(t, AxisLimits{Left: 1, Right: 2, Bottom: 3, Top: 4}, got)
}

func TestSetLimitsPartial(t *testing.T) {
	am := New().Axes
	require.NoError(t, am.SetAxisLimits(AxisLimits{Left: 0, Right: 10, Bottom: 0, Top: 10}))

	require.NoError(t, am.SetLimits(LimitsOptions{Left: option.Of(-5.0)}))
	got, _ := am.GetLimits()
	assert.Equal(t, AxisLimits{Left: -5, Right: 10, Bottom: 0, Top: 10}, got)

	require.NoError(t, am.SetLimitsY(2, 3))
	got, _ = am.GetLimits()
	assert.Equal(t, AxisLimits{Left: -5, Right: 10, Bottom: 2, Top: 3}, got)

	require.NoError(t, am.SetLimits(LimitsOptions{}))
	got, _ = am.GetLimits()
	assert.Equal(t, AxisLimits{Left: -5, Right: 10, Bottom: 2, Top: 3}, got)
}

func TestSetLimitsAxes(t *testing.T) {
	am := New().Axes
	right, _ := am.Right()
	top, _ := am.Top()

	require.NoError(t, am.SetLimits(LimitsOptions{Bottom: option.Of(1.0), Top: option.Of(2.0), YAxis: right}))
	assert.Equal(t, minmax.F64{Min: 1, Max: 2}, right.Range)
	left, _ := am.Left()
	assert.False(t, left.Range.IsSet())

	err := am.SetLimits(LimitsOptions{Left: option.Of(1.0), Right: option.Of(2.0), XAxis: right})
	assert.ErrorIs(t, err, ErrInvalidAxisState)

	am.Remove(Top)
	err = am.SetLimits(LimitsOptions{Left: option.Of(1.0), XAxis: top})
	assert.ErrorIs(t, err, ErrAxisNotFound)
}

func TestSetLimitsNonFinite(t *testing.T) {
	am := New().Axes
	require.NoError(t, am.SetAxisLimits(unitSquare))
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := am.SetAxisLimits(AxisLimits{Left: 0, Right: v, Bottom: 0, Top: 1})
		assert.ErrorIs(t, err, ErrInvalidAxisState)
		got, _ := am.GetLimits()
		assert.Equal(t, unitSquare, got)
	}
}

func TestPanInverse(t *testing.T) {
	am := New().Axes
	right := am.AddRightAxis()
	right.Range.Set(-1, 1)
	start := AxisLimits{Left: -3.7, Right: 12.1, Bottom: 0.001, Top: 0.002}
	require.NoError(t, am.SetAxisLimits(start))

	for _, d := range []CoordinateSize{{Width: 1.3, Height: -7}, {Width: 1e-4, Height: 1e6}, {}} {
		require.NoError(t, am.Pan(d))
		require.NoError(t, am.Pan(CoordinateSize{Width: -d.Width, Height: -d.Height}))
		got, _ := am.GetLimits()
		assertLimits(t, start, got)
		assert.InDelta(t, -1, right.Range.Min, 1e-9)
		assert.InDelta(t, 1, right.Range.Max, 1e-9)
	}
}

func TestPanAllAxes(t *testing.T) {
	am := New().Axes
	right := am.AddRightAxis()
	right.Range.Set(0, 1)
	top, _ := am.Top()
	top.Range.Set(0, 1)
	require.NoError(t, am.SetAxisLimits(unitSquare))

	require.NoError(t, am.Pan(CoordinateSize{Width: 2, Height: 3}))
	assert.Equal(t, minmax.F64{Min: 2, Max: 3}, top.Range)
	assert.Equal(t, minmax.F64{Min: 3, Max: 4}, right.Range)
	got, _ := am.GetLimits()
	assert.Equal(t, AxisLimits{Left: 2, Right: 3, Bottom: 3, Top: 4}, got)
}

func TestPanPixels(t *testing.T) {
	pt := New()
	am := pt.Axes
	err := am.PanPixels(PixelSize{Width: 10})
	assert.ErrorIs(t, err, ErrNoRenderYet)

	require.NoError(t, am.SetAxisLimits(AxisLimits{Left: 0, Right: 35, Bottom: 0, Top: 10}))
	require.NoError(t, pt.Render(figure))
	require.NoError(t, am.PanPixels(PixelSize{Width: 35, Height: 25}))
	got, _ := am.GetLimits()
	assertLimits(t, AxisLimits{Left: 3.5, Right: 38.5, Bottom: -1, Top: 9}, got)

	// an axis added since the render does not block the others
	extra := am.AddLeftAxis()
	require.NoError(t, am.PanPixels(PixelSize{Width: -35}))
	got, _ = am.GetLimits()
	assertLimits(t, AxisLimits{Left: 0, Right: 35, Bottom: -1, Top: 9}, got)
	assert.False(t, extra.Range.IsSet())
}

func TestPanPixelsNoArea(t *testing.T) {
	pt := New()
	am := pt.Axes
	require.NoError(t, am.SetAxisLimits(unitSquare))
	require.NoError(t, pt.Render(NewPixelRect(30, 30)))

	err := am.PanPixels(PixelSize{Width: 1, Height: 1})
	assert.ErrorIs(t, err, ErrInvalidAxisState)
	got, _ := am.GetLimits()
	assert.Equal(t, unitSquare, got)
}

func TestZoomInverse(t *testing.T) {
	am := New().Axes
	start := AxisLimits{Left: -2, Right: 6, Bottom: 10, Top: 30}
	require.NoError(t, am.SetAxisLimits(start))

	require.NoError(t, am.Zoom(2, 1))
	got, _ := am.GetLimits()
	assert.InDelta(t, 4, got.HorizontalSpan(), 1e-12)
	assert.Equal(t, 20.0, got.VerticalSpan())

	require.NoError(t, am.Zoom(0.5, 1))
	got, _ = am.GetLimits()
	assertLimits(t, start, got)
	assert.Equal(t, 20.0, got.VerticalSpan())
}

func TestZoomInvalid(t *testing.T) {
	am := New().Axes
	require.NoError(t, am.SetAxisLimits(unitSquare))
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, am.Zoom(f, 1), ErrInvalidAxisState)
		assert.ErrorIs(t, am.Zoom(1, f), ErrInvalidAxisState)
	}
	got, _ := am.GetLimits()
	assert.Equal(t, unitSquare, got)
}

func TestRemoveEdge(t *testing.T) {
	am := New().Axes
	am.AddTopAxis()
	require.Len(t, am.GetAxesOn(Top), 2)

	am.Remove(Top)
	assert.Empty(t, am.GetAxesOn(Top))
	_, err := am.Top()
	assert.ErrorIs(t, err, ErrAmbiguousEdge)
	assert.Len(t, am.GetAxes(), 3)

	_, err = am.Bottom()
	assert.NoError(t, err)
}

func TestClear(t *testing.T) {
	pt := New()
	pt.Axes.Clear()
	assert.Empty(t, pt.Axes.GetAxes())
	assert.Empty(t, pt.Axes.Grids)
	_, err := pt.Axes.GetLimits()
	assert.ErrorIs(t, err, ErrAmbiguousEdge)
	assert.ErrorIs(t, pt.Axes.AutoScale(), ErrAmbiguousEdge)

	// a new primary pair makes the manager usable again
	pt.Axes.AddBottomAxis()
	pt.Axes.AddLeftAxis()
	pt.Add(newPoints([]float64{0, 10}, []float64{0, 100}))
	require.NoError(t, pt.Axes.AutoScale())
	got, _ := pt.Axes.GetLimits()
	assertLimits(t, AxisLimits{Left: -1, Right: 11, Bottom: -15, Top: 115}, got)
}

func TestDateTimeTicks(t *testing.T) {
	am := New().Axes
	require.NoError(t, am.SetAxisLimits(AxisLimits{Left: 1.7e9, Right: 1.7e9 + 86400, Bottom: 0, Top: 1}))
	old, _ := am.Bottom()
	old.Label = "Time"

	dt, err := am.DateTimeTicks(Bottom)
	require.NoError(t, err)
	assert.True(t, dt.DateTime)
	assert.Equal(t, old.Range, dt.Range)
	assert.Equal(t, "Time", dt.Label)
	assert.NotEqual(t, old.ID(), dt.ID())

	bottom, err := am.Bottom()
	require.NoError(t, err)
	assert.Same(t, dt, bottom)
	assert.Len(t, am.GetAxesOn(Bottom), 1)

	assert.Equal(t, dt.ID(), am.Grids[0].XAxis)
	_, err = am.Axis(old.ID())
	assert.ErrorIs(t, err, ErrAxisNotFound)
}

func TestDateTimeTicksRebindsPlottables(t *testing.T) {
	pt := New()
	p := newPoints([]float64{0, 10}, []float64{0, 100})
	pt.Add(p)
	require.NoError(t, pt.Axes.AutoScale())

	dt, err := pt.Axes.DateTimeTicks(Bottom)
	require.NoError(t, err)
	assert.Equal(t, dt.ID(), p.binding.XAxis)

	require.NoError(t, pt.Axes.SetLimitsX(100, 200))
	require.NoError(t, pt.Axes.AutoScale())
	got, _ := pt.Axes.GetLimits()
	assertLimits(t, AxisLimits{Left: -1, Right: 11, Bottom: -15, Top: 115}, got)

	require.NoError(t, pt.Axes.SetLimitsX(100, 200))
	require.NoError(t, pt.Axes.AutoScaleX())
	assert.InDelta(t, -1, dt.Min(), 1e-9)
	assert.InDelta(t, 11, dt.Max(), 1e-9)
}

func TestDateTimeTicksUnsupported(t *testing.T) {
	am := New().Axes
	for _, e := range []Edge{Top, Left, Right} {
		before := am.GetAxesOn(e)
		_, err := am.DateTimeTicks(e)
		assert.ErrorIs(t, err, ErrUnsupportedConfiguration, e.String())
		assert.Equal(t, before, am.GetAxesOn(e))
	}
	assert.Len(t, am.GetAxes(), 4)
}

func TestApplyRulesOrder(t *testing.T) {
	pt, bottom, left := newRulePlot(t, AxisLimits{Left: 0, Right: 10, Bottom: 0, Top: 10})
	pt.Axes.Rules = []Rule{
		NewMaximumSpan(bottom, left, 4, 100),
		NewMinimumSpan(bottom, left, 6, 0),
	}
	require.NoError(t, pt.Axes.ApplyRules())
	assert.InDelta(t, 6, bottom.Range.Span(), 1e-12)

	pt.Axes.Rules[0], pt.Axes.Rules[1] = pt.Axes.Rules[1], pt.Axes.Rules[0]
	require.NoError(t, pt.Axes.ApplyRules())
	assert.InDelta(t, 4, bottom.Range.Span(), 1e-12)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/plotaxes/base/option"
)

// AxisManager owns the axes of a [Plot], along with its grids, panels,
// axis rules and autoscaler, and provides the pan, zoom, limit and
// autoscale operations. Axes are addressed by [AxisID] handles that
// stay valid until the axis is removed.
type AxisManager struct {
	plot *Plot

	// AutoScaler determines the padding around the data area when
	// [AxisManager.AutoScale] is called.
	AutoScaler AutoScaler

	// Title is the title panel above the data area.
	Title TitlePanel

	// Panels take up space on one side of the data area, like a colorbar.
	Panels []Panel

	// Grids are drawn at the major ticks of their axes.
	Grids []*Grid

	// Rules are applied in order after every axis operation and render.
	Rules []Rule

	// xAxes and yAxes hold the horizontal and vertical axes in the
	// order they were added.
	xAxes []*Axis
	yAxes []*Axis

	// lastID is the most recently issued axis handle.
	lastID AxisID
}

// NewAxisManager returns a manager for the given plot with primary
// Bottom and Left axes, labelless secondary Top and Right axes,
// a grid on the primary axes, and the default autoscaler.
func NewAxisManager(pt *Plot) *AxisManager {
	am := &AxisManager{plot: pt, AutoScaler: NewFractionalAutoScaler()}

	bottom := am.AddBottomAxis()
	left := am.AddLeftAxis()

	top := am.AddTopAxis()
	top.Size = DefaultSecondarySize
	right := am.AddRightAxis()
	right.Size = DefaultSecondarySize

	am.Grids = append(am.Grids, NewGrid(bottom, left))
	return am
}

// AddAxis takes ownership of the given axis, assigning its handle.
// Axes on the Bottom and Top edges are horizontal, others vertical.
func (am *AxisManager) AddAxis(ax *Axis) *Axis {
	am.lastID++
	ax.id = am.lastID
	if ax.IsHorizontal() {
		am.xAxes = append(am.xAxes, ax)
	} else {
		am.yAxes = append(am.yAxes, ax)
	}
	return ax
}

// AddLeftAxis creates a new axis, adds it to the plot, and returns it.
func (am *AxisManager) AddLeftAxis() *Axis { return am.AddAxis(NewAxis(Left)) }

// AddRightAxis creates a new axis, adds it to the plot, and returns it.
func (am *AxisManager) AddRightAxis() *Axis { return am.AddAxis(NewAxis(Right)) }

// AddBottomAxis creates a new axis, adds it to the plot, and returns it.
func (am *AxisManager) AddBottomAxis() *Axis { return am.AddAxis(NewAxis(Bottom)) }

// AddTopAxis creates a new axis, adds it to the plot, and returns it.
func (am *AxisManager) AddTopAxis() *Axis { return am.AddAxis(NewAxis(Top)) }

// AddPanel adds a panel beside the data area.
func (am *AxisManager) AddPanel(p Panel) {
	am.Panels = append(am.Panels, p)
}

// XAxes returns the horizontal axes.
func (am *AxisManager) XAxes() []*Axis { return slices.Clone(am.xAxes) }

// YAxes returns the vertical axes.
func (am *AxisManager) YAxes() []*Axis { return slices.Clone(am.yAxes) }

// GetAxes returns all axes, horizontal ones first.
func (am *AxisManager) GetAxes() []*Axis {
	return slices.Concat(am.xAxes, am.yAxes)
}

// GetAxesOn returns all axes on the given edge.
func (am *AxisManager) GetAxesOn(edge Edge) []*Axis {
	var axes []*Axis
	for _, ax := range am.GetAxes() {
		if ax.Edge == edge {
			axes = append(axes, ax)
		}
	}
	return axes
}

// GetPanels returns all axes, then the panels, then the title.
func (am *AxisManager) GetPanels() []Panel {
	ps := make([]Panel, 0, len(am.xAxes)+len(am.yAxes)+len(am.Panels)+1)
	for _, ax := range am.GetAxes() {
		ps = append(ps, ax)
	}
	ps = append(ps, am.Panels...)
	return append(ps, &am.Title)
}

// Axis returns the axis with the given handle.
func (am *AxisManager) Axis(id AxisID) (*Axis, error) {
	for _, ax := range am.GetAxes() {
		if ax.id == id {
			return ax, nil
		}
	}
	return nil, fmt.Errorf("%w: handle %d", ErrAxisNotFound, id)
}

// axisPair resolves a horizontal and a vertical axis handle.
func (am *AxisManager) axisPair(xID, yID AxisID) (xAxis, yAxis *Axis, err error) {
	xAxis, err = am.Axis(xID)
	if err != nil {
		return nil, nil, err
	}
	yAxis, err = am.Axis(yID)
	if err != nil {
		return nil, nil, err
	}
	return xAxis, yAxis, nil
}

// primary returns the first axis added on the given edge.
func (am *AxisManager) primary(edge Edge) (*Axis, error) {
	axes := am.yAxes
	if edge.IsHorizontal() {
		axes = am.xAxes
	}
	for _, ax := range axes {
		if ax.Edge == edge {
			return ax, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAmbiguousEdge, edge)
}

// Top returns the primary horizontal axis above the plot.
func (am *AxisManager) Top() (*Axis, error) { return am.primary(Top) }

// Bottom returns the primary horizontal axis below the plot.
func (am *AxisManager) Bottom() (*Axis, error) { return am.primary(Bottom) }

// Left returns the primary vertical axis to the left of the plot.
func (am *AxisManager) Left() (*Axis, error) { return am.primary(Left) }

// Right returns the primary vertical axis to the right of the plot.
func (am *AxisManager) Right() (*Axis, error) { return am.primary(Right) }

// primaryPair returns the primary Bottom and Left axes.
func (am *AxisManager) primaryPair() (xAxis, yAxis *Axis, err error) {
	xAxis, err = am.Bottom()
	if err != nil {
		return nil, nil, err
	}
	yAxis, err = am.Left()
	if err != nil {
		return nil, nil, err
	}
	return xAxis, yAxis, nil
}

// Clear removes all axes, grids and panels.
func (am *AxisManager) Clear() {
	am.Grids = nil
	am.Panels = nil
	am.xAxes = nil
	am.yAxes = nil
}

// Remove removes all axes on the given edge. Grids and rules that
// refer to a removed axis fail lookup with [ErrAxisNotFound] until they
// are rebound.
func (am *AxisManager) Remove(edge Edge) {
	onEdge := func(ax *Axis) bool { return ax.Edge == edge }
	am.xAxes = slices.DeleteFunc(am.xAxes, onEdge)
	am.yAxes = slices.DeleteFunc(am.yAxes, onEdge)
}

// DateTimeTicks replaces the axes on the given edge with a date/time
// axis that takes over the range and label of the first removed axis,
// and rebinds every grid and plottable that referred to a removed axis
// to the new one.
// Only the Bottom edge is supported; other edges return
// [ErrUnsupportedConfiguration] and leave the axes unchanged.
func (am *AxisManager) DateTimeTicks(edge Edge) (*Axis, error) {
	if edge != Bottom {
		return nil, fmt.Errorf("%w: date/time ticks on the %s edge", ErrUnsupportedConfiguration, edge)
	}
	dt, err := NewDateTimeAxis(edge)
	if err != nil {
		return nil, err
	}
	removed := am.GetAxesOn(edge)
	if len(removed) > 0 {
		if err := dt.CopyFrom(removed[0]); err != nil {
			return nil, err
		}
	}
	am.Remove(edge)
	am.AddAxis(dt)
	for _, old := range removed {
		for _, gr := range am.Grids {
			if gr.References(old.id) {
				gr.Replace(dt)
				slog.Debug("plot: grid rebound to date/time axis", "old", old.id, "new", dt.id)
			}
		}
		for _, p := range am.plot.Plottables {
			if ab := p.AxisBinding(); ab.XAxis == old.id {
				ab.XAxis = dt.id
			}
		}
	}
	return dt, nil
}

// LimitsOptions selects which bounds [AxisManager.SetLimits] changes
// and on which axes. Unset bounds keep their current value, and unset
// axes default to the primary Bottom / Left axes. A dimension with no
// bounds set is left alone entirely.
type LimitsOptions struct {
	Left, Right, Bottom, Top option.Option[float64]

	// XAxis and YAxis are the axes to change; nil means primary.
	XAxis, YAxis *Axis
}

// LimitsOf returns options that set all four bounds from the given
// limits on the primary axes.
func LimitsOf(al AxisLimits) LimitsOptions {
	return LimitsOptions{
		Left:   option.Of(al.Left),
		Right:  option.Of(al.Right),
		Bottom: option.Of(al.Bottom),
		Top:    option.Of(al.Top),
	}
}

// SetLimits sets axis bounds as described by the options, then
// applies the rules. Non-finite bounds return [ErrInvalidAxisState]
// without changing anything.
func (am *AxisManager) SetLimits(opts LimitsOptions) error {
	for _, o := range []option.Option[float64]{opts.Left, opts.Right, opts.Bottom, opts.Top} {
		if o.IsValid() && (math.IsNaN(o.Value) || math.IsInf(o.Value, 0)) {
			return fmt.Errorf("%w: non-finite limit %g", ErrInvalidAxisState, o.Value)
		}
	}
	var xa, ya *Axis
	var err error
	if opts.Left.IsValid() || opts.Right.IsValid() {
		if xa, err = am.resolve(opts.XAxis, Bottom); err != nil {
			return err
		}
	}
	if opts.Bottom.IsValid() || opts.Top.IsValid() {
		if ya, err = am.resolve(opts.YAxis, Left); err != nil {
			return err
		}
	}
	if xa != nil {
		xa.Range.Set(opts.Left.Or(xa.Range.Min), opts.Right.Or(xa.Range.Max))
	}
	if ya != nil {
		ya.Range.Set(opts.Bottom.Or(ya.Range.Min), opts.Top.Or(ya.Range.Max))
	}
	return am.ApplyRules()
}

// SetAxisLimits sets all four bounds of the primary axes.
func (am *AxisManager) SetAxisLimits(al AxisLimits) error {
	return am.SetLimits(LimitsOf(al))
}

// SetLimitsX sets the range of the primary Bottom axis.
func (am *AxisManager) SetLimitsX(left, right float64) error {
	return am.SetLimits(LimitsOptions{Left: option.Of(left), Right: option.Of(right)})
}

// SetLimitsY sets the range of the primary Left axis.
func (am *AxisManager) SetLimitsY(bottom, top float64) error {
	return am.SetLimits(LimitsOptions{Bottom: option.Of(bottom), Top: option.Of(top)})
}

// SetLimitsRect sets the primary axes to the given rectangle.
func (am *AxisManager) SetLimitsRect(cr CoordinateRect) error {
	return am.SetLimits(LimitsOf(cr.Limits()))
}

// resolve returns the given axis, checking that the manager owns it
// and that it has the orientation of the default edge, or the primary
// axis on that edge if ax is nil.
func (am *AxisManager) resolve(ax *Axis, def Edge) (*Axis, error) {
	if ax == nil {
		return am.primary(def)
	}
	own, err := am.Axis(ax.id)
	if err != nil {
		return nil, err
	}
	if own.IsHorizontal() != def.IsHorizontal() {
		return nil, fmt.Errorf("%w: %s axis used for the wrong dimension", ErrInvalidAxisState, own.Edge)
	}
	return own, nil
}

// GetLimits returns the limits of the primary Bottom / Left axes.
func (am *AxisManager) GetLimits() (AxisLimits, error) {
	xa, ya, err := am.primaryPair()
	if err != nil {
		return UnsetLimits(), err
	}
	return am.GetLimitsFor(xa, ya), nil
}

// GetLimitsFor returns the limits of the given axis pair.
func (am *AxisManager) GetLimitsFor(xAxis, yAxis *Axis) AxisLimits {
	return NewAxisLimits(xAxis.Range, yAxis.Range)
}

// bindDefaultAxes binds the primary Bottom / Left axes to every
// plottable with an unset axis. Plottables that are already bound are
// not touched, so repeated calls are harmless.
func (am *AxisManager) bindDefaultAxes() error {
	var xa, ya *Axis
	for _, p := range am.plot.Plottables {
		ab := p.AxisBinding()
		if ab.IsSet() {
			continue
		}
		if xa == nil {
			var err error
			if xa, ya, err = am.primaryPair(); err != nil {
				return err
			}
		}
		if ab.XAxis == 0 {
			ab.XAxis = xa.id
		}
		if ab.YAxis == 0 {
			ab.YAxis = ya.id
		}
	}
	return nil
}

// AutoScale scales every axis pair in use to fit the data of the
// plottables that use it.
func (am *AxisManager) AutoScale() error {
	if err := am.bindDefaultAxes(); err != nil {
		return err
	}
	if err := am.AutoScaler.AutoScaleAll(am.plot, am.plot.Plottables); err != nil {
		return err
	}
	return am.ApplyRules()
}

// AutoScaleX scales the primary Bottom axis to fit the data plotted
// against the primary Bottom / Left pair.
func (am *AxisManager) AutoScaleX() error {
	xa, ya, err := am.primaryPair()
	if err != nil {
		return err
	}
	return am.AutoScalePair(xa, ya, true, false)
}

// AutoScaleY scales the primary Left axis to fit the data plotted
// against the primary Bottom / Left pair.
func (am *AxisManager) AutoScaleY() error {
	xa, ya, err := am.primaryPair()
	if err != nil {
		return err
	}
	return am.AutoScalePair(xa, ya, false, true)
}

// AutoScalePair scales the given axes to fit the data of the
// plottables that use them, changing only the dimensions requested.
func (am *AxisManager) AutoScalePair(xAxis, yAxis *Axis, horizontal, vertical bool) error {
	if err := am.bindDefaultAxes(); err != nil {
		return err
	}
	lim, err := am.AutoScaler.GetAxisLimits(am.plot, xAxis.id, yAxis.id)
	if err != nil {
		return err
	}
	if horizontal {
		xAxis.Range = lim.XRange()
	}
	if vertical {
		yAxis.Range = lim.YRange()
	}
	return am.ApplyRules()
}

// Pan shifts every horizontal axis by distance.Width and every
// vertical axis by distance.Height, in data units.
func (am *AxisManager) Pan(distance CoordinateSize) error {
	for _, ax := range am.xAxes {
		ax.Range.Pan(distance.Width)
	}
	for _, ax := range am.yAxes {
		ax.Range.Pan(distance.Height)
	}
	return am.ApplyRules()
}

// PanPixels shifts every axis by the given pixel distance, converted to
// data units with the data rectangle of the last render. It returns
// [ErrNoRenderYet] before the first render. If any axis cannot convert
// the distance, no axis is moved.
func (am *AxisManager) PanPixels(distance PixelSize) error {
	if !am.plot.LastRender.HasRendered() {
		return fmt.Errorf("%w: at least one render is required before pixel panning", ErrNoRenderYet)
	}
	rect := am.plot.LastRender.DataRect
	axes := am.GetAxes()
	deltas := make([]float64, len(axes))
	for i, ax := range axes {
		px := distance.Height
		if ax.IsHorizontal() {
			px = distance.Width
		}
		d, err := ax.GetCoordinateDistance(px, rect)
		if err != nil {
			return err
		}
		deltas[i] = d
	}
	for i, ax := range axes {
		ax.Range.Pan(deltas[i])
	}
	return am.ApplyRules()
}

// Zoom scales every horizontal axis span by 1/fracX and every vertical
// axis span by 1/fracY around its center: fractions above 1 zoom in
// and below 1 zoom out. Fractions must be positive and finite.
func (am *AxisManager) Zoom(fracX, fracY float64) error {
	for _, f := range []float64{fracX, fracY} {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: zoom fraction %g", ErrInvalidAxisState, f)
		}
	}
	for _, ax := range am.xAxes {
		ax.Range.ZoomFrac(fracX)
	}
	for _, ax := range am.yAxes {
		ax.Range.ZoomFrac(fracY)
	}
	return am.ApplyRules()
}

// Margins resets the autoscaler to the default margins and autoscales.
func (am *AxisManager) Margins() error {
	am.AutoScaler = NewFractionalAutoScaler()
	return am.AutoScale()
}

// MarginsXY sets the fraction of whitespace placed around the data
// horizontally and vertically when autoscaling, and autoscales.
// Fractions range from 0 (tightly fit the data) to 1 (lots of whitespace).
func (am *AxisManager) MarginsXY(horizontal, vertical float64) error {
	am.AutoScaler = NewFractionalAutoScalerXY(horizontal, vertical)
	return am.AutoScale()
}

// MarginsSides sets the fraction of whitespace placed on each side of
// the data when autoscaling, and autoscales.
func (am *AxisManager) MarginsSides(left, right, bottom, top float64) error {
	am.AutoScaler = NewFractionalAutoScalerSides(left, right, bottom, top)
	return am.AutoScale()
}

// ApplyRules applies each rule once, in order, stopping at the first error.
func (am *AxisManager) ApplyRules() error {
	for i, r := range am.Rules {
		slog.Debug("plot: applying axis rule", "index", i, "rule", fmt.Sprintf("%T", r))
		if err := r.Apply(am.plot); err != nil {
			return fmt.Errorf("axis rule %d (%T): %w", i, r, err)
		}
	}
	return nil
}

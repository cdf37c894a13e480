// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values,
// used as the one-dimensional coordinate range of a plot axis.
package minmax

import "math"

const (
	MaxFloat64 float64 = 1.7976931348623158e+308
	MinFloat64 float64 = 2.2250738585072014e-308
)

// F64 represents a min / max range for float64 values.
// Supports panning, zooming, fitting and normalizing.
//
// Min may exceed Max while a range is being computed; call
// [F64.Normalize] before relying on Min <= Max. A range whose
// bounds are NaN is unset, see [Unset].
type F64 struct {
	Min float64
	Max float64
}

// Unset returns a range with NaN bounds, used for axes whose
// limits have not yet been determined.
func Unset() F64 {
	return F64{Min: math.NaN(), Max: math.NaN()}
}

// Set sets the min and max values
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling Fit*InRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsSet returns true if neither bound is NaN.
func (mr F64) IsSet() bool {
	return !math.IsNaN(mr.Min) && !math.IsNaN(mr.Max)
}

// IsFinite returns true if both bounds are real, finite numbers.
func (mr F64) IsFinite() bool {
	return mr.IsSet() && !math.IsInf(mr.Min, 0) && !math.IsInf(mr.Max, 0)
}

// IsValid returns true if Min <= Max. A range left at
// [F64.SetInfinity] with nothing fitted into it is not valid.
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Span returns Max - Min, which is negative for an inverted range.
func (mr F64) Span() float64 {
	return mr.Max - mr.Min
}

// Center returns point halfway between Min and Max
func (mr F64) Center() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// Contains tests whether value is within the range (>= Min and <= Max)
func (mr F64) Contains(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// ContainsRange tests whether the other range lies entirely within this one.
func (mr F64) ContainsRange(oth F64) bool {
	return oth.Min >= mr.Min && oth.Max <= mr.Max
}

// Normalize swaps Min and Max if the range is inverted.
func (mr *F64) Normalize() {
	if mr.Min > mr.Max {
		mr.Min, mr.Max = mr.Max, mr.Min
	}
}

// Pan shifts both bounds by delta.
func (mr *F64) Pan(delta float64) {
	mr.Min += delta
	mr.Max += delta
}

// ZoomFrac scales the span by 1/frac around the center:
// frac > 1 zooms in and frac < 1 zooms out.
func (mr *F64) ZoomFrac(frac float64) {
	mr.Zoom(frac, mr.Center())
}

// Zoom scales the span by 1/frac keeping the given point fixed.
func (mr *F64) Zoom(frac, center float64) {
	mr.Min = center - (center-mr.Min)/frac
	mr.Max = center + (mr.Max-center)/frac
}

// SetSpan sets the span to the given value around the current center.
func (mr *F64) SetSpan(span float64) {
	c := mr.Center()
	mr.Min = c - span/2
	mr.Max = c + span/2
}

// Expand moves Min down by lo and Max up by hi.
func (mr *F64) Expand(lo, hi float64) {
	mr.Min -= lo
	mr.Max += hi
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange adjusts our Min, Max to fit within those of other F64
// returns true if we had to adjust to fit.
func (mr *F64) FitInRange(oth F64) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}

// Norm returns the position of val relative to the range,
// 0 at Min and 1 at Max, without clipping.
func (mr F64) Norm(val float64) float64 {
	return (val - mr.Min) / mr.Span()
}

// Proj projects a 0-1 normalized value into the range (inverse of Norm).
func (mr F64) Proj(val float64) float64 {
	return mr.Min + val*mr.Span()
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

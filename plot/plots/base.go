// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides the standard plottables, which report the
// extent of their data to the axes of a [plot.Plot] for autoscaling.
package plots

import (
	"fmt"

	"cogentcore.org/plotaxes/plot"
)

// Base holds the axis binding and visibility shared by all plottables.
type Base struct {
	// Axes are the axes the plottable is drawn against; unset axes are
	// bound to the primary Bottom / Left axes by the next autoscale.
	Axes plot.AxisBinding

	// Hidden turns the plottable off, excluding it from autoscaling.
	Hidden bool
}

func (b *Base) AxisBinding() *plot.AxisBinding { return &b.Axes }

func (b *Base) IsVisible() bool { return !b.Hidden }

// copyAll copies each of the given data, which must all have the
// same length.
func copyAll(names []string, data ...plot.Valuer) ([]plot.Values, error) {
	vals := make([]plot.Values, len(data))
	for i, d := range data {
		v, err := plot.CopyValues(d)
		if err != nil {
			return nil, fmt.Errorf("plots: %s: %w", names[i], err)
		}
		if i > 0 && len(v) != len(vals[0]) {
			return nil, fmt.Errorf("plots: %s has %d values, %s has %d", names[i], len(v), names[0], len(vals[0]))
		}
		vals[i] = v
	}
	return vals, nil
}

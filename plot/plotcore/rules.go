// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcore

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"cogentcore.org/plotaxes/plot"
)

// RuleOptions specify one axis rule by type name.
type RuleOptions struct {

	// name of the rule type, one of [RuleTypeNames]
	Type string

	// edge of the X axis the rule governs; the primary Bottom axis if empty
	XAxis string

	// edge of the Y axis the rule governs; the primary Left axis if empty
	YAxis string

	// boundary for the MinimumBoundary and MaximumBoundary rules
	Left, Right, Bottom, Top float64

	// spans for the MinimumSpan and MaximumSpan rules
	XSpan, YSpan float64
}

// RuleMaker makes a rule for the given axes from its options.
type RuleMaker func(xAxis, yAxis *plot.Axis, ro *RuleOptions) plot.Rule

// RuleTypes is the registry of rule makers by type name.
var RuleTypes = map[string]RuleMaker{}

// RegisterRule registers a rule maker under the given type name,
// replacing any previous maker of that name.
func RegisterRule(name string, fn RuleMaker) {
	RuleTypes[name] = fn
}

// RuleTypeNames returns the sorted names of the registered rule types.
func RuleTypeNames() []string {
	nms := maps.Keys(RuleTypes)
	slices.Sort(nms)
	return nms
}

func init() {
	RegisterRule("MinimumBoundary", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewMinimumBoundary(x, y, ro.Limits())
	})
	RegisterRule("MaximumBoundary", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewMaximumBoundary(x, y, ro.Limits())
	})
	RegisterRule("SquarePreserveX", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewSquarePreserveX(x, y)
	})
	RegisterRule("SquarePreserveY", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewSquarePreserveY(x, y)
	})
	RegisterRule("SquareZoomOut", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewSquareZoomOut(x, y)
	})
	RegisterRule("MinimumSpan", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewMinimumSpan(x, y, ro.XSpan, ro.YSpan)
	})
	RegisterRule("MaximumSpan", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewMaximumSpan(x, y, ro.XSpan, ro.YSpan)
	})
	RegisterRule("LockedHorizontal", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewLockedHorizontal(x)
	})
	RegisterRule("LockedVertical", func(x, y *plot.Axis, ro *RuleOptions) plot.Rule {
		return plot.NewLockedVertical(y)
	})
}

// Limits returns the boundary of the rule.
func (ro *RuleOptions) Limits() plot.AxisLimits {
	return plot.AxisLimits{Left: ro.Left, Right: ro.Right, Bottom: ro.Bottom, Top: ro.Top}
}

// Rule makes the rule for the primary axes on the configured edges.
func (ro *RuleOptions) Rule(am *plot.AxisManager) (plot.Rule, error) {
	mk, ok := RuleTypes[ro.Type]
	if !ok {
		return nil, fmt.Errorf("unknown axis rule type %q; valid types are %v", ro.Type, RuleTypeNames())
	}
	x, err := primaryAxis(am, ro.XAxis, plot.Bottom)
	if err != nil {
		return nil, err
	}
	y, err := primaryAxis(am, ro.YAxis, plot.Left)
	if err != nil {
		return nil, err
	}
	return mk(x, y, ro), nil
}

// primaryAxis returns the primary axis on the named edge, or on the
// default edge if the name is empty. The edge must have the same
// orientation as the default edge.
func primaryAxis(am *plot.AxisManager, name string, def plot.Edge) (*plot.Axis, error) {
	edge := def
	if name != "" {
		if err := edge.SetString(name); err != nil {
			return nil, err
		}
	}
	if edge.IsHorizontal() != def.IsHorizontal() {
		return nil, fmt.Errorf("%w: %s axis used for the wrong dimension", plot.ErrInvalidAxisState, edge)
	}
	switch edge {
	case plot.Top:
		return am.Top()
	case plot.Bottom:
		return am.Bottom()
	case plot.Right:
		return am.Right()
	default:
		return am.Left()
	}
}

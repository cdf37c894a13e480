// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcore configures and drives a [plot.Plot]: it loads plot
// options from TOML or YAML files, builds axis rules by name, and
// turns pointer gestures into pan and zoom operations.
package plotcore

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/plotaxes/base/errors"
	"cogentcore.org/plotaxes/base/iox/tomlx"
	"cogentcore.org/plotaxes/base/iox/yamlx"
	"cogentcore.org/plotaxes/base/option"
	"cogentcore.org/plotaxes/plot"
)

// Options are options for the axes of a plot.
type Options struct {

	// optional title at top of plot
	Title string

	// margins added around the data when autoscaling
	Margins MarginOptions

	// fixed axis limits; any that are unset come from autoscaling
	Limits LimitOptions

	// whether the bottom axis shows dates and times,
	// with coordinates in seconds since the Unix epoch
	DateTimeBottom bool

	// axis rules, applied in order after every axis change
	Rules []RuleOptions
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.Margins.Defaults()
}

// MarginOptions are the fractions of the data span added as whitespace
// on each side of the data when autoscaling.
type MarginOptions struct {
	Left   float64 `default:"0.1"`
	Right  float64 `default:"0.1"`
	Bottom float64 `default:"0.15"`
	Top    float64 `default:"0.15"`
}

func (mo *MarginOptions) Defaults() {
	mo.Left, mo.Right = 0.1, 0.1
	mo.Bottom, mo.Top = 0.15, 0.15
}

// LimitOptions are optional fixed limits for the primary axes.
type LimitOptions struct {
	Left, Right, Bottom, Top *float64
}

// IsSet returns true if any limit is set.
func (lo *LimitOptions) IsSet() bool {
	return lo.Left != nil || lo.Right != nil || lo.Bottom != nil || lo.Top != nil
}

// LimitsOptions returns the limits as [plot.LimitsOptions] for the primary axes.
func (lo *LimitOptions) LimitsOptions() plot.LimitsOptions {
	return plot.LimitsOptions{
		Left:   optionOf(lo.Left),
		Right:  optionOf(lo.Right),
		Bottom: optionOf(lo.Bottom),
		Top:    optionOf(lo.Top),
	}
}

func optionOf(v *float64) option.Option[float64] {
	if v == nil {
		return option.Option[float64]{}
	}
	return option.Of(*v)
}

// LoadOptions returns default options updated from the given files in
// order, so that later files override earlier ones. The format is
// chosen by file extension: .toml, or .yaml / .yml.
func LoadOptions(filenames ...string) (*Options, error) {
	o := &Options{}
	o.Defaults()
	for _, fn := range filenames {
		if err := errors.Log(openOptions(o, fn)); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func openOptions(o *Options, filename string) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(o, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(o, filename)
	default:
		return fmt.Errorf("plotcore: options file %q: unsupported extension %q", filename, ext)
	}
	if err != nil {
		return fmt.Errorf("plotcore: options file %q: %w", filename, err)
	}
	return nil
}

// Apply configures the given plot from the options. The title,
// date/time axis and autoscaler margins are set first; then the limits
// are set, with any left unset coming from autoscaling; and finally the
// rules replace any existing rules and are applied. Locked rules take
// their snapshot of the final limits.
func (o *Options) Apply(pt *plot.Plot) error {
	am := pt.Axes
	am.Title.Text = o.Title
	if o.DateTimeBottom {
		if _, err := am.DateTimeTicks(plot.Bottom); err != nil {
			return err
		}
	}
	m := o.Margins
	am.AutoScaler = plot.NewFractionalAutoScalerSides(m.Left, m.Right, m.Bottom, m.Top)
	am.Rules = nil
	if err := am.AutoScale(); err != nil {
		return err
	}
	if o.Limits.IsSet() {
		if err := am.SetLimits(o.Limits.LimitsOptions()); err != nil {
			return err
		}
	}
	rules := make([]plot.Rule, 0, len(o.Rules))
	for i := range o.Rules {
		r, err := o.Rules[i].Rule(am)
		if err != nil {
			return fmt.Errorf("plotcore: rule %d: %w", i, err)
		}
		rules = append(rules, r)
	}
	am.Rules = rules
	return am.ApplyRules()
}

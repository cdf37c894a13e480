// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/chewxy/math32"

// Panel takes up space on one edge of the data area. Axes are panels,
// as are the title and extra elements such as a colorbar.
type Panel interface {
	// PanelEdge returns the edge the panel is stacked against.
	PanelEdge() Edge

	// PanelSize returns the thickness of the panel in dots.
	PanelSize() float32

	// IsVisible returns false for panels that take no space.
	IsVisible() bool
}

// TitlePanel is the plot title above the data area.
type TitlePanel struct {
	// Text is the title; an empty title takes no space.
	Text string

	// Size is the thickness of the title in dots.
	Size float32
}

// DefaultTitleSize is the thickness in dots of a non-empty title.
const DefaultTitleSize float32 = 30

func (tp *TitlePanel) PanelEdge() Edge { return Top }

func (tp *TitlePanel) PanelSize() float32 {
	if tp.Size == 0 {
		return DefaultTitleSize
	}
	return tp.Size
}

func (tp *TitlePanel) IsVisible() bool { return tp.Text != "" }

// BlankPanel reserves space on an edge, for example for a colorbar
// drawn by the renderer.
type BlankPanel struct {
	Edge   Edge
	Size   float32
	Hidden bool
}

func (bp *BlankPanel) PanelEdge() Edge    { return bp.Edge }
func (bp *BlankPanel) PanelSize() float32 { return bp.Size }
func (bp *BlankPanel) IsVisible() bool    { return !bp.Hidden }

// layoutDataRect returns the part of figure left for data after
// stacking every visible panel against its edge. Panel sizes are
// rounded up to whole dots. When the panels do not fit, the data
// rectangle collapses to zero size along that dimension.
func layoutDataRect(figure PixelRect, panels []Panel) PixelRect {
	var left, right, top, bottom float32
	for _, p := range panels {
		if !p.IsVisible() {
			continue
		}
		sz := math32.Ceil(math32.Max(p.PanelSize(), 0))
		switch p.PanelEdge() {
		case Left:
			left += sz
		case Right:
			right += sz
		case Top:
			top += sz
		case Bottom:
			bottom += sz
		}
	}
	dr := PixelRect{
		Left:   figure.Left + float64(left),
		Right:  figure.Right - float64(right),
		Top:    figure.Top + float64(top),
		Bottom: figure.Bottom - float64(bottom),
	}
	if dr.Right < dr.Left {
		dr.Right = dr.Left
	}
	if dr.Bottom < dr.Top {
		dr.Bottom = dr.Top
	}
	return dr
}

// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import (
	"image"

	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/gio-sheet/sheet/edge"
	"github.com/gio-sheet/sheet/frame"
	"github.com/gio-sheet/sheet/inset"
	"github.com/gio-sheet/sheet/overlay"
)

// Options configure a presentation.
type Options struct {
	// Corners rounds the sheet surface.
	Corners CornerOptions
	// DimmingAlpha is the opacity of the dimming overlay. A nil
	// DimmingAlpha replaces dimming with an overlay that passes input
	// to the content behind the sheet.
	DimmingAlpha *float32
	// Insets is the minimum space between the sheet and the container
	// edges.
	Insets inset.Convertible
	// IgnoredEdgesForMargins lists the edges where container margins
	// do not enlarge Insets.
	IgnoredEdgesForMargins []edge.Edge
	Layout                 frame.Layout
	Animation              AnimationBehavior
	// OnTap handles taps on the dimming overlay. A nil OnTap dismisses
	// the sheet.
	OnTap overlay.TapHandler
}

// DefaultOptions returns options for a bottom sheet with rounded
// corners over a half transparent dimming overlay.
func DefaultOptions() Options {
	alpha := float32(0.5)
	return Options{
		Corners:      RoundAll(10),
		DimmingAlpha: &alpha,
		Insets:       inset.Uniform(20),
		Layout:       frame.DefaultLayout,
		Animation:    System(),
	}
}

// CornerMask selects corners of a rectangle.
type CornerMask uint8

const (
	TopLeft CornerMask = 1 << iota
	TopRight
	BottomRight
	BottomLeft
)

const (
	AllCorners    = TopLeft | TopRight | BottomRight | BottomLeft
	TopCorners    = TopLeft | TopRight
	BottomCorners = BottomLeft | BottomRight
	LeftCorners   = TopLeft | BottomLeft
	RightCorners  = TopRight | BottomRight
)

// CornerOptions describe the rounding of the sheet surface.
type CornerOptions struct {
	Radius unit.Dp
	Mask   CornerMask
}

// NoCorners leaves the surface square.
func NoCorners() CornerOptions {
	return CornerOptions{}
}

// RoundAll rounds every corner by r.
func RoundAll(r unit.Dp) CornerOptions {
	return CornerOptions{Radius: r, Mask: AllCorners}
}

// RoundSome rounds the corners in mask by r.
func RoundSome(r unit.Dp, mask CornerMask) CornerOptions {
	return CornerOptions{Radius: r, Mask: mask}
}

// Clip returns the clip area of a surface occupying r. Radii are
// limited to half the shorter side of r.
func (c CornerOptions) Clip(r image.Rectangle, m unit.Metric) clip.RRect {
	rr := clip.RRect{Rect: r}
	if c.Mask == 0 || c.Radius <= 0 {
		return rr
	}
	rad := min(m.Dp(c.Radius), r.Dx()/2, r.Dy()/2)
	if c.Mask&TopLeft != 0 {
		rr.NW = rad
	}
	if c.Mask&TopRight != 0 {
		rr.NE = rad
	}
	if c.Mask&BottomRight != 0 {
		rr.SE = rad
	}
	if c.Mask&BottomLeft != 0 {
		rr.SW = rad
	}
	return rr
}

func (m CornerMask) String() string {
	switch m {
	case 0:
		return "None"
	case AllCorners:
		return "All"
	case TopCorners:
		return "Top"
	case BottomCorners:
		return "Bottom"
	case LeftCorners:
		return "Left"
	case RightCorners:
		return "Right"
	}
	var s string
	for _, c := range []struct {
		m    CornerMask
		name string
	}{
		{TopLeft, "TopLeft"},
		{TopRight, "TopRight"},
		{BottomRight, "BottomRight"},
		{BottomLeft, "BottomLeft"},
	} {
		if m&c.m == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += c.name
	}
	return s
}

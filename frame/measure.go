// SPDX-License-Identifier: Unlicense OR MIT

package frame

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
)

// Priority is how strictly a measurement honors the target size on
// one axis.
type Priority uint8

const (
	// Fitting asks for the natural size of the content, no larger
	// than the target.
	Fitting Priority = iota
	// Required forces the target size.
	Required
)

// Measurer fits content to a target size.
type Measurer interface {
	Measure(target f32.Point, h, v Priority) f32.Point
}

// Content is the surface presented in a sheet.
type Content interface {
	Measurer
	// PreferredSize returns the size the content asks for. A zero
	// width or height means the content has no preferred size and
	// must be measured.
	PreferredSize() f32.Point
}

// WidgetMeasurer measures a widget by laying it out with constraints
// derived from the target and priorities. The operations and input of
// the measurement are discarded.
type WidgetMeasurer struct {
	Context layout.Context
	Widget  layout.Widget
}

// Measure implements Measurer.
func (m WidgetMeasurer) Measure(target f32.Point, h, v Priority) f32.Point {
	gtx := m.Context.Disabled()
	gtx.Constraints = Constraints(target, h, v)
	macro := op.Record(gtx.Ops)
	dims := m.Widget(gtx)
	macro.Stop()
	return f32.Pt(float32(dims.Size.X), float32(dims.Size.Y))
}

// Constraints converts a measurement request to layout constraints.
func Constraints(target f32.Point, h, v Priority) layout.Constraints {
	sz := image.Pt(int(target.X), int(target.Y))
	cs := layout.Constraints{Max: sz}
	if h == Required {
		cs.Min.X = sz.X
	}
	if v == Required {
		cs.Min.Y = sz.Y
	}
	return cs
}

// HasPreferredSize reports whether c declares a preferred size on
// both axes.
func HasPreferredSize(c Content) bool {
	sz := c.PreferredSize()
	return sz.X > 0 && sz.Y > 0
}

// Measure returns the size of c for layout l when hint is the space
// available.
//
// Automatic axes use the preferred size of c if it has one. Otherwise
// c is measured once: fill axes are required to match hint and
// automatic axes shrink to their natural size. A natural size that
// overflows hint is measured again with that axis required.
func Measure(c Content, hint f32.Point, l Layout) f32.Point {
	hfill, vfill := l.Horizontal.Fill, l.Vertical.Fill
	if HasPreferredSize(c) {
		sz := hint
		pref := c.PreferredSize()
		if !hfill {
			sz.X = pref.X
		}
		if !vfill {
			sz.Y = pref.Y
		}
		return sz
	}
	if hfill && vfill {
		return hint
	}
	hp, vp := Fitting, Fitting
	if hfill {
		hp = Required
	}
	if vfill {
		vp = Required
	}
	sz := c.Measure(hint, hp, vp)
	if sz.X > hint.X && hp != Required {
		hp = Required
		sz = c.Measure(hint, hp, vp)
	}
	if sz.Y > hint.Y && vp != Required {
		vp = Required
		sz = c.Measure(hint, hp, vp)
	}
	return sz
}

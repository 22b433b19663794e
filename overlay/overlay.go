// SPDX-License-Identifier: Unlicense OR MIT

/*
Package overlay implements what a sheet shows behind itself.

A Dimming overlay shades the content behind the sheet, swallows its
input and reports taps. A Passthrough overlay is invisible and lets
input reach the content behind the sheet.
*/
package overlay

import (
	"image"
	"image/color"

	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Overlay covers the container of a sheet, below the sheet itself.
type Overlay interface {
	// Layout lays out presenting, the content the sheet is shown
	// over, and the overlay on top of it, both filling bounds.
	Layout(gtx layout.Context, bounds image.Rectangle, presenting layout.Widget) layout.Dimensions
}

// Dimming shades the container black.
type Dimming struct {
	// Alpha is the opacity of the fully visible overlay.
	Alpha float32
	// Fraction scales Alpha while the overlay fades in or out.
	Fraction float32

	click gesture.Click
}

// Passthrough forwards input to the presenting content.
type Passthrough struct {
	// presses counts the presses observed by Pressed. It also keeps
	// the type from being zero sized, so every Passthrough is a
	// distinct event tag.
	presses int
}

var (
	_ Overlay = (*Dimming)(nil)
	_ Overlay = (*Passthrough)(nil)
)

// New returns a Dimming overlay with opacity alpha, or a Passthrough
// if alpha is nil.
func New(alpha *float32) Overlay {
	if alpha == nil {
		return new(Passthrough)
	}
	return &Dimming{Alpha: *alpha, Fraction: 1}
}

// Tapped reports whether the dimmed area was clicked since the last
// call.
func (d *Dimming) Tapped(gtx layout.Context) bool {
	tapped := false
	for {
		e, ok := d.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindClick {
			tapped = true
		}
	}
	return tapped
}

// Color returns the current shade.
func (d *Dimming) Color() color.NRGBA {
	a := d.Alpha * d.Fraction
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	return color.NRGBA{A: uint8(a*255 + .5)}
}

// Layout implements Overlay.
func (d *Dimming) Layout(gtx layout.Context, bounds image.Rectangle, presenting layout.Widget) layout.Dimensions {
	layoutPresenting(gtx, bounds, presenting)
	defer clip.Rect(bounds).Push(gtx.Ops).Pop()
	paint.ColorOp{Color: d.Color()}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	d.click.Add(gtx.Ops)
	return layout.Dimensions{Size: bounds.Max}
}

// Pressed reports whether the area outside the sheet was pressed
// since the last call. The presses still reach the presenting content.
func (p *Passthrough) Pressed(gtx layout.Context) bool {
	pressed := false
	for {
		e, ok := gtx.Event(pointer.Filter{Target: p, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := e.(pointer.Event); ok && e.Kind == pointer.Press {
			p.presses++
			pressed = true
		}
	}
	return pressed
}

// Layout implements Overlay.
func (p *Passthrough) Layout(gtx layout.Context, bounds image.Rectangle, presenting layout.Widget) layout.Dimensions {
	layoutPresenting(gtx, bounds, presenting)
	defer pointer.PassOp{}.Push(gtx.Ops).Pop()
	defer clip.Rect(bounds).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, p)
	return layout.Dimensions{Size: bounds.Max}
}

func layoutPresenting(gtx layout.Context, bounds image.Rectangle, w layout.Widget) {
	if w == nil {
		return
	}
	defer op.Offset(bounds.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(bounds.Size())
	w(gtx)
}

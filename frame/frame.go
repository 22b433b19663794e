// SPDX-License-Identifier: Unlicense OR MIT

/*
Package frame computes where a sheet is placed inside its container.

A Layout holds independent horizontal and vertical behaviors. A fill
behavior spans the inset container on that axis. An automatic behavior
sizes the content on that axis, from its preferred size or by measuring
it, and aligns it within the inset container.

The resulting frame is always contained in the inset container and is
rounded outwards to whole pixels.
*/
package frame

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/system"

	"github.com/gio-sheet/sheet/edge"
	"github.com/gio-sheet/sheet/inset"
)

// Frame returns the frame of c in container with insets applied. The
// result is pixel aligned.
func Frame(container Rect, in inset.Px, l Layout, c Content, dir system.TextDirection) image.Rectangle {
	bounds := container.Inset(in)
	size := Measure(c, bounds.Size(), l)
	return Place(bounds, size, l, dir).Integral()
}

// Place positions content of the given size inside bounds. Sizes larger
// than bounds are clamped.
func Place(bounds Rect, size f32.Point, l Layout, dir system.TextDirection) Rect {
	size.X = clamp(size.X, bounds.Dx())
	size.Y = clamp(size.Y, bounds.Dy())
	var r Rect
	r.Min.X, r.Max.X = placeHorizontal(l.Horizontal, bounds, size.X, dir)
	r.Min.Y, r.Max.Y = placeVertical(l.Vertical, bounds, size.Y)
	return r
}

func clamp(v, limit float32) float32 {
	if v > limit {
		return limit
	}
	if v < 0 {
		return 0
	}
	return v
}

// resolve maps leading and trailing alignments to left and right.
func (a HorizontalAlignment) resolve(dir system.TextDirection) HorizontalAlignment {
	var e edge.Directional
	switch a {
	case AlignLeading:
		e = edge.Leading
	case AlignTrailing:
		e = edge.Trailing
	default:
		return a
	}
	if e.Fixed(dir) == edge.Left {
		return AlignLeft
	}
	return AlignRight
}

func placeHorizontal(h Horizontal, bounds Rect, width float32, dir system.TextDirection) (float32, float32) {
	if h.Fill {
		return bounds.Min.X, bounds.Max.X
	}
	var x float32
	switch h.Alignment.resolve(dir) {
	case AlignLeft:
		x = bounds.Min.X
	case AlignCenter:
		x = bounds.Min.X + (bounds.Dx()-width)/2
	case AlignRight:
		x = bounds.Max.X - width
	default:
		panic("unreachable")
	}
	return x, x + width
}

func placeVertical(v Vertical, bounds Rect, height float32) (float32, float32) {
	if v.Fill {
		return bounds.Min.Y, bounds.Max.Y
	}
	var y float32
	switch v.Alignment {
	case AlignTop:
		y = bounds.Min.Y
	case AlignMiddle:
		y = bounds.Min.Y + (bounds.Dy()-height)/2
	case AlignBottom:
		y = bounds.Max.Y - height
	default:
		panic("unreachable")
	}
	return y, y + height
}

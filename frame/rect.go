// SPDX-License-Identifier: Unlicense OR MIT

package frame

import (
	"image"
	"math"

	"gioui.org/f32"

	"github.com/gio-sheet/sheet/inset"
)

// Rect is a rectangle in fractional pixels. Sizes of content
// measured in dp are rarely whole pixels, so placement is done in
// float32 and rounded once by Integral.
type Rect struct {
	Min, Max f32.Point
}

// FRect converts r to a Rect.
func FRect(r image.Rectangle) Rect {
	return Rect{
		Min: f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
		Max: f32.Pt(float32(r.Max.X), float32(r.Max.Y)),
	}
}

// Dx returns the width of r.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of r.
func (r Rect) Size() f32.Point {
	return f32.Pt(r.Dx(), r.Dy())
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Inset shrinks r by in. Insets larger than r collapse it to
// zero size at its center.
func (r Rect) Inset(in inset.Px) Rect {
	o := Rect{
		Min: f32.Pt(r.Min.X+in.Left, r.Min.Y+in.Top),
		Max: f32.Pt(r.Max.X-in.Right, r.Max.Y-in.Bottom),
	}
	if o.Min.X > o.Max.X {
		mid := (o.Min.X + o.Max.X) / 2
		o.Min.X, o.Max.X = mid, mid
	}
	if o.Min.Y > o.Max.Y {
		mid := (o.Min.Y + o.Max.Y) / 2
		o.Min.Y, o.Max.Y = mid, mid
	}
	return o
}

// Integral returns the smallest pixel aligned rectangle that
// encloses r: the minimum is rounded down and the maximum up.
func (r Rect) Integral() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(int(math.Floor(float64(r.Min.X))), int(math.Floor(float64(r.Min.Y)))),
		Max: image.Pt(int(math.Ceil(float64(r.Max.X))), int(math.Ceil(float64(r.Max.Y)))),
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package frame

// HorizontalAlignment places automatically sized content horizontally.
type HorizontalAlignment uint8

// VerticalAlignment places automatically sized content vertically.
type VerticalAlignment uint8

const (
	AlignLeading HorizontalAlignment = iota
	AlignCenter
	AlignTrailing
	AlignLeft
	AlignRight
)

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// Horizontal is the horizontal sizing behavior. The zero value
// sizes content automatically and aligns it to the leading edge.
type Horizontal struct {
	// Fill makes the content span the available width. Alignment
	// is ignored when Fill is set.
	Fill      bool
	Alignment HorizontalAlignment
}

// Vertical is the vertical sizing behavior. The zero value sizes
// content automatically and aligns it to the top edge.
type Vertical struct {
	Fill      bool
	Alignment VerticalAlignment
}

// Layout combines the independent horizontal and vertical behaviors.
type Layout struct {
	Horizontal Horizontal
	Vertical   Vertical
}

// FillHorizontal spans the available width.
func FillHorizontal() Horizontal {
	return Horizontal{Fill: true}
}

// AutoHorizontal sizes content to its width and aligns it with a.
func AutoHorizontal(a HorizontalAlignment) Horizontal {
	return Horizontal{Alignment: a}
}

// FillVertical spans the available height.
func FillVertical() Vertical {
	return Vertical{Fill: true}
}

// AutoVertical sizes content to its height and aligns it with a.
func AutoVertical(a VerticalAlignment) Vertical {
	return Vertical{Alignment: a}
}

// Top spans the width of the container and sizes and places the
// content vertically according to v.
func Top(v Vertical) Layout {
	return Layout{Horizontal: FillHorizontal(), Vertical: v}
}

// Bottom is like Top. Use AutoVertical(AlignBottom) for a sheet
// resting on the bottom edge.
func Bottom(v Vertical) Layout {
	return Layout{Horizontal: FillHorizontal(), Vertical: v}
}

// Leading spans the height of the container and sizes and places the
// content horizontally according to h.
func Leading(h Horizontal) Layout {
	return Layout{Horizontal: h, Vertical: FillVertical()}
}

// Trailing is like Leading. Use AutoHorizontal(AlignTrailing) for a
// sheet resting on the trailing edge.
func Trailing(h Horizontal) Layout {
	return Layout{Horizontal: h, Vertical: FillVertical()}
}

// Overlay sizes and places content on both axes.
func Overlay(h Horizontal, v Vertical) Layout {
	return Layout{Horizontal: h, Vertical: v}
}

// DefaultLayout is a full width sheet resting on the bottom edge.
var DefaultLayout = Bottom(AutoVertical(AlignBottom))

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeading:
		return "Leading"
	case AlignCenter:
		return "Center"
	case AlignTrailing:
		return "Trailing"
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	default:
		panic("unreachable")
	}
}

func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		panic("unreachable")
	}
}

func (h Horizontal) String() string {
	if h.Fill {
		return "Fill"
	}
	return "Automatic(" + h.Alignment.String() + ")"
}

func (v Vertical) String() string {
	if v.Fill {
		return "Fill"
	}
	return "Automatic(" + v.Alignment.String() + ")"
}

func (l Layout) String() string {
	return "(" + l.Horizontal.String() + ", " + l.Vertical.String() + ")"
}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package inset resolves the space a sheet keeps between itself and the
edges of its container.

Configured insets are either fixed (top, left, bottom, right) or
directional (top, leading, bottom, trailing). Both implement Convertible
and are resolved against a writing direction. Effective combines the
configured insets with the live margins of the container, such as the
safe area reported by the window.
*/
package inset

import (
	"gioui.org/io/system"
	"gioui.org/unit"

	"github.com/gio-sheet/sheet/edge"
)

// Insets are screen relative insets.
type Insets struct {
	Top, Left, Bottom, Right unit.Dp
}

// Directional are writing direction relative insets.
type Directional struct {
	Top, Leading, Bottom, Trailing unit.Dp
}

// Convertible is implemented by both inset flavors.
type Convertible interface {
	Fixed(dir system.TextDirection) Insets
	Directional(dir system.TextDirection) Directional
}

// Px are insets in pixels.
type Px struct {
	Top, Left, Bottom, Right float32
}

var (
	_ Convertible = Insets{}
	_ Convertible = Directional{}
)

// Uniform returns Insets with v on every edge.
func Uniform(v unit.Dp) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// Symmetric returns Insets with vertical on the top and bottom edges
// and horizontal on the left and right edges.
func Symmetric(vertical, horizontal unit.Dp) Insets {
	return Insets{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

// UniformDirectional returns Directional insets with v on every edge.
func UniformDirectional(v unit.Dp) Directional {
	return Directional{Top: v, Leading: v, Bottom: v, Trailing: v}
}

// SymmetricDirectional is like Symmetric for Directional insets.
func SymmetricDirectional(vertical, horizontal unit.Dp) Directional {
	return Directional{Top: vertical, Leading: horizontal, Bottom: vertical, Trailing: horizontal}
}

// Fixed returns in.
func (in Insets) Fixed(dir system.TextDirection) Insets {
	return in
}

// Directional swaps left and right for right-to-left text.
func (in Insets) Directional(dir system.TextDirection) Directional {
	if dir == system.RTL {
		return Directional{Top: in.Top, Leading: in.Right, Bottom: in.Bottom, Trailing: in.Left}
	}
	return Directional{Top: in.Top, Leading: in.Left, Bottom: in.Bottom, Trailing: in.Right}
}

// Fixed swaps leading and trailing for right-to-left text.
func (in Directional) Fixed(dir system.TextDirection) Insets {
	if dir == system.RTL {
		return Insets{Top: in.Top, Left: in.Trailing, Bottom: in.Bottom, Right: in.Leading}
	}
	return Insets{Top: in.Top, Left: in.Leading, Bottom: in.Bottom, Right: in.Trailing}
}

// Directional returns in.
func (in Directional) Directional(dir system.TextDirection) Directional {
	return in
}

// Union returns the larger of in and o on every edge.
func (in Insets) Union(o Insets) Insets {
	return Insets{
		Top:    max(in.Top, o.Top),
		Left:   max(in.Left, o.Left),
		Bottom: max(in.Bottom, o.Bottom),
		Right:  max(in.Right, o.Right),
	}
}

// Px converts in to pixels.
func (in Insets) Px(m unit.Metric) Px {
	s := m.PxPerDp
	if s == 0 {
		s = 1
	}
	return Px{
		Top:    float32(in.Top) * s,
		Left:   float32(in.Left) * s,
		Bottom: float32(in.Bottom) * s,
		Right:  float32(in.Right) * s,
	}
}

// Equal reports whether a and b are the same insets for left-to-right
// text.
func Equal(a, b Convertible) bool {
	return a.Fixed(system.LTR) == b.Fixed(system.LTR)
}

// Effective returns the insets to apply to a container with the given
// margins. Each edge is the larger of the configured inset and the
// container margin, except for edges in ignored which keep the
// configured inset. Leading and trailing edges are resolved against dir
// before comparing.
//
// Margins change with rotation and window insets, so the result must be
// computed again for every layout.
func Effective(configured Convertible, margins Insets, ignored []edge.Edge, dir system.TextDirection) Insets {
	in := configured.Fixed(dir)
	skip := edge.Resolve(ignored, dir)
	if !skip.Contains(edge.Top) {
		in.Top = max(in.Top, margins.Top)
	}
	if !skip.Contains(edge.Left) {
		in.Left = max(in.Left, margins.Left)
	}
	if !skip.Contains(edge.Right) {
		in.Right = max(in.Right, margins.Right)
	}
	if !skip.Contains(edge.Bottom) {
		in.Bottom = max(in.Bottom, margins.Bottom)
	}
	return in
}

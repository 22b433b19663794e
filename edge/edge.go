// SPDX-License-Identifier: Unlicense OR MIT

/*
Package edge identifies the edges of a rectangular surface.

Edges come in two flavors. A Fixed edge is relative to the screen: its
left is always the left. A Directional edge is relative to the writing
direction: its leading edge is the left edge for left-to-right text and
the right edge for right-to-left text. Top and bottom never depend on the
writing direction.

The writing direction is a system.TextDirection; system.RTL selects
right-to-left and every other direction is treated as left-to-right.
*/
package edge

import (
	"gioui.org/io/system"
)

// Edge is implemented by both edge flavors.
type Edge interface {
	// Fixed resolves the edge to a screen edge.
	Fixed(dir system.TextDirection) Fixed
	// Directional resolves the edge to a writing direction
	// relative edge.
	Directional(dir system.TextDirection) Directional
}

// Fixed is a screen relative edge.
type Fixed uint8

// Directional is a writing direction relative edge.
type Directional uint8

const (
	Top Fixed = iota
	Left
	Right
	Bottom
)

const (
	DirTop Directional = iota
	Leading
	Trailing
	DirBottom
)

var (
	_ Edge = Top
	_ Edge = Leading
)

func isRTL(dir system.TextDirection) bool {
	return dir == system.RTL
}

// Fixed returns e.
func (e Fixed) Fixed(dir system.TextDirection) Fixed {
	return e
}

// Directional maps left and right to leading or trailing depending
// on dir.
func (e Fixed) Directional(dir system.TextDirection) Directional {
	switch e {
	case Top:
		return DirTop
	case Left:
		if isRTL(dir) {
			return Trailing
		}
		return Leading
	case Right:
		if isRTL(dir) {
			return Leading
		}
		return Trailing
	case Bottom:
		return DirBottom
	default:
		panic("unreachable")
	}
}

// Fixed maps leading and trailing to left or right depending on dir.
func (e Directional) Fixed(dir system.TextDirection) Fixed {
	switch e {
	case DirTop:
		return Top
	case Leading:
		if isRTL(dir) {
			return Right
		}
		return Left
	case Trailing:
		if isRTL(dir) {
			return Left
		}
		return Right
	case DirBottom:
		return Bottom
	default:
		panic("unreachable")
	}
}

// Directional returns e.
func (e Directional) Directional(dir system.TextDirection) Directional {
	return e
}

// Equal reports whether a and b resolve to the same fixed edge under
// both writing directions. In particular Left is not equal to Leading,
// because Leading is the right edge for right-to-left text.
func Equal(a, b Edge) bool {
	for _, dir := range [...]system.TextDirection{system.LTR, system.RTL} {
		if a.Fixed(dir) != b.Fixed(dir) {
			return false
		}
	}
	return true
}

// IsHorizontal reports whether e resolves to the left or right
// edge.
func IsHorizontal(e Edge) bool {
	switch e.Fixed(system.LTR) {
	case Left, Right:
		return true
	default:
		return false
	}
}

func (e Fixed) String() string {
	switch e {
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	default:
		panic("unreachable")
	}
}

func (e Directional) String() string {
	switch e {
	case DirTop:
		return "Top"
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	case DirBottom:
		return "Bottom"
	default:
		panic("unreachable")
	}
}

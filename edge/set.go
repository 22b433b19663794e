// SPDX-License-Identifier: Unlicense OR MIT

package edge

import (
	"strings"

	"gioui.org/io/system"
)

// Set is a set of fixed edges.
type Set uint8

const (
	TopEdge Set = 1 << iota
	LeftEdge
	RightEdge
	BottomEdge
)

const (
	// None is the empty set.
	None Set = 0
	// All contains every edge.
	All = TopEdge | LeftEdge | RightEdge | BottomEdge
	// BottomEdges contains the left, right and bottom edges.
	BottomEdges = LeftEdge | RightEdge | BottomEdge
)

// SetOf returns the set containing exactly e.
func SetOf(e Fixed) Set {
	switch e {
	case Top:
		return TopEdge
	case Left:
		return LeftEdge
	case Right:
		return RightEdge
	case Bottom:
		return BottomEdge
	default:
		panic("unreachable")
	}
}

// Resolve returns the set of fixed edges that edges resolve to under
// dir.
func Resolve(edges []Edge, dir system.TextDirection) Set {
	var s Set
	for _, e := range edges {
		s |= SetOf(e.Fixed(dir))
	}
	return s
}

// Contains reports whether e is in s.
func (s Set) Contains(e Fixed) bool {
	return s&SetOf(e) != 0
}

// Edges returns the members of s, top to bottom, left to right.
func (s Set) Edges() []Edge {
	var edges []Edge
	for _, e := range [...]Fixed{Top, Left, Right, Bottom} {
		if s.Contains(e) {
			edges = append(edges, e)
		}
	}
	return edges
}

func (s Set) String() string {
	if s == None {
		return "None"
	}
	var names []string
	for _, e := range s.Edges() {
		names = append(names, e.(Fixed).String())
	}
	return strings.Join(names, "|")
}

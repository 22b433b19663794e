// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import (
	"fmt"
	"reflect"

	"gioui.org/io/system"

	"github.com/gio-sheet/sheet/edge"
	"github.com/gio-sheet/sheet/transition"
)

type animationKind uint8

const (
	systemAnimation animationKind = iota
	edgeAnimation
	customAnimation
)

// AnimationBehavior selects the transitions of a sheet. The zero
// value is System.
type AnimationBehavior struct {
	kind            animationKind
	appear, dismiss edge.Edge
	appearAnimated  transition.Animated
	dismissAnimated transition.Animated
}

// System slides the sheet in from and out across the bottom edge.
func System() AnimationBehavior {
	return AnimationBehavior{}
}

// Present slides the sheet in from appear and out across dismiss.
func Present(appear, dismiss edge.Edge) AnimationBehavior {
	return AnimationBehavior{kind: edgeAnimation, appear: appear, dismiss: dismiss}
}

// Custom uses appear and dismiss to run the transitions. Either may
// be nil to use the System transition in that direction.
func Custom(appear, dismiss transition.Animated) AnimationBehavior {
	return AnimationBehavior{kind: customAnimation, appearAnimated: appear, dismissAnimated: dismiss}
}

// CustomBoth uses a for both transitions.
func CustomBoth(a transition.Animated) AnimationBehavior {
	return Custom(a, a)
}

// Animated returns the transition for presenting or dismissing. The
// built-in transitions are new for every call.
func (b AnimationBehavior) Animated(presenting bool) transition.Animated {
	switch b.kind {
	case systemAnimation:
	case edgeAnimation:
		if presenting {
			return transition.NewController(true, b.appear)
		}
		return transition.NewController(false, b.dismiss)
	case customAnimation:
		a := b.dismissAnimated
		if presenting {
			a = b.appearAnimated
		}
		if a != nil {
			return a
		}
	default:
		panic("unreachable")
	}
	return transition.NewController(presenting, edge.Bottom)
}

// Equal reports whether b and o describe the same transitions. Edges
// are equal if they resolve to the same fixed edges for left-to-right
// text. Custom transitions are compared by identity; values of types
// that cannot be compared, such as structs holding funcs, are never
// equal.
func (b AnimationBehavior) Equal(o AnimationBehavior) bool {
	if b.kind != o.kind {
		return false
	}
	switch b.kind {
	case edgeAnimation:
		return b.appear.Fixed(system.LTR) == o.appear.Fixed(system.LTR) &&
			b.dismiss.Fixed(system.LTR) == o.dismiss.Fixed(system.LTR)
	case customAnimation:
		return sameAnimated(b.appearAnimated, o.appearAnimated) &&
			sameAnimated(b.dismissAnimated, o.dismissAnimated)
	}
	return true
}

func sameAnimated(a, b transition.Animated) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

func (b AnimationBehavior) String() string {
	switch b.kind {
	case systemAnimation:
		return "System"
	case edgeAnimation:
		return fmt.Sprintf("Present(%v, %v)", b.appear, b.dismiss)
	case customAnimation:
		return "Custom"
	default:
		panic("unreachable")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package transition animates sheets on and off screen.

The host of a transition, usually a sheet.Manager, implements Context to
give an animation access to the surfaces involved. Animated values
implement a transition; Controller is the built-in one, sliding the
surface across an edge of the container.

Coordinator lets other animations run alongside a transition, and
Animate falls back to a fixed duration animation when a coordinator
cannot schedule one.
*/
package transition

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/system"
)

// Key selects a participant of a transition.
type Key uint8

const (
	// From is the surface being dismissed.
	From Key = iota
	// To is the surface being presented.
	To
)

// View is a surface whose frame and transform are animated.
type View interface {
	// SetBounds sets the frame of the view in container
	// coordinates.
	SetBounds(r image.Rectangle)
	// SetTransform sets the transform applied on top of the
	// frame.
	SetTransform(t f32.Affine2D)
}

// Owner owns a View.
type Owner interface {
	// TextDirection is the writing direction of the owner
	// content.
	TextDirection() system.TextDirection
}

// Container holds the views of a transition.
type Container interface {
	Bounds() image.Rectangle
	Add(v View)
}

// Context is the state of a transition in progress.
type Context interface {
	View(k Key) View
	Controller(k Key) Owner
	// FinalFrame is the frame of c at the end of the transition.
	FinalFrame(c Owner) image.Rectangle
	Container() Container
	WasCancelled() bool
	// Complete reports the end of the transition.
	Complete(completed bool)
}

// Animated performs a transition.
type Animated interface {
	Duration(ctx Context) time.Duration
	// Animate starts the transition at frame time now.
	Animate(ctx Context, now time.Time)
	// Ended is called by the host after the transition completed
	// or was cancelled.
	Ended(completed bool)
}

// Interruptible transitions expose their animator, so the host can
// drive, pause or reverse it. InterruptibleAnimator returns the same
// animator for the duration of a transition.
type Interruptible interface {
	Animated
	InterruptibleAnimator(ctx Context) *Animator
}

func (k Key) String() string {
	switch k {
	case From:
		return "From"
	case To:
		return "To"
	default:
		panic("unreachable")
	}
}

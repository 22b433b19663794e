// SPDX-License-Identifier: Unlicense OR MIT

package transition

import (
	"image"
	"time"

	"gioui.org/f32"

	"github.com/gio-sheet/sheet/edge"
)

// Duration is the duration of a sheet transition.
const Duration = time.Second / 3

// Controller slides a surface in from an edge of the container when
// presenting, and out across it when dismissing.
type Controller struct {
	Edge       edge.Edge
	Presenting bool

	animator *Animator
}

var _ Interruptible = (*Controller)(nil)

// NewController returns a Controller for one presentation or
// dismissal.
func NewController(presenting bool, e edge.Edge) *Controller {
	return &Controller{Edge: e, Presenting: presenting}
}

// Duration implements Animated.
func (c *Controller) Duration(ctx Context) time.Duration {
	return Duration
}

// Animate implements Animated.
func (c *Controller) Animate(ctx Context, now time.Time) {
	c.InterruptibleAnimator(ctx).Start(now)
}

// Ended implements Animated.
func (c *Controller) Ended(completed bool) {
	c.animator = nil
}

// Active reports whether the controller holds an animator.
func (c *Controller) Active() bool {
	return c.animator != nil
}

// InterruptibleAnimator implements Interruptible. The first call of a
// transition creates the animator and moves the view to its start
// position; later calls return the same animator until the transition
// ends.
func (c *Controller) InterruptibleAnimator(ctx Context) *Animator {
	if c.animator != nil {
		return c.animator
	}
	key := From
	if c.Presenting {
		key = To
	}
	view := ctx.View(key)
	if view == nil {
		panic("transition: no " + key.String() + " view in transition context")
	}
	ctrl := ctx.Controller(key)
	if ctrl == nil {
		panic("transition: no " + key.String() + " controller in transition context")
	}
	frame := ctx.FinalFrame(ctrl)
	container := ctx.Container()
	if c.Presenting {
		container.Add(view)
		view.SetBounds(frame)
	}
	off := Offscreen(c.Edge.Fixed(ctrl.TextDirection()), frame, container.Bounds())
	from, to := f32.Point{}, off
	if c.Presenting {
		from, to = off, f32.Point{}
	}
	a := NewAnimator(Duration, EaseInOut)
	view.SetTransform(f32.Affine2D{}.Offset(from))
	a.AddAnimation(func(p float32) {
		view.SetTransform(f32.Affine2D{}.Offset(lerp(from, to, p)))
	})
	a.AddCompletion(func(Position) {
		c.animator = nil
		ctx.Complete(!ctx.WasCancelled())
	})
	c.animator = a
	return a
}

// Offscreen returns the translation that moves frame just outside
// container across e.
func Offscreen(e edge.Fixed, frame, container image.Rectangle) f32.Point {
	switch e {
	case edge.Top:
		return f32.Pt(0, float32(container.Min.Y-frame.Max.Y))
	case edge.Left:
		return f32.Pt(float32(container.Min.X-frame.Max.X), 0)
	case edge.Right:
		return f32.Pt(float32(container.Max.X-frame.Min.X), 0)
	case edge.Bottom:
		return f32.Pt(0, float32(container.Max.Y-frame.Min.Y))
	default:
		panic("unreachable")
	}
}

func lerp(a, b f32.Point, p float32) f32.Point {
	return a.Add(b.Sub(a).Mul(p))
}

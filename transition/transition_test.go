// SPDX-License-Identifier: Unlicense OR MIT

package transition

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/system"

	"github.com/gio-sheet/sheet/edge"
)

type mockView struct {
	bounds    image.Rectangle
	transform f32.Affine2D
}

func (v *mockView) SetBounds(r image.Rectangle) { v.bounds = r }
func (v *mockView) SetTransform(t f32.Affine2D) { v.transform = t }

type mockController struct {
	dir system.TextDirection
}

func (c *mockController) TextDirection() system.TextDirection { return c.dir }

var _ Owner = (*mockController)(nil)

type mockContainer struct {
	bounds image.Rectangle
	views  []View
}

func (c *mockContainer) Bounds() image.Rectangle { return c.bounds }
func (c *mockContainer) Add(v View) { c.views = append(c.views, v) }

type mockContext struct {
	views       map[Key]View
	controllers map[Key]Owner
	finalFrames map[Owner]image.Rectangle
	container   *mockContainer
	cancelled   bool
	completed   []bool
}

func newMockContext() *mockContext {
	to, from := new(mockController), new(mockController)
	return &mockContext{
		views:       map[Key]View{To: new(mockView), From: new(mockView)},
		controllers: map[Key]Owner{To: to, From: from},
		finalFrames: map[Owner]image.Rectangle{to: image.Rect(0, 0, 100, 100)},
		container:   &mockContainer{bounds: image.Rect(0, 0, 320, 480)},
	}
}

func (c *mockContext) View(k Key) View { return c.views[k] }
func (c *mockContext) Controller(k Key) Owner { return c.controllers[k] }
func (c *mockContext) FinalFrame(ctrl Owner) image.Rectangle {
	return c.finalFrames[ctrl]
}
func (c *mockContext) Container() Container { return c.container }
func (c *mockContext) WasCancelled() bool { return c.cancelled }
func (c *mockContext) Complete(ok bool) { c.completed = append(c.completed, ok) }

func offset(x, y float32) f32.Affine2D {
	return f32.Affine2D{}.Offset(f32.Pt(x, y))
}

// run updates a until it finishes.
func run(t *testing.T, a *Animator, start time.Time) {
	t.Helper()
	now := start
	for i := 0; a.Update(now); i++ {
		if i > 1000 {
			t.Fatal("animator did not finish")
		}
		now = now.Add(16 * time.Millisecond)
	}
}

func TestPresentingAddsViewToContainer(t *testing.T) {
	ctx := newMockContext()
	c := NewController(true, edge.Bottom)
	c.InterruptibleAnimator(ctx)
	to := ctx.View(To)
	if len(ctx.container.views) != 1 || ctx.container.views[0] != to {
		t.Fatalf("container views %v, expected the to view", ctx.container.views)
	}
	if got, exp := to.(*mockView).bounds, image.Rect(0, 0, 100, 100); got != exp {
		t.Errorf("to view bounds %v, expected %v", got, exp)
	}
}

func TestPresentingTransforms(t *testing.T) {
	tests := []struct {
		e   edge.Edge
		dir system.TextDirection
		exp f32.Affine2D
	}{
		{edge.Bottom, system.LTR, offset(0, 480)},
		{edge.Top, system.LTR, offset(0, -100)},
		{edge.Left, system.LTR, offset(-100, 0)},
		{edge.Right, system.LTR, offset(320, 0)},
		{edge.Leading, system.LTR, offset(-100, 0)},
		{edge.Leading, system.RTL, offset(320, 0)},
		{edge.Trailing, system.RTL, offset(-100, 0)},
	}
	for _, tc := range tests {
		ctx := newMockContext()
		ctx.controllers[To].(*mockController).dir = tc.dir
		c := NewController(true, tc.e)
		a := c.InterruptibleAnimator(ctx)
		view := ctx.View(To).(*mockView)
		if view.transform != tc.exp {
			t.Errorf("%v %v: initial transform %v, expected %v", tc.e, tc.dir, view.transform, tc.exp)
		}
		c.Animate(ctx, time.Time{})
		run(t, a, time.Time{})
		if view.transform != (f32.Affine2D{}) {
			t.Errorf("%v %v: final transform %v, expected identity", tc.e, tc.dir, view.transform)
		}
	}
}

func TestDismissingTransforms(t *testing.T) {
	ctx := newMockContext()
	from := ctx.controllers[From]
	ctx.finalFrames[from] = image.Rect(0, 0, 320, 200)
	c := NewController(false, edge.Bottom)
	a := c.InterruptibleAnimator(ctx)
	view := ctx.View(From).(*mockView)
	if view.transform != (f32.Affine2D{}) {
		t.Errorf("initial transform %v, expected identity", view.transform)
	}
	if len(ctx.container.views) != 0 {
		t.Errorf("dismissal added views %v to container", ctx.container.views)
	}
	c.Animate(ctx, time.Time{})
	run(t, a, time.Time{})
	if exp := offset(0, 480); view.transform != exp {
		t.Errorf("final transform %v, expected %v", view.transform, exp)
	}
}

func TestAnimationStarting(t *testing.T) {
	ctx := newMockContext()
	c := NewController(true, edge.Bottom)
	a := c.InterruptibleAnimator(ctx)
	if a.State() != Inactive {
		t.Errorf("state %v, expected Inactive", a.State())
	}
	c.Animate(ctx, time.Time{})
	if a.State() != Active || !a.Running() {
		t.Errorf("state %v, expected running Active", a.State())
	}
	if got := c.Duration(ctx); got != time.Second/3 {
		t.Errorf("duration %v", got)
	}
}

func TestAnimatorMemoization(t *testing.T) {
	ctx := newMockContext()
	c := NewController(true, edge.Bottom)
	a := c.InterruptibleAnimator(ctx)
	if b := c.InterruptibleAnimator(ctx); a != b {
		t.Fatal("second request returned a new animator")
	}
	if len(ctx.container.views) != 1 {
		t.Errorf("view added %d times", len(ctx.container.views))
	}
	start := time.Unix(0, 0)
	c.Animate(ctx, start)
	a.Update(start.Add(100 * time.Millisecond))
	// Interrupting mid flight must keep the interpolated state.
	if b := c.InterruptibleAnimator(ctx); a != b {
		t.Fatal("request during transition returned a new animator")
	}
	if a.Fraction() == 0 {
		t.Error("animator restarted")
	}
	run(t, a, start.Add(100*time.Millisecond))
	if c.Active() {
		t.Error("animator retained after completion")
	}
	if b := c.InterruptibleAnimator(ctx); a == b {
		t.Error("request after completion returned the old animator")
	}
	c.Ended(true)
	if c.Active() {
		t.Error("animator retained after Ended")
	}
}

func TestCompletionReportsCancellation(t *testing.T) {
	for _, cancelled := range []bool{false, true} {
		ctx := newMockContext()
		ctx.cancelled = cancelled
		c := NewController(true, edge.Bottom)
		a := c.InterruptibleAnimator(ctx)
		c.Animate(ctx, time.Time{})
		run(t, a, time.Time{})
		if len(ctx.completed) != 1 || ctx.completed[0] != !cancelled {
			t.Errorf("cancelled=%v: completions %v", cancelled, ctx.completed)
		}
	}
}

func TestMissingViewPanics(t *testing.T) {
	for _, key := range []Key{To, From} {
		ctx := newMockContext()
		delete(ctx.views, key)
		c := NewController(key == To, edge.Bottom)
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: missing view did not panic", key)
				}
			}()
			c.InterruptibleAnimator(ctx)
		}()
	}
	ctx := newMockContext()
	delete(ctx.controllers, To)
	defer func() {
		if recover() == nil {
			t.Error("missing controller did not panic")
		}
	}()
	NewController(true, edge.Top).InterruptibleAnimator(ctx)
}

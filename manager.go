// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/gio-sheet/sheet/frame"
	"github.com/gio-sheet/sheet/inset"
	"github.com/gio-sheet/sheet/overlay"
	"github.com/gio-sheet/sheet/transition"
)

// Manager presents one sheet at a time over the content of a window.
// Its Layout method lays out the content, the overlay and the sheet,
// and drives their transitions on frame time.
type Manager struct {
	Options Options
	// Margins are the margins of the container, typically the Insets
	// of app.FrameEvent.
	Margins inset.Insets

	pres          *Presentation
	sheet, behind surface
	container     container
	trans         *transitionState
	dismissQueued bool
	runners       []*transition.Animator
	now           time.Time
	lastSize      image.Point
}

var _ transition.Runner = (*Manager)(nil)

// surface is a view drawn by the Manager.
type surface struct {
	bounds    image.Rectangle
	transform f32.Affine2D
	added     bool
}

// container is the area of the Manager during a frame.
type container struct {
	gtx     layout.Context
	bounds  image.Rectangle
	margins inset.Insets
}

// transitionState is the context and coordinator of a transition.
type transitionState struct {
	m           *Manager
	presenting  bool
	animated    transition.Animated
	animator    *transition.Animator
	alongside   []func(p float32)
	completions []func()
	started     bool
	cancelled   bool
	done        bool
}

var (
	_ Container              = (*container)(nil)
	_ transition.Container   = (*container)(nil)
	_ transition.Owner       = (*container)(nil)
	_ transition.View        = (*surface)(nil)
	_ transition.Context     = (*transitionState)(nil)
	_ transition.Coordinator = (*transitionState)(nil)
)

// Present presents content with m.Options. It does nothing if a sheet
// is already presented.
func (m *Manager) Present(content *Content) {
	if m.pres != nil {
		return
	}
	m.sheet = surface{}
	m.behind = surface{added: true}
	m.pres = NewPresentation(content, &m.sheet, m.Options, m.Dismiss)
	m.pres.Runner = m
	m.trans = m.newTransition(true)
}

// Dismiss dismisses the presented sheet. A presentation in progress
// is reversed if its transition is interruptible, or else dismissed
// after it completes.
func (m *Manager) Dismiss() {
	t := m.trans
	switch {
	case m.pres == nil:
	case t == nil:
		m.trans = m.newTransition(false)
	case !t.presenting || t.cancelled:
	case !t.started:
		m.teardown()
	case t.animator != nil:
		t.cancelled = true
		t.animator.Reverse()
		for _, a := range m.runners {
			a.Reverse()
		}
	default:
		m.dismissQueued = true
	}
}

// Presented reports whether a sheet is presented or transitioning.
func (m *Manager) Presented() bool {
	return m.pres != nil
}

// Presentation returns the current presentation, or nil.
func (m *Manager) Presentation() *Presentation {
	return m.pres
}

// PressedOutside reports whether the area outside a sheet without
// dimming was pressed since the last call. The presses still reach the
// content behind the sheet.
func (m *Manager) PressedOutside(gtx layout.Context) bool {
	if m.pres == nil {
		return false
	}
	p, ok := m.pres.Overlay().(*overlay.Passthrough)
	return ok && p.Pressed(gtx)
}

// Run implements transition.Runner. The animator is started and
// updated on every frame until it finishes.
func (m *Manager) Run(a *transition.Animator) {
	a.Start(m.now)
	m.runners = append(m.runners, a)
}

// Layout lays out behind and the presented sheet over it, filling the
// maximum constraints.
func (m *Manager) Layout(gtx layout.Context, behind layout.Widget) layout.Dimensions {
	m.now = gtx.Now
	size := gtx.Constraints.Max
	resized := m.lastSize != size && m.lastSize != (image.Point{})
	m.lastSize = size
	p := m.pres
	if p == nil {
		return behind(gtx)
	}
	m.container = container{
		gtx:     gtx,
		bounds:  image.Rectangle{Max: size},
		margins: m.Margins,
	}
	m.behind.bounds = m.container.bounds
	p.SetContainer(&m.container)
	if resized {
		p.WillTransitionSize(nil)
	}
	if d, ok := p.Overlay().(*overlay.Dimming); ok && d.Tapped(gtx) {
		p.TapDimming()
	}
	p.ContainerWillLayout()
	if t := m.trans; t != nil && !t.started {
		m.begin(t)
	}
	m.advance(gtx)
	if m.pres == nil {
		return behind(gtx)
	}

	layoutBehind := func(gtx layout.Context) layout.Dimensions {
		defer op.Affine(m.behind.transform).Push(gtx.Ops).Pop()
		return behind(gtx)
	}
	if o := p.Overlay(); o != nil {
		o.Layout(gtx, m.container.bounds, layoutBehind)
	} else {
		layoutBehind(gtx)
	}
	if m.sheet.added {
		m.layoutSheet(gtx)
	}
	return layout.Dimensions{Size: size}
}

func (m *Manager) layoutSheet(gtx layout.Context) {
	s := &m.sheet
	defer op.Affine(s.transform).Push(gtx.Ops).Pop()
	defer m.pres.Options().Corners.Clip(s.bounds, gtx.Metric).Push(gtx.Ops).Pop()
	// Keep input on the sheet from reaching the overlay.
	event.Op(gtx.Ops, s)
	defer op.Offset(s.bounds.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(s.bounds.Size())
	m.pres.Content().Widget(gtx)
}

func (m *Manager) newTransition(presenting bool) *transitionState {
	return &transitionState{
		m:          m,
		presenting: presenting,
		animated:   m.Options.Animation.Animated(presenting),
	}
}

func (m *Manager) begin(t *transitionState) {
	t.started = true
	if t.presenting {
		m.pres.PresentationWillBegin(t)
	} else {
		m.pres.DismissalWillBegin(t)
	}
	if it, ok := t.animated.(transition.Interruptible); ok {
		a := it.InterruptibleAnimator(t)
		for _, f := range t.alongside {
			a.AddAnimation(f)
		}
		for _, f := range t.completions {
			a.AddCompletion(func(transition.Position) { f() })
		}
		t.alongside, t.completions = nil, nil
		t.animator = a
	}
	t.animated.Animate(t, m.now)
}

// advance updates the running animators and schedules another frame
// while any of them, or a transition, is in progress.
func (m *Manager) advance(gtx layout.Context) {
	if t := m.trans; t != nil && t.animator != nil {
		t.animator.Update(m.now)
	}
	runners := m.runners
	m.runners = nil
	for _, a := range runners {
		if a.Update(m.now) {
			m.runners = append(m.runners, a)
		}
	}
	if m.trans != nil || len(m.runners) > 0 {
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (m *Manager) finish(t *transitionState, completed bool) {
	if m.trans == t {
		m.trans = nil
	}
	if t.presenting != completed {
		m.teardown()
	}
	t.animated.Ended(completed)
	if m.dismissQueued {
		m.dismissQueued = false
		m.Dismiss()
	}
}

func (m *Manager) teardown() {
	if m.pres != nil {
		m.pres.SetContainer(nil)
	}
	m.pres = nil
	m.trans = nil
	m.dismissQueued = false
	m.sheet = surface{}
	m.behind = surface{}
}

func (s *surface) SetBounds(r image.Rectangle) { s.bounds = r }
func (s *surface) SetTransform(t f32.Affine2D) { s.transform = t }

func (c *container) Bounds() image.Rectangle { return c.bounds }
func (c *container) Margins() inset.Insets { return c.margins }
func (c *container) Metric() unit.Metric { return c.gtx.Metric }

func (c *container) TextDirection() system.TextDirection {
	return c.gtx.Locale.Direction
}

func (c *container) Measurer(w layout.Widget) frame.Measurer {
	return frame.WidgetMeasurer{Context: c.gtx, Widget: w}
}

func (c *container) Add(v transition.View) {
	if s, ok := v.(*surface); ok {
		s.added = true
	}
}

func (t *transitionState) View(k transition.Key) transition.View {
	if (k == transition.To) == t.presenting {
		return &t.m.sheet
	}
	return &t.m.behind
}

func (t *transitionState) Controller(k transition.Key) transition.Owner {
	if (k == transition.To) == t.presenting {
		return t.m.pres
	}
	return &t.m.container
}

func (t *transitionState) FinalFrame(c transition.Owner) image.Rectangle {
	if p, ok := c.(*Presentation); ok {
		return p.FrameOfPresentedView()
	}
	return t.m.container.bounds
}

func (t *transitionState) Container() transition.Container {
	return &t.m.container
}

func (t *transitionState) WasCancelled() bool {
	return t.cancelled
}

func (t *transitionState) Complete(completed bool) {
	if t.done {
		return
	}
	t.done = true
	t.m.finish(t, completed)
}

// AnimateAlongside implements transition.Coordinator. Only
// interruptible transitions accept animations.
func (t *transitionState) AnimateAlongside(animation func(p float32), completion func()) bool {
	if _, ok := t.animated.(transition.Interruptible); !ok {
		return false
	}
	if t.animator != nil {
		t.animator.AddAnimation(animation)
		t.animator.AddCompletion(func(transition.Position) { completion() })
		return true
	}
	t.alongside = append(t.alongside, animation)
	t.completions = append(t.completions, completion)
	return true
}

func (t *transitionState) Duration() time.Duration {
	return t.animated.Duration(t)
}

func (t *transitionState) Curve() transition.Curve {
	return transition.EaseInOut
}

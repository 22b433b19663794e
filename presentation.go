// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/gio-sheet/sheet/frame"
	"github.com/gio-sheet/sheet/inset"
	"github.com/gio-sheet/sheet/overlay"
	"github.com/gio-sheet/sheet/transition"
)

// Content is a widget presented in a sheet.
type Content struct {
	Widget layout.Widget
	// Width and Height are the preferred size of the content. The
	// preferred size is used only if both are positive; otherwise
	// the widget is measured.
	Width, Height unit.Dp
}

// Container is the area a sheet is presented in, as of the current
// frame.
type Container interface {
	Bounds() image.Rectangle
	// Margins are the insets of the container, such as the system
	// insets of a window.
	Margins() inset.Insets
	TextDirection() system.TextDirection
	Metric() unit.Metric
	// Measurer returns a Measurer for w.
	Measurer(w layout.Widget) frame.Measurer
}

// Presentation places a sheet in its container and manages the overlay
// behind it. The host calls its methods during layout and at the start
// of transitions.
type Presentation struct {
	// Runner runs dimming animations that cannot run alongside a
	// transition.
	Runner transition.Runner

	opts      Options
	content   *Content
	view      transition.View
	container Container
	overlay   overlay.Overlay
	dismiss   func()
}

var _ transition.Owner = (*Presentation)(nil)

// NewPresentation returns a Presentation of content. The frame of
// content is applied to view on every layout, and dismiss is called by
// the default tap handler.
func NewPresentation(content *Content, view transition.View, opts Options, dismiss func()) *Presentation {
	if opts.Insets == nil {
		opts.Insets = inset.Insets{}
	}
	return &Presentation{
		opts:    opts,
		content: content,
		view:    view,
		dismiss: dismiss,
	}
}

// Options returns the options of p.
func (p *Presentation) Options() Options {
	return p.opts
}

// Content returns the presented content.
func (p *Presentation) Content() *Content {
	return p.content
}

// SetContainer attaches p to c. A nil c detaches p.
func (p *Presentation) SetContainer(c Container) {
	p.container = c
}

// Overlay returns the overlay behind the sheet, or nil if there is
// none.
func (p *Presentation) Overlay() overlay.Overlay {
	return p.overlay
}

// TextDirection implements transition.Owner.
func (p *Presentation) TextDirection() system.TextDirection {
	if p.container == nil {
		return system.LTR
	}
	return p.container.TextDirection()
}

// EffectiveInsets returns the configured insets combined with the
// current container margins.
func (p *Presentation) EffectiveInsets() inset.Insets {
	if p.container == nil {
		return p.opts.Insets.Fixed(system.LTR)
	}
	return inset.Effective(p.opts.Insets, p.container.Margins(), p.opts.IgnoredEdgesForMargins, p.container.TextDirection())
}

// FrameOfPresentedView returns the frame of the sheet in container
// coordinates, or the zero rectangle if p is detached.
func (p *Presentation) FrameOfPresentedView() image.Rectangle {
	c := p.container
	if c == nil {
		return image.Rectangle{}
	}
	m := c.Metric()
	in := p.EffectiveInsets().Px(m)
	return frame.Frame(frame.FRect(c.Bounds()), in, p.opts.Layout, p.measured(), c.TextDirection())
}

func (p *Presentation) measured() frame.Content {
	mc := measuredContent{Measurer: p.container.Measurer(p.content.Widget)}
	if w, h := p.content.Width, p.content.Height; w > 0 && h > 0 {
		m := p.container.Metric()
		s := m.PxPerDp
		if s == 0 {
			s = 1
		}
		mc.preferred = f32.Pt(float32(w)*s, float32(h)*s)
	}
	return mc
}

type measuredContent struct {
	frame.Measurer
	preferred f32.Point
}

func (c measuredContent) PreferredSize() f32.Point {
	return c.preferred
}

// ContainerWillLayout applies the current frame to the sheet view.
func (p *Presentation) ContainerWillLayout() {
	if p.container == nil {
		return
	}
	p.view.SetBounds(p.FrameOfPresentedView())
}

// PresentationWillBegin creates the overlay and fades in dimming
// alongside the transition of c.
func (p *Presentation) PresentationWillBegin(c transition.Coordinator) {
	p.overlay = overlay.New(p.opts.DimmingAlpha)
	d, ok := p.overlay.(*overlay.Dimming)
	if !ok {
		return
	}
	d.Fraction = 0
	transition.Animate(c, func(f float32) { d.Fraction = f }, nil, p.Runner)
}

// DismissalWillBegin fades out dimming alongside the transition of c.
// The overlay is removed when the fade ends.
func (p *Presentation) DismissalWillBegin(c transition.Coordinator) {
	d, ok := p.overlay.(*overlay.Dimming)
	if !ok {
		return
	}
	transition.Animate(c, func(f float32) {
		d.Fraction = 1 - f
	}, func() {
		if p.overlay == overlay.Overlay(d) && d.Fraction == 0 {
			p.overlay = nil
		}
	}, p.Runner)
}

// WillTransitionSize lays out the sheet again alongside a change of
// the container size.
func (p *Presentation) WillTransitionSize(c transition.Coordinator) {
	transition.Animate(c, func(float32) { p.ContainerWillLayout() }, nil, p.Runner)
}

// ContentSizeDidChange lays out the sheet again after the preferred or
// natural size of the content changed.
func (p *Presentation) ContentSizeDidChange() {
	p.ContainerWillLayout()
}

// TapDimming delivers a tap on the dimming overlay to the tap handler.
func (p *Presentation) TapDimming() {
	h := p.opts.OnTap
	if h == nil {
		h = overlay.TapFunc(func(any) {
			if p.dismiss != nil {
				p.dismiss()
			}
		})
	}
	overlay.Dispatch(h, p.content)
}

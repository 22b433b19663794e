// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"image/color"

	"github.com/charmbracelet/log"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/gio-sheet/sheet"
	"github.com/gio-sheet/sheet/inset"
)

// UI is the state of the demo window.
type UI struct {
	log     *log.Logger
	theme   *material.Theme
	presets []preset
	manager sheet.Manager
	close   widget.Clickable
	shown   bool
}

type preset struct {
	Preset
	opts   sheet.Options
	button widget.Clickable
}

var sheetBg = color.NRGBA{R: 0xf4, G: 0xf1, B: 0xfa, A: 0xff}

func newUI(cfg Config, logger *log.Logger) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u := &UI{log: logger, theme: th}
	for _, p := range cfg.Presets {
		// Presets are validated by loadConfig.
		opts, _ := p.Options()
		u.presets = append(u.presets, preset{Preset: p, opts: opts})
	}
	return u
}

func (u *UI) run(ctx context.Context) error {
	w := new(app.Window)
	w.Option(app.Title("Sheets"), app.Size(unit.Dp(420), unit.Dp(720)))
	go func() {
		<-ctx.Done()
		w.Perform(system.ActionClose)
	}()
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				return e.Err
			}
			return ctx.Err()
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.manager.Margins = inset.Insets{
				Top:    e.Insets.Top,
				Left:   e.Insets.Left,
				Bottom: e.Insets.Bottom,
				Right:  e.Insets.Right,
			}
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// Layout handles input and lays out the window.
func (u *UI) Layout(gtx layout.Context) layout.Dimensions {
	for i := range u.presets {
		p := &u.presets[i]
		if p.button.Clicked(gtx) {
			u.present(p)
		}
	}
	if u.manager.PressedOutside(gtx) {
		u.log.Debug("pressed outside sheet")
	}
	if u.close.Clicked(gtx) {
		u.log.Debug("close clicked")
		u.manager.Dismiss()
	}
	dims := u.manager.Layout(gtx, u.layoutPresets)
	if shown := u.manager.Presented(); shown != u.shown {
		u.shown = shown
		if !shown {
			u.log.Info("sheet dismissed")
		}
	}
	return dims
}

func (u *UI) present(p *preset) {
	if u.manager.Presented() {
		u.log.Warn("sheet already presented", "preset", p.Name)
		return
	}
	u.manager.Options = p.opts
	u.manager.Present(&sheet.Content{
		Widget: u.layoutSheet,
		Width:  unit.Dp(p.Width),
		Height: unit.Dp(p.Height),
	})
	u.log.Info("present sheet", "preset", p.Name, "layout", p.opts.Layout, "animation", p.opts.Animation)
}

func (u *UI) layoutPresets(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, u.theme.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	children := []layout.FlexChild{
		layout.Rigid(material.H5(u.theme, "Sheets").Layout),
	}
	for i := range u.presets {
		p := &u.presets[i]
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: 12}.Layout(gtx, material.Button(u.theme, &p.button, p.Name).Layout)
		}))
	}
	layout.UniformInset(24).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (u *UI) layoutSheet(gtx layout.Context) layout.Dimensions {
	return layout.Background{}.Layout(gtx, fill(sheetBg), func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(24).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.H6(u.theme, "Sheet").Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Top: 8, Bottom: 16}.Layout(gtx, material.Body1(u.theme, "Tap outside or press Close.").Layout)
				}),
				layout.Rigid(material.Button(u.theme, &u.close, "Close").Layout),
			)
		})
	})
}

func fill(c color.NRGBA) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		paint.FillShape(gtx.Ops, c, clip.Rect{Max: gtx.Constraints.Min}.Op())
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"gioui.org/unit"

	"github.com/gio-sheet/sheet"
	"github.com/gio-sheet/sheet/edge"
	"github.com/gio-sheet/sheet/frame"
	"github.com/gio-sheet/sheet/inset"
)

// defaultConfig is used when no configuration file is given.
const defaultConfig = `
[[preset]]
name = "Bottom sheet"
layout = "bottom"
dimming = 0.5
corners = "top"
corner_radius = 16.0

[[preset]]
name = "Leading drawer"
layout = "leading"
dimming = 0.3
corners = "none"
insets = 0.0
ignore_margins = ["top", "bottom"]
appear = "leading"
dismiss = "leading"

[[preset]]
name = "Centered card"
layout = "center"
dimming = 0.6
width = 280.0
height = 180.0
appear = "top"
dismiss = "bottom"

[[preset]]
name = "Trailing panel without dimming"
layout = "trailing"
appear = "trailing"
dismiss = "trailing"
`

// Config is a list of sheet presets.
type Config struct {
	Presets []Preset `toml:"preset"`
}

// Preset describes the options of one sheet. Omitted fields take the
// values of sheet.DefaultOptions, except dimming: a preset without
// dimming passes input through to the content behind the sheet.
type Preset struct {
	Name          string   `toml:"name"`
	Layout        string   `toml:"layout"`
	Dimming       *float32 `toml:"dimming"`
	Corners       string   `toml:"corners"`
	CornerRadius  *float32 `toml:"corner_radius"`
	Insets        *float32 `toml:"insets"`
	IgnoreMargins []string `toml:"ignore_margins"`
	Appear        string   `toml:"appear"`
	Dismiss       string   `toml:"dismiss"`
	Width         float32  `toml:"width"`
	Height        float32  `toml:"height"`
}

// parseConfig decodes a configuration and rejects unknown keys.
func parseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", keys[0].String())
	}
	if len(cfg.Presets) == 0 {
		return Config{}, errors.New("no presets")
	}
	for i, p := range cfg.Presets {
		if _, err := p.Options(); err != nil {
			return Config{}, fmt.Errorf("preset %d (%s): %w", i+1, p.Name, err)
		}
	}
	return cfg, nil
}

// loadConfig reads the configuration at path, or the built-in
// configuration if path is empty.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return parseConfig(defaultConfig)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := parseConfig(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts p to sheet options.
func (p Preset) Options() (sheet.Options, error) {
	opts := sheet.DefaultOptions()
	opts.DimmingAlpha = p.Dimming
	if p.Dimming != nil && (*p.Dimming < 0 || *p.Dimming > 1) {
		return opts, fmt.Errorf("dimming %v out of range [0, 1]", *p.Dimming)
	}
	if p.Layout != "" {
		l, err := parseLayout(p.Layout)
		if err != nil {
			return opts, err
		}
		opts.Layout = l
	}
	if p.Insets != nil {
		opts.Insets = inset.Uniform(unit.Dp(*p.Insets))
	}
	radius := opts.Corners.Radius
	if p.CornerRadius != nil {
		radius = unit.Dp(*p.CornerRadius)
	}
	mask := opts.Corners.Mask
	if p.Corners != "" {
		m, err := parseCorners(p.Corners)
		if err != nil {
			return opts, err
		}
		mask = m
	}
	opts.Corners = sheet.RoundSome(radius, mask)
	for _, s := range p.IgnoreMargins {
		e, err := parseEdge(s)
		if err != nil {
			return opts, err
		}
		opts.IgnoredEdgesForMargins = append(opts.IgnoredEdgesForMargins, e)
	}
	if p.Appear != "" || p.Dismiss != "" {
		appear, dismiss := edge.Edge(edge.Bottom), edge.Edge(edge.Bottom)
		var err error
		if p.Appear != "" {
			if appear, err = parseEdge(p.Appear); err != nil {
				return opts, err
			}
		}
		if p.Dismiss != "" {
			if dismiss, err = parseEdge(p.Dismiss); err != nil {
				return opts, err
			}
		}
		opts.Animation = sheet.Present(appear, dismiss)
	}
	return opts, nil
}

func parseLayout(s string) (frame.Layout, error) {
	switch strings.ToLower(s) {
	case "bottom":
		return frame.Bottom(frame.AutoVertical(frame.AlignBottom)), nil
	case "top":
		return frame.Top(frame.AutoVertical(frame.AlignTop)), nil
	case "leading":
		return frame.Leading(frame.AutoHorizontal(frame.AlignLeading)), nil
	case "trailing":
		return frame.Trailing(frame.AutoHorizontal(frame.AlignTrailing)), nil
	case "center":
		return frame.Overlay(frame.AutoHorizontal(frame.AlignCenter), frame.AutoVertical(frame.AlignMiddle)), nil
	case "fill":
		return frame.Overlay(frame.FillHorizontal(), frame.FillVertical()), nil
	default:
		return frame.Layout{}, fmt.Errorf("unknown layout %q", s)
	}
}

func parseEdge(s string) (edge.Edge, error) {
	switch strings.ToLower(s) {
	case "top":
		return edge.Top, nil
	case "bottom":
		return edge.Bottom, nil
	case "left":
		return edge.Left, nil
	case "right":
		return edge.Right, nil
	case "leading":
		return edge.Leading, nil
	case "trailing":
		return edge.Trailing, nil
	default:
		return nil, fmt.Errorf("unknown edge %q", s)
	}
}

func parseCorners(s string) (sheet.CornerMask, error) {
	switch strings.ToLower(s) {
	case "none":
		return 0, nil
	case "all":
		return sheet.AllCorners, nil
	case "top":
		return sheet.TopCorners, nil
	case "bottom":
		return sheet.BottomCorners, nil
	case "left":
		return sheet.LeftCorners, nil
	case "right":
		return sheet.RightCorners, nil
	default:
		return 0, fmt.Errorf("unknown corners %q", s)
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/io/system"

	"github.com/gio-sheet/sheet"
	"github.com/gio-sheet/sheet/edge"
	"github.com/gio-sheet/sheet/frame"
	"github.com/gio-sheet/sheet/inset"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Presets) != 4 {
		t.Fatalf("%d presets, expected 4", len(cfg.Presets))
	}
	opts, err := cfg.Presets[0].Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Corners != sheet.RoundSome(16, sheet.TopCorners) {
		t.Errorf("corners %+v", opts.Corners)
	}
	if opts.DimmingAlpha == nil || *opts.DimmingAlpha != 0.5 {
		t.Errorf("dimming %v", opts.DimmingAlpha)
	}
	last, err := cfg.Presets[3].Options()
	if err != nil {
		t.Fatal(err)
	}
	if last.DimmingAlpha != nil {
		t.Error("preset without dimming is dimmed")
	}
	if !last.Animation.Equal(sheet.Present(edge.Trailing, edge.Trailing)) {
		t.Errorf("animation %v", last.Animation)
	}
}

func TestPresetOptions(t *testing.T) {
	alpha := float32(0.25)
	radius := float32(4)
	insets := float32(8)
	p := Preset{
		Layout:        "center",
		Dimming:       &alpha,
		Corners:       "bottom",
		CornerRadius:  &radius,
		Insets:        &insets,
		IgnoreMargins: []string{"Leading", "bottom"},
		Appear:        "left",
	}
	opts, err := p.Options()
	if err != nil {
		t.Fatal(err)
	}
	exp := frame.Overlay(frame.AutoHorizontal(frame.AlignCenter), frame.AutoVertical(frame.AlignMiddle))
	if opts.Layout != exp {
		t.Errorf("layout %v, expected %v", opts.Layout, exp)
	}
	if *opts.DimmingAlpha != 0.25 {
		t.Errorf("dimming %v", *opts.DimmingAlpha)
	}
	if opts.Corners != sheet.RoundSome(4, sheet.BottomCorners) {
		t.Errorf("corners %+v", opts.Corners)
	}
	if !inset.Equal(opts.Insets, inset.Uniform(8)) {
		t.Errorf("insets %+v", opts.Insets)
	}
	ignored := edge.Resolve(opts.IgnoredEdgesForMargins, system.LTR)
	if !ignored.Contains(edge.Bottom) || len(opts.IgnoredEdgesForMargins) != 2 {
		t.Errorf("ignored edges %v", opts.IgnoredEdgesForMargins)
	}
	if !opts.Animation.Equal(sheet.Present(edge.Left, edge.Bottom)) {
		t.Errorf("animation %v", opts.Animation)
	}
}

func TestPresetDefaults(t *testing.T) {
	opts, err := Preset{}.Options()
	if err != nil {
		t.Fatal(err)
	}
	def := sheet.DefaultOptions()
	if opts.Layout != def.Layout || opts.Corners != def.Corners || !opts.Animation.Equal(def.Animation) {
		t.Errorf("options %+v differ from defaults", opts)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{"empty", ``, "no presets"},
		{"syntax", `[[preset]`, ""},
		{"unknown key", "[[preset]]\nname = \"a\"\ncolour = \"red\"\n", "unknown key"},
		{"layout", "[[preset]]\nlayout = \"diagonal\"\n", "unknown layout"},
		{"edge", "[[preset]]\nappear = \"middle\"\n", "unknown edge"},
		{"corners", "[[preset]]\ncorners = \"some\"\n", "unknown corners"},
		{"dimming", "[[preset]]\ndimming = 1.5\n", "out of range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(tc.data)
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), tc.err) {
				t.Errorf("error %q, expected %q", err, tc.err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	data := "[[preset]]\nname = \"Top\"\nlayout = \"top\"\nappear = \"top\"\ndismiss = \"top\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Presets) != 1 || cfg.Presets[0].Name != "Top" {
		t.Errorf("presets %+v", cfg.Presets)
	}
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error %v", err)
	}
}

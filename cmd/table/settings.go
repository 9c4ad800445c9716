// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/table/settings.go
// Summary: Effective settings: config file values overridden by flags.

package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/framegrace/texeltable/config"
	"github.com/framegrace/texeltable/internal/source"
	"github.com/framegrace/texeltable/tablefmt"
)

// settings mirrors the config file; every field can also come from a flag.
type settings struct {
	Border     string
	Crossing   string
	Width      int
	AutoWidth  bool
	Weights    string
	BorderMode bool

	Delimiter    string
	TabLength    int
	ExpandTabs   bool
	MaxLineBytes int

	HandleANSI  bool
	Theme       string
	HeaderColor string
	BorderColor string
}

func settingsFromConfig(cfg config.Config) settings {
	def := tablefmt.DefaultOptions()
	return settings{
		Border:     cfg.GetString("layout", "border", def.Border.String()),
		Crossing:   cfg.GetString("layout", "crossing", def.Crossing.String()),
		Width:      cfg.GetInt("layout", "width", def.Width),
		AutoWidth:  cfg.GetBool("layout", "auto_width", false),
		Weights:    cfg.GetString("layout", "weights", ""),
		BorderMode: cfg.GetBool("layout", "border_mode", false),

		Delimiter:    cfg.GetString("input", "delimiter", string(def.Delimiter)),
		TabLength:    cfg.GetInt("input", "tab_length", def.TabLength),
		ExpandTabs:   cfg.GetBool("input", "expand_tabs", false),
		MaxLineBytes: cfg.GetInt("input", "max_line_bytes", source.DefaultMaxLineBytes),

		HandleANSI:  cfg.GetBool("color", "handle_ansi", false),
		Theme:       cfg.GetString("color", "theme", ""),
		HeaderColor: cfg.GetString("color", "header_color", ""),
		BorderColor: cfg.GetString("color", "border_color", ""),
	}
}

// store writes s into cfg using the config file's layout.
func (s settings) store(cfg config.Config) {
	cfg.Set("layout", "border", s.Border)
	cfg.Set("layout", "crossing", s.Crossing)
	cfg.Set("layout", "width", s.Width)
	cfg.Set("layout", "auto_width", s.AutoWidth)
	cfg.Set("layout", "weights", s.Weights)
	cfg.Set("layout", "border_mode", s.BorderMode)
	cfg.Set("input", "delimiter", s.Delimiter)
	cfg.Set("input", "tab_length", s.TabLength)
	cfg.Set("input", "expand_tabs", s.ExpandTabs)
	cfg.Set("input", "max_line_bytes", s.MaxLineBytes)
	cfg.Set("color", "handle_ansi", s.HandleANSI)
	cfg.Set("color", "theme", s.Theme)
	cfg.Set("color", "header_color", s.HeaderColor)
	cfg.Set("color", "border_color", s.BorderColor)
}

// widthValue implements flag.Value for "-w N|auto".
type widthValue struct {
	n    *int
	auto *bool
}

func (v widthValue) String() string {
	if v.auto == nil || v.n == nil {
		return ""
	}
	if *v.auto {
		return "auto"
	}
	return strconv.Itoa(*v.n)
}

func (v widthValue) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "auto") {
		*v.auto = true
		return nil
	}
	n, err := tablefmt.ParseWidth(s)
	if err != nil {
		return err
	}
	*v.n = n
	*v.auto = false
	return nil
}

// bind registers the settings flags on fs, writing into s.
func (s *settings) bind(fs *flag.FlagSet) {
	fs.StringVar(&s.Border, "s", s.Border, "border `style`: ascii, single or double")
	fs.StringVar(&s.Crossing, "x", s.Crossing, "crossing `code` (outer×inner): aa, ss, sd, ds or dd")
	fs.Var(widthValue{n: &s.Width, auto: &s.AutoWidth}, "w", "total `width` in columns, or auto for the terminal width")
	fs.StringVar(&s.Delimiter, "d", s.Delimiter, "field `delimiter`; may be quoted, \\t for tab")
	fs.BoolVar(&s.BorderMode, "B", s.BorderMode, "border mode: frame each line as a single column")
	fs.BoolVar(&s.ExpandTabs, "t", s.ExpandTabs, "expand tabs to spaces")
	fs.BoolVar(&s.HandleANSI, "a", s.HandleANSI, "pass ANSI colors through and emphasize the header")
	fs.StringVar(&s.Weights, "r", s.Weights, "column width `ratios`, e.g. 2:1:1")
	fs.StringVar(&s.Theme, "theme", s.Theme, "Chroma style `name` supplying the header color (needs -a)")
	fs.StringVar(&s.HeaderColor, "header-color", s.HeaderColor, "header `color` name or #rrggbb (needs -a)")
	fs.StringVar(&s.BorderColor, "border-color", s.BorderColor, "border `color` name or #rrggbb (needs -a)")
	fs.IntVar(&s.MaxLineBytes, "max-line", s.MaxLineBytes, "longest input line in `bytes`; longer lines are truncated")
}

// overlay copies into s every settings flag that was set on the command
// line, taking the value from cli.
func (s *settings) overlay(fs *flag.FlagSet, cli settings) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s":
			s.Border = cli.Border
		case "x":
			s.Crossing = cli.Crossing
		case "w":
			s.Width, s.AutoWidth = cli.Width, cli.AutoWidth
		case "d":
			s.Delimiter = cli.Delimiter
		case "B":
			s.BorderMode = cli.BorderMode
		case "t":
			s.ExpandTabs = cli.ExpandTabs
		case "a":
			s.HandleANSI = cli.HandleANSI
		case "r":
			s.Weights = cli.Weights
		case "theme":
			s.Theme = cli.Theme
		case "header-color":
			s.HeaderColor = cli.HeaderColor
		case "border-color":
			s.BorderColor = cli.BorderColor
		case "max-line":
			s.MaxLineBytes = cli.MaxLineBytes
		}
	})
}

// options converts the settings into rendering options. The width must
// already be resolved when AutoWidth is set.
func (s settings) options() (tablefmt.Options, error) {
	opts := tablefmt.DefaultOptions()
	var err error
	if opts.Border, err = tablefmt.ParseBorderStyle(s.Border); err != nil {
		return opts, err
	}
	if opts.Crossing, err = tablefmt.ParseCrossingStyle(s.Crossing); err != nil {
		return opts, err
	}
	if opts.Delimiter, err = tablefmt.ParseDelimiter(s.Delimiter); err != nil {
		return opts, err
	}
	if opts.Weights, err = tablefmt.ParseWeights(s.Weights); err != nil {
		return opts, err
	}
	opts.Width = s.Width
	opts.TabLength = s.TabLength
	opts.BorderMode = s.BorderMode
	opts.ExpandTabs = s.ExpandTabs
	opts.HandleANSI = s.HandleANSI

	if s.Theme != "" {
		if opts.Palette.Header, err = tablefmt.ThemeHeaderSGR(s.Theme); err != nil {
			return opts, err
		}
	}
	if s.HeaderColor != "" {
		if opts.Palette.Header, err = tablefmt.ColorSGR(s.HeaderColor); err != nil {
			return opts, err
		}
	}
	if s.BorderColor != "" {
		if opts.Palette.Border, err = tablefmt.ColorSGR(s.BorderColor); err != nil {
			return opts, err
		}
	}
	if !opts.HandleANSI && (opts.Palette.Header != "" || opts.Palette.Border != "") {
		log.Printf("Table: colors are only written with ANSI handling on (-a)")
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("settings: %w", err)
	}
	return opts, nil
}

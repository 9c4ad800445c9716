// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package tablefmt renders delimiter-separated text as a box-drawn table.
// The column layout is planned once from the first data line; every later
// line is split, measured by display width and streamed into cells of the
// planned size, so each emitted line has exactly the same width.
package tablefmt

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is wrapped by every option validation failure.
var ErrInvalidOption = errors.New("invalid option")

const (
	// MinColumnWidth is the narrowest column the planner will produce.
	MinColumnWidth = 3

	DefaultWidth     = 80
	DefaultTabLength = 8
	DefaultDelimiter = ','
)

// Options is the complete rendering configuration. It is built once before
// any input is read and passed by value; nothing in this package keeps
// mutable package-level state.
type Options struct {
	Delimiter  rune
	Width      int // requested total width in display columns
	TabLength  int
	Border     BorderStyle
	Crossing   CrossingStyle
	BorderMode bool // frame the text as a single column, never split
	ExpandTabs bool
	HandleANSI bool // pass SGR sequences through and emphasize the header
	Weights    []int
	Palette    Palette
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		Width:     DefaultWidth,
		TabLength: DefaultTabLength,
		Border:    BorderDouble,
		Crossing:  CrossDoubleSingle,
	}
}

// Validate reports the first option that cannot be rendered.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidOption, o.Width)
	case o.TabLength <= 0:
		return fmt.Errorf("%w: tab length must be positive, got %d", ErrInvalidOption, o.TabLength)
	case !o.Border.valid():
		return fmt.Errorf("%w: unknown border style %d", ErrInvalidOption, o.Border)
	case !o.Crossing.valid():
		return fmt.Errorf("%w: unknown crossing style %d", ErrInvalidOption, o.Crossing)
	}
	if err := checkDelimiter(o.Delimiter); err != nil {
		return err
	}
	for i, w := range o.Weights {
		if w <= 0 {
			return fmt.Errorf("%w: weight %d must be positive, got %d", ErrInvalidOption, i+1, w)
		}
	}
	return nil
}

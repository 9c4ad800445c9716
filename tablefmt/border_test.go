// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import (
	"strings"
	"testing"
)

func TestPaintBorders(t *testing.T) {
	p := planColumns(2, 20, nil)
	tests := []struct {
		name     string
		border   BorderStyle
		crossing CrossingStyle
		top      string
		bottom   string
	}{
		{"ascii", BorderASCII, CrossASCII, "+--------+---------+", "+--------+---------+"},
		{"single", BorderSingle, CrossSingle, "┌────────┬─────────┐", "└────────┴─────────┘"},
		{"double outer single inner", BorderDouble, CrossDoubleSingle, "╔════════╤═════════╗", "╚════════╧═════════╝"},
		{"double", BorderDouble, CrossDouble, "╔════════╦═════════╗", "╚════════╩═════════╝"},
		{"single outer double inner", BorderSingle, CrossSingleDouble, "┌────────╥─────────┐", "└────────╨─────────┘"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Border = tt.border
			opts.Crossing = tt.crossing
			if got := string(PaintTop(nil, p, opts)); got != tt.top+"\n" {
				t.Errorf("top = %q, want %q", got, tt.top)
			}
			if got := string(PaintBottom(nil, p, opts)); got != tt.bottom+"\n" {
				t.Errorf("bottom = %q, want %q", got, tt.bottom)
			}
		})
	}
}

func TestPaintBorderSingleColumnHasNoCrossings(t *testing.T) {
	opts := DefaultOptions()
	p := planColumns(1, 12, nil)
	top := string(PaintTop(nil, p, opts))
	if top != "╔══════════╗\n" {
		t.Errorf("top = %q", top)
	}
	if strings.ContainsRune(top, '╤') {
		t.Errorf("single column border contains a crossing")
	}
}

func TestPaintBorderMatchesBoundaries(t *testing.T) {
	opts := DefaultOptions()
	opts.Border = BorderASCII
	opts.Crossing = CrossASCII
	p := planColumns(4, 47, []int{3, 1, 4, 1})
	line := []rune(strings.TrimSuffix(string(PaintTop(nil, p, opts)), "\n"))
	if len(line) != p.Total {
		t.Fatalf("border is %d wide, plan says %d", len(line), p.Total)
	}
	var crossings []int
	for i, r := range line[1 : len(line)-1] {
		if r == '+' {
			crossings = append(crossings, i+1)
		}
	}
	want := p.Boundaries()
	if len(crossings) != len(want) {
		t.Fatalf("crossings at %v, boundaries %v", crossings, want)
	}
	for i := range want {
		if crossings[i] != want[i] {
			t.Fatalf("crossings at %v, boundaries %v", crossings, want)
		}
	}
}

func TestPaintBorderColor(t *testing.T) {
	opts := DefaultOptions()
	opts.Border = BorderASCII
	opts.Crossing = CrossASCII
	opts.Palette.Border = "\x1b[38;2;1;2;3m"
	p := planColumns(1, 5, nil)

	if got := string(PaintTop(nil, p, opts)); got != "+---+\n" {
		t.Errorf("palette applied without passthrough: %q", got)
	}
	opts.HandleANSI = true
	if got := string(PaintTop(nil, p, opts)); got != "\x1b[38;2;1;2;3m+---+\x1b[0m\n" {
		t.Errorf("colored top = %q", got)
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import "testing"

func TestRuneWidth(t *testing.T) {
	o := NewOracle(false)
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'ж', 1},
		{'é', 1},
		{'中', 2},
		{'가', 2},
		{'́', 0}, // combining acute
		{'\t', 1},
		{esc, 1},
	}
	for _, tt := range tests {
		if got := o.RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%U) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestOracleSGR(t *testing.T) {
	tests := []struct {
		name string
		ansi bool
		in   string
		want int
	}{
		{"plain", true, "hello", 5},
		{"color", true, "\x1b[31mred\x1b[0m", 3},
		{"bare reset", true, "\x1b[m", 0},
		{"params", true, "\x1b[1;38;2;10;20;30mX", 1},
		{"unterminated", true, "\x1b[31", 4},
		{"wrong final", true, "\x1b[31x", 5},
		{"not csi", true, "\x1bXm", 3},
		{"passthrough off", false, "\x1b[31mred", 8},
		{"wide inside color", true, "\x1b[32m中文\x1b[0m", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOracle(tt.ansi)
			if got := o.Width([]rune(tt.in)); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestOracleNextRollback(t *testing.T) {
	o := NewOracle(true)
	s := []rune("\x1b[12;x")
	var widths []int
	for len(s) > 0 {
		n, w, sgr := o.Next(s)
		if sgr {
			t.Fatalf("unterminated sequence reported as SGR")
		}
		if n != 1 {
			t.Fatalf("consumed %d scalars, want 1", n)
		}
		widths = append(widths, w)
		s = s[n:]
	}
	if len(widths) != 6 {
		t.Fatalf("got %d segments, want 6", len(widths))
	}
	for i, w := range widths {
		if w != 1 {
			t.Errorf("segment %d width %d, want 1", i, w)
		}
	}
}

func TestPrintable(t *testing.T) {
	if got := Printable('\t'); got != ' ' {
		t.Errorf("Printable(tab) = %q", got)
	}
	if got := Printable(esc); got != ' ' {
		t.Errorf("Printable(ESC) = %q", got)
	}
	if got := Printable('中'); got != '中' {
		t.Errorf("Printable(中) = %q", got)
	}
}

func TestStripSGR(t *testing.T) {
	in := "\x1b[1mbold\x1b[22m and \x1b[31" + "m"
	if got := StripSGR(in); got != "bold and " {
		t.Errorf("StripSGR = %q", got)
	}
	if got := StripSGR("\x1b[31x"); got != "\x1b[31x" {
		t.Errorf("broken sequence should survive, got %q", got)
	}
}

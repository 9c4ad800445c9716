// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import "github.com/mattn/go-runewidth"

const esc = '\x1b'

// Oracle measures display width. Widths come from a fixed runewidth
// condition so output does not depend on the caller's locale.
type Oracle struct {
	ansi bool
	cond *runewidth.Condition
}

// NewOracle returns an oracle. With ansi set, SGR sequences are measured as
// zero width and passed through.
func NewOracle(ansi bool) *Oracle {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return &Oracle{ansi: ansi, cond: cond}
}

// RuneWidth returns 0, 1 or 2. Control scalars are charged one column; they
// are emitted as a space (see Printable).
func (o *Oracle) RuneWidth(r rune) int {
	if isControl(r) {
		return 1
	}
	w := o.cond.RuneWidth(r)
	if w > 2 {
		w = 2
	}
	return w
}

// Printable maps a scalar to what is written to the terminal.
func Printable(r rune) rune {
	if isControl(r) {
		return ' '
	}
	return r
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r <= 0x9f)
}

// Next measures the segment starting at s[0]. It returns the number of
// scalars consumed, their combined width and whether they form an SGR
// sequence. An ESC that does not open a complete sequence consumes only
// itself, so the scalars after it are charged individually on later calls.
func (o *Oracle) Next(s []rune) (n, width int, sgr bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	if o.ansi && s[0] == esc {
		if n := sgrLen(s); n > 0 {
			return n, 0, true
		}
	}
	return 1, o.RuneWidth(s[0]), false
}

// Width returns the display width of s.
func (o *Oracle) Width(s []rune) int {
	total := 0
	for len(s) > 0 {
		n, w, _ := o.Next(s)
		total += w
		s = s[n:]
	}
	return total
}

// sgrLen returns the length of the SGR sequence ESC [ [0-9;]* m at the start
// of s, or 0 when s does not start with a complete one.
func sgrLen(s []rune) int {
	if len(s) < 3 || s[0] != esc || s[1] != '[' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		switch r := s[i]; {
		case r == 'm':
			return i + 1
		case r == ';' || (r >= '0' && r <= '9'):
		default:
			return 0
		}
	}
	return 0
}

// StripSGR removes every complete SGR sequence from s.
func StripSGR(s string) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); {
		if n := sgrLen(rs[i:]); n > 0 {
			i += n
			continue
		}
		out = append(out, rs[i])
		i++
	}
	return string(out)
}

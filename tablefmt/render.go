// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

const (
	sgrBold    = "\x1b[1m"
	sgrBoldOff = "\x1b[22m"
	sgrReset   = "\x1b[0m"
)

// rowRenderer turns one line into one bordered row. Its scratch buffers are
// reused from line to line.
type rowRenderer struct {
	plan     Plan
	glyphs   GlyphSet
	cross    CrossingSet
	opts     Options
	oracle   *Oracle
	splitter *Splitter

	expanded []rune
	single   [1]Field
	out      []byte
}

func newRowRenderer(plan Plan, opts Options, oracle *Oracle) *rowRenderer {
	return &rowRenderer{
		plan:     plan,
		glyphs:   opts.Border.Glyphs(),
		cross:    opts.Crossing.Glyphs(),
		opts:     opts,
		oracle:   oracle,
		splitter: NewSplitter(opts.Delimiter, oracle),
	}
}

// render returns the row for line, newline included. The slice is reused by
// the next call. header marks the first data row, which is emphasized when
// escape passthrough is on.
func (rr *rowRenderer) render(line []rune, header bool) []byte {
	rr.out = rr.out[:0]
	if rr.opts.ExpandTabs {
		rr.expanded = ExpandTabs(rr.expanded[:0], line, rr.opts.TabLength, rr.oracle)
		line = rr.expanded
	}
	fields := rr.fields(line)

	ansi := rr.opts.HandleANSI
	emphasize := ansi && header
	cols := rr.plan.Columns
	used := 0

	rr.border(rr.glyphs.Left)
	for i := 0; i < cols; i++ {
		var text []rune
		if i < len(fields) {
			text = fields[i].Text
		}
		target := rr.plan.Widths[i]
		if i == cols-1 {
			target = rr.plan.Interior() - used
		}

		if emphasize {
			rr.out = append(rr.out, sgrBold...)
			rr.out = append(rr.out, rr.opts.Palette.Header...)
		}
		w := rr.content(text, target)
		if emphasize {
			rr.out = append(rr.out, sgrBoldOff...)
		}
		rr.pad(target - w)
		if ansi {
			rr.out = append(rr.out, sgrReset...)
		}
		used += target

		if i < cols-1 {
			rr.border(rr.cross.Vertical)
			used++
		} else {
			rr.border(rr.glyphs.Right)
		}
	}
	rr.out = append(rr.out, '\n')
	return rr.out
}

func (rr *rowRenderer) fields(line []rune) []Field {
	if rr.opts.BorderMode {
		if len(line) == 0 {
			return nil
		}
		rr.single[0] = Field{Text: line, Width: rr.oracle.Width(line)}
		return rr.single[:]
	}
	return rr.splitter.Split(line, rr.plan.Columns)
}

// content writes as much of text as fits in limit display columns and
// returns the width written. A wide scalar that would straddle the limit is
// dropped whole.
func (rr *rowRenderer) content(text []rune, limit int) int {
	width := 0
	for len(text) > 0 {
		n, w, sgr := rr.oracle.Next(text)
		if sgr {
			rr.out = appendRunes(rr.out, text[:n])
			text = text[n:]
			continue
		}
		if width+w > limit {
			break
		}
		rr.out = appendRune(rr.out, Printable(text[0]))
		width += w
		text = text[n:]
	}
	return width
}

func (rr *rowRenderer) pad(n int) {
	for i := 0; i < n; i++ {
		rr.out = appendRune(rr.out, rr.glyphs.Fill)
	}
}

func (rr *rowRenderer) border(g rune) {
	if rr.opts.HandleANSI && rr.opts.Palette.Border != "" {
		rr.out = append(rr.out, rr.opts.Palette.Border...)
		rr.out = appendRune(rr.out, g)
		rr.out = append(rr.out, sgrReset...)
		return
	}
	rr.out = appendRune(rr.out, g)
}

func appendRune(b []byte, r rune) []byte {
	if r < 0x80 {
		return append(b, byte(r))
	}
	return append(b, string(r)...)
}

func appendRunes(b []byte, rs []rune) []byte {
	for _, r := range rs {
		b = appendRune(b, r)
	}
	return b
}

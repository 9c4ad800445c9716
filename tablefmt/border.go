// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

// PaintTop appends the top border line for p to dst.
func PaintTop(dst []byte, p Plan, opts Options) []byte {
	g, c := opts.Border.Glyphs(), opts.Crossing.Glyphs()
	return paintBorder(dst, p, g.TopLeft, g.Top, g.TopRight, c.Top, borderSGR(opts))
}

// PaintBottom appends the bottom border line for p to dst.
func PaintBottom(dst []byte, p Plan, opts Options) []byte {
	g, c := opts.Border.Glyphs(), opts.Crossing.Glyphs()
	return paintBorder(dst, p, g.BottomLeft, g.Bottom, g.BottomRight, c.Bottom, borderSGR(opts))
}

func borderSGR(opts Options) string {
	if !opts.HandleANSI {
		return ""
	}
	return opts.Palette.Border
}

// paintBorder walks the Total display columns left to right. The crossing
// glyph lands on exactly the columns where the row renderer puts its
// separators.
func paintBorder(dst []byte, p Plan, left, fill, right, cross rune, sgr string) []byte {
	if sgr != "" {
		dst = append(dst, sgr...)
	}
	next, boundary := 0, -1
	if p.Columns > 1 {
		boundary = p.Widths[0] + 1
	}
	for pos := 0; pos < p.Total; pos++ {
		switch {
		case pos == 0:
			dst = appendRune(dst, left)
		case pos == p.Total-1:
			dst = appendRune(dst, right)
		case pos == boundary:
			dst = appendRune(dst, cross)
			next++
			if next < p.Columns-1 {
				boundary += p.Widths[next] + 1
			} else {
				boundary = -1
			}
		default:
			dst = appendRune(dst, fill)
		}
	}
	if sgr != "" {
		dst = append(dst, sgrReset...)
	}
	return append(dst, '\n')
}

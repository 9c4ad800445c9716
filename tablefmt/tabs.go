// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

// ExpandTabs appends src to dst with every tab replaced by spaces up to the
// next multiple of tabLen display columns. Columns are counted with the
// oracle, so wide scalars count twice and SGR sequences not at all.
func ExpandTabs(dst, src []rune, tabLen int, o *Oracle) []rune {
	if tabLen <= 0 {
		tabLen = DefaultTabLength
	}
	col := 0
	for len(src) > 0 {
		if src[0] == '\t' {
			pad := tabLen - col%tabLen
			for i := 0; i < pad; i++ {
				dst = append(dst, ' ')
			}
			col += pad
			src = src[1:]
			continue
		}
		n, w, _ := o.Next(src)
		dst = append(dst, src[:n]...)
		col += w
		src = src[n:]
	}
	return dst
}

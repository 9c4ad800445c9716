// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

// Field is one cell's text. Text aliases the splitter's scratch buffer and
// is only valid until the next call to Split.
type Field struct {
	Text   []rune
	Width  int
	Quoted bool // the source contained at least one quote toggle
}

// Splitter breaks lines into fields. A double quote toggles quoting and is
// dropped; a delimiter separates fields only outside quotes. When the oracle
// passes SGR sequences through, a sequence is never split even if the
// delimiter is one of its parameter characters.
type Splitter struct {
	delim  rune
	oracle *Oracle
	buf    []rune
	bounds []int
	quoted []bool
	fields []Field
}

// NewSplitter returns a splitter for delim measuring fields with oracle.
func NewSplitter(delim rune, oracle *Oracle) *Splitter {
	return &Splitter{delim: delim, oracle: oracle}
}

// Split returns the fields of line. With limit > 0 at most limit fields are
// produced and delimiters past the (limit-1)th are kept in the last field.
// An empty line yields no fields.
func (sp *Splitter) Split(line []rune, limit int) []Field {
	sp.buf = sp.buf[:0]
	sp.bounds = sp.bounds[:0]
	sp.quoted = sp.quoted[:0]
	sp.fields = sp.fields[:0]
	if len(line) == 0 {
		return sp.fields
	}

	inQuote, toggled := false, false
	for i := 0; i < len(line); i++ {
		r := line[i]
		if n := sp.sgrAt(line[i:]); n > 0 {
			sp.buf = append(sp.buf, line[i:i+n]...)
			i += n - 1
			continue
		}
		switch {
		case r == '"':
			inQuote = !inQuote
			toggled = true
		case r == sp.delim && !inQuote && (limit <= 0 || len(sp.bounds)+1 < limit):
			sp.bounds = append(sp.bounds, len(sp.buf))
			sp.quoted = append(sp.quoted, toggled)
			toggled = false
		default:
			sp.buf = append(sp.buf, r)
		}
	}
	sp.bounds = append(sp.bounds, len(sp.buf))
	sp.quoted = append(sp.quoted, toggled)

	start := 0
	for i, end := range sp.bounds {
		text := sp.buf[start:end:end]
		sp.fields = append(sp.fields, Field{
			Text:   text,
			Width:  sp.oracle.Width(text),
			Quoted: sp.quoted[i],
		})
		start = end
	}
	return sp.fields
}

// Count returns how many fields Split would produce without a limit.
func (sp *Splitter) Count(line []rune) int {
	if len(line) == 0 {
		return 0
	}
	n := 1
	inQuote := false
	for i := 0; i < len(line); i++ {
		if k := sp.sgrAt(line[i:]); k > 0 {
			i += k - 1
			continue
		}
		switch r := line[i]; {
		case r == '"':
			inQuote = !inQuote
		case r == sp.delim && !inQuote:
			n++
		}
	}
	return n
}

func (sp *Splitter) sgrAt(s []rune) int {
	if !sp.oracle.ansi || s[0] != esc {
		return 0
	}
	return sgrLen(s)
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

// BorderStyle selects the glyph set of the outer frame.
type BorderStyle int

const (
	BorderASCII BorderStyle = iota
	BorderSingle
	BorderDouble
)

// GlyphSet holds the nine positional glyphs of a border style.
type GlyphSet struct {
	TopLeft, Top, TopRight          rune
	Left, Fill, Right               rune
	BottomLeft, Bottom, BottomRight rune
}

var glyphSets = [...]GlyphSet{
	BorderASCII: {
		'+', '-', '+',
		'|', ' ', '|',
		'+', '-', '+',
	},
	BorderSingle: {
		'┌', '─', '┐',
		'│', ' ', '│',
		'└', '─', '┘',
	},
	BorderDouble: {
		'╔', '═', '╗',
		'║', ' ', '║',
		'╚', '═', '╝',
	},
}

var borderNames = map[string]BorderStyle{
	"ascii":  BorderASCII,
	"single": BorderSingle,
	"double": BorderDouble,
}

func (s BorderStyle) valid() bool {
	return s >= BorderASCII && s <= BorderDouble
}

// Glyphs returns the glyph set for the style.
func (s BorderStyle) Glyphs() GlyphSet {
	if !s.valid() {
		return glyphSets[BorderDouble]
	}
	return glyphSets[s]
}

func (s BorderStyle) String() string {
	for name, v := range borderNames {
		if v == s {
			return name
		}
	}
	return "unknown"
}

// CrossingStyle selects the T-junction and separator glyphs for an
// outer×inner line pairing.
type CrossingStyle int

const (
	CrossASCII        CrossingStyle = iota // aa
	CrossSingle                            // ss
	CrossSingleDouble                      // sd: single outer, double inner
	CrossDoubleSingle                      // ds: double outer, single inner
	CrossDouble                            // dd
)

// CrossingSet holds the glyphs where an inner separator meets the top
// border, the separator itself, and where it meets the bottom border.
type CrossingSet struct {
	Top, Vertical, Bottom rune
}

var crossingSets = [...]CrossingSet{
	CrossASCII:        {'+', '|', '+'},
	CrossSingle:       {'┬', '│', '┴'},
	CrossSingleDouble: {'╥', '║', '╨'},
	CrossDoubleSingle: {'╤', '│', '╧'},
	CrossDouble:       {'╦', '║', '╩'},
}

var crossingCodes = [...]string{
	CrossASCII:        "aa",
	CrossSingle:       "ss",
	CrossSingleDouble: "sd",
	CrossDoubleSingle: "ds",
	CrossDouble:       "dd",
}

func (c CrossingStyle) valid() bool {
	return c >= CrossASCII && c <= CrossDouble
}

// Glyphs returns the crossing set for the style.
func (c CrossingStyle) Glyphs() CrossingSet {
	if !c.valid() {
		return crossingSets[CrossDoubleSingle]
	}
	return crossingSets[c]
}

func (c CrossingStyle) String() string {
	if !c.valid() {
		return "unknown"
	}
	return crossingCodes[c]
}

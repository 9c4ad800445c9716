// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// Palette holds the SGR sequences written ahead of header text and border
// glyphs. It only takes effect when escape passthrough is on.
type Palette struct {
	Header string
	Border string
}

// headerTokens are tried in order when picking a header color from a Chroma
// style.
var headerTokens = []chroma.TokenType{
	chroma.Keyword,
	chroma.NameTag,
	chroma.NameFunction,
	chroma.Text,
}

// ColorSGR returns the truecolor foreground sequence for a tcell color name
// ("red", "darkorange") or a "#rrggbb" value.
func ColorSGR(name string) (string, error) {
	c := tcell.GetColor(strings.ToLower(strings.TrimSpace(name)))
	if c == tcell.ColorDefault || !c.Valid() {
		return "", fmt.Errorf("%w: unknown color %q", ErrInvalidOption, name)
	}
	r, g, b := c.RGB()
	if r < 0 {
		return "", fmt.Errorf("%w: color %q has no RGB value", ErrInvalidOption, name)
	}
	return rgbSGR(int(r), int(g), int(b)), nil
}

// ThemeHeaderSGR returns the header color of the named Chroma style.
func ThemeHeaderSGR(name string) (string, error) {
	style, ok := styles.Registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: unknown theme %q", ErrInvalidOption, name)
	}
	for _, tt := range headerTokens {
		if c := style.Get(tt).Colour; c.IsSet() {
			return rgbSGR(int(c.Red()), int(c.Green()), int(c.Blue())), nil
		}
	}
	return "", nil
}

// ThemeNames lists the themes accepted by ThemeHeaderSGR.
func ThemeNames() []string {
	return styles.Names()
}

func rgbSGR(r, g, b int) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

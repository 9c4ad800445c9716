// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termsize/termsize.go
// Summary: Terminal width lookup for automatic table sizing.

// Package termsize reports the width of the terminal a stream is attached
// to.
package termsize

import (
	"log"
	"os"

	"golang.org/x/term"
)

// Width returns the column count of the terminal behind f. When f is not a
// terminal, or its size cannot be read, fallback is returned.
func Width(f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		log.Printf("Termsize: cannot read size of %s (%v), using %d", f.Name(), err, fallback)
		return fallback
	}
	return cols
}

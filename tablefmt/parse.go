// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxWeight = 1 << 20

// ParseBorderStyle accepts ascii, single or double.
func ParseBorderStyle(s string) (BorderStyle, error) {
	if st, ok := borderNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return 0, fmt.Errorf("%w: border style %q (want ascii, single or double)", ErrInvalidOption, s)
}

// ParseCrossingStyle accepts a two-letter outer×inner code: aa, ss, sd, ds
// or dd.
func ParseCrossingStyle(s string) (CrossingStyle, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	for i, c := range crossingCodes {
		if c == code {
			return CrossingStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: crossing style %q (want aa, ss, sd, ds or dd)", ErrInvalidOption, s)
}

// ParseDelimiter returns the single scalar named by s. The value may be
// wrapped in matching single or double quotes, which protects characters a
// shell would otherwise interpret; `\t` names a tab.
func ParseDelimiter(s string) (rune, error) {
	v := s
	if len(v) >= 2 && (v[0] == '\'' || v[0] == '"') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	if v == `\t` {
		v = "\t"
	}
	if v == "" {
		return 0, fmt.Errorf("%w: empty delimiter", ErrInvalidOption)
	}
	r, size := utf8.DecodeRuneInString(v)
	if r == utf8.RuneError || size != len(v) {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalidOption, s)
	}
	if err := checkDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}

func checkDelimiter(r rune) error {
	switch {
	case r == 0:
		return fmt.Errorf("%w: empty delimiter", ErrInvalidOption)
	case r == '"':
		return fmt.Errorf("%w: the double quote is reserved for quoting", ErrInvalidOption)
	case r == '\n' || r == '\r':
		return fmt.Errorf("%w: delimiter cannot be a line break", ErrInvalidOption)
	case !utf8.ValidRune(r):
		return fmt.Errorf("%w: delimiter %U is not a valid character", ErrInvalidOption, r)
	}
	return nil
}

// ParseWidth parses a positive total width.
func ParseWidth(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: width %q must be a positive integer", ErrInvalidOption, s)
	}
	return n, nil
}

// ParseWeights parses a colon-separated list of positive integers such as
// "2:1:1".
func ParseWeights(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ":")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 || n > maxWeight {
			return nil, fmt.Errorf("%w: weight %q in %q must be an integer between 1 and %d", ErrInvalidOption, p, s, maxWeight)
		}
		out = append(out, n)
	}
	return out, nil
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import "fmt"

// Plan is the fixed column layout of a table. Every border and separator
// takes one display column, so Total == sum(Widths) + Columns + 1.
type Plan struct {
	Columns int
	Widths  []int
	Total   int
}

// NewPlan derives the layout from the first data line. In border mode the
// line is never split and the table has a single column.
func NewPlan(first []rune, opts Options) Plan {
	cols := 1
	if !opts.BorderMode {
		sp := NewSplitter(opts.Delimiter, NewOracle(opts.HandleANSI))
		if n := sp.Count(first); n > 1 {
			cols = n
		}
	}
	return planColumns(cols, opts.Width, opts.Weights)
}

// planColumns allocates usable width evenly, or by weight when weights are
// given. Weighted widths are rounded half up; the last column takes whatever
// the rounding left over, so the plan always adds up.
func planColumns(cols, total int, weights []int) Plan {
	if cols < 1 {
		cols = 1
	}
	if least := cols*MinColumnWidth + cols + 1; total < least {
		total = least
	}
	usable := total - cols - 1

	widths := make([]int, cols)
	if len(weights) == 0 {
		for i := range widths {
			widths[i] = usable / cols
		}
	} else {
		w := make([]int, cols)
		sum := 0
		for i := range w {
			w[i] = 1
			if i < len(weights) && weights[i] > 0 {
				w[i] = weights[i]
			}
			sum += w[i]
		}
		for i := range widths {
			widths[i] = max(roundHalfUp(w[i]*usable, sum), MinColumnWidth)
		}
	}
	absorbSlack(widths, usable)

	return Plan{Columns: cols, Widths: widths, Total: total}
}

func roundHalfUp(num, den int) int {
	return (2*num + den) / (2 * den)
}

// absorbSlack sets the last width to the remainder of usable. When that
// remainder is below the minimum, the widest earlier columns give up one
// column at a time.
func absorbSlack(widths []int, usable int) {
	last := len(widths) - 1
	others := 0
	for _, w := range widths[:last] {
		others += w
	}
	widths[last] = usable - others
	for widths[last] < MinColumnWidth {
		donor := -1
		for i := 0; i < last; i++ {
			if widths[i] > MinColumnWidth && (donor < 0 || widths[i] > widths[donor]) {
				donor = i
			}
		}
		if donor < 0 {
			return
		}
		widths[donor]--
		widths[last]++
	}
}

// Interior is the display width between the outer borders.
func (p Plan) Interior() int {
	return p.Total - 2
}

// Boundaries returns the display column of every inner separator.
func (p Plan) Boundaries() []int {
	if p.Columns < 2 {
		return nil
	}
	out := make([]int, 0, p.Columns-1)
	pos := 0
	for i, w := range p.Widths[:p.Columns-1] {
		pos += w
		out = append(out, pos+i+1)
	}
	return out
}

// Validate checks the width invariant.
func (p Plan) Validate() error {
	if p.Columns != len(p.Widths) {
		return fmt.Errorf("plan has %d columns but %d widths", p.Columns, len(p.Widths))
	}
	sum := 0
	for i, w := range p.Widths {
		if w < MinColumnWidth {
			return fmt.Errorf("column %d is %d wide, minimum is %d", i, w, MinColumnWidth)
		}
		sum += w
	}
	if sum+p.Columns+1 != p.Total {
		return fmt.Errorf("widths sum to %d, want %d", sum, p.Total-p.Columns-1)
	}
	return nil
}

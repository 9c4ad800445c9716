// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import (
	"bufio"
	"errors"
	"io"
	"log"
	"unicode/utf8"
)

// ErrClosed is returned when writing to a closed Table.
var ErrClosed = errors.New("table closed")

// Table streams lines into a bordered table. The layout is planned from the
// first non-empty, decodable line and fixed from then on.
type Table struct {
	w      *bufio.Writer
	opts   Options
	oracle *Oracle

	planned bool
	plan    Plan
	rows    *rowRenderer

	runes   []rune
	scratch []byte
	lineNo  int
	pending int // undecodable lines seen before the plan existed
	count   int
	closed  bool
}

// New returns a Table writing to w. The options are validated here so that
// configuration problems surface before any input is read.
func New(w io.Writer, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Table{
		w:      bufio.NewWriter(w),
		opts:   opts,
		oracle: NewOracle(opts.HandleANSI),
	}, nil
}

// WriteLine renders one input line. A trailing newline or CRLF is removed;
// lines that are then empty are skipped. A line that is not valid UTF-8 is
// rendered as a blank row.
func (t *Table) WriteLine(line []byte) error {
	if t.closed {
		return ErrClosed
	}
	t.lineNo++
	line = trimEOL(line)
	if len(line) == 0 {
		return nil
	}

	if !utf8.Valid(line) {
		log.Printf("Table: line %d is not valid UTF-8, rendering it blank", t.lineNo)
		if !t.planned {
			t.pending++
			return nil
		}
		return t.emitRow(nil, false)
	}

	t.runes = t.runes[:0]
	for len(line) > 0 {
		r, size := utf8.DecodeRune(line)
		t.runes = append(t.runes, r)
		line = line[size:]
	}

	header := !t.planned
	if header {
		if err := t.start(t.runes); err != nil {
			return err
		}
	}
	return t.emitRow(t.runes, header)
}

func (t *Table) start(first []rune) error {
	t.plan = NewPlan(first, t.opts)
	t.rows = newRowRenderer(t.plan, t.opts, t.oracle)
	t.planned = true
	if t.plan.Total != t.opts.Width {
		log.Printf("Table: width %d raised to %d to fit %d columns", t.opts.Width, t.plan.Total, t.plan.Columns)
	}

	t.scratch = PaintTop(t.scratch[:0], t.plan, t.opts)
	if _, err := t.w.Write(t.scratch); err != nil {
		return err
	}
	for ; t.pending > 0; t.pending-- {
		if err := t.emitRow(nil, false); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) emitRow(line []rune, header bool) error {
	if _, err := t.w.Write(t.rows.render(line, header)); err != nil {
		return err
	}
	t.count++
	return nil
}

// Plan returns the layout and whether it has been fixed yet.
func (t *Table) Plan() (Plan, bool) {
	return t.plan, t.planned
}

// Rows returns the number of rows rendered so far, including blank rows
// standing in for undecodable lines.
func (t *Table) Rows() int {
	return t.count
}

// Close paints the bottom border, if any row was rendered, and flushes.
func (t *Table) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.planned {
		t.scratch = PaintBottom(t.scratch[:0], t.plan, t.opts)
		if _, err := t.w.Write(t.scratch); err != nil {
			return err
		}
	}
	return t.w.Flush()
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

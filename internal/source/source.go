// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/source/source.go
// Summary: Opens the text input (file or stdin) and rejects binary data.

// Package source provides the inputs the table command reads from: plain
// text files or stdin, split into lines by a capped LineReader, and the
// result set of a SQLite query rendered as delimited lines.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-enry/go-enry/v2"
)

// ErrBinary is returned when the input does not look like text.
var ErrBinary = errors.New("input looks binary")

// sniffLen is how much of the input is inspected before rendering starts.
const sniffLen = 8000

// Input is an opened text source.
type Input struct {
	*bufio.Reader
	name   string
	closer io.Closer
}

// Name is the path the input was opened from, or "stdin".
func (in *Input) Name() string { return in.name }

// Close releases the underlying file. Closing stdin is a no-op.
func (in *Input) Close() error {
	if in.closer == nil {
		return nil
	}
	return in.closer.Close()
}

// Open opens path for reading. An empty path or "-" selects stdin. The
// first bytes are inspected and binary input is refused with ErrBinary.
func Open(path string, stdin io.Reader) (*Input, error) {
	in := &Input{name: path}
	var r io.Reader
	if path == "" || path == "-" {
		in.name = "stdin"
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		in.closer = f
		r = f
	}
	in.Reader = bufio.NewReaderSize(r, 64*1024)

	head, err := in.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		in.Close()
		return nil, fmt.Errorf("read %s: %w", in.name, err)
	}
	if enry.IsBinary(head) {
		in.Close()
		return nil, fmt.Errorf("%s: %w", in.name, ErrBinary)
	}
	return in, nil
}

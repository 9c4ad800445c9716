// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"bufio"
	"errors"
	"io"
	"log"
	"unicode/utf8"
)

const (
	// DefaultMaxLineBytes caps a single input line.
	DefaultMaxLineBytes = 1 << 20
	// MinMaxLineBytes is the smallest cap accepted; lower values are raised.
	MinMaxLineBytes = 4096
)

// LineReader yields input lines without their trailing newline. The
// returned slice is owned by the reader and valid until the next call.
// Lines longer than the cap are cut at the last complete UTF-8 scalar that
// fits, and the rest of the physical line is dropped.
type LineReader struct {
	r         *bufio.Reader
	max       int
	buf       []byte
	lineNo    int
	truncated int
}

// NewLineReader returns a reader capping lines at maxBytes.
func NewLineReader(r io.Reader, maxBytes int) *LineReader {
	if maxBytes < MinMaxLineBytes {
		maxBytes = MinMaxLineBytes
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 64*1024)
	}
	return &LineReader{r: br, max: maxBytes}
}

// Next returns the next line. It returns io.EOF once the input is exhausted;
// a final line without a newline is returned before that.
func (lr *LineReader) Next() ([]byte, error) {
	lr.buf = lr.buf[:0]
	over, seen := false, false
	for {
		chunk, err := lr.r.ReadSlice('\n')
		seen = seen || len(chunk) > 0
		data := chunk
		if err == nil {
			data = data[:len(data)-1]
		}
		if !over {
			if room := lr.max - len(lr.buf); len(data) > room {
				lr.buf = append(lr.buf, data[:room]...)
				over = true
			} else {
				lr.buf = append(lr.buf, data...)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !seen {
				return nil, io.EOF
			}
		default:
			return nil, err
		}
		break
	}

	lr.lineNo++
	if over {
		lr.truncated++
		lr.buf = trimPartialRune(lr.buf)
		log.Printf("Source: line %d exceeds %d bytes, truncated", lr.lineNo, lr.max)
	}
	return lr.buf, nil
}

// Truncated reports how many lines were cut to the cap.
func (lr *LineReader) Truncated() int { return lr.truncated }

// trimPartialRune drops an incomplete UTF-8 sequence at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}

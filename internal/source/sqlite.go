// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/source/sqlite.go
// Summary: Streams a SQLite query result as delimiter-separated lines.

package source

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// QueryReader streams the rows of a query as text lines: the column names
// first, then one line per row. Values containing the delimiter are wrapped
// in double quotes; double quotes inside values are dropped and line breaks
// become spaces so every row stays on one line. NULL renders empty.
type QueryReader struct {
	db    *sql.DB
	rows  *sql.Rows
	delim string

	vals []any
	ptrs []any
	buf  bytes.Buffer
	done bool
}

// Query opens the database at dbPath read-only and runs query.
func Query(ctx context.Context, dbPath, query string, delim rune) (*QueryReader, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("query %s: %w", dbPath, err)
	}
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		db.Close()
		return nil, fmt.Errorf("query %s: %w", dbPath, err)
	}

	qr := &QueryReader{
		db:    db,
		rows:  rows,
		delim: string(delim),
		vals:  make([]any, len(cols)),
		ptrs:  make([]any, len(cols)),
	}
	for i := range qr.vals {
		qr.ptrs[i] = &qr.vals[i]
	}
	for i, c := range cols {
		qr.writeCell(i, c)
	}
	qr.buf.WriteByte('\n')
	return qr, nil
}

// Read implements io.Reader, fetching rows as the buffer drains.
func (qr *QueryReader) Read(p []byte) (int, error) {
	for qr.buf.Len() == 0 {
		if qr.done {
			return 0, io.EOF
		}
		if err := qr.fill(); err != nil {
			return 0, err
		}
	}
	return qr.buf.Read(p)
}

func (qr *QueryReader) fill() error {
	if !qr.rows.Next() {
		qr.done = true
		if err := qr.rows.Err(); err != nil {
			return fmt.Errorf("read rows: %w", err)
		}
		return nil
	}
	if err := qr.rows.Scan(qr.ptrs...); err != nil {
		return fmt.Errorf("scan row: %w", err)
	}
	for i, v := range qr.vals {
		qr.writeCell(i, formatValue(v))
	}
	qr.buf.WriteByte('\n')
	return nil
}

func (qr *QueryReader) writeCell(i int, s string) {
	if i > 0 {
		qr.buf.WriteString(qr.delim)
	}
	s = cellReplacer.Replace(s)
	if strings.Contains(s, qr.delim) {
		qr.buf.WriteByte('"')
		qr.buf.WriteString(s)
		qr.buf.WriteByte('"')
		return
	}
	qr.buf.WriteString(s)
}

// Close releases the result set and the database handle.
func (qr *QueryReader) Close() error {
	rerr := qr.rows.Close()
	if err := qr.db.Close(); err != nil {
		return err
	}
	return rerr
}

var cellReplacer = strings.NewReplacer(`"`, "", "\r\n", " ", "\n", " ", "\r", " ")

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

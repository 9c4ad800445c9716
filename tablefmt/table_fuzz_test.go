// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import (
	"bytes"
	"strings"
	"testing"
)

func FuzzTableWidth(f *testing.F) {
	f.Add("name,age\nAnn,30\nBob,4", 20, true)
	f.Add("中文,x\n\tx,\"a,b\"", 9, false)
	f.Add("\x1b[1mbold\x1b[0m,,\r\n\xff\xfe", 3, true)
	f.Add("a;b;c;d;e;f;g", 1, false)

	f.Fuzz(func(t *testing.T, input string, width int, expand bool) {
		if width <= 0 || width > 400 {
			return
		}
		opts := DefaultOptions()
		opts.Width = width
		opts.ExpandTabs = expand

		var buf bytes.Buffer
		tbl, err := New(&buf, opts)
		if err != nil {
			t.Fatal(err)
		}
		for _, ln := range strings.Split(input, "\n") {
			if err := tbl.WriteLine([]byte(ln)); err != nil {
				t.Fatal(err)
			}
		}
		if err := tbl.Close(); err != nil {
			t.Fatal(err)
		}
		if buf.Len() == 0 {
			return
		}

		p, ok := tbl.Plan()
		if !ok {
			t.Fatal("output without a plan")
		}
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != tbl.Rows()+2 {
			t.Fatalf("%d lines for %d rows", len(lines), tbl.Rows())
		}
		for i, ln := range lines {
			if w := displayWidth(ln); w != p.Total {
				t.Fatalf("line %d is %d wide, want %d: %q", i, w, p.Total, ln)
			}
		}
	})
}

func BenchmarkTableWriteLine(b *testing.B) {
	opts := DefaultOptions()
	opts.Width = 120
	opts.ExpandTabs = true
	lines := [][]byte{
		[]byte("id,name,city,notes"),
		[]byte(`42,"Smith, Jane",Zürich,prefers	tabs`),
		[]byte("43,王小明,東京,宽字符测试宽字符测试宽字符测试宽字符测试"),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tbl, err := New(discard{}, opts)
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 100; j++ {
			if err := tbl.WriteLine(lines[j%len(lines)]); err != nil {
				b.Fatal(err)
			}
		}
		if err := tbl.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

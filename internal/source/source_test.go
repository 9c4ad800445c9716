// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	in, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer in.Close()
	if in.Name() != path {
		t.Errorf("Name = %q", in.Name())
	}
	data, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("read %q", data)
	}
}

func TestOpenStdin(t *testing.T) {
	for _, name := range []string{"", "-"} {
		in, err := Open(name, strings.NewReader("x,y\n"))
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		if in.Name() != "stdin" {
			t.Errorf("Name = %q", in.Name())
		}
		data, _ := io.ReadAll(in)
		if string(data) != "x,y\n" {
			t.Errorf("read %q", data)
		}
		if err := in.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestOpenRejectsBinary(t *testing.T) {
	_, err := Open("-", strings.NewReader("PK\x03\x04\x00\x00\x08\x00"))
	if !errors.Is(err, ErrBinary) {
		t.Fatalf("err = %v, want ErrBinary", err)
	}
}

func TestOpenEmpty(t *testing.T) {
	in, err := Open("-", strings.NewReader(""))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := NewLineReader(in.Reader, 0).Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next = %v, want EOF", err)
	}
}

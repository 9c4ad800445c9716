// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tablefmt

import "testing"

func TestPlanColumns(t *testing.T) {
	tests := []struct {
		name      string
		cols      int
		width     int
		weights   []int
		wantTotal int
		want      []int
	}{
		{"even two columns", 2, 20, nil, 20, []int{8, 9}},
		{"even exact", 3, 16, nil, 16, []int{4, 4, 4}},
		{"single column", 1, 80, nil, 80, []int{78}},
		{"raised to minimum", 3, 5, nil, 13, []int{3, 3, 3}},
		{"exactly minimum", 2, 9, nil, 9, []int{3, 3}},
		{"weighted", 3, 40, []int{1, 2, 1}, 40, []int{9, 18, 9}},
		{"weighted slack to last", 3, 20, []int{1, 1, 1}, 20, []int{5, 5, 6}},
		{"round half up", 2, 14, []int{1, 1}, 14, []int{6, 5}},
		{"weighted minimum clamp", 2, 20, []int{1, 100}, 20, []int{3, 14}},
		{"last column borrows", 3, 16, []int{100, 1, 1}, 16, []int{6, 3, 3}},
		{"missing weights count as one", 3, 24, []int{3}, 24, []int{12, 4, 4}},
		{"extra weights ignored", 2, 11, []int{1, 1, 5}, 11, []int{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := planColumns(tt.cols, tt.width, tt.weights)
			if p.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", p.Total, tt.wantTotal)
			}
			if len(p.Widths) != len(tt.want) {
				t.Fatalf("Widths = %v, want %v", p.Widths, tt.want)
			}
			for i := range tt.want {
				if p.Widths[i] != tt.want[i] {
					t.Fatalf("Widths = %v, want %v", p.Widths, tt.want)
				}
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestNewPlan(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 30

	p := NewPlan([]rune(`id,"last, first",city`), opts)
	if p.Columns != 3 {
		t.Errorf("Columns = %d, want 3", p.Columns)
	}

	p = NewPlan([]rune("no delimiter here"), opts)
	if p.Columns != 1 {
		t.Errorf("Columns = %d, want 1", p.Columns)
	}

	opts.BorderMode = true
	p = NewPlan([]rune("a,b,c"), opts)
	if p.Columns != 1 || p.Widths[0] != 28 {
		t.Errorf("border mode plan = %+v", p)
	}
}

func TestPlanBoundaries(t *testing.T) {
	p := planColumns(3, 40, []int{1, 2, 1})
	got := p.Boundaries()
	want := []int{10, 29}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Boundaries = %v, want %v", got, want)
	}
	if b := planColumns(1, 10, nil).Boundaries(); len(b) != 0 {
		t.Errorf("single column has boundaries %v", b)
	}
}

func TestPlanValidateRejects(t *testing.T) {
	bad := []Plan{
		{Columns: 2, Widths: []int{3}, Total: 6},
		{Columns: 1, Widths: []int{2}, Total: 4},
		{Columns: 2, Widths: []int{3, 3}, Total: 10},
	}
	for _, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", p)
		}
	}
}

func TestPlanWidthInvariant(t *testing.T) {
	for cols := 1; cols <= 7; cols++ {
		for width := 1; width <= 60; width++ {
			for _, weights := range [][]int{nil, {1}, {5, 1, 3}, {1, 1, 1, 1, 1, 1, 9}} {
				p := planColumns(cols, width, weights)
				if err := p.Validate(); err != nil {
					t.Fatalf("cols=%d width=%d weights=%v: %v (%+v)", cols, width, weights, err, p)
				}
				if width >= cols*MinColumnWidth+cols+1 && p.Total != width {
					t.Fatalf("cols=%d width=%d: total changed to %d", cols, width, p.Total)
				}
			}
		}
	}
}

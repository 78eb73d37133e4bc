package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(12, 2, 42, 16) // The terminal board: 7x8 cells of 6x2

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 12, 2, true},
		{"last cell", 53, 17, true},
		{"right edge", 54, 10, false},
		{"bottom edge", 20, 18, false},
		{"left of board", 11, 10, false},
		{"above board", 20, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if r.Right() != 54 || r.Bottom() != 18 {
		t.Errorf("edges = %d,%d", r.Right(), r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		outerW, outerH, w, h int
		want                 Rect
	}{
		{80, 24, 20, 6, Rect{30, 9, 20, 6}},
		{81, 25, 20, 6, Rect{30, 9, 20, 6}},
		{10, 4, 20, 6, Rect{0, 0, 20, 6}},
	}
	for _, tc := range tests {
		if got := CenteredRect(tc.outerW, tc.outerH, tc.w, tc.h); got != tc.want {
			t.Errorf("CenteredRect(%d, %d, %d, %d) = %+v, expected %+v",
				tc.outerW, tc.outerH, tc.w, tc.h, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{3, 0, 6, 3},
		{-1, 0, 6, 0},
		{9, 0, 6, 6},
		{5, 4, 2, 4}, // Toast wider than the board sticks to the left edge
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

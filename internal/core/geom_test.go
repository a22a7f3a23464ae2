package core

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := V(1.5, -2)
	b := V(0.5, 4)

	if got := a.Add(b); got != V(2, 2) {
		t.Errorf("Add() = %v, expected (2,2)", got)
	}
	if got := a.Sub(b); got != V(1, -6) {
		t.Errorf("Sub() = %v, expected (1,-6)", got)
	}
	if got := b.Scale(2); got != V(1, 8) {
		t.Errorf("Scale() = %v, expected (1,8)", got)
	}
	if !V(0, 0).IsZero() || a.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestVec2Round(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec2
		expected Vec2
	}{
		{"already integral", V(3, -4), V(3, -4)},
		{"nearest", V(1.4, -1.6), V(1, -2)},
		{"half rounds to even", V(0.5, 1.5), V(0, 2)},
		{"negative half rounds to even", V(-2.5, -3.5), V(-2, -4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Round(); got != tc.expected {
				t.Errorf("Round(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 2, Y: 3}
	if got := c.Add(-1, 1); got != (Cell{X: 1, Y: 4}) {
		t.Errorf("Add() = %v, expected [1,4]", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5}, // within range
		{-5.5, 0, 10, 0},  // below min
		{15.5, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

package model

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}

	if r.Left() != 10 || r.Top() != 20 || r.Right() != 110 || r.Bottom() != 60 {
		t.Errorf("edges = (%d, %d, %d, %d), want (10, 20, 110, 60)",
			r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 60 || y != 40 {
		t.Errorf("Center = (%d, %d), want (60, 40)", x, y)
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{W: 100, H: 40}, false},
		{Rect{}, true},
		{Rect{W: 100}, true},
		{Rect{H: 40}, true},
		{Rect{W: -1, H: 40}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%+v Empty = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	if !r.Contains(10, 10) {
		t.Error("Contains(10, 10) = false, want true at the inclusive corner")
	}
	if r.Contains(30, 30) {
		t.Error("Contains(30, 30) = true, want false at the exclusive corner")
	}
	if r.Contains(5, 15) {
		t.Error("Contains(5, 15) = true, want false outside")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 100}

	if !a.Intersects(Rect{X: 50, Y: 50, W: 100, H: 100}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 100, Y: 0, W: 50, H: 50}) {
		t.Error("edge-adjacent rects should not intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 10}) {
		t.Error("an empty rect never intersects")
	}
}

func TestRectArrayRoundTrip(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}
	if got := RectFromArray(r.Array()); got != r {
		t.Errorf("round trip = %+v, want %+v", got, r)
	}
}

package geom

import (
	"math"
	"testing"
)

func TestLenAndDistance(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len() = %v, want 5", v.Len())
	}
	if d := V(1, 1).DistanceTo(V(4, 5)); math.Abs(d-5) > 1e-9 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
}

func TestApproxEqualPerAxis(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want bool
	}{
		{"identical", V(10, 10), V(10, 10), true},
		{"within on both axes", V(10, 10), V(11.9, 8.1), true},
		{"x exactly at tolerance", V(10, 10), V(12, 10), false},
		{"y outside", V(10, 10), V(10, 13), false},
		// Euclidean distance is ~2.55 but each axis is under 2.
		{"diagonal within per-axis", V(0, 0), V(1.8, 1.8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Near(tt.b); got != tt.want {
				t.Errorf("%v.Near(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectContainsStrict(t *testing.T) {
	r := R(10, 10, 50, 20)

	tests := []struct {
		x, y float64
		want bool
	}{
		{30, 20, true},
		{5, 5, false},
		{10, 20, false}, // left edge
		{60, 20, false}, // right edge
		{30, 10, false}, // top edge
		{30, 30, false}, // bottom edge
		{59.9, 29.9, true},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := R(0, 0, 10, 10)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", R(5, 5, 10, 10), true},
		{"contained", R(2, 2, 2, 2), true},
		{"touching right edge", R(10, 0, 10, 10), false},
		{"touching bottom edge", R(0, 10, 10, 10), false},
		{"touching corner", R(10, 10, 5, 5), false},
		{"disjoint", R(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps not symmetric: %v", got)
			}
		})
	}
}

func TestRectClampsNegativeExtent(t *testing.T) {
	r := R(0, 0, -5, 3)
	if r.W != 0 || r.H != 3 {
		t.Errorf("R(0,0,-5,3) = %+v, want W=0 H=3", r)
	}
}

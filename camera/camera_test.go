package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewOneToOne(t *testing.T) {
	cam := New(840, 400, 840, 400)

	if cam.Zoom != 1 || cam.OffsetX != 0 || cam.OffsetY != 0 {
		t.Errorf("expected identity mapping, got zoom=%f offset=(%f,%f)", cam.Zoom, cam.OffsetX, cam.OffsetY)
	}
}

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name         string
		vw, vh       float32
		zoom, ox, oy float32
	}{
		{"wider window", 1680, 1000, 2, 0, 100},
		{"taller window", 840, 800, 1, 0, 200},
		{"pillarbox", 2000, 800, 2, 160, 0},
		{"shrunk", 420, 200, 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(tt.vw, tt.vh, 840, 400)
			if !near(cam.Zoom, tt.zoom) || !near(cam.OffsetX, tt.ox) || !near(cam.OffsetY, tt.oy) {
				t.Errorf("zoom=%f offset=(%f,%f), want zoom=%f offset=(%f,%f)",
					cam.Zoom, cam.OffsetX, cam.OffsetY, tt.zoom, tt.ox, tt.oy)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 840, 400)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestInViewExcludesBars(t *testing.T) {
	cam := New(1680, 1000, 840, 400) // 100px bars top and bottom

	if cam.InView(10, 50) {
		t.Error("point on top bar reported in view")
	}
	if !cam.InView(10, 150) {
		t.Error("point inside the tank reported out of view")
	}
	if cam.InView(10, 950) {
		t.Error("point on bottom bar reported in view")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(840, 400, 840, 400)

	if !cam.IsVisible(-10, -10, 16, 16) {
		t.Error("partially visible bubble culled")
	}
	if cam.IsVisible(0, -30, 16, 16) {
		t.Error("bubble above the surface not culled")
	}
	if cam.IsVisible(840, 0, 10, 10) {
		t.Error("box right of screen not culled")
	}
}

func TestResizeKeepsMappingConsistent(t *testing.T) {
	cam := New(840, 400, 840, 400)
	cam.Resize(1680, 800)

	sx, sy := cam.WorldToScreen(420, 200)
	if !near(sx, 840) || !near(sy, 400) {
		t.Errorf("center maps to (%f,%f), want (840,400)", sx, sy)
	}
}

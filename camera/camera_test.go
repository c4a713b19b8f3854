package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 720, 1280, 720)

	// Should be centered on the scene
	if cam.X != 640 || cam.Y != 360 {
		t.Errorf("expected camera at (640, 360), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenIdentity(t *testing.T) {
	cam := New(1260, 720, 1260, 720)

	sx, sy := cam.WorldToScreen(100, 200)
	if !near(sx, 100) || !near(sy, 200) {
		t.Errorf("expected (100, 200), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1920, 1080, 1260, 720)

	testCases := []struct{ sx, sy float32 }{
		{960, 540},   // center
		{100, 100},   // top-left bar
		{1800, 1000}, // near bottom-right
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

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name         string
		vw, vh       float32
		wantZoom     float32
		wantX, wantY float32
		wantW, wantH float32
	}{
		{"exact fit", 1280, 720, 1, 0, 0, 1280, 720},
		{"pillarbox", 1600, 720, 1, 160, 0, 1280, 720},
		{"letterbox", 1280, 1000, 1, 0, 140, 1280, 720},
		{"scaled up", 2560, 1440, 2, 0, 0, 2560, 1440},
		{"scaled down pillarbox", 1000, 360, 0.5, 180, 0, 640, 360},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := New(tc.vw, tc.vh, 1280, 720)
			if !near(cam.Zoom, tc.wantZoom) {
				t.Errorf("zoom = %f, want %f", cam.Zoom, tc.wantZoom)
			}
			x, y, w, h := cam.Letterbox()
			if !near(x, tc.wantX) || !near(y, tc.wantY) || !near(w, tc.wantW) || !near(h, tc.wantH) {
				t.Errorf("letterbox = (%f, %f, %f, %f), want (%f, %f, %f, %f)",
					x, y, w, h, tc.wantX, tc.wantY, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestResize(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.Resize(640, 360)

	if cam.ViewportW != 640 || cam.ViewportH != 360 {
		t.Errorf("viewport not updated: %fx%f", cam.ViewportW, cam.ViewportH)
	}
	if !near(cam.Zoom, 0.5) {
		t.Errorf("zoom = %f, want 0.5", cam.Zoom)
	}

	// The window center still shows the scene center.
	wx, wy := cam.ScreenToWorld(320, 180)
	if !near(wx, 640) || !near(wy, 360) {
		t.Errorf("window center maps to (%f, %f), want (640, 360)", wx, wy)
	}
}

func TestMouseOnBarIsOutsideScene(t *testing.T) {
	cam := New(1600, 720, 1280, 720)
	wx, _ := cam.ScreenToWorld(50, 360)
	if wx >= 0 {
		t.Errorf("bar click mapped inside scene at x=%f", wx)
	}
}

func TestFitZoomDegenerate(t *testing.T) {
	if z := fitZoom(0, 0, 1280, 720); z != 1 {
		t.Errorf("fitZoom on empty viewport = %f, want 1", z)
	}
}

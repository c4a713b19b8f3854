// Package camera maps the fixed-size scene onto a resizable window.
package camera

// Camera fits the scene into the window, keeping its aspect ratio and
// centering it between letterbox bars.
type Camera struct {
	// Position is the camera center in scene coordinates
	X, Y float32

	// Zoom is the scene-to-window scale (1.0 = 1:1)
	Zoom float32

	// Viewport dimensions (window size)
	ViewportW, ViewportH float32

	// Scene dimensions
	SceneW, SceneH float32
}

// New creates a camera centered on the scene, zoomed to fit the viewport.
func New(viewportW, viewportH, sceneW, sceneH float32) *Camera {
	c := &Camera{
		X:      sceneW / 2,
		Y:      sceneH / 2,
		SceneW: sceneW,
		SceneH: sceneH,
	}
	c.Resize(viewportW, viewportH)
	return c
}

// WorldToScreen converts scene coordinates to window coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts window coordinates to scene coordinates. Points on
// the letterbox bars map outside the scene.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// Resize updates viewport dimensions and refits the zoom.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH && c.Zoom != 0 {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.Zoom = fitZoom(viewportW, viewportH, c.SceneW, c.SceneH)
}

// Letterbox returns the window rectangle the scene occupies.
func (c *Camera) Letterbox() (x, y, w, h float32) {
	x, y = c.WorldToScreen(0, 0)
	return x, y, c.SceneW * c.Zoom, c.SceneH * c.Zoom
}

// fitZoom returns the largest zoom at which the whole scene is visible.
func fitZoom(viewportW, viewportH, sceneW, sceneH float32) float32 {
	if sceneW <= 0 || sceneH <= 0 || viewportW <= 0 || viewportH <= 0 {
		return 1
	}
	zoomX := viewportW / sceneW
	zoomY := viewportH / sceneH
	if zoomY < zoomX {
		return zoomY
	}
	return zoomX
}

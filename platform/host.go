// Package platform hosts the game in a raylib window: it polls input, owns
// textures and the font, and draws frames through a letterboxed camera.
package platform

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratio/camera"
	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/game"
	"github.com/pthm-cable/ratio/input"
)

var letterboxColor = rl.Color{R: 0, G: 0, B: 0, A: 255}

// Host owns the window and everything tied to its graphics context.
type Host struct {
	cam    *camera.Camera
	atlas  *TextureAtlas
	canvas *Canvas
	tuning *TuningPanel

	// keys polled every frame
	keys []input.Key
}

// Open creates the window described by cfg. Close must be called when done.
func Open(cfg *config.Config) (*Host, error) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("window: initialization failed")
	}
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	atlas := NewTextureAtlas()
	canvas, err := NewCanvas(atlas, cfg.Assets.Font.Path)
	if err != nil {
		rl.CloseWindow()
		return nil, err
	}

	h := &Host{
		cam:    camera.New(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()), cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		atlas:  atlas,
		canvas: canvas,
	}
	for _, k := range cfg.Derived.Keys {
		h.keys = append(h.keys, k.Up, k.Down)
	}
	return h, nil
}

// Atlas returns the GPU texture atlas scenes load from.
func (h *Host) Atlas() *TextureAtlas {
	return h.atlas
}

// Attach creates the tuning panel for g. Its Reset button restores the
// tuning g starts with.
func (h *Host) Attach(g *game.Game) {
	h.tuning = NewTuningPanel(16, 48, g.Tuning())
}

// ShouldClose reports whether the user closed the window.
func (h *Host) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// HandleShellKeys processes window-level keys and resizes. These never
// reach the simulation.
func (h *Host) HandleShellKeys(g *game.Game) {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	h.cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	if rl.IsKeyPressed(rl.KeySpace) {
		g.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.TogglePerf()
	}
	if rl.IsKeyPressed(rl.KeyF1) && h.tuning != nil {
		h.tuning.Toggle()
	}
}

// PollInput reads this frame's input. The pointer is mapped into scene
// coordinates; clicks on the tuning panel are withheld from the scene.
func (h *Host) PollInput() input.Snapshot {
	mouse := rl.GetMousePosition()
	x, y := h.cam.ScreenToWorld(mouse.X, mouse.Y)

	s := input.Snapshot{
		MouseX: x,
		MouseY: y,
		Keys:   make(map[input.Key]bool, len(h.keys)),
	}
	if h.tuning == nil || !h.tuning.Contains(mouse.X, mouse.Y) {
		s.LeftPressed = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
		s.LeftDown = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	}
	for _, k := range h.keys {
		if rl.IsKeyDown(int32(k)) {
			s.Keys[k] = true
		}
	}
	return s
}

// DrawFrame renders g into the letterboxed scene area, then the window-space
// overlays.
func (h *Host) DrawFrame(g *game.Game) {
	rl.BeginDrawing()

	rl.BeginMode2D(rl.Camera2D{
		Offset: rl.Vector2{X: h.cam.ViewportW / 2, Y: h.cam.ViewportH / 2},
		Target: rl.Vector2{X: h.cam.X, Y: h.cam.Y},
		Zoom:   h.cam.Zoom,
	})
	g.Draw(h.canvas)
	rl.EndMode2D()

	h.drawLetterbox()
	if h.tuning != nil {
		h.tuning.Draw(g)
	}

	rl.EndDrawing()
}

// drawLetterbox covers whatever the scene drew outside its own rectangle.
func (h *Host) drawLetterbox() {
	x, y, w, hh := h.cam.Letterbox()
	vw, vh := int32(h.cam.ViewportW), int32(h.cam.ViewportH)
	if x > 0 {
		rl.DrawRectangle(0, 0, int32(x), vh, letterboxColor)
		rl.DrawRectangle(int32(x+w), 0, vw-int32(x+w), vh, letterboxColor)
	}
	if y > 0 {
		rl.DrawRectangle(0, 0, vw, int32(y), letterboxColor)
		rl.DrawRectangle(0, int32(y+hh), vw, vh-int32(y+hh), letterboxColor)
	}
}

// Close releases GPU resources and closes the window.
func (h *Host) Close() {
	h.canvas.Unload()
	h.atlas.Unload()
	rl.CloseWindow()
}

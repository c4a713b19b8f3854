package platform

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/renderer"
)

const rad2deg = 180 / math.Pi

// Canvas draws renderer calls with raylib. It must be used between
// BeginDrawing and EndDrawing.
type Canvas struct {
	atlas      *TextureAtlas
	font       rl.Font
	customFont bool
}

// NewCanvas creates a canvas drawing textures from atlas. An empty fontPath
// selects raylib's built-in font.
func NewCanvas(atlas *TextureAtlas, fontPath string) (*Canvas, error) {
	c := &Canvas{atlas: atlas}
	if fontPath == "" {
		c.font = rl.GetFontDefault()
		return c, nil
	}
	if _, err := os.Stat(fontPath); err != nil {
		return nil, fmt.Errorf("font %q: %w", fontPath, err)
	}
	c.font = rl.LoadFont(fontPath)
	c.customFont = true
	return c, nil
}

// Clear fills the window with col.
func (c *Canvas) Clear(col renderer.Color) {
	rl.ClearBackground(col)
}

// DrawTexture draws the texture with its origin point at (t.X, t.Y).
func (c *Canvas) DrawTexture(id components.TextureID, t renderer.Transform) {
	tex, ok := c.atlas.texture(id)
	if !ok {
		return
	}
	w, h := float32(tex.Width), float32(tex.Height)
	src := rl.Rectangle{Width: w, Height: h}
	dst := rl.Rectangle{X: t.X, Y: t.Y, Width: w * t.Scale, Height: h * t.Scale}
	origin := rl.Vector2{X: t.OriginX * t.Scale, Y: t.OriginY * t.Scale}
	rl.DrawTexturePro(tex, src, dst, origin, t.Rotation*rad2deg, rl.White)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(text string, x, y, size float32, col renderer.Color) {
	rl.DrawTextEx(c.font, text, rl.Vector2{X: x, Y: y}, size, size/10, col)
}

// Unload releases the font if one was loaded from disk.
func (c *Canvas) Unload() {
	if c.customFont {
		rl.UnloadFont(c.font)
		c.customFont = false
	}
}

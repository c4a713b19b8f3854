// Package renderer defines the drawing surface the simulation renders to.
// The platform package implements it with raylib; Recorder implements it for
// headless runs and tests.
package renderer

import (
	"image/color"

	"github.com/pthm-cable/ratio/components"
)

// Transform places a texture in scene space. The texture's origin point is
// drawn at (X, Y) and the texture is rotated and scaled around it.
type Transform struct {
	X, Y             float32
	OriginX, OriginY float32 // local pivot in unscaled texture pixels
	Rotation         float32 // radians, clockwise
	Scale            float32
}

// Color is an 8-bit RGBA color.
type Color = color.RGBA

// Canvas receives the draw calls of one frame.
type Canvas interface {
	Clear(c Color)
	DrawTexture(id components.TextureID, t Transform)
	DrawText(text string, x, y, size float32, c Color)
}

// Texture is a loaded texture handle with its intrinsic size.
type Texture struct {
	ID            components.TextureID
	Width, Height float32
}

// Atlas loads textures once and hands out shared handles.
type Atlas interface {
	Load(path string) (Texture, error)
}

// SpriteTransform returns the transform drawing sprite s at pos with the
// given rotation. Center-anchored sprites pivot around their middle;
// top-left sprites draw from their corner.
func SpriteTransform(pos components.Position, s components.Sprite, rotation float32) Transform {
	t := Transform{X: pos.X, Y: pos.Y, Rotation: rotation, Scale: s.DrawScale()}
	if s.Anchor == components.AnchorCenter {
		t.OriginX, t.OriginY = s.Origin()
	}
	return t
}

// Common colors.
var (
	Black  = Color{R: 0, G: 0, B: 0, A: 255}
	White  = Color{R: 255, G: 255, B: 255, A: 255}
	Yellow = Color{R: 253, G: 249, B: 0, A: 255}
	Gray   = Color{R: 130, G: 130, B: 130, A: 255}
)

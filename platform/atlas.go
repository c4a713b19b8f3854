package platform

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/renderer"
)

// TextureAtlas loads textures onto the GPU once per path. IDs index the
// loaded textures and stay valid until Unload.
type TextureAtlas struct {
	textures []rl.Texture2D
	ids      map[string]components.TextureID
}

// NewTextureAtlas creates an empty atlas. A window must be open.
func NewTextureAtlas() *TextureAtlas {
	return &TextureAtlas{ids: make(map[string]components.TextureID)}
}

// Load returns the handle for path, loading the file on first use.
func (a *TextureAtlas) Load(path string) (renderer.Texture, error) {
	if id, ok := a.ids[path]; ok {
		return a.handle(id), nil
	}
	if _, err := os.Stat(path); err != nil {
		return renderer.Texture{}, fmt.Errorf("texture %q: %w", path, err)
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return renderer.Texture{}, fmt.Errorf("texture %q: failed to upload", path)
	}

	id := components.TextureID(len(a.textures))
	a.textures = append(a.textures, tex)
	a.ids[path] = id
	return a.handle(id), nil
}

func (a *TextureAtlas) handle(id components.TextureID) renderer.Texture {
	tex := a.textures[id]
	return renderer.Texture{ID: id, Width: float32(tex.Width), Height: float32(tex.Height)}
}

// texture returns the GPU texture for id.
func (a *TextureAtlas) texture(id components.TextureID) (rl.Texture2D, bool) {
	if int(id) >= len(a.textures) {
		return rl.Texture2D{}, false
	}
	return a.textures[id], true
}

// Unload releases every loaded texture.
func (a *TextureAtlas) Unload() {
	for _, tex := range a.textures {
		rl.UnloadTexture(tex)
	}
	a.textures = nil
	clear(a.ids)
}

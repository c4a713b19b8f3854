package renderer

import (
	"fmt"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/config"
)

// StaticAtlas hands out texture handles with sizes taken from config instead
// of decoding files. It backs headless runs and tools.
type StaticAtlas struct {
	sizes map[string][2]float32
	ids   map[string]components.TextureID
	next  components.TextureID
}

// NewStaticAtlas registers the configured textures.
func NewStaticAtlas(assets config.AssetsConfig) *StaticAtlas {
	a := &StaticAtlas{
		sizes: make(map[string][2]float32),
		ids:   make(map[string]components.TextureID),
	}
	for _, tex := range []config.TextureConfig{assets.Gear, assets.Paddle, assets.Ball} {
		a.Register(tex.Path, float32(tex.Width), float32(tex.Height))
	}
	return a
}

// Register adds or replaces the size for path.
func (a *StaticAtlas) Register(path string, width, height float32) {
	a.sizes[path] = [2]float32{width, height}
}

// Load returns the handle for path. Loading the same path twice returns the
// same ID.
func (a *StaticAtlas) Load(path string) (Texture, error) {
	size, ok := a.sizes[path]
	if !ok {
		return Texture{}, fmt.Errorf("texture %q: not registered", path)
	}
	id, ok := a.ids[path]
	if !ok {
		id = a.next
		a.next++
		a.ids[path] = id
	}
	return Texture{ID: id, Width: size[0], Height: size[1]}, nil
}

// Len returns the number of distinct textures handed out.
func (a *StaticAtlas) Len() int {
	return len(a.ids)
}

package components

// Rect is an axis-aligned rectangle in scene coordinates.
type Rect struct {
	X, Y, Width, Height float32
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float32 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float32 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// CenterY returns the y-coordinate of the rectangle's middle.
func (r Rect) CenterY() float32 { return r.Y + r.Height/2 }

// Contains reports whether (x, y) lies inside r. The left and top edges are
// inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() && r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// NewSprite builds a sprite, clamping negative sizes to zero.
func NewSprite(tex TextureID, width, height float32, anchor Anchor) Sprite {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Sprite{Texture: tex, Width: width, Height: height, Anchor: anchor, Scale: 1}
}

// DrawScale returns the scale to draw with.
func (s Sprite) DrawScale() float32 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// Origin returns the sprite's local pivot, half its intrinsic size.
func (s Sprite) Origin() (x, y float32) {
	return s.Width / 2, s.Height / 2
}

// Bounds returns the axis-aligned bounds at pos, from the intrinsic size.
func Bounds(pos Position, s Sprite) Rect {
	x, y := pos.X, pos.Y
	if s.Anchor == AnchorCenter {
		x -= s.Width / 2
		y -= s.Height / 2
	}
	return Rect{X: x, Y: y, Width: s.Width, Height: s.Height}
}

// Center returns the scene-space midpoint of the sprite at pos.
func Center(pos Position, s Sprite) (x, y float32) {
	if s.Anchor == AnchorCenter {
		return pos.X, pos.Y
	}
	return pos.X + s.Width/2, pos.Y + s.Height/2
}

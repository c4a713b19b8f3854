package components

import "testing"

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		sprite Sprite
		want   Rect
	}{
		{
			name:   "top-left anchor",
			pos:    Position{X: 10, Y: 20},
			sprite: NewSprite(0, 16, 96, AnchorTopLeft),
			want:   Rect{X: 10, Y: 20, Width: 16, Height: 96},
		},
		{
			name:   "center anchor",
			pos:    Position{X: 100, Y: 100},
			sprite: NewSprite(0, 64, 32, AnchorCenter),
			want:   Rect{X: 68, Y: 84, Width: 64, Height: 32},
		},
		{
			name:   "negative size clamped",
			pos:    Position{X: 1, Y: 2},
			sprite: NewSprite(0, -5, -5, AnchorTopLeft),
			want:   Rect{X: 1, Y: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Bounds(tc.pos, tc.sprite)
			if got != tc.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBoundsFollowPosition(t *testing.T) {
	s := NewSprite(0, 10, 10, AnchorTopLeft)
	pos := Position{X: 0, Y: 0}
	before := Bounds(pos, s)
	pos.X += 5
	after := Bounds(pos, s)
	if after.X != before.X+5 {
		t.Errorf("bounds did not move with position: %v -> %v", before, after)
	}
}

func TestCenter(t *testing.T) {
	x, y := Center(Position{X: 10, Y: 10}, NewSprite(0, 20, 40, AnchorTopLeft))
	if x != 20 || y != 30 {
		t.Errorf("top-left Center() = (%v, %v), want (20, 30)", x, y)
	}
	x, y = Center(Position{X: 10, Y: 10}, NewSprite(0, 20, 40, AnchorCenter))
	if x != 10 || y != 10 {
		t.Errorf("center Center() = (%v, %v), want (10, 10)", x, y)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		x, y float32
		want bool
	}{
		{0, 0, true},
		{5, 5, true},
		{9.99, 9.99, true},
		{10, 5, false},
		{5, 10, false},
		{-0.01, 5, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 32, Y: 312, Width: 16, Height: 96}
	if r.Left() != 32 || r.Right() != 48 || r.Top() != 312 || r.Bottom() != 408 {
		t.Errorf("edges = (%v, %v, %v, %v), want (32, 48, 312, 408)", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.CenterY() != 360 {
		t.Errorf("CenterY = %v, want 360", r.CenterY())
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(a); got != tc.want {
				t.Errorf("Intersects is not symmetric")
			}
		})
	}
}

func TestDrawScale(t *testing.T) {
	if (Sprite{}).DrawScale() != 1 {
		t.Error("zero scale should draw at 1")
	}
	if (Sprite{Scale: 0.5}).DrawScale() != 0.5 {
		t.Error("explicit scale ignored")
	}
}

// Package components defines ECS components for the simulation.
package components

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/input"
)

// TextureID indexes a texture loaded once by the atlas. Entities that show the
// same art share the same ID.
type TextureID uint16

// Anchor selects which point of the sprite Position refers to.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota // Position is the top-left corner
	AnchorCenter                // Position is the pivot at the sprite's middle
)

// Position represents an entity's scene position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's per-frame velocity.
type Velocity struct {
	X, Y float32
}

// Sprite links an entity to its texture and intrinsic size.
type Sprite struct {
	Texture TextureID
	Width   float32
	Height  float32
	Anchor  Anchor
	Scale   float32 // draw scale on both axes; 0 is treated as 1
}

// Spin holds rotation state for a gear.
type Spin struct {
	Rotation float32 // radians, never wrapped
	Speed    float32 // half-turns per frame, >= 0
	Friction float32 // flat per-frame speed loss
	MaxSpeed float32 // 0 = no ceiling
}

// Teeth is the tooth count of a meshed gear.
type Teeth struct {
	Count float32
}

// Mesh marks a driven gear turned by Driver through the tooth ratio.
type Mesh struct {
	Driver ecs.Entity
}

// Drivable marks a gear that takes input impulses.
type Drivable struct{}

// Scored marks the gear whose rotation feeds the score line.
type Scored struct{}

// Label is the caption shown while the pointer hovers an entity.
type Label struct {
	Text string
}

// Paddle is a keyboard-driven pong paddle.
type Paddle struct {
	Player int
	Up     input.Key
	Down   input.Key
	Speed  float32
}

// Ball holds the bounce tuning of a pong ball.
type Ball struct {
	Acceleration float32 // added to |vx| on each paddle hit
	Spin         float32 // vertical kick per unit of paddle offset
}

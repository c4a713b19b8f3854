package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/input"
)

// PaddleSystem moves paddles while their keys are held. Movement is a direct
// position edit with no acceleration.
type PaddleSystem struct {
	filter *ecs.Filter2[components.Position, components.Paddle]
}

// NewPaddleSystem creates a new paddle system.
func NewPaddleSystem(w *ecs.World) *PaddleSystem {
	return &PaddleSystem{
		filter: ecs.NewFilter2[components.Position, components.Paddle](w),
	}
}

// Update runs the paddle system.
func (s *PaddleSystem) Update(in input.Snapshot) {
	query := s.filter.Query()
	for query.Next() {
		pos, paddle := query.Get()
		if in.KeyDown(paddle.Up) {
			pos.Y -= paddle.Speed
		}
		if in.KeyDown(paddle.Down) {
			pos.Y += paddle.Speed
		}
	}
}

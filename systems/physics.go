// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
)

// Bounds represents the scene bounds.
type Bounds struct {
	Width, Height float32
}

// PhysicsSystem updates entity positions based on velocity.
type PhysicsSystem struct {
	filter *ecs.Filter2[components.Position, components.Velocity]
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World) *PhysicsSystem {
	return &PhysicsSystem{
		filter: ecs.NewFilter2[components.Position, components.Velocity](w),
	}
}

// Update runs one explicit Euler step: position += velocity.
func (s *PhysicsSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}
}

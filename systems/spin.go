package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
)

// pi32 is π at the precision gear state is kept in.
const pi32 = float32(math.Pi)

// Turn returns the rotation a gear covers in one frame at speed.
// Speed is in half-turns per frame.
func Turn(speed float32) float32 {
	return pi32 * speed
}

// ApplyFriction subtracts a flat friction from speed, never going below zero.
func ApplyFriction(speed, friction float32) float32 {
	speed -= friction
	if speed < 0 {
		return 0
	}
	return speed
}

// Advance moves a gear one frame: rotate at the current speed, then decay.
func Advance(s *components.Spin) {
	s.Rotation += Turn(s.Speed)
	s.Speed = ApplyFriction(s.Speed, s.Friction)
}

// SpinSystem advances every gear's rotation and applies friction.
type SpinSystem struct {
	filter *ecs.Filter1[components.Spin]
}

// NewSpinSystem creates a new spin system.
func NewSpinSystem(w *ecs.World) *SpinSystem {
	return &SpinSystem{
		filter: ecs.NewFilter1[components.Spin](w),
	}
}

// Update runs the spin system.
func (s *SpinSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		Advance(query.Get())
	}
}

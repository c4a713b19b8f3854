package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/input"
)

// Trigger selects which button state engages the drive.
type Trigger uint8

const (
	TriggerPress Trigger = iota // edge: only the frame the button goes down
	TriggerHold                 // level: every frame the button is held
)

// Impulse selects how an engaged drive changes gear speed.
type Impulse uint8

const (
	ImpulseAdd Impulse = iota // speed += step
	ImpulseSet                // speed = step
)

// DrivePolicy describes how input spins a drivable gear.
type DrivePolicy struct {
	Trigger      Trigger
	Impulse      Impulse
	Step         float32
	RequireHover bool // the pointer must be over the gear
}

// DrivePolicyFromConfig maps gear config onto a policy.
func DrivePolicyFromConfig(cfg config.GearConfig) DrivePolicy {
	p := DrivePolicy{
		Step:         float32(cfg.Step),
		RequireHover: cfg.RequireHover,
	}
	if cfg.Trigger == config.TriggerHold {
		p.Trigger = TriggerHold
	}
	if cfg.Impulse == config.ImpulseSet {
		p.Impulse = ImpulseSet
	}
	return p
}

// Engaged reports whether the button state fires the drive this frame.
func (p DrivePolicy) Engaged(in input.Snapshot) bool {
	if p.Trigger == TriggerHold {
		return in.LeftDown
	}
	return in.LeftPressed
}

// Apply changes spin speed by the impulse and clamps it to the gear's ceiling.
func (p DrivePolicy) Apply(s *components.Spin) {
	switch p.Impulse {
	case ImpulseSet:
		s.Speed = p.Step
	default:
		s.Speed += p.Step
	}
	if s.MaxSpeed > 0 && s.Speed > s.MaxSpeed {
		s.Speed = s.MaxSpeed
	}
	if s.Speed < 0 {
		s.Speed = 0
	}
}

// DriveSystem feeds input impulses into drivable gears.
type DriveSystem struct {
	filter *ecs.Filter4[components.Position, components.Sprite, components.Spin, components.Drivable]
	policy DrivePolicy
}

// NewDriveSystem creates a new drive system.
func NewDriveSystem(w *ecs.World, policy DrivePolicy) *DriveSystem {
	return &DriveSystem{
		filter: ecs.NewFilter4[components.Position, components.Sprite, components.Spin, components.Drivable](w),
		policy: policy,
	}
}

// Policy returns the active drive policy.
func (s *DriveSystem) Policy() DrivePolicy {
	return s.policy
}

// SetPolicy replaces the drive policy.
func (s *DriveSystem) SetPolicy(p DrivePolicy) {
	s.policy = p
}

// Update applies this frame's input and returns the number of gears that
// took an impulse.
func (s *DriveSystem) Update(in input.Snapshot) int {
	if !s.policy.Engaged(in) {
		return 0
	}
	mx, my := in.RoundedMouse()

	driven := 0
	query := s.filter.Query()
	for query.Next() {
		pos, sprite, spin, _ := query.Get()
		if s.policy.RequireHover && !components.Bounds(*pos, *sprite).Contains(mx, my) {
			continue
		}
		s.policy.Apply(spin)
		driven++
	}
	return driven
}

package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/input"
)

func TestDrivePolicyFromConfig(t *testing.T) {
	p := DrivePolicyFromConfig(config.GearConfig{
		Step:         0.1,
		Trigger:      config.TriggerHold,
		Impulse:      config.ImpulseSet,
		RequireHover: true,
	})
	if p.Trigger != TriggerHold || p.Impulse != ImpulseSet || !p.RequireHover {
		t.Errorf("unexpected policy %+v", p)
	}
	if !approx(p.Step, 0.1) {
		t.Errorf("step = %v, want 0.1", p.Step)
	}

	p = DrivePolicyFromConfig(config.GearConfig{Step: 0.05, Trigger: config.TriggerPress, Impulse: config.ImpulseAdd})
	if p.Trigger != TriggerPress || p.Impulse != ImpulseAdd || p.RequireHover {
		t.Errorf("unexpected policy %+v", p)
	}
}

func TestDrivePolicyEngaged(t *testing.T) {
	held := input.Snapshot{LeftDown: true}
	pressed := input.Click(0, 0)

	press := DrivePolicy{Trigger: TriggerPress}
	if press.Engaged(held) {
		t.Error("press trigger fired on a held button")
	}
	if !press.Engaged(pressed) {
		t.Error("press trigger did not fire on press")
	}

	hold := DrivePolicy{Trigger: TriggerHold}
	if !hold.Engaged(held) {
		t.Error("hold trigger did not fire on a held button")
	}
	if hold.Engaged(input.Snapshot{}) {
		t.Error("hold trigger fired with no button")
	}
}

func TestDrivePolicyApply(t *testing.T) {
	tests := []struct {
		name   string
		policy DrivePolicy
		spin   components.Spin
		want   float32
	}{
		{"add", DrivePolicy{Impulse: ImpulseAdd, Step: 0.25}, components.Spin{Speed: 0.5}, 0.75},
		{"set", DrivePolicy{Impulse: ImpulseSet, Step: 0.25}, components.Spin{Speed: 0.5}, 0.25},
		{"add clamped", DrivePolicy{Impulse: ImpulseAdd, Step: 0.5}, components.Spin{Speed: 0.75, MaxSpeed: 1}, 1},
		{"no ceiling", DrivePolicy{Impulse: ImpulseAdd, Step: 0.5}, components.Spin{Speed: 0.75}, 1.25},
		{"set clamped", DrivePolicy{Impulse: ImpulseSet, Step: 2}, components.Spin{MaxSpeed: 1}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spin := tc.spin
			tc.policy.Apply(&spin)
			if spin.Speed != tc.want {
				t.Errorf("speed = %v, want %v", spin.Speed, tc.want)
			}
		})
	}
}

// TestMaxSpeedHeldUnderRepeatedClicks clicks far more often than friction can
// bleed speed and checks the ceiling is never exceeded.
func TestMaxSpeedHeldUnderRepeatedClicks(t *testing.T) {
	policy := DrivePolicy{Impulse: ImpulseAdd, Step: 0.05}
	spin := components.Spin{Friction: 0.002, MaxSpeed: 1}
	for i := 0; i < 200; i++ {
		policy.Apply(&spin)
		if spin.Speed > spin.MaxSpeed {
			t.Fatalf("click %d: speed %v above ceiling", i, spin.Speed)
		}
		Advance(&spin)
	}
}

type driveFixture struct {
	world   *ecs.World
	spins   *ecs.Map[components.Spin]
	drivers ecs.Entity
	passive ecs.Entity
}

func newDriveFixture() driveFixture {
	w := ecs.NewWorld()
	drivable := ecs.NewMap4[components.Position, components.Sprite, components.Spin, components.Drivable](w)
	plain := ecs.NewMap3[components.Position, components.Sprite, components.Spin](w)

	sprite := components.NewSprite(0, 100, 100, components.AnchorCenter)
	driver := drivable.NewEntity(
		&components.Position{X: 200, Y: 200},
		&sprite,
		&components.Spin{},
		&components.Drivable{},
	)
	passive := plain.NewEntity(
		&components.Position{X: 200, Y: 200},
		&sprite,
		&components.Spin{},
	)
	return driveFixture{
		world:   w,
		spins:   ecs.NewMap[components.Spin](w),
		drivers: driver,
		passive: passive,
	}
}

func TestDriveSystemHover(t *testing.T) {
	tests := []struct {
		name         string
		requireHover bool
		x, y         float32
		wantDriven   int
	}{
		{"hover inside", true, 210, 190, 1},
		{"hover on top-left edge", true, 150, 150, 1},
		{"hover on right edge", true, 250, 200, 0},
		{"hover outside", true, 400, 400, 0},
		{"no hover needed", false, 400, 400, 1},
		{"rounded onto edge", true, 149.6, 150, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newDriveFixture()
			sys := NewDriveSystem(f.world, DrivePolicy{Step: 0.05, RequireHover: tc.requireHover})

			driven := sys.Update(input.Click(tc.x, tc.y))
			if driven != tc.wantDriven {
				t.Errorf("driven = %d, want %d", driven, tc.wantDriven)
			}
			want := float32(0)
			if tc.wantDriven > 0 {
				want = 0.05
			}
			if got := f.spins.Get(f.drivers).Speed; got != want {
				t.Errorf("driver speed = %v, want %v", got, want)
			}
			if got := f.spins.Get(f.passive).Speed; got != 0 {
				t.Errorf("non-drivable gear speed = %v, want 0", got)
			}
		})
	}
}

func TestDriveSystemNoInput(t *testing.T) {
	f := newDriveFixture()
	sys := NewDriveSystem(f.world, DrivePolicy{Step: 0.05})
	if n := sys.Update(input.Snapshot{}); n != 0 {
		t.Errorf("driven = %d with no input", n)
	}
}

func TestDriveSystemSetPolicy(t *testing.T) {
	f := newDriveFixture()
	sys := NewDriveSystem(f.world, DrivePolicy{Step: 0.05})
	sys.SetPolicy(DrivePolicy{Step: 0.5, Impulse: ImpulseSet})
	if sys.Policy().Step != 0.5 {
		t.Fatalf("policy not replaced: %+v", sys.Policy())
	}
	sys.Update(input.Click(0, 0))
	sys.Update(input.Click(0, 0))
	if got := f.spins.Get(f.drivers).Speed; got != 0.5 {
		t.Errorf("speed = %v, want 0.5 after two set impulses", got)
	}
}

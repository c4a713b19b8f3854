// Package game wires the ECS world, systems and HUD into a playable scene.
// It has no platform dependency: input arrives as input.Snapshot values and
// frames are drawn to a renderer.Canvas.
package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/renderer"
	"github.com/pthm-cable/ratio/systems"
	"github.com/pthm-cable/ratio/telemetry"
	"github.com/pthm-cable/ratio/ui"
)

// Options configures optional game behavior.
type Options struct {
	// LogStats logs window and perf stats on every flush.
	LogStats bool

	// Output receives CSV rows; nil disables file output.
	Output *telemetry.OutputManager

	// StatsCallback, if set, is called with every flushed window.
	StatsCallback func(stats telemetry.WindowStats)
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *ecs.World

	// Individual component mappers for lookups
	posMap    *ecs.Map[components.Position]
	spriteMap *ecs.Map[components.Sprite]
	velMap    *ecs.Map[components.Velocity]
	spinMap   *ecs.Map[components.Spin]

	drawFilter  *ecs.Filter2[components.Position, components.Sprite]
	labelFilter *ecs.Filter3[components.Position, components.Sprite, components.Label]

	// Systems
	drive   *systems.DriveSystem
	mesh    *systems.MeshSystem
	spin    *systems.SpinSystem
	paddles *systems.PaddleSystem
	ball    *systems.BallSystem
	physics *systems.PhysicsSystem

	// Key entities
	driver    ecs.Entity
	scored    ecs.Entity
	ballE     ecs.Entity
	hasGear   bool
	hasBall   bool
	pointerX  float32
	pointerY  float32
	pointerOK bool

	// UI
	hud       *ui.HUD
	perfPanel *ui.PerfPanel

	// State
	tick     int32
	paused   bool
	showPerf bool
	winner   systems.Winner

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	pending   []telemetry.Event
	opts      Options
}

// New builds the scene described by cfg. Textures are loaded through atlas.
func New(cfg *config.Config, atlas renderer.Atlas, opts Options) (*Game, error) {
	world := ecs.NewWorld()
	bounds := systems.Bounds{Width: cfg.Derived.ScreenW32, Height: cfg.Derived.ScreenH32}

	g := &Game{
		cfg:   cfg,
		world: world,

		posMap:    ecs.NewMap[components.Position](world),
		spriteMap: ecs.NewMap[components.Sprite](world),
		velMap:    ecs.NewMap[components.Velocity](world),
		spinMap:   ecs.NewMap[components.Spin](world),

		drawFilter:  ecs.NewFilter2[components.Position, components.Sprite](world),
		labelFilter: ecs.NewFilter3[components.Position, components.Sprite, components.Label](world),

		drive:   systems.NewDriveSystem(world, systems.DrivePolicyFromConfig(cfg.Gear)),
		mesh:    systems.NewMeshSystem(world),
		spin:    systems.NewSpinSystem(world),
		paddles: systems.NewPaddleSystem(world),
		ball:    systems.NewBallSystem(world, bounds),
		physics: systems.NewPhysicsSystem(world),

		hud:       ui.NewHUD(),
		perfPanel: ui.NewPerfPanel(cfg.Derived.ScreenW32-260, 16),

		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		opts:      opts,
	}

	var err error
	switch cfg.Mode {
	case config.ModePong:
		err = g.spawnPong(atlas)
	default:
		err = g.spawnGears(atlas)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s scene: %w", cfg.Mode, err)
	}
	return g, nil
}

// Config returns the configuration the game was built from.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Tick returns the number of simulated frames.
func (g *Game) Tick() int32 {
	return g.tick
}

// Finished reports whether the run has ended.
func (g *Game) Finished() bool {
	return g.winner != systems.NoWinner
}

// Winner returns the winner of a finished pong rally.
func (g *Game) Winner() systems.Winner {
	return g.winner
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// TogglePerf shows or hides the frame timing panel.
func (g *Game) TogglePerf() {
	g.showPerf = !g.showPerf
}

// Perf returns the frame timing collector. The frame loop starts and ends
// ticks on it; Update times its own phases.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}

// Rotation returns the scored gear's accumulated rotation, or 0 without gears.
func (g *Game) Rotation() float32 {
	if !g.hasGear {
		return 0
	}
	return g.spinMap.Get(g.scored).Rotation
}

// Score returns the current score derived from the scored gear.
func (g *Game) Score() float32 {
	return systems.Score(g.Rotation(), float32(g.cfg.Score.Depth))
}

// DriverSpin returns a copy of the driven-by-input gear's spin state.
func (g *Game) DriverSpin() (components.Spin, bool) {
	if !g.hasGear {
		return components.Spin{}, false
	}
	return *g.spinMap.Get(g.driver), true
}

// DriverCenter returns the middle of the input-driven gear in scene
// coordinates. Scripted clicks aim here.
func (g *Game) DriverCenter() (x, y float32, ok bool) {
	if !g.hasGear {
		return 0, 0, false
	}
	x, y = components.Center(*g.posMap.Get(g.driver), *g.spriteMap.Get(g.driver))
	return x, y, true
}

// Tuning holds the live-adjustable gear parameters.
type Tuning struct {
	Friction float32
	Step     float32
	MaxSpeed float32
}

// Tuning returns the current gear tuning.
func (g *Game) Tuning() Tuning {
	t := Tuning{Step: g.drive.Policy().Step}
	if g.hasGear {
		s := g.spinMap.Get(g.driver)
		t.Friction = s.Friction
		t.MaxSpeed = s.MaxSpeed
	}
	return t
}

// SetTuning applies new gear tuning. Negative values are clamped to zero.
func (g *Game) SetTuning(t Tuning) {
	t.Friction = max(t.Friction, 0)
	t.Step = max(t.Step, 0)
	t.MaxSpeed = max(t.MaxSpeed, 0)

	p := g.drive.Policy()
	p.Step = t.Step
	g.drive.SetPolicy(p)
	if g.hasGear {
		s := g.spinMap.Get(g.driver)
		s.Friction = t.Friction
		s.MaxSpeed = t.MaxSpeed
		if s.MaxSpeed > 0 && s.Speed > s.MaxSpeed {
			s.Speed = s.MaxSpeed
		}
	}
}

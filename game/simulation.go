package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/input"
	"github.com/pthm-cable/ratio/systems"
	"github.com/pthm-cable/ratio/telemetry"
)

// Update advances the simulation by one frame. Paused and finished games
// only track the pointer.
func (g *Game) Update(in input.Snapshot) {
	g.pointerX, g.pointerY = in.RoundedMouse()
	g.pointerOK = true

	if g.paused || g.Finished() {
		return
	}

	g.perf.StartPhase(telemetry.PhaseSimulate)
	g.tick++
	if g.cfg.Mode == config.ModePong {
		g.stepPong(in)
	} else {
		g.stepGears(in)
	}

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
}

// stepGears runs one gear frame: input impulse, mesh transfer, then spin and
// friction.
func (g *Game) stepGears(in input.Snapshot) {
	if g.drive.Update(in) > 0 {
		spin, _ := g.DriverSpin()
		g.record(telemetry.NewImpulseEvent(g.tick, spin.Speed))
	}
	g.mesh.Update()
	g.spin.Update()

	if spin, ok := g.DriverSpin(); ok {
		g.collector.SampleSpeed(spin.Speed)
	}
}

// stepPong runs one pong frame. Contacts are resolved on the ball's current
// bounds before it moves; the win check sees the new position.
func (g *Game) stepPong(in input.Snapshot) {
	g.paddles.Update(in)

	report := g.ball.Update()
	for _, player := range report.PaddleHits {
		g.record(telemetry.NewPaddleHitEvent(g.tick, player))
	}
	for i := 0; i < report.WallBounces; i++ {
		g.record(telemetry.NewWallBounceEvent(g.tick))
	}

	g.physics.Update()

	if g.hasBall {
		vel := g.velMap.Get(g.ballE)
		g.collector.SampleSpeed(float32(math.Hypot(float64(vel.X), float64(vel.Y))))
	}

	if w := g.ball.Winner(); w != systems.NoWinner {
		g.winner = w
		g.record(telemetry.NewWinEvent(g.tick, int(w)))
		slog.Info("rally finished", "winner", w.String(), "tick", g.tick)
	}
}

func (g *Game) record(e telemetry.Event) {
	g.collector.Record(e)
	g.pending = append(g.pending, e)
}

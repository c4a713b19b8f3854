package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances by a fixed step every time it is read.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestPerfCollector_PhaseTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	pc.now = clock.now

	// Each tick: start, simulate, draw, end = 4 reads, 3ms per tick.
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSimulate)
		pc.StartPhase(PhaseDraw)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 3*time.Millisecond {
		t.Errorf("avg tick = %v, want 3ms", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseSimulate] != time.Millisecond || stats.PhaseAvg[PhaseDraw] != time.Millisecond {
		t.Errorf("phase averages = %v", stats.PhaseAvg)
	}
	if _, ok := stats.PhaseAvg[PhaseInput]; ok {
		t.Error("untimed phase reported")
	}
	if stats.TicksPerSecond < 333 || stats.TicksPerSecond > 334 {
		t.Errorf("ticks/sec = %v, want ~333", stats.TicksPerSecond)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	pc.now = clock.now

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSimulate)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 2*time.Millisecond {
		t.Errorf("avg tick = %v, want 2ms", stats.AvgTickDuration)
	}
	if stats.MinTickDuration != stats.MaxTickDuration {
		t.Errorf("min %v != max %v for uniform ticks", stats.MinTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_Empty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.AvgTickDuration != 0 || stats.PhaseAvg == nil {
		t.Errorf("unexpected empty stats %+v", stats)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(5)
	clock := &fakeClock{t: time.Unix(0, 0), step: 20 * time.Millisecond}
	pc.now = clock.now

	pc.RecordFrame()
	pc.RecordFrame()
	if fps := pc.Stats().FPS; fps != 50 {
		t.Errorf("fps = %v, want 50", fps)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhaseSimulate: 25, PhaseDraw: 70},
	}
	row := s.ToCSV(120)
	if row.WindowEnd != 120 || row.AvgTickUS != 1500 || row.SimulatePct != 25 || row.DrawPct != 70 {
		t.Errorf("unexpected row %+v", row)
	}
}

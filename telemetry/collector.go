package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int32

	// Current window tracking
	windowStartTick int32
	startScore      float64

	// Event counters for current window
	impulses    int
	paddleHits  int
	wallBounces int

	speeds []float64
}

// NewCollector creates a new stats collector that flushes every
// windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int32(windowTicks),
		speeds:      make([]float64, 0, windowTicks),
	}
}

// Record counts an event.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventImpulse:
		c.impulses++
	case EventPaddleHit:
		c.paddleHits++
	case EventWallBounce:
		c.wallBounces++
	}
}

// SampleSpeed adds one tick's driver speed.
func (c *Collector) SampleSpeed(speed float32) {
	c.speeds = append(c.speeds, float64(speed))
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// rotation and score are the scored gear's state at currentTick.
func (c *Collector) Flush(currentTick int32, rotation, score float64) WindowStats {
	speed := ComputeSpeedStats(c.speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Impulses:    c.impulses,
		PaddleHits:  c.paddleHits,
		WallBounces: c.wallBounces,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,
		SpeedMax:  speed.Max,

		Rotation: rotation,
		Score:    score,
		Gained:   score - c.startScore,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.startScore = score
	c.impulses = 0
	c.paddleHits = 0
	c.wallBounces = 0
	c.speeds = c.speeds[:0]

	return stats
}

// WindowStartTick returns the tick the current window began at.
func (c *Collector) WindowStartTick() int32 {
	return c.windowStartTick
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowTicks
}

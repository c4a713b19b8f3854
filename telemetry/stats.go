package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Input and contacts during the window
	Impulses    int `csv:"impulses"`
	PaddleHits  int `csv:"paddle_hits"`
	WallBounces int `csv:"wall_bounces"`

	// Driver speed distribution (sampled every tick)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	// Score state at window end
	Rotation float64 `csv:"rotation"`
	Score    float64 `csv:"score"`
	Gained   float64 `csv:"score_gained"` // score earned within the window
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// SpeedStats summarizes a set of speed samples.
type SpeedStats struct {
	Mean, Std, P50, P90, Max float64
}

// ComputeSpeedStats calculates the mean, population standard deviation,
// percentiles and maximum of the samples.
func ComputeSpeedStats(values []float64) SpeedStats {
	if len(values) == 0 {
		return SpeedStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return SpeedStats{
		Mean: stat.Mean(sorted, nil),
		Std:  stat.PopStdDev(sorted, nil),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		Max:  floats.Max(sorted),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("impulses", s.Impulses),
		slog.Int("paddle_hits", s.PaddleHits),
		slog.Int("wall_bounces", s.WallBounces),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("rotation", s.Rotation),
		slog.Float64("score", s.Score),
		slog.Float64("score_gained", s.Gained),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

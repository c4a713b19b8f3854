package telemetry

import (
	"log/slog"
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeSpeedStats(t *testing.T) {
	values := []float64{0.4, 0.1, 0.3, 0.2}
	s := ComputeSpeedStats(values)

	if math.Abs(s.Mean-0.25) > 1e-9 {
		t.Errorf("mean = %v, want 0.25", s.Mean)
	}
	// Population std of {0.1, 0.2, 0.3, 0.4}.
	if math.Abs(s.Std-math.Sqrt(0.0125)) > 1e-9 {
		t.Errorf("std = %v, want %v", s.Std, math.Sqrt(0.0125))
	}
	if math.Abs(s.P50-0.25) > 1e-9 {
		t.Errorf("p50 = %v, want 0.25", s.P50)
	}
	if s.Max != 0.4 {
		t.Errorf("max = %v, want 0.4", s.Max)
	}
	if values[0] != 0.4 {
		t.Error("input slice was reordered")
	}
}

func TestComputeSpeedStatsEdges(t *testing.T) {
	if s := ComputeSpeedStats(nil); s != (SpeedStats{}) {
		t.Errorf("empty input gave %+v", s)
	}
	s := ComputeSpeedStats([]float64{0.5})
	if s.Mean != 0.5 || s.Std != 0 || s.Max != 0.5 {
		t.Errorf("single sample gave %+v", s)
	}
}

func TestWindowStatsLogValue(t *testing.T) {
	v := WindowStats{WindowEndTick: 600, Impulses: 3, Score: 1.5}.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("kind = %v, want group", v.Kind())
	}
	found := map[string]bool{}
	for _, a := range v.Group() {
		found[a.Key] = true
	}
	for _, key := range []string{"window_end", "impulses", "score", "speed_mean"} {
		if !found[key] {
			t.Errorf("missing attr %q", key)
		}
	}
}

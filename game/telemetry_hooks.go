package game

import (
	"log/slog"

)

// flushTelemetry writes the stats window once enough ticks have passed, and
// always after the rally ends.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) && !g.Finished() {
		return
	}
	g.flushWindow()
}

// Close flushes the partial stats window and any pending events. It does
// not close the output manager.
func (g *Game) Close() {
	if g.tick > g.collector.WindowStartTick() || len(g.pending) > 0 {
		g.flushWindow()
	}
}

func (g *Game) flushWindow() {
	stats := g.collector.Flush(g.tick, float64(g.Rotation()), float64(g.Score()))
	perfStats := g.perf.Stats()

	if g.opts.StatsCallback != nil {
		g.opts.StatsCallback(stats)
	}

	if g.opts.LogStats {
		stats.LogStats()
		slog.Info("perf", "tick", g.tick, "stats", perfStats)
	}

	if out := g.opts.Output; out != nil {
		if err := out.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := out.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		if err := out.WriteEvents(g.pending); err != nil {
			slog.Error("failed to write events", "error", err)
		}
	}
	g.pending = g.pending[:0]
}

package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/game"
	"github.com/pthm-cable/ratio/input"
	"github.com/pthm-cable/ratio/platform"
	"github.com/pthm-cable/ratio/renderer"
	"github.com/pthm-cable/ratio/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	scenario := flag.String("scenario", "", "Scenario preset: "+strings.Join(config.Scenarios(), ", ")+" (empty = config or default)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	autoclick := flag.Int("autoclick", 0, "Headless only: click the driver gear every N ticks (0 = never)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath, *scenario)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	if output != nil {
		if err := output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	opts := game.Options{
		LogStats: *logStats,
		Output:   output,
	}

	if *headless {
		err = runHeadless(cfg, opts, *maxTicks, *autoclick)
	} else {
		err = runWindowed(cfg, opts, *maxTicks)
	}

	if output != nil {
		if cerr := output.Close(); cerr != nil {
			slog.Error("failed to close output files", "error", cerr)
		}
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless steps the simulation without a window. A non-positive
// maxTicks runs until a pong rally ends, which never happens in gear mode.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks, autoclick int) error {
	g, err := game.New(cfg, renderer.NewStaticAtlas(cfg.Assets), opts)
	if err != nil {
		return err
	}
	defer g.Close()

	clicker := input.Autoclicker{Every: autoclick}
	if x, y, ok := g.DriverCenter(); ok {
		clicker.X, clicker.Y = x, y
	}

	slog.Info("starting headless simulation",
		"scenario", cfg.Scenario,
		"max_ticks", maxTicks,
		"autoclick", autoclick,
	)

	perf := g.Perf()
	for !g.Finished() {
		perf.StartTick()
		g.Update(clicker.Snapshot(g.Tick()))
		perf.EndTick()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}
	logResult(g)
	return nil
}

// runWindowed runs the interactive loop until the window closes or the
// rally ends.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) error {
	host, err := platform.Open(cfg)
	if err != nil {
		return err
	}
	defer host.Close()

	g, err := game.New(cfg, host.Atlas(), opts)
	if err != nil {
		return err
	}
	defer g.Close()
	host.Attach(g)

	slog.Info("starting simulation", "scenario", cfg.Scenario, "mode", cfg.Mode)

	perf := g.Perf()
	for !host.ShouldClose() {
		perf.StartTick()

		perf.StartPhase(telemetry.PhaseInput)
		host.HandleShellKeys(g)
		g.Update(host.PollInput())

		perf.StartPhase(telemetry.PhaseDraw)
		host.DrawFrame(g)
		perf.EndTick()
		perf.RecordFrame()

		if g.Finished() {
			break
		}
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	logResult(g)
	return nil
}

func logResult(g *game.Game) {
	if g.Finished() {
		slog.Info("game over", "winner", g.Winner().String(), "tick", g.Tick())
		return
	}
	slog.Info("stopped", "tick", g.Tick(), "rotation", g.Rotation(), "score", g.Score())
}

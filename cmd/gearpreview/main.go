// Gear tuning preview - plots driver speed and score for a scripted player
// while friction, step and click cadence are dragged around.
//
// Usage: go run ./cmd/gearpreview [-scenario meshed]
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/game"
	"github.com/pthm-cable/ratio/input"
	"github.com/pthm-cable/ratio/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	plotWidth    = 600
	plotHeight   = 300
	panelWidth   = windowWidth - plotWidth - 50
)

// PreviewParams holds the values under the sliders.
type PreviewParams struct {
	Friction float32
	Step     float32
	MaxSpeed float32
	Cadence  int // frames between clicks
	Frames   int
}

// trace is one simulated run.
type trace struct {
	speed []float32
	score []float32
	err   error
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	scenario := flag.String("scenario", "", "Gear scenario to preview")
	flag.Parse()

	cfg, err := config.Load(*configPath, *scenario)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Mode != config.ModeGear {
		log.Fatalf("scenario %q has no gear to preview", cfg.Scenario)
	}

	defaults := PreviewParams{
		Friction: float32(cfg.Gear.Friction),
		Step:     float32(cfg.Gear.Step),
		MaxSpeed: float32(cfg.Gear.MaxRotation),
		Cadence:  12,
		Frames:   1800,
	}
	params := defaults

	rl.InitWindow(windowWidth, windowHeight, "Gear Tuning Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	run := simulate(cfg, params)
	needsRerun := false

	for !rl.WindowShouldClose() {
		if needsRerun {
			run = simulate(cfg, params)
			needsRerun = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Plots
		drawPlot(10, 10, "Driver speed", run.speed, rl.DarkBlue)
		drawPlot(10, 30+plotHeight, "Score", run.score, rl.Maroon)

		statsY := int32(2*plotHeight + 50)
		if run.err != nil {
			rl.DrawText(run.err.Error(), 15, statsY, 16, rl.Red)
		} else if n := len(run.score); n > 0 {
			rl.DrawText(fmt.Sprintf("Final score: %.3f  Peak speed: %.4f", run.score[n-1], peak(run.speed)), 15, statsY, 16, rl.DarkGray)
		}

		// Control panel
		panelX := float32(plotWidth + 40)
		panelY := float32(10)

		rl.DrawText("Gear Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		if v, changed := slider(panelX, &panelY, "Friction (speed lost per frame)", "%.4f", params.Friction, 0, 0.05); changed {
			params.Friction = v
			needsRerun = true
		}
		if v, changed := slider(panelX, &panelY, "Step (impulse size)", "%.3f", params.Step, 0, 0.5); changed {
			params.Step = v
			needsRerun = true
		}
		if v, changed := slider(panelX, &panelY, "Max speed (0 = none)", "%.2f", params.MaxSpeed, 0, 4); changed {
			params.MaxSpeed = v
			needsRerun = true
		}
		if v, changed := slider(panelX, &panelY, "Click every N frames", "%.0f", float32(params.Cadence), 1, 120); changed && int(v) != params.Cadence {
			params.Cadence = int(v)
			needsRerun = true
		}
		if v, changed := slider(panelX, &panelY, "Frames simulated", "%.0f", float32(params.Frames), 60, 7200); changed && int(v) != params.Frames {
			params.Frames = int(v)
			needsRerun = true
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			needsRerun = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(strings.Join(yamlLines(params), "\n"))
		}

		rl.EndDrawing()
	}
}

// simulate plays a headless game of cfg with params applied.
func simulate(base *config.Config, params PreviewParams) trace {
	cfg := base.Clone()
	cfg.Gear.Friction = float64(params.Friction)
	cfg.Gear.Step = float64(params.Step)
	cfg.Gear.MaxRotation = float64(params.MaxSpeed)

	g, err := game.New(cfg, renderer.NewStaticAtlas(cfg.Assets), game.Options{})
	if err != nil {
		return trace{err: err}
	}
	clicker := input.Autoclicker{Every: params.Cadence}
	clicker.X, clicker.Y, _ = g.DriverCenter()

	t := trace{
		speed: make([]float32, 0, params.Frames),
		score: make([]float32, 0, params.Frames),
	}
	for i := 0; i < params.Frames; i++ {
		g.Update(clicker.Snapshot(g.Tick()))
		spin, _ := g.DriverSpin()
		t.speed = append(t.speed, spin.Speed)
		t.score = append(t.score, g.Score())
	}
	return t
}

// slider draws a labelled SliderBar and reports whether it moved.
func slider(x float32, y *float32, label, format string, value, lo, hi float32) (float32, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v, v != value
}

// drawPlot draws values as a polyline scaled to the plot box.
func drawPlot(x, y int32, title string, values []float32, col rl.Color) {
	rl.DrawRectangleLines(x, y, plotWidth, plotHeight, rl.DarkGray)
	rl.DrawText(title, x+6, y+6, 14, rl.Gray)
	if len(values) < 2 {
		return
	}

	top := peak(values)
	if top <= 0 {
		top = 1
	}
	rl.DrawText(fmt.Sprintf("%.3f", top), x+plotWidth-60, y+6, 12, rl.Gray)

	sx := float32(plotWidth) / float32(len(values)-1)
	sy := float32(plotHeight-24) / top
	prev := rl.Vector2{X: float32(x), Y: float32(y+plotHeight) - values[0]*sy}
	for i := 1; i < len(values); i++ {
		p := rl.Vector2{X: float32(x) + float32(i)*sx, Y: float32(y+plotHeight) - values[i]*sy}
		rl.DrawLineV(prev, p, col)
		prev = p
	}
}

func peak(values []float32) float32 {
	var top float32
	for _, v := range values {
		top = max(top, v)
	}
	return top
}

func yamlLines(p PreviewParams) []string {
	return []string{
		"gear:",
		fmt.Sprintf("  friction: %.4f", p.Friction),
		fmt.Sprintf("  step: %.3f", p.Step),
		fmt.Sprintf("  max_rotation: %.2f", p.MaxSpeed),
	}
}

package platform

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratio/game"
)

const (
	tuningWidth   = 300
	tuningHeight  = 230
	tuningPadding = 12
	sliderWidth   = 180
)

// TuningPanel is the F1 overlay for adjusting gear friction, impulse size
// and speed ceiling while the simulation runs. It draws in window
// coordinates.
type TuningPanel struct {
	x, y     float32
	visible  bool
	defaults game.Tuning

	// Slider upper bounds; lower bounds are zero.
	maxFriction float32
	maxStep     float32
	maxSpeed    float32
}

// NewTuningPanel creates a hidden panel whose Reset button restores defaults.
func NewTuningPanel(x, y float32, defaults game.Tuning) *TuningPanel {
	return &TuningPanel{
		x:           x,
		y:           y,
		defaults:    defaults,
		maxFriction: max(0.05, defaults.Friction*4),
		maxStep:     max(0.5, defaults.Step*4),
		maxSpeed:    max(2, defaults.MaxSpeed*2),
	}
}

// Toggle shows or hides the panel.
func (p *TuningPanel) Toggle() {
	p.visible = !p.visible
}

// Contains reports whether the window point (x, y) is over the visible panel.
func (p *TuningPanel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	return x >= p.x && x < p.x+tuningWidth && y >= p.y && y < p.y+tuningHeight
}

// Draw renders the panel and applies slider changes to g.
func (p *TuningPanel) Draw(g *game.Game) {
	if !p.visible {
		return
	}

	rl.DrawRectangle(int32(p.x), int32(p.y), tuningWidth, tuningHeight, rl.Color{R: 20, G: 20, B: 28, A: 230})
	rl.DrawRectangleLines(int32(p.x), int32(p.y), tuningWidth, tuningHeight, rl.Color{R: 80, G: 80, B: 100, A: 255})

	x := p.x + tuningPadding
	y := p.y + tuningPadding
	rl.DrawText("Tuning", int32(x), int32(y), 16, rl.White)
	y += 28

	if _, ok := g.DriverSpin(); !ok {
		rl.DrawText("No gear in this scene", int32(x), int32(y), 14, rl.Gray)
		return
	}

	t := g.Tuning()
	next := t

	next.Friction = p.slider(x, &y, "Friction", t.Friction, p.maxFriction, "%.4f")
	next.Step = p.slider(x, &y, "Step", t.Step, p.maxStep, "%.3f")
	next.MaxSpeed = p.slider(x, &y, "Max speed (0 = none)", t.MaxSpeed, p.maxSpeed, "%.2f")

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 28}, "Reset") {
		next = p.defaults
	}

	if next != t {
		g.SetTuning(next)
	}
}

// slider draws one labelled slider row and advances y past it.
func (p *TuningPanel) slider(x float32, y *float32, label string, value, hi float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 12, rl.Gray)
	*y += 16
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: sliderWidth, Height: 18},
		"", "",
		value, 0, hi,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+sliderWidth+10), int32(*y+2), 14, rl.LightGray)
	*y += 34
	return v
}

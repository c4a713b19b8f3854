// Package ui draws the heads-up display on top of the scene.
package ui

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/pthm-cable/ratio/renderer"
)

// Score line and label placement, in scene pixels.
const (
	ScoreX        = 16
	ScoreY        = 16
	LabelY        = 16
	LabelOffsetX  = -50 // labels start left of the gear's x
	ControlsInset = 25
)

// FormatScore renders the score line. Rounded scores show no decimals; raw
// scores show the shortest exact form of the value.
func FormatScore(label string, score float32, rounded bool) string {
	if rounded {
		return fmt.Sprintf("%s%.0f", label, score)
	}
	return label + strconv.FormatFloat(float64(score), 'f', -1, 32)
}

// HoverLabel is a caption shown while the pointer is over an entity.
type HoverLabel struct {
	X    float32 // entity x; the label is drawn at X + LabelOffsetX
	Text string
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	ScoreLabel   string
	Score        float32
	Rounded      bool
	ShowScore    bool
	Hover        []HoverLabel
	Winner       string // empty while the rally is live
	Paused       bool
	FontSize     float32
	ScreenWidth  float32
	ScreenHeight float32
}

// HUD renders the main heads-up display.
type HUD struct {
	Color renderer.Color
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{Color: renderer.White}
}

// Draw renders the HUD.
func (h *HUD) Draw(c renderer.Canvas, data HUDData) {
	size := data.FontSize
	if size <= 0 {
		size = 16
	}

	if data.ShowScore {
		c.DrawText(FormatScore(data.ScoreLabel, data.Score, data.Rounded), ScoreX, ScoreY, size, h.Color)
	}

	for _, l := range data.Hover {
		c.DrawText(l.Text, l.X+LabelOffsetX, LabelY, size, h.Color)
	}

	if data.Winner != "" {
		text := data.Winner + " wins"
		x := data.ScreenWidth/2 - float32(len(text))*size/4
		c.DrawText(text, x, data.ScreenHeight/2-size, size*2, renderer.Yellow)
	}

	if data.Paused {
		c.DrawText("PAUSED", ScoreX, data.ScreenHeight-ControlsInset-size, size, renderer.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(c renderer.Canvas, screenHeight float32, controls string) {
	c.DrawText(controls, ScoreX, screenHeight-ControlsInset, 14, renderer.Gray)
}

// PerfPanelData holds frame phase timings for display.
type PerfPanelData struct {
	Phases map[string]time.Duration
	Total  time.Duration
	TPS    float64
}

// PerfPanel renders the frame phase timing panel.
type PerfPanel struct {
	x, y float32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y float32) *PerfPanel {
	return &PerfPanel{x: x, y: y}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(c renderer.Canvas, data PerfPanelData) {
	x, y := p.x, p.y

	c.DrawText("Frame Phases", x, y, 16, renderer.White)
	y += 20

	c.DrawText(fmt.Sprintf("Total: %s  TPS: %.0f", data.Total.Round(time.Microsecond), data.TPS), x, y, 14, renderer.Yellow)
	y += 16

	names := make([]string, 0, len(data.Phases))
	for name := range data.Phases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		avg := data.Phases[name]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}
		c.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct),
			x, y, 12, renderer.Gray,
		)
		y += 14
	}
}

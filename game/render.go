package game

import (
	"time"

	"github.com/pthm-cable/ratio/components"
	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/renderer"
	"github.com/pthm-cable/ratio/telemetry"
	"github.com/pthm-cable/ratio/ui"
)

// Controls is the key legend drawn along the bottom edge.
const Controls = "Space: pause | F1: tuning | F3: perf | F11: fullscreen"

// Draw renders the scene and HUD.
func (g *Game) Draw(c renderer.Canvas) {
	bg := g.cfg.Screen.Background
	c.Clear(renderer.Color{R: bg[0], G: bg[1], B: bg[2], A: 255})

	query := g.drawFilter.Query()
	for query.Next() {
		pos, sprite := query.Get()
		var rotation float32
		if e := query.Entity(); g.spinMap.Has(e) {
			rotation = g.spinMap.Get(e).Rotation
		}
		c.DrawTexture(sprite.Texture, renderer.SpriteTransform(*pos, *sprite, rotation))
	}

	g.hud.Draw(c, g.hudData())
	g.hud.DrawControls(c, g.cfg.Derived.ScreenH32, Controls)

	if g.showPerf {
		g.perfPanel.Draw(c, perfPanelData(g.perf.Stats()))
	}
}

// HoverLabels returns the captions of labelled entities under the pointer.
func (g *Game) HoverLabels() []ui.HoverLabel {
	if !g.pointerOK {
		return nil
	}
	var labels []ui.HoverLabel
	query := g.labelFilter.Query()
	for query.Next() {
		pos, sprite, label := query.Get()
		if components.Bounds(*pos, *sprite).Contains(g.pointerX, g.pointerY) {
			labels = append(labels, ui.HoverLabel{X: pos.X, Text: label.Text})
		}
	}
	return labels
}

func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		ScoreLabel:   g.cfg.Score.Label,
		Score:        g.Score(),
		Rounded:      g.cfg.Score.Rounded,
		ShowScore:    g.cfg.Mode == config.ModeGear,
		Hover:        g.HoverLabels(),
		Paused:       g.paused,
		FontSize:     float32(g.cfg.Assets.Font.Size),
		ScreenWidth:  g.cfg.Derived.ScreenW32,
		ScreenHeight: g.cfg.Derived.ScreenH32,
	}
	if g.Finished() {
		data.Winner = g.winner.String()
	}
	return data
}

func perfPanelData(s telemetry.PerfStats) ui.PerfPanelData {
	phases := make(map[string]time.Duration, len(s.PhaseAvg))
	for name, d := range s.PhaseAvg {
		phases[name] = d
	}
	return ui.PerfPanelData{
		Phases: phases,
		Total:  s.AvgTickDuration,
		TPS:    s.TicksPerSecond,
	}
}

package main

import (
	"math"

	"github.com/pthm-cable/ratio/config"
	"github.com/pthm-cable/ratio/game"
	"github.com/pthm-cable/ratio/input"
	"github.com/pthm-cable/ratio/renderer"
	"github.com/pthm-cable/ratio/telemetry"
)

// FitnessEvaluator runs headless gear games and scores how far their pace
// lands from the target.
type FitnessEvaluator struct {
	params      *ParamVector
	baseConfig  *config.Config
	ticks       int32
	cadences    []int
	targetScore float64

	lastScores     []float64
	lastSaturation float64
}

// NewFitnessEvaluator creates an evaluator. Every evaluation plays one game
// per click cadence, each for ticks frames.
func NewFitnessEvaluator(params *ParamVector, baseCfg *config.Config, ticks int32, cadences []int, targetScore float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		baseConfig:  baseCfg,
		ticks:       ticks,
		cadences:    cadences,
		targetScore: targetScore,
	}
}

// runResult holds the results from a single simulation run.
type runResult struct {
	score       float64
	windowStats []telemetry.WindowStats // collected via StatsCallback each window
}

// Evaluate computes fitness for a parameter vector (lower = better): the
// mean squared relative error between each cadence's final score and the
// target.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	scale := math.Max(math.Abs(fe.targetScore), 1)
	scores := make([]float64, 0, len(fe.cadences))
	var total, saturation float64

	for _, every := range fe.cadences {
		result, err := fe.runSimulation(cfg, every)
		if err != nil {
			return math.Inf(1)
		}
		scores = append(scores, result.score)
		diff := (result.score - fe.targetScore) / scale
		total += diff * diff
		saturation += saturationShare(result.windowStats, cfg.Gear.MaxRotation)
	}

	n := float64(len(fe.cadences))
	fe.lastScores = scores
	fe.lastSaturation = saturation / n
	return total / n
}

// LastScores returns the per-cadence scores of the most recent evaluation.
func (fe *FitnessEvaluator) LastScores() []float64 {
	return fe.lastScores
}

// LastSaturation returns the share of stats windows, averaged over
// cadences, in which the driver reached its speed ceiling.
func (fe *FitnessEvaluator) LastSaturation() float64 {
	return fe.lastSaturation
}

// runSimulation plays one headless game clicking the driver every `every`
// frames.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, every int) (runResult, error) {
	var result runResult
	g, err := game.New(cfg, renderer.NewStaticAtlas(cfg.Assets), game.Options{
		StatsCallback: func(s telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, s)
		},
	})
	if err != nil {
		return result, err
	}

	clicker := input.Autoclicker{Every: every}
	clicker.X, clicker.Y, _ = g.DriverCenter()

	for g.Tick() < fe.ticks && !g.Finished() {
		g.Update(clicker.Snapshot(g.Tick()))
	}
	g.Close()

	result.score = float64(g.Score())
	return result, nil
}

// saturationShare returns the fraction of windows whose peak speed reached
// ceiling. A zero ceiling never saturates.
func saturationShare(windows []telemetry.WindowStats, ceiling float64) float64 {
	if ceiling <= 0 || len(windows) == 0 {
		return 0
	}
	hit := 0
	for _, w := range windows {
		if w.SpeedMax >= ceiling-1e-6 {
			hit++
		}
	}
	return float64(hit) / float64(len(windows))
}

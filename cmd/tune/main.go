// Package main fits gear friction, impulse step and speed ceiling so that
// scripted players land on a target score.
//
// Usage: go run ./cmd/tune -output out/tune -target 10
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/ratio/config"
)

// evalRow is one line of tune_log.csv.
type evalRow struct {
	Eval        int     `csv:"eval"`
	Fitness     float64 `csv:"fitness"`
	Friction    float64 `csv:"friction"`
	Step        float64 `csv:"step"`
	MaxRotation float64 `csv:"max_rotation"`
	MeanScore   float64 `csv:"mean_score"`
	Saturation  float64 `csv:"saturation"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

// parseCadences parses a comma-separated list of positive click intervals.
func parseCadences(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("cadence %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("cadence %d: must be positive", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no cadences in %q", s)
	}
	return out, nil
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return stat.Mean(v, nil)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	scenario := flag.String("scenario", "", "Scenario preset to tune (must be a gear scenario)")
	ticks := flag.Int("ticks", 3600, "Frames per game")
	cadenceList := flag.String("cadences", "6,12,30", "Comma-separated click intervals in frames, one game each")
	target := flag.Float64("target", 10, "Score every game should reach after -ticks frames")
	maxEvals := flag.Int("max-evals", 150, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	cadences, err := parseCadences(*cadenceList)
	if err != nil {
		log.Fatalf("invalid --cadences: %v", err)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	baseCfg, err := config.Load(*configPath, *scenario)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if baseCfg.Mode != config.ModeGear {
		log.Fatalf("scenario %q has no gear to tune", baseCfg.Scenario)
	}

	params := NewParamVector(baseCfg)
	evaluator := NewFitnessEvaluator(params, baseCfg, int32(*ticks), cadences, *target)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return evaluator.Evaluate(params.Denormalize(x))
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}
	method := &optimize.NelderMead{}

	// Open log file
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()
	headerWritten := false

	evalCount := 0
	bestFitness := math.Inf(1)
	var bestParams []float64
	startTime := time.Now()

	// Wrap the function to log evaluations
	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		// Log clamped values, these are the ones the game used
		clamped := params.Clamp(params.Denormalize(x))
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = clamped
		}

		row := []evalRow{{
			Eval:        evalCount,
			Fitness:     fitness,
			Friction:    clamped[0],
			Step:        clamped[1],
			MaxRotation: clamped[2],
			MeanScore:   mean(evaluator.LastScores()),
			Saturation:  evaluator.LastSaturation(),
		}}
		var werr error
		if headerWritten {
			werr = gocsv.MarshalWithoutHeaders(row, logFile)
		} else {
			werr = gocsv.Marshal(row, logFile)
			headerWritten = true
		}
		if werr != nil {
			log.Printf("failed to log evaluation %d: %v", evalCount, werr)
		}

		elapsed := time.Since(startTime)
		avgPerEval := elapsed / time.Duration(evalCount)
		remaining := time.Duration(*maxEvals-evalCount) * avgPerEval

		fmt.Printf("Eval %d/%d: fitness=%.5f scores=%v saturation=%.2f (best=%.5f) | elapsed: %s, ETA: %s\n",
			evalCount, *maxEvals, fitness, evaluator.LastScores(), evaluator.LastSaturation(), bestFitness,
			formatDuration(elapsed), formatDuration(remaining))

		return fitness
	}

	fmt.Printf("Starting Nelder-Mead with %d parameters, max_evals=%d\n", params.Dim(), *maxEvals)
	fmt.Printf("Cadences: %v, ticks per game: %d, target score: %g\n", cadences, *ticks, *target)

	initX := params.Normalize(params.DefaultVector())
	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// Use best params found (may be from any evaluation, not just final)
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		log.Fatal("no evaluation completed")
	}

	totalTime := time.Since(startTime)
	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(totalTime))
	fmt.Printf("Best fitness: %.6f\n", bestFitness)

	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, bestParams[i])
	}

	// Save best config
	bestCfg := baseCfg.Clone()
	params.ApplyToConfig(bestCfg, bestParams)

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}

package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/gatimetabling/internal/config"
	"github.com/limaJavier/gatimetabling/pkg/ga"
	"github.com/limaJavier/gatimetabling/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const sampleTestName = "sample"

type SelectionType int

const (
	tournament SelectionType = iota
	roulette
)

var selectionTypes = map[SelectionType]string{
	tournament: "tournament",
	roulette:   "roulette",
}

type TestMetadata struct {
	Name    string
	Catalog *model.Catalog
	Grid    model.Grid
}

type BenchmarkResult struct {
	Selection  string  `csv:"selection"`
	Test       string  `csv:"test"`
	Seed       uint64  `csv:"seed"`
	Fitness    float64 `csv:"fitness"`
	Conflicts  int     `csv:"conflicts"`
	Doubles    int     `csv:"doubles"`
	Triples    int     `csv:"triples"`
	Quadruples int     `csv:"quadruples"`
	Valid      bool    `csv:"valid"`
	Duration   int64   `csv:"duration_ms"`
}

type Summary struct {
	Selection   string
	Test        string
	Runs        int
	BestFitness float64
	MeanFitness float64
	StdFitness  float64
	Conflicts   float64 // Mean conflicts of the best individuals
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := lo.Must(zap.NewDevelopment())
	defer logger.Sync()

	directoryPtr := flag.String("dir", "", "Directory of JSON catalogs to benchmark; if empty, only the built-in sample curriculum is used")
	runsPtr := flag.Int("runs", 10, "Number of runs (seeds) per selection strategy and test")
	baseSeedPtr := flag.Uint64("seed", 1000, "Base seed; run i uses seed+i")
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the output CSV file")
	flag.Parse()

	tests, err := getTests(*directoryPtr, cfg.Grid)
	if err != nil {
		logger.Fatal("cannot load tests", zap.Error(err))
	}

	results := make([]*BenchmarkResult, 0, len(tests)*len(selectionTypes)*(*runsPtr))
	for _, test := range tests {
		for _, selection := range []SelectionType{tournament, roulette} {
			logger.Info("benchmarking",
				zap.String("test", test.Name),
				zap.String("selection", selectionTypes[selection]),
			)
			for run := range *runsPtr {
				seed := *baseSeedPtr + uint64(run)
				result, err := measure(test, selection, cfg.GA, seed)
				if err != nil {
					logger.Fatal("run failed", zap.String("test", test.Name), zap.Uint64("seed", seed), zap.Error(err))
				}
				results = append(results, result)
			}
		}
	}

	if err := toCsv(results, *outPtr); err != nil {
		logger.Fatal("cannot write results", zap.Error(err))
	}
	for _, summary := range summarize(results) {
		logger.Info("summary",
			zap.String("test", summary.Test),
			zap.String("selection", summary.Selection),
			zap.Int("runs", summary.Runs),
			zap.Float64("bestFitness", summary.BestFitness),
			zap.Float64("meanFitness", summary.MeanFitness),
			zap.Float64("stdFitness", summary.StdFitness),
			zap.Float64("meanConflicts", summary.Conflicts),
		)
	}
}

func getTests(directory string, grid model.Grid) ([]TestMetadata, error) {
	tests := []TestMetadata{{Name: sampleTestName, Catalog: model.SampleCatalog(), Grid: grid}}
	if directory == "" {
		return tests, nil
	}

	files, err := filepath.Glob(filepath.Join(directory, "*.json"))
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		input, err := model.CatalogFromJson(file)
		if err != nil {
			return nil, fmt.Errorf("cannot parse input file %v: %w", file, err)
		}
		testGrid := grid
		if input.Grid != nil {
			testGrid = *input.Grid
		}
		tests = append(tests, TestMetadata{Name: file, Catalog: input.Catalog, Grid: testGrid})
	}
	return tests, nil
}

func measure(test TestMetadata, selection SelectionType, gaConfig ga.Config, seed uint64) (*BenchmarkResult, error) {
	gaConfig.UseTournament = selection == tournament
	timetabler := ga.NewTimetabler(test.Grid, gaConfig, rand.New(rand.NewPCG(seed, seed)))

	start := time.Now()
	timetable, err := timetabler.Build(test.Catalog)
	if err != nil {
		return nil, err
	}
	duration := time.Since(start)

	metrics := timetable.Metrics()
	return &BenchmarkResult{
		Selection:  selectionTypes[selection],
		Test:       test.Name,
		Seed:       seed,
		Fitness:    ga.FitnessOf(metrics),
		Conflicts:  metrics.Conflicts,
		Doubles:    metrics.Doubles,
		Triples:    metrics.Triples,
		Quadruples: metrics.Quadruples,
		Valid:      timetabler.Verify(timetable),
		Duration:   duration.Milliseconds(),
	}, nil
}

func toCsv(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	return gocsv.MarshalFile(&results, file)
}

func summarize(results []*BenchmarkResult) []Summary {
	groups := lo.GroupBy(results, func(result *BenchmarkResult) [2]string {
		return [2]string{result.Test, result.Selection}
	})

	summaries := make([]Summary, 0, len(groups))
	for key, group := range groups {
		fitness := lo.Map(group, func(result *BenchmarkResult, _ int) float64 { return result.Fitness })
		mean := lo.Mean(fitness)

		variance := 0.0
		if len(fitness) >= 2 {
			for _, value := range fitness {
				variance += (value - mean) * (value - mean)
			}
			variance /= float64(len(fitness) - 1)
		}

		summaries = append(summaries, Summary{
			Test:        key[0],
			Selection:   key[1],
			Runs:        len(group),
			BestFitness: lo.Max(fitness),
			MeanFitness: mean,
			StdFitness:  math.Sqrt(variance),
			Conflicts:   lo.MeanBy(group, func(result *BenchmarkResult) float64 { return float64(result.Conflicts) }),
		})
	}
	return summaries
}

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/gatimetabling/internal/config"
	"github.com/limaJavier/gatimetabling/pkg/ga"
	"github.com/limaJavier/gatimetabling/pkg/model"
	"go.uber.org/zap"
)

const progressInterval = time.Second

var (
	validStrategies = []string{"tournament", "roulette"}
	validFormats    = []string{"json", "csv"}
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)
	defer logger.Sync()

	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the catalog file; if empty, the built-in sample curriculum is used")
	formatPtr := flag.String("format", "", "Catalog format. Allowed values are: \"json\" and \"csv\"; if empty, it's inferred from the file extension")
	delimiterPtr := flag.String("delimiter", ",", "Field delimiter of CSV catalogs")
	strategyPtr := flag.String("strategy", "", "Parent selection. Allowed values are: \"tournament\" and \"roulette\"; if empty, GA_USE_TOURNAMENT decides")
	seedPtr := flag.Uint64("seed", cfg.Seed, "Seed of the random source; 0 draws one from the clock")
	popSizePtr := flag.Int("pop", cfg.GA.PopSize, "Population size")
	generationsPtr := flag.Int("generations", cfg.GA.Generations, "Number of generations")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	filePath := *filePathPtr
	format := strings.ToLower(*formatPtr)
	strategy := strings.ToLower(*strategyPtr)
	outFile := *outFilePathPtr

	if format == "" && filePath != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	}

	// Validate arguments
	if strategy != "" && !slices.Contains(validStrategies, strategy) {
		logger.Fatal("invalid strategy", zap.String("strategy", strategy))
	} else if filePath != "" && !slices.Contains(validFormats, format) {
		logger.Fatal("invalid catalog format", zap.String("format", format))
	} else if len([]rune(*delimiterPtr)) != 1 {
		logger.Fatal("delimiter must be a single character", zap.String("delimiter", *delimiterPtr))
	}

	// Extract input
	catalog, grid, parameters, err := loadCatalog(filePath, format, []rune(*delimiterPtr)[0], cfg.Grid)
	if err != nil {
		logger.Fatal("cannot parse input file", zap.String("file", filePath), zap.Error(err))
	}

	// Resolve parameters: environment, then input document, then flags
	gaConfig, err := cfg.GA.WithParameters(parameters)
	if err != nil {
		logger.Fatal("invalid parameters in input file", zap.Error(err))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pop":
			gaConfig.PopSize = *popSizePtr
		case "generations":
			gaConfig.Generations = *generationsPtr
		}
	})
	if strategy != "" {
		gaConfig.UseTournament = strategy == "tournament"
	}

	seed := *seedPtr
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Initialize engine
	engine, err := ga.NewEngine(catalog, grid, gaConfig, rand.New(rand.NewPCG(seed, seed)), ga.WithLogger(logger))
	var capacityErr *model.CapacityError
	if errors.As(err, &capacityErr) {
		logger.Error("catalog over-subscribes a term", zap.Error(err))
		os.Exit(20)
	} else if err != nil {
		logger.Fatal("cannot initialize engine", zap.Error(err))
	}
	logger.Info("engine initialized",
		zap.String("run", engine.ID()),
		zap.Uint64("seed", seed),
		zap.Any("parameters", gaConfig),
		zap.Any("grid", grid),
	)

	// Run on a worker and poll its progress
	result := await(engine, logger)

	// Verify timetable correctness
	if !model.Verify(result.Best) {
		logger.Error("verification failed", zap.String("run", result.RunID))
		os.Exit(15)
	}

	// Marshal output into json
	outputJson, err := json.Marshal(buildOutput(result, seed))
	if err != nil {
		logger.Fatal("an error occurred while building output json", zap.Error(err))
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(outputJson))
	} else if err := os.WriteFile(outFile, outputJson, 0666); err != nil {
		logger.Fatal("an error occurred while writing to the output file", zap.Error(err))
	}

	logger.Sync()
	os.Exit(10)
}

func newLogger(cfg *config.Config) *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	if cfg.Environment == "development" {
		zapConfig = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapConfig.Level = level
	}
	// Keep the Standard Output free for the timetable
	zapConfig.OutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadCatalog(filePath, format string, delimiter rune, grid model.Grid) (*model.Catalog, model.Grid, map[string]any, error) {
	if filePath == "" {
		return model.SampleCatalog(), grid, nil, nil
	}

	switch format {
	case "json":
		input, err := model.CatalogFromJson(filePath)
		if err != nil {
			return nil, grid, nil, err
		}
		if input.Grid != nil {
			grid = *input.Grid
		}
		return input.Catalog, grid, input.Parameters, nil
	case "csv":
		file, err := os.Open(filePath)
		if err != nil {
			return nil, grid, nil, err
		}
		defer file.Close()
		catalog, err := model.CatalogFromCsv(file, delimiter)
		return catalog, grid, nil, err
	}
	return nil, grid, nil, fmt.Errorf("unsupported format \"%v\"", format)
}

func await(engine *ga.Engine, logger *zap.Logger) ga.Result {
	done := engine.Start()
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case result := <-done:
			return result
		case <-ticker.C:
			history := engine.History()
			if len(history) == 0 {
				continue
			}
			last := history[len(history)-1]
			logger.Info("progress",
				zap.Int("generation", last.Generation),
				zap.Float64("bestFitness", last.BestFitness),
			)
		}
	}
}

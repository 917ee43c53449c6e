package ga

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/limaJavier/gatimetabling/pkg/model"
	"go.uber.org/zap"
)

// Engine evolves a fixed-size population of timetables. An engine belongs to the caller that runs it;
// History is the only method safe to call while Run is in progress on another goroutine.
type Engine struct {
	id       string
	grid     model.Grid
	catalog  *model.Catalog
	config   Config
	rng      *rand.Rand
	logger   *zap.Logger
	selector selector

	population []*model.Timetable
	scores     []float64
	history    history
	duration   time.Duration
}

type Option func(engine *Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(engine *Engine) {
		engine.logger = logger
	}
}

// Result is the outcome of a run
type Result struct {
	RunID    string
	Best     *model.Timetable
	Fitness  float64
	Metrics  model.Metrics
	History  []Record
	Duration time.Duration
}

// NewEngine validates its inputs and seeds the initial population.
// A *model.CapacityError from any individual aborts construction.
func NewEngine(catalog *model.Catalog, grid model.Grid, config Config, rng *rand.Rand, options ...Option) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("catalog must contain at least one subject")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is not initialized (nil)")
	}

	engine := &Engine{
		id:       uuid.NewString(),
		grid:     grid,
		catalog:  catalog,
		config:   config,
		rng:      rng,
		logger:   zap.NewNop(),
		selector: newSelector(config),
	}
	for _, option := range options {
		option(engine)
	}
	engine.logger = engine.logger.With(zap.String("run", engine.id))

	//** Seed population
	engine.population = make([]*model.Timetable, 0, config.PopSize)
	for range config.PopSize {
		individual, err := engine.randomIndividual()
		if err != nil {
			return nil, err
		}
		engine.population = append(engine.population, individual)
	}
	engine.scores = evaluate(engine.population)

	engine.logger.Debug("initial population seeded",
		zap.Int("population", config.PopSize),
		zap.Int("subjects", catalog.Len()),
		zap.Float64("bestFitness", engine.scores[engine.bestIndex()]),
	)
	return engine, nil
}

func (engine *Engine) randomIndividual() (*model.Timetable, error) {
	timetable := model.NewTimetable(engine.grid, engine.catalog)
	if err := timetable.AssignSubjectsRandomly(engine.rng); err != nil {
		return nil, err
	}
	return timetable, nil
}

func evaluate(population []*model.Timetable) []float64 {
	scores := make([]float64, len(population))
	for i, individual := range population {
		scores[i] = Fitness(individual)
	}
	return scores
}

// Run evolves the population for the configured number of generations and returns the fittest individual.
// Nothing inside the generation loop blocks or performs I/O.
func (engine *Engine) Run() *model.Timetable {
	start := time.Now()
	offset := engine.history.len()
	popSize := engine.config.PopSize
	elites := min(engine.config.ElitismSize, popSize)

	for generation := range engine.config.Generations {
		//** Rank current population by descending fitness
		order := make([]int, popSize)
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(engine.scores[b], engine.scores[a])
		})

		//** Carry elites unchanged
		next := make([]*model.Timetable, 0, popSize)
		for _, index := range order[:elites] {
			next = append(next, engine.population[index])
		}

		//** Breed the remainder
		for len(next) < popSize {
			parent1 := engine.selector.Select(engine.population, engine.scores, engine.rng)
			parent2 := engine.selector.Select(engine.population, engine.scores, engine.rng)

			var child *model.Timetable
			if engine.rng.Float64() < engine.config.CrossoverProb {
				child = crossover(parent1, parent2, engine.rng)
			} else {
				child = parent1.Clone()
			}
			if engine.rng.Float64() < engine.config.MutationRate {
				mutate(child, engine.rng)
			}
			next = append(next, child)
		}

		//** Replace and record
		engine.population = next
		engine.scores = evaluate(next)
		engine.history.append(Record{
			Generation:  offset + generation,
			BestFitness: engine.scores[engine.bestIndex()],
		})
	}
	engine.duration += time.Since(start)

	best := engine.Best()
	engine.logger.Info("run finished",
		zap.Int("generations", engine.config.Generations),
		zap.Float64("bestFitness", Fitness(best)),
		zap.Duration("duration", engine.duration),
	)
	return best
}

// Start runs the engine on a new goroutine. The channel delivers the result once the run completes;
// a run cannot be interrupted. Until then only History may be called; Best, Result and Config race with the run.
func (engine *Engine) Start() <-chan Result {
	done := make(chan Result, 1)
	go func() {
		engine.Run()
		done <- engine.Result()
		close(done)
	}()
	return done
}

func (engine *Engine) bestIndex() int {
	best := 0
	for i, score := range engine.scores {
		if score > engine.scores[best] {
			best = i
		}
	}
	return best
}

// Best returns the fittest individual of the current population
func (engine *Engine) Best() *model.Timetable {
	return engine.population[engine.bestIndex()]
}

// History returns a copy of the per-generation best fitness records
func (engine *Engine) History() []Record {
	return engine.history.snapshot()
}

func (engine *Engine) ID() string {
	return engine.id
}

func (engine *Engine) Config() Config {
	return engine.config
}

func (engine *Engine) Result() Result {
	best := engine.Best()
	metrics := best.Metrics()
	return Result{
		RunID:    engine.id,
		Best:     best,
		Fitness:  FitnessOf(metrics),
		Metrics:  metrics,
		History:  engine.History(),
		Duration: engine.duration,
	}
}

package ga

import (
	"math/rand/v2"

	"github.com/limaJavier/gatimetabling/pkg/model"
)

type evolutionaryTimetabler struct {
	grid    model.Grid
	config  Config
	rng     *rand.Rand
	options []Option
}

// NewTimetabler returns a model.Timetabler backed by a fresh Engine for every Build call
func NewTimetabler(grid model.Grid, config Config, rng *rand.Rand, options ...Option) model.Timetabler {
	return &evolutionaryTimetabler{
		grid:    grid,
		config:  config,
		rng:     rng,
		options: options,
	}
}

func (timetabler *evolutionaryTimetabler) Build(catalog *model.Catalog) (*model.Timetable, error) {
	engine, err := NewEngine(catalog, timetabler.grid, timetabler.config, timetabler.rng, timetabler.options...)
	if err != nil {
		return nil, err
	}
	return engine.Run(), nil
}

func (timetabler *evolutionaryTimetabler) Verify(timetable *model.Timetable) bool {
	return model.Verify(timetable)
}

package ga

import (
	"math/rand/v2"

	"github.com/limaJavier/gatimetabling/pkg/model"
)

// selector picks a parent from the population. scores[i] is the fitness of population[i]
type selector interface {
	Select(population []*model.Timetable, scores []float64, rng *rand.Rand) *model.Timetable
}

func newSelector(config Config) selector {
	if config.UseTournament {
		return &tournamentSelector{size: config.TournamentSize}
	}
	return &rouletteSelector{}
}

package ga

import (
	"math/rand/v2"

	"github.com/limaJavier/gatimetabling/pkg/model"
)

type tournamentSelector struct {
	size int
}

// Select samples size distinct individuals and returns the fittest; ties go to the first one sampled
func (selector *tournamentSelector) Select(population []*model.Timetable, scores []float64, rng *rand.Rand) *model.Timetable {
	competitors := rng.Perm(len(population))[:min(selector.size, len(population))]

	best := competitors[0]
	for _, competitor := range competitors[1:] {
		if scores[competitor] > scores[best] {
			best = competitor
		}
	}
	return population[best]
}

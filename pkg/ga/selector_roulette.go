package ga

import (
	"math/rand/v2"

	"github.com/limaJavier/gatimetabling/pkg/model"
)

type rouletteSelector struct{}

// Select draws an individual with probability proportional to its fitness
func (selector *rouletteSelector) Select(population []*model.Timetable, scores []float64, rng *rand.Rand) *model.Timetable {
	total := 0.0
	for _, score := range scores {
		total += score
	}
	pick := rng.Float64() * total

	current := 0.0
	for i, score := range scores {
		current += score
		if current >= pick {
			return population[i]
		}
	}
	// Floating point error may leave the cumulative sum short of the pick
	return population[len(population)-1]
}

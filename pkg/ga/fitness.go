package ga

import "github.com/limaJavier/gatimetabling/pkg/model"

const (
	doubleWeight    = 20
	tripleWeight    = 30
	quadrupleWeight = 40
	conflictWeight  = 100
)

// Fitness scores a timetable: longer blocks weigh more, and conflicts divide the reward.
// The divisor never drops below one, so a conflict-free timetable keeps its full reward.
func Fitness(timetable *model.Timetable) float64 {
	return FitnessOf(timetable.Metrics())
}

func FitnessOf(metrics model.Metrics) float64 {
	reward := doubleWeight*metrics.Doubles + tripleWeight*metrics.Triples + quadrupleWeight*metrics.Quadruples
	return float64(reward) / float64(max(1, conflictWeight*metrics.Conflicts))
}

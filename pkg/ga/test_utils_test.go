package ga

import (
	"math/rand/v2"
	"testing"

	"github.com/limaJavier/gatimetabling/pkg/model"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randomTimetable(t *testing.T, grid model.Grid, catalog *model.Catalog, rng *rand.Rand) *model.Timetable {
	timetable := model.NewTimetable(grid, catalog)
	require.NoError(t, timetable.AssignSubjectsRandomly(rng))
	return timetable
}

// lectureTotals counts the slots held by each (term, subject) pair
func lectureTotals(timetable *model.Timetable) map[[2]int]int {
	return lo.CountValuesBy(
		lo.Filter(timetable.Slots(), func(slot model.Slot, _ int) bool { return slot.Assigned() }),
		func(slot model.Slot) [2]int { return [2]int{slot.Term, slot.Subject} },
	)
}

package ga

import (
	"math/rand/v2"

	"github.com/limaJavier/gatimetabling/pkg/model"
)

// crossover builds a child out of whole terms: terms up to a random cut come from parent1, the rest from parent2.
// A term is never split between parents, so every inherited term keeps its lecture counts.
func crossover(parent1, parent2 *model.Timetable, rng *rand.Rand) *model.Timetable {
	terms := parent1.Terms()
	if len(terms) < 2 {
		// No cut exists with a single term; the child is a copy of parent1
		return parent1.Clone()
	}

	cut := 1 + rng.IntN(len(terms)-1) // In [1, len(terms)-1]
	slots := make([]model.Slot, 0, parent1.Len())
	for _, term := range terms {
		source := parent2
		if term <= terms[cut-1] {
			source = parent1
		}
		slots = append(slots, source.TermSlots(term)...)
	}
	return model.NewTimetableFromSlots(parent1.Grid(), parent1.Catalog(), slots)
}

// mutate draws two distinct slots from the whole timetable and swaps their subjects when both belong to the same term.
// Pairs spanning two terms are left untouched, so the swap happens for roughly one draw in
// every len(terms). That lower effective rate is intentional and must not be narrowed to same-term draws.
func mutate(timetable *model.Timetable, rng *rand.Rand) bool {
	n := timetable.Len()
	if n < 2 {
		return false
	}
	i := rng.IntN(n)
	j := rng.IntN(n - 1)
	if j >= i {
		j++
	}
	if timetable.Slot(i).Term != timetable.Slot(j).Term {
		return false
	}
	timetable.Swap(i, j)
	return true
}

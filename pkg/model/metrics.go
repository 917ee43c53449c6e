package model

import (
	"slices"

	"github.com/samber/lo"
)

type Metrics struct {
	Conflicts  int
	Doubles    int
	Triples    int
	Quadruples int
}

func (timetable *Timetable) Metrics() Metrics {
	return Metrics{
		Conflicts:  timetable.ConflictCount(),
		Doubles:    timetable.DoubleAggregations(),
		Triples:    timetable.TripleAggregations(),
		Quadruples: timetable.QuadrupleAggregations(),
	}
}

func (timetable *Timetable) assignedSlots() []Slot {
	return lo.Filter(timetable.slots, func(slot Slot, _ int) bool { return slot.Assigned() })
}

// ConflictCount returns how many times an instructor is booked more than once at the same day and period.
// Terms share the physical week, so slots of every term are compared against each other.
func (timetable *Timetable) ConflictCount() int {
	byTime := lo.GroupBy(timetable.assignedSlots(), func(slot Slot) [2]int {
		return [2]int{slot.Day, slot.Period}
	})

	conflicts := 0
	for _, slots := range byTime {
		perInstructor := lo.CountValuesBy(slots, func(slot Slot) string {
			return timetable.catalog.Subject(slot.Subject).Instructor
		})
		for _, count := range perInstructor {
			conflicts += count - 1 // N simultaneous classes yield N-1 conflicts
		}
	}
	return conflicts
}

func (timetable *Timetable) DoubleAggregations() int {
	return timetable.aggregations(2)
}

func (timetable *Timetable) TripleAggregations() int {
	return timetable.aggregations(3)
}

func (timetable *Timetable) QuadrupleAggregations() int {
	return timetable.aggregations(4)
}

// aggregations counts, for every subject and day, the windows of consecutive periods of the given width.
// Windows overlap: a run of four consecutive periods holds three windows of width two.
func (timetable *Timetable) aggregations(width int) int {
	bySubject := lo.GroupBy(timetable.assignedSlots(), func(slot Slot) [2]int {
		return [2]int{slot.Term, slot.Subject}
	})

	count := 0
	for _, slots := range bySubject {
		byDay := lo.GroupBy(slots, func(slot Slot) int { return slot.Day })
		for _, daySlots := range byDay {
			periods := lo.Map(daySlots, func(slot Slot, _ int) int { return slot.Period })
			slices.Sort(periods)
			count += consecutiveWindows(periods, width)
		}
	}
	return count
}

func consecutiveWindows(periods []int, width int) int {
	count := 0
	for i := 0; i+width <= len(periods); i++ {
		consecutive := true
		for k := 1; k < width; k++ {
			if periods[i+k] != periods[i]+k {
				consecutive = false
				break
			}
		}
		if consecutive {
			count++
		}
	}
	return count
}

package model

import "github.com/samber/lo"

// Verify checks that timetable is a legal, fully populated assignment of its catalog
func Verify(timetable *Timetable) bool {
	grid, catalog := timetable.grid, timetable.catalog

	//** Shape: one slot per (term, day, period) in grid order
	if len(timetable.slots) != grid.Size() {
		return false
	}
	for index, slot := range timetable.slots {
		term, day, period := timetable.indexer.Coordinates(index)
		// Check that:
		// - Slot coordinates match its position in the grid
		// - Assigned subject exists in the catalog
		// - Assigned subject is bound to the slot's term
		if slot.Term != term || slot.Day != day || slot.Period != period {
			return false
		}
		if !slot.Assigned() {
			continue
		}
		if slot.Subject < 0 || slot.Subject >= catalog.Len() || catalog.Subject(slot.Subject).Term != slot.Term {
			return false
		}
	}

	//** Lectures: every subject occupies exactly LectureCount slots
	derivedLectures := lo.CountValuesBy(timetable.assignedSlots(), func(slot Slot) int { return slot.Subject })
	for index, subject := range catalog.subjects {
		if derivedLectures[index] != subject.LectureCount {
			return false
		}
	}
	return true
}

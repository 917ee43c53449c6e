package model

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// NoSubject marks a slot without an assigned subject
const NoSubject = -1

// NoSubjectName is reported for slots without an assigned subject
const NoSubjectName = "no subject assigned"

type Slot struct {
	Term    int
	Day     int
	Period  int
	Subject int // Index into the timetable's catalog or NoSubject
}

func (slot Slot) Assigned() bool {
	return slot.Subject != NoSubject
}

// Timetable is one candidate assignment of catalog subjects to every (term, day, period) slot.
// The catalog is shared between timetables and never copied.
type Timetable struct {
	grid    Grid
	catalog *Catalog
	indexer indexer
	slots   []Slot
}

func NewTimetable(grid Grid, catalog *Catalog) *Timetable {
	timetable := &Timetable{
		grid:    grid,
		catalog: catalog,
		indexer: newIndexer(grid),
		slots:   make([]Slot, 0, grid.Size()),
	}
	for term := 1; term <= grid.Terms; term++ {
		for day := 1; day <= grid.Days; day++ {
			for period := 1; period <= grid.Periods; period++ {
				timetable.slots = append(timetable.slots, Slot{Term: term, Day: day, Period: period, Subject: NoSubject})
			}
		}
	}
	return timetable
}

// NewTimetableFromSlots builds a timetable over the given slots, which are copied
func NewTimetableFromSlots(grid Grid, catalog *Catalog, slots []Slot) *Timetable {
	return &Timetable{
		grid:    grid,
		catalog: catalog,
		indexer: newIndexer(grid),
		slots:   slices.Clone(slots),
	}
}

func (timetable *Timetable) Grid() Grid {
	return timetable.grid
}

func (timetable *Timetable) Catalog() *Catalog {
	return timetable.catalog
}

func (timetable *Timetable) Len() int {
	return len(timetable.slots)
}

func (timetable *Timetable) Slot(index int) Slot {
	return timetable.slots[index]
}

// Slots returns a copy of every slot in grid order
func (timetable *Timetable) Slots() []Slot {
	return slices.Clone(timetable.slots)
}

// TermSlots returns a copy of the slots of term in grid order
func (timetable *Timetable) TermSlots(term int) []Slot {
	return lo.Filter(timetable.slots, func(slot Slot, _ int) bool { return slot.Term == term })
}

// Terms returns the sorted distinct terms present in the timetable's slots
func (timetable *Timetable) Terms() []int {
	terms := lo.Uniq(lo.Map(timetable.slots, func(slot Slot, _ int) int { return slot.Term }))
	slices.Sort(terms)
	return terms
}

func (timetable *Timetable) Clone() *Timetable {
	return NewTimetableFromSlots(timetable.grid, timetable.catalog, timetable.slots)
}

// Swap exchanges the subjects of the slots at i and j
func (timetable *Timetable) Swap(i, j int) {
	timetable.slots[i].Subject, timetable.slots[j].Subject = timetable.slots[j].Subject, timetable.slots[i].Subject
}

// SubjectAt returns the subject assigned to (term, day, period), if any
func (timetable *Timetable) SubjectAt(term, day, period int) (Subject, bool) {
	if term < 1 || term > timetable.grid.Terms || day < 1 || day > timetable.grid.Days || period < 1 || period > timetable.grid.Periods {
		return Subject{}, false
	}
	index := timetable.indexer.Index(term, day, period)
	// NewTimetableFromSlots may be given fewer slots than the grid holds
	if index >= len(timetable.slots) {
		return Subject{}, false
	}
	slot := timetable.slots[index]
	if !slot.Assigned() {
		return Subject{}, false
	}
	return timetable.catalog.Subject(slot.Subject), true
}

func (timetable *Timetable) SubjectNameAt(term, day, period int) string {
	subject, ok := timetable.SubjectAt(term, day, period)
	if !ok {
		return NoSubjectName
	}
	return subject.Name
}

// AssignSubjectsRandomly distributes every catalog subject over the free slots of its term,
// claiming LectureCount slots per subject from a uniformly shuffled list
func (timetable *Timetable) AssignSubjectsRandomly(rng *rand.Rand) error {
	for i := range timetable.catalog.Len() {
		subject := timetable.catalog.Subject(i)
		if subject.Term < 1 || subject.Term > timetable.grid.Terms {
			return fmt.Errorf("subject \"%v\" is bound to term %d which is outside the grid (1..%d)", subject.Name, subject.Term, timetable.grid.Terms)
		}
	}

	for term := 1; term <= timetable.grid.Terms; term++ {
		//** Collect and shuffle the term's free slots
		free := make([]int, 0, timetable.grid.TermCapacity())
		for index, slot := range timetable.slots {
			if slot.Term == term && !slot.Assigned() {
				free = append(free, index)
			}
		}
		rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

		//** Claim slots in catalog order
		next := 0
		for _, subject := range timetable.catalog.TermSubjects(term) {
			required := timetable.catalog.Subject(subject).LectureCount
			if available := len(free) - next; available < required {
				return &CapacityError{
					Term:      term,
					Subject:   timetable.catalog.Subject(subject).Name,
					Required:  required,
					Available: available,
				}
			}
			for _, index := range free[next : next+required] {
				timetable.slots[index].Subject = subject
			}
			next += required
		}
	}
	return nil
}

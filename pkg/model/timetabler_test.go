package model

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleTermCatalog returns subjects of term 1 totalling lectures
func singleTermCatalog(t *testing.T, lectures int) *Catalog {
	subjects := []Subject{
		{Term: 1, Name: "Algorithms", Instructor: "Ernani", LectureCount: 8},
		{Term: 1, Name: "Mathematics", Instructor: "Jorge", LectureCount: 6},
		{Term: 1, Name: "Architecture", Instructor: "Rogelio", LectureCount: lectures - 14},
	}
	catalog, err := NewCatalog(subjects)
	require.NoError(t, err)
	return catalog
}

func TestNewTimetable(t *testing.T) {
	//** Arrange
	catalog := SampleCatalog()

	//** Act
	timetable := NewTimetable(DefaultGrid, catalog)

	//** Assert
	assert.Equal(t, 120, timetable.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, timetable.Terms())
	for _, slot := range timetable.Slots() {
		assert.False(t, slot.Assigned())
	}
	assert.Equal(t, Slot{Term: 2, Day: 1, Period: 1, Subject: NoSubject}, timetable.Slot(20))
	assert.Len(t, timetable.TermSlots(3), 20)
}

func TestAssignSubjectsRandomly(t *testing.T) {
	t.Run("Every subject receives its lecture count within its term", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		catalog := SampleCatalog()

		for range 20 {
			//** Arrange
			timetable := NewTimetable(DefaultGrid, catalog)

			//** Act
			err := timetable.AssignSubjectsRandomly(rng)

			//** Assert
			require.NoError(t, err)
			assert.True(t, Verify(timetable))
			counts := lo.CountValuesBy(timetable.Slots(), func(slot Slot) int { return slot.Subject })
			for index, subject := range SampleSubjects {
				assert.Equal(t, subject.LectureCount, counts[index])
			}
		}
	})

	t.Run("Exact capacity builds", func(t *testing.T) {
		grid := Grid{Terms: 1, Days: 5, Periods: 4}
		catalog := singleTermCatalog(t, 20)
		rng := rand.New(rand.NewPCG(3, 4))

		timetable := NewTimetable(grid, catalog)
		err := timetable.AssignSubjectsRandomly(rng)

		require.NoError(t, err)
		assert.True(t, Verify(timetable))
		assert.Equal(t, 0, lo.CountBy(timetable.Slots(), func(slot Slot) bool { return !slot.Assigned() }))
	})

	t.Run("Over-subscribed term fails with capacity error", func(t *testing.T) {
		grid := Grid{Terms: 1, Days: 1, Periods: 19}
		catalog := singleTermCatalog(t, 20)
		rng := rand.New(rand.NewPCG(5, 6))

		for range 10 {
			timetable := NewTimetable(grid, catalog)
			err := timetable.AssignSubjectsRandomly(rng)

			var capacityErr *CapacityError
			require.True(t, errors.As(err, &capacityErr))
			assert.Equal(t, 1, capacityErr.Term)
			assert.Equal(t, "Architecture", capacityErr.Subject)
			assert.Equal(t, 6, capacityErr.Required)
			assert.Equal(t, 5, capacityErr.Available)
		}
	})

	t.Run("Subject outside the grid is rejected", func(t *testing.T) {
		catalog, err := NewCatalog([]Subject{{Term: 7, Name: "Ethics", Instructor: "Ana", LectureCount: 2}})
		require.NoError(t, err)

		timetable := NewTimetable(DefaultGrid, catalog)
		err = timetable.AssignSubjectsRandomly(rand.New(rand.NewPCG(1, 1)))

		var capacityErr *CapacityError
		assert.Error(t, err)
		assert.False(t, errors.As(err, &capacityErr))
	})

	t.Run("Same seed yields the same timetable", func(t *testing.T) {
		catalog := SampleCatalog()
		first, second := NewTimetable(DefaultGrid, catalog), NewTimetable(DefaultGrid, catalog)

		require.NoError(t, first.AssignSubjectsRandomly(rand.New(rand.NewPCG(9, 9))))
		require.NoError(t, second.AssignSubjectsRandomly(rand.New(rand.NewPCG(9, 9))))

		assert.Equal(t, first.Slots(), second.Slots())
	})
}

func TestSubjectAt(t *testing.T) {
	//** Arrange
	catalog := SampleCatalog()
	timetable := NewTimetable(DefaultGrid, catalog)
	timetable.slots[timetable.indexer.Index(2, 3, 4)].Subject = 5

	//** Act
	subject, ok := timetable.SubjectAt(2, 3, 4)
	_, emptyOk := timetable.SubjectAt(2, 3, 3)
	_, outOfRangeOk := timetable.SubjectAt(7, 1, 1)

	//** Assert
	assert.True(t, ok)
	assert.Equal(t, "Logic", subject.Name)
	assert.False(t, emptyOk)
	assert.False(t, outOfRangeOk)
	assert.Equal(t, "Logic", timetable.SubjectNameAt(2, 3, 4))
	assert.Equal(t, NoSubjectName, timetable.SubjectNameAt(2, 3, 3))
}

func TestSubjectAtTruncatedSlots(t *testing.T) {
	//** Arrange
	full := NewTimetable(DefaultGrid, SampleCatalog())
	full.slots[0].Subject = 0
	timetable := NewTimetableFromSlots(DefaultGrid, full.Catalog(), full.Slots()[:DefaultGrid.TermCapacity()])

	//** Act
	first, firstOk := timetable.SubjectAt(1, 1, 1)
	_, missingOk := timetable.SubjectAt(2, 1, 1)

	//** Assert
	assert.True(t, firstOk)
	assert.Equal(t, "Algorithms", first.Name)
	assert.False(t, missingOk)
	assert.Equal(t, NoSubjectName, timetable.SubjectNameAt(DefaultGrid.Terms, DefaultGrid.Days, DefaultGrid.Periods))
}

func TestClone(t *testing.T) {
	g := gomega.NewWithT(t)

	//** Arrange
	timetable := NewTimetable(DefaultGrid, SampleCatalog())
	require.NoError(t, timetable.AssignSubjectsRandomly(rand.New(rand.NewPCG(11, 11))))

	//** Act
	clone := timetable.Clone()
	clone.Swap(0, 1)
	clone.slots[2].Subject = NoSubject

	//** Assert
	g.Expect(clone.Catalog()).To(gomega.BeIdenticalTo(timetable.Catalog()))
	g.Expect(timetable.Slots()).NotTo(gomega.Equal(clone.Slots()))
	g.Expect(Verify(timetable)).To(gomega.BeTrue())
	g.Expect(Verify(clone)).To(gomega.BeFalse())
}

func TestVerify(t *testing.T) {
	catalog := SampleCatalog()
	build := func() *Timetable {
		timetable := NewTimetable(DefaultGrid, catalog)
		require.NoError(t, timetable.AssignSubjectsRandomly(rand.New(rand.NewPCG(13, 13))))
		return timetable
	}

	t.Run("Populated timetable", func(t *testing.T) {
		assert.True(t, Verify(build()))
	})

	t.Run("Empty timetable", func(t *testing.T) {
		assert.False(t, Verify(NewTimetable(DefaultGrid, catalog)))
	})

	t.Run("Subject placed in a foreign term", func(t *testing.T) {
		timetable := build()
		// Swap across terms keeps counts but breaks term binding
		timetable.Swap(0, 20)
		assert.False(t, Verify(timetable))
	})

	t.Run("Missing slot", func(t *testing.T) {
		timetable := build()
		truncated := NewTimetableFromSlots(DefaultGrid, catalog, timetable.Slots()[1:])
		assert.False(t, Verify(truncated))
	})

	t.Run("Same-term swap", func(t *testing.T) {
		timetable := build()
		timetable.Swap(0, 19)
		assert.True(t, Verify(timetable))
	})
}

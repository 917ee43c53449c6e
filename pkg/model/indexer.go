package model

// indexer interface is design to give a unique index to a slot's coordinates and vice versa
type indexer interface {
	// Returns a unique index to a (term, day, period) combination. Coordinates are 1-based
	Index(term, day, period int) int
	// Returns the (term, day, period) combination from a unique index
	Coordinates(index int) (term int, day int, period int)
}

func newIndexer(grid Grid) indexer {
	return &indexerImplementation{
		terms:   grid.Terms,
		days:    grid.Days,
		periods: grid.Periods,
	}
}

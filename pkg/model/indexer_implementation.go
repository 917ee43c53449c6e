package model

type indexerImplementation struct {
	terms   int
	days    int
	periods int
}

// Slots are laid out term-major, then by day, then by period
func (indexer *indexerImplementation) Index(term, day, period int) int {
	return (period - 1) + indexer.periods*(day-1) + indexer.periods*indexer.days*(term-1)
}

func (indexer *indexerImplementation) Coordinates(index int) (term, day, period int) {
	period = index%indexer.periods + 1
	index = index / indexer.periods

	day = index%indexer.days + 1
	index = index / indexer.days

	term = index%indexer.terms + 1

	return term, day, period
}

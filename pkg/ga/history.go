package ga

import (
	"slices"
	"sync"
)

type Record struct {
	Generation  int     `json:"generation" csv:"generation"`
	BestFitness float64 `json:"bestFitness" csv:"best_fitness"`
}

// history is append-only and may be read from another goroutine while a run is in progress
type history struct {
	mu      sync.RWMutex
	records []Record
}

func (history *history) append(record Record) {
	history.mu.Lock()
	defer history.mu.Unlock()
	history.records = append(history.records, record)
}

func (history *history) len() int {
	history.mu.RLock()
	defer history.mu.RUnlock()
	return len(history.records)
}

func (history *history) snapshot() []Record {
	history.mu.RLock()
	defer history.mu.RUnlock()
	return slices.Clone(history.records)
}

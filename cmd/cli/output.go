package main

import "github.com/limaJavier/gatimetabling/pkg/ga"

type output struct {
	RunId      string          `json:"runId"`
	Seed       uint64          `json:"seed"`
	Fitness    float64         `json:"fitness"`
	Conflicts  int             `json:"conflicts"`
	Doubles    int             `json:"doubles"`
	Triples    int             `json:"triples"`
	Quadruples int             `json:"quadruples"`
	Terms      map[int]termRow `json:"terms"` // Term -> day -> period -> subject name
	History    []ga.Record     `json:"history"`
	DurationMs int64           `json:"durationMs"`
}

type termRow [][]string

func buildOutput(result ga.Result, seed uint64) output {
	grid := result.Best.Grid()

	terms := make(map[int]termRow, grid.Terms)
	for term := 1; term <= grid.Terms; term++ {
		row := make(termRow, grid.Days)
		for day := 1; day <= grid.Days; day++ {
			row[day-1] = make([]string, grid.Periods)
			for period := 1; period <= grid.Periods; period++ {
				row[day-1][period-1] = result.Best.SubjectNameAt(term, day, period)
			}
		}
		terms[term] = row
	}

	history := result.History
	if history == nil {
		history = []ga.Record{}
	}

	return output{
		RunId:      result.RunID,
		Seed:       seed,
		Fitness:    result.Fitness,
		Conflicts:  result.Metrics.Conflicts,
		Doubles:    result.Metrics.Doubles,
		Triples:    result.Metrics.Triples,
		Quadruples: result.Metrics.Quadruples,
		Terms:      terms,
		History:    history,
		DurationMs: result.Duration.Milliseconds(),
	}
}

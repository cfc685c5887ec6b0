// Package analysis turns raw optimizer run histories into comparable
// per-seed series and aggregates them across seeds, optimizers and
// benchmarks: regret normalization, budget truncation, median/quartile
// summaries, ordinal ranking and cross-fidelity rank correlation.
package analysis

import (
	"fmt"

	"github.com/hpostats/optarena/internal/trajectory"
)

// Row is one evaluation event of a normalized series. FunctionValue holds
// the regret (raw value minus known optimum, optionally range-normalized);
// with an optimum of zero it is identical to the raw objective value.
type Row struct {
	Optimizer           string
	ID                  int
	TotalTimeUsed       float64
	TotalObjectiveCosts float64
	FunctionValue       float64
	FidelValue          float64
	Cost                float64
	StartTime           float64
	FinishTime          float64
}

// Series is a flat table of rows across all seeds of one optimizer.
type Series []Row

// Normalize flattens the runs of one optimizer into a Series. The first
// record of every run is an initialization marker and is dropped. yBest is
// the known optimum; a non-zero yMax switches FunctionValue from plain
// regret to regret normalized by the (yMax - yBest) range.
func Normalize(optimizer string, runs []trajectory.Run, yBest, yMax float64) (Series, error) {
	normalizer := 1.0
	if yMax != 0 {
		normalizer = yMax - yBest
	}

	var series Series
	for id, run := range runs {
		if len(run) < 2 {
			continue
		}
		for _, rec := range run[1:] {
			fidel, err := rec.FidelityValue()
			if err != nil {
				return nil, fmt.Errorf("optimizer %s seed %d: %w", optimizer, id, err)
			}
			series = append(series, Row{
				Optimizer:           optimizer,
				ID:                  id,
				TotalTimeUsed:       rec.TotalTimeUsed,
				TotalObjectiveCosts: rec.TotalObjectiveCosts,
				FunctionValue:       (rec.FunctionValue - yBest) / normalizer,
				FidelValue:          fidel,
				Cost:                rec.Cost,
				StartTime:           rec.StartTime,
				FinishTime:          rec.FinishTime,
			})
		}
	}
	return series, nil
}

// SeedIDs returns the distinct seed ids of the series in ascending order.
func (s Series) SeedIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, r := range s {
		if !seen[r.ID] {
			seen[r.ID] = true
			ids = append(ids, r.ID)
		}
	}
	// Rows are appended run by run, so first-seen order is ascending already.
	return ids
}

// Seed returns the sub-series of one seed.
func (s Series) Seed(id int) Series {
	var out Series
	for _, r := range s {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out
}

// FunctionValues extracts the regret column.
func (s Series) FunctionValues() []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = r.FunctionValue
	}
	return out
}

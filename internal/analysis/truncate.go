package analysis

import (
	"math"
	"sort"
)

// State classifies what survived truncation for one seed. The sentinel row
// exists so that truncation always has a last row to report; a seed whose
// real records all began after the cutoff must be treated as missing data,
// not as an infinitely bad incumbent.
type State int

const (
	// NoData: the seed had no records at all.
	NoData State = iota
	// SentinelOnly: only the synthetic terminal row survived the cutoff.
	SentinelOnly
	// RealData: the incumbent is an actual evaluation.
	RealData
)

func (s State) String() string {
	switch s {
	case NoData:
		return "no-data"
	case SentinelOnly:
		return "sentinel-only"
	case RealData:
		return "real-data"
	}
	return "unknown"
}

// Truncation is the incumbent-at-budget of one seed.
type Truncation struct {
	State     State
	Incumbent Row
}

// Cut sorts a seed's rows by total time used and drops everything past the
// budget. Cutting an already-cut series at the same budget is a no-op, and
// a cut at a smaller budget yields a prefix of the larger cut.
func Cut(seed Series, cutTimeStep float64) Series {
	sorted := make(Series, len(seed))
	copy(sorted, seed)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalTimeUsed < sorted[j].TotalTimeUsed
	})
	var out Series
	for _, r := range sorted {
		if r.TotalTimeUsed > cutTimeStep {
			continue
		}
		out = append(out, r)
	}
	return out
}

// TruncateAtBudget determines the incumbent of one seed at the given budget.
// A synthetic terminal row (infinite regret, the seed's maximum observed
// fidelity, zero time used) is appended before cutting so the result is
// well defined even when no real record survives.
func TruncateAtBudget(seed Series, cutTimeStep float64) Truncation {
	if len(seed) == 0 {
		return Truncation{State: NoData}
	}

	maxFidel := seed[0].FidelValue
	for _, r := range seed[1:] {
		if r.FidelValue > maxFidel {
			maxFidel = r.FidelValue
		}
	}
	sentinel := Row{
		Optimizer:     seed[0].Optimizer,
		ID:            seed[0].ID,
		FunctionValue: math.Inf(1),
		FidelValue:    maxFidel,
		FinishTime:    1,
	}

	rows := make(Series, 0, len(seed)+1)
	rows = append(rows, seed...)
	rows = append(rows, sentinel)
	rows = Cut(rows, cutTimeStep)
	if len(rows) == 0 {
		return Truncation{State: NoData}
	}

	last := rows[len(rows)-1]
	if math.IsInf(last.FunctionValue, 1) {
		return Truncation{State: SentinelOnly, Incumbent: last}
	}
	return Truncation{State: RealData, Incumbent: last}
}

package analysis

// OptimizerAggregate summarizes the post-truncation incumbents of one
// optimizer across seeds.
type OptimizerAggregate struct {
	Optimizer      string
	Mean           float64
	Median         float64
	Q1             float64
	Q3             float64
	Values         []float64
	MedianTimeUsed float64
}

// Aggregate groups incumbent rows by optimizer, preserving first-seen
// insertion order, and computes the per-optimizer summary statistics.
func Aggregate(incumbents []Row) []OptimizerAggregate {
	type accum struct {
		values []float64
		times  []float64
	}
	byOpt := make(map[string]*accum)
	var order []string

	for _, r := range incumbents {
		a, ok := byOpt[r.Optimizer]
		if !ok {
			a = &accum{}
			byOpt[r.Optimizer] = a
			order = append(order, r.Optimizer)
		}
		a.values = append(a.values, r.FunctionValue)
		a.times = append(a.times, r.TotalTimeUsed)
	}

	out := make([]OptimizerAggregate, 0, len(order))
	for _, opt := range order {
		a := byOpt[opt]
		out = append(out, OptimizerAggregate{
			Optimizer:      opt,
			Mean:           Mean(a.values),
			Median:         Median(a.values),
			Q1:             Quantile(a.values, 0.25),
			Q3:             Quantile(a.values, 0.75),
			Values:         a.values,
			MedianTimeUsed: Median(a.times),
		})
	}
	return out
}

// BenchmarkTable is the per-benchmark aggregate over all optimizers.
type BenchmarkTable struct {
	Benchmark  string
	Aggregates []OptimizerAggregate
}

// Find returns the aggregate of one optimizer, if present.
func (t *BenchmarkTable) Find(optimizer string) (OptimizerAggregate, bool) {
	for _, a := range t.Aggregates {
		if a.Optimizer == optimizer {
			return a, true
		}
	}
	return OptimizerAggregate{}, false
}

// CombinedScore is one optimizer's cross-benchmark ranking entry.
type CombinedScore struct {
	Optimizer     string
	MeanOfMedians float64
	Rank          int
	Benchmarks    int
}

// Combine averages per-benchmark medians into one score per optimizer (an
// unweighted mean of medians, not a rank aggregate) and assigns ordinal
// ranks ascending, lowest score = rank 1. Optimizers absent from every
// table are omitted; the given optimizer order fixes the tie-break order.
func Combine(tables []BenchmarkTable, optimizers []string) []CombinedScore {
	var scores []CombinedScore
	for _, opt := range optimizers {
		sum := 0.0
		n := 0
		for i := range tables {
			if agg, ok := tables[i].Find(opt); ok {
				sum += agg.Median
				n++
			}
		}
		if n == 0 {
			continue
		}
		scores = append(scores, CombinedScore{
			Optimizer:     opt,
			MeanOfMedians: sum / float64(n),
			Benchmarks:    n,
		})
	}

	means := make([]float64, len(scores))
	for i, s := range scores {
		means[i] = s.MeanOfMedians
	}
	for i, rank := range OrdinalRanks(means) {
		scores[i].Rank = rank
	}
	return scores
}

// Best returns the optimizer with the minimum combined score. Ties resolve
// to the earliest entry, i.e. the insertion order of the score table.
func Best(scores []CombinedScore) (CombinedScore, bool) {
	if len(scores) == 0 {
		return CombinedScore{}, false
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.MeanOfMedians < best.MeanOfMedians {
			best = s
		}
	}
	return best, true
}

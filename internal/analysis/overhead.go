package analysis

// OverheadSeries holds, for one seed, three cumulative sums over the same
// time steps: the benchmark's own evaluation cost, the scheduling gap the
// optimizer leaves between evaluations, and the total wall clock elapsed
// since the first start. Plotting them together shows how much of the run
// the optimizer spends outside the objective function.
type OverheadSeries struct {
	Steps         []float64
	BenchmarkCost []float64
	SchedulingGap []float64
	Overall       []float64
}

// Overhead derives the cumulative overhead series of one seed. The seed's
// rows must be in record order. The scheduling gap of the first record is
// defined as zero; every later gap is its start time minus the previous
// finish time.
func Overhead(seed Series) OverheadSeries {
	n := len(seed)
	out := OverheadSeries{
		Steps:         make([]float64, n),
		BenchmarkCost: make([]float64, n),
		SchedulingGap: make([]float64, n),
		Overall:       make([]float64, n),
	}
	var cost, gap, overall float64
	for i, r := range seed {
		out.Steps[i] = r.TotalTimeUsed
		cost += r.FinishTime - r.StartTime
		out.BenchmarkCost[i] = cost
		if i > 0 {
			gap += r.StartTime - seed[i-1].FinishTime
		}
		out.SchedulingGap[i] = gap
		overall += r.FinishTime - seed[0].StartTime
		out.Overall[i] = overall
	}
	return out
}

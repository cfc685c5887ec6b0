package analysis_test

import (
	"testing"

	"github.com/hpostats/optarena/internal/analysis"
)

func TestOverheadCumulativeSums(t *testing.T) {
	seed := analysis.Series{
		{TotalTimeUsed: 1, StartTime: 0, FinishTime: 2},
		{TotalTimeUsed: 2, StartTime: 3, FinishTime: 5},
		{TotalTimeUsed: 3, StartTime: 5, FinishTime: 6},
	}
	oh := analysis.Overhead(seed)

	wantCost := []float64{2, 4, 5}
	wantGap := []float64{0, 1, 1}
	wantOverall := []float64{2, 7, 13}
	for i := range seed {
		if !almostEqual(oh.BenchmarkCost[i], wantCost[i]) {
			t.Errorf("cost[%d]: got %g, want %g", i, oh.BenchmarkCost[i], wantCost[i])
		}
		if !almostEqual(oh.SchedulingGap[i], wantGap[i]) {
			t.Errorf("gap[%d]: got %g, want %g", i, oh.SchedulingGap[i], wantGap[i])
		}
		if !almostEqual(oh.Overall[i], wantOverall[i]) {
			t.Errorf("overall[%d]: got %g, want %g", i, oh.Overall[i], wantOverall[i])
		}
		if !almostEqual(oh.Steps[i], seed[i].TotalTimeUsed) {
			t.Errorf("step[%d]: got %g", i, oh.Steps[i])
		}
	}
}

func TestOverheadFirstGapZero(t *testing.T) {
	// first record starts late; the lead-in never counts as a gap
	seed := analysis.Series{{TotalTimeUsed: 1, StartTime: 100, FinishTime: 101}}
	oh := analysis.Overhead(seed)
	if oh.SchedulingGap[0] != 0 {
		t.Errorf("first gap: got %g, want 0", oh.SchedulingGap[0])
	}
}

func TestOverheadEmptySeed(t *testing.T) {
	oh := analysis.Overhead(nil)
	if len(oh.Steps) != 0 {
		t.Errorf("empty seed must yield empty series, got %v", oh)
	}
}

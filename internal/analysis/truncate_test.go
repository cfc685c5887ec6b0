package analysis_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/hpostats/optarena/internal/analysis"
)

func seedSeries(times ...float64) analysis.Series {
	var s analysis.Series
	for i, tt := range times {
		s = append(s, analysis.Row{
			Optimizer:     "rs",
			ID:            0,
			TotalTimeUsed: tt,
			FunctionValue: 1.0 / float64(i+1),
			FidelValue:    float64(i + 1),
		})
	}
	return s
}

func TestCutIdempotent(t *testing.T) {
	s := seedSeries(5, 1, 3, 9)
	once := analysis.Cut(s, 4)
	twice := analysis.Cut(once, 4)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("cut is not idempotent: %v vs %v", once, twice)
	}
}

func TestCutMonotone(t *testing.T) {
	s := seedSeries(1, 2, 3, 4, 5)
	small := analysis.Cut(s, 2.5)
	large := analysis.Cut(s, 4.5)
	if len(small) >= len(large) {
		t.Fatalf("smaller budget must keep fewer rows: %d vs %d", len(small), len(large))
	}
	// the smaller cut is a prefix of the larger one
	if !reflect.DeepEqual(small, large[:len(small)]) {
		t.Errorf("cut at smaller budget is not a prefix: %v vs %v", small, large)
	}
}

func TestTruncateRealData(t *testing.T) {
	s := seedSeries(1, 2, 3)
	tr := analysis.TruncateAtBudget(s, 2.5)
	if tr.State != analysis.RealData {
		t.Fatalf("state: got %v", tr.State)
	}
	if tr.Incumbent.TotalTimeUsed != 2 {
		t.Errorf("incumbent time: got %g, want 2", tr.Incumbent.TotalTimeUsed)
	}
}

func TestTruncateSentinelOnly(t *testing.T) {
	// every real record starts after the cutoff
	s := seedSeries(10, 20)
	tr := analysis.TruncateAtBudget(s, 5)
	if tr.State != analysis.SentinelOnly {
		t.Fatalf("state: got %v", tr.State)
	}
	if !math.IsInf(tr.Incumbent.FunctionValue, 1) {
		t.Errorf("sentinel incumbent must carry infinite regret, got %g", tr.Incumbent.FunctionValue)
	}
	if tr.Incumbent.FidelValue != 2 {
		t.Errorf("sentinel fidelity must be the seed's maximum, got %g", tr.Incumbent.FidelValue)
	}
}

func TestTruncateNoData(t *testing.T) {
	tr := analysis.TruncateAtBudget(nil, 5)
	if tr.State != analysis.NoData {
		t.Errorf("state: got %v", tr.State)
	}
}

func TestTruncateKeepsLastSurvivor(t *testing.T) {
	// rows given out of order; truncation sorts before cutting
	s := analysis.Series{
		{Optimizer: "rs", TotalTimeUsed: 3, FunctionValue: 0.1, FidelValue: 9},
		{Optimizer: "rs", TotalTimeUsed: 1, FunctionValue: 0.5, FidelValue: 3},
		{Optimizer: "rs", TotalTimeUsed: 2, FunctionValue: 0.3, FidelValue: 9},
	}
	tr := analysis.TruncateAtBudget(s, 10)
	if tr.State != analysis.RealData {
		t.Fatalf("state: got %v", tr.State)
	}
	if tr.Incumbent.FunctionValue != 0.1 {
		t.Errorf("incumbent: got %g, want 0.1", tr.Incumbent.FunctionValue)
	}
}

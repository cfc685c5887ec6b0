package analysis_test

import (
	"math"
	"testing"

	"github.com/hpostats/optarena/internal/analysis"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuantileInterpolation(t *testing.T) {
	values := []float64{0.05, 0.1, 0.2}
	if got := analysis.Median(values); !almostEqual(got, 0.1) {
		t.Errorf("median: got %g, want 0.1", got)
	}
	if got := analysis.Quantile(values, 0.25); !almostEqual(got, 0.075) {
		t.Errorf("q1: got %g, want 0.075", got)
	}
	if got := analysis.Quantile(values, 0.75); !almostEqual(got, 0.15) {
		t.Errorf("q3: got %g, want 0.15", got)
	}
}

func TestQuantileUnsortedInput(t *testing.T) {
	if got := analysis.Median([]float64{3, 1, 2}); !almostEqual(got, 2) {
		t.Errorf("median: got %g, want 2", got)
	}
}

func TestQuantileEdges(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	if got := analysis.Quantile(values, 0); !almostEqual(got, 1) {
		t.Errorf("p=0: got %g", got)
	}
	if got := analysis.Quantile(values, 1); !almostEqual(got, 4) {
		t.Errorf("p=1: got %g", got)
	}
	if !math.IsNaN(analysis.Quantile(nil, 0.5)) {
		t.Error("empty sample must yield NaN")
	}
}

func TestOrdinalRanks(t *testing.T) {
	ranks := analysis.OrdinalRanks([]float64{0.2, 0.1, 0.3})
	want := []int{2, 1, 3}
	for i := range want {
		if ranks[i] != want[i] {
			t.Errorf("rank[%d]: got %d, want %d", i, ranks[i], want[i])
		}
	}
}

func TestOrdinalRanksTiesByIndex(t *testing.T) {
	ranks := analysis.OrdinalRanks([]float64{0.1, 0.1})
	if ranks[0] != 1 || ranks[1] != 2 {
		t.Errorf("ties must rank in index order, got %v", ranks)
	}
}

func TestSpearmanPerfectMonotone(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 100, 1000, 10000}
	if got := analysis.Spearman(a, b); !almostEqual(got, 1) {
		t.Errorf("monotone increasing: got %g, want 1", got)
	}
	c := []float64{4, 3, 2, 1}
	if got := analysis.Spearman(a, c); !almostEqual(got, -1) {
		t.Errorf("monotone decreasing: got %g, want -1", got)
	}
}

func TestSpearmanTooFewPairs(t *testing.T) {
	if !math.IsNaN(analysis.Spearman([]float64{1}, []float64{2})) {
		t.Error("single pair must yield NaN")
	}
}

func TestECDF(t *testing.T) {
	xs, ys := analysis.ECDF([]float64{0.3, 0.1, 0.2})
	wantX := []float64{0.1, 0.2, 0.3}
	for i := range wantX {
		if !almostEqual(xs[i], wantX[i]) {
			t.Errorf("x[%d]: got %g, want %g", i, xs[i], wantX[i])
		}
	}
	if !almostEqual(ys[0], 1.0/3) || !almostEqual(ys[2], 1) {
		t.Errorf("ys: got %v", ys)
	}
}

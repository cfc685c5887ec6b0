package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Quantile returns the p-quantile of the sample with linear interpolation
// between adjacent order statistics, matching the interpolation the
// trajectory exporters use when summarizing seeds. gonum's stat.Quantile
// implements the empirical and R-4 definitions, neither of which matches,
// so the interpolation is done here.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Median is the 0.5-quantile.
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}

// Mean averages the sample.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// OrdinalRanks assigns ranks 1..n ascending by value, without ties: equal
// values are ranked in index order, so the first occurrence wins.
func OrdinalRanks(values []float64) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})
	ranks := make([]int, len(values))
	for rank, i := range idx {
		ranks[i] = rank + 1
	}
	return ranks
}

// averageRanks assigns 1-based ranks ascending by value, with tied values
// sharing the mean of the ranks they span.
func averageRanks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})
	ranks := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		mean := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = mean
		}
		i = j + 1
	}
	return ranks
}

// Spearman computes the rank correlation coefficient of two paired samples:
// the Pearson correlation of their average ranks. Returns NaN for fewer
// than two pairs.
func Spearman(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return math.NaN()
	}
	return stat.Correlation(averageRanks(a), averageRanks(b), nil)
}

// ECDF returns the sorted sample and the empirical cumulative probability
// at each point.
func ECDF(values []float64) (xs, ys []float64) {
	xs = make([]float64, len(values))
	copy(xs, values)
	sort.Float64s(xs)
	ys = make([]float64, len(xs))
	for i := range ys {
		ys[i] = float64(i+1) / float64(len(xs))
	}
	return xs, ys
}

package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hpostats/optarena/internal/trajectory"
)

// Correlation is the Spearman coefficient and sample size for one fidelity
// pair.
type Correlation struct {
	Rho float64
	N   int
}

// CorrelationTable holds pairwise Spearman correlations between objective
// values observed at different fidelity levels. Only the upper triangle
// (low fidelity < high fidelity) is stored; lookups are symmetric.
type CorrelationTable struct {
	Fidelities []float64
	pairs      map[[2]float64]Correlation
}

// NewCorrelationTable builds a table from precomputed pairs keyed by
// {low fidelity, high fidelity}.
func NewCorrelationTable(fidelities []float64, pairs map[[2]float64]Correlation) *CorrelationTable {
	if pairs == nil {
		pairs = make(map[[2]float64]Correlation)
	}
	return &CorrelationTable{Fidelities: fidelities, pairs: pairs}
}

// At returns the correlation between two distinct fidelity levels. The
// lookup is order independent; self-pairs are undefined and report false.
func (t *CorrelationTable) At(f1, f2 float64) (Correlation, bool) {
	if f1 == f2 {
		return Correlation{}, false
	}
	if f1 > f2 {
		f1, f2 = f2, f1
	}
	c, ok := t.pairs[[2]float64{f1, f2}]
	return c, ok
}

// Correlate indexes every evaluation by its configuration fingerprint and
// computes, for each unordered pair of observed fidelity levels, the
// Spearman correlation over the configurations evaluated at both. Only
// optimizers whose name contains one of the family tokens contribute: for
// single-fidelity optimizers the analysis is not informative.
func Correlate(runsByOptimizer map[string][]trajectory.Run, families []string) (*CorrelationTable, error) {
	opts := make([]string, 0, len(runsByOptimizer))
	for opt := range runsByOptimizer {
		opts = append(opts, opt)
	}
	sort.Strings(opts)

	byConfig := make(map[string]map[float64]float64)
	fidelSet := make(map[float64]bool)

	for _, opt := range opts {
		if !matchesFamily(opt, families) {
			continue
		}
		for seed, run := range runsByOptimizer[opt] {
			if len(run) < 2 {
				continue
			}
			for _, rec := range run[1:] {
				fingerprint, err := rec.Fingerprint()
				if err != nil {
					return nil, fmt.Errorf("optimizer %s seed %d: %w", opt, seed, err)
				}
				fidel, err := rec.FidelityValue()
				if err != nil {
					return nil, fmt.Errorf("optimizer %s seed %d: %w", opt, seed, err)
				}
				fidelSet[fidel] = true
				if byConfig[fingerprint] == nil {
					byConfig[fingerprint] = make(map[float64]float64)
				}
				byConfig[fingerprint][fidel] = rec.FunctionValue
			}
		}
	}

	fidels := make([]float64, 0, len(fidelSet))
	for f := range fidelSet {
		fidels = append(fidels, f)
	}
	sort.Float64s(fidels)

	table := &CorrelationTable{
		Fidelities: fidels,
		pairs:      make(map[[2]float64]Correlation),
	}
	for i, f1 := range fidels {
		for _, f2 := range fidels[i+1:] {
			var a, b []float64
			for _, obs := range byConfig {
				v1, ok1 := obs[f1]
				v2, ok2 := obs[f2]
				if ok1 && ok2 {
					a = append(a, v1)
					b = append(b, v2)
				}
			}
			table.pairs[[2]float64{f1, f2}] = Correlation{
				Rho: Spearman(a, b),
				N:   len(a),
			}
		}
	}
	return table, nil
}

func matchesFamily(optimizer string, families []string) bool {
	for _, f := range families {
		if strings.Contains(optimizer, f) {
			return true
		}
	}
	return false
}

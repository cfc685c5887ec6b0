// Package trajectory models optimizer run histories: the JSON records an
// external optimizer execution appends for every objective evaluation, and
// the discovery/loading of those files from a results directory.
package trajectory

import (
	"encoding/json"
	"fmt"
)

// Record is one evaluation event within a run. The first record of every run
// file is a bookkeeping header, not an evaluation; consumers skip it.
type Record struct {
	Configuration       map[string]any     `json:"configuration"`
	Fidelity            map[string]float64 `json:"fidelity"`
	FunctionValue       float64            `json:"function_value"`
	Cost                float64            `json:"cost"`
	TotalObjectiveCosts float64            `json:"total_objective_costs"`
	TotalTimeUsed       float64            `json:"total_time_used"`
	StartTime           float64            `json:"start_time"`
	FinishTime          float64            `json:"finish_time"`
}

// Run is the ordered record sequence of one optimizer execution (one seed).
type Run []Record

// FidelityValue extracts the single fidelity level of the record. Benchmarks
// here have exactly one fidelity dimension; anything else is malformed input.
func (r *Record) FidelityValue() (float64, error) {
	if len(r.Fidelity) != 1 {
		return 0, fmt.Errorf("fidelity must have exactly one entry, got %d", len(r.Fidelity))
	}
	for _, v := range r.Fidelity {
		return v, nil
	}
	panic("unreachable")
}

// Fingerprint returns a canonical serialization of the configuration, stable
// under key ordering, for matching the same configuration across fidelities.
func (r *Record) Fingerprint() (string, error) {
	// encoding/json writes map keys in sorted order, so two configurations
	// that differ only in key order serialize identically.
	data, err := json.Marshal(r.Configuration)
	if err != nil {
		return "", fmt.Errorf("fingerprinting configuration: %w", err)
	}
	return string(data), nil
}

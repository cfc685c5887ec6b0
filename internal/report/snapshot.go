package report

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/hpostats/optarena/internal/analysis"
)

// Snapshot captures the aggregate tables of one table run for downstream
// reuse without re-reading the run histories.
type Snapshot struct {
	Which  string
	Thresh float64
	Tables []analysis.BenchmarkTable
	Scores []analysis.CombinedScore
}

// WriteSnapshot serializes the snapshot with gob.
func WriteSnapshot(path string, s *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", path, err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot %s: %w", path, err)
	}
	return f.Close()
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()
	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	return &s, nil
}

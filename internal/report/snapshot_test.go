package report_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hpostats/optarena/internal/analysis"
	"github.com/hpostats/optarena/internal/report"
)

func TestSnapshotRoundTrip(t *testing.T) {
	want := &report.Snapshot{
		Which:  "train_v1",
		Thresh: 0.5,
		Tables: []analysis.BenchmarkTable{
			singleTable("cartpole", aggRow("rs", 0.1), aggRow("smac", 0.05)),
		},
	}
	want.Scores = analysis.Combine(want.Tables, []string{"rs", "smac"})

	path := filepath.Join(t.TempDir(), "table.gob")
	if err := report.WriteSnapshot(path, want); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	got, err := report.ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestReadSnapshotMissingFile(t *testing.T) {
	if _, err := report.ReadSnapshot(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Error("missing file must fail")
	}
}

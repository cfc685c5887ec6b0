package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hpostats/optarena/internal/analysis"
	"github.com/hpostats/optarena/internal/report"
)

func TestWriteSummaryTable(t *testing.T) {
	table := singleTable("cartpole", aggRow("rs", 0.1), aggRow("smac", 0.05))
	var buf bytes.Buffer
	if err := report.WriteSummary(&table, "table", &buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "OPTIMIZER") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "rs") || !strings.Contains(out, "smac") {
		t.Errorf("optimizer rows missing:\n%s", out)
	}
}

func TestWriteSummaryMarkdown(t *testing.T) {
	table := singleTable("cartpole", aggRow("rs", 0.1))
	var buf bytes.Buffer
	if err := report.WriteSummary(&table, "markdown", &buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if !strings.Contains(buf.String(), "| rs |") {
		t.Errorf("markdown row missing:\n%s", buf.String())
	}
}

func TestWriteSummaryJSON(t *testing.T) {
	table := singleTable("cartpole", aggRow("rs", 0.1))
	var buf bytes.Buffer
	if err := report.WriteSummary(&table, "json", &buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	var decoded analysis.BenchmarkTable
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Benchmark != "cartpole" {
		t.Errorf("benchmark: got %q", decoded.Benchmark)
	}
}

func TestWriteSummaryUnknownFormat(t *testing.T) {
	table := singleTable("cartpole", aggRow("rs", 0.1))
	if err := report.WriteSummary(&table, "yaml", &bytes.Buffer{}); err == nil {
		t.Error("unknown format must fail")
	}
}

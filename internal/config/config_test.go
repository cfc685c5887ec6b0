package config_test

import (
	"os"
	"strings"
	"testing"

	"github.com/hpostats/optarena/internal/config"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestLoadMinimal(t *testing.T) {
	cfg, err := config.Load("../../testdata/minimal.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Benchmarks) != 1 {
		t.Errorf("expected 1 benchmark, got %d", len(cfg.Benchmarks))
	}
	if cfg.Benchmarks[0].Name != "xgboostsub" {
		t.Errorf("expected benchmark 'xgboostsub', got %q", cfg.Benchmarks[0].Name)
	}
	if cfg.Benchmarks[0].YScale != "log" {
		t.Errorf("expected default yscale 'log', got %q", cfg.Benchmarks[0].YScale)
	}
	if len(cfg.CorrelationFamilies) == 0 {
		t.Error("expected default correlation families")
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := config.Load("../../testdata/full.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Benchmarks) != 2 {
		t.Fatalf("expected 2 benchmarks, got %d", len(cfg.Benchmarks))
	}
	nas := cfg.Benchmarks[0]
	if nas.LatexMacro != `\NASA` {
		t.Errorf("latex macro: got %q", nas.LatexMacro)
	}
	if len(nas.Space) != 4 {
		t.Errorf("expected 4 space parameters, got %d", len(nas.Space))
	}
	if cfg.DisplayName("hpbandster_bohb_eta_3") != "BOHB" {
		t.Errorf("display name: got %q", cfg.DisplayName("hpbandster_bohb_eta_3"))
	}
	if cfg.DisplayName("unknown_opt") != "unknown_opt" {
		t.Error("unknown optimizer should fall back to its id")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := config.Load("nonexistent.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := config.Load("../../testdata/invalid.yaml"); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestOptimizerSet(t *testing.T) {
	cfg, err := config.Load("../../testdata/full.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	mf, err := cfg.OptimizerSet("main_mf")
	if err != nil {
		t.Fatalf("OptimizerSet: %v", err)
	}
	if len(mf) != 3 || mf[0] != "hpbandster_bohb_eta_3" {
		t.Errorf("main_mf: got %v", mf)
	}
	all, err := cfg.OptimizerSet("")
	if err != nil {
		t.Fatalf("OptimizerSet: %v", err)
	}
	if len(all) != 4 || all[0] != "randomsearch" {
		t.Errorf("all optimizers: got %v", all)
	}
	if _, err := cfg.OptimizerSet("nope"); err == nil {
		t.Error("expected error for unknown set")
	}
}

func TestValidateRejectsUnknownSetMember(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.yaml"
	content := `
benchmarks:
  - name: b
    time_limit_in_s: 10
optimizers:
  - name: rs
sets:
  broken: [does_not_exist]
`
	if err := writeFile(path, content); err != nil {
		t.Fatal(err)
	}
	_, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "does_not_exist") {
		t.Errorf("expected unknown optimizer error, got %v", err)
	}
}

func TestValidateRejectsBadFidelityType(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.yaml"
	content := `
benchmarks:
  - name: b
    time_limit_in_s: 10
    fidelity: {name: budget, type: complex}
optimizers:
  - name: rs
`
	if err := writeFile(path, content); err != nil {
		t.Fatal(err)
	}
	_, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "fidelity type") {
		t.Errorf("expected fidelity type error, got %v", err)
	}
}

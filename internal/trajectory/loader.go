package trajectory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Which selects one of the trajectory exports an optimizer execution leaves
// behind: the incumbent trajectory on training data (unvalidated) or test
// data (validated), in either schema version, or the full run history.
type Which string

const (
	TrainV1    Which = "train_v1"
	TrainV2    Which = "train_v2"
	TestV1     Which = "test_v1"
	TestV2     Which = "test_v2"
	Runhistory Which = "runhistory"
)

// SelectWhich maps the (unvalidated, version) CLI surface to a selector.
func SelectWhich(unvalidated bool, version string) (Which, error) {
	switch version {
	case "v1", "v2":
	default:
		return "", fmt.Errorf("unknown schema version %q, must be one of [v1 v2]", version)
	}
	if unvalidated {
		return Which("train_" + version), nil
	}
	return Which("test_" + version), nil
}

// ErrMissing marks an absent benchmark or optimizer results directory.
// Callers log and skip the unit; the batch continues with partial results.
var ErrMissing = errors.New("results directory missing")

// Discover finds, per optimizer present under <inputDir>/<benchmark>, the
// run-history files matching the selector, in lexicographic order. The file
// order defines the seed ids, so it must be stable across invocations.
func Discover(inputDir, benchmark string, which Which) (map[string][]string, error) {
	benchDir := filepath.Join(inputDir, benchmark)
	entries, err := os.ReadDir(benchDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, benchDir)
		}
		return nil, fmt.Errorf("reading %s: %w", benchDir, err)
	}

	found := make(map[string][]string)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		optDir := filepath.Join(benchDir, e.Name())
		files, err := os.ReadDir(optDir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", optDir, err)
		}
		var paths []string
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			if !strings.Contains(name, string(which)) {
				continue
			}
			paths = append(paths, filepath.Join(optDir, name))
		}
		sort.Strings(paths)
		found[e.Name()] = paths
	}
	return found, nil
}

// LoadRuns reads each file as one run. The per-file position in the input
// slice becomes the seed id downstream, so order is preserved.
func LoadRuns(files []string) ([]Run, error) {
	runs := make([]Run, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading run %s: %w", path, err)
		}
		var run Run
		if err := json.Unmarshal(data, &run); err != nil {
			return nil, fmt.Errorf("parsing run %s: %w", path, err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

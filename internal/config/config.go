package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hpostats/optarena/internal/space"
)

type Config struct {
	InputDir            string              `yaml:"input_dir"`
	OutputDir           string              `yaml:"output_dir"`
	Benchmarks          []Benchmark         `yaml:"benchmarks"`
	Optimizers          []Optimizer         `yaml:"optimizers"`
	Sets                map[string][]string `yaml:"sets"`
	CorrelationFamilies []string            `yaml:"correlation_families"`
}

type Benchmark struct {
	Name         string            `yaml:"name"`
	TimeLimitInS float64           `yaml:"time_limit_in_s"`
	YStarValid   float64           `yaml:"ystar_valid"`
	YStarTest    float64           `yaml:"ystar_test"`
	YMax         float64           `yaml:"y_max"`
	YScale       string            `yaml:"yscale"`
	LatexMacro   string            `yaml:"latex_macro"`
	Fidelity     Fidelity          `yaml:"fidelity"`
	Space        []space.Parameter `yaml:"space"`
}

type Fidelity struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Optimizer struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Benchmarks) == 0 {
		return fmt.Errorf("no benchmarks defined")
	}
	for i := range cfg.Benchmarks {
		b := &cfg.Benchmarks[i]
		if b.Name == "" {
			return fmt.Errorf("benchmark %d: name is required", i)
		}
		if b.TimeLimitInS <= 0 {
			return fmt.Errorf("benchmark %q: time_limit_in_s must be positive", b.Name)
		}
		if b.YMax != 0 && b.YMax <= b.YStarValid {
			return fmt.Errorf("benchmark %q: y_max must exceed ystar_valid", b.Name)
		}
		if b.YScale == "" {
			b.YScale = "log"
		}
		if b.Fidelity.Type != "" {
			if _, err := space.ParseFidelityType(b.Fidelity.Type); err != nil {
				return fmt.Errorf("benchmark %q: %w", b.Name, err)
			}
		}
		for j := range b.Space {
			if err := b.Space[j].Check(); err != nil {
				return fmt.Errorf("benchmark %q: parameter %d: %w", b.Name, j, err)
			}
		}
	}
	if len(cfg.Optimizers) == 0 {
		return fmt.Errorf("no optimizers defined")
	}
	known := make(map[string]bool, len(cfg.Optimizers))
	for i, o := range cfg.Optimizers {
		if o.Name == "" {
			return fmt.Errorf("optimizer %d: name is required", i)
		}
		known[o.Name] = true
	}
	for set, names := range cfg.Sets {
		for _, name := range names {
			if !known[name] {
				return fmt.Errorf("set %q: unknown optimizer %q", set, name)
			}
		}
	}
	if len(cfg.CorrelationFamilies) == 0 {
		cfg.CorrelationFamilies = []string{"smac", "dehb", "hpbands"}
	}
	return nil
}

// FindBenchmark returns the benchmark entry with the given name.
func (c *Config) FindBenchmark(name string) (*Benchmark, error) {
	for i := range c.Benchmarks {
		if c.Benchmarks[i].Name == name {
			return &c.Benchmarks[i], nil
		}
	}
	return nil, fmt.Errorf("unknown benchmark %q", name)
}

// DisplayName resolves an optimizer's display name, falling back to its id.
func (c *Config) DisplayName(optimizer string) string {
	for _, o := range c.Optimizers {
		if o.Name == optimizer && o.DisplayName != "" {
			return o.DisplayName
		}
	}
	return optimizer
}

// OptimizerSet resolves a named optimizer set; the empty name selects every
// configured optimizer in declaration order.
func (c *Config) OptimizerSet(name string) ([]string, error) {
	if name == "" {
		names := make([]string, 0, len(c.Optimizers))
		for _, o := range c.Optimizers {
			names = append(names, o.Name)
		}
		return names, nil
	}
	names, ok := c.Sets[name]
	if !ok {
		keys := make([]string, 0, len(c.Sets))
		for k := range c.Sets {
			keys = append(keys, k)
		}
		return nil, fmt.Errorf("unknown optimizer set %q (have %v)", name, keys)
	}
	return names, nil
}

// Package space models the hyperparameter search space of a benchmark as a
// closed set of parameter kinds. Run-history configurations are checked
// against it before they enter the analysis pipeline.
package space

import (
	"fmt"
	"math"
)

// Kind enumerates the supported hyperparameter kinds.
type Kind string

const (
	UniformFloat Kind = "uniform-float"
	UniformInt   Kind = "uniform-int"
	Categorical  Kind = "categorical"
	Ordinal      Kind = "ordinal"
)

var kinds = []Kind{UniformFloat, UniformInt, Categorical, Ordinal}

// ParseKind maps a kind name to its Kind, failing with the accepted set for
// anything unknown.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if s == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown parameter kind %q, must be one of %v", s, kinds)
}

// FidelityType is the numeric type a benchmark's fidelity dimension takes.
type FidelityType string

const (
	FidelityInt   FidelityType = "int"
	FidelityFloat FidelityType = "float"
)

// ParseFidelityType maps a fidelity type name, failing with the accepted set
// for anything unknown.
func ParseFidelityType(s string) (FidelityType, error) {
	switch FidelityType(s) {
	case FidelityInt, FidelityFloat:
		return FidelityType(s), nil
	}
	return "", fmt.Errorf("unknown fidelity type %q, must be one of [int float]", s)
}

// Parameter is one dimension of a search space. Which fields are meaningful
// depends on Kind: bounds for the uniform kinds, Choices for categorical,
// Sequence for ordinal.
type Parameter struct {
	Name     string   `yaml:"name"`
	Kind     Kind     `yaml:"kind"`
	Lower    float64  `yaml:"lower"`
	Upper    float64  `yaml:"upper"`
	Choices  []string `yaml:"choices"`
	Sequence []string `yaml:"sequence"`
}

// Check verifies the parameter declaration itself is well formed.
func (p *Parameter) Check() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := ParseKind(string(p.Kind)); err != nil {
		return err
	}
	switch p.Kind {
	case UniformFloat, UniformInt:
		if p.Lower >= p.Upper {
			return fmt.Errorf("parameter %q: lower must be below upper", p.Name)
		}
	case Categorical:
		if len(p.Choices) == 0 {
			return fmt.Errorf("parameter %q: categorical needs at least one choice", p.Name)
		}
	case Ordinal:
		if len(p.Sequence) == 0 {
			return fmt.Errorf("parameter %q: ordinal needs a non-empty sequence", p.Name)
		}
	}
	return nil
}

// Contains reports whether a single configuration value is admissible for
// this parameter.
func (p *Parameter) Contains(value any) error {
	switch p.Kind {
	case UniformFloat:
		v, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("parameter %q: value %v is not numeric", p.Name, value)
		}
		if v < p.Lower || v > p.Upper {
			return fmt.Errorf("parameter %q: value %g outside [%g, %g]", p.Name, v, p.Lower, p.Upper)
		}
	case UniformInt:
		v, ok := toFloat(value)
		if !ok || v != math.Trunc(v) {
			return fmt.Errorf("parameter %q: value %v is not an integer", p.Name, value)
		}
		if v < p.Lower || v > p.Upper {
			return fmt.Errorf("parameter %q: value %g outside [%g, %g]", p.Name, v, p.Lower, p.Upper)
		}
	case Categorical:
		return p.member(value, p.Choices)
	case Ordinal:
		return p.member(value, p.Sequence)
	default:
		return fmt.Errorf("unknown parameter kind %q, must be one of %v", p.Kind, kinds)
	}
	return nil
}

func (p *Parameter) member(value any, admissible []string) error {
	s := fmt.Sprintf("%v", value)
	for _, c := range admissible {
		if s == c {
			return nil
		}
	}
	return fmt.Errorf("parameter %q: value %v not in %v", p.Name, value, admissible)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Validate checks a full configuration against the space: every value must
// belong to a declared parameter and be admissible for it.
func Validate(params []Parameter, configuration map[string]any) error {
	byName := make(map[string]*Parameter, len(params))
	for i := range params {
		byName[params[i].Name] = &params[i]
	}
	for name, value := range configuration {
		p, ok := byName[name]
		if !ok {
			return fmt.Errorf("configuration key %q not declared in space", name)
		}
		if err := p.Contains(value); err != nil {
			return err
		}
	}
	return nil
}

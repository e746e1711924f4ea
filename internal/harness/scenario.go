package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario: a log and what the
// pipeline must discover from it.
type Scenario struct {
	// Name uniquely identifies the scenario; it doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Log is the event log in the plain-text trace format.
	Log string `yaml:"log"`

	// TemporalThreshold and ExistentialThreshold configure the matrix
	// build; both default to 1.0, matching the evaluator's exact mode.
	TemporalThreshold    *float64 `yaml:"temporal_threshold,omitempty"`
	ExistentialThreshold *float64 `yaml:"existential_threshold,omitempty"`

	// Expect holds the discovery expectations.
	Expect Expectations `yaml:"expect"`
}

// Expectations describe the discovery results a scenario requires.
type Expectations struct {
	// Dependencies is the canonical dependency set in compact
	// notation, one unordered pair per line.
	Dependencies string `yaml:"dependencies"`

	// RelationshipCounts, if set, is compared against the matrix
	// metrics histogram.
	RelationshipCounts map[string]int `yaml:"relationship_counts,omitempty"`

	// VariantEntropy and NormalizedVariantEntropy, if set, are
	// compared against the automaton metrics within a small delta.
	VariantEntropy           *float64 `yaml:"variant_entropy,omitempty"`
	NormalizedVariantEntropy *float64 `yaml:"normalized_variant_entropy,omitempty"`
}

// Threshold accessors with the 1.0 default applied.

func (s *Scenario) temporalThreshold() float64 {
	if s.TemporalThreshold == nil {
		return 1.0
	}
	return *s.TemporalThreshold
}

func (s *Scenario) existentialThreshold() float64 {
	if s.ExistentialThreshold == nil {
		return 1.0
	}
	return *s.ExistentialThreshold
}

// LoadScenario reads and validates one scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("harness: parse scenario %s: %w", path, err)
	}

	if sc.Name == "" {
		return nil, fmt.Errorf("harness: scenario %s: missing name", path)
	}
	if strings.TrimSpace(sc.Log) == "" {
		return nil, fmt.Errorf("harness: scenario %q: missing log", sc.Name)
	}
	return &sc, nil
}

// LoadScenarioDir reads every .yaml scenario in a directory, sorted by
// file name for deterministic test order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("harness: list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

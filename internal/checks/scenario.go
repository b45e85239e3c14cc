package checks

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is a named list of checks against one fixture.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	// Fixture is the fixture file. LoadScenario resolves a relative path
	// against the scenario file's directory.
	Fixture string `yaml:"fixture"`

	Checks []Check `yaml:"checks"`
}

// Check is one assertion against one subject.
type Check struct {
	// Subject selects what to assert on: "project", "task <name>",
	// "task <name> inputs", "task <name> outputs", "configuration <name>",
	// "property <name>", "build_dir" or "file <path>".
	Subject string `yaml:"subject"`

	// Assert is the operation name, e.g. "has_task" or "is_present".
	Assert string `yaml:"assert"`

	Name   string   `yaml:"name,omitempty"`
	Names  []string `yaml:"names,omitempty"`
	Value  any      `yaml:"value,omitempty"`
	Values []any    `yaml:"values,omitempty"`
	Path   string   `yaml:"path,omitempty"`
	Count  *int     `yaml:"count,omitempty"`
	Type   string   `yaml:"type,omitempty"`

	// ExpectFailure, when set, is the exact failure message the check
	// must produce.
	ExpectFailure string `yaml:"expect_failure,omitempty"`
}

// LoadScenario reads and validates a scenario file. Unknown fields are
// rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Fixture != "" && !filepath.IsAbs(scenario.Fixture) {
		scenario.Fixture = filepath.Join(filepath.Dir(path), scenario.Fixture)
	}
	return scenario, nil
}

// ParseScenario decodes and validates scenario YAML. The fixture path is
// left as written.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Fixture == "" {
		return fmt.Errorf("fixture is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i := range s.Checks {
		if err := validateCheck(&s.Checks[i]); err != nil {
			return fmt.Errorf("checks[%d]: %w", i, err)
		}
	}
	return nil
}

func validateCheck(c *Check) error {
	if c.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if c.Assert == "" {
		return fmt.Errorf("assert is required")
	}

	subj, err := parseSubject(c.Subject)
	if err != nil {
		return err
	}

	op, ok := operations[subj.kind][c.Assert]
	if !ok {
		return fmt.Errorf("unknown assertion %q for %s subjects (known: %s)",
			c.Assert, subj.kind, joinSorted(operations[subj.kind]))
	}

	for _, arg := range op.args {
		if err := arg.require(c); err != nil {
			return fmt.Errorf("%s: %w", c.Assert, err)
		}
	}
	return nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gospeed/benchmark"
)

// Profile is a saved set of benchmark settings. Unset fields keep their defaults.
type Profile struct {
	Iterations *int           `yaml:"iterations"`
	Cooldown   *time.Duration `yaml:"cooldown"`
	PinCPU     *int           `yaml:"pin_cpu"`
	Progress   *bool          `yaml:"progress"`
	Color      *bool          `yaml:"color"`
	LogLevel   string         `yaml:"log_level"`
}

// LoadProfile loads a benchmark profile from the specified YAML file path
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}

// Apply copies the fields set in the profile onto params.
func (p *Profile) Apply(params *benchmark.BenchmarkParams) {
	if p.Iterations != nil {
		params.Iterations = *p.Iterations
	}
	if p.Cooldown != nil {
		params.Cooldown = *p.Cooldown
	}
	if p.PinCPU != nil {
		params.PinCPU = *p.PinCPU
	}
	if p.Progress != nil {
		params.Progress = *p.Progress
	}
	if p.Color != nil {
		params.Color = *p.Color
	}
}

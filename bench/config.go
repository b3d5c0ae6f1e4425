package bench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minviz/tsp"
)

// Config is the batch configuration.
type Config struct {
	LogLevel   string    `yaml:"log_level"`
	Workers    int       `yaml:"workers"`
	Iterations int       `yaml:"iterations"`
	ACO        ACOConfig `yaml:"aco"`
}

// ACOConfig holds the ACO parameters of every trial.
// When AntsPerPoint is set, each trial uses one ant per point and Ants is ignored.
type ACOConfig struct {
	Ants            int     `yaml:"ants"`
	AntsPerPoint    bool    `yaml:"ants_per_point"`
	EvaporationRate float64 `yaml:"evaporation_rate"`
	Alpha           float64 `yaml:"alpha"`
	Beta            float64 `yaml:"beta"`
}

// DefaultConfig returns the solver defaults, one worker and 100 iterations.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		Workers:    1,
		Iterations: tsp.DefaultMaxIterations,
		ACO: ACOConfig{
			Ants:            tsp.DefaultAnts,
			EvaporationRate: tsp.DefaultEvaporation,
			Alpha:           tsp.DefaultAlpha,
			Beta:            tsp.DefaultBeta,
		},
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfigYAML decodes data over DefaultConfig and validates the result.
// Unknown keys are rejected. Empty input yields the defaults.
func ParseConfigYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field; solver parameter errors wrap the tsp sentinels.
func (c Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations cannot be negative: %w", tsp.ErrInvalidIterations)
	}
	if err := c.solverConfig(1).Validate(); err != nil {
		return fmt.Errorf("aco: %w", err)
	}
	return nil
}

// solverConfig returns the tsp configuration for a trial with pointCount points.
func (c Config) solverConfig(pointCount int) tsp.ACOConfig {
	ants := c.ACO.Ants
	if c.ACO.AntsPerPoint {
		ants = max(pointCount, 1)
	}
	return tsp.ACOConfig{
		Ants:        ants,
		Evaporation: c.ACO.EvaporationRate,
		Alpha:       c.ACO.Alpha,
		Beta:        c.ACO.Beta,
	}
}

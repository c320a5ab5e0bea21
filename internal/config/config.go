// Package config provides YAML-driven configuration for the simulation
// CLI, with embedded defaults merged against an optional user file.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fenwood/ecohex/internal/world"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable the CLI exposes.
type Config struct {
	Seed        int64          `yaml:"seed"`
	MapRadius   int            `yaml:"map_radius"`
	Population  PopulationSeed `yaml:"population"`
	Climate     ClimateConfig  `yaml:"climate"`
	Turns       int            `yaml:"turns"`
}

// PopulationSeed is the initial per-species spawn count.
type PopulationSeed struct {
	Herbivores int `yaml:"herbivores"`
	Carnivores int `yaml:"carnivores"`
	Omnivores  int `yaml:"omnivores"`
}

// ClimateConfig mirrors world.ClimateParams for YAML round-tripping.
type ClimateConfig struct {
	BaseEquatorC  float64 `yaml:"base_equator_c"`
	BasePoleC     float64 `yaml:"base_pole_c"`
	AltitudeLapse float64 `yaml:"altitude_lapse"`
	MaxPrecipMM   float64 `yaml:"max_precip_mm"`
}

// ToWorldParams converts the YAML-facing climate config into the core's
// world.ClimateParams.
func (c ClimateConfig) ToWorldParams() world.ClimateParams {
	return world.ClimateParams{
		BaseEquatorC:  c.BaseEquatorC,
		BasePoleC:     c.BasePoleC,
		AltitudeLapse: c.AltitudeLapse,
		MaxPrecipMM:   c.MaxPrecipMM,
	}
}

// DefaultConfig parses the embedded defaults.yaml.
func DefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads the embedded defaults and, if path is non-empty, merges a
// user-supplied YAML file over them (fields present in the file win).
func Load(path string) (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

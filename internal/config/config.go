// Package config loads icfactor's run parameters from an optional YAML
// file, with CLI flags layered on top taking precedence over file
// values. Most of the pack's larger repositories reach for a config file
// plus flags rather than flags alone once a tool has more than one or
// two knobs; this driver has six (N, max-nodes, gas-limit, workers,
// index-ceiling, progress-interval), which crosses that line.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every knob the search driver accepts.
type Config struct {
	N                int    `yaml:"n"`
	MaxNodes         int    `yaml:"max_nodes"`
	GasLimit         int    `yaml:"gas_limit"`
	Workers          int    `yaml:"workers"`
	IndexCeiling     uint64 `yaml:"index_ceiling"`
	ProgressInterval int    `yaml:"progress_interval"`
	MetricsAddr      string `yaml:"metrics_addr"`
}

// Defaults mirrors the original CLI's defaults (spec.md §6): max_nodes
// 100, gas_limit 100000, plus an index ceiling generous enough to
// demonstrate the search without a caller having to know one.
func Defaults() Config {
	return Config{
		MaxNodes:         100,
		GasLimit:         100000,
		Workers:          1,
		IndexCeiling:     1_000_000,
		ProgressInterval: 1000,
	}
}

// Load reads a YAML config file and overlays it onto Defaults(). A
// missing path is not an error — it just means "use the defaults plus
// whatever flags the caller layers on afterward."
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a runnable search.
func (c Config) Validate() error {
	if c.N <= 1 {
		return fmt.Errorf("config: N must be greater than 1, got %d", c.N)
	}
	if c.MaxNodes <= 0 {
		return fmt.Errorf("config: max_nodes must be positive, got %d", c.MaxNodes)
	}
	if c.GasLimit <= 0 {
		return fmt.Errorf("config: gas_limit must be positive, got %d", c.GasLimit)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	return nil
}

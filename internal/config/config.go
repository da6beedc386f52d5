// Package config loads the simulator's pool sizes, latencies, and
// register/memory dimensions from a single immutable record, following
// the spec's "never globals" design note — constructed from defaults
// and optionally overridden from a YAML file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full set of recognised simulator knobs (spec §6).
type Config struct {
	NumRegisters int `yaml:"num_registers"`
	MemorySize   int `yaml:"memory_size"`

	ALUUnits       int `yaml:"alu_units"`
	MulDivUnits    int `yaml:"mul_div_units"`
	LoadStoreUnits int `yaml:"load_store_units"`

	ALUStations    int `yaml:"alu_stations"`
	MulDivStations int `yaml:"mul_div_stations"`
	LoadBuffers    int `yaml:"load_buffers"`
	StoreBuffers   int `yaml:"store_buffers"`

	LatencyAddSub int `yaml:"latency_add_sub"`
	LatencyMul    int `yaml:"latency_mul"`
	LatencyDiv    int `yaml:"latency_div"`
	LatencyLoad   int `yaml:"latency_load"`
	LatencyStore  int `yaml:"latency_store"`

	// Seed drives the register file's random initial values (R1..R_N-1).
	// Fixed rather than time-derived, so a default run is reproducible.
	Seed int64 `yaml:"seed"`
}

// Default returns the constants named in the spec's constants table.
func Default() *Config {
	return &Config{
		NumRegisters:   8,
		MemorySize:     1024,
		ALUUnits:       2,
		MulDivUnits:    1,
		LoadStoreUnits: 1,
		ALUStations:    3,
		MulDivStations: 2,
		LoadBuffers:    2,
		StoreBuffers:   2,
		LatencyAddSub:  2,
		LatencyMul:     10,
		LatencyDiv:     20,
		LatencyLoad:    5,
		LatencyStore:   5,
		Seed:           42,
	}
}

// Load reads a YAML file and overrides the defaults with whatever keys
// it sets; keys it omits keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

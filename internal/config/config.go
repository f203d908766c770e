package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the combat simulator binary.
type Simulator struct {
	LogLevel string `yaml:"log_level"`

	// Fixed simulation timestep, ticks per second.
	TickRate int `yaml:"tick_rate"`

	// Total simulated time before the run ends, in seconds.
	// 0 means run until interrupted.
	DurationSeconds float64 `yaml:"duration_seconds"`

	Scenario Scenario `yaml:"scenario"`
}

// Scenario describes the scripted combat run the simulator drives.
type Scenario struct {
	// Player attribute sheet at session start.
	Dexterity    float64 `yaml:"dexterity"`
	Intelligence float64 `yaml:"intelligence"`
	Vitality     float64 `yaml:"vitality"`
	Focus        float64 `yaml:"focus"`

	// Scripted event cadence, in seconds of game time.
	KillInterval  float64 `yaml:"kill_interval"`
	SkillInterval float64 `yaml:"skill_interval"`

	// The player alternates moving and standing in phases of this length.
	MovePhaseSeconds float64 `yaml:"move_phase_seconds"`

	// Stat snapshot is logged every this many seconds.
	ReportInterval float64 `yaml:"report_interval"`
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:        "info",
		TickRate:        60,
		DurationSeconds: 30,
		Scenario: Scenario{
			Dexterity:        15,
			Intelligence:     5,
			Vitality:         10,
			Focus:            8,
			KillInterval:     1.5,
			SkillInterval:    2.0,
			MovePhaseSeconds: 3.0,
			ReportInterval:   5.0,
		},
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("tick_rate must be > 0, got %d", cfg.TickRate)
	}

	return cfg, nil
}

// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Limits enforced by Validate.
const (
	MinGridSize = 5
	MaxGridSize = 200
)

// SnakeConfig contains all configuration for a game session.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size   int `yaml:"size"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// RulesConfig defines gameplay rule switches.
type RulesConfig struct {
	FoodRetries   int  `yaml:"food_retries"`
	BlockReversal bool `yaml:"block_reversal"`
}

// TimingConfig defines the tick interval and its speed-up policy.
type TimingConfig struct {
	InitialIntervalMs int         `yaml:"initial_interval_ms"`
	FloorMs           int         `yaml:"floor_ms"`
	Steps             []SpeedStep `yaml:"steps"`
}

// SpeedStep shortens the interval by DecrementMs while it is above AboveMs.
type SpeedStep struct {
	AboveMs     int `yaml:"above_ms"`
	DecrementMs int `yaml:"decrement_ms"`
}

// InitialInterval returns the starting tick interval.
func (t TimingConfig) InitialInterval() time.Duration {
	return time.Duration(t.InitialIntervalMs) * time.Millisecond
}

// Floor returns the minimum tick interval.
func (t TimingConfig) Floor() time.Duration {
	return time.Duration(t.FloorMs) * time.Millisecond
}

// Validate reports every problem with the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error

	g := c.Grid
	if g.Size < MinGridSize || g.Size > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.size %d out of range [%d, %d]", g.Size, MinGridSize, MaxGridSize))
	} else if g.StartX < 1 || g.StartX > g.Size || g.StartY < 1 || g.StartY > g.Size {
		errs = append(errs, fmt.Errorf("grid start (%d,%d) outside 1..%d", g.StartX, g.StartY, g.Size))
	}

	if c.Rules.FoodRetries < 0 {
		errs = append(errs, fmt.Errorf("rules.food_retries must not be negative, got %d", c.Rules.FoodRetries))
	}

	tm := c.Timing
	if tm.FloorMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.floor_ms must be positive, got %d", tm.FloorMs))
	}
	if tm.InitialIntervalMs < tm.FloorMs {
		errs = append(errs, fmt.Errorf("timing.initial_interval_ms %d below floor %d", tm.InitialIntervalMs, tm.FloorMs))
	}
	for i, s := range tm.Steps {
		if s.DecrementMs < 0 {
			errs = append(errs, fmt.Errorf("timing.steps[%d].decrement_ms must not be negative, got %d", i, s.DecrementMs))
		}
		if i > 0 && s.AboveMs > tm.Steps[i-1].AboveMs {
			errs = append(errs, fmt.Errorf("timing.steps[%d].above_ms %d must not exceed the previous step", i, s.AboveMs))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 20x20 grid,
// the head at (10,10), a 200ms start interval and the classic speed-up table.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:   20,
			StartX: 10,
			StartY: 10,
		},
		Rules: RulesConfig{
			FoodRetries:   64,
			BlockReversal: false,
		},
		Timing: TimingConfig{
			InitialIntervalMs: 200,
			FloorMs:           20,
			Steps: []SpeedStep{
				{AboveMs: 150, DecrementMs: 5},
				{AboveMs: 100, DecrementMs: 3},
				{AboveMs: 50, DecrementMs: 2},
				{AboveMs: 25, DecrementMs: 1},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

package snake

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
)

type speedStep struct {
	above     time.Duration
	decrement time.Duration
}

// SpeedController shortens the tick interval after each food capture.
// Steps are checked in order; the first whose threshold is below the current
// interval applies. The result never drops below the floor and never
// exceeds the current interval.
type SpeedController struct {
	steps []speedStep
	floor time.Duration
}

// NewSpeedController builds a controller from the timing config.
func NewSpeedController(cfg config.TimingConfig) *SpeedController {
	steps := make([]speedStep, 0, len(cfg.Steps))
	for _, s := range cfg.Steps {
		steps = append(steps, speedStep{
			above:     time.Duration(s.AboveMs) * time.Millisecond,
			decrement: time.Duration(s.DecrementMs) * time.Millisecond,
		})
	}
	return &SpeedController{
		steps: steps,
		floor: cfg.Floor(),
	}
}

// Floor returns the minimum interval.
func (c *SpeedController) Floor() time.Duration {
	return c.floor
}

// Next returns the interval that follows current.
func (c *SpeedController) Next(current time.Duration) time.Duration {
	if current <= c.floor {
		return current
	}
	for _, s := range c.steps {
		if current > s.above {
			return max(current-max(s.decrement, 0), c.floor)
		}
	}
	return current
}

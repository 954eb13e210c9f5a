package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Frame is a self-contained picture of a session for renderers. It owns its
// slices, so it can be handed to another goroutine.
type Frame struct {
	GridSize      int             `json:"gridSize"`
	Snake         []core.Position `json:"snake"`
	Food          core.Position   `json:"food"`
	HasFood       bool            `json:"hasFood"`
	Started       bool            `json:"started"`
	Direction     core.Direction  `json:"direction"`
	Score         int             `json:"score"`
	HighScore     int             `json:"highScore"`
	LastScore     int             `json:"lastScore"`
	NewHighScore  bool            `json:"newHighScore"`
	IntervalMs    int             `json:"intervalMs"`
	Tick          uint64          `json:"tick"`
	Runs          int             `json:"runs"`
	LastCollision CollisionKind   `json:"lastCollision"`
}

// Frame captures the current session state.
func (s *Session) Frame() Frame {
	return Frame{
		GridSize:      s.grid.Size,
		Snake:         s.body.Segments(),
		Food:          s.food,
		HasFood:       s.hasFood,
		Started:       s.state == StateRunning,
		Direction:     s.direction,
		Score:         s.scores.Score(),
		HighScore:     s.scores.High(),
		LastScore:     s.scores.Last(),
		NewHighScore:  s.newHigh,
		IntervalMs:    int(s.interval.Milliseconds()),
		Tick:          s.tick,
		Runs:          s.runs,
		LastCollision: s.lastCollision,
	}
}

// Head returns the first segment, or the zero position for an empty frame.
func (f Frame) Head() core.Position {
	if len(f.Snake) == 0 {
		return core.Position{}
	}
	return f.Snake[0]
}

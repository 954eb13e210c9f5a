package engine

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Renderer receives frames from the Runner goroutine. Render must not block
// for long; it is called between ticks.
type Renderer interface {
	Render(f snake.Frame)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(f snake.Frame)

// Render calls fn(f).
func (fn RenderFunc) Render(f snake.Frame) { fn(f) }

// FrameChannel is a Renderer that hands frames to another goroutine,
// keeping only the latest one. A slow reader skips frames instead of
// stalling the game.
type FrameChannel struct {
	ch chan snake.Frame
}

// NewFrameChannel creates a FrameChannel with room for one frame.
func NewFrameChannel() *FrameChannel {
	return &FrameChannel{ch: make(chan snake.Frame, 1)}
}

// Render replaces any unread frame with f. It has a single producer, the
// Runner, so the drain-then-send loop settles in at most two passes.
func (c *FrameChannel) Render(f snake.Frame) {
	for {
		select {
		case c.ch <- f:
			return
		default:
		}
		select {
		case <-c.ch:
		default:
		}
	}
}

// Frames returns the receive side.
func (c *FrameChannel) Frames() <-chan snake.Frame {
	return c.ch
}

// RunResult describes a finished run.
type RunResult struct {
	Score    int
	Length   int
	Ticks    int
	Cause    snake.CollisionKind
	Duration time.Duration
	EndedAt  time.Time
}

// RunRecorder stores finished runs. The Runner treats it as best effort:
// errors are logged and play continues.
type RunRecorder interface {
	RecordRun(r RunResult) error
}

package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// DefaultActionBuffer is the capacity of the Runner's input queue.
const DefaultActionBuffer = 32

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder stores every finished run in rec.
func WithRecorder(rec RunRecorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTickerFunc replaces the real ticker, for tests.
func WithTickerFunc(fn TickerFunc) Option {
	return func(r *Runner) { r.sched = NewScheduler(fn) }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithActionBuffer sets the input queue capacity.
func WithActionBuffer(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.actions = make(chan core.Action, n)
		}
	}
}

// Runner is the single goroutine that owns a Session. Input arrives through
// Send from any goroutine; ticks come from the Scheduler.
type Runner struct {
	session  *snake.Session
	sched    *Scheduler
	renderer Renderer
	recorder RunRecorder
	logger   *log.Logger
	now      func() time.Time

	actions    chan core.Action
	runStarted time.Time
}

// NewRunner wires a session to a renderer. The session must not be used by
// anything else once the Runner is running.
func NewRunner(session *snake.Session, renderer Renderer, opts ...Option) *Runner {
	r := &Runner{
		session:  session,
		sched:    NewScheduler(nil),
		renderer: renderer,
		logger:   log.New(io.Discard),
		now:      time.Now,
		actions:  make(chan core.Action, DefaultActionBuffer),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send queues an action without blocking. It returns false when the queue
// is full and the action was dropped.
func (r *Runner) Send(a core.Action) bool {
	select {
	case r.actions <- a:
		return true
	default:
		return false
	}
}

// Run processes input and ticks until ctx is done. It returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	defer r.sched.Stop()

	r.emit()
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner stopped", "reason", ctx.Err())
			return ctx.Err()
		case a := <-r.actions:
			r.handleAction(a)
		case <-r.sched.C():
			r.tick()
		}
	}
}

func (r *Runner) handleAction(a core.Action) {
	if a == core.ActionStart {
		if !r.session.Start() {
			return
		}
		r.runStarted = r.now()
		r.sched.Start(r.session.Interval())
		r.logger.Info("run started", "interval", r.session.Interval())
		r.emit()
		return
	}
	if r.session.HandleAction(a) {
		r.emit()
	}
}

func (r *Runner) tick() {
	res := r.session.Step()

	switch {
	case res.Collision != snake.CollisionNone:
		r.sched.Stop()
		r.finishRun(res)
	case res.Ate:
		// Rescheduled on every capture, even when the floor kept the
		// interval unchanged
		r.sched.Reschedule(res.Interval)
		if res.IntervalChanged {
			r.logger.Debug("speed up", "interval", res.Interval)
		}
	}

	r.emit()
}

func (r *Runner) finishRun(res snake.StepResult) {
	ended := r.now()
	result := RunResult{
		Score:    res.Ended.Score,
		Length:   res.Ended.Length,
		Ticks:    res.Ended.Ticks,
		Cause:    res.Collision,
		Duration: ended.Sub(r.runStarted),
		EndedAt:  ended,
	}

	r.logger.Info("run ended",
		"cause", result.Cause,
		"score", result.Score,
		"length", result.Length,
		"ticks", result.Ticks,
		"high", r.session.HighScore(),
	)

	if r.recorder == nil {
		return
	}
	if err := r.recorder.RecordRun(result); err != nil {
		r.logger.Warn("could not record run", "error", err)
	}
}

func (r *Runner) emit() {
	if r.renderer != nil {
		r.renderer.Render(r.session.Frame())
	}
}

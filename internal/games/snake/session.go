package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// State is the session phase.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// RunStats summarises a finished run.
type RunStats struct {
	Score  int
	Length int
	Ticks  int
}

// StepResult reports what one tick did.
type StepResult struct {
	// Moved is false when the session was idle and nothing happened.
	Moved bool
	// Ate is true when the head landed on food. The tick timer must be
	// rescheduled at Interval.
	Ate bool
	// IntervalChanged is true when the capture shortened the interval.
	IntervalChanged bool
	// NewHighScore is true when this tick raised the high score.
	NewHighScore bool
	// Collision ends the run; the session is already reset and idle.
	Collision CollisionKind
	// Ended describes the finished run when Collision is not CollisionNone.
	Ended RunStats
	// Interval is the tick interval in effect after this step.
	Interval time.Duration
}

// Session is one player's game: the snake, the food, the score, and the
// Idle/Running state machine. It is not safe for concurrent use; a single
// goroutine must own it.
type Session struct {
	cfg     config.SnakeConfig
	grid    Grid
	start   core.Position
	spawner *Spawner
	speed   *SpeedController
	scores  ScoreTracker

	body      *Body
	food      core.Position
	hasFood   bool
	direction core.Direction
	lastMoved core.Direction
	interval  time.Duration
	state     State

	tick          uint64
	runTicks      int
	runs          int
	lastCollision CollisionKind
	newHigh       bool
}

// NewSession validates cfg and creates an idle session. The seed drives
// food placement so equal seeds and inputs replay identically.
func NewSession(cfg config.SnakeConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := NewGrid(cfg.Grid.Size)
	s := &Session{
		cfg:     cfg,
		grid:    grid,
		start:   core.Pos(cfg.Grid.StartX, cfg.Grid.StartY),
		spawner: NewSpawner(grid, rand.New(rand.NewSource(seed)), cfg.Rules.FoodRetries),
		speed:   NewSpeedController(cfg.Timing),
	}
	s.reset()
	return s, nil
}

// reset restores the idle starting position. The high score survives.
func (s *Session) reset() {
	s.body = NewBody(s.start)
	s.direction = core.DirRight
	s.lastMoved = core.DirRight
	s.interval = s.cfg.Timing.InitialInterval()
	s.food, s.hasFood = s.spawner.Spawn(s.body)
	s.state = StateIdle
	s.runTicks = 0
}

// Start moves an idle session to Running and zeroes the score.
// It is a no-op returning false while already running.
func (s *Session) Start() bool {
	if s.state == StateRunning {
		return false
	}
	s.state = StateRunning
	s.scores.Begin()
	s.lastCollision = CollisionNone
	s.newHigh = false
	s.runTicks = 0
	return true
}

// SetDirection overwrites the heading used by the next tick.
// With rules.block_reversal a 180-degree turn of a multi-segment snake is
// ignored and false is returned.
func (s *Session) SetDirection(d core.Direction) bool {
	if s.cfg.Rules.BlockReversal && s.body.Len() > 1 && d.IsOpposite(s.lastMoved) {
		return false
	}
	s.direction = d
	return true
}

// HandleAction applies an input action and reports whether it changed
// anything. Unrecognised actions are ignored.
func (s *Session) HandleAction(a core.Action) bool {
	if a == core.ActionStart {
		return s.Start()
	}
	if d, ok := a.Direction(); ok {
		return s.SetDirection(d)
	}
	return false
}

// Step advances a running session by one tick. Idle sessions do nothing.
func (s *Session) Step() StepResult {
	if s.state != StateRunning {
		return StepResult{Interval: s.interval}
	}

	s.tick++
	s.runTicks++
	s.newHigh = false

	next := s.body.PeekNextHead(s.direction)
	ate := s.hasFood && next == s.food
	s.body.Advance(s.direction, ate)
	s.lastMoved = s.direction

	res := StepResult{Moved: true, Ate: ate}

	if kind := Check(s.body, s.grid); kind != CollisionNone {
		res.Collision = kind
		res.Ended = RunStats{
			Score:  s.scores.Score(),
			Length: s.body.Len(),
			Ticks:  s.runTicks,
		}
		res.NewHighScore = s.scores.Commit()
		s.lastCollision = kind
		s.runs++
		s.reset()
		res.Interval = s.interval
		return res
	}

	if ate {
		s.food, s.hasFood = s.spawner.Spawn(s.body)
		res.NewHighScore = s.scores.Set(s.body.Len() - 1)
		s.newHigh = res.NewHighScore

		next := s.speed.Next(s.interval)
		res.IntervalChanged = next != s.interval
		s.interval = next
	}

	res.Interval = s.interval
	return res
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Started reports whether a run is in progress.
func (s *Session) Started() bool { return s.state == StateRunning }

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration { return s.interval }

// Direction returns the heading for the next tick.
func (s *Session) Direction() core.Direction { return s.direction }

// Score returns the current run's score.
func (s *Session) Score() int { return s.scores.Score() }

// HighScore returns the best score of this session.
func (s *Session) HighScore() int { return s.scores.High() }

// Grid returns the board.
func (s *Session) Grid() Grid { return s.grid }

// Snake returns a copy of the segments, head first.
func (s *Session) Snake() []core.Position { return s.body.Segments() }

// Food returns the food position; ok is false when the board is full.
func (s *Session) Food() (p core.Position, ok bool) { return s.food, s.hasFood }

// Runs returns the number of finished runs.
func (s *Session) Runs() int { return s.runs }

// DebugState returns a one-line description of the session.
func (s *Session) DebugState() string {
	return fmt.Sprintf("state=%s tick=%d score=%d high=%d len=%d head=%v dir=%s food=%v interval=%v",
		s.state, s.tick, s.scores.Score(), s.scores.High(), s.body.Len(), s.body.Head(),
		s.direction, s.food, s.interval)
}

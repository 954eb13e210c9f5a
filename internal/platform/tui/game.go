package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Game bundles everything one player needs: the session driven by a
// runner, the frame hand-off to the UI, and the session's run ledger.
type Game struct {
	Runner   *engine.Runner
	Frames   *engine.FrameChannel
	Store    *storage.Store
	GridSize int
}

// NewGame creates a game for cfg. The ledger is optional: if it cannot be
// opened the game runs without one.
func NewGame(cfg config.SnakeConfig, seed int64, logger *log.Logger, opts ...engine.Option) (*Game, error) {
	session, err := snake.NewSession(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create session: %w", err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		Frames:   engine.NewFrameChannel(),
		GridSize: cfg.Grid.Size,
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
	} else {
		g.Store = store
		opts = append([]engine.Option{engine.WithRecorder(store)}, opts...)
	}

	opts = append([]engine.Option{engine.WithLogger(logger)}, opts...)
	g.Runner = engine.NewRunner(session, g.Frames, opts...)
	return g, nil
}

// Run drives the game until ctx is done and then discards the ledger.
// Cancellation is a normal shutdown and returns nil.
func (g *Game) Run(ctx context.Context) error {
	defer func() {
		if g.Store != nil {
			g.Store.Close()
		}
	}()

	err := g.Runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

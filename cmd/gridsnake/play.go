package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space        - Start a run
  Arrows/WASD  - Steer (vim hjkl works too)
  Tab          - Show the runs of this session
  Ctrl+S       - Save a screenshot of the board
  Q/Ctrl+C     - Quit

The terminal needs room for the board: two columns per cell plus borders.

Examples:
  gridsnake play
  gridsnake play --seed 42
  gridsnake play --config ./my-snake.yaml --log-file /tmp/gridsnake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The board owns stdout, so logs only go to --log-file
	logger, closer, err := fileLogger("gridsnake")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if needW, needH := snake.ScreenSize(cfg.Grid.Size); width < needW || height < needH+1 {
		logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", needW, needH+1))
	}

	game, err := tui.NewGame(cfg, seed(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, game, width, height)
}

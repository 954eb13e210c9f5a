// Package tui provides the Bubble Tea frontend for the snake game, both on
// the local terminal and over SSH.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// helpRows is the space reserved below the board.
const helpRows = 1

// FrameMsg carries a new frame from the runner.
type FrameMsg snake.Frame

// waitForFrame blocks for the next frame. It returns nil once ctx is done
// so no goroutine outlives the program.
func waitForFrame(ctx context.Context, frames <-chan snake.Frame) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-frames:
			return FrameMsg(f)
		case <-ctx.Done():
			return nil
		}
	}
}

// Model is the Bubble Tea model for the game screen. Game state lives in
// the runner goroutine; the model only forwards keys and draws frames.
type Model struct {
	ctx        context.Context
	game       *Game
	frame      snake.Frame
	hasFrame   bool
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	scores     Scoreboard
	showScores bool
	width      int
	height     int
	status     string
	quitting   bool

	// ScreenshotDir is where ctrl+s writes the board as text.
	ScreenshotDir string
}

// NewModel creates a model for game sized to the terminal.
func NewModel(ctx context.Context, game *Game, width, height int) Model {
	h := help.New()
	h.Width = width

	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".gridsnake", "screenshots")
	}

	return Model{
		ctx:           ctx,
		game:          game,
		screen:        core.NewScreen(width, height-helpRows),
		keys:          DefaultKeyMap(),
		help:          h,
		scores:        NewScoreboard(game.Store, width, height),
		width:         width,
		height:        height,
		ScreenshotDir: dir,
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.ctx, m.game.Frames.Frames())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m.handleFrame(snake.Frame(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

func (m Model) handleFrame(f snake.Frame) (tea.Model, tea.Cmd) {
	// A finished run changes the ledger
	if m.showScores && f.Runs != m.frame.Runs {
		m.scores.Refresh()
	}
	m.frame = f
	m.hasFrame = true
	return m, waitForFrame(m.ctx, m.game.Frames.Frames())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScores:
		m.showScores = !m.showScores
		if m.showScores {
			m.scores.Refresh()
		}
		return m, nil
	}

	// Arrows scroll the table while it is shown
	if m.showScores {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		return m, cmd
	}

	if action != core.ActionNone && !m.game.Runner.Send(action) {
		m.status = "input dropped"
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	m.scores.Resize(msg.Width, msg.Height)
	return m, nil
}

// saveScreenshot writes the current board to a text file.
func (m *Model) saveScreenshot() {
	if m.ScreenshotDir == "" || !m.hasFrame {
		return
	}

	screen := core.NewScreen(snake.ScreenSize(m.frame.GridSize))
	snake.Draw(screen, m.frame)

	if err := os.MkdirAll(m.ScreenshotDir, 0o755); err != nil {
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.ScreenshotDir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o600); err != nil {
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = helpStyle.Render(m.status)
	}

	if m.showScores {
		return m.scores.View() + "\n" + footer
	}

	if !m.hasFrame {
		return "Loading..."
	}

	snake.Draw(m.screen, m.frame)
	return RenderScreen(m.screen) + "\n" + footer
}

// Frame returns the last frame received.
func (m Model) Frame() snake.Frame {
	return m.frame
}

// Run plays game on the local terminal until the user quits. The game's
// runner is started here and stopped when the program exits.
func Run(ctx context.Context, game *Game, width, height int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- game.Run(ctx) }()

	p := tea.NewProgram(
		NewModel(ctx, game, width, height),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	cancel()
	if runErr := <-done; err == nil {
		err = runErr
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	game, err := NewGame(config.DefaultSnakeConfig(), 42, nil)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	if game.Store == nil {
		t.Fatal("expected a run ledger")
	}
	return game
}

func nextFrame(t *testing.T, game *Game) snake.Frame {
	t.Helper()
	select {
	case f := <-game.Frames.Frames():
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a frame")
		return snake.Frame{}
	}
}

func TestModelDrawsFrames(t *testing.T) {
	game := newTestGame(t)
	defer game.Store.Close()

	m := NewModel(context.Background(), game, 80, 24)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before the first frame = %q", got)
	}

	session, err := snake.NewSession(config.DefaultSnakeConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	updated, cmd := m.Update(FrameMsg(session.Frame()))
	if cmd == nil {
		t.Error("a frame should schedule the wait for the next one")
	}
	view := updated.(Model).View()
	if !strings.Contains(view, "Press SPACE to start") || !strings.Contains(view, "Score: 000") {
		t.Errorf("idle view missing prompt or score:\n%s", view)
	}
}

func TestModelForwardsKeysToRunner(t *testing.T) {
	game := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- game.Run(ctx) }()

	m := NewModel(ctx, game, 80, 24)
	if f := nextFrame(t, game); f.Started {
		t.Fatal("game should start idle")
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if f := nextFrame(t, game); !f.Started {
		t.Error("space should start the run")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() after cancel = %v, expected nil", err)
	}
}

func TestModelQuit(t *testing.T) {
	game := newTestGame(t)
	defer game.Store.Close()

	m := NewModel(context.Background(), game, 80, 24)
	updated, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if updated.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelTogglesScoreboard(t *testing.T) {
	game := newTestGame(t)
	defer game.Store.Close()

	m := NewModel(context.Background(), game, 80, 24)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	view := updated.(Model).View()
	if !strings.Contains(view, "RUNS THIS SESSION") || !strings.Contains(view, "No runs finished yet") {
		t.Errorf("scoreboard view unexpected:\n%s", view)
	}

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(updated.(Model).View(), "RUNS THIS SESSION") {
		t.Error("second tab should return to the board")
	}
}

func TestModelScreenshot(t *testing.T) {
	game := newTestGame(t)
	defer game.Store.Close()

	m := NewModel(context.Background(), game, 80, 24)
	m.ScreenshotDir = t.TempDir()

	session, err := snake.NewSession(config.DefaultSnakeConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	updated, _ := m.Update(FrameMsg(session.Frame()))
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.ScreenshotDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(m.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Press SPACE to start") {
		t.Errorf("screenshot content unexpected:\n%s", data)
	}
	if !strings.Contains(updated.(Model).View(), "saved") {
		t.Error("footer should report the saved screenshot")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	session, err := snake.NewSession(config.DefaultSnakeConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	w, h := snake.ScreenSize(20)
	game := newTestGame(t)
	defer game.Store.Close()

	m := NewModel(context.Background(), game, w, h+helpRows)
	m.screen.Clear()
	snake.Draw(m.screen, session.Frame())

	out := RenderScreen(m.screen)
	if !strings.Contains(out, "Score: 000") {
		t.Errorf("rendered output lost text:\n%s", out)
	}
}

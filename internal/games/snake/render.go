package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Rendering characters. Each board cell is two columns wide so the board
// looks square in a terminal.
const (
	SegmentGlyph = "██"
	FoodGlyph    = "()"
	CellWidth    = 2
)

// hudRows is the number of rows above the board.
const hudRows = 1

// ScreenSize returns the minimum screen size needed to draw a board of n
// cells per side: the HUD row plus the bordered board.
func ScreenSize(n int) (width, height int) {
	return n*CellWidth + 2, n + 2 + hudRows
}

// Draw renders f onto dst: a HUD row, the bordered board, and an overlay
// while the session is idle.
func Draw(dst *core.Screen, f Frame) {
	dst.Clear()

	needW, needH := ScreenSize(f.GridSize)
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", needW, needH), core.ColorGray)
		return
	}

	offX := (dst.Width() - needW) / 2
	drawHUD(dst, f, offX, needW)

	board := core.NewRect(offX, hudRows, needW, f.GridSize+2)
	dst.DrawBox(board, core.ColorGray)

	if f.Started && f.HasFood {
		drawCell(dst, board, f.Food, FoodGlyph, core.ColorRed)
	}

	// Tail first so the head wins if segments ever overlap
	for i := len(f.Snake) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		drawCell(dst, board, f.Snake[i], SegmentGlyph, color)
	}

	if !f.Started {
		drawIdleOverlay(dst, f, board)
	}
}

func drawHUD(dst *core.Screen, f Frame, offX, width int) {
	score := fmt.Sprintf("Score: %03d", f.Score)
	dst.DrawTextColored(offX, 0, score, core.ColorBrightYellow)

	if f.HighScore <= 0 {
		return
	}
	high := fmt.Sprintf("High: %03d", f.HighScore)
	color := core.ColorCyan
	if f.NewHighScore {
		high += " NEW!"
		color = core.ColorBrightYellow
	}
	// Narrow boards only have room for the score
	if len(score)+1+len(high) > width {
		return
	}
	dst.DrawTextColored(offX+width-len(high), 0, high, color)
}

// drawCell paints a grid cell; grid coordinates are 1-indexed.
func drawCell(dst *core.Screen, board core.Rect, p core.Position, glyph string, color core.Color) {
	x := board.X + 1 + (p.X-1)*CellWidth
	y := board.Y + p.Y
	dst.DrawTextColored(x, y, glyph, color)
}

// drawIdleOverlay draws the start prompt box in the middle of the board.
func drawIdleOverlay(dst *core.Screen, f Frame, board core.Rect) {
	title := "Press SPACE to start"
	subtitle := "Arrows or WASD to steer"
	if f.Runs > 0 {
		title = "Game over"
		subtitle = fmt.Sprintf("Score: %03d  |  SPACE to play again", f.LastScore)
	}

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, board.W)
	boxH := 5
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorDefault)
}

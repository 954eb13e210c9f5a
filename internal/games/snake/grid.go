// Package snake implements the grid snake simulation: board bounds, food
// placement, the segmented body, collision rules, speed progression, and
// the Idle/Running session that ties them together. It has no timer and no
// I/O; callers drive it one Step at a time and read Frames back.
package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Grid is a square board of Size x Size cells, 1-indexed on both axes.
type Grid struct {
	Size int
}

// NewGrid returns a grid with n cells per side.
func NewGrid(n int) Grid {
	return Grid{Size: n}
}

// InBounds reports whether 1 <= p.X <= Size and 1 <= p.Y <= Size.
func (g Grid) InBounds(p core.Position) bool {
	return p.X >= 1 && p.X <= g.Size && p.Y >= 1 && p.Y <= g.Size
}

// Center returns the middle cell, (10,10) on the default 20x20 board.
func (g Grid) Center() core.Position {
	return core.Pos(core.Max(g.Size/2, 1), core.Max(g.Size/2, 1))
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

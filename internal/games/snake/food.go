package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Occupancy reports cells that food must not be placed on.
type Occupancy interface {
	Occupies(p core.Position) bool
}

// PositionSet is a plain set of positions usable as an Occupancy.
type PositionSet map[core.Position]struct{}

// NewPositionSet builds a set from positions.
func NewPositionSet(ps ...core.Position) PositionSet {
	set := make(PositionSet, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}

// Occupies reports whether p is in the set.
func (s PositionSet) Occupies(p core.Position) bool {
	_, ok := s[p]
	return ok
}

// Spawner places food uniformly at random on free cells.
type Spawner struct {
	grid    Grid
	rng     *rand.Rand
	retries int
}

// NewSpawner creates a spawner. retries bounds the random draws made before
// falling back to scanning for free cells.
func NewSpawner(grid Grid, rng *rand.Rand, retries int) *Spawner {
	return &Spawner{
		grid:    grid,
		rng:     rng,
		retries: retries,
	}
}

// Spawn returns a free in-bounds position. ok is false only when every cell
// is forbidden.
func (s *Spawner) Spawn(forbidden Occupancy) (p core.Position, ok bool) {
	for i := 0; i < s.retries; i++ {
		p = core.Pos(s.rng.Intn(s.grid.Size)+1, s.rng.Intn(s.grid.Size)+1)
		if !forbidden.Occupies(p) {
			return p, true
		}
	}

	// Nearly full board: pick among the remaining free cells
	var free []core.Position
	for y := 1; y <= s.grid.Size; y++ {
		for x := 1; x <= s.grid.Size; x++ {
			c := core.Pos(x, y)
			if !forbidden.Occupies(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return core.Position{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

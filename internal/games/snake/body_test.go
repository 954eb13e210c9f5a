package snake

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestBodyPeekIsPure(t *testing.T) {
	b := NewBody(core.Pos(10, 10))

	next := b.PeekNextHead(core.DirRight)
	if next != core.Pos(11, 10) {
		t.Errorf("PeekNextHead(right) = %v, expected (11,10)", next)
	}
	if b.Head() != core.Pos(10, 10) || b.Len() != 1 {
		t.Errorf("PeekNextHead must not move the snake, head %v len %d", b.Head(), b.Len())
	}
}

func TestBodyAdvanceKeepsLength(t *testing.T) {
	b := NewBodyFrom(core.Pos(5, 5), core.Pos(4, 5), core.Pos(3, 5))

	for _, d := range []core.Direction{core.DirDown, core.DirDown, core.DirLeft, core.DirUp} {
		before := b.Len()
		prevHead := b.Head()
		b.Advance(d, false)

		if b.Len() != before {
			t.Errorf("length changed without food: %d -> %d", before, b.Len())
		}

		dx, dy := d.Delta()
		if b.Head() != prevHead.Add(dx, dy) {
			t.Errorf("head after %v = %v, expected %v", d, b.Head(), prevHead.Add(dx, dy))
		}
		if core.Abs(b.Head().X-prevHead.X)+core.Abs(b.Head().Y-prevHead.Y) != 1 {
			t.Errorf("head moved more than one unit: %v -> %v", prevHead, b.Head())
		}
	}
}

func TestBodyAdvanceGrows(t *testing.T) {
	b := NewBody(core.Pos(10, 10))

	b.Advance(core.DirRight, true)
	want := []core.Position{core.Pos(11, 10), core.Pos(10, 10)}
	got := b.Segments()
	if len(got) != len(want) {
		t.Fatalf("segments = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, expected %v", i, got[i], want[i])
		}
	}

	b.Advance(core.DirRight, false)
	if b.Len() != 2 || b.Head() != core.Pos(12, 10) {
		t.Errorf("after plain move: len %d head %v", b.Len(), b.Head())
	}
	if b.Occupies(core.Pos(10, 10)) {
		t.Error("tail should have left (10,10)")
	}
}

func TestBodySegmentsIsCopy(t *testing.T) {
	b := NewBody(core.Pos(1, 1))
	segs := b.Segments()
	segs[0] = core.Pos(9, 9)

	if b.Head() != core.Pos(1, 1) {
		t.Error("mutating Segments() result must not affect the body")
	}
}

func TestNewBodyFromPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBodyFrom() with no segments should panic")
		}
	}()
	NewBodyFrom()
}

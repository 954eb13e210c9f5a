package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Body is the ordered segment list of the snake. The head is at index 0.
type Body struct {
	segments []core.Position
}

// NewBody creates a one-segment snake at start.
func NewBody(start core.Position) *Body {
	return &Body{segments: []core.Position{start}}
}

// NewBodyFrom creates a snake from explicit segments, head first.
// It panics on an empty list: a snake always has at least one segment.
func NewBodyFrom(segments ...core.Position) *Body {
	if len(segments) == 0 {
		panic("snake: body needs at least one segment")
	}
	return &Body{segments: append([]core.Position(nil), segments...)}
}

// Head returns the first segment.
func (b *Body) Head() core.Position {
	return b.segments[0]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []core.Position {
	return append([]core.Position(nil), b.segments...)
}

// PeekNextHead returns where the head would be after one move in d.
func (b *Body) PeekNextHead(d core.Direction) core.Position {
	return b.Head().Step(d)
}

// Advance moves the snake one cell in d. The tail is kept when grow is
// true, so the snake gets one segment longer.
func (b *Body) Advance(d core.Direction, grow bool) {
	newHead := b.PeekNextHead(d)
	b.segments = append([]core.Position{newHead}, b.segments...)
	if !grow {
		b.segments = b.segments[:len(b.segments)-1]
	}
}

// Occupies reports whether any segment is at p.
func (b *Body) Occupies(p core.Position) bool {
	for _, seg := range b.segments {
		if seg == p {
			return true
		}
	}
	return false
}

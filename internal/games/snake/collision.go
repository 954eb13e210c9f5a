package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// CollisionKind classifies what the head ran into.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionBoundary
	CollisionSelf
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionBoundary:
		return "boundary"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k CollisionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Check evaluates the snake after a move. Boundary takes precedence over
// self collision.
func Check(b *Body, g Grid) CollisionKind {
	return CheckSegments(b.segments, g)
}

// CheckSegments is Check on a raw segment list, head first.
func CheckSegments(segments []core.Position, g Grid) CollisionKind {
	if len(segments) == 0 {
		return CollisionNone
	}

	head := segments[0]
	if !g.InBounds(head) {
		return CollisionBoundary
	}
	for _, seg := range segments[1:] {
		if seg == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

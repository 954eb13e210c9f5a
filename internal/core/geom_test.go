package core

import "testing"

func TestPositionStep(t *testing.T) {
	origin := Pos(10, 10)

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirUp, Pos(10, 9)},
		{DirDown, Pos(10, 11)},
		{DirLeft, Pos(9, 10)},
		{DirRight, Pos(11, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			got := origin.Step(tc.dir)
			if got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
			dx, dy := tc.dir.Delta()
			if Abs(dx)+Abs(dy) != 1 {
				t.Errorf("Delta(%v) = (%d, %d), expected a unit offset", tc.dir, dx, dy)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}

	for _, p := range pairs {
		if !p[0].IsOpposite(p[1]) || !p[1].IsOpposite(p[0]) {
			t.Errorf("%v and %v should be opposite", p[0], p[1])
		}
	}

	if DirUp.IsOpposite(DirLeft) {
		t.Error("up and left should not be opposite")
	}
	if DirRight.IsOpposite(DirRight) {
		t.Error("a direction is not its own opposite")
	}
}

func TestDirectionString(t *testing.T) {
	if DirRight.String() != "right" {
		t.Errorf("DirRight.String() = %q", DirRight.String())
	}
	if Direction(42).String() != "unknown" {
		t.Errorf("Direction(42).String() = %q", Direction(42).String())
	}
	text, err := DirUp.MarshalText()
	if err != nil || string(text) != "up" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, expected 30/25", r.Right(), r.Bottom())
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}

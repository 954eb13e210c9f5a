package snake

import "testing"

func TestScoreTracker(t *testing.T) {
	var st ScoreTracker

	if st.Set(1) != true || st.High() != 1 {
		t.Fatalf("first point should set the high score, high = %d", st.High())
	}
	if st.Set(2) != true {
		t.Error("raising the score past the high should report beaten")
	}
	st.Commit()
	if st.Score() != 0 || st.Last() != 2 || st.High() != 2 {
		t.Errorf("after commit score=%d last=%d high=%d", st.Score(), st.Last(), st.High())
	}

	st.Begin()
	if st.Set(1) {
		t.Error("1 does not beat 2")
	}
	if st.Commit() {
		t.Error("commit of a lower score should not report beaten")
	}
	if st.High() != 2 || st.Last() != 1 {
		t.Errorf("high=%d last=%d, expected 2/1", st.High(), st.Last())
	}
}

func TestScoreTrackerCommitRaisesHigh(t *testing.T) {
	// Set normally raises the high score; Commit covers a score assigned
	// without going through Set.
	st := ScoreTracker{score: 5}
	if !st.Commit() || st.High() != 5 {
		t.Errorf("Commit() should raise high to 5, got %d", st.High())
	}
}

func TestHighScoreNonDecreasing(t *testing.T) {
	var st ScoreTracker
	runs := [][]int{{1, 2, 3}, {1}, {1, 2, 3, 4, 5}, {}, {1, 2}}

	prevHigh := 0
	for _, run := range runs {
		st.Begin()
		for _, s := range run {
			st.Set(s)
		}
		st.Commit()
		if st.High() < prevHigh {
			t.Fatalf("high score decreased: %d -> %d", prevHigh, st.High())
		}
		prevHigh = st.High()
	}
	if prevHigh != 5 {
		t.Errorf("high = %d, expected 5", prevHigh)
	}
}

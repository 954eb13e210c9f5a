package snake

// ScoreTracker holds the current score, the best score of the process, and
// the score of the last finished run. The best score never decreases.
type ScoreTracker struct {
	score int
	high  int
	last  int
}

// Begin zeroes the current score for a new run.
func (t *ScoreTracker) Begin() {
	t.score = 0
}

// Set records the current score and reports whether it beat the high score.
func (t *ScoreTracker) Set(score int) (beaten bool) {
	t.score = score
	if score > t.high {
		t.high = score
		return true
	}
	return false
}

// Commit ends the run: the score becomes the last score, the high score is
// raised if it was beaten, and the current score is cleared.
func (t *ScoreTracker) Commit() (beaten bool) {
	if t.score > t.high {
		t.high = t.score
		beaten = true
	}
	t.last = t.score
	t.score = 0
	return beaten
}

// Score returns the current run's score.
func (t *ScoreTracker) Score() int { return t.score }

// High returns the best score seen by this tracker.
func (t *ScoreTracker) High() int { return t.high }

// Last returns the score of the most recently finished run.
func (t *ScoreTracker) Last() int { return t.last }

package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript(" 0:space, 5:ArrowUp,5:left ,9:d")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	if got := script[0]; len(got) != 1 || got[0] != core.ActionStart {
		t.Errorf("tick 0 = %v", got)
	}
	if got := script[5]; len(got) != 2 || got[0] != core.ActionUp || got[1] != core.ActionLeft {
		t.Errorf("tick 5 = %v", got)
	}
	if got := script.String(); got != "0:start,5:up,5:left,9:right" {
		t.Errorf("String() = %q", got)
	}

	empty, err := ParseScript("")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty script = %v, %v", empty, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"start", "x:up", "-1:up", "3:jump"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseScript(in); err == nil {
				t.Errorf("ParseScript(%q) should fail", in)
			}
		})
	}
}

func TestReplayRunsIntoWall(t *testing.T) {
	session, err := snake.NewSession(config.DefaultSnakeConfig(), 11)
	if err != nil {
		t.Fatal(err)
	}
	script, err := ParseScript("0:space,0:up")
	if err != nil {
		t.Fatal(err)
	}

	rec := &memRecorder{}
	res, err := Replay(session, script, 20, rec)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	if len(res.Runs) != 1 || res.Runs[0].Cause != snake.CollisionBoundary || res.Runs[0].Ticks != 10 {
		t.Fatalf("runs = %+v, expected one boundary crash after 10 ticks", res.Runs)
	}
	if len(rec.Runs()) != 1 {
		t.Error("run should be recorded")
	}
	if res.Final.Started {
		t.Error("session should be idle after the crash")
	}
	// Captures on the way can shorten the interval, never below 150ms in ten ticks
	if res.Runs[0].Duration < 10*150*time.Millisecond {
		t.Errorf("duration = %v too short", res.Runs[0].Duration)
	}
	if res.Elapsed != res.Runs[0].Duration {
		t.Errorf("idle ticks should not advance the clock: elapsed %v, run %v", res.Elapsed, res.Runs[0].Duration)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	script, err := ParseScript("0:space,3:down,7:left,12:up,20:right,40:space")
	if err != nil {
		t.Fatal(err)
	}

	run := func() ReplayResult {
		session, err := snake.NewSession(config.DefaultSnakeConfig(), 2024)
		if err != nil {
			t.Fatal(err)
		}
		res, err := Replay(session, script, 80, nil)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	a, b := run(), run()
	if a.Final.Tick != b.Final.Tick || a.Final.Score != b.Final.Score || len(a.Runs) != len(b.Runs) || a.Elapsed != b.Elapsed {
		t.Errorf("replays diverged: %+v vs %+v", a.Final, b.Final)
	}
}

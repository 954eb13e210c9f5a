package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Script maps a tick index to the actions applied just before that tick.
type Script map[int][]core.Action

// ParseScript reads a comma-separated list of tick:key pairs, for example
// "0:space,5:up,9:left". Keys use core.ParseKey names.
func ParseScript(s string) (Script, error) {
	script := make(Script)
	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}

	for _, item := range strings.Split(s, ",") {
		tickStr, keyStr, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("engine: script item %q: expected tick:key", item)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("engine: script item %q: bad tick", item)
		}
		action, ok := core.ParseKey(keyStr)
		if !ok {
			return nil, fmt.Errorf("engine: script item %q: unknown key %q", item, keyStr)
		}
		script[tick] = append(script[tick], action)
	}
	return script, nil
}

// String renders the script back in ParseScript form, sorted by tick.
func (s Script) String() string {
	ticks := make([]int, 0, len(s))
	for t := range s {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)

	var parts []string
	for _, t := range ticks {
		for _, a := range s[t] {
			parts = append(parts, fmt.Sprintf("%d:%s", t, strings.ToLower(a.String())))
		}
	}
	return strings.Join(parts, ",")
}

// ReplayResult is the outcome of a headless replay.
type ReplayResult struct {
	Final   snake.Frame
	Runs    []RunResult
	Elapsed time.Duration
}

// Replay drives session for ticks steps without a clock, applying the
// scripted actions. Simulated time advances by the session interval on
// every running tick. Finished runs go to rec when it is not nil.
func Replay(session *snake.Session, script Script, ticks int, rec RunRecorder) (ReplayResult, error) {
	var (
		out      ReplayResult
		runStart time.Duration
		clock    = time.Unix(0, 0)
	)

	for i := 0; i < ticks; i++ {
		for _, a := range script[i] {
			if a == core.ActionStart && session.Start() {
				runStart = out.Elapsed
				continue
			}
			session.HandleAction(a)
		}

		if session.Started() {
			out.Elapsed += session.Interval()
		}
		res := session.Step()
		if res.Collision == snake.CollisionNone {
			continue
		}

		run := RunResult{
			Score:    res.Ended.Score,
			Length:   res.Ended.Length,
			Ticks:    res.Ended.Ticks,
			Cause:    res.Collision,
			Duration: out.Elapsed - runStart,
			EndedAt:  clock.Add(out.Elapsed),
		}
		out.Runs = append(out.Runs, run)
		if rec != nil {
			if err := rec.RecordRun(run); err != nil {
				return out, fmt.Errorf("engine: cannot record run: %w", err)
			}
		}
	}

	out.Final = session.Frame()
	return out, nil
}

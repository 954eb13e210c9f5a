package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/logging"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagScript string
	flagTicks  int
	flagJSON   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a display",
	Long: `Replay a game headless from a script of tick:key pairs and print the
final board and a summary of every finished run. No clock is involved, so
a fixed --seed replays identically.

Keys use the same names as the terminal and the browser: space, up, down,
left, right, w, a, s, d, ArrowUp and so on.

Examples:
  gridsnake sim --seed 7 --script "0:space,5:up,9:left" --ticks 40
  gridsnake sim --seed 7 --script "0:space" --ticks 15 --json`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "0:space", "Comma-separated tick:key actions")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the final frame as JSON")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closer, err := logging.Stderr("gridsnake-sim", flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	script, err := engine.ParseScript(flagScript)
	if err != nil {
		return err
	}

	s := seed()
	session, err := snake.NewSession(cfg, s)
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Debug("replaying", "seed", s, "script", script.String(), "ticks", flagTicks)
	res, err := engine.Replay(session, script, flagTicks, store)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Final)
	}

	screen := core.NewScreen(snake.ScreenSize(cfg.Grid.Size))
	snake.Draw(screen, res.Final)
	fmt.Println(screen.String())
	fmt.Println()

	fmt.Printf("Seed %d, %d ticks, %v simulated\n", s, flagTicks, res.Elapsed)
	if res.Final.Started {
		fmt.Printf("Run in progress: score %03d, length %d, interval %dms\n",
			res.Final.Score, len(res.Final.Snake), res.Final.IntervalMs)
	}

	runs, err := store.RecentRuns(len(res.Runs))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No finished runs.")
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-8s  %s\n", "Run", "Score", "Length", "Ticks", "Cause", "Time")
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-8s  %s\n", "---", "-----", "------", "-----", "-----", "----")
	// RecentRuns is newest first
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		fmt.Printf("  %-4d  %03d    %-6d  %-5d  %-8s  %v\n",
			len(runs)-i, r.Score, r.Length, r.Ticks, r.Cause, r.Duration)
	}

	st, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best %03d, average %.1f over %d runs\n", st.Best, st.Average, st.Runs)
	return nil
}

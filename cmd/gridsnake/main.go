// gridsnake is the classic grid snake game for the terminal, SSH, and the
// browser.
//
// Usage:
//
//	gridsnake play              - Play in this terminal
//	gridsnake serve             - Start SSH server for remote play
//	gridsnake web               - Serve the browser version over HTTP
//	gridsnake sim               - Run a scripted game headless
//	gridsnake config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search path)
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-file <path>   - Write logs to a rotating file
//	--log-level <name>  - debug, info, warn, or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "gridsnake - the classic snake game on a square grid",
	Long: `gridsnake is the classic snake game: steer the snake around a 20x20
board, eat food to grow, and avoid the walls and your own tail. The game
speeds up with every bite.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the browser version
  sim      - Run a scripted game without a display
  config   - Print the effective configuration

Examples:
  gridsnake play
  gridsnake play --seed 42
  gridsnake serve --ssh :2222
  gridsnake web --addr :8080
  gridsnake sim --script "0:space,5:up" --ticks 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config and reports where it came from.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// fileLogger builds a logger that writes only to --log-file, for commands
// that own the terminal.
func fileLogger(prefix string) (*log.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		Prefix: prefix,
		Level:  flagLogLevel,
		File:   flagLogFile,
	})
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

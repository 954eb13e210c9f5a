package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/logging"
	"github.com/vovakirdan/gridsnake/internal/platform/web"
)

var (
	flagWebAddr string
	flagOrigins []string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Start an HTTP server with the browser version of the game.

The page is built into the binary. Every browser tab plays its own game
on the server over a websocket; the page only draws frames and sends keys.

Endpoints:
  /         - The game page
  /ws       - Websocket for keys and frames
  /healthz  - Status and number of connected players

Examples:
  gridsnake web
  gridsnake web --addr :9000
  gridsnake web --allow-origin https://games.example.com`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP server address (host:port)")
	webCmd.Flags().StringSliceVar(&flagOrigins, "allow-origin", nil, "Extra websocket origins to accept")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger, closer, err := logging.Stderr("gridsnake-web", flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	snakeCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	cfg := web.Config{
		Address:        flagWebAddr,
		Snake:          snakeCfg,
		Seed:           flagSeed,
		AllowedOrigins: flagOrigins,
	}

	server, err := web.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving gridsnake on http://localhost:%s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/logging"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/platform/web"
	"github.com/vovakirdan/gridsnake/internal/sessions"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeWeb    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridsnake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game and its own run ledger.
Nothing is kept after a player disconnects.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridsnake/host_key

Examples:
  gridsnake serve                           # Listen on :23234 with auto-generated key
  gridsnake serve --ssh :2222               # Listen on port 2222
  gridsnake serve --host-key ./my_host_key  # Use specific host key
  gridsnake serve --web :8080               # Also serve the browser version

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeWeb, "web", "", "Also serve the browser version on this address")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := logging.Stderr("gridsnake-ssh", flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	snakeCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	registry := sessions.NewRegistry()
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Snake:       snakeCfg,
		Seed:        flagSeed,
		Sessions:    registry,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// The web front end lives until the SSH server stops
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	webDone := make(chan error, 1)
	if flagServeWeb != "" {
		webServer, err := web.NewServer(web.Config{
			Address:  flagServeWeb,
			Snake:    snakeCfg,
			Seed:     flagSeed,
			Sessions: registry,
		}, logger.WithPrefix("gridsnake-web"))
		if err != nil {
			return fmt.Errorf("creating web server: %w", err)
		}
		go func() { webDone <- webServer.ListenAndServe(ctx) }()
		fmt.Printf("Browser version on http://localhost:%s\n", portOf(flagServeWeb))
	} else {
		close(webDone)
	}

	fmt.Printf("Starting gridsnake SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	sshErr := server.ListenAndServe()
	cancel()
	if webErr := <-webDone; webErr != nil && sshErr == nil {
		return webErr
	}
	return sshErr
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration gridsnake would use, as YAML.

Config files are searched in order:
  1. --config <path>
  2. ~/.gridsnake/config.yaml
  3. ./configs/snake.yaml
  4. The built-in default

The output is a complete file; save it to one of the paths above to
customize the board size, start cell, or speed curve.

Examples:
  gridsnake config
  gridsnake config > ~/.gridsnake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}

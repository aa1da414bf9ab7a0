package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	flagConfigFormat  string
	flagConfigDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after applying the
search order (--config, ~/.invaders/configs, ./configs, built-in defaults).
The output is a complete file that can be edited and passed to --config.
With --default the commented built-in YAML is printed instead, ignoring
any config files.

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml
  invaders config --format toml > my-invaders.toml
  invaders config --default > ~/.invaders/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default YAML")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		if flagConfigFormat != "yaml" && flagConfigFormat != "yml" {
			fmt.Fprintln(os.Stderr, "Error: --default only prints yaml")
			os.Exit(1)
		}
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	var format config.Format
	switch flagConfigFormat {
	case "yaml", "yml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want yaml or toml)\n", flagConfigFormat)
		os.Exit(1)
	}

	data, err := config.Encode(loadConfig(), format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

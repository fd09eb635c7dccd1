package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pixel-pong/internal/config"
)

var (
	flagTOML     bool
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would use after the config file,
preset, environment and flags are applied.

Examples:
  pong config > ~/.pong/pong.yaml
  pong config --toml --preset fast > configs/pong.toml
  pong config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagTOML, "toml", false, "Print TOML instead of YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Best-effort write to stdout
		return
	}

	cfg, err := resolveConfig(currentSettings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if _, err := cfg.GameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := checkPlayers(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := writeConfig(os.Stdout, cfg, flagTOML); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig encodes cfg as YAML, or TOML when asTOML is set.
func writeConfig(w io.Writer, cfg config.PongConfig, asTOML bool) error {
	if asTOML {
		return toml.NewEncoder(w).Encode(cfg)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// pong is a pixel pong simulation played in the terminal or run headless.
//
// Usage:
//
//	pong play           - Play in the terminal
//	pong sim            - Run the simulation without a terminal UI
//	pong controllers    - List available paddle controllers
//	pong config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--preset <name>     - Pacing preset: slow, normal, fast
//	--left/--right <c>  - Controller for each paddle
//	--fps <rate>        - Frame rate override
//	--env-file <path>   - Env file with PONG_* overrides (default: .env)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-pong/internal/config"

	// Import controllers to register them
	_ "github.com/vovakirdan/pixel-pong/internal/input"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagLeft     string
	flagRight    string
	flagFPS      int
	flagEnvFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pixel Pong - two paddles, one ball, 160x128 pixels",
	Long: `Pixel Pong simulates the classic two-paddle game on a small pixel
framebuffer and repaints only what moved each frame.

Available commands:
  play         - Play in the terminal
  sim          - Run headless and report results
  controllers  - Show available paddle controllers
  config       - Print the effective configuration

Examples:
  pong play
  pong play --right keyboard
  pong sim --left cpu --right cpu --ticks 10000
  pong config --preset fast`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Pacing preset: "+presetNames())
	rootCmd.PersistentFlags().StringVar(&flagLeft, "left", "", "Controller for the left paddle")
	rootCmd.PersistentFlags().StringVar(&flagRight, "right", "", "Controller for the right paddle")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Env file with PONG_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(controllersCmd)
	rootCmd.AddCommand(configCmd)
}

// presetNames lists the accepted --preset values.
func presetNames() string {
	names := make([]string, 0, len(config.Presets))
	for _, p := range config.Presets {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

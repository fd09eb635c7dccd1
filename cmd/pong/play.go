package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-pong/internal/platform/tui"
)

var (
	flagLogFile string
	flagScale   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  W/S        - Left paddle (keyboard player)
  Up/Down    - Right paddle (keyboard player)
  P/Space    - Pause
  N          - New round
  ?          - More keys
  Q/Ctrl+C   - Quit

Only sides assigned the "keyboard" controller respond to keys.

Examples:
  pong play
  pong play --left keyboard --right keyboard
  pong play --right idle --preset slow
  pong play --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Field pixels per terminal column (0 = fit terminal)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs a terminal match.
func play() error {
	// The alt screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, flagLogLevel)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Error("stdout is not a terminal")
		return errors.New("play needs a terminal; use 'pong sim' for headless runs")
	}

	cfg, err := resolveConfig(currentSettings())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	banner := &tui.Banner{}
	sess, err := newSession(cfg, logger, banner)
	if err != nil {
		return err
	}

	scale := flagScale
	if scale <= 0 {
		// 0 keeps fitting the field to the terminal on every resize
		scale = cfg.Display.Scale
	}

	opts := tui.Options{
		Interval:   cfg.TickInterval(),
		Scale:      scale,
		Background: sess.Palette.Background,
		Banner:     banner,
	}
	if err := tui.Run(sess.Runner, opts); err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}

	stats := sess.Runner.Stats()
	logger.Info("match over", "frames", stats.Frames, "left", stats.LeftWins, "right", stats.RightWins)
	return nil
}

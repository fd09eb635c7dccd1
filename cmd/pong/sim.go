package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/input"
	"github.com/vovakirdan/pixel-pong/internal/loop"
)

var (
	flagTicks    uint64
	flagRealtime bool
	flagShow     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run a match without a terminal UI and log every round result.

By default frames run back to back; --realtime paces them at the
configured frame rate until the tick budget is spent or Ctrl+C.
Keyboard players never move in a headless run.

Examples:
  pong sim --ticks 5000
  pong sim --left cpu --right idle --ticks 300 --show
  pong sim --realtime --ticks 0 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 1000, "Frames to run (0 = until interrupted, needs --realtime)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the configured frame rate")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final framebuffer")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := resolveConfig(currentSettings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	sess, err := newSession(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, side := range core.Sides {
		if sess.Runner.Controller(side).Name() == input.NameKeyboard {
			logger.Warn("keyboard player will not move in a headless run", "side", side)
		}
	}

	if err := simulate(sess.Runner, flagTicks, flagRealtime, cfg.TickInterval()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats := sess.Runner.Stats()
	logger.Info("simulation done",
		"frames", stats.Frames,
		"rounds", stats.Rounds,
		"left", stats.LeftWins,
		"right", stats.RightWins,
		"pixel_writes", stats.PixelWrites,
	)
	if flagShow {
		fmt.Println(sess.Runner.Display().Screen())
	}
}

// simulate runs the requested number of frames. Interrupts end a paced
// run cleanly.
func simulate(r *loop.Runner, ticks uint64, realtime bool, interval time.Duration) error {
	if !realtime {
		if ticks == 0 {
			return errors.New("--ticks 0 needs --realtime")
		}
		r.RunFor(ticks)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := r.Run(ctx, interval, ticks)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

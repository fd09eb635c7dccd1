package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pong/internal/config"
	"github.com/vovakirdan/pixel-pong/internal/display"
	"github.com/vovakirdan/pixel-pong/internal/games/pong"
	"github.com/vovakirdan/pixel-pong/internal/loop"
	"github.com/vovakirdan/pixel-pong/internal/registry"
)

// settings are the flag values that shape a session.
type settings struct {
	ConfigPath string
	Preset     string
	EnvFile    string
	Left       string
	Right      string
	FPS        int
}

// currentSettings collects the global flags.
func currentSettings() settings {
	return settings{
		ConfigPath: flagConfig,
		Preset:     flagPreset,
		EnvFile:    flagEnvFile,
		Left:       flagLeft,
		Right:      flagRight,
		FPS:        flagFPS,
	}
}

// resolveConfig loads the config file, then applies the preset, the
// environment and finally the flags, each overriding the one before.
func resolveConfig(s settings) (config.PongConfig, error) {
	cfg, err := config.LoadPong(s.ConfigPath)
	if err != nil {
		return cfg, err
	}

	if s.Preset != "" {
		preset, err := config.ParsePreset(s.Preset)
		if err != nil {
			return cfg, err
		}
		config.ApplyPongPreset(&cfg, preset)
	}

	if err := config.ApplyEnv(&cfg, s.EnvFile); err != nil {
		return cfg, err
	}

	if s.Left != "" {
		cfg.Players.Left = s.Left
	}
	if s.Right != "" {
		cfg.Players.Right = s.Right
	}
	if s.FPS > 0 {
		cfg.Loop.FPS = s.FPS
	}
	return cfg, nil
}

// session is everything a driver needs to run a match.
type session struct {
	Config  config.PongConfig
	Runner  *loop.Runner
	Palette display.Palette
}

// newSession builds the game, controllers, display and runner described
// by cfg. Round results go to notifiers and to logger.
func newSession(cfg config.PongConfig, logger *log.Logger, notifiers ...loop.Notifier) (*session, error) {
	gameCfg, err := cfg.GameConfig()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	left, err := registry.Create(cfg.Players.Left)
	if err != nil {
		return nil, fmt.Errorf("left player: %w", err)
	}
	right, err := registry.Create(cfg.Players.Right)
	if err != nil {
		return nil, fmt.Errorf("right player: %w", err)
	}

	game, err := pong.NewGame(gameCfg)
	if err != nil {
		return nil, err
	}

	notifiers = append(notifiers, loop.LogNotifier{Logger: logger})
	gameCfg = game.Config()
	disp := display.New(gameCfg.FieldWidth, gameCfg.FieldHeight, palette)
	runner := loop.NewRunner(game, left, right, disp,
		loop.WithNotifier(loop.Notifiers(notifiers)),
		loop.WithLogger(logger),
	)

	logger.Debug("session ready",
		"field", fmt.Sprintf("%dx%d", gameCfg.FieldWidth, gameCfg.FieldHeight),
		"left", left.Name(), "right", right.Name(),
		"fps", cfg.Loop.FPS, "collider", cfg.Collision.Paddle)

	return &session{Config: cfg, Runner: runner, Palette: palette}, nil
}

// checkPlayers reports player names no controller is registered under.
func checkPlayers(cfg config.PongConfig) error {
	var unknown []string
	for _, name := range []string{cfg.Players.Left, cfg.Players.Right} {
		if !registry.Exists(name) {
			unknown = append(unknown, fmt.Sprintf("%q", name))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown controller %s (see 'pong controllers')", strings.Join(unknown, ", "))
	}
	return nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

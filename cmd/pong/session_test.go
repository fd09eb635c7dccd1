package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pong/internal/config"
	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/input"
)

// isolate points config search and env lookups at an empty sandbox.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{config.EnvLeft, config.EnvRight, config.EnvFPS, config.EnvTimeStep} {
		t.Setenv(key, "")
	}
	return dir
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "pong.yaml")
	data := "players:\n  left: idle\n  right: idle\nloop:\n  fps: 20\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(settings{ConfigPath: path, EnvFile: ".env"})
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Players.Left != "idle" || cfg.Loop.FPS != 20 {
		t.Errorf("file values not applied: %+v", cfg)
	}

	// Preset beats the file
	cfg, err = resolveConfig(settings{ConfigPath: path, Preset: "slow", EnvFile: ".env"})
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Loop.FPS != 15 {
		t.Errorf("preset FPS = %d, expected 15", cfg.Loop.FPS)
	}

	// Env beats the preset
	t.Setenv(config.EnvFPS, "25")
	cfg, err = resolveConfig(settings{ConfigPath: path, Preset: "slow", EnvFile: ".env"})
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Loop.FPS != 25 {
		t.Errorf("env FPS = %d, expected 25", cfg.Loop.FPS)
	}

	// Flags beat everything
	cfg, err = resolveConfig(settings{
		ConfigPath: path,
		Preset:     "slow",
		EnvFile:    ".env",
		Left:       input.NameCPU,
		FPS:        40,
	})
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Loop.FPS != 40 || cfg.Players.Left != input.NameCPU || cfg.Players.Right != "idle" {
		t.Errorf("flag overrides not applied: %+v", cfg)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	isolate(t)

	if _, err := resolveConfig(settings{Preset: "ludicrous"}); err == nil {
		t.Error("resolveConfig() should reject an unknown preset")
	}
	if _, err := resolveConfig(settings{ConfigPath: "missing.yaml"}); err == nil {
		t.Error("resolveConfig() should fail on a missing config file")
	}
}

func TestNewSession(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Players.Left = input.NameCPU
	cfg.Players.Right = input.NameIdle

	sess, err := newSession(cfg, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	if got := sess.Runner.Controller(core.SideLeft).Name(); got != input.NameCPU {
		t.Errorf("left controller = %q, expected %q", got, input.NameCPU)
	}
	if got := sess.Runner.Controller(core.SideRight).Name(); got != input.NameIdle {
		t.Errorf("right controller = %q, expected %q", got, input.NameIdle)
	}
	if sess.Palette.Ball != core.ColorGreen {
		t.Errorf("palette ball = %v, expected green", sess.Palette.Ball)
	}

	sess.Runner.RunFor(10)
	if got := sess.Runner.Stats().Frames; got != 10 {
		t.Errorf("Frames = %d, expected 10", got)
	}
}

func TestNewSessionRejectsUnknownController(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Players.Right = "telepathy"

	_, err := newSession(cfg, log.New(&bytes.Buffer{}))
	if err == nil || !strings.Contains(err.Error(), "right player") {
		t.Errorf("newSession() error = %v, expected a right player error", err)
	}
}

func TestCheckPlayers(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		wantErr     bool
	}{
		{"registered pair", input.NameKeyboard, input.NameCPU, false},
		{"unknown right", input.NameIdle, "telepathy", true},
		{"empty left", "", input.NameCPU, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultPongConfig()
			cfg.Players.Left = tc.left
			cfg.Players.Right = tc.right
			if err := checkPlayers(cfg); (err != nil) != tc.wantErr {
				t.Errorf("checkPlayers() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}

	if _, err := newLogger(&buf, "chatty"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}

func TestWriteConfigFormats(t *testing.T) {
	cfg := config.DefaultPongConfig()

	var y bytes.Buffer
	if err := writeConfig(&y, cfg, false); err != nil {
		t.Fatalf("writeConfig(yaml) error = %v", err)
	}
	if !strings.Contains(y.String(), "max_ball_movement:") {
		t.Errorf("YAML output missing keys:\n%s", y.String())
	}

	var tm bytes.Buffer
	if err := writeConfig(&tm, cfg, true); err != nil {
		t.Fatalf("writeConfig(toml) error = %v", err)
	}
	if !strings.Contains(tm.String(), "[tick]") {
		t.Errorf("TOML output missing tables:\n%s", tm.String())
	}
}

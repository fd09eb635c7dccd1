package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvLeft     = "PONG_LEFT"
	EnvRight    = "PONG_RIGHT"
	EnvFPS      = "PONG_FPS"
	EnvTimeStep = "PONG_TIME_STEP"
)

// LoadPong loads the pong configuration.
// Search order: customPath -> ~/.pong/pong.{yaml,toml} -> ./configs/pong.{yaml,toml} -> embedded default.
// Files overlay the built-in defaults, so they only need the keys they change.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("pong.yaml"),
		userConfigPath("pong.toml"),
		filepath.Join("configs", "pong.yaml"),
		filepath.Join("configs", "pong.toml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		loaded := DefaultPongConfig()
		if err := decodeFile(path, &loaded); err == nil {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads path into cfg, choosing the format by extension.
func decodeFile(path string, cfg *PongConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}

// ApplyPongPreset adjusts frame pacing for a preset.
func ApplyPongPreset(cfg *PongConfig, preset Preset) {
	switch preset {
	case PresetSlow:
		cfg.Loop.FPS = 15
	case PresetFast:
		cfg.Loop.FPS = 60
		// Twice the distance per frame, capped by the movement budget
		if s := cfg.Tick.TimeStep * 2; stepFits(cfg, s) {
			cfg.Tick.TimeStep = s
		}
	default:
		cfg.Loop.FPS = DefaultFPS
	}
}

func stepFits(cfg *PongConfig, step int) bool {
	limit := cfg.Tick.MaxBallMovement
	return abs(cfg.Ball.VX*step) <= limit && abs(cfg.Ball.VY*step) <= limit
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ApplyEnv loads envFiles (".env" when none are given) into the process
// environment, then applies PONG_* overrides to cfg. Missing env files are
// ignored; variables already set in the environment win over the files.
func ApplyEnv(cfg *PongConfig, envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvLeft); v != "" {
		cfg.Players.Left = v
	}
	if v := os.Getenv(EnvRight); v != "" {
		cfg.Players.Right = v
	}
	if err := envInt(EnvFPS, &cfg.Loop.FPS); err != nil {
		return err
	}
	return envInt(EnvTimeStep, &cfg.Tick.TimeStep)
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}

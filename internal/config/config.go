// Package config loads flowboard's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flowboard/pkg/snap"
)

const appName = "flowboard"

// Config holds flowboard configuration.
type Config struct {
	Interaction InteractionConfig `toml:"interaction"`
	Snap        snap.Config       `toml:"snap"`
	Terminal    TerminalConfig    `toml:"terminal"`
}

// InteractionConfig controls pointer handling.
type InteractionConfig struct {
	ClickThresholdMS int `toml:"click_threshold_ms"`
}

// TerminalConfig maps terminal cells to canvas pixels in the editor.
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// ClickThreshold returns the click threshold as a duration.
func (c *Config) ClickThreshold() time.Duration {
	return time.Duration(c.Interaction.ClickThresholdMS) * time.Millisecond
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Interaction: InteractionConfig{ClickThresholdMS: 300},
		Snap:        snap.DefaultConfig(),
		Terminal:    TerminalConfig{CellWidth: 10, CellHeight: 20},
	}
}

// Dir returns the flowboard config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName)
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path on top of the defaults. An empty path
// selects [Path]. A missing file yields the defaults; a malformed one is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the editor cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Interaction.ClickThresholdMS <= 0:
		return fmt.Errorf("interaction.click_threshold_ms must be positive")
	case c.Snap.LaneHeight < 0:
		return fmt.Errorf("snap.lane_height must not be negative")
	case c.Snap.AlignThreshold < 0:
		return fmt.Errorf("snap.align_threshold must not be negative")
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("terminal cell size must be positive")
	}
	return nil
}

// Save writes the config to path, creating parent directories. An empty
// path selects [Path].
func Save(cfg *Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Package config loads and saves refi's TOML configuration: the colour theme
// and the default loan profile the calculator starts from.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/refi/internal/model"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "REFI_CONFIG"

// Config holds all refi configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Profile    Profile          `toml:"profile"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration. Its profile is a worked
// example: a 30-year loan refinanced at half a point lower.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Profile: Profile{
			RollClosingCosts: false,
			Current: CurrentProfile{
				OriginalAmount: model.Float(1_575_000),
				Rate:           model.Float(5.875),
				Term:           model.Int(30),
			},
			New: NewProfile{
				CurrentBalance: model.Float(1_543_107.76),
				Rate:           model.Float(5.375),
				ClosingCosts:   model.Float(6666),
				CashIn:         model.Float(0),
				Term:           model.Int(30),
			},
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "refi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "refi")
}

// Path returns the full path to the config file.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if md.IsDefined("appearance", "theme") {
		cfg.Appearance.Theme = file.Appearance.Theme
	}
	// A saved profile replaces the built-in example wholesale so that
	// fields left out of the file stay unset.
	if md.IsDefined("profile") {
		cfg.Profile = file.Profile
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Package config loads optional startup settings. These shape the window
// and the initial evaluator budget only; the view itself is never persisted.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the startup settings.
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Iterations uint32 `toml:"iterations"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Width:      1280,
		Height:     720,
		Iterations: 1500,
		VSync:      true,
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Width, c.Height)
	}
	if c.Iterations == 0 {
		return fmt.Errorf("iterations must be positive")
	}
	return nil
}

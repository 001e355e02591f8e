// Package config loads pipeloop's optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "pipeloop"

// Output formats accepted by the render command.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("config: unknown format")

// Config holds user preferences. Command-line flags override these values.
type Config struct {
	// Verify fails a run whose loop is not a simple cycle.
	Verify bool `toml:"verify"`
	// Color enables styled terminal output.
	Color bool `toml:"color"`
	// ShowLayers prints every propagation layer after the answer.
	ShowLayers bool `toml:"show_layers"`
	// Format is the default render format: text, dot or svg.
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Verify: false,
		Color:  true,
		Format: FormatText,
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatDOT, FormatSVG:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrFormat, c.Format)
}

// Load reads path on top of Default. An empty path means DefaultPath; a
// missing default file is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the configuration path using the XDG standard
// (~/.config/pipeloop/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Package config persists the target background color as a small TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nicky-tree55/bgclipper/internal/color"
)

// ErrMalformed marks configuration that exists but cannot be parsed or holds
// out-of-range channel values. Callers distinguish it with errors.Is so they
// can alert the user and pause instead of retrying on every poll.
var ErrMalformed = errors.New("malformed config")

// Provider reads and writes the target color at a fixed TOML path.
// Construct with New or NewWithPath; the zero value is not usable.
type Provider struct {
	path string
}

// New returns a provider rooted at the platform config directory, e.g.
// ~/.config/bgclipper/config.toml on Linux and macOS or
// %AppData%\bgclipper\config.toml on Windows.
func New() (*Provider, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	return NewWithPath(filepath.Join(dir, "bgclipper", "config.toml")), nil
}

// NewWithPath returns a provider with an explicit config file path.
func NewWithPath(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the config file location.
func (p *Provider) Path() string { return p.path }

// LoadTargetColor returns the configured target color. A missing config file
// is not an error: the documented default (white) is returned instead.
func (p *Provider) LoadTargetColor() (color.Color, error) {
	v := viper.New()
	v.SetConfigFile(p.path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("config file not found, using defaults", "path", p.path)
			return color.White, nil
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return color.Color{}, fmt.Errorf("parsing %s: %w: %w", p.path, ErrMalformed, err)
		}
		return color.Color{}, fmt.Errorf("reading %s: %w", p.path, err)
	}

	r := v.GetInt("target_color.r")
	g := v.GetInt("target_color.g")
	b := v.GetInt("target_color.b")
	for _, ch := range []int{r, g, b} {
		if ch < 0 || ch > 255 {
			return color.Color{}, fmt.Errorf("%s: color channel %d out of range 0-255: %w", p.path, ch, ErrMalformed)
		}
	}

	c := color.New(uint8(r), uint8(g), uint8(b))
	slog.Debug("config loaded", "path", p.path, "target_color", c)
	return c, nil
}

// SaveTargetColor writes the color to the config file, creating parent
// directories as needed.
func (p *Provider) SaveTargetColor(c color.Color) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("target_color.r", int(c.R))
	v.Set("target_color.g", int(c.G))
	v.Set("target_color.b", int(c.B))
	if err := v.WriteConfigAs(p.path); err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	return nil
}

// EnsureExists creates the config file with default settings when it is
// missing. No-op if the file is already present.
func (p *Provider) EnsureExists() error {
	if _, err := os.Stat(p.path); err == nil {
		slog.Debug("config file already exists", "path", p.path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", p.path, err)
	}
	slog.Debug("creating default config", "path", p.path)
	return p.SaveTargetColor(color.White)
}

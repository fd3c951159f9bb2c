// Package config holds the static navigation configuration: how the
// heads-up-notification window is docked and escaped. These are fixed per
// vehicle UI build, never runtime state.
package config

import (
	"fmt"
	"os"

	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/nav"
	"gopkg.in/yaml.v3"
)

// HUNPosition says which screen edge the HUN window is docked to, which
// determines the nudge direction that enters it.
type HUNPosition string

const (
	HUNTop    HUNPosition = "top"
	HUNBottom HUNPosition = "bottom"
)

// Config is the on-disk navigation configuration.
type Config struct {
	// HUNEscape is the one nudge direction that leaves the HUN window from
	// inside it. Every other direction stays within the HUN.
	HUNEscape string `yaml:"hun_escape"`

	// HUNPosition is where the HUN is docked: "top" or "bottom".
	HUNPosition HUNPosition `yaml:"hun_position"`

	// HUNBounds optionally identifies the HUN window by its exact global
	// bounds [x, y, w, h], for providers that do not flag it.
	HUNBounds *[4]int `yaml:"hun_bounds,omitempty"`
}

// Default returns the stock configuration: HUN docked top, escaped by
// nudging down toward the main content.
func Default() Config {
	return Config{
		HUNEscape:   "down",
		HUNPosition: HUNTop,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML config document over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if _, err := model.ParseDirection(c.HUNEscape); err != nil {
		return fmt.Errorf("hun_escape: %w", err)
	}
	if c.HUNPosition != HUNTop && c.HUNPosition != HUNBottom {
		return fmt.Errorf("hun_position: %q (expected top or bottom)", c.HUNPosition)
	}
	return nil
}

// Rules derives the engine's HUN behavior: the configured escape direction
// and the entry direction implied by the docked edge (up enters a top-docked
// HUN, down enters a bottom-docked one).
func (c Config) Rules() (nav.HUNRules, error) {
	escape, err := model.ParseDirection(c.HUNEscape)
	if err != nil {
		return nav.HUNRules{}, fmt.Errorf("hun_escape: %w", err)
	}
	entry := model.DirUp
	if c.HUNPosition == HUNBottom {
		entry = model.DirDown
	}
	return nav.HUNRules{Escape: escape, Entry: entry}, nil
}

// HUNRect returns the configured HUN recognition bounds, or a zero rect when
// none are configured.
func (c Config) HUNRect() model.Rect {
	if c.HUNBounds == nil {
		return model.Rect{}
	}
	return model.RectFromArray(*c.HUNBounds)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/rotary-nav/internal/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.HUNEscape != "down" || cfg.HUNPosition != HUNTop {
		t.Errorf("Default = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("hun_position: bottom\nhun_bounds: [0, 620, 400, 100]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HUNPosition != HUNBottom {
		t.Errorf("HUNPosition = %q, want bottom", cfg.HUNPosition)
	}
	if cfg.HUNEscape != "down" {
		t.Errorf("HUNEscape = %q, want the default kept", cfg.HUNEscape)
	}
	if got := cfg.HUNRect(); got != (model.Rect{X: 0, Y: 620, W: 400, H: 100}) {
		t.Errorf("HUNRect = %+v", got)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("hun_escape: diagonal\n")); err == nil {
		t.Error("unknown escape direction should fail validation")
	}
	if _, err := Parse([]byte("hun_position: left\n")); err == nil {
		t.Error("unknown HUN position should fail validation")
	}
	if _, err := Parse([]byte("hun_escape: [not, a, string]\n")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestRules(t *testing.T) {
	top := Default()
	rules, err := top.Rules()
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	if rules.Escape != model.DirDown || rules.Entry != model.DirUp {
		t.Errorf("top rules = %+v", rules)
	}

	bottom := Config{HUNEscape: "up", HUNPosition: HUNBottom}
	rules, err = bottom.Rules()
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	if rules.Escape != model.DirUp || rules.Entry != model.DirDown {
		t.Errorf("bottom rules = %+v", rules)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg != Default() {
		t.Errorf("Load(\"\") = (%+v, %v), want defaults", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "nav.yaml")
	if err := os.WriteFile(path, []byte("hun_position: bottom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HUNPosition != HUNBottom {
		t.Errorf("HUNPosition = %q, want bottom", cfg.HUNPosition)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

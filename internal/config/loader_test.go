package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseKnight(defaultKnightYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultKnightConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultKnightConfig())
	}
}

func TestLoadKnightCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knight.yaml")
	data := "physics:\n  gravity: 500\ncombat:\n  ruleset: classic\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadKnight(path)
	if err != nil {
		t.Fatalf("LoadKnight() error = %v", err)
	}
	if cfg.Physics.Gravity != 500 {
		t.Errorf("Gravity = %v, expected 500", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpForce != 500 {
		t.Errorf("JumpForce = %v, expected default 500", cfg.Physics.JumpForce)
	}
	if cfg.Combat.Ruleset != RulesetClassic {
		t.Errorf("Ruleset = %q, expected %q", cfg.Combat.Ruleset, RulesetClassic)
	}
}

func TestLoadKnightCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadKnight(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadKnight(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("level:\n  min_step: 80\n  max_step: 30\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadKnight(bad)
	if err == nil || !strings.Contains(err.Error(), "step range") {
		t.Errorf("LoadKnight(bad) error = %v, expected step range error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*KnightConfig)
		wantErr bool
	}{
		{"defaults", func(*KnightConfig) {}, false},
		{"empty width range", func(c *KnightConfig) { c.Level.MaxWidth = c.Level.MinWidth }, true},
		{"margin too wide", func(c *KnightConfig) { c.Level.EdgeMargin = 400 }, true},
		{"fractional width leaves no columns", func(c *KnightConfig) {
			c.World.Width = 100.5
			c.Level.EdgeMargin = 50
		}, true},
		{"one column left", func(c *KnightConfig) {
			c.World.Width = 101
			c.Level.EdgeMargin = 50
		}, false},
		{"unknown ruleset", func(c *KnightConfig) { c.Combat.Ruleset = "chaos" }, true},
		{"classic without damage", func(c *KnightConfig) {
			c.Combat.Ruleset = RulesetClassic
			c.Combat.ClassicMaxDamage = 0
		}, true},
		{"no text lines", func(c *KnightConfig) { c.Text.MaxLines = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKnightConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyKnightPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		health float64
		power  float64
	}{
		{DifficultyEasy, 150, 15},
		{DifficultyNormal, 100, 10},
		{DifficultyHard, 70, 7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultKnightConfig()
			ApplyKnightPreset(&cfg, tc.preset)
			if cfg.Player.Health != tc.health || cfg.Player.Power != tc.power {
				t.Errorf("player = %v/%v, expected %v/%v", cfg.Player.Health, cfg.Player.Power, tc.health, tc.power)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v, expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no target columns", func(c *Config) { c.Targets.Count = 0 }},
		{"no lives", func(c *Config) { c.Rules.MaxLives = 0 }},
		{"inverted horizontal walls", func(c *Config) { c.Arena.LeftWall = 400; c.Arena.RightWall = -400 }},
		{"inverted vertical walls", func(c *Config) { c.Arena.BottomWall = 300; c.Arena.TopWall = -300 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"downward launch", func(c *Config) { c.Physics.LaunchVelocity = -20 }},
		{"zero spawn period", func(c *Config) { c.Spawn.BasePeriodMs = 0 }},
		{"difficulty base at 1", func(c *Config) { c.Spawn.DifficultyBase = 1.0 }},
		{"zero paddle ratio", func(c *Config) { c.Paddle.WidthRatio = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultWorkshopYAML, &cfg); err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workshop.yaml")
	data := []byte("rules:\n  max_lives: 5\nspawn:\n  base_period_ms: 2500\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Rules.MaxLives != 5 {
		t.Errorf("max_lives = %d, expected override 5", cfg.Rules.MaxLives)
	}
	if cfg.Spawn.BasePeriodMs != 2500 {
		t.Errorf("base_period_ms = %g, expected override 2500", cfg.Spawn.BasePeriodMs)
	}
	// Untouched fields keep their defaults
	if cfg.Targets.Count != 5 {
		t.Errorf("targets.count = %d, expected default 5", cfg.Targets.Count)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("gravity = %g, expected default 0.25", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workshop.yaml")
	data := []byte("targets:\n  count: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a config with no target columns")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantLives    int
		wantPeriodMs float64
	}{
		{DifficultyEasy, 5, 2000},
		{DifficultyNormal, 3, 1500},
		{DifficultyHard, 2, 1100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Rules.MaxLives != tc.wantLives {
				t.Errorf("max_lives = %d, expected %d", cfg.Rules.MaxLives, tc.wantLives)
			}
			if cfg.Spawn.BasePeriodMs != tc.wantPeriodMs {
				t.Errorf("base_period_ms = %g, expected %g", cfg.Spawn.BasePeriodMs, tc.wantPeriodMs)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate, got %v", err)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	if !ValidPreset(DifficultyEasy) || !ValidPreset(DifficultyNormal) || !ValidPreset(DifficultyHard) {
		t.Error("named presets should be valid")
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset should be invalid")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultPanelConfigIsValid(t *testing.T) {
	if err := DefaultPanelConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg PanelConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPanelConfig() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, DefaultPanelConfig())
	}
}

func TestLoadPanelCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.yaml")
	data := []byte("timing:\n  flash: 30\ninput:\n  repeat_delay: 8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("LoadPanel() failed: %v", err)
	}

	if cfg.Timing.Flash != 30 {
		t.Errorf("Flash = %d, want 30", cfg.Timing.Flash)
	}
	if cfg.Input.RepeatDelay != 8 {
		t.Errorf("RepeatDelay = %d, want 8", cfg.Input.RepeatDelay)
	}
	// Untouched keys keep defaults
	if cfg.Timing.Face != 10 || cfg.Field.Categories != 8 {
		t.Errorf("unset keys lost defaults: %+v", cfg)
	}
}

func TestLoadPanelMissingCustomPath(t *testing.T) {
	_, err := LoadPanel(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadPanel() with missing file should fail")
	}
}

func TestLoadPanelRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.yaml")
	if err := os.WriteFile(path, []byte("field:\n  categories: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPanel(path); err == nil {
		t.Error("LoadPanel() should reject a single category")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PanelConfig)
	}{
		{"negative flash", func(c *PanelConfig) { c.Timing.Flash = -1 }},
		{"zero swap", func(c *PanelConfig) { c.Timing.Swap = 0 }},
		{"negative start rows", func(c *PanelConfig) { c.Field.StartRows = -2 }},
		{"zero repeat delay", func(c *PanelConfig) { c.Input.RepeatDelay = 0 }},
		{"zero time attack", func(c *PanelConfig) { c.Gameplay.TimeAttackSeconds = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPanelConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

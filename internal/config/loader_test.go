package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinScenesParse(t *testing.T) {
	ids := BuiltinIDs()
	if len(ids) < 3 {
		t.Fatalf("BuiltinIDs() = %v, expected at least 3 scenes", ids)
	}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			cfg, err := Parse(GetDefaultYAML(id))
			if err != nil {
				t.Fatalf("Parse(%s) failed: %v", id, err)
			}
			if cfg.ID != id {
				t.Errorf("ID = %q, expected %q (file name)", cfg.ID, id)
			}
			if cfg.Title == "" {
				t.Error("Title should not be empty")
			}
		})
	}
}

func TestDefaultFireSceneIsValid(t *testing.T) {
	if err := DefaultFireScene().Validate(); err != nil {
		t.Errorf("DefaultFireScene() is invalid: %v", err)
	}
}

func TestLoadEmbedded(t *testing.T) {
	// Run from an empty directory so ./scenes does not shadow the default
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("fountain", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ID != "fountain" || len(cfg.Systems) != 3 {
		t.Errorf("Load(fountain) = %q with %d systems, expected fountain with 3", cfg.ID, len(cfg.Systems))
	}
}

func TestLoadUnknownScene(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := Load("volcano", "")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Load(volcano) error = %v, expected ErrUnknownScene", err)
	}
}

const customScene = `
id: drip
title: Drip
grid: { cols: 10, rows: 5 }
themes:
  plain:
    colors: { values: ["33"] }
    glyphs: { values: ["*"] }
systems:
  - theme: plain
    lifetime: 1
    count: 3
    spawn: { kind: point, position: { x: 5, y: 0 } }
`

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drip.yaml")
	if err := os.WriteFile(path, []byte(customScene), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("ignored", path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ID != "drip" || cfg.Grid.Cols != 10 || cfg.Systems[0].Count != 3 {
		t.Errorf("Load() = %+v, expected the drip scene", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load("fire", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadLocalOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("scenes", 0o755); err != nil {
		t.Fatal(err)
	}
	local := strings.Replace(customScene, "id: drip", "id: fire", 1)
	if err := os.WriteFile(filepath.Join("scenes", "fire.yaml"), []byte(local), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("fire", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Title != "Drip" {
		t.Errorf("Title = %q, expected local scene to win", cfg.Title)
	}
}

func TestValidate(t *testing.T) {
	base := func() SceneConfig {
		cfg, err := Parse([]byte(customScene))
		if err != nil {
			t.Fatalf("Parse() failed: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*SceneConfig)
		wantErr string
	}{
		{"valid", func(*SceneConfig) {}, ""},
		{"empty glyphs", func(c *SceneConfig) {
			th := c.Themes["plain"]
			th.Glyphs.Values = nil
			c.Themes["plain"] = th
		}, "no values"},
		{"multi-rune glyph", func(c *SceneConfig) {
			th := c.Themes["plain"]
			th.Glyphs.Values = []string{"**"}
			c.Themes["plain"] = th
		}, "single character"},
		{"bad color", func(c *SceneConfig) {
			th := c.Themes["plain"]
			th.Colors.Values = []string{"ultraviolet"}
			c.Themes["plain"] = th
		}, "invalid color"},
		{"unknown theme", func(c *SceneConfig) { c.Systems[0].Theme = "neon" }, "unknown theme"},
		{"zero lifetime", func(c *SceneConfig) { c.Systems[0].Lifetime = 0 }, "lifetime"},
		{"bad spawn", func(c *SceneConfig) { c.Systems[0].Spawn.Kind = "ring" }, "spawn kind"},
		{"no systems", func(c *SceneConfig) { c.Systems = nil }, "no systems"},
		{"zero grid", func(c *SceneConfig) { c.Grid.Rows = 0 }, "grid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseRejectsNaNThreshold(t *testing.T) {
	data := strings.Replace(customScene, `colors: { values: ["33"] }`, `colors: { steps: [{ at: .nan, value: "33" }] }`, 1)
	if _, err := Parse([]byte(data)); err == nil {
		t.Error("Parse() should reject a NaN threshold")
	}
}

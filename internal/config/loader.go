package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownScene is returned when no file or embedded default exists for a scene ID.
var ErrUnknownScene = errors.New("config: unknown scene")

// Load loads and validates a scene description.
// Search order: customPath -> ~/.particles/scenes/<id>.yaml -> ./scenes/<id>.yaml -> embedded default
func Load(sceneID, customPath string) (SceneConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	filename := sceneID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local scenes directory
	if cfg, err := LoadFile(filepath.Join("scenes", filename)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	data := GetDefaultYAML(sceneID)
	if data == nil {
		return SceneConfig{}, fmt.Errorf("%w %q", ErrUnknownScene, sceneID)
	}
	cfg, err := Parse(data)
	if err != nil {
		if sceneID == "fire" {
			return DefaultFireScene(), nil // Fallback to hardcoded if embed fails
		}
		return SceneConfig{}, fmt.Errorf("config: embedded scene %q: %w", sceneID, err)
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a scene file.
func LoadFile(path string) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("config: cannot load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a scene description from YAML.
func Parse(data []byte) (SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SceneConfig{}, fmt.Errorf("config: cannot parse scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user scene file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".particles", "scenes", filename)
}

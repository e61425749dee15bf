package config

import (
	"embed"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaultScenes embed.FS

// BuiltinIDs returns the IDs of the embedded default scenes, sorted.
func BuiltinIDs() []string {
	entries, err := defaultScenes.ReadDir("defaults")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids
}

// GetDefaultYAML returns the embedded default YAML for a scene, or nil.
func GetDefaultYAML(sceneID string) []byte {
	data, err := defaultScenes.ReadFile("defaults/" + sceneID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// DefaultFireScene returns the campfire scene without touching any file.
// It is the last-resort fallback when the embedded YAML cannot be decoded.
func DefaultFireScene() SceneConfig {
	return SceneConfig{
		ID:       "fire",
		Title:    "Campfire",
		Grid:     GridConfig{Cols: 80, Rows: 24},
		TickRate: 30,
		Themes: map[string]ThemeConfig{
			"flame": {
				Colors: GradientConfig{Values: []string{"dark_gray", "dark_red", "crimson", "orange", "amber", "pale_yellow"}},
				Glyphs: GradientConfig{Values: []string{".", ":", "*", "x", "#", "@"}},
			},
		},
		Systems: []SystemConfig{
			{
				Theme:    "flame",
				Lifetime: 1.2,
				Count:    320,
				Gravity:  VecConfig{X: 0, Y: -3},
				Velocity: VecConfig{X: 0, Y: -4},
				Spawn: SpawnConfig{
					Kind:   SpawnBox,
					Origin: VecConfig{X: 28, Y: 21},
					Size:   VecConfig{X: 24, Y: 1},
				},
			},
		},
	}
}

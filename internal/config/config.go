// Package config provides YAML-based scene descriptions and loading for the
// particle renderer.
package config

// SceneConfig describes a complete scene: a fixed grid, a set of named
// visual themes and the particle systems that use them.
type SceneConfig struct {
	ID       string                 `yaml:"id"`
	Title    string                 `yaml:"title"`
	Grid     GridConfig             `yaml:"grid"`
	TickRate int                    `yaml:"tick_rate"`
	Themes   map[string]ThemeConfig `yaml:"themes"`
	Systems  []SystemConfig         `yaml:"systems"`
}

// GridConfig is the fixed size of the character grid.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// ThemeConfig pairs a color gradient with a glyph gradient.
// A theme may be shared by several systems.
type ThemeConfig struct {
	Colors GradientConfig `yaml:"colors"`
	Glyphs GradientConfig `yaml:"glyphs"`
}

// GradientConfig lists either equally spaced values or explicit steps.
// Values are given from oldest (age near 0) to youngest (age 1).
type GradientConfig struct {
	Values []string     `yaml:"values,omitempty"`
	Steps  []StepConfig `yaml:"steps,omitempty"`
}

// StepConfig is one explicit gradient breakpoint.
type StepConfig struct {
	At    float64 `yaml:"at"`
	Value string  `yaml:"value"`
}

// Len returns the number of breakpoints the gradient will have.
func (g GradientConfig) Len() int {
	if len(g.Steps) > 0 {
		return len(g.Steps)
	}
	return len(g.Values)
}

// VecConfig is a 2D vector in grid units.
type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SystemConfig describes one particle system.
type SystemConfig struct {
	Theme    string      `yaml:"theme"`
	Lifetime float64     `yaml:"lifetime"` // base time to live, seconds
	Count    int         `yaml:"count"`    // target population
	Gravity  VecConfig   `yaml:"gravity"`
	Velocity VecConfig   `yaml:"velocity"`
	Spawn    SpawnConfig `yaml:"spawn"`
}

// Spawn kinds understood by SpawnConfig.
const (
	SpawnPoint  = "point"
	SpawnCircle = "circle"
	SpawnBox    = "box"
)

// SpawnConfig selects where particles appear. Only the fields relevant to
// Kind are read: point uses Position, circle uses Center and Radius,
// box uses Origin and Size.
type SpawnConfig struct {
	Kind     string    `yaml:"kind"`
	Position VecConfig `yaml:"position,omitempty"`
	Center   VecConfig `yaml:"center,omitempty"`
	Radius   float64   `yaml:"radius,omitempty"`
	Origin   VecConfig `yaml:"origin,omitempty"`
	Size     VecConfig `yaml:"size,omitempty"`
}

// Package scene assembles particle systems and their shared themes from a
// scene description. Built-in scenes register themselves with the registry.
package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/tui-particles/internal/config"
	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/gradient"
	"github.com/vovakirdan/tui-particles/internal/particle"
	"github.com/vovakirdan/tui-particles/internal/registry"
)

func init() {
	for _, id := range config.BuiltinIDs() {
		registry.Register(id, func() registry.Scene {
			return MustBuiltin(id)
		})
	}
}

// Scene is a fixed list of particle systems drawn onto one grid.
// Systems using the same theme share its gradients.
type Scene struct {
	cfg     config.SceneConfig
	themes  map[string]particle.Theme
	systems []*particle.System
}

// Ensure Scene implements registry.Scene
var _ registry.Scene = (*Scene)(nil)

// New validates cfg and builds its themes. Systems are spawned by Reset.
func New(cfg config.SceneConfig) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	themes := make(map[string]particle.Theme, len(cfg.Themes))
	for name, th := range cfg.Themes {
		theme, err := buildTheme(th)
		if err != nil {
			return nil, fmt.Errorf("scene: theme %q: %w", name, err)
		}
		themes[name] = theme
	}

	return &Scene{cfg: cfg, themes: themes}, nil
}

// MustBuiltin builds an embedded default scene, panicking if it is broken.
func MustBuiltin(id string) *Scene {
	cfg, err := config.Parse(config.GetDefaultYAML(id))
	if err != nil {
		panic(fmt.Sprintf("scene: builtin %q: %v", id, err))
	}
	s, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("scene: builtin %q: %v", id, err))
	}
	return s
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return s.cfg.ID }

// Title returns the display name.
func (s *Scene) Title() string { return s.cfg.Title }

// Grid returns the grid size the scene is laid out for.
func (s *Scene) Grid() (cols, rows int) {
	return s.cfg.Grid.Cols, s.cfg.Grid.Rows
}

// TickRate returns the preferred ticks per second.
func (s *Scene) TickRate() int { return s.cfg.TickRate }

// Config returns the scene description.
func (s *Scene) Config() config.SceneConfig { return s.cfg }

// Theme returns a built theme by name.
func (s *Scene) Theme(name string) (particle.Theme, bool) {
	th, ok := s.themes[name]
	return th, ok
}

// Systems returns the particle systems in draw order.
func (s *Scene) Systems() []*particle.System {
	return s.systems
}

// Reset spawns every system at full population. Each system gets its own
// RNG derived from the seed so systems stay independent of each other.
func (s *Scene) Reset(rc core.RuntimeConfig) {
	s.systems = make([]*particle.System, 0, len(s.cfg.Systems))
	for i, sc := range s.cfg.Systems {
		rng := rand.New(rand.NewSource(rc.Seed + int64(i)))
		s.systems = append(s.systems, particle.NewSystem(buildParams(sc), s.themes[sc.Theme], rng))
	}
}

// Tick advances every system by dt seconds.
func (s *Scene) Tick(dt float64) {
	for _, sys := range s.systems {
		sys.Tick(dt)
	}
}

// Draw draws systems in declaration order; later systems win shared cells.
func (s *Scene) Draw(dst *core.Screen) {
	for _, sys := range s.systems {
		sys.Draw(dst)
	}
}

func buildTheme(th config.ThemeConfig) (particle.Theme, error) {
	colors, err := buildGradient(th.Colors, core.ParseColor)
	if err != nil {
		return particle.Theme{}, fmt.Errorf("colors: %w", err)
	}
	glyphs, err := buildGradient(th.Glyphs, parseGlyph)
	if err != nil {
		return particle.Theme{}, fmt.Errorf("glyphs: %w", err)
	}
	return particle.Theme{Colors: colors, Glyphs: glyphs}, nil
}

// buildGradient converts a gradient description, parsing each value with parse.
func buildGradient[T any](g config.GradientConfig, parse func(string) (T, error)) (*gradient.Gradient[T], error) {
	if len(g.Steps) > 0 {
		entries := make([]gradient.Entry[T], 0, len(g.Steps))
		for _, st := range g.Steps {
			v, err := parse(st.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, gradient.Entry[T]{T: st.At, Value: v})
		}
		return gradient.New(entries), nil
	}

	values := make([]T, 0, len(g.Values))
	for _, raw := range g.Values {
		v, err := parse(raw)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return gradient.EqualSpacing(values...), nil
}

func parseGlyph(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, errors.New("empty glyph")
	}
	return r, nil
}

func buildParams(sc config.SystemConfig) particle.Params {
	return particle.Params{
		Lifetime: sc.Lifetime,
		Count:    sc.Count,
		Gravity:  vec(sc.Gravity),
		Velocity: vec(sc.Velocity),
		Spawn:    buildSpawner(sc.Spawn),
	}
}

func buildSpawner(sp config.SpawnConfig) particle.Spawner {
	switch sp.Kind {
	case config.SpawnCircle:
		return particle.Circle{Center: vec(sp.Center), Radius: sp.Radius}
	case config.SpawnBox:
		return particle.Box{Origin: vec(sp.Origin), Size: vec(sp.Size)}
	default:
		return particle.Point{Position: vec(sp.Position)}
	}
}

func vec(v config.VecConfig) core.Vec2 {
	return core.Vec2{X: v.X, Y: v.Y}
}

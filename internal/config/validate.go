package config

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-particles/internal/core"
)

// Validate reports every problem in the scene description. Problems that
// would otherwise panic during scene construction (empty gradients, NaN
// thresholds, missing themes) are caught here.
func (c SceneConfig) Validate() error {
	var errs []error

	if c.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.TickRate < 0 {
		errs = append(errs, fmt.Errorf("tick_rate must not be negative, got %d", c.TickRate))
	}

	for name, th := range c.Themes {
		if err := validateGradient(th.Colors, false); err != nil {
			errs = append(errs, fmt.Errorf("theme %q colors: %w", name, err))
		}
		if err := validateGradient(th.Glyphs, true); err != nil {
			errs = append(errs, fmt.Errorf("theme %q glyphs: %w", name, err))
		}
	}

	if len(c.Systems) == 0 {
		errs = append(errs, errors.New("no systems"))
	}
	for i, s := range c.Systems {
		if err := s.validate(c.Themes); err != nil {
			errs = append(errs, fmt.Errorf("system %d: %w", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid scene %q: %w", c.ID, errors.Join(errs...))
	}
	return nil
}

func (s SystemConfig) validate(themes map[string]ThemeConfig) error {
	if _, ok := themes[s.Theme]; !ok {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	if !(s.Lifetime > 0) {
		return fmt.Errorf("lifetime must be positive, got %v", s.Lifetime)
	}
	if s.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", s.Count)
	}

	switch s.Spawn.Kind {
	case SpawnPoint:
	case SpawnCircle:
		if s.Spawn.Radius < 0 {
			return fmt.Errorf("circle radius must not be negative, got %v", s.Spawn.Radius)
		}
	case SpawnBox:
		if s.Spawn.Size.X < 0 || s.Spawn.Size.Y < 0 {
			return fmt.Errorf("box size must not be negative, got %+v", s.Spawn.Size)
		}
	default:
		return fmt.Errorf("unknown spawn kind %q", s.Spawn.Kind)
	}
	return nil
}

func validateGradient(g GradientConfig, glyphs bool) error {
	if g.Len() == 0 {
		return errors.New("no values")
	}
	if len(g.Steps) > 0 && len(g.Values) > 0 {
		return errors.New("values and steps are mutually exclusive")
	}

	values := g.Values
	for _, st := range g.Steps {
		if math.IsNaN(st.At) {
			return errors.New("NaN threshold")
		}
		values = append(values, st.Value)
	}

	for _, v := range values {
		if glyphs {
			if utf8.RuneCountInString(v) != 1 {
				return fmt.Errorf("glyph %q must be a single character", v)
			}
			continue
		}
		if _, err := core.ParseColor(v); err != nil {
			return err
		}
	}
	return nil
}

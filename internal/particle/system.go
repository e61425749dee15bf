package particle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/gradient"
)

// Randomization range applied to the base lifetime and base velocity of
// each spawned particle.
const (
	SpawnScaleMin = 0.1
	SpawnScaleMax = 1.9
)

// Theme is the visual mapping from particle age to appearance.
// Gradients are read-only and may be shared by any number of systems.
type Theme struct {
	Colors *gradient.Gradient[core.Color]
	Glyphs *gradient.Gradient[rune]
}

// Canvas receives the cells drawn by a system. *core.Screen implements it.
type Canvas interface {
	WriteChar(glyph rune, color core.Color, row, col int)
}

// Params are the constant parameters of a particle system.
type Params struct {
	Lifetime float64   // base time to live in seconds
	Count    int       // target population
	Gravity  core.Vec2 // constant force applied every tick
	Velocity core.Vec2 // base initial velocity
	Spawn    Spawner
}

// System owns a pool of particles kept at a fixed population.
// Dead particles are replaced by freshly spawned ones on every tick.
type System struct {
	params    Params
	theme     Theme
	rng       *rand.Rand
	particles []Particle
}

// NewSystem creates a system and spawns its full population immediately.
// Invalid parameters panic.
func NewSystem(p Params, theme Theme, rng *rand.Rand) *System {
	switch {
	case p.Lifetime <= 0:
		panic(fmt.Sprintf("particle: lifetime must be positive, got %v", p.Lifetime))
	case p.Count < 0:
		panic(fmt.Sprintf("particle: negative count %d", p.Count))
	case p.Spawn == nil:
		panic("particle: nil spawner")
	case theme.Colors == nil || theme.Glyphs == nil:
		panic("particle: theme is missing a gradient")
	case rng == nil:
		panic("particle: nil rng")
	}

	s := &System{
		params:    p,
		theme:     theme,
		rng:       rng,
		particles: make([]Particle, 0, p.Count),
	}
	for range p.Count {
		s.particles = append(s.particles, s.spawnParticle())
	}
	return s
}

// Tick integrates every particle under gravity, then removes the dead ones
// and spawns replacements so the population is back at its target.
func (s *System) Tick(dt float64) {
	for i := range s.particles {
		p := &s.particles[i]
		p.ApplyForce(s.params.Gravity)
		p.Tick(dt)
	}

	// Swap-remove; order is not preserved.
	for i := 0; i < len(s.particles); {
		if !s.particles[i].Dead() {
			i++
			continue
		}
		last := len(s.particles) - 1
		s.particles[i] = s.particles[last]
		s.particles = s.particles[:last]
	}

	for len(s.particles) < s.params.Count {
		s.particles = append(s.particles, s.spawnParticle())
	}
}

// Draw writes every particle to dst at its rounded position, picking glyph
// and color from the theme by the particle's normalized age.
func (s *System) Draw(dst Canvas) {
	for i := range s.particles {
		p := &s.particles[i]
		age := p.Age()
		row, col := p.position.Round()
		dst.WriteChar(s.theme.Glyphs.Value(age), s.theme.Colors.Value(age), row, col)
	}
}

// spawnParticle returns a fully initialized particle with randomized
// lifetime and speed. Direction of the base velocity is preserved.
func (s *System) spawnParticle() Particle {
	ttl := s.params.Lifetime * uniform(s.rng, SpawnScaleMin, SpawnScaleMax)
	velocity := s.params.Velocity.Scale(uniform(s.rng, SpawnScaleMin, SpawnScaleMax))
	return New(ttl, velocity, s.params.Spawn.Spawn(s.rng))
}

// Len returns the current population.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Params returns the system's constant parameters.
func (s *System) Params() Params {
	return s.params
}

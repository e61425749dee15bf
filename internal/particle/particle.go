// Package particle implements short-lived point masses and the systems that
// spawn, integrate and draw them.
package particle

import "github.com/vovakirdan/tui-particles/internal/core"

// Particle is a point mass with a remaining-lifetime countdown.
// Mass is implicitly 1, so an applied force is an acceleration.
type Particle struct {
	timeLeft float64
	lifetime float64 // initial time to live, fixed for the particle's life
	velocity core.Vec2
	position core.Vec2
	force    core.Vec2 // accumulated since the last tick
}

// New creates a particle that lives for ttl seconds.
func New(ttl float64, velocity, position core.Vec2) Particle {
	return Particle{
		timeLeft: ttl,
		lifetime: ttl,
		velocity: velocity,
		position: position,
	}
}

// ApplyForce adds f to the force accumulated for the next tick.
func (p *Particle) ApplyForce(f core.Vec2) {
	p.force = p.force.Add(f)
}

// Tick advances the particle by dt seconds using semi-implicit Euler:
// velocity is updated first and the new velocity moves the position.
// The accumulated force is cleared.
func (p *Particle) Tick(dt float64) {
	p.velocity = p.velocity.Add(p.force.Scale(dt))
	p.position = p.position.Add(p.velocity.Scale(dt))
	p.timeLeft -= dt
	p.force = core.Vec2{}
}

// Dead reports whether the particle's lifetime has run out.
func (p *Particle) Dead() bool {
	return p.timeLeft <= 0
}

// Age returns the remaining fraction of the particle's life: 1 at birth,
// 0 (or below) at death.
func (p *Particle) Age() float64 {
	return p.timeLeft / p.lifetime
}

// TimeLeft returns the remaining lifetime in seconds.
func (p *Particle) TimeLeft() float64 { return p.timeLeft }

// Lifetime returns the particle's initial time to live.
func (p *Particle) Lifetime() float64 { return p.lifetime }

// Position returns the current position in grid space.
func (p *Particle) Position() core.Vec2 { return p.position }

// Velocity returns the current velocity in cells per second.
func (p *Particle) Velocity() core.Vec2 { return p.velocity }

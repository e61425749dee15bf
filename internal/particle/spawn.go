package particle

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-particles/internal/core"
)

// Spawner decides where a new particle appears.
// Implementations are Point, Circle and Box.
type Spawner interface {
	Spawn(rng *rand.Rand) core.Vec2
	Kind() string
}

// Point spawns every particle at the same position.
type Point struct {
	Position core.Vec2
}

// Spawn returns the fixed point.
func (s Point) Spawn(*rand.Rand) core.Vec2 {
	return s.Position
}

// Kind returns "point".
func (Point) Kind() string { return "point" }

// Circle spawns particles at a uniform angle and a uniform distance from
// the center. Density is therefore higher near the center than at the rim.
type Circle struct {
	Center core.Vec2
	Radius float64
}

// Spawn returns a point within Radius of Center.
func (s Circle) Spawn(rng *rand.Rand) core.Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	r := rng.Float64() * s.Radius
	return core.Vec2{
		X: s.Center.X + math.Cos(angle)*r,
		Y: s.Center.Y + math.Sin(angle)*r,
	}
}

// Kind returns "circle".
func (Circle) Kind() string { return "circle" }

// Box spawns particles uniformly inside the rectangle Origin..Origin+Size.
type Box struct {
	Origin core.Vec2
	Size   core.Vec2
}

// Spawn draws x and y independently.
func (s Box) Spawn(rng *rand.Rand) core.Vec2 {
	return core.Vec2{
		X: s.Origin.X + rng.Float64()*s.Size.X,
		Y: s.Origin.Y + rng.Float64()*s.Size.Y,
	}
}

// Kind returns "box".
func (Box) Kind() string { return "box" }

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Package core provides fundamental types and utilities for the particle renderer.
// It contains no external dependencies to keep simulation and rendering
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in grid space. X grows to the right (columns),
// Y grows downward (rows).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Round returns the nearest grid cell (row, col) for v.
// Halves round away from zero, matching math.Round.
func (v Vec2) Round() (row, col int) {
	return int(math.Round(v.Y)), int(math.Round(v.X))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

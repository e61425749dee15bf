package core

import "time"

// RuntimeConfig contains configuration passed to scenes and the frame driver.
type RuntimeConfig struct {
	Cols      int   // Grid width in characters
	Rows      int   // Grid height in characters
	TickRate  int   // Simulation ticks per second (default 30)
	Seed      int64 // RNG seed for deterministic spawning
	MaxFrames int   // Stop after this many frames, 0 = run until cancelled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols:     80,
		Rows:     24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Timestep returns the fixed simulation step in seconds.
func (c RuntimeConfig) Timestep() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 30.0
	}
	return 1.0 / float64(c.TickRate)
}

// FrameInterval returns the wall-clock duration of one frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

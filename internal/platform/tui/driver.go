package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/registry"
)

// Terminal mode sequences written around a run.
const (
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
)

// Driver runs one scene on one terminal stream with a fixed timestep.
// Every frame is clear -> tick -> draw -> flush, then a sleep until the
// next tick boundary.
type Driver struct {
	scene  registry.Scene
	screen *core.Screen
	out    io.Writer
	config core.RuntimeConfig
	logger *log.Logger
	frames int
}

// NewDriver prepares the terminal behind w, allocates the screen for the
// scene's grid and spawns the scene's particles.
// cfg.Cols and cfg.Rows are taken from the scene; a zero Seed is replaced
// with a time-based one and a zero TickRate with the scene's preference.
func NewDriver(scene registry.Scene, w io.Writer, cfg core.RuntimeConfig, logger *log.Logger) (*Driver, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = scene.TickRate()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.Cols, cfg.Rows = scene.Grid()

	if _, err := io.WriteString(w, seqHideCursor); err != nil {
		return nil, fmt.Errorf("cannot prepare terminal: %w", err)
	}
	screen, err := core.NewScreen(w, cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, err
	}

	scene.Reset(cfg)

	return &Driver{
		scene:  scene,
		screen: screen,
		out:    w,
		config: cfg,
		logger: logger,
	}, nil
}

// Config returns the effective runtime configuration.
func (d *Driver) Config() core.RuntimeConfig {
	return d.config
}

// Frames returns the number of frames flushed so far.
func (d *Driver) Frames() int {
	return d.frames
}

// Frame runs one clear -> tick -> draw -> flush cycle.
func (d *Driver) Frame() error {
	d.screen.Clear()
	d.scene.Tick(d.config.Timestep())
	d.scene.Draw(d.screen)
	if err := d.screen.Flush(); err != nil {
		return err
	}
	d.frames++
	return nil
}

// Run loops until ctx is cancelled, MaxFrames is reached or a frame cannot
// be written. A write failure ends the run and is returned.
// The cursor is restored before returning.
func (d *Driver) Run(ctx context.Context) error {
	ticker := frameTicker(d.config)
	defer ticker.Stop()
	defer d.restore()

	d.logger.Debug("scene started",
		"scene", d.scene.ID(),
		"grid", fmt.Sprintf("%dx%d", d.config.Cols, d.config.Rows),
		"tick_rate", d.config.TickRate,
		"seed", d.config.Seed,
	)

	for {
		if err := d.Frame(); err != nil {
			d.logger.Error("frame write failed", "scene", d.scene.ID(), "frame", d.frames, "error", err)
			return err
		}
		if d.config.MaxFrames > 0 && d.frames >= d.config.MaxFrames {
			d.logger.Debug("frame limit reached", "frames", d.frames)
			return nil
		}

		select {
		case <-ctx.Done():
			d.logger.Debug("scene stopped", "scene", d.scene.ID(), "frames", d.frames)
			return nil
		case <-ticker.C:
		}
	}
}

// restore resets colors, shows the cursor and leaves it below the grid.
func (d *Driver) restore() {
	//nolint:errcheck // Best-effort, the stream may already be gone
	io.WriteString(d.out, core.SeqColorReset+seqShowCursor+"\r\n")
}

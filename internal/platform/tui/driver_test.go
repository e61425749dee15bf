package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/gradient"
	"github.com/vovakirdan/tui-particles/internal/particle"
)

// blinkScene lights one cell every other frame.
type blinkScene struct {
	ticks  int
	dts    []float64
	resets int
	seed   int64
}

func (s *blinkScene) ID() string { return "blink" }
func (s *blinkScene) Title() string { return "Blink" }
func (s *blinkScene) Grid() (int, int) { return 3, 2 }
func (s *blinkScene) TickRate() int { return 1000 }
func (s *blinkScene) Reset(cfg core.RuntimeConfig) {
	s.resets++
	s.seed = cfg.Seed
}
func (s *blinkScene) Tick(dt float64) {
	s.ticks++
	s.dts = append(s.dts, dt)
}
func (s *blinkScene) Draw(dst *core.Screen) {
	if s.ticks%2 == 1 {
		dst.WriteChar('*', core.Color(33), 0, 1)
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDriverFrameLimit(t *testing.T) {
	var out bytes.Buffer
	scene := &blinkScene{}
	d, err := NewDriver(scene, &out, core.RuntimeConfig{MaxFrames: 3, Seed: 5}, quietLogger())
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if d.Frames() != 3 || scene.ticks != 3 {
		t.Errorf("frames=%d ticks=%d, expected 3 and 3", d.Frames(), scene.ticks)
	}
	if scene.resets != 1 || scene.seed != 5 {
		t.Errorf("Reset called %d times with seed %d, expected once with 5", scene.resets, scene.seed)
	}

	cfg := d.Config()
	if cfg.Cols != 3 || cfg.Rows != 2 || cfg.TickRate != 1000 {
		t.Errorf("Config() = %+v, expected 3x2 grid at the scene's 1000 ticks/s", cfg)
	}
	for _, dt := range scene.dts {
		if dt != 1.0/1000.0 {
			t.Errorf("dt = %v, expected fixed 0.001", dt)
		}
	}

	s := out.String()
	if !strings.HasPrefix(s, seqHideCursor+core.SeqClear) {
		t.Errorf("output should start with hide-cursor and clear, got %q", s[:min(len(s), 20)])
	}
	if n := strings.Count(s, core.SeqHome); n != 3 {
		t.Errorf("output has %d frames, expected 3", n)
	}
	if !strings.HasSuffix(s, seqShowCursor+"\r\n") {
		t.Errorf("output should end by restoring the cursor, got %q", s[max(0, len(s)-20):])
	}
}

func TestDriverFrameContents(t *testing.T) {
	var out bytes.Buffer
	d, err := NewDriver(&blinkScene{}, &out, core.RuntimeConfig{Seed: 1}, quietLogger())
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}
	out.Reset()

	// First frame: tick 1 lights the cell
	if err := d.Frame(); err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	lit := core.SeqHome +
		"\r \x1b[38;5;33m*\x1b[0m " + core.SeqDown +
		"\r   " + core.SeqDown
	if out.String() != lit {
		t.Errorf("frame 1 = %q, expected %q", out.String(), lit)
	}

	// Second frame: the screen was cleared, nothing drawn
	out.Reset()
	if err := d.Frame(); err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	dark := core.SeqHome + "\r   " + core.SeqDown + "\r   " + core.SeqDown
	if out.String() != dark {
		t.Errorf("frame 2 = %q, expected %q", out.String(), dark)
	}
}

func TestDriverStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// One tick per second so the cancelled context is the only ready case
	d, err := NewDriver(&blinkScene{}, io.Discard, core.RuntimeConfig{Seed: 1, TickRate: 1}, quietLogger())
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}
	if err := d.Run(ctx); err != nil {
		t.Errorf("Run() = %v, expected nil on cancellation", err)
	}
	if d.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", d.Frames())
	}
}

// brokenPipe accepts the setup writes then fails.
type brokenPipe struct {
	allowed int
}

func (w *brokenPipe) Write(p []byte) (int, error) {
	if w.allowed == 0 {
		return 0, errors.New("broken pipe")
	}
	w.allowed--
	return len(p), nil
}

func TestDriverWriteErrorIsFatal(t *testing.T) {
	w := &brokenPipe{allowed: 2} // hide cursor + clear
	d, err := NewDriver(&blinkScene{}, w, core.RuntimeConfig{Seed: 1}, quietLogger())
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}
	if err := d.Run(context.Background()); err == nil {
		t.Error("Run() should return the write error")
	}
	if d.Frames() != 0 {
		t.Errorf("Frames() = %d, expected 0", d.Frames())
	}
}

func TestDriverTimeSeed(t *testing.T) {
	scene := &blinkScene{}
	if _, err := NewDriver(scene, io.Discard, core.RuntimeConfig{}, quietLogger()); err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}
	if scene.seed == 0 {
		t.Error("zero seed should be replaced with a time-based one")
	}
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreen(t *testing.T) {
	s, err := core.NewScreen(io.Discard, 5, 2)
	if err != nil {
		t.Fatalf("NewScreen() failed: %v", err)
	}
	s.WriteChar('a', core.ColorRed, 0, 0)
	s.WriteChar('b', core.ColorRed, 0, 1)
	s.WriteChar('c', core.ColorBlue, 0, 2)
	s.WriteChar('d', core.ColorBlue, 1, 4)

	got := ansi.ReplaceAllString(RenderScreen(s), "")
	if got != s.String() {
		t.Errorf("RenderScreen() text = %q, expected %q", got, s.String())
	}
}

func TestRenderTheme(t *testing.T) {
	th := particle.Theme{
		Colors: gradient.EqualSpacing(core.ColorDarkRed, core.ColorGold),
		Glyphs: gradient.EqualSpacing('.', '#'),
	}
	got := ansi.ReplaceAllString(RenderTheme("flame", th, 4, DefaultPreviewTheme()), "")
	expected := "flame     [..##]"
	if got != expected {
		t.Errorf("RenderTheme() = %q, expected %q", got, expected)
	}
}

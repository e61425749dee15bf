package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-particles/internal/config"
	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/platform/tui"
	"github.com/vovakirdan/tui-particles/internal/scene"
)

var (
	flagTicks       int
	flagSwatchWidth int
)

var previewCmd = &cobra.Command{
	Use:   "preview [scene]",
	Short: "Print one frame of a scene",
	Long: `Simulate a scene for a number of ticks and print the resulting frame
inside a border, followed by a color/glyph swatch of every theme.

Examples:
  particles preview
  particles preview fountain --ticks 90
  particles preview fire --config ./my-fire.yaml --seed 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene YAML")
	previewCmd.Flags().IntVar(&flagTicks, "ticks", 60, "Ticks to simulate before drawing")
	previewCmd.Flags().IntVar(&flagSwatchWidth, "swatch", 24, "Width of each theme swatch")
}

func runPreview(_ *cobra.Command, args []string) {
	logger := newLogger("preview")

	id := defaultScene
	if len(args) == 1 {
		id = args[0]
	}
	cfg, err := config.Load(id, flagConfig)
	if err != nil {
		logger.Error("cannot load scene", "scene", id, "error", err)
		os.Exit(1)
	}
	s, err := scene.New(cfg)
	if err != nil {
		logger.Error("cannot build scene", "scene", id, "error", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.Cols, rc.Rows = s.Grid()
	if s.TickRate() > 0 {
		rc.TickRate = s.TickRate()
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = 1
	}

	s.Reset(rc)
	for range flagTicks {
		s.Tick(rc.Timestep())
	}
	screen, err := core.NewScreen(io.Discard, rc.Cols, rc.Rows)
	if err != nil {
		logger.Error("cannot allocate screen", "error", err)
		os.Exit(1)
	}
	s.Draw(screen)

	styles := tui.DefaultPreviewTheme()
	title := styles.Title.Render(cfg.Title)
	info := styles.Dim.Render(fmt.Sprintf("%s  %dx%d  %d ticks/s  seed %d  after %d ticks",
		cfg.ID, rc.Cols, rc.Rows, rc.TickRate, rc.Seed, flagTicks))

	themes := make([]string, 0, len(cfg.Themes))
	for name := range cfg.Themes {
		themes = append(themes, name)
	}
	slices.Sort(themes)

	swatches := make([]string, 0, len(themes))
	for _, name := range themes {
		th, _ := s.Theme(name)
		swatches = append(swatches, tui.RenderTheme(name, th, flagSwatchWidth, styles))
	}

	fmt.Println(lipgloss.JoinVertical(lipgloss.Left,
		title,
		info,
		styles.Border.Render(tui.RenderScreen(screen)),
		lipgloss.JoinVertical(lipgloss.Left, swatches...),
	))
}

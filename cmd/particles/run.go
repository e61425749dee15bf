package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-particles/internal/config"
	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/platform/tui"
	"github.com/vovakirdan/tui-particles/internal/scene"
)

var flagConfig string

var runCmd = &cobra.Command{
	Use:   "run [scene]",
	Short: "Run a scene",
	Long: `Run the specified scene (fire by default) until Ctrl+C.

Scenes are loaded from, in order:
  --config <path>
  ~/.particles/scenes/<scene>.yaml
  ./scenes/<scene>.yaml
  the built-in default

Examples:
  particles run
  particles run fountain
  particles run burst --seed 7 --frames 600
  particles run fire --config ./my-fire.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := defaultScene
		if len(args) == 1 {
			id = args[0]
		}
		runScene(cmd, id)
	},
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene YAML")
}

func runScene(_ *cobra.Command, sceneID string) {
	logger := newLogger("particles")

	cfg, err := config.Load(sceneID, flagConfig)
	if err != nil {
		logger.Error("cannot load scene", "scene", sceneID, "error", err)
		fmt.Fprintln(os.Stderr, "Run 'particles list' to see available scenes.")
		os.Exit(1)
	}
	s, err := scene.New(cfg)
	if err != nil {
		logger.Error("cannot build scene", "scene", sceneID, "error", err)
		os.Exit(1)
	}

	cols, rows := s.Grid()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < cols || h < rows) {
		logger.Warn("terminal smaller than scene grid",
			"terminal", fmt.Sprintf("%dx%d", w, h),
			"grid", fmt.Sprintf("%dx%d", cols, rows),
		)
	}

	rc := core.RuntimeConfig{
		TickRate:  flagFPS,
		Seed:      flagSeed,
		MaxFrames: flagFrames,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Frames are flushed through the buffer once per tick
	out := bufio.NewWriter(os.Stdout)
	driver, err := tui.NewDriver(s, out, rc, logger)
	if err != nil {
		logger.Error("cannot start scene", "error", err)
		os.Exit(1)
	}

	runErr := driver.Run(ctx)
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		logger.Error("scene ended", "scene", sceneID, "frames", driver.Frames(), "error", runErr)
		os.Exit(1)
	}
}

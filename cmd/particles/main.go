// particles renders animated particle effects in the terminal.
//
// Usage:
//
//	particles                  - Run the fire scene
//	particles run <scene>      - Run a scene until Ctrl+C
//	particles list             - List available scenes
//	particles preview <scene>  - Print a single styled frame and the scene's themes
//	particles serve            - Stream a scene to SSH clients
//
// Global flags:
//
//	--fps <rate>         - Override the scene's tick rate
//	--seed <value>       - Set RNG seed for reproducible effects
//	--frames <n>         - Stop after n frames (0 = run until interrupted)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-particles/internal/platform/tui"
	// Import scenes to register them
	_ "github.com/vovakirdan/tui-particles/internal/scene"
)

const defaultScene = "fire"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagFrames   int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "particles",
	Short: "Terminal particle effects",
	Long: `Particles draws animated particle effects (fire, fountains, bursts)
in your terminal using 256-color escape sequences.

Run without a command to start the fire scene.

Available commands:
  run      - Run a scene until interrupted
  list     - Show all available scenes
  preview  - Print one styled frame of a scene
  serve    - Stream a scene over SSH

Examples:
  particles
  particles run fountain --fps 60
  particles run fire --seed 42 --frames 300
  particles preview burst
  particles serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runScene(cmd, defaultScene)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = scene default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFrames, "frames", 0, "Stop after this many frames (0 = no limit)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger or exits on a bad --log-level.
func newLogger(prefix string) *log.Logger {
	logger, err := tui.NewLogger(os.Stderr, prefix, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}

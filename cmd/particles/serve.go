package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-particles/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeScene  string
	flagMaxSession  int
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the particles SSH server",
	Long: `Start an SSH server that streams a scene to every client.

Each SSH connection gets its own instance of the scene, sized to the
scene's grid. A session ends when the client disconnects or after
--max-session minutes.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.particles/host_key

Examples:
  particles serve                           # Stream fire on :23235
  particles serve --scene fountain          # Stream another scene
  particles serve --ssh :2222               # Listen on port 2222
  particles serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeScene, "scene", defaults.SceneID, "Scene streamed to clients")
	serveCmd.Flags().IntVar(&flagMaxSession, "max-session", int(defaults.MaxSession/time.Minute), "Session length limit in minutes (0 = no limit)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("particles-ssh")

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		SceneID:     flagServeScene,
		TickRate:    flagFPS,
		MaxSession:  time.Duration(flagMaxSession) * time.Minute,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Streaming %q on %s\n", cfg.SceneID, server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.particles/host_key.
	HostKeyPath string

	// SceneID is the registered scene streamed to every session.
	SceneID string

	// TickRate overrides the scene's tick rate when positive.
	TickRate int

	// MaxSession ends a session after this long; 0 means no limit.
	MaxSession time.Duration

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		SceneID:     "fire",
		MaxSession:  5 * time.Minute,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that streams a scene to each session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if !registry.Exists(cfg.SceneID) {
		return nil, fmt.Errorf("unknown scene %q", cfg.SceneID)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".particles", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.sceneMiddleware,
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sceneMiddleware runs a fresh scene instance on every PTY session.
func (s *SSHServer) sceneMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		pty, _, ok := sshSession.Pty()
		if !ok {
			s.logger.Warn("no PTY requested", "user", sshSession.User())
			wish.Fatalln(sshSession, "particles: a terminal is required, connect with ssh -t")
			return
		}

		scene, err := registry.Create(s.config.SceneID)
		if err != nil {
			s.logger.Error("cannot create scene", "scene", s.config.SceneID, "error", err)
			wish.Fatalln(sshSession, "particles: scene unavailable")
			return
		}

		cols, rows := scene.Grid()
		if pty.Window.Width < cols || pty.Window.Height < rows {
			s.logger.Warn("terminal smaller than scene grid",
				"user", sshSession.User(),
				"terminal", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height),
				"grid", fmt.Sprintf("%dx%d", cols, rows),
			)
		}

		cfg := core.RuntimeConfig{
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		}

		ctx, cancel := context.WithCancel(sshSession.Context())
		defer cancel()
		if s.config.MaxSession > 0 {
			ctx, cancel = context.WithTimeout(ctx, s.config.MaxSession)
			defer cancel()
		}
		go watchQuit(sshSession, cancel)

		driver, err := NewDriver(scene, sshSession, cfg, s.logger)
		if err != nil {
			s.logger.Warn("cannot start scene", "user", sshSession.User(), "error", err)
			return
		}
		if err := driver.Run(ctx); err != nil {
			s.logger.Warn("session stream closed", "user", sshSession.User(), "error", err)
		}

		next(sshSession)
	}
}

// watchQuit cancels the session's scene on q, Ctrl+C or end of input.
func watchQuit(r io.Reader, cancel context.CancelFunc) {
	buf := make([]byte, 32)
	for {
		n, err := r.Read(buf)
		if bytes.ContainsAny(buf[:n], "q\x03") || err != nil {
			cancel()
			return
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "scene", s.config.SceneID)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Package tui renders generated levels for terminals, locally or over SSH via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/level"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dungeon/host_key.
	HostKeyPath string

	// DBPath is the path to the level catalog. Empty disables the catalog.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Params and Prefabs are used for every generated level.
	Params  level.Params
	Prefabs []level.Prefab

	// Logger receives server and generation logs. Nil uses a stderr logger.
	Logger *log.Logger
}

// SSHServer wraps a Wish SSH server that hands out level previews.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	now    func() time.Time
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dungeon-ssh",
		})
	}

	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open level catalog", "error", err)
			// Continue without storage
		}
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dungeon", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.previewMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// previewMiddleware generates a level for the session and prints it.
// The session command may carry a seed and an architect, e.g.
// "ssh -p 23234 host 42 rooms".
func (s *SSHServer) previewMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		req, err := parseSessionRequest(sshSession.Command(), s.now())
		if err != nil {
			fmt.Fprintln(sshSession.Stderr(), err)
			_ = sshSession.Exit(2)
			return
		}

		view := core.DefaultViewport()
		pty, _, hasPty := sshSession.Pty()
		if hasPty {
			view = core.Viewport{Width: pty.Window.Width, Height: pty.Window.Height}
		}

		renderer := lipgloss.NewRenderer(sshSession)
		if hasPty {
			renderer.SetColorProfile(termenv.ANSI256)
		} else {
			renderer.SetColorProfile(termenv.Ascii)
		}

		out, err := s.renderRequest(req, sshSession.User(), PreviewOptions{
			Viewport: view,
			Color:    hasPty,
			Overlays: true,
			HUD:      true,
			Renderer: renderer,
		})
		if err != nil {
			s.logger.Error("generation failed", "user", sshSession.User(), "seed", req.seed, "error", err)
			fmt.Fprintln(sshSession.Stderr(), err)
			_ = sshSession.Exit(1)
			return
		}

		// The client terminal is raw when a PTY was requested.
		if hasPty {
			out = strings.ReplaceAll(out, "\n", "\r\n")
			out += "\r\n"
		} else {
			out += "\n"
		}
		fmt.Fprint(sshSession, out)

		next(sshSession)
	}
}

// renderRequest generates the requested level, records it in the catalog
// and renders the preview.
func (s *SSHServer) renderRequest(req sessionRequest, user string, opts PreviewOptions) (string, error) {
	levelOpts := []level.Option{
		level.WithLogger(s.logger),
		level.WithPrefabs(s.config.Prefabs...),
	}
	if req.architect != nil {
		levelOpts = append(levelOpts, level.WithArchitect(*req.architect))
	}

	res, err := level.Generate(req.seed, s.config.Params, levelOpts...)
	if err != nil {
		return "", err
	}

	if s.store != nil {
		if _, err := s.store.SaveLevel(storage.RecordFromResult(res, user)); err != nil {
			s.logger.Warn("could not record level", "seed", res.Seed(), "error", err)
		}
	}

	return RenderPreview(res, opts), nil
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"command", strings.Join(sshSession.Command(), " "),
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
	s.logger.Info("starting SSH server", "address", s.config.Address)

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

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

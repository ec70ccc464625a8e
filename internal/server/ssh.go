// Package server serves the tuidesk desktop over SSH.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

// shutdownTimeout bounds how long open sessions get to finish on shutdown.
const shutdownTimeout = 5 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // Generated on first run when missing
	Logger  *log.Logger
	// Overrides are the CLI flags applied on top of each session's config.
	Overrides config.Overrides
}

// StartSSHServer runs the SSH server until ctx is cancelled. Every
// connection gets its own desktop.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "tuidesk_host_key")
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(newTeaHandler(cfg, logger)),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shut down SSH server: %w", err)
	}
	return nil
}

// newTeaHandler returns the bubbletea middleware handler creating one
// desktop per session, sized to the client's PTY.
func newTeaHandler(cfg *SSHServerConfig, logger *log.Logger) bubbletea.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := sess.Pty()
		if !active {
			logger.Warn("session without a PTY", "user", sess.User())
			return nil, nil
		}

		userConfig, err := config.LoadUserConfig()
		if err != nil {
			logger.Warn("failed to load config for SSH session, using defaults", "err", err)
			userConfig = config.DefaultConfig()
		}
		config.ApplyOverrides(cfg.Overrides, userConfig)

		sessionLogger := logger.WithPrefix("ssh " + sess.User())
		desktop := app.New(userConfig,
			app.WithSize(pty.Window.Width, pty.Window.Height),
			app.WithOverrides(cfg.Overrides),
			app.WithLogger(sessionLogger),
		)
		sessionLogger.Info("session started", "width", pty.Window.Width, "height", pty.Window.Height)

		return desktop, []tea.ProgramOption{
			tea.WithFPS(config.NormalFPS),
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/input"
	"github.com/Gaurav-Gosain/tuidesk/internal/logging"
	"github.com/Gaurav-Gosain/tuidesk/internal/server"
)

// errNoTTY is returned when tuidesk is started without a terminal.
var errNoTTY = errors.New("tuidesk needs an interactive terminal; use 'tuidesk ssh' to serve it instead")

// filterMouseMotion drops pointer motion while the splash is up. Motion
// still passes during a drag, which can outlive a splash dismissal.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	d, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}
	if _, dragging := d.WM.DragTarget(); dragging || d.Interactive() {
		return msg
	}
	return nil
}

// desktopLogger returns the file logger with --debug and a discarding one
// otherwise. The closer is never nil.
func desktopLogger() (*log.Logger, io.Closer) {
	if !debugMode {
		return logging.Discard(), io.NopCloser(nil)
	}
	logger, closer, err := logging.NewFile("tuidesk")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	if path, err := logging.Path(); err == nil {
		fmt.Printf("Debug log: %s\n", path)
	}
	return logger, closer
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}

	logger, closer := desktopLogger()
	defer func() { _ = closer.Close() }()

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	flags := overrides()
	config.ApplyOverrides(flags, userConfig)

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				logger.Warn("failed to close CPU profile file", "err", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	app.SetInputHandler(input.HandleInput)

	opts := []app.Option{
		app.WithLogger(logger),
		app.WithOverrides(flags),
	}
	if configPath, err := config.GetConfigPath(); err != nil {
		logger.Warn("config path unavailable, live reload disabled", "err", err)
	} else {
		logger.Debug("configuration", "path", configPath)
		watcher, err := config.NewWatcher(configPath, logger)
		if err != nil {
			logger.Warn("live reload disabled", "err", err)
		} else {
			defer func() { _ = watcher.Close() }()
			opts = append(opts, app.WithConfigReloads(watcher.Reloads()))
		}
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts = append(opts, app.WithSize(w, h))
	}

	desktop := app.New(userConfig, opts...)

	p := tea.NewProgram(
		desktop,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	logger := logging.New("ssh")
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}

	flags := overrides()
	config.ApplyOverrides(flags, nil)

	app.SetInputHandler(input.HandleInput)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := &server.SSHServerConfig{
		Host:      sshHost,
		Port:      sshPort,
		KeyPath:   sshKeyPath,
		Logger:    logger,
		Overrides: flags,
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

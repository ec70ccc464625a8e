// Package main implements tuidesk-web, which serves the tuidesk desktop in
// the browser through sip.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/input"
	"github.com/Gaurav-Gosain/tuidesk/internal/logging"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Command-line flags
var (
	webPort           string
	webHost           string
	webReadOnly       bool
	webMaxConnections int
	// tuidesk forwarded flags
	debugMode    bool
	themeName    string
	borderStyle  string
	noAnimations bool
	noSplash     bool
	hideClock    bool
	noSysInfo    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuidesk-web",
		Short: "Serve tuidesk in the browser",
		Long: `tuidesk-web - tuidesk in the browser

Serves the tuidesk desktop through the browser, one desktop per tab.
Powered by sip (github.com/Gaurav-Gosain/sip).`,
		Example: `  # Start web server on default port (7681)
  tuidesk-web

  # Bind to all interfaces for remote access
  tuidesk-web --host 0.0.0.0

  # Start in read-only mode (view only)
  tuidesk-web --read-only`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWebServer()
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&webPort, "port", "7681", "Web server port")
	rootCmd.Flags().StringVar(&webHost, "host", "localhost", "Web server host")
	rootCmd.Flags().BoolVar(&webReadOnly, "read-only", false, "Disable input from clients (view only)")
	rootCmd.Flags().IntVar(&webMaxConnections, "max-connections", 0, "Maximum concurrent connections (0 = unlimited)")

	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	rootCmd.Flags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii")
	rootCmd.Flags().BoolVar(&noAnimations, "no-animations", false, "Disable window animations")
	rootCmd.Flags().BoolVar(&noSplash, "no-splash", false, "Skip the boot splash")
	rootCmd.Flags().BoolVar(&hideClock, "hide-clock", false, "Hide the menu bar clock")
	rootCmd.Flags().BoolVar(&noSysInfo, "no-sysinfo", false, "Hide CPU and memory usage in the menu bar")

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func runWebServer() error {
	// Stdout is not a TTY here, so without this every color is stripped.
	lipgloss.Writer.Profile = colorprofile.TrueColor

	_ = os.Setenv("TERM", "xterm-256color")
	_ = os.Setenv("COLORTERM", "truecolor")

	logger := logging.New("web")
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := config.Overrides{
		BorderStyle:  borderStyle,
		NoAnimations: noAnimations,
		NoSplash:     noSplash,
		HideClock:    hideClock,
		NoSysInfo:    noSysInfo,
		ThemeName:    themeName,
	}
	config.ApplyOverrides(flags, nil)

	app.SetInputHandler(input.HandleInput)

	sipConfig := sip.DefaultConfig()
	sipConfig.Host = webHost
	sipConfig.Port = webPort
	sipConfig.ReadOnly = webReadOnly
	sipConfig.MaxConnections = webMaxConnections
	sipConfig.Debug = debugMode

	server := sip.NewServer(sipConfig)
	logger.Info("serving tuidesk", "host", webHost, "port", webPort, "read_only", webReadOnly)

	return server.Serve(ctx, newDesktopHandler(flags, logger))
}

// newDesktopHandler creates a desktop for each web session.
func newDesktopHandler(flags config.Overrides, logger *log.Logger) func(sip.Session) (tea.Model, []tea.ProgramOption) {
	return func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
		pty := sess.Pty()

		userConfig, err := config.LoadUserConfig()
		if err != nil {
			logger.Warn("failed to load config, using defaults", "err", err)
			userConfig = config.DefaultConfig()
		}
		config.ApplyOverrides(flags, userConfig)

		desktop := app.New(userConfig,
			app.WithSize(pty.Width, pty.Height),
			app.WithOverrides(flags),
			app.WithLogger(logger.WithPrefix("web session")),
		)

		return desktop, []tea.ProgramOption{
			tea.WithFPS(config.NormalFPS),
		}
	}
}

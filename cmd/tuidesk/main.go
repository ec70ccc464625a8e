// Package main implements tuidesk, a desktop in the terminal.
// tuidesk draws a menu bar, a dock and draggable app windows, and can be
// served to remote users over SSH.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	cpuProfile   string
	themeName    string
	borderStyle  string
	noAnimations bool
	noSplash     bool
	hideClock    bool
	noSysInfo    bool
)

func overrides() config.Overrides {
	return config.Overrides{
		BorderStyle:  borderStyle,
		NoAnimations: noAnimations,
		NoSplash:     noSplash,
		HideClock:    hideClock,
		NoSysInfo:    noSysInfo,
		ThemeName:    themeName,
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuidesk",
		Short: "A desktop in your terminal",
		Long: `tuidesk - a desktop in your terminal

A menu bar, a dock and overlapping app windows you can drag, minimize,
zoom and close with the mouse. Ships with Finder, Safari, Calculator
and Terminal.`,
		Example: `  # Run tuidesk
  tuidesk

  # Skip the splash and animations
  tuidesk --no-splash --no-animations

  # Run with debug logging
  tuidesk --debug

  # Run as SSH server
  tuidesk ssh --port 2222

  # Edit configuration
  tuidesk config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Disable window animations")
	rootCmd.PersistentFlags().BoolVar(&noSplash, "no-splash", false, "Skip the boot splash")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the menu bar clock")
	rootCmd.PersistentFlags().BoolVar(&noSysInfo, "no-sysinfo", false, "Hide CPU and memory usage in the menu bar")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run tuidesk as SSH server",
		Long: `Run tuidesk as an SSH server

Every connection gets its own desktop. The server will generate
a host key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  tuidesk ssh

  # Start on custom port
  tuidesk ssh --port 2222

  # Specify custom host key
  tuidesk ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuidesk configuration",
		Long:  `Manage tuidesk configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the tuidesk configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the tuidesk configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order. A running tuidesk picks up
the saved file without a restart.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var assumeYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tuidesk configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(assumeYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	appsCmd := &cobra.Command{
		Use:   "apps",
		Short: "Inspect the built-in apps",
	}

	appsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List the dock apps",
		Long:  `Display the dock apps and their window sizes, including config overrides`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listApps()
		},
	}
	appsCmd.AddCommand(appsListCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect tuidesk keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}
	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, appsCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

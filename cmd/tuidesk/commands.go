package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/Gaurav-Gosain/tuidesk/internal/apps"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// newTable returns a rounded table with the shared header and cell styles.
func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// loadConfigOrDefault loads the user config, falling back to the defaults
// with a warning on stderr.
func loadConfigOrDefault() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using defaults...")
		return config.DefaultConfig()
	}
	return userConfig
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor picks $EDITOR, $VISUAL, then the first common editor on PATH.
func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(e); err == nil {
			return e
		}
	}
	return ""
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if err := config.WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	// #nosec G204 - the editor comes from the user's own environment
	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults(assumeYes bool) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !assumeYes {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: tuidesk config edit")
	return nil
}

// appRows lists each dock app with its effective window size.
func appRows(registry *apps.Registry) [][]string {
	specs := registry.Specs()
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		size := registry.DefaultSize(s.ID)
		rows = append(rows, []string{
			s.Icon,
			s.ID,
			s.Name,
			fmt.Sprintf("%dx%d", size.Width, size.Height),
		})
	}
	return rows
}

// listApps prints the dock apps in a table
func listApps() error {
	registry := apps.DefaultRegistry(apps.WithUserConfig(loadConfigOrDefault()))

	fmt.Println()
	fmt.Println(titleStyle.Render("tuidesk Apps"))
	fmt.Println()
	fmt.Println(newTable([]string{"", "ID", "Name", "Window"}, appRows(registry)).Render())
	fmt.Println()
	fmt.Println(noteStyle.Render("Sizes are in cells. Override them under [apps.<id>] in the config file."))
	fmt.Println()
	return nil
}

// keybindingRows flattens the keybinding sections into table rows.
func keybindingRows(registry *config.KeybindRegistry) [][]string {
	var rows [][]string
	for _, section := range config.GetKeybindings(registry) {
		for _, b := range section.Bindings {
			rows = append(rows, []string{section.Title, b.Key, b.Description})
		}
	}
	return rows
}

// listKeybindings prints all configured keybindings in a pretty table
func listKeybindings() error {
	registry := config.NewKeybindRegistry(loadConfigOrDefault())

	fmt.Println()
	fmt.Println(titleStyle.Render("tuidesk Keybindings"))
	fmt.Println()
	fmt.Println(newTable([]string{"Section", "Keys", "Action"}, keybindingRows(registry)).Render())
	fmt.Println()
	fmt.Println(noteStyle.Render("Everything else you type goes to the frontmost window."))
	fmt.Println()
	return nil
}

package apps

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// Placeholder is the body of a window whose app ID has no spec.
type Placeholder struct {
	appID string
}

// NewPlaceholder returns the "App not found" body for appID.
func NewPlaceholder(appID string) *Placeholder {
	return &Placeholder{appID: appID}
}

// Title is empty so the window falls back to the app ID.
func (p *Placeholder) Title() string { return "" }

func (p *Placeholder) HandleKey(tea.KeyPressMsg) {}

func (p *Placeholder) HandleClick(_, _, _, _ int) {}

func (p *Placeholder) View(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Muted()).Render("App not found")
	lines := make([]string, height/2)
	return fitLines(append(lines, center(msg, width)), width, height)
}

package apps

import (
	"net/url"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// Bookmark is a start page favorite.
type Bookmark struct {
	Name string
	URL  string
}

// Favorites are shown on Safari's start page.
var Favorites = []Bookmark{
	{"Apple", "https://www.apple.com"},
	{"Google", "https://www.google.com"},
	{"Wikipedia", "https://www.wikipedia.org"},
	{"GitHub", "https://github.com"},
	{"Go", "https://go.dev"},
	{"Charm", "https://charm.sh"},
}

const safariTileWidth = 14

// Safari shows an address bar over a start page. Pages are not fetched;
// visiting one shows a card naming the site.
type Safari struct {
	address string
	current string
	editing bool
}

// NewSafari returns Safari on its start page.
func NewSafari(Env) Instance {
	return &Safari{}
}

func (s *Safari) Title() string {
	if s.current == "" {
		return "Safari"
	}
	return "Safari · " + hostOf(s.current)
}

// Current returns the URL being shown, or "" on the start page.
func (s *Safari) Current() string { return s.current }

// Visit normalizes raw into a URL and shows it. Empty input returns to the
// start page.
func (s *Safari) Visit(raw string) {
	raw = strings.TrimSpace(raw)
	s.editing = false
	if raw == "" {
		s.current = ""
		s.address = ""
		return
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	s.current = raw
	s.address = raw
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}

func (s *Safari) HandleKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "enter":
		s.Visit(s.address)
	case "esc":
		s.editing = false
		s.address = s.current
	case "backspace":
		s.editing = true
		if r := []rune(s.address); len(r) > 0 {
			s.address = string(r[:len(r)-1])
		}
	default:
		if msg.Text != "" {
			if !s.editing {
				s.address = ""
			}
			s.editing = true
			s.address += msg.Text
		}
	}
}

func (s *Safari) HandleClick(x, y, width, _ int) {
	if y == 0 {
		s.editing = true
		return
	}
	if s.current != "" {
		return
	}
	// favorites grid starts on row 4
	row := y - 4
	if row < 0 || row%2 != 0 {
		return
	}
	cols := max(width/safariTileWidth, 1)
	col := x / safariTileWidth
	idx := (row/2)*cols + col
	if col < cols && idx < len(Favorites) {
		s.Visit(Favorites[idx].URL)
	}
}

func (s *Safari) View(width, height int) string {
	bar := lipgloss.NewStyle().Background(theme.DropdownBg()).Foreground(theme.DropdownFg())
	muted := lipgloss.NewStyle().Foreground(theme.Muted())
	tile := lipgloss.NewStyle().Foreground(theme.Accent()).Bold(true)

	address := s.address
	if address == "" && !s.editing {
		address = muted.Render("Search or enter website name")
	}
	if s.editing {
		address += lipgloss.NewStyle().Reverse(true).Render(" ")
	}
	lines := []string{
		bar.Render(padRight(" ‹ › │ "+address, width)),
		"",
	}

	if s.current != "" {
		lines = append(lines,
			center(lipgloss.NewStyle().Bold(true).Render(hostOf(s.current)), width),
			"",
			center(muted.Render(s.current), width),
			"",
			center("This page can't be displayed in a terminal window.", width),
		)
		return fitLines(lines, width, height)
	}

	lines = append(lines, " "+lipgloss.NewStyle().Bold(true).Render("Favorites"), "")
	cols := max(width/safariTileWidth, 1)
	for start := 0; start < len(Favorites); start += cols {
		var row strings.Builder
		for i := start; i < min(start+cols, len(Favorites)); i++ {
			row.WriteString(tile.Render(center(Favorites[i].Name, safariTileWidth)))
		}
		lines = append(lines, row.String(), "")
	}
	return fitLines(lines, width, height)
}

package apps

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// Prompt is printed before every command line.
const Prompt = "user@tuidesk % "

// dateLayout matches the shell's date output, e.g.
// "Sat Oct 17 2026 09:41:00 GMT+0000 (UTC)".
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Terminal is a simulated shell with a handful of built-in commands.
type Terminal struct {
	now     func() time.Time
	output  []string
	input   []rune
	focused bool
}

// NewTerminal returns a terminal showing the login banner.
func NewTerminal(env Env) Instance {
	now := env.Now
	if now == nil {
		now = time.Now
	}
	return &Terminal{
		now:    now,
		output: []string{"Last login: " + now().Format(dateLayout)},
	}
}

func (t *Terminal) Title() string { return "Terminal" }

// Mount focuses the input line.
func (t *Terminal) Mount(*wm.Window) { t.focused = true }

func (t *Terminal) Focus() { t.focused = true }

// Blur hides the cursor while another window is in front.
func (t *Terminal) Blur() { t.focused = false }

// Focused reports whether the input line has focus.
func (t *Terminal) Focused() bool { return t.focused }

// Output returns the scrollback, oldest first.
func (t *Terminal) Output() []string { return t.output }

// Input returns the line being typed.
func (t *Terminal) Input() string { return string(t.input) }

// Run echoes cmd after the prompt and appends its response. Blank commands
// are ignored.
func (t *Terminal) Run(cmd string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return
	}
	t.output = append(t.output, Prompt+cmd)

	switch cmd {
	case "ls":
		t.output = append(t.output, "Applications  Documents  Downloads  Desktop")
	case "pwd":
		t.output = append(t.output, "/Users/user")
	case "date":
		t.output = append(t.output, t.now().Format(dateLayout))
	case "whoami":
		t.output = append(t.output, "user")
	case "clear":
		t.output = nil
	case "help":
		t.output = append(t.output, "ls, pwd, date, whoami, echo, clear, help")
	default:
		if arg, ok := strings.CutPrefix(cmd, "echo "); ok {
			t.output = append(t.output, arg)
		} else {
			t.output = append(t.output, "zsh: command not found: "+cmd)
		}
	}
}

func (t *Terminal) HandleKey(msg tea.KeyPressMsg) {
	t.focused = true
	switch msg.String() {
	case "enter":
		line := string(t.input)
		t.input = t.input[:0]
		t.Run(line)
	case "backspace":
		if len(t.input) > 0 {
			t.input = t.input[:len(t.input)-1]
		}
	case "ctrl+u":
		t.input = t.input[:0]
	case "ctrl+l":
		t.output = nil
	default:
		if msg.Text != "" {
			t.input = append(t.input, []rune(msg.Text)...)
		}
	}
}

func (t *Terminal) HandleClick(_, _, _, _ int) { t.focused = true }

func (t *Terminal) View(width, height int) string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Prompt())
	errStyle := lipgloss.NewStyle().Foreground(theme.ErrorText())

	var lines []string
	for _, out := range t.output {
		for _, l := range wrap(out, width) {
			switch {
			case strings.HasPrefix(l, Prompt):
				l = promptStyle.Render(Prompt) + l[len(Prompt):]
			case strings.HasPrefix(l, "zsh: command not found"):
				l = errStyle.Render(l)
			}
			lines = append(lines, l)
		}
	}

	cursor := " "
	if t.focused {
		cursor = lipgloss.NewStyle().Reverse(true).Render(" ")
	}
	inputLines := wrap(Prompt+string(t.input), width)
	if len(inputLines) > 0 {
		first := inputLines[0]
		if strings.HasPrefix(first, Prompt) {
			inputLines[0] = promptStyle.Render(Prompt) + first[len(Prompt):]
		}
		inputLines[len(inputLines)-1] += cursor
	}
	lines = append(lines, inputLines...)

	// keep the input line in view
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return fitLines(lines, width, height)
}

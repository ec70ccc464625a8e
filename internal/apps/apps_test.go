package apps

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func typeText(inst Instance, s string) {
	for _, r := range s {
		inst.HandleKey(key(string(r)))
	}
}

func TestRegistryDefaultSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Apps["terminal"] = config.AppConfig{Height: 30}
	r := DefaultRegistry(WithUserConfig(cfg))

	tests := []struct {
		appID string
		want  wm.Size
	}{
		{"finder", wm.Size{Width: 64, Height: 20}},
		{"calculator", wm.Size{Width: 30, Height: 17}},
		{"terminal", wm.Size{Width: 60, Height: 30}},
		{"photoshop", FallbackSize},
	}
	for _, tt := range tests {
		if got := r.DefaultSize(tt.appID); got != tt.want {
			t.Errorf("DefaultSize(%q) = %+v, want %+v", tt.appID, got, tt.want)
		}
	}
}

func TestRegistryRenderContent(t *testing.T) {
	r := DefaultRegistry()

	a := r.RenderContent("calculator")
	b := r.RenderContent("calculator")
	if a == b {
		t.Error("instances should not be shared")
	}
	if a.Title() != "Calculator" {
		t.Errorf("Title() = %q", a.Title())
	}

	p, ok := r.RenderContent("photoshop").(*Placeholder)
	if !ok {
		t.Fatal("expected a placeholder for an unknown app")
	}
	if !strings.Contains(p.View(30, 5), "App not found") {
		t.Error("placeholder does not say App not found")
	}
}

func TestRegistryThroughManager(t *testing.T) {
	r := DefaultRegistry()
	m := wm.New(r)

	w := m.Open("terminal")
	term, ok := w.Content.(*Terminal)
	if !ok {
		t.Fatalf("content is %T, want *Terminal", w.Content)
	}
	if !term.Focused() {
		t.Error("terminal input not focused on mount")
	}

	unknown := m.Open("photoshop")
	if unknown.Title() != "photoshop" {
		t.Errorf("placeholder window title = %q, want app ID", unknown.Title())
	}
	if unknown.Geometry.Width != FallbackSize.Width {
		t.Errorf("placeholder width = %d", unknown.Geometry.Width)
	}
}

func TestTerminalFollowsWindowFocus(t *testing.T) {
	m := wm.New(DefaultRegistry())
	term := m.Open("terminal").Content.(*Terminal)

	m.Open("calculator")
	if term.Focused() {
		t.Error("terminal kept focus behind a new window")
	}

	m.Focus("terminal")
	if !term.Focused() {
		t.Error("terminal not focused after coming to the front")
	}

	m.Focus("calculator")
	m.Minimize("terminal")
	m.Restore("terminal")
	if !term.Focused() {
		t.Error("terminal not focused after restore")
	}
}

func TestSpecsOrder(t *testing.T) {
	specs := DefaultRegistry().Specs()
	want := []string{"finder", "safari", "calculator", "terminal"}
	if len(specs) != len(want) {
		t.Fatalf("got %d specs", len(specs))
	}
	for i, id := range want {
		if specs[i].ID != id {
			t.Errorf("spec %d = %q, want %q", i, specs[i].ID, id)
		}
	}
}

func TestCalculator(t *testing.T) {
	tests := []struct {
		name  string
		press []string
		want  string
	}{
		{"digits", []string{"1", "2", "3"}, "123"},
		{"leading zero", []string{"0", "0", "7"}, "7"},
		{"addition", []string{"2", "+", "3", "="}, "5"},
		{"subtraction", []string{"2", "−", "5", "="}, "-3"},
		{"chained", []string{"2", "+", "3", "×", "4", "="}, "20"},
		{"divide by zero", []string{"9", "÷", "0", "="}, "0"},
		{"division", []string{"7", "÷", "2", "="}, "3.5"},
		{"decimal once", []string{"1", ".", ".", "5"}, "1.5"},
		{"decimal after result", []string{"1", "+", "1", "=", ".", "5"}, "0.5"},
		{"percent", []string{"5", "0", "%"}, "0.5"},
		{"toggle sign", []string{"4", "±"}, "-4"},
		{"toggle sign twice", []string{"4", "±", "±"}, "4"},
		{"toggle zero", []string{"±"}, "0"},
		{"clear", []string{"8", "+", "1", "AC", "2", "="}, "2"},
		{"operator switch", []string{"6", "+", "×", "2", "="}, "12"},
		{"equals without op", []string{"3", "="}, "3"},
		{"new number after result", []string{"1", "+", "1", "=", "4"}, "4"},
		{"float rounding", []string{".", "1", "+", ".", "2", "="}, "0.30000000000000004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalculator(Env{}).(*Calculator)
			for _, p := range tt.press {
				c.Press(p)
			}
			if got := c.Display(); got != tt.want {
				t.Errorf("display = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculatorInstancesAreIndependent(t *testing.T) {
	a := NewCalculator(Env{}).(*Calculator)
	b := NewCalculator(Env{}).(*Calculator)
	a.Press("9")
	if b.Display() != "0" {
		t.Errorf("second calculator shows %q", b.Display())
	}
}

func TestCalculatorKeysAndClicks(t *testing.T) {
	c := NewCalculator(Env{}).(*Calculator)
	typeText(c, "12*3")
	c.HandleKey(key("enter"))
	if c.Display() != "36" {
		t.Errorf("keyboard result = %q, want 36", c.Display())
	}

	c.Press("AC")
	width := 28
	// "7" is row 1, column 0; "=" is row 4, column 3
	c.HandleClick(1, calcDisplayRows+1*calcButtonRows, width, 15)
	c.HandleClick(width-2, calcDisplayRows+3*calcButtonRows, width, 15)
	c.HandleClick(8, calcDisplayRows+1*calcButtonRows, width, 15)
	c.HandleClick(width-2, calcDisplayRows+4*calcButtonRows, width, 15)
	if c.Display() != "15" {
		t.Errorf("click result = %q, want 15", c.Display())
	}

	c.HandleClick(3, 0, width, 15)
	if c.Display() != "15" {
		t.Error("clicking the display changed it")
	}
}

func TestCalculatorViewSize(t *testing.T) {
	c := NewCalculator(Env{})
	out := c.View(28, 15)
	lines := strings.Split(out, "\n")
	if len(lines) != 15 {
		t.Fatalf("got %d lines, want 15", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 28 {
			t.Errorf("line %d width = %d, want 28", i, w)
		}
	}
}

func TestTerminalCommands(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 9, 41, 0, 0, time.UTC)
	term := NewTerminal(Env{Now: func() time.Time { return fixed }}).(*Terminal)

	if got := term.Output()[0]; got != "Last login: Sat Oct 17 2026 09:41:00 GMT+0000 (UTC)" {
		t.Errorf("banner = %q", got)
	}

	tests := []struct {
		cmd  string
		want string
	}{
		{"ls", "Applications  Documents  Downloads  Desktop"},
		{"pwd", "/Users/user"},
		{"whoami", "user"},
		{"date", "Sat Oct 17 2026 09:41:00 GMT+0000 (UTC)"},
		{"help", "ls, pwd, date, whoami, echo, clear, help"},
		{"echo hello world", "hello world"},
		{"echo", "zsh: command not found: echo"},
		{"vim", "zsh: command not found: vim"},
	}
	for _, tt := range tests {
		term.Run(tt.cmd)
		out := term.Output()
		if echo := out[len(out)-2]; echo != Prompt+tt.cmd {
			t.Errorf("%s: echoed %q", tt.cmd, echo)
		}
		if got := out[len(out)-1]; got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.cmd, got, tt.want)
		}
	}

	before := len(term.Output())
	term.Run("   ")
	if len(term.Output()) != before {
		t.Error("blank command produced output")
	}

	term.Run("clear")
	if len(term.Output()) != 0 {
		t.Errorf("clear left %d lines", len(term.Output()))
	}
}

func TestTerminalTyping(t *testing.T) {
	term := NewTerminal(Env{}).(*Terminal)
	typeText(term, "pwdx")
	term.HandleKey(key("backspace"))
	if term.Input() != "pwd" {
		t.Fatalf("input = %q", term.Input())
	}
	term.HandleKey(key("enter"))

	out := term.Output()
	if out[len(out)-1] != "/Users/user" {
		t.Errorf("last line = %q", out[len(out)-1])
	}
	if term.Input() != "" {
		t.Error("input not cleared after enter")
	}
}

func TestTerminalViewKeepsInputVisible(t *testing.T) {
	term := NewTerminal(Env{}).(*Terminal)
	for range 40 {
		term.Run("whoami")
	}
	typeText(term, "ls")

	lines := strings.Split(term.View(40, 10), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines", len(lines))
	}
	last := ansi.Strip(lines[len(lines)-1])
	if !strings.HasPrefix(last, Prompt+"ls") {
		t.Errorf("last line = %q, want the input line", last)
	}
}

func TestFinderNavigation(t *testing.T) {
	f := NewFinder(Env{}).(*Finder)
	if f.Path() != "Documents" {
		t.Fatalf("initial path = %q", f.Path())
	}

	names := func() []string {
		var out []string
		for _, e := range f.Entries() {
			out = append(out, e.Name)
		}
		return out
	}
	if got := strings.Join(names(), ","); got != "Resume.pdf,Notes.txt,Projects" {
		t.Errorf("Documents = %s", got)
	}

	f.Navigate("Music")
	if got := strings.Join(names(), ","); got != "Song.mp3" {
		t.Errorf("Music = %s", got)
	}

	f.Navigate("Pictures")
	f.HandleKey(key("enter"))
	if f.Path() != "Pictures" {
		t.Error("enter without selection navigated")
	}
	f.HandleKey(tea.KeyPressMsg{Code: tea.KeyRight})
	f.HandleKey(key("enter"))
	if f.Path() != "Pictures/Vacation" {
		t.Errorf("path = %q, want Pictures/Vacation", f.Path())
	}
	f.HandleKey(key("backspace"))
	if f.Path() != "Pictures" {
		t.Errorf("path after up = %q", f.Path())
	}
	f.Up()
	if f.Path() != "Pictures" {
		t.Error("Up left the top level")
	}
}

func TestFinderSidebarClicks(t *testing.T) {
	f := NewFinder(Env{}).(*Finder)
	_, paths := f.sidebarRows()

	for row, p := range paths {
		if p == "" {
			continue
		}
		f.Navigate("Music")
		f.HandleClick(3, row, 62, 18)
		if f.Path() != p {
			t.Errorf("row %d: path = %q, want %q", row, f.Path(), p)
		}
	}

	// Macintosh HD opens Documents
	if last := paths[len(paths)-1]; last != "Documents" {
		t.Errorf("last sidebar row links to %q", last)
	}
}

func TestFinderGridClick(t *testing.T) {
	f := NewFinder(Env{}).(*Finder)
	x := finderSidebarWidth + 1 + 2*finderCellWidth + 1

	f.HandleClick(x, 2, 62, 18)
	if e, ok := f.Selected(); !ok || e.Name != "Projects" {
		t.Fatalf("selected = %+v, %v", e, ok)
	}
	f.HandleClick(x, 2, 62, 18)
	if f.Path() != "Documents/Projects" {
		t.Errorf("second click did not open the folder: %q", f.Path())
	}
}

func TestLoadFileTreeRejectsBadYAML(t *testing.T) {
	if _, err := LoadFileTree([]byte("sidebar: [")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestSafari(t *testing.T) {
	s := NewSafari(Env{}).(*Safari)
	if s.Title() != "Safari" {
		t.Errorf("Title() = %q", s.Title())
	}

	typeText(s, "go.dev")
	s.HandleKey(key("enter"))
	if s.Current() != "https://go.dev" {
		t.Errorf("Current() = %q", s.Current())
	}
	if s.Title() != "Safari · go.dev" {
		t.Errorf("Title() = %q", s.Title())
	}

	s.Visit("")
	// first favorite tile
	s.HandleClick(2, 4, 70, 20)
	if s.Current() != Favorites[0].URL {
		t.Errorf("tile click visited %q", s.Current())
	}
}

func TestViewsFillTheirBody(t *testing.T) {
	r := DefaultRegistry()
	for _, spec := range r.Specs() {
		inst := r.RenderContent(spec.ID).(Instance)
		w, h := spec.Size.Width-2, spec.Size.Height-2
		lines := strings.Split(inst.View(w, h), "\n")
		if len(lines) != h {
			t.Errorf("%s: %d lines, want %d", spec.ID, len(lines), h)
			continue
		}
		for i, l := range lines {
			if got := ansi.StringWidth(l); got != w {
				t.Errorf("%s: line %d width %d, want %d", spec.ID, i, got, w)
			}
		}
	}
}

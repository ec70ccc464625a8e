package apps

import (
	_ "embed"
	"fmt"
	"path"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

//go:embed finder.yaml
var finderFixture []byte

// FileEntry is one item in a Finder folder.
type FileEntry struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// IsDir reports whether the entry can be opened as a folder.
func (f FileEntry) IsDir() bool { return f.Kind == "dir" }

// SidebarItem links a sidebar label to a folder path.
type SidebarItem struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// SidebarSection is a titled group of sidebar items.
type SidebarSection struct {
	Title string        `yaml:"title"`
	Items []SidebarItem `yaml:"items"`
}

// FileTree is the read-only file system Finder browses.
type FileTree struct {
	Sidebar []SidebarSection       `yaml:"sidebar"`
	Folders map[string][]FileEntry `yaml:"folders"`
}

// LoadFileTree parses a YAML file tree.
func LoadFileTree(data []byte) (*FileTree, error) {
	var tree FileTree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse file tree: %w", err)
	}
	return &tree, nil
}

var kindIcons = map[string]string{
	"dir":     "▸",
	"pdf":     "▤",
	"text":    "≡",
	"archive": "⇩",
	"image":   "▨",
	"audio":   "♪",
}

const (
	finderSidebarWidth = 16
	finderCellWidth    = 15
	finderCellHeight   = 2
)

// Finder browses a fixed file tree. Its sidebar starts on Documents.
type Finder struct {
	tree     *FileTree
	path     string
	selected int
}

// NewFinder returns a Finder over the embedded file tree.
func NewFinder(Env) Instance {
	tree, err := LoadFileTree(finderFixture)
	if err != nil {
		tree = &FileTree{}
	}
	return NewFinderWithTree(tree)
}

// NewFinderWithTree returns a Finder over tree.
func NewFinderWithTree(tree *FileTree) *Finder {
	return &Finder{tree: tree, path: "Documents", selected: -1}
}

func (f *Finder) Title() string { return "Finder" }

// Path returns the folder being shown.
func (f *Finder) Path() string { return f.path }

// Entries lists the current folder. Unknown folders are empty.
func (f *Finder) Entries() []FileEntry { return f.tree.Folders[f.path] }

// Selected returns the highlighted entry.
func (f *Finder) Selected() (FileEntry, bool) {
	entries := f.Entries()
	if f.selected < 0 || f.selected >= len(entries) {
		return FileEntry{}, false
	}
	return entries[f.selected], true
}

// Navigate shows folder p and clears the selection.
func (f *Finder) Navigate(p string) {
	f.path = p
	f.selected = -1
}

// Open enters the selected entry if it is a folder.
func (f *Finder) Open() {
	if e, ok := f.Selected(); ok && e.IsDir() {
		f.Navigate(path.Join(f.path, e.Name))
	}
}

// Up goes to the parent folder.
func (f *Finder) Up() {
	if parent := path.Dir(f.path); parent != "." {
		f.Navigate(parent)
	}
}

func (f *Finder) HandleKey(msg tea.KeyPressMsg) {
	n := len(f.Entries())
	switch msg.String() {
	case "right", "down", "tab":
		if n > 0 {
			f.selected = (f.selected + 1) % n
		}
	case "left", "up", "shift+tab":
		if n > 0 {
			f.selected = (f.selected - 1 + n) % n
		}
	case "enter":
		f.Open()
	case "backspace":
		f.Up()
	}
}

// sidebarRows returns the sidebar lines with the path each row links to.
func (f *Finder) sidebarRows() ([]string, []string) {
	var lines, paths []string
	for i, sec := range f.tree.Sidebar {
		if i > 0 {
			lines = append(lines, "")
			paths = append(paths, "")
		}
		lines = append(lines, " "+sec.Title)
		paths = append(paths, "")
		for _, item := range sec.Items {
			lines = append(lines, "  "+item.Name)
			paths = append(paths, item.Path)
		}
	}
	return lines, paths
}

func (f *Finder) columns(width int) int {
	return max((width-finderSidebarWidth-1)/finderCellWidth, 1)
}

func (f *Finder) HandleClick(x, y, width, _ int) {
	if x < finderSidebarWidth {
		_, paths := f.sidebarRows()
		if y >= 0 && y < len(paths) && paths[y] != "" {
			f.Navigate(paths[y])
		}
		return
	}

	// the grid starts below the toolbar row
	gx := x - finderSidebarWidth - 1
	gy := y - 2
	if gx < 0 || gy < 0 {
		if y == 0 && gx >= 0 && gx < 3 {
			f.Up()
		}
		return
	}
	idx := (gy/finderCellHeight)*f.columns(width) + gx/finderCellWidth
	if gx/finderCellWidth >= f.columns(width) || idx >= len(f.Entries()) {
		f.selected = -1
		return
	}
	if idx == f.selected {
		f.Open()
		return
	}
	f.selected = idx
}

func (f *Finder) View(width, height int) string {
	sideStyle := lipgloss.NewStyle().Foreground(theme.Muted())
	activeStyle := lipgloss.NewStyle().Foreground(theme.Accent()).Bold(true)
	selStyle := lipgloss.NewStyle().Reverse(true)
	sep := lipgloss.NewStyle().Foreground(theme.BorderUnfocused()).Render("│")

	side, paths := f.sidebarRows()
	activeRoot := strings.SplitN(f.path, "/", 2)[0]
	for i, line := range side {
		switch {
		case paths[i] == "":
			side[i] = sideStyle.Render(line)
		case paths[i] == activeRoot && strings.TrimSpace(line) != "Macintosh HD":
			side[i] = activeStyle.Render(line)
		}
	}

	mainWidth := max(width-finderSidebarWidth-1, 0)
	back := "   "
	if path.Dir(f.path) != "." {
		back = " ‹ "
	}
	main := []string{
		back + lipgloss.NewStyle().Bold(true).Render(f.path),
		strings.Repeat("─", mainWidth),
	}

	cols := f.columns(width)
	entries := f.Entries()
	if len(entries) == 0 {
		main = append(main, sideStyle.Render(" Empty folder"))
	}
	for start := 0; start < len(entries); start += cols {
		var row strings.Builder
		for i := start; i < min(start+cols, len(entries)); i++ {
			e := entries[i]
			icon, ok := kindIcons[e.Kind]
			if !ok {
				icon = "·"
			}
			cell := padRight(" "+icon+" "+e.Name, finderCellWidth)
			if i == f.selected {
				cell = selStyle.Render(cell)
			}
			row.WriteString(cell)
		}
		main = append(main, row.String(), "")
	}

	lines := make([]string, height)
	for i := range height {
		left := ""
		if i < len(side) {
			left = side[i]
		}
		right := ""
		if i < len(main) {
			right = main[i]
		}
		lines[i] = padRight(left, finderSidebarWidth) + sep + padRight(right, mainWidth)
	}
	return fitLines(lines, width, height)
}

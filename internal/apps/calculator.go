package apps

import (
	"math"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// Calculator is a four-function calculator with chained operations.
type Calculator struct {
	display string
	prev    string
	op      string
	hasPrev bool
	// reset makes the next digit start a new number
	reset bool
}

// NewCalculator returns a calculator showing 0.
func NewCalculator(Env) Instance {
	return &Calculator{display: "0"}
}

func (c *Calculator) Title() string { return "Calculator" }

// Display returns the current display text.
func (c *Calculator) Display() string { return c.display }

// Digit types d, replacing a lone 0.
func (c *Calculator) Digit(d string) {
	if c.reset {
		c.display = "0"
		c.reset = false
	}
	if c.display == "0" {
		c.display = d
	} else {
		c.display += d
	}
}

// Decimal adds a decimal point unless the number already has one.
func (c *Calculator) Decimal() {
	if c.reset {
		c.display = "0"
		c.reset = false
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

// Operator stores the display as the left operand. A pending operation is
// evaluated first, so 2 + 3 × shows 5.
func (c *Calculator) Operator(op string) {
	if c.op != "" && !c.reset {
		c.Equals()
	}
	c.prev = c.display
	c.hasPrev = true
	c.op = op
	c.reset = true
}

// Equals evaluates the pending operation. Division by zero yields 0.
func (c *Calculator) Equals() {
	if c.op == "" || !c.hasPrev {
		return
	}
	a := parseNumber(c.prev)
	b := parseNumber(c.display)

	var res float64
	switch c.op {
	case "+":
		res = a + b
	case "−":
		res = a - b
	case "×":
		res = a * b
	case "÷":
		if b != 0 {
			res = a / b
		}
	}

	c.display = formatNumber(res)
	c.op = ""
	c.prev = ""
	c.hasPrev = false
	c.reset = true
}

// Clear resets everything.
func (c *Calculator) Clear() {
	c.display = "0"
	c.op = ""
	c.prev = ""
	c.hasPrev = false
	c.reset = false
}

// ToggleSign flips the sign of a non-zero display.
func (c *Calculator) ToggleSign() {
	if c.display == "0" {
		return
	}
	if strings.HasPrefix(c.display, "-") {
		c.display = c.display[1:]
	} else {
		c.display = "-" + c.display
	}
}

// Percent divides the display by 100.
func (c *Calculator) Percent() {
	c.display = formatNumber(parseNumber(c.display) / 100)
}

// Press dispatches a button label.
func (c *Calculator) Press(label string) {
	switch label {
	case "AC":
		c.Clear()
	case "±":
		c.ToggleSign()
	case "%":
		c.Percent()
	case "÷", "×", "−", "+":
		c.Operator(label)
	case "=":
		c.Equals()
	case ".":
		c.Decimal()
	default:
		if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
			c.Digit(label)
		}
	}
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == 0 {
		return "0"
	}
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var calcKeys = map[string]string{
	"+": "+", "-": "−", "*": "×", "x": "×", "/": "÷",
	"%": "%", "=": "=", "enter": "=", ".": ".", ",": ".",
	"esc": "AC", "c": "AC", "n": "±",
}

func (c *Calculator) HandleKey(msg tea.KeyPressMsg) {
	key := msg.String()
	if label, ok := calcKeys[key]; ok {
		c.Press(label)
		return
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		c.Digit(key)
	}
}

var calcRows = [][]string{
	{"AC", "±", "%", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "−"},
	{"1", "2", "3", "+"},
	{"0", "0", ".", "="},
}

const (
	calcDisplayRows = 3
	calcButtonRows  = 2
)

// buttonAt maps body coordinates to a button label.
func (c *Calculator) buttonAt(x, y, width int) (string, bool) {
	colWidth := max(width/4, 1)
	row := (y - calcDisplayRows) / calcButtonRows
	col := x / colWidth
	if y < calcDisplayRows || row >= len(calcRows) || col < 0 || col > 3 {
		return "", false
	}
	return calcRows[row][col], true
}

func (c *Calculator) HandleClick(x, y, width, _ int) {
	if label, ok := c.buttonAt(x, y, width); ok {
		c.Press(label)
	}
}

func (c *Calculator) View(width, height int) string {
	colWidth := max(width/4, 1)
	display := lipgloss.NewStyle().Bold(true).Foreground(theme.WindowFg())

	lines := []string{
		"",
		display.Render(padLeft(c.display+" ", width)),
		"",
	}

	for _, row := range calcRows {
		var sb strings.Builder
		for i := 0; i < len(row); i++ {
			label := row[i]
			w := colWidth
			if i+1 < len(row) && row[i+1] == label {
				w += colWidth
				i++
			}
			sb.WriteString(c.buttonStyle(label).Render(center(label, w-1)))
			sb.WriteByte(' ')
		}
		lines = append(lines, sb.String(), "")
	}

	return fitLines(lines, width, height)
}

func (c *Calculator) buttonStyle(label string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch label {
	case "÷", "×", "−", "+", "=":
		s = s.Background(theme.Operator()).Foreground(lipgloss.Color("#ffffff"))
		if label == c.op && c.reset {
			s = s.Reverse(true)
		}
	case "AC", "±", "%":
		s = s.Background(lipgloss.Color("#a5a5a5")).Foreground(lipgloss.Color("#000000"))
	default:
		s = s.Background(lipgloss.Color("#333333")).Foreground(lipgloss.Color("#ffffff"))
	}
	return s
}

package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"

	"github.com/synless-editor/synless/internal/layout"
	"github.com/synless-editor/synless/internal/style"
)

// cell is one printed rune plus the style it was printed with, the unit
// TerminalWindow's grid is built from.
type cell struct {
	r     rune
	style style.ConcreteStyle
}

// TerminalWindow is the CLI's default Window (DESIGN.md component H):
// it buffers a grid of styled cells, turns each contiguous run of
// equally-styled cells into a lipgloss.Style span (internal/style.
// ConcreteStyle.Lipgloss, the one lipgloss touchpoint in this codebase),
// and hands the assembled lines to pterm for the actual terminal write —
// mirroring plain_text.rs's PlainText buffering strategy, widened to
// resolve style instead of discarding it.
type TerminalWindow struct {
	width int
	rows  [][]cell
}

// NewTerminalWindow constructs a window width columns wide.
func NewTerminalWindow(width int) *TerminalWindow {
	return &TerminalWindow{width: width}
}

func (w *TerminalWindow) Size() (layout.Pos, error) {
	return layout.Pos{Row: len(w.rows), Col: w.width}, nil
}

func (w *TerminalWindow) Print(pos layout.Pos, text string, concrete style.ConcreteStyle) error {
	for len(w.rows) <= pos.Row {
		w.rows = append(w.rows, nil)
	}
	row := w.rows[pos.Row]
	col := pos.Col
	for _, r := range text {
		for len(row) <= col {
			row = append(row, cell{r: ' '})
		}
		row[col] = cell{r: r, style: concrete}
		col += runewidth.RuneWidth(r)
	}
	w.rows[pos.Row] = row
	return nil
}

// Render assembles every buffered row into one ANSI-styled string,
// grouping consecutive equally-styled cells into a single
// lipgloss.Style.Render span.
func (w *TerminalWindow) Render() string {
	lines := make([]string, len(w.rows))
	for i, row := range w.rows {
		lines[i] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []cell) string {
	var b strings.Builder
	start := 0
	for start < len(row) {
		end := start + 1
		for end < len(row) && row[end].style == row[start].style {
			end++
		}
		var run strings.Builder
		for _, c := range row[start:end] {
			run.WriteRune(c.r)
		}
		b.WriteString(row[start].style.Lipgloss().Render(run.String()))
		start = end
	}
	return b.String()
}

// Flush prints the assembled buffer to the terminal via pterm.
func (w *TerminalWindow) Flush() {
	pterm.DefaultBasicText.Println(w.Render())
}

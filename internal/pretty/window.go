package pretty

import (
	"strings"

	"github.com/synless-editor/synless/internal/layout"
	"github.com/synless-editor/synless/internal/style"
)

// Window is the sink a Driver prints to: a rectangular grid of character
// cells, addressed in absolute (row, col) positions (spec.md §4.H).
// Grounded on original_source/pretty/src/pretty/pretty_window.rs's
// PrettyWindow trait, narrowed to a single Print call -- the newer
// pretty_doc.rs already folds cursor/selection highlighting into
// ConcreteStyle.Cursor rather than a separate shade/highlight call, so
// there is nothing left for a second sink method to do.
type Window interface {
	// Size reports the window's extent in rows and columns.
	Size() (layout.Pos, error)

	// Print draws text (no newlines) with its first character at pos,
	// styled with style.
	Print(pos layout.Pos, text string, concrete style.ConcreteStyle) error
}

// PlainTextWindow is a Window that discards style and just accumulates
// characters into a growable grid, for tests and plain-text dumps.
// Grounded on original_source/pretty/src/pretty/plain_text.rs's PlainText.
type PlainTextWindow struct {
	width int
	lines [][]rune
}

// NewPlainTextWindow constructs an unbounded-height window width columns
// wide.
func NewPlainTextWindow(width int) *PlainTextWindow {
	return &PlainTextWindow{width: width}
}

func (w *PlainTextWindow) Size() (layout.Pos, error) {
	return layout.Pos{Row: len(w.lines), Col: w.width}, nil
}

func (w *PlainTextWindow) Print(pos layout.Pos, text string, _ style.ConcreteStyle) error {
	for len(w.lines) <= pos.Row {
		w.lines = append(w.lines, nil)
	}
	line := w.lines[pos.Row]
	runes := []rune(text)
	for len(line) < pos.Col+len(runes) {
		line = append(line, ' ')
	}
	copy(line[pos.Col:], runes)
	w.lines[pos.Row] = line
	return nil
}

// String renders every line accumulated so far, newline-joined.
func (w *PlainTextWindow) String() string {
	lines := make([]string, len(w.lines))
	for i, l := range w.lines {
		lines[i] = string(l)
	}
	return strings.Join(lines, "\n")
}

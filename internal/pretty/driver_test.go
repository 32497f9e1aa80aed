package pretty

import (
	"testing"

	"github.com/synless-editor/synless/internal/layout"
	"github.com/synless-editor/synless/internal/style"
)

// capturingWindow records every Print call verbatim, for assertions on
// the concrete style a render chose rather than just the rendered text.
type capturingWindow struct {
	printed []struct {
		pos   layout.Pos
		text  string
		style style.ConcreteStyle
	}
}

func (w *capturingWindow) Size() (layout.Pos, error) { return layout.Pos{Row: 100, Col: 100}, nil }

func (w *capturingWindow) Print(pos layout.Pos, text string, concrete style.ConcreteStyle) error {
	w.printed = append(w.printed, struct {
		pos   layout.Pos
		text  string
		style style.ConcreteStyle
	}{pos, text, concrete})
	return nil
}

// fakeDoc is a minimal, static Doc implementation for exercising Driver
// without needing internal/node or internal/doc built out.
type fakeDoc struct {
	notation *style.Notation
	children []*fakeDoc
	text     string
	isBranch bool
	label    style.ConcreteStyle // returned by LookupStyle for any label
}

func (d *fakeDoc) Notation() *style.Notation                        { return d.notation }
func (d *fakeDoc) Condition(style.Condition) bool                   { return false }
func (d *fakeDoc) LookupStyle(style.StyleLabel) style.ConcreteStyle { return d.label }
func (d *fakeDoc) NodeStyle() style.ConcreteStyle                   { return style.ConcreteStyle{} }
func (d *fakeDoc) NumChildren() (int, bool) {
	if !d.isBranch {
		return 0, false
	}
	return len(d.children), true
}
func (d *fakeDoc) Text() string { return d.text }
func (d *fakeDoc) Child(i int) Doc { return d.children[i] }

func TestRenderLiteralPrintsAtOrigin(t *testing.T) {
	doc := &fakeDoc{notation: style.Lit("hello"), isBranch: true}
	win := NewPlainTextWindow(80)
	driver := NewDriver()
	if err := driver.Render(doc, win, 80); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if win.String() != "hello" {
		t.Fatalf("got %q, want %q", win.String(), "hello")
	}
}

func TestRenderTextyNodePullsTextFromDoc(t *testing.T) {
	doc := &fakeDoc{notation: style.Text(), text: "abc", isBranch: false}
	win := NewPlainTextWindow(80)
	driver := NewDriver()
	if err := driver.Render(doc, win, 80); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if win.String() != "abc" {
		t.Fatalf("got %q, want %q", win.String(), "abc")
	}
}

func TestRenderRecursesIntoChildAtAssignedColumn(t *testing.T) {
	child := &fakeDoc{notation: style.Lit("kid"), isBranch: true}
	parent := &fakeDoc{
		notation: style.Follow(style.Lit("x="), style.Child(0)),
		children: []*fakeDoc{child},
		isBranch: true,
	}
	win := NewPlainTextWindow(80)
	driver := NewDriver()
	if err := driver.Render(parent, win, 80); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if win.String() != "x=kid" {
		t.Fatalf("got %q, want %q", win.String(), "x=kid")
	}
}

func TestRenderVertPutsSecondLineOnNewRow(t *testing.T) {
	doc := &fakeDoc{notation: style.Vert(style.Lit("foo"), style.Lit("bar")), isBranch: true}
	win := NewPlainTextWindow(80)
	driver := NewDriver()
	if err := driver.Render(doc, win, 80); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if win.String() != "foo\nbar" {
		t.Fatalf("got %q, want %q", win.String(), "foo\nbar")
	}
}

func TestRenderChildWidthIsNarrowedToAssignedSlot(t *testing.T) {
	// The child only fits a narrow column if its layout is re-resolved at
	// the width the parent's own Choice actually assigned it, rather than
	// the full outer width.
	child := &fakeDoc{
		notation: style.Choice(
			style.Lit("wide-one-liner"),
			style.Vert(style.Lit("ab"), style.Lit("cd")),
		),
		isBranch: true,
	}
	parent := &fakeDoc{
		notation: style.Vert(style.Lit("header"), style.Child(0)),
		children: []*fakeDoc{child},
		isBranch: true,
	}
	win := NewPlainTextWindow(6)
	driver := NewDriver()
	if err := driver.Render(parent, win, 6); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if win.String() != "header\nab\ncd" {
		t.Fatalf("got %q, want %q", win.String(), "header\nab\ncd")
	}
}

func TestRenderReturnsErrorWhenNothingFits(t *testing.T) {
	doc := &fakeDoc{notation: style.Lit("way too long for this width"), isBranch: true}
	win := NewPlainTextWindow(80)
	driver := NewDriver()
	if err := driver.Render(doc, win, 1); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestRenderStyledLeafUsesLookupStyle(t *testing.T) {
	highlight := style.ConcreteStyle{Bold: true}
	doc := &fakeDoc{
		notation: style.Styled(style.Open(), style.Lit("x")),
		isBranch: true,
		label:    highlight,
	}
	win := &capturingWindow{}
	driver := NewDriver()
	if err := driver.Render(doc, win, 80); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(win.printed) != 1 || !win.printed[0].style.Bold {
		t.Fatalf("expected the printed style to carry Bold from LookupStyle, got %+v", win.printed)
	}
}

package pretty

import (
	"testing"

	"github.com/synless-editor/synless/internal/layout"
	"github.com/synless-editor/synless/internal/style"
)

func TestPlainTextWindowGrowsLinesLazily(t *testing.T) {
	w := NewPlainTextWindow(10)
	if err := w.Print(layout.Pos{Row: 2, Col: 3}, "hi", style.ConcreteStyle{}); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if w.String() != "\n\n   hi" {
		t.Fatalf("got %q", w.String())
	}
}

func TestPlainTextWindowOverwritesInPlace(t *testing.T) {
	w := NewPlainTextWindow(10)
	w.Print(layout.Pos{Row: 0, Col: 0}, "hello", style.ConcreteStyle{})
	w.Print(layout.Pos{Row: 0, Col: 1}, "EY", style.ConcreteStyle{})
	if w.String() != "hEYlo" {
		t.Fatalf("got %q, want %q", w.String(), "hEYlo")
	}
}

func TestTerminalWindowRendersNonEmptyOutput(t *testing.T) {
	w := NewTerminalWindow(20)
	bold := style.ConcreteStyle{Bold: true}
	w.Print(layout.Pos{Row: 0, Col: 0}, "ab", bold)
	w.Print(layout.Pos{Row: 0, Col: 2}, "cd", bold)
	out := w.Render()
	if out == "" {
		t.Fatalf("expected non-empty rendered output")
	}
}

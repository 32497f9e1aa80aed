package doc

import (
	"testing"

	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/location"
	"github.com/synless-editor/synless/internal/node"
	"github.com/synless-editor/synless/internal/style"
)

func setupListLang(t *testing.T, s *node.Storage) lang.LanguageRef {
	t.Helper()
	grammar := lang.GrammarSpec{
		Constructs: []lang.ConstructSpec{
			{Name: "leaf", Arity: lang.ArityKey{Kind: lang.ArityTexty}},
			{Name: "list", Arity: lang.ArityKey{Kind: lang.ArityListy, Listy: lang.SortSpec{Names: []string{"leaf"}}}},
		},
		RootConstruct: "list",
	}
	notations := []lang.NamedNotation{
		{ConstructName: "leaf", Notation: style.Text()},
		{ConstructName: "list", Notation: style.Repeat(style.RepeatNotation{
			Empty:    style.Lit("[]"),
			Lone:     style.Child(0),
			Join:     style.Follow(style.LeftLeaf(), style.RightLeaf()),
			Surround: style.SurroundedLeaf(),
		})},
	}
	id, err := s.Lang.Register(lang.LanguageSpec{
		Name:            "listlang",
		Grammar:         grammar,
		DisplayNotation: lang.NotationSetSpec{Name: "default", Notations: notations},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return lang.LanguageRef{ID: id}
}

func mustConstruct(t *testing.T, s *node.Storage, l lang.LanguageRef, name string) lang.ConstructRef {
	t.Helper()
	c, ok := l.ConstructByName(s.Lang, name)
	if !ok {
		t.Fatalf("construct %q not found", name)
	}
	return c
}

func TestExecuteTreeInsertThenUndoRedo(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	d := New(s, list)
	d.Cursor, _ = location.BeforeChildren(s, list)

	leaf := node.New(s, mustConstruct(t, s, l, "leaf"))
	if err := d.Execute(s, Ed(TreeInsert(leaf))); err != nil {
		t.Fatalf("Execute insert failed: %v", err)
	}
	if n, _ := list.NumChildren(s); n != 1 {
		t.Fatalf("expected 1 child after insert, got %d", n)
	}

	d.EndUndoGroup()
	if err := d.Undo(s); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if n, _ := list.NumChildren(s); n != 0 {
		t.Fatalf("expected 0 children after undo, got %d", n)
	}

	if err := d.Redo(s); err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if n, _ := list.NumChildren(s); n != 1 {
		t.Fatalf("expected 1 child after redo, got %d", n)
	}
}

func TestExecuteRejectsTreeEditInTextMode(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	leaf := node.New(s, mustConstruct(t, s, l, "leaf"))
	d := New(s, list)

	loc, _ := location.BeforeChildren(s, list)
	loc.Insert(s, leaf)
	d.Cursor, _ = location.StartOfText(s, leaf)

	err := d.Execute(s, Ed(TreeBackspace()))
	if err != ErrNotInTreeMode {
		t.Fatalf("expected ErrNotInTreeMode, got %v", err)
	}
}

func TestExecuteTextEditRoundTrips(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	leaf := node.New(s, mustConstruct(t, s, l, "leaf"))
	d := New(s, leaf)
	d.Cursor, _ = location.StartOfText(s, leaf)

	for _, ch := range "hi" {
		if err := d.Execute(s, Ed(TextInsert(ch))); err != nil {
			t.Fatalf("Execute text insert failed: %v", err)
		}
	}
	text, _ := leaf.Text(s)
	if text.Source() != "hi" {
		t.Fatalf("got %q, want %q", text.Source(), "hi")
	}

	d.EndUndoGroup()
	if err := d.Undo(s); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if text.Source() != "" {
		t.Fatalf("expected empty text after full undo, got %q", text.Source())
	}
}

func TestUndoStackEmptyReturnsError(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	d := New(s, list)

	if err := d.Undo(s); err != ErrNothingToUndo {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
	if err := d.Redo(s); err != ErrNothingToRedo {
		t.Fatalf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestNavigationCommandMovesCursor(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	leaf1 := node.New(s, mustConstruct(t, s, l, "leaf"))
	leaf2 := node.New(s, mustConstruct(t, s, l, "leaf"))
	loc, _ := location.BeforeChildren(s, list)
	loc.Insert(s, leaf1)
	loc.Insert(s, leaf2)

	d := New(s, list)
	d.Cursor = loc // after leaf2

	if err := d.Execute(s, Nav(TreePrev())); err != nil {
		t.Fatalf("Execute nav failed: %v", err)
	}
	left, ok := d.Cursor.LeftNode(s)
	if !ok || left != leaf1 {
		t.Fatalf("expected cursor to move back to after leaf1")
	}
}

package location

import (
	"testing"

	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/node"
	"github.com/synless-editor/synless/internal/style"
)

// setupListLang registers a tiny language with a texty "leaf" and a
// listy "list" of leaves and nested lists, enough surface to exercise
// every Location operation that needs a mutable sequence.
func setupListLang(t *testing.T, s *node.Storage) lang.LanguageRef {
	t.Helper()
	grammar := lang.GrammarSpec{
		Constructs: []lang.ConstructSpec{
			{Name: "leaf", Arity: lang.ArityKey{Kind: lang.ArityTexty}},
			{Name: "list", Arity: lang.ArityKey{Kind: lang.ArityListy, Listy: lang.SortSpec{Names: []string{"leaf", "list"}}}},
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

func TestBeforeChildrenOfEmptyListIsBelowNode(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))

	loc, ok := BeforeChildren(s, list)
	if !ok {
		t.Fatalf("expected BeforeChildren to succeed on a listy node")
	}
	if loc.Mode() != ModeTree {
		t.Fatalf("expected tree mode")
	}
	if _, ok := loc.LeftNode(s); ok {
		t.Fatalf("empty list should have no left node")
	}
	if _, ok := loc.RightNode(s); ok {
		t.Fatalf("empty list should have no right node")
	}
}

func TestInsertIntoEmptyListThenNavigate(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	leaf := node.New(s, mustConstruct(t, s, l, "leaf"))

	loc, ok := BeforeChildren(s, list)
	if !ok {
		t.Fatalf("BeforeChildren failed")
	}
	if _, ok := loc.Insert(s, leaf); !ok {
		t.Fatalf("Insert failed")
	}
	left, ok := loc.LeftNode(s)
	if !ok || left != leaf {
		t.Fatalf("expected loc to sit just after the inserted leaf")
	}
}

func TestInsertTwiceThenSiblingNavigation(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	leaf1 := node.New(s, mustConstruct(t, s, l, "leaf"))
	leaf2 := node.New(s, mustConstruct(t, s, l, "leaf"))

	loc, _ := BeforeChildren(s, list)
	loc.Insert(s, leaf1)
	loc.Insert(s, leaf2)

	prev, ok := loc.PrevSibling(s)
	if !ok {
		t.Fatalf("expected a previous sibling location")
	}
	left, ok := prev.LeftNode(s)
	if !ok || left != leaf1 {
		t.Fatalf("expected prev sibling location to sit just after leaf1")
	}
}

func TestDeleteNeighborInListyShrinksSequence(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	leaf1 := node.New(s, mustConstruct(t, s, l, "leaf"))
	leaf2 := node.New(s, mustConstruct(t, s, l, "leaf"))

	loc, _ := BeforeChildren(s, list)
	loc.Insert(s, leaf1)
	loc.Insert(s, leaf2)

	deleted, ok := loc.DeleteNeighbor(s, true)
	if !ok || deleted != leaf2 {
		t.Fatalf("expected to delete leaf2")
	}
	left, ok := loc.LeftNode(s)
	if !ok || left != leaf1 {
		t.Fatalf("expected loc to now sit just after leaf1")
	}
	if n, _ := list.NumChildren(s); n != 1 {
		t.Fatalf("expected list to have shrunk to 1 child, got %d", n)
	}
}

func TestPrevCousinClimbsOutOfEmptyList(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	outer := node.New(s, mustConstruct(t, s, l, "list"))
	innerA := node.New(s, mustConstruct(t, s, l, "list"))
	innerB := node.New(s, mustConstruct(t, s, l, "list"))
	leafInA := node.New(s, mustConstruct(t, s, l, "leaf"))

	locA, _ := BeforeChildren(s, innerA)
	locA.Insert(s, leafInA)

	locOuter, _ := BeforeChildren(s, outer)
	locOuter.Insert(s, innerA)
	locOuter.Insert(s, innerB)

	// locB sits at the very start of innerB's (empty) child sequence;
	// its prev cousin should climb out to innerA and land at the end of
	// innerA's children (i.e. just after leafInA).
	locB, ok := BeforeChildren(s, innerB)
	if !ok {
		t.Fatalf("BeforeChildren(innerB) failed")
	}
	cousin, ok := locB.PrevCousin(s)
	if !ok {
		t.Fatalf("expected PrevCousin to succeed")
	}
	left, ok := cousin.LeftNode(s)
	if !ok || left != leafInA {
		t.Fatalf("expected prev cousin to land just after leafInA, got left=%v ok=%v", left, ok)
	}
}

func TestBookmarkSurvivesEditsButNotDetachToAnotherTree(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	leaf1 := node.New(s, mustConstruct(t, s, l, "leaf"))
	leaf2 := node.New(s, mustConstruct(t, s, l, "leaf"))

	loc, _ := BeforeChildren(s, list)
	loc.Insert(s, leaf1)
	mark := loc.Bookmark()
	loc.Insert(s, leaf2)

	resolved, ok := loc.ValidateBookmark(s, mark)
	if !ok {
		t.Fatalf("expected bookmark to still validate after further edits")
	}
	left, ok := resolved.LeftNode(s)
	if !ok || left != leaf1 {
		t.Fatalf("expected resolved bookmark to sit just after leaf1")
	}

	loc.DeleteNeighbor(s, true) // detaches leaf2 into its own tree
	loc.DeleteNeighbor(s, true) // detaches leaf1 into its own tree
	if _, ok := loc.ValidateBookmark(s, mark); ok {
		t.Fatalf("expected bookmark to a node in a different tree to fail validation")
	}
}

func TestPathFromRootOfChildLocation(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	outer := node.New(s, mustConstruct(t, s, l, "list"))
	leaf := node.New(s, mustConstruct(t, s, l, "leaf"))

	loc, _ := BeforeChildren(s, outer)
	loc.Insert(s, leaf)

	after := After(s, leaf)
	path, target := after.PathFromRoot(s)
	if len(path) != 1 || path[0] != 0 {
		t.Fatalf("expected path [0], got %v", path)
	}
	if target.Kind != FocusEnd {
		t.Fatalf("expected FocusEnd target, got %+v", target)
	}
}

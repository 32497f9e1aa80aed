package doc

import (
	"testing"

	"github.com/synless-editor/synless/internal/location"
	"github.com/synless-editor/synless/internal/node"
)

func byText(want string) func(*node.Storage, node.Node) bool {
	return func(s *node.Storage, n node.Node) bool {
		t, ok := n.Text(s)
		return ok && t.Source() == want
	}
}

func TestFindFromLocatesMatchingNode(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	d := New(s, list)

	for _, text := range []string{"alpha", "beta", "gamma"} {
		leaf := node.New(s, mustConstruct(t, s, l, "leaf"))
		txt, _ := leaf.Text(s)
		txt.Set(text)
		loc, _ := location.AfterChildren(s, list)
		loc.Insert(s, leaf)
	}

	start, _ := location.BeforeChildren(s, list)
	found, ok := d.FindFrom(s, start, byText("beta"))
	if !ok {
		t.Fatalf("FindFrom did not find \"beta\"")
	}
	n, ok := found.RightNode(s)
	if !ok {
		t.Fatalf("found location has no right node")
	}
	txt, _ := n.Text(s)
	if txt.Source() != "beta" {
		t.Fatalf("found node text = %q, want beta", txt.Source())
	}
}

func TestFindFromReturnsFalseWhenNoMatch(t *testing.T) {
	s := node.NewStorage()
	l := setupListLang(t, s)
	list := node.New(s, mustConstruct(t, s, l, "list"))
	d := New(s, list)

	leaf := node.New(s, mustConstruct(t, s, l, "leaf"))
	txt, _ := leaf.Text(s)
	txt.Set("alpha")
	loc, _ := location.AfterChildren(s, list)
	loc.Insert(s, leaf)

	start, _ := location.BeforeChildren(s, list)
	if _, ok := d.FindFrom(s, start, byText("nonexistent")); ok {
		t.Fatalf("FindFrom should not have found a match")
	}
}

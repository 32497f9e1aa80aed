package langtest

import (
	"testing"

	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/node"
	"github.com/synless-editor/synless/internal/style"
)

func setupPairLang(t *testing.T, s *node.Storage) lang.LanguageRef {
	t.Helper()
	grammar := lang.GrammarSpec{
		Constructs: []lang.ConstructSpec{
			{Name: "leaf", Arity: lang.ArityKey{Kind: lang.ArityTexty}},
			{Name: "pair", Arity: lang.ArityKey{Kind: lang.ArityFixed, Fixed: []lang.SortSpec{
				{Names: []string{"leaf"}},
				{Names: []string{"leaf"}},
			}}},
			{Name: "list", Arity: lang.ArityKey{Kind: lang.ArityListy, Listy: lang.SortSpec{Names: []string{"leaf"}}}},
		},
		RootConstruct: "pair",
	}
	notations := []lang.NamedNotation{
		{ConstructName: "leaf", Notation: style.Text()},
		{ConstructName: "pair", Notation: style.Follow(style.Child(0), style.Child(1))},
		{ConstructName: "list", Notation: style.Repeat(style.RepeatNotation{
			Empty:    style.Lit("[]"),
			Lone:     style.Child(0),
			Join:     style.Follow(style.LeftLeaf(), style.RightLeaf()),
			Surround: style.SurroundedLeaf(),
		})},
	}
	id, err := s.Lang.Register(lang.LanguageSpec{
		Name:            "pairlang",
		Grammar:         grammar,
		DisplayNotation: lang.NotationSetSpec{Name: "default", Notations: notations},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return lang.LanguageRef{ID: id}
}

func TestParseLeafAndBranchNotation(t *testing.T) {
	tree, err := Parse(`(pair (leaf "hello") (leaf "world"))`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tree.Kind != "pair" || len(tree.Children) != 2 {
		t.Fatalf("tree = %+v", tree)
	}
	if tree.Children[0].Kind != "leaf" || tree.Children[0].Text != "hello" {
		t.Fatalf("children[0] = %+v", tree.Children[0])
	}
	if tree.Children[1].Text != "world" {
		t.Fatalf("children[1] = %+v", tree.Children[1])
	}
}

func TestParseEscapesInQuotedText(t *testing.T) {
	tree, err := Parse(`(leaf "a\nb\"c")`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tree.Text != "a\nb\"c" {
		t.Fatalf("Text = %q", tree.Text)
	}
}

func TestBuildThenFromNodeRoundTrips(t *testing.T) {
	s := node.NewStorage()
	l := setupPairLang(t, s)

	expected := Branch("pair", Leaf("leaf", "hello"), Leaf("leaf", "world"))
	n := Build(s, l, expected)
	actual := FromNode(s, n)

	if diffs := Diff(expected, actual); len(diffs) > 0 {
		t.Fatalf("unexpected diffs: %v", diffs)
	}
}

func TestDiffReportsTextMismatch(t *testing.T) {
	s := node.NewStorage()
	l := setupPairLang(t, s)

	actual := FromNode(s, Build(s, l, Branch("pair", Leaf("leaf", "x"), Leaf("leaf", "y"))))
	expected := Branch("pair", Leaf("leaf", "wrong"), Leaf("leaf", "y"))

	diffs := Diff(expected, actual)
	if len(diffs) != 1 {
		t.Fatalf("expected exactly one diff, got %v", diffs)
	}
}

func TestDiffWildcardKindMatchesAnything(t *testing.T) {
	s := node.NewStorage()
	l := setupPairLang(t, s)

	actual := FromNode(s, Build(s, l, Branch("pair", Leaf("leaf", "x"), Leaf("leaf", "y"))))
	expected := Branch("_", Leaf("leaf", "x"), Leaf("leaf", "y"))

	if diffs := Diff(expected, actual); len(diffs) > 0 {
		t.Fatalf("wildcard kind should match, got diffs: %v", diffs)
	}
}

func TestBuildListyConstruct(t *testing.T) {
	s := node.NewStorage()
	l := setupPairLang(t, s)

	expected := Branch("list", Leaf("leaf", "a"), Leaf("leaf", "b"), Leaf("leaf", "c"))
	n := Build(s, l, expected)
	numChildren, isBranch := n.NumChildren(s)
	if !isBranch || numChildren != 3 {
		t.Fatalf("NumChildren = (%d, %v), want (3, true)", numChildren, isBranch)
	}
	actual := FromNode(s, n)
	if diffs := Diff(expected, actual); len(diffs) > 0 {
		t.Fatalf("unexpected diffs: %v", diffs)
	}
}

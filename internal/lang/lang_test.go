package lang

import (
	"errors"
	"testing"

	"github.com/synless-editor/synless/internal/style"
)

func listSpec(name string) GrammarSpec {
	return GrammarSpec{
		Constructs: []ConstructSpec{
			{Name: "num", Arity: ArityKey{Kind: ArityTexty}},
			{Name: "list", Arity: ArityKey{Kind: ArityListy, Listy: SortSpec{Names: []string{"num"}}}},
		},
		RootConstruct: "list",
	}
}

func notationsFor(constructs []string) NotationSetSpec {
	var ns []NamedNotation
	for _, c := range constructs {
		n := style.Text()
		if c == "list" {
			n = style.Repeat(style.RepeatNotation{
				Empty:    style.Lit("[]"),
				Lone:     style.Child(0),
				Join:     style.Follow(style.LeftLeaf(), style.RightLeaf()),
				Surround: style.SurroundedLeaf(),
			})
		}
		ns = append(ns, NamedNotation{ConstructName: c, Notation: n})
	}
	return NotationSetSpec{Name: "default", Notations: ns}
}

func TestRegisterSimpleLanguage(t *testing.T) {
	s := NewStorage()
	spec := LanguageSpec{
		Name:            "tiny",
		Grammar:         listSpec("tiny"),
		DisplayNotation: notationsFor([]string{"num", "list"}),
	}
	id, err := s.Register(spec)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	lr := LanguageRef{ID: id}
	root := lr.RootConstruct(s)
	if root.Name(s) != "list" {
		t.Fatalf("RootConstruct name = %q, want list", root.Name(s))
	}
	hole := lr.HoleConstruct(s)
	if hole.Name(s) != HoleConstructName {
		t.Fatalf("HoleConstruct name = %q, want %q", hole.Name(s), HoleConstructName)
	}
}

func TestDuplicateLanguageRejected(t *testing.T) {
	s := NewStorage()
	spec := LanguageSpec{
		Name:            "tiny",
		Grammar:         listSpec("tiny"),
		DisplayNotation: notationsFor([]string{"num", "list"}),
	}
	if _, err := s.Register(spec); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := s.Register(spec)
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Cause, ErrDuplicateLanguage) {
		t.Fatalf("want ErrDuplicateLanguage, got %v", err)
	}
}

func TestFixedChildSortAcceptsHole(t *testing.T) {
	s := NewStorage()
	grammar := GrammarSpec{
		Constructs: []ConstructSpec{
			{Name: "leaf", Arity: ArityKey{Kind: ArityTexty}},
			{Name: "pair", Arity: ArityKey{Kind: ArityFixed, Fixed: []SortSpec{
				{Names: []string{"leaf"}},
				{Names: []string{"leaf"}},
			}}},
		},
		RootConstruct: "pair",
	}
	var notations []NamedNotation
	notations = append(notations, NamedNotation{ConstructName: "leaf", Notation: style.Text()})
	notations = append(notations, NamedNotation{ConstructName: "pair", Notation: style.Follow(style.Child(0), style.Child(1))})
	spec := LanguageSpec{
		Name:            "pairlang",
		Grammar:         grammar,
		DisplayNotation: NotationSetSpec{Name: "default", Notations: notations},
	}
	id, err := s.Register(spec)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	lr := LanguageRef{ID: id}
	pair, _ := lr.ConstructByName(s, "pair")
	hole := lr.HoleConstruct(s)
	leaf, _ := lr.ConstructByName(s, "leaf")

	sorts := pair.FixedSorts()
	if sorts.Len(s) != 2 {
		t.Fatalf("FixedSorts.Len = %d, want 2", sorts.Len(s))
	}
	if !sorts.At(s, 0).Accepts(s, hole) {
		t.Fatalf("fixed child sort must accept $hole after builtin injection")
	}
	if !sorts.At(s, 0).Accepts(s, leaf) {
		t.Fatalf("fixed child sort must still accept leaf")
	}
}

func TestUndefinedRootConstructRejected(t *testing.T) {
	s := NewStorage()
	grammar := GrammarSpec{
		Constructs:    []ConstructSpec{{Name: "a", Arity: ArityKey{Kind: ArityTexty}}},
		RootConstruct: "nonexistent",
	}
	spec := LanguageSpec{
		Name:            "broken",
		Grammar:         grammar,
		DisplayNotation: NotationSetSpec{Name: "default", Notations: []NamedNotation{{ConstructName: "a", Notation: style.Text()}}},
	}
	_, err := s.Register(spec)
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Cause, ErrUndefinedConstruct) {
		t.Fatalf("want ErrUndefinedConstruct, got %v", err)
	}
}

func TestTextyRootRejected(t *testing.T) {
	s := NewStorage()
	grammar := GrammarSpec{
		Constructs:    []ConstructSpec{{Name: "a", Arity: ArityKey{Kind: ArityTexty}}},
		RootConstruct: "a",
	}
	spec := LanguageSpec{
		Name:            "texty-root",
		Grammar:         grammar,
		DisplayNotation: NotationSetSpec{Name: "default", Notations: []NamedNotation{{ConstructName: "a", Notation: style.Text()}}},
	}
	_, err := s.Register(spec)
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Cause, ErrTextyRoot) {
		t.Fatalf("want ErrTextyRoot, got %v", err)
	}
}

func TestMissingNotationRejected(t *testing.T) {
	s := NewStorage()
	_, err := s.Register(LanguageSpec{
		Name:            "missing-notation",
		Grammar:         listSpec("missing-notation"),
		DisplayNotation: notationsFor([]string{"num"}), // forgot "list"
	})
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Cause, ErrMissingNotation) {
		t.Fatalf("want ErrMissingNotation, got %v", err)
	}
}

func TestSortDeduplication(t *testing.T) {
	s := NewStorage()
	grammar := GrammarSpec{
		Constructs: []ConstructSpec{
			{Name: "leaf", Arity: ArityKey{Kind: ArityTexty}},
			{Name: "a", Arity: ArityKey{Kind: ArityFixed, Fixed: []SortSpec{{Names: []string{"leaf"}}}}},
			{Name: "b", Arity: ArityKey{Kind: ArityFixed, Fixed: []SortSpec{{Names: []string{"leaf"}}}}},
		},
		RootConstruct: "a",
	}
	notations := []NamedNotation{
		{ConstructName: "leaf", Notation: style.Text()},
		{ConstructName: "a", Notation: style.Child(0)},
		{ConstructName: "b", Notation: style.Child(0)},
	}
	id, err := s.Register(LanguageSpec{
		Name:            "dedup",
		Grammar:         grammar,
		DisplayNotation: NotationSetSpec{Name: "default", Notations: notations},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	g := &s.Language(id).Grammar
	aSort := g.Constructs[g.constructIndex["a"]].Arity.Fixed[0]
	bSort := g.Constructs[g.constructIndex["b"]].Arity.Fixed[0]
	if aSort != bSort {
		t.Fatalf("identical sorts {leaf,$hole} should be deduplicated to one SortID, got %v and %v", aSort, bSort)
	}
}

func TestInvalidChildIndexRejected(t *testing.T) {
	s := NewStorage()
	grammar := GrammarSpec{
		Constructs:    []ConstructSpec{{Name: "leaf", Arity: ArityKey{Kind: ArityFixed}}},
		RootConstruct: "leaf",
	}
	_, err := s.Register(LanguageSpec{
		Name:            "bad-child",
		Grammar:         grammar,
		DisplayNotation: NotationSetSpec{Name: "default", Notations: []NamedNotation{{ConstructName: "leaf", Notation: style.Child(5)}}},
	})
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Cause, ErrInvalidNotation) {
		t.Fatalf("want ErrInvalidNotation, got %v", err)
	}
}

func TestTextPatternValidatesConstructText(t *testing.T) {
	s := NewStorage()
	grammar := GrammarSpec{
		Constructs: []ConstructSpec{
			{Name: "ident", Arity: ArityKey{Kind: ArityTexty}, TextPattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
			{Name: "list", Arity: ArityKey{Kind: ArityListy, Listy: SortSpec{Names: []string{"ident"}}}},
		},
		RootConstruct: "list",
	}
	id, err := s.Register(LanguageSpec{
		Name:            "patterned",
		Grammar:         grammar,
		DisplayNotation: notationsFor([]string{"ident", "list"}),
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	ident, ok := LanguageRef{ID: id}.ConstructByName(s, "ident")
	if !ok {
		t.Fatalf("ident construct not found")
	}
	if !ident.IsValidText(s, "foo_bar") {
		t.Fatalf("expected foo_bar to be a valid ident")
	}
	if ident.IsValidText(s, "123abc") {
		t.Fatalf("expected 123abc to be rejected by the pattern")
	}

	list, _ := LanguageRef{ID: id}.ConstructByName(s, "list")
	if !list.IsValidText(s, "anything") {
		t.Fatalf("constructs without a pattern should accept any text")
	}
}

func TestInvalidTextPatternRejectedAtCompile(t *testing.T) {
	s := NewStorage()
	grammar := GrammarSpec{
		Constructs: []ConstructSpec{
			{Name: "bad", Arity: ArityKey{Kind: ArityTexty}, TextPattern: `(unterminated`},
			{Name: "list", Arity: ArityKey{Kind: ArityListy, Listy: SortSpec{Names: []string{"bad"}}}},
		},
		RootConstruct: "list",
	}
	_, err := s.Register(LanguageSpec{
		Name:    "broken-pattern",
		Grammar: grammar,
	})
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Cause, ErrInvalidTextPattern) {
		t.Fatalf("want ErrInvalidTextPattern, got %v", err)
	}
}

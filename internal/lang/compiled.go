package lang

import (
	"regexp"

	"github.com/synless-editor/synless/internal/style"
)

// HoleConstructName is the reserved internal name of the builtin hole
// construct every language gets (spec.md §4.C "Builtin injection").
const HoleConstructName = "$hole"

// defaultHoleLiteral is the glyph every hole is displayed with;
// LanguageSpec.HoleDisplayName does not change it.
const defaultHoleLiteral = "☐" // ☐

// Arity is the compiled form of ArityKey: sort references resolved to
// SortIDs.
type Arity struct {
	Kind  ArityKind
	Fixed []SortID // ArityFixed
	Listy SortID   // ArityListy
}

// Construct is the compiled form of ConstructSpec. TextPattern is nil
// for constructs that declared no pattern (or aren't Texty), meaning any
// text is valid.
type Construct struct {
	Name          string
	Arity         Arity
	IsCommentOrWs bool
	Key           rune
	TextPattern   *regexp.Regexp
}

// Sort is a deduplicated bitset of ConstructIDs: "is this construct a
// member of this sort".
type Sort struct {
	bits bitset
}

func (s *Sort) Contains(c ConstructID) bool { return s.bits.has(int(c)) }

// Grammar is the compiled form of GrammarSpec.
type Grammar struct {
	Name           string
	Constructs     []Construct // indexed by ConstructID
	Sorts          []Sort      // indexed by SortID
	RootConstruct  ConstructID
	HoleConstruct  ConstructID
	constructIndex map[string]ConstructID
	keymap         map[rune]ConstructID
}

// ConstructByName looks up a construct's ID by name.
func (g *Grammar) ConstructByName(name string) (ConstructID, bool) {
	id, ok := g.constructIndex[name]
	return id, ok
}

// ConstructForKey returns the construct bound to keyboard shortcut key,
// if any.
func (g *Grammar) ConstructForKey(key rune) (ConstructID, bool) {
	id, ok := g.keymap[key]
	return id, ok
}

// NotationSet is the compiled form of NotationSetSpec: one Notation per
// ConstructID, indexed the same way as Grammar.Constructs.
type NotationSet struct {
	Name      string
	Notations []*style.Notation // indexed by ConstructID
}

// Language is the fully compiled, immutable form of a LanguageSpec.
type Language struct {
	ID              LanguageID
	Name            string
	Grammar         Grammar
	NotationSets    []NotationSet // indexed by NotationSetID
	notationIndex   map[string]NotationSetID
	DisplayNotation NotationSetID
	SourceNotation  *NotationSetID
	FileExtensions  []string
	HoleDisplayName string
}

// NotationSetByName looks up a notation set's ID by name (used by the
// pretty-print driver to switch between display and source notations).
func (l *Language) NotationSetByName(name string) (NotationSetID, bool) {
	id, ok := l.notationIndex[name]
	return id, ok
}

package lang

import "github.com/synless-editor/synless/internal/style"

// ArityKind discriminates ConstructSpec.Arity (spec.md §4.C / §3).
type ArityKind int

const (
	ArityTexty ArityKind = iota
	ArityFixed
	ArityListy
)

// ArityKey pairs the arity of a construct with its sort references, not
// yet resolved to SortIDs.
type ArityKey struct {
	Kind     ArityKind
	Fixed    []SortSpec // ArityFixed: one SortSpec per child position
	Listy    SortSpec   // ArityListy
}

// SortSpec names a sort as a set of construct/sort names, to be flattened
// and deduplicated at compile time (spec.md §4.C "Sort compilation
// flattens nested sort references...").
type SortSpec struct {
	Names []string
}

// ConstructSpec declares one kind of node a language's grammar admits.
type ConstructSpec struct {
	Name         string
	Arity        ArityKey
	IsCommentOrWs bool
	Key          rune // 0 means "no keyboard shortcut"

	// TextPattern, if non-empty, is an anchored regular expression a
	// Texty construct's text must satisfy to be considered valid --
	// e.g. an identifier construct restricting its text to `[a-zA-Z_]\w*`.
	// Ignored for non-Texty constructs. Empty means "anything goes".
	TextPattern string
}

// GrammarSpec is the declarative half of a language: every construct, the
// named sorts built from them, and which construct is the document root.
type GrammarSpec struct {
	Constructs    []ConstructSpec
	Sorts         []NamedSort
	RootConstruct string
}

// NamedSort binds a name to a SortSpec so it can be referenced from other
// SortSpecs or from the outside (e.g. a Location operation's sort check).
type NamedSort struct {
	Name string
	Sort SortSpec
}

// NotationSetSpec maps each construct's name to its display Notation.
type NotationSetSpec struct {
	Name      string
	Notations []NamedNotation
}

// NamedNotation binds a construct name to the Notation that displays it.
type NamedNotation struct {
	ConstructName string
	Notation      *style.Notation
}

// LanguageSpec is the full declarative description of one language,
// compiled once by Storage.Register (spec.md §4.C).
type LanguageSpec struct {
	Name            string
	Grammar         GrammarSpec
	DisplayNotation NotationSetSpec
	SourceNotation  *NotationSetSpec // optional; nil if this language has no source-text notation
	FileExtensions  []string
	HoleDisplayName string // purely cosmetic; internal construct name is always "$hole" (see SPEC_FULL.md)
}

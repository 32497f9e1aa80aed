package lang

import "github.com/synless-editor/synless/internal/style"

// LanguageRef, ConstructRef, SortRef, and NotationSetRef are facade
// handles that pair a thing's id with the LanguageID it belongs to
// (spec.md §4.C "wrap (LanguageId, thing_id) pairs so that accidentally
// mixing a construct from one language with a grammar from another is a
// type error"). internal/node stores these, never a bare ConstructID, so
// a mismatched Storage lookup cannot silently succeed against the wrong
// language.
type LanguageRef struct {
	ID LanguageID
}

type ConstructRef struct {
	Language LanguageID
	ID       ConstructID
}

type SortRef struct {
	Language LanguageID
	ID       SortID
}

type NotationSetRef struct {
	Language LanguageID
	ID       NotationSetID
}

// Name returns the construct's name.
func (c ConstructRef) Name(s *Storage) string {
	return s.Language(c.Language).Grammar.Constructs[c.ID].Name
}

// IsTexty, IsFixed, IsListy classify a construct's arity.
func (c ConstructRef) IsTexty(s *Storage) bool {
	return s.Language(c.Language).Grammar.Constructs[c.ID].Arity.Kind == ArityTexty
}
func (c ConstructRef) IsFixed(s *Storage) bool {
	return s.Language(c.Language).Grammar.Constructs[c.ID].Arity.Kind == ArityFixed
}
func (c ConstructRef) IsListy(s *Storage) bool {
	return s.Language(c.Language).Grammar.Constructs[c.ID].Arity.Kind == ArityListy
}

// IsValidText reports whether text satisfies c's TextPattern, if it
// declared one; always true for constructs without a pattern.
func (c ConstructRef) IsValidText(s *Storage, text string) bool {
	pattern := s.Language(c.Language).Grammar.Constructs[c.ID].TextPattern
	return pattern == nil || pattern.MatchString(text)
}

// IsHole reports whether c is the language's distinguished $hole
// construct (spec.md §3; original_source/src/language/node.rs's
// Construct::is_hole).
func (c ConstructRef) IsHole(s *Storage) bool {
	return c.ID == s.Language(c.Language).Grammar.HoleConstruct
}

// FixedSorts returns the per-position sorts of a Fixed construct's
// children. It does not check the arity: for a construct that is not
// Fixed, Len reports 0 and At panics with an index out of range --
// callers are expected to check IsFixed first, the same contract
// internal/node's facade methods follow for every arity-dependent
// operation.
func (c ConstructRef) FixedSorts() FixedSorts {
	return FixedSorts{lang: c.Language, construct: c}
}

// FixedSorts lazily resolves a Fixed construct's child sorts, pairing
// each with the owning LanguageID the way ConstructRef does.
type FixedSorts struct {
	lang      LanguageID
	construct ConstructRef
}

func (f FixedSorts) At(s *Storage, i int) SortRef {
	sortID := s.Language(f.lang).Grammar.Constructs[f.construct.ID].Arity.Fixed[i]
	return SortRef{Language: f.lang, ID: sortID}
}

func (f FixedSorts) Len(s *Storage) int {
	return len(s.Language(f.lang).Grammar.Constructs[f.construct.ID].Arity.Fixed)
}

// ListySort returns the sort a Listy construct's children must satisfy.
// Panics if the construct is not Listy.
func (c ConstructRef) ListySort(s *Storage) SortRef {
	arity := s.Language(c.Language).Grammar.Constructs[c.ID].Arity
	if arity.Kind != ArityListy {
		panic("lang: ListySort called on a non-Listy construct")
	}
	sortID := arity.Listy
	return SortRef{Language: c.Language, ID: sortID}
}

// Accepts reports whether construct c is a legal member of sort r.
func (r SortRef) Accepts(s *Storage, c ConstructRef) bool {
	if r.Language != c.Language {
		return false
	}
	sort := &s.Language(r.Language).Grammar.Sorts[r.ID]
	return sort.Contains(c.ID)
}

// Notation returns construct c's notation within notation set n.
func (n NotationSetRef) Notation(s *Storage, c ConstructRef) *style.Notation {
	set := &s.Language(n.Language).NotationSets[n.ID]
	return set.Notations[c.ID]
}

// RootConstruct, HoleConstruct return the distinguished constructs of a
// language.
func (l LanguageRef) RootConstruct(s *Storage) ConstructRef {
	return ConstructRef{Language: l.ID, ID: s.Language(l.ID).Grammar.RootConstruct}
}

func (l LanguageRef) HoleConstruct(s *Storage) ConstructRef {
	return ConstructRef{Language: l.ID, ID: s.Language(l.ID).Grammar.HoleConstruct}
}

func (l LanguageRef) DisplayNotationSet(s *Storage) NotationSetRef {
	return NotationSetRef{Language: l.ID, ID: s.Language(l.ID).DisplayNotation}
}

func (l LanguageRef) SourceNotationSet(s *Storage) (NotationSetRef, bool) {
	lang := s.Language(l.ID)
	if lang.SourceNotation == nil {
		return NotationSetRef{}, false
	}
	return NotationSetRef{Language: l.ID, ID: *lang.SourceNotation}, true
}

func (l LanguageRef) ConstructByName(s *Storage, name string) (ConstructRef, bool) {
	id, ok := s.Language(l.ID).Grammar.ConstructByName(name)
	if !ok {
		return ConstructRef{}, false
	}
	return ConstructRef{Language: l.ID, ID: id}, true
}

func (l LanguageRef) ConstructForKey(s *Storage, key rune) (ConstructRef, bool) {
	id, ok := s.Language(l.ID).Grammar.ConstructForKey(key)
	if !ok {
		return ConstructRef{}, false
	}
	return ConstructRef{Language: l.ID, ID: id}, true
}

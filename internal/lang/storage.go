package lang

// Storage is the single process-wide registry of compiled languages
// (spec.md §5 "one process-wide Storage that owns the forest arena and
// every compiled language"; the forest half lives in internal/node,
// which embeds a *forest.Forest alongside a *Storage). Mirrors vartan's
// split between a spec.RootNode (declarative) and a grammar.Grammar
// (compiled, looked up by id thereafter).
type Storage struct {
	languages   []*Language // indexed by LanguageID
	nameToID    map[string]LanguageID
}

// NewStorage returns an empty registry.
func NewStorage() *Storage {
	return &Storage{nameToID: make(map[string]LanguageID)}
}

// Register compiles spec and adds it to the Storage, returning the newly
// assigned LanguageID. Fails if a language with this name is already
// registered, or if the grammar/notation sets fail to compile (spec.md
// §4.C's CompileError catalog).
func (s *Storage) Register(spec LanguageSpec) (LanguageID, error) {
	if _, dup := s.nameToID[spec.Name]; dup {
		return 0, &CompileError{Cause: ErrDuplicateLanguage, Language: spec.Name}
	}

	gb := newGrammarBuilder(spec.Name, spec.Grammar)
	grammar, err := gb.build()
	if err != nil {
		return 0, err
	}

	display, err := compileNotationSet(spec.Name, grammar, spec.DisplayNotation)
	if err != nil {
		return 0, err
	}

	id := LanguageID(len(s.languages))
	lang := &Language{
		ID:              id,
		Name:            spec.Name,
		Grammar:         *grammar,
		NotationSets:    []NotationSet{*display},
		notationIndex:   map[string]NotationSetID{display.Name: 0},
		DisplayNotation: 0,
		FileExtensions:  append([]string(nil), spec.FileExtensions...),
		HoleDisplayName: spec.HoleDisplayName,
	}
	if lang.HoleDisplayName == "" {
		lang.HoleDisplayName = HoleConstructName
	}

	if spec.SourceNotation != nil {
		source, err := compileNotationSet(spec.Name, grammar, *spec.SourceNotation)
		if err != nil {
			return 0, err
		}
		sid := NotationSetID(len(lang.NotationSets))
		lang.NotationSets = append(lang.NotationSets, *source)
		lang.notationIndex[source.Name] = sid
		lang.SourceNotation = &sid
	}

	s.languages = append(s.languages, lang)
	s.nameToID[spec.Name] = id
	return id, nil
}

// Language looks up a compiled language by ID. Panics (via the caller's
// facade, which only ever holds IDs Storage itself issued) if id is out
// of range -- this is an internal invariant violation, not a user error.
func (s *Storage) Language(id LanguageID) *Language {
	return s.languages[id]
}

// LanguageByName looks up a compiled language's ID by name.
func (s *Storage) LanguageByName(name string) (LanguageID, bool) {
	id, ok := s.nameToID[name]
	return id, ok
}

package lang

import (
	"regexp"

	"github.com/synless-editor/synless/internal/style"
)

// grammarBuilder accumulates a GrammarSpec's constructs and named sorts
// and resolves them into a Grammar in one pass, the way vartan's
// grammar.GrammarBuilder accumulates productions/terminals before
// Build() computes the compiled table. Ported from
// original_source/src/language/compiled.rs's GrammarCompiler.
type grammarBuilder struct {
	language      string
	constructs    []ConstructSpec
	constructIdx  map[string]int // name -> index into constructs
	namedSorts    map[string]SortSpec
	rootName      string
}

func newGrammarBuilder(language string, spec GrammarSpec) *grammarBuilder {
	b := &grammarBuilder{
		language:     language,
		constructIdx: make(map[string]int, len(spec.Constructs)),
		namedSorts:   make(map[string]SortSpec, len(spec.Sorts)),
		rootName:     spec.RootConstruct,
	}
	for _, c := range spec.Constructs {
		b.constructIdx[c.Name] = len(b.constructs)
		b.constructs = append(b.constructs, c)
	}
	for _, ns := range spec.Sorts {
		b.namedSorts[ns.Name] = ns.Sort
	}
	return b
}

func (b *grammarBuilder) wrap(cause error, construct, detail string) error {
	return &CompileError{Cause: cause, Language: b.language, Construct: construct, Detail: detail}
}

func (b *grammarBuilder) addConstruct(c ConstructSpec) error {
	if _, ok := b.namedSorts[c.Name]; ok {
		return b.wrap(ErrDuplicateConstructAndSort, c.Name, "")
	}
	if _, ok := b.constructIdx[c.Name]; ok {
		return b.wrap(ErrDuplicateConstruct, c.Name, "")
	}
	b.constructIdx[c.Name] = len(b.constructs)
	b.constructs = append(b.constructs, c)
	return nil
}

// injectHole adds the $hole construct and widens every Fixed child's
// sort to also accept it (spec.md §4.C "Builtin injection").
func (b *grammarBuilder) injectHole() error {
	for i := range b.constructs {
		if b.constructs[i].Arity.Kind != ArityFixed {
			continue
		}
		fixed := make([]SortSpec, len(b.constructs[i].Arity.Fixed))
		copy(fixed, b.constructs[i].Arity.Fixed)
		for j := range fixed {
			fixed[j].Names = append(append([]string(nil), fixed[j].Names...), HoleConstructName)
		}
		b.constructs[i].Arity.Fixed = fixed
	}
	return b.addConstruct(ConstructSpec{
		Name:  HoleConstructName,
		Arity: ArityKey{Kind: ArityFixed},
	})
}

// build runs the full two-phase compile: inject builtins, resolve the
// root, deduplicate sorts, and compile every construct's arity.
func (b *grammarBuilder) build() (*Grammar, error) {
	if err := b.injectHole(); err != nil {
		return nil, err
	}

	rootIdx, ok := b.constructIdx[b.rootName]
	if !ok {
		return nil, b.wrap(ErrUndefinedConstruct, "", b.rootName)
	}
	if b.constructs[rootIdx].Arity.Kind == ArityTexty {
		return nil, b.wrap(ErrTextyRoot, b.rootName, "")
	}

	g := &Grammar{
		Name:           b.language,
		RootConstruct:  ConstructID(rootIdx),
		HoleConstruct:  ConstructID(b.constructIdx[HoleConstructName]),
		constructIndex: make(map[string]ConstructID, len(b.constructs)),
		keymap:         make(map[rune]ConstructID),
	}

	for _, c := range b.constructs {
		arity, err := b.compileArity(g, c.Arity)
		if err != nil {
			return nil, b.wrap(err, c.Name, "")
		}
		pattern, err := b.compileTextPattern(c)
		if err != nil {
			return nil, b.wrap(err, c.Name, c.TextPattern)
		}
		id := ConstructID(len(g.Constructs))
		if c.Key != 0 {
			if other, dup := g.keymap[c.Key]; dup {
				return nil, b.wrap(ErrDuplicateKey, c.Name, string([]rune{c.Key})+" already bound to "+g.Constructs[other].Name)
			}
			g.keymap[c.Key] = id
		}
		g.constructIndex[c.Name] = id
		g.Constructs = append(g.Constructs, Construct{
			Name:          c.Name,
			Arity:         arity,
			IsCommentOrWs: c.IsCommentOrWs,
			Key:           c.Key,
			TextPattern:   pattern,
		})
	}
	return g, nil
}

// compileTextPattern anchors and compiles c's TextPattern, if any.
func (b *grammarBuilder) compileTextPattern(c ConstructSpec) (*regexp.Regexp, error) {
	if c.Arity.Kind != ArityTexty || c.TextPattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile("^(?:" + c.TextPattern + ")$")
	if err != nil {
		return nil, ErrInvalidTextPattern
	}
	return re, nil
}

func (b *grammarBuilder) compileArity(g *Grammar, a ArityKey) (Arity, error) {
	switch a.Kind {
	case ArityTexty:
		return Arity{Kind: ArityTexty}, nil
	case ArityFixed:
		ids := make([]SortID, len(a.Fixed))
		for i, s := range a.Fixed {
			id, err := b.compileSort(g, s)
			if err != nil {
				return Arity{}, err
			}
			ids[i] = id
		}
		return Arity{Kind: ArityFixed, Fixed: ids}, nil
	case ArityListy:
		id, err := b.compileSort(g, a.Listy)
		if err != nil {
			return Arity{}, err
		}
		return Arity{Kind: ArityListy, Listy: id}, nil
	default:
		return Arity{}, ErrUndefinedConstructOrSort
	}
}

// compileSort flattens a SortSpec's names (which may themselves name
// other sorts) into a single ConstructID bitset, then deduplicates
// against already-compiled sorts (spec.md §4.C "Sort compilation...").
func (b *grammarBuilder) compileSort(g *Grammar, spec SortSpec) (SortID, error) {
	var bits bitset
	stack := append([]string(nil), spec.Names...)
	seen := make(map[string]bool)
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[name] {
			continue
		}
		seen[name] = true
		if idx, ok := b.constructIdx[name]; ok {
			bits.set(idx)
			continue
		}
		if child, ok := b.namedSorts[name]; ok {
			stack = append(stack, child.Names...)
			continue
		}
		return noSort, &CompileError{Cause: ErrUndefinedConstructOrSort, Language: b.language, Detail: name}
	}

	for id := range g.Sorts {
		if g.Sorts[id].bits.equal(&bits) {
			return SortID(id), nil
		}
	}
	id := SortID(len(g.Sorts))
	g.Sorts = append(g.Sorts, Sort{bits: bits})
	return id, nil
}

// compileNotationSet resolves a NotationSetSpec against an already
// compiled Grammar: every construct must have exactly one notation, and
// every notation must name a real construct (spec.md §4.C), mirroring
// original_source/src/language/compiled.rs's compile_notation_set.
func compileNotationSet(language string, grammar *Grammar, spec NotationSetSpec) (*NotationSet, error) {
	byName := make(map[string]*style.Notation, len(spec.Notations))
	for _, nn := range spec.Notations {
		if _, dup := byName[nn.ConstructName]; dup {
			return nil, &CompileError{Cause: ErrDuplicateNotation, Language: language, Construct: nn.ConstructName, Detail: spec.Name}
		}
		byName[nn.ConstructName] = nn.Notation
	}

	hole := style.Styled(style.Hole(), style.Lit(defaultHoleLiteral))
	if _, ok := byName[HoleConstructName]; !ok {
		byName[HoleConstructName] = hole
	}

	notations := make([]*style.Notation, len(grammar.Constructs))
	for i, c := range grammar.Constructs {
		n, ok := byName[c.Name]
		if !ok {
			return nil, &CompileError{Cause: ErrMissingNotation, Language: language, Construct: c.Name, Detail: spec.Name}
		}
		if err := validateNotation(n, &grammar.Constructs[i]); err != nil {
			return nil, &CompileError{Cause: ErrInvalidNotation, Language: language, Construct: c.Name, Detail: err.Error()}
		}
		notations[i] = n
		delete(byName, c.Name)
	}

	for leftover := range byName {
		return nil, &CompileError{Cause: ErrUndefinedNotation, Language: language, Construct: leftover, Detail: spec.Name}
	}

	return &NotationSet{Name: spec.Name, Notations: notations}, nil
}

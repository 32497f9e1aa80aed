// Package langfile implements the declarative Language File Format
// described in spec.md §6: a language's grammar, sorts, root construct,
// and display notation, as a YAML document loaded with
// gopkg.in/yaml.v3, compiled into an internal/lang.LanguageSpec and
// registered against a lang.Storage.
//
// The shape mirrors vartan's own "declarative source, compiled once"
// split (grammar.Grammar built from a parsed .vr file, then
// grammar.Compile'd into a spec.CompiledGrammar): a File is the raw
// decoded document, Compile resolves it into the same LanguageSpec shape
// internal/lang.Storage.Register already accepts.
package langfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/style"
)

// File is the top-level shape of a language file.
type File struct {
	Name                 string       `yaml:"name"`
	FileExtensions       []string     `yaml:"file_extensions,omitempty"`
	HoleDisplayName      string       `yaml:"hole_display_name,omitempty"`
	Grammar              Grammar      `yaml:"grammar"`
	DefaultDisplayNotation NotationSet `yaml:"default_display_notation"`
	SourceNotation       *NotationSet `yaml:"source_notation,omitempty"`
}

// Grammar mirrors spec.md §6's "grammar: { constructs, sorts,
// root_construct }".
type Grammar struct {
	Constructs    []Construct `yaml:"constructs"`
	Sorts         []Sort      `yaml:"sorts,omitempty"`
	RootConstruct string      `yaml:"root_construct"`
}

// Construct mirrors one entry of spec.md §6's
// "{name, arity, is_comment_or_ws, key?}".
type Construct struct {
	Name          string `yaml:"name"`
	Arity         Arity  `yaml:"arity"`
	IsCommentOrWs bool   `yaml:"is_comment_or_ws,omitempty"`
	Key           string `yaml:"key,omitempty"` // a single character, or empty for "no shortcut"
	TextPattern   string `yaml:"text_pattern,omitempty"`
}

// Arity is a YAML-friendly stand-in for lang.ArityKey's Go sum type:
// Kind selects which of Fixed/Listy applies, the same tagged-struct
// technique internal/style.Notation uses for the same reason (YAML, like
// Go, has no native sum types).
type Arity struct {
	Kind  string   `yaml:"kind"` // "texty", "fixed", or "listy"
	Fixed []Sort   `yaml:"fixed,omitempty"`
	Listy *Sort    `yaml:"listy,omitempty"`
}

// Sort mirrors spec.md §6's "sorts: [(name, [member_names])]" — used
// both for a grammar's top-level named sorts and inline, anonymously, as
// an arity's per-slot or listy sort reference.
type Sort struct {
	Name    string   `yaml:"name,omitempty"`
	Members []string `yaml:"members"`
}

// NotationSet mirrors spec.md §6's
// "{ name, notations: [(construct_name, Notation)] }".
type NotationSet struct {
	Name      string           `yaml:"name"`
	Notations []NamedNotation  `yaml:"notations"`
}

type NamedNotation struct {
	Construct string   `yaml:"construct"`
	Notation  Notation `yaml:"notation"`
}

// Notation is a YAML-friendly stand-in for style.Notation's Go sum type,
// one field per NotationKind's payload, selected by Kind. See
// style.Notation's doc comment for why a tagged struct is this
// codebase's native way to express a sum type without a variant.
type Notation struct {
	Kind string `yaml:"kind"`

	Text string `yaml:"text,omitempty"` // literal

	Child int `yaml:"child,omitempty"` // child

	Left  *Notation `yaml:"left,omitempty"`  // follow, vert, if_empty_text (then), if_condition (then)
	Right *Notation `yaml:"right,omitempty"` // follow, vert, if_empty_text (else), if_condition (else)

	Inner *Notation `yaml:"inner,omitempty"` // no_wrap, focus_mark, styled

	Choices []Notation `yaml:"choices,omitempty"`

	Condition string `yaml:"condition,omitempty"` // if_condition: "is_empty_text", "is_invalid_text", "is_comment_or_ws", "needs_separator"
	Label     string `yaml:"label,omitempty"`     // styled: "open", "close", "hole"

	Repeat *RepeatNotation `yaml:"repeat,omitempty"`
}

// RepeatNotation mirrors style.RepeatNotation.
type RepeatNotation struct {
	Empty    Notation `yaml:"empty"`
	Lone     Notation `yaml:"lone"`
	Join     Notation `yaml:"join"`
	Surround Notation `yaml:"surround"`
}

// Decode parses a language file's raw YAML bytes into a File, ready for
// Compile. Decoding and compiling are kept separate so callers (notably
// tests) can construct a File by hand without going through YAML at all.
func Decode(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("decoding language file: %w", err)
	}
	return f, nil
}

// Load decodes and compiles a language file in one step but does not
// register it -- callers still call s.Register(spec) themselves, the way
// internal/parser/jsonparser.RegisterLanguage does for the builtin JSON
// language, so that load errors and compile errors are both surfaced
// before anything is registered against a Storage.
func Load(data []byte) (lang.LanguageSpec, error) {
	f, err := Decode(data)
	if err != nil {
		return lang.LanguageSpec{}, err
	}
	return Compile(f)
}

// Compile resolves a decoded File into the LanguageSpec shape
// internal/lang.Storage.Register accepts. It does not itself register
// anything -- callers are expected to call s.Register(spec) and handle
// the resulting lang.CompileError the same way any other LanguageSpec's
// errors are handled.
func Compile(f File) (lang.LanguageSpec, error) {
	grammar, err := compileGrammar(f.Grammar)
	if err != nil {
		return lang.LanguageSpec{}, err
	}
	display, err := compileNotationSet(f.DefaultDisplayNotation)
	if err != nil {
		return lang.LanguageSpec{}, err
	}
	spec := lang.LanguageSpec{
		Name:            f.Name,
		Grammar:         grammar,
		DisplayNotation: display,
		FileExtensions:  f.FileExtensions,
		HoleDisplayName: f.HoleDisplayName,
	}
	if f.SourceNotation != nil {
		source, err := compileNotationSet(*f.SourceNotation)
		if err != nil {
			return lang.LanguageSpec{}, err
		}
		spec.SourceNotation = &source
	}
	return spec, nil
}

func compileGrammar(g Grammar) (lang.GrammarSpec, error) {
	constructs := make([]lang.ConstructSpec, len(g.Constructs))
	for i, c := range g.Constructs {
		arity, err := compileArity(c.Arity)
		if err != nil {
			return lang.GrammarSpec{}, fmt.Errorf("construct %q: %w", c.Name, err)
		}
		var key rune
		if c.Key != "" {
			runes := []rune(c.Key)
			if len(runes) != 1 {
				return lang.GrammarSpec{}, fmt.Errorf("construct %q: key must be exactly one character, got %q", c.Name, c.Key)
			}
			key = runes[0]
		}
		constructs[i] = lang.ConstructSpec{
			Name:          c.Name,
			Arity:         arity,
			IsCommentOrWs: c.IsCommentOrWs,
			Key:           key,
			TextPattern:   c.TextPattern,
		}
	}
	sorts := make([]lang.NamedSort, len(g.Sorts))
	for i, s := range g.Sorts {
		sorts[i] = lang.NamedSort{Name: s.Name, Sort: lang.SortSpec{Names: s.Members}}
	}
	return lang.GrammarSpec{
		Constructs:    constructs,
		Sorts:         sorts,
		RootConstruct: g.RootConstruct,
	}, nil
}

func compileArity(a Arity) (lang.ArityKey, error) {
	switch a.Kind {
	case "texty":
		return lang.ArityKey{Kind: lang.ArityTexty}, nil
	case "fixed":
		fixed := make([]lang.SortSpec, len(a.Fixed))
		for i, s := range a.Fixed {
			fixed[i] = lang.SortSpec{Names: s.Members}
		}
		return lang.ArityKey{Kind: lang.ArityFixed, Fixed: fixed}, nil
	case "listy":
		if a.Listy == nil {
			return lang.ArityKey{}, fmt.Errorf("listy arity requires a \"listy\" sort reference")
		}
		return lang.ArityKey{Kind: lang.ArityListy, Listy: lang.SortSpec{Names: a.Listy.Members}}, nil
	default:
		return lang.ArityKey{}, fmt.Errorf("unknown arity kind %q (want texty, fixed, or listy)", a.Kind)
	}
}

func compileNotationSet(ns NotationSet) (lang.NotationSetSpec, error) {
	notations := make([]lang.NamedNotation, len(ns.Notations))
	for i, nn := range ns.Notations {
		n, err := compileNotation(nn.Notation)
		if err != nil {
			return lang.NotationSetSpec{}, fmt.Errorf("notation for construct %q: %w", nn.Construct, err)
		}
		notations[i] = lang.NamedNotation{ConstructName: nn.Construct, Notation: n}
	}
	return lang.NotationSetSpec{Name: ns.Name, Notations: notations}, nil
}

func compileNotation(n Notation) (*style.Notation, error) {
	switch n.Kind {
	case "empty":
		return style.Empty(), nil
	case "literal":
		return style.Lit(n.Text), nil
	case "text":
		return style.Text(), nil
	case "child":
		return style.Child(n.Child), nil
	case "follow":
		return compileBinary(n, style.Follow)
	case "vert":
		return compileBinary(n, style.Vert)
	case "no_wrap":
		inner, err := compileRequiredInner(n)
		if err != nil {
			return nil, err
		}
		return style.NoWrap(inner), nil
	case "choice":
		choices := make([]*style.Notation, len(n.Choices))
		for i, c := range n.Choices {
			compiled, err := compileNotation(c)
			if err != nil {
				return nil, err
			}
			choices[i] = compiled
		}
		return style.Choice(choices...), nil
	case "if_empty_text":
		return compileBinary(n, style.IfEmptyText)
	case "if_condition":
		cond, err := compileCondition(n.Condition)
		if err != nil {
			return nil, err
		}
		then, err := compileRequiredLeft(n)
		if err != nil {
			return nil, err
		}
		els, err := compileRequiredRight(n)
		if err != nil {
			return nil, err
		}
		return style.IfCondition(cond, then, els), nil
	case "repeat":
		if n.Repeat == nil {
			return nil, fmt.Errorf("repeat notation requires a \"repeat\" block")
		}
		empty, err := compileNotation(n.Repeat.Empty)
		if err != nil {
			return nil, err
		}
		lone, err := compileNotation(n.Repeat.Lone)
		if err != nil {
			return nil, err
		}
		join, err := compileNotation(n.Repeat.Join)
		if err != nil {
			return nil, err
		}
		surround, err := compileNotation(n.Repeat.Surround)
		if err != nil {
			return nil, err
		}
		return style.Repeat(style.RepeatNotation{Empty: empty, Lone: lone, Join: join, Surround: surround}), nil
	case "left":
		return style.LeftLeaf(), nil
	case "right":
		return style.RightLeaf(), nil
	case "surrounded":
		return style.SurroundedLeaf(), nil
	case "focus_mark":
		inner, err := compileRequiredInner(n)
		if err != nil {
			return nil, err
		}
		return style.FocusMark(inner), nil
	case "styled":
		label, err := compileLabel(n.Label)
		if err != nil {
			return nil, err
		}
		inner, err := compileRequiredInner(n)
		if err != nil {
			return nil, err
		}
		return style.Styled(label, inner), nil
	default:
		return nil, fmt.Errorf("unknown notation kind %q", n.Kind)
	}
}

func compileBinary(n Notation, join func(a, b *style.Notation) *style.Notation) (*style.Notation, error) {
	left, err := compileRequiredLeft(n)
	if err != nil {
		return nil, err
	}
	right, err := compileRequiredRight(n)
	if err != nil {
		return nil, err
	}
	return join(left, right), nil
}

func compileRequiredLeft(n Notation) (*style.Notation, error) {
	if n.Left == nil {
		return nil, fmt.Errorf("%q notation requires \"left\"", n.Kind)
	}
	return compileNotation(*n.Left)
}

func compileRequiredRight(n Notation) (*style.Notation, error) {
	if n.Right == nil {
		return nil, fmt.Errorf("%q notation requires \"right\"", n.Kind)
	}
	return compileNotation(*n.Right)
}

func compileRequiredInner(n Notation) (*style.Notation, error) {
	if n.Inner == nil {
		return nil, fmt.Errorf("%q notation requires \"inner\"", n.Kind)
	}
	return compileNotation(*n.Inner)
}

func compileCondition(name string) (style.Condition, error) {
	switch name {
	case "is_empty_text":
		return style.IsEmptyText(), nil
	case "is_invalid_text":
		return style.IsInvalidText(), nil
	case "is_comment_or_ws":
		return style.IsCommentOrWs(), nil
	case "needs_separator":
		return style.NeedsSeparator(), nil
	default:
		return style.Condition{}, fmt.Errorf("unknown condition %q", name)
	}
}

func compileLabel(name string) (style.StyleLabel, error) {
	switch name {
	case "open":
		return style.Open(), nil
	case "close":
		return style.Close(), nil
	case "hole":
		return style.Hole(), nil
	default:
		return style.StyleLabel{}, fmt.Errorf("unknown style label %q", name)
	}
}

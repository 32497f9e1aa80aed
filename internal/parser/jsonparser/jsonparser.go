// Package jsonparser implements synless-go's one built-in source-text
// frontend: JSON. Grounded directly on
// original_source/src/parsing/json_parser.rs, with the serde_json
// dependency it wraps replaced by a hand-written scanner (tokenizer.go)
// ported from original_source/src/parsing/json_tokenizer.rs, since no
// third-party JSON library appears anywhere in the retrieved examples
// and the grammar is small enough to scan directly, the way the
// original's own tokenizer does.
package jsonparser

import (
	"github.com/synless-editor/synless/internal/bug"
	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/node"
	"github.com/synless-editor/synless/internal/parser"
	"github.com/synless-editor/synless/internal/style"
)

// LanguageName is the name under which RegisterLanguage registers the
// builtin JSON grammar.
const LanguageName = "Json"

const (
	constructNull       = "Null"
	constructFalse      = "False"
	constructTrue       = "True"
	constructString     = "String"
	constructNumber     = "Number"
	constructArray      = "Array"
	constructObjectPair = "ObjectPair"
	constructObject     = "Object"
	constructDocument   = "Document"
	sortValue           = "Value"
)

// RegisterLanguage compiles and registers the builtin JSON language
// (spec.md §6's notion of a language that ships with the editor rather
// than being loaded from an internal/langfile document) against s, and
// returns a handle to it.
func RegisterLanguage(s *lang.Storage) (lang.LanguageRef, error) {
	grammar := lang.GrammarSpec{
		Constructs: []lang.ConstructSpec{
			{Name: constructNull, Arity: lang.ArityKey{Kind: lang.ArityFixed}},
			{Name: constructFalse, Arity: lang.ArityKey{Kind: lang.ArityFixed}},
			{Name: constructTrue, Arity: lang.ArityKey{Kind: lang.ArityFixed}},
			{Name: constructString, Arity: lang.ArityKey{Kind: lang.ArityTexty}},
			{Name: constructNumber, Arity: lang.ArityKey{Kind: lang.ArityTexty}},
			{
				Name:  constructArray,
				Arity: lang.ArityKey{Kind: lang.ArityListy, Listy: lang.SortSpec{Names: []string{sortValue}}},
			},
			{
				Name: constructObjectPair,
				Arity: lang.ArityKey{Kind: lang.ArityFixed, Fixed: []lang.SortSpec{
					{Names: []string{constructString}},
					{Names: []string{sortValue}},
				}},
			},
			{
				Name:  constructObject,
				Arity: lang.ArityKey{Kind: lang.ArityListy, Listy: lang.SortSpec{Names: []string{constructObjectPair}}},
			},
			{
				Name:  constructDocument,
				Arity: lang.ArityKey{Kind: lang.ArityFixed, Fixed: []lang.SortSpec{{Names: []string{sortValue}}}},
			},
		},
		Sorts: []lang.NamedSort{
			{Name: sortValue, Sort: lang.SortSpec{Names: []string{
				constructNull, constructFalse, constructTrue,
				constructString, constructNumber, constructArray, constructObject,
			}}},
		},
		RootConstruct: constructDocument,
	}

	join := style.Follow(style.LeftLeaf(), style.Follow(style.Lit(", "), style.RightLeaf()))
	notations := []lang.NamedNotation{
		{ConstructName: constructNull, Notation: style.Lit("null")},
		{ConstructName: constructFalse, Notation: style.Lit("false")},
		{ConstructName: constructTrue, Notation: style.Lit("true")},
		{ConstructName: constructString, Notation: style.Follow(style.Lit(`"`), style.Follow(style.Text(), style.Lit(`"`)))},
		{ConstructName: constructNumber, Notation: style.Text()},
		{ConstructName: constructArray, Notation: style.Repeat(style.RepeatNotation{
			Empty:    style.Lit("[]"),
			Lone:     style.Follow(style.Lit("["), style.Follow(style.Child(0), style.Lit("]"))),
			Join:     join,
			Surround: style.Follow(style.Lit("["), style.Follow(style.SurroundedLeaf(), style.Lit("]"))),
		})},
		{ConstructName: constructObjectPair, Notation: style.Follow(style.Child(0), style.Follow(style.Lit(": "), style.Child(1)))},
		{ConstructName: constructObject, Notation: style.Repeat(style.RepeatNotation{
			Empty:    style.Lit("{}"),
			Lone:     style.Follow(style.Lit("{"), style.Follow(style.Child(0), style.Lit("}"))),
			Join:     join,
			Surround: style.Follow(style.Lit("{"), style.Follow(style.SurroundedLeaf(), style.Lit("}"))),
		})},
		{ConstructName: constructDocument, Notation: style.Child(0)},
	}

	id, err := s.Register(lang.LanguageSpec{
		Name:            LanguageName,
		Grammar:         grammar,
		DisplayNotation: lang.NotationSetSpec{Name: "default", Notations: notations},
		FileExtensions:  []string{".json"},
	})
	if err != nil {
		return lang.LanguageRef{}, err
	}
	return lang.LanguageRef{ID: id}, nil
}

// Parser is the parser.Parser implementation registered under the name
// "BuiltinJsonParser" in the original. It requires the Json language to
// already be registered against the target Storage (via RegisterLanguage
// or equivalently through internal/langfile).
type Parser struct{}

// New constructs the builtin JSON frontend.
func New() *Parser { return &Parser{} }

func (*Parser) Name() string { return "BuiltinJsonParser" }

func (*Parser) Parse(s *node.Storage, fileName, source string) (node.Node, error) {
	jsonLang, ok := s.Lang.LanguageByName(LanguageName)
	if !ok {
		return node.Node{}, parser.WithoutLocation(fileName, "the \"Json\" language is not registered on this Storage")
	}
	l := lang.LanguageRef{ID: jsonLang}

	t := newTokenizer(fileName, source)
	value, err := parseValue(s, l, t)
	if err != nil {
		return node.Node{}, err
	}
	t.consumeWhitespace()
	if t.offset < len(t.source) {
		return node.Node{}, t.errorAt(t.pos(), "Unexpected trailing content after JSON value.", "unexpected")
	}

	doc, ok := l.ConstructByName(s.Lang, constructDocument)
	if !ok {
		bug.Bugf("Json language missing its Document construct")
	}
	root := node.New(s, doc)
	hole, _ := root.FirstChild(s)
	if !hole.Swap(s, value) {
		bug.Bugf("wrong arity building Json Document root")
	}
	return root, nil
}

// parseValue consumes exactly one JSON value from t and builds the node
// tree for it, the way json_parser.rs's json_to_node walks a
// pre-parsed serde_json::Value -- collapsed here into a single recursive
// descent over the token stream, since this frontend has no separate
// "parse to an intermediate value" step.
func parseValue(s *node.Storage, l lang.LanguageRef, t *tokenizer) (node.Node, error) {
	tok, err := t.next()
	if err != nil {
		return node.Node{}, err
	}
	return buildValue(s, l, t, tok)
}

func buildValue(s *node.Storage, l lang.LanguageRef, t *tokenizer, tok token) (node.Node, error) {
	switch tok.kind {
	case tokNull:
		return newLeaf(s, l, constructNull), nil
	case tokFalse:
		return newLeaf(s, l, constructFalse), nil
	case tokTrue:
		return newLeaf(s, l, constructTrue), nil
	case tokNumber, tokString:
		name := constructNumber
		if tok.kind == tokString {
			name = constructString
		}
		n := newLeaf(s, l, name)
		text, _ := n.Text(s)
		text.Set(tok.text)
		return n, nil
	case tokStartArray:
		return parseArray(s, l, t)
	case tokStartObject:
		return parseObject(s, l, t)
	default:
		return node.Node{}, t.errorAt(tok.pos, "Expected JSON value.", "invalid")
	}
}

func parseArray(s *node.Storage, l lang.LanguageRef, t *tokenizer) (node.Node, error) {
	arr := newLeaf(s, l, constructArray)
	first := true
	for {
		tok, err := t.next()
		if err != nil {
			return node.Node{}, err
		}
		if tok.kind == tokEndArray {
			return arr, nil
		}
		if !first {
			if tok.kind != tokComma {
				return node.Node{}, t.errorAt(tok.pos, "Expected ',' or ']'.", "invalid")
			}
			tok, err = t.next()
			if err != nil {
				return node.Node{}, err
			}
		}
		first = false
		elem, err := buildValue(s, l, t, tok)
		if err != nil {
			return node.Node{}, err
		}
		if !arr.InsertLastChild(s, elem) {
			bug.Bugf("wrong arity inserting Json Array element")
		}
	}
}

func parseObject(s *node.Storage, l lang.LanguageRef, t *tokenizer) (node.Node, error) {
	obj := newLeaf(s, l, constructObject)
	first := true
	for {
		tok, err := t.next()
		if err != nil {
			return node.Node{}, err
		}
		if tok.kind == tokEndObject {
			return obj, nil
		}
		if !first {
			if tok.kind != tokComma {
				return node.Node{}, t.errorAt(tok.pos, "Expected ',' or '}'.", "invalid")
			}
			tok, err = t.next()
			if err != nil {
				return node.Node{}, err
			}
		}
		first = false
		if tok.kind != tokString {
			return node.Node{}, t.errorAt(tok.pos, "Expected object key.", "invalid")
		}
		key := newLeaf(s, l, constructString)
		keyText, _ := key.Text(s)
		keyText.Set(tok.text)

		colon, err := t.next()
		if err != nil {
			return node.Node{}, err
		}
		if colon.kind != tokColon {
			return node.Node{}, t.errorAt(colon.pos, "Expected ':'.", "invalid")
		}
		value, err := parseValue(s, l, t)
		if err != nil {
			return node.Node{}, err
		}
		pairConstruct, ok := l.ConstructByName(s.Lang, constructObjectPair)
		if !ok {
			bug.Bugf("Json language missing its ObjectPair construct")
		}
		pair := node.New(s, pairConstruct)
		first1, _ := pair.FirstChild(s)
		if !first1.Swap(s, key) {
			bug.Bugf("wrong arity building Json ObjectPair key")
		}
		second, _ := pair.NthChild(s, 1)
		if !second.Swap(s, value) {
			bug.Bugf("wrong arity building Json ObjectPair value")
		}
		if !obj.InsertLastChild(s, pair) {
			bug.Bugf("wrong arity inserting Json Object pair")
		}
	}
}

func newLeaf(s *node.Storage, l lang.LanguageRef, constructName string) node.Node {
	c, ok := l.ConstructByName(s.Lang, constructName)
	if !ok {
		bug.Bugf("Json language missing its %s construct", constructName)
	}
	return node.New(s, c)
}

// Package langtest provides golden-tree test helpers: a tiny textual
// notation for describing an expected node tree, and a structural diff
// between an expected tree and the tree a test actually produced.
//
// Mirrors vartan's own spec/test package (spec/test/parser.go's Tree,
// NewNonTerminalTree/NewTerminalNode, and DiffTree), generalized from its
// generated-grammar-driven parser to a small hand-written one, since
// synless-go has no LALR grammar compiler to generate one from (see
// DESIGN.md's "Deleted / trimmed teacher modules").
package langtest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/node"
)

// Tree is the expected (or, via FromNode, actual) shape of one subtree: a
// construct name, its text if it is a texty leaf, and its children
// otherwise.
type Tree struct {
	Kind     string
	Text     string
	IsTexty  bool
	Children []*Tree
}

// Leaf describes an expected texty node.
func Leaf(kind, text string) *Tree {
	return &Tree{Kind: kind, Text: text, IsTexty: true}
}

// Branch describes an expected non-texty node (Fixed or Listy) and its
// children in order.
func Branch(kind string, children ...*Tree) *Tree {
	return &Tree{Kind: kind, Children: children}
}

// FromNode walks a live node.Node tree into a Tree, for comparison
// against an expected golden Tree via DiffTree.
func FromNode(s *node.Storage, n node.Node) *Tree {
	kind := n.Construct(s).Name(s.Lang)
	if txt, ok := n.Text(s); ok {
		return Leaf(kind, txt.Source())
	}
	numChildren, _ := n.NumChildren(s)
	children := make([]*Tree, numChildren)
	for i := range children {
		child, _ := n.NthChild(s, i)
		children[i] = FromNode(s, child)
	}
	return Branch(kind, children...)
}

// Build materializes a Tree into a fresh node.Node tree, resolving each
// Kind against l. Fixed-arity constructs' pre-populated hole children are
// Swap'd out in order; Listy constructs have their children inserted.
func Build(s *node.Storage, l lang.LanguageRef, tree *Tree) node.Node {
	c, ok := l.ConstructByName(s.Lang, tree.Kind)
	if !ok {
		panic(fmt.Sprintf("langtest: no construct named %q in this language", tree.Kind))
	}
	n := node.New(s, c)
	if tree.IsTexty {
		txt, ok := n.Text(s)
		if !ok {
			panic(fmt.Sprintf("langtest: construct %q is not texty but a leaf was requested", tree.Kind))
		}
		txt.Set(tree.Text)
		return n
	}
	if c.IsFixed(s.Lang) {
		for i, childTree := range tree.Children {
			slot, ok := n.NthChild(s, i)
			if !ok {
				panic(fmt.Sprintf("langtest: construct %q has fewer slots than the expected tree provides children", tree.Kind))
			}
			child := Build(s, l, childTree)
			if !slot.Swap(s, child) {
				panic(fmt.Sprintf("langtest: failed to fill slot %d of construct %q", i, tree.Kind))
			}
		}
		return n
	}
	for _, childTree := range tree.Children {
		child := Build(s, l, childTree)
		if !n.InsertLastChild(s, child) {
			panic(fmt.Sprintf("langtest: failed to append child to listy construct %q", tree.Kind))
		}
	}
	return n
}

// Diff reports every structural mismatch between expected and actual,
// each tagged with the dotted path ("Root.[1]Child") to where it occurs --
// the same path format as vartan's TreeDiff.ExpectedPath/ActualPath,
// collapsed to a single string since tests only need it for a failure
// message.
func Diff(expected, actual *Tree) []string {
	return diffAt("", expected, actual)
}

func diffAt(path string, expected, actual *Tree) []string {
	if expected == nil && actual == nil {
		return nil
	}
	if expected == nil || actual == nil {
		return []string{fmt.Sprintf("%s: expected and actual disagree on presence", path)}
	}
	here := path + expected.Kind
	if expected.Kind != "_" && expected.Kind != actual.Kind {
		return []string{fmt.Sprintf("%s: expected kind %q but got %q", here, expected.Kind, actual.Kind)}
	}
	if expected.IsTexty != actual.IsTexty {
		return []string{fmt.Sprintf("%s: expected IsTexty=%v but got %v", here, expected.IsTexty, actual.IsTexty)}
	}
	if expected.IsTexty {
		if expected.Text != actual.Text {
			return []string{fmt.Sprintf("%s: expected text %q but got %q", here, expected.Text, actual.Text)}
		}
		return nil
	}
	if len(expected.Children) != len(actual.Children) {
		return []string{fmt.Sprintf("%s: expected %d children but got %d", here, len(expected.Children), len(actual.Children))}
	}
	var diffs []string
	for i, exp := range expected.Children {
		childPath := fmt.Sprintf("%s.[%d]", here, i)
		diffs = append(diffs, diffAt(childPath, exp, actual.Children[i])...)
	}
	return diffs
}

// Parse reads the tiny S-expression notation "(Kind)", "(Kind \"text\")",
// or "(Kind child child...)" into a Tree, so golden trees can be written
// as readable literals in test source instead of nested Branch/Leaf calls.
func Parse(src string) (*Tree, error) {
	p := &parser{src: src}
	p.skipSpace()
	tree, err := p.parseTree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("langtest: unexpected trailing content at offset %d", p.pos)
	}
	return tree, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\n' || p.src[p.pos] == '\t' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) parseTree() (*Tree, error) {
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return nil, fmt.Errorf("langtest: expected '(' at offset %d", p.pos)
	}
	p.pos++
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.src) && isKindRune(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("langtest: expected a construct name at offset %d", start)
	}
	kind := p.src[start:p.pos]

	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '"' {
		text, err := p.parseQuoted()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expectClose(); err != nil {
			return nil, err
		}
		return Leaf(kind, text), nil
	}

	var children []*Tree
	for {
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ')' {
			p.pos++
			return Branch(kind, children...), nil
		}
		child, err := p.parseTree()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (p *parser) expectClose() error {
	if p.pos >= len(p.src) || p.src[p.pos] != ')' {
		return fmt.Errorf("langtest: expected ')' at offset %d", p.pos)
	}
	p.pos++
	return nil
}

func (p *parser) parseQuoted() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '"':
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return "", fmt.Errorf("langtest: unterminated escape in string starting at offset %d", start)
			}
			switch p.src[p.pos] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"', '\\':
				b.WriteByte(p.src[p.pos])
			default:
				r, err := strconv.Unquote(`"\` + string(p.src[p.pos]) + `"`)
				if err != nil {
					return "", fmt.Errorf("langtest: invalid escape %q at offset %d", p.src[p.pos], p.pos)
				}
				b.WriteString(r)
			}
			p.pos++
		default:
			b.WriteByte(p.src[p.pos])
			p.pos++
		}
	}
	return "", fmt.Errorf("langtest: unterminated string starting at offset %d", start)
}

func isKindRune(b byte) bool {
	return b != ' ' && b != '\t' && b != '\n' && b != '\r' && b != '(' && b != ')' && b != '"'
}

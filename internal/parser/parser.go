// Package parser defines the plug-in contract source-text frontends
// implement (spec.md §6) and a small registry for looking one up by
// name. Grounded on original_source/src/parsing/mod.rs's Parse trait and
// its free-standing preprocess/postprocess hole-syntax helpers; the
// registry's functional-options Parse call mirrors the
// config-struct-plus-option-funcs shape of vartan's own
// grammar.CompileOption / driver.ParserOption.
package parser

import (
	"fmt"
	"strings"

	"github.com/synless-editor/synless/internal/bug"
	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/node"
)

// Parser turns source text into a tree rooted in a construct of its
// language. Implementations are external collaborators (spec.md §1); the
// core only defines the contract and the one built-in JSON frontend.
type Parser interface {
	Name() string
	Parse(s *node.Storage, fileName, source string) (node.Node, error)
}

// Registry looks up a Parser by name, the way a caller picks a frontend
// for a file's language.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry builds a Registry seeded with the given parsers.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{parsers: make(map[string]Parser, len(parsers))}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Register adds or replaces the parser under its own Name().
func (r *Registry) Register(p Parser) {
	r.parsers[p.Name()] = p
}

// Lookup returns the parser registered under name, if any.
func (r *Registry) Lookup(name string) (Parser, bool) {
	p, ok := r.parsers[name]
	return p, ok
}

type parseConfig struct {
	invalidHoleSyntax string
	validHoleSyntax   string
	holeText          string
}

// ParseOption configures hole-syntax handling around a Parse call.
type ParseOption func(*parseConfig)

// WithHoleSyntax rewrites every occurrence of invalidHoleSyntax in the
// source to validHoleSyntax before handing it to the underlying parser
// (so a syntax the target language can't otherwise express, e.g. a bare
// "$hole" token, can round-trip through a standard parser), and, after
// parsing, replaces every texty node whose text is exactly holeText with
// a real hole node (or deletes it, if its parent is listy and so can't
// hold a hole at all).
func WithHoleSyntax(invalidHoleSyntax, validHoleSyntax, holeText string) ParseOption {
	return func(c *parseConfig) {
		c.invalidHoleSyntax = invalidHoleSyntax
		c.validHoleSyntax = validHoleSyntax
		c.holeText = holeText
	}
}

// Parse looks up the named parser and runs it, applying any hole-syntax
// preprocessing/postprocessing the caller requested.
func (r *Registry) Parse(name string, s *node.Storage, fileName, source string, opts ...ParseOption) (node.Node, error) {
	p, ok := r.Lookup(name)
	if !ok {
		return node.Node{}, fmt.Errorf("no parser registered under name %q", name)
	}
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.invalidHoleSyntax != "" {
		source = Preprocess(source, cfg.invalidHoleSyntax, cfg.validHoleSyntax)
	}
	root, err := p.Parse(s, fileName, source)
	if err != nil {
		return node.Node{}, err
	}
	if cfg.holeText != "" {
		Postprocess(s, root, cfg.holeText)
	}
	return root, nil
}

// Preprocess rewrites every occurrence of invalidHoleSyntax in source to
// validHoleSyntax, so a standard parser for the target language can
// accept it.
func Preprocess(source, invalidHoleSyntax, validHoleSyntax string) string {
	return strings.ReplaceAll(source, invalidHoleSyntax, validHoleSyntax)
}

// Postprocess walks root looking for texty nodes whose text is exactly
// holeText. Each match is replaced by a real hole node of the same
// language, unless its parent is listy, in which case a hole can't live
// there at all and the node is deleted outright.
func Postprocess(s *node.Storage, root node.Node, holeText string) {
	root.WalkTree(s, func(n node.Node) {
		text, ok := n.Text(s)
		if !ok || text.Source() != holeText {
			return
		}
		parent, hasParent := n.Parent(s)
		if hasParent && parent.Construct(s).IsListy(s.Lang) {
			n.Detach(s)
			n.DeleteRoot(s)
			return
		}
		hole := node.NewHole(s, lang.LanguageRef{ID: n.Construct(s).Language})
		if !n.Swap(s, hole) {
			bug.Bugf("failed to swap in hole during parser postprocessing")
		}
	})
}

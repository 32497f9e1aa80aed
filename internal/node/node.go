// Package node implements the sort/arity-checked facade over
// internal/forest + internal/lang described in spec.md §4.D: every tree
// mutation consults the relevant Sort bitset before it ever touches the
// forest, so a malformed tree (a string literal under an `if` condition,
// say) cannot be constructed through this API no matter what the caller
// does.
//
// Grounded directly on original_source/src/language/node.rs, whose method
// list this package follows almost 1:1; the facade-over-compiled-table
// shape (a thin typed handle wrapping a raw arena index, with all lookups
// routed through a side table) mirrors vartan's own
// spec.CompiledGrammar-wraps-raw-tables pattern.
package node

import (
	"github.com/synless-editor/synless/internal/forest"
	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/style"
	"github.com/synless-editor/synless/internal/text"
)

// Id is a stable, process-wide identity for a node, distinct from its
// (reusable) forest.NodeIx slot -- for anything that needs to name a
// node outside of the tree it currently lives in. (Bookmark holds the
// forest.NodeIx instead.)
type Id uint64

// data is the payload every forest slot carries.
type data struct {
	id        Id
	construct lang.ConstructRef
	text      *text.Text // non-nil iff the construct is texty
}

// Storage owns every document tree and the compiled languages they refer
// to. It is the "&mut Storage" / "&Storage" threaded through every Node
// method in the original, collapsed into a single receiver the way Go
// idiom prefers over Rust's borrow-split DocStorage.
type Storage struct {
	Lang   *lang.Storage
	forest *forest.Forest[data]
	nextID Id
}

// NewStorage constructs an empty node Storage layered over a fresh
// lang.Storage. The forest's reserved slot-0 dummy carries an
// intentionally inert, never-displayed payload, matching the
// invalid_dummy_node the original allocates for the same reason (slot 0
// must hold *some* D value, but it must never be observed).
func NewStorage() *Storage {
	return &Storage{
		Lang:   lang.NewStorage(),
		forest: forest.New[data](),
	}
}

func (s *Storage) newID() Id {
	id := s.nextID
	s.nextID++
	return id
}

// Node is a typed handle to a tree node. Copying a Node is cheap and
// common; every method takes a *Storage to resolve it, the same
// ownership discipline the original's `Node(NodeIndex)` + `&DocStorage`
// split enforces, adapted to Go's lack of a borrow checker.
type Node struct {
	ix forest.NodeIx
}

// Bookmark is a long-lived reference to a node that might have been
// deleted since it was taken. Use GotoBookmark to resolve it.
type Bookmark struct {
	ix forest.NodeIx
}

// New creates a new, isolated root node of the given construct. A Fixed
// construct is populated with the right number of hole children; a Listy
// construct starts with none; a Texty construct starts with empty text.
func New(s *Storage, construct lang.ConstructRef) Node {
	switch {
	case construct.IsTexty(s.Lang):
		ix := s.forest.NewNode(data{id: s.newID(), construct: construct, text: text.New("", nil)})
		return Node{ix}
	case construct.IsListy(s.Lang):
		ix := s.forest.NewNode(data{id: s.newID(), construct: construct})
		return Node{ix}
	default:
		parent := s.forest.NewNode(data{id: s.newID(), construct: construct})
		fixed := construct.FixedSorts()
		n := fixed.Len(s.Lang)
		hole := lang.LanguageRef{ID: construct.Language}.HoleConstruct(s.Lang)
		for i := 0; i < n; i++ {
			child := s.forest.NewNode(data{id: s.newID(), construct: hole})
			s.forest.InsertLastChild(parent, child)
		}
		return Node{parent}
	}
}

// NewHole creates a new hole node in the given language.
func NewHole(s *Storage, l lang.LanguageRef) Node {
	return New(s, l.HoleConstruct(s.Lang))
}

/* Node data */

// ID returns this node's stable identity.
func (n Node) ID(s *Storage) Id { return s.forest.Data(n.ix).id }

// Construct returns the construct this node was built from.
func (n Node) Construct(s *Storage) lang.ConstructRef { return s.forest.Data(n.ix).construct }

// IsCommentOrWs reports whether this node's construct is tagged as
// comment-or-whitespace (spec.md §3 Construct.is_comment_or_ws).
func (n Node) IsCommentOrWs(s *Storage) bool {
	c := n.Construct(s)
	lng := s.Lang.Language(c.Language)
	return lng.Grammar.Constructs[c.ID].IsCommentOrWs
}

// Notation returns this node's notation within the given notation set.
func (n Node) Notation(s *Storage, set lang.NotationSetRef) *style.Notation {
	return set.Notation(s.Lang, n.Construct(s))
}

// IsValid reports whether n still refers to a live node -- false once n
// (or an ancestor of n) has been destroyed by DeleteRoot.
func (n Node) IsValid(s *Storage) bool { return s.forest.IsValid(n.ix) }

// IsTexty reports whether n holds text rather than children.
func (n Node) IsTexty(s *Storage) bool { return n.Construct(s).IsTexty(s.Lang) }

// CanHaveChildren reports whether n is Fixed or Listy (as opposed to
// Texty), the precondition internal/location's before_children/
// after_children require.
func (n Node) CanHaveChildren(s *Storage) bool { return !n.IsTexty(s) }

// Language returns the language n's construct belongs to.
func (n Node) Language(s *Storage) lang.LanguageRef {
	return lang.LanguageRef{ID: n.Construct(s).Language}
}

// IsInvalidText reports whether n is texty and its current text fails
// its construct's declared TextPattern. Always false for non-texty
// nodes or constructs with no pattern.
func (n Node) IsInvalidText(s *Storage) bool {
	t, ok := n.Text(s)
	if !ok {
		return false
	}
	return !n.Construct(s).IsValidText(s, t.Source())
}

// Text returns this node's text buffer, and true iff the node is texty.
func (n Node) Text(s *Storage) (*text.Text, bool) {
	t := s.forest.Data(n.ix).text
	return t, t != nil
}

/* Relatives */

// IsAtRoot reports whether n has no parent.
func (n Node) IsAtRoot(s *Storage) bool {
	_, ok := s.forest.Parent(n.ix)
	return !ok
}

// NumSiblings returns the number of siblings n has, including itself (1
// if n is a root).
func (n Node) NumSiblings(s *Storage) int {
	if p, ok := s.forest.Parent(n.ix); ok {
		return s.forest.NumChildren(p)
	}
	return 1
}

// SiblingIndex returns n's 0-based position among its siblings.
func (n Node) SiblingIndex(s *Storage) int { return s.forest.SiblingIndex(n.ix) }

// NumChildren returns the number of children n has, or (0, false) if n
// is texty (texty nodes have no children, only text).
func (n Node) NumChildren(s *Storage) (int, bool) {
	if s.forest.Data(n.ix).text != nil {
		return 0, false
	}
	return s.forest.NumChildren(n.ix), true
}

/* Navigation */

func (n Node) Parent(s *Storage) (Node, bool) {
	p, ok := s.forest.Parent(n.ix)
	if !ok {
		return Node{}, false
	}
	return Node{p}, true
}

func (n Node) FirstChild(s *Storage) (Node, bool) {
	c, ok := s.forest.FirstChild(n.ix)
	if !ok {
		return Node{}, false
	}
	return Node{c}, true
}

func (n Node) LastChild(s *Storage) (Node, bool) {
	children := s.forest.Children(n.ix)
	if len(children) == 0 {
		return Node{}, false
	}
	return Node{children[len(children)-1]}, true
}

func (n Node) NthChild(s *Storage, i int) (Node, bool) {
	cur, ok := s.forest.FirstChild(n.ix)
	if !ok {
		return Node{}, false
	}
	for ; i > 0; i-- {
		nxt, ok := s.forest.Next(cur)
		if !ok {
			return Node{}, false
		}
		cur = nxt
	}
	return Node{cur}, true
}

func (n Node) NextSibling(s *Storage) (Node, bool) {
	next, ok := s.forest.Next(n.ix)
	if !ok {
		return Node{}, false
	}
	return Node{next}, true
}

func (n Node) PrevSibling(s *Storage) (Node, bool) {
	prev, ok := s.forest.Prev(n.ix)
	if !ok {
		return Node{}, false
	}
	return Node{prev}, true
}

// FirstSibling, LastSibling return the first/last child of n's parent,
// or n itself if n is a root.
func (n Node) FirstSibling(s *Storage) Node {
	p, ok := s.forest.Parent(n.ix)
	if !ok {
		return n
	}
	fc, _ := s.forest.FirstChild(p)
	return Node{fc}
}

func (n Node) LastSibling(s *Storage) Node {
	p, ok := s.forest.Parent(n.ix)
	if !ok {
		return n
	}
	last, _ := Node{p}.LastChild(s)
	return last
}

// Root walks up to the root of n's tree.
func (n Node) Root(s *Storage) Node { return Node{s.forest.Root(n.ix)} }

// NewBookmark saves a bookmark to this node, to return to later.
func (n Node) NewBookmark() Bookmark { return Bookmark{n.ix} }

// GotoBookmark resolves mark, returning the node it names as long as
// that node still exists and is in the same tree as n. Works even if the
// tree was edited since the bookmark was taken; returns false if the
// bookmarked node was deleted, or now lives in a different tree.
func (n Node) GotoBookmark(s *Storage, mark Bookmark) (Node, bool) {
	if s.forest.IsValid(mark.ix) && s.forest.Root(n.ix) == s.forest.Root(mark.ix) {
		return Node{mark.ix}, true
	}
	return Node{}, false
}

// BookmarkValid reports whether mark's node still exists anywhere, with
// no requirement that the caller hold a live reference into the same (or
// any) tree -- useful for reclaiming storage for bookmarks whose tree may
// be long gone.
func (s *Storage) BookmarkValid(mark Bookmark) bool {
	return s.forest.IsValid(mark.ix)
}

// Package location implements the cursor model described in spec.md
// §4.I: a Location names a place a cursor could sit -- between two
// sibling nodes, inside a node's text, or (for an empty child sequence)
// below a parent with no children of its own.
//
// Grounded directly on original_source/src/tree/location.rs, whose
// method list and normal-form discipline this package follows almost
// 1:1, generalized from its `Node`+`&Storage` pair to this module's own
// internal/node.Node+*node.Storage.
package location

import "github.com/synless-editor/synless/internal/node"

// Mode distinguishes whether a Location sits inside text or between
// tree nodes, the same split internal/doc's command dispatch uses to
// decide which key bindings apply.
type Mode int

const (
	ModeTree Mode = iota
	ModeText
)

// kind discriminates locationInner's four normal-form-constrained cases.
type kind int

const (
	kInText kind = iota
	kAfterNode
	kBeforeNode
	kBelowNode
)

// locationInner is the representation Location and Bookmark share. A
// location between nodes X and Y can be written as either
// AfterNode(X) or BeforeNode(Y); the normal form always prefers
// AfterNode, falling back to BeforeNode and then BelowNode (used only
// for empty child sequences). Bookmark holds this representation
// un-normalized (and possibly referring to a since-deleted node) until
// validated.
type locationInner struct {
	kind    kind
	node    node.Node
	charPos int // valid only when kind == kInText
}

// referenceNode returns the node this location is defined relative to,
// whether before, after, or above it.
func (li locationInner) referenceNode() node.Node { return li.node }

func (li locationInner) normalize(s *node.Storage) locationInner {
	switch li.kind {
	case kInText:
		textLen := 0
		if t, ok := li.node.Text(s); ok {
			textLen = t.NumChars()
		}
		if li.charPos > textLen {
			li.charPos = textLen
		}
		return li
	case kAfterNode:
		return li
	case kBeforeNode:
		if prev, ok := li.node.PrevSibling(s); ok {
			return locationInner{kind: kAfterNode, node: prev}
		}
		return li
	case kBelowNode:
		if last, ok := li.node.LastChild(s); ok {
			return locationInner{kind: kAfterNode, node: last}
		}
		return li
	}
	panic("location: unreachable kind")
}

// Location is a normal-form place a cursor could sit.
type Location struct{ inner locationInner }

// Bookmark is a long-lived reference to a Location that may no longer
// be valid (its node may have been deleted) and may not be in normal
// form; it must be resolved via ValidateBookmark before use.
type Bookmark struct{ inner locationInner }

/* Constructors */

// Before returns the location immediately before n.
func Before(s *node.Storage, n node.Node) Location {
	return Location{locationInner{kind: kBeforeNode, node: n}.normalize(s)}
}

// After returns the location immediately after n (already normal form).
func After(_ *node.Storage, n node.Node) Location {
	return Location{locationInner{kind: kAfterNode, node: n}}
}

// BeforeChildren returns the location at the start of n's child
// sequence, or (ok=false) if n is texty.
func BeforeChildren(s *node.Storage, n node.Node) (Location, bool) {
	if !n.CanHaveChildren(s) {
		return Location{}, false
	}
	if first, ok := n.FirstChild(s); ok {
		return Before(s, first), true
	}
	return Location{locationInner{kind: kBelowNode, node: n}}, true
}

// AfterChildren returns the location at the end of n's child sequence,
// or (ok=false) if n is texty.
func AfterChildren(s *node.Storage, n node.Node) (Location, bool) {
	if !n.CanHaveChildren(s) {
		return Location{}, false
	}
	if last, ok := n.LastChild(s); ok {
		return After(s, last), true
	}
	return Location{locationInner{kind: kBelowNode, node: n}}, true
}

// StartOfText returns the location at the start of n's text, or
// (ok=false) if n is not texty.
func StartOfText(s *node.Storage, n node.Node) (Location, bool) {
	if !n.IsTexty(s) {
		return Location{}, false
	}
	return Location{locationInner{kind: kInText, node: n, charPos: 0}}, true
}

// EndOfText returns the location at the end of n's text, or (ok=false)
// if n is not texty.
func EndOfText(s *node.Storage, n node.Node) (Location, bool) {
	t, ok := n.Text(s)
	if !ok {
		return Location{}, false
	}
	return Location{locationInner{kind: kInText, node: n, charPos: t.NumChars()}}, true
}

/* Accessors */

// Mode reports whether loc sits inside text or between nodes.
func (loc Location) Mode() Mode {
	if loc.inner.kind == kInText {
		return ModeText
	}
	return ModeTree
}

// TextPos returns (node, char offset) if loc is a text location.
func (loc Location) TextPos() (node.Node, int, bool) {
	if loc.inner.kind != kInText {
		return node.Node{}, 0, false
	}
	return loc.inner.node, loc.inner.charPos, true
}

// WithCharPos returns loc with its char offset set to i, the
// value-semantics stand-in for the original's `text_pos_mut() -> &mut
// usize`. A no-op if loc is not a text location.
func (loc Location) WithCharPos(i int) Location {
	if loc.inner.kind != kInText {
		return loc
	}
	loc.inner.charPos = i
	return loc
}

// FocusTarget identifies where a Location sits relative to the node
// FromRoot names, for the benefit of the pretty-print driver's cursor
// rendering. Mirrors ppp::FocusTarget (spec.md §4.I / the FocusMark
// notation leaf in §4.H).
type FocusTarget struct {
	Kind FocusTargetKind
	Text int // valid only when Kind == FocusText
}

type FocusTargetKind int

const (
	FocusStart FocusTargetKind = iota
	FocusEnd
	FocusMark
	FocusText
)

// PathFromRoot finds a path from the root node to a node near loc,
// together with a FocusTarget saying where loc sits relative to that
// node -- the input internal/doc's rendering pass uses to walk down
// from the document root while tracking the cursor's eventual screen
// position.
func (loc Location) PathFromRoot(s *node.Storage) ([]int, FocusTarget) {
	var n node.Node
	var target FocusTarget
	switch loc.inner.kind {
	case kBeforeNode:
		n, target = loc.inner.node, FocusTarget{Kind: FocusStart}
	case kAfterNode:
		n, target = loc.inner.node, FocusTarget{Kind: FocusEnd}
	case kBelowNode:
		n, target = loc.inner.node, FocusTarget{Kind: FocusMark}
	case kInText:
		n, target = loc.inner.node, FocusTarget{Kind: FocusText, Text: loc.inner.charPos}
	}

	var pathToRoot []int
	for {
		parent, ok := n.Parent(s)
		if !ok {
			break
		}
		pathToRoot = append(pathToRoot, n.SiblingIndex(s))
		n = parent
	}
	path := make([]int, len(pathToRoot))
	for i, v := range pathToRoot {
		path[len(pathToRoot)-1-i] = v
	}
	return path, target
}

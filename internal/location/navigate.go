package location

import "github.com/synless-editor/synless/internal/node"

/* Navigation to Node */

// LeftNode returns the node immediately to the left of loc, if any.
func (loc Location) LeftNode(_ *node.Storage) (node.Node, bool) {
	if loc.inner.kind == kAfterNode {
		return loc.inner.node, true
	}
	return node.Node{}, false
}

// RightNode returns the node immediately to the right of loc, if any.
func (loc Location) RightNode(s *node.Storage) (node.Node, bool) {
	switch loc.inner.kind {
	case kAfterNode:
		return loc.inner.node.NextSibling(s)
	case kBeforeNode:
		return loc.inner.node, true
	default:
		return node.Node{}, false
	}
}

// ParentNode returns the node whose child sequence loc sits within.
func (loc Location) ParentNode(s *node.Storage) (node.Node, bool) {
	switch loc.inner.kind {
	case kInText:
		return node.Node{}, false
	case kBeforeNode, kAfterNode:
		return loc.inner.node.Parent(s)
	case kBelowNode:
		return loc.inner.node, true
	}
	return node.Node{}, false
}

// RootNode returns the root of the tree loc lives in.
func (loc Location) RootNode(s *node.Storage) node.Node {
	return loc.inner.referenceNode().Root(s)
}

/* Navigation between Locations */

// PrevCousin moves to the end of the child sequence of the nearest
// preceding node at any ancestor depth -- the location a "move up a
// line" command lands on when there's no previous sibling at this
// depth, climbing as many levels as needed to find one.
//
// original_source/src/tree/location.rs expresses the climb as
// `self.parent_node(s)?.prev_cousin(s)?`, calling prev_cousin on a Node
// -- but no such Node method exists anywhere in the retrieved sources
// (the same kind of drift already noted for pretty_doc.rs elsewhere in
// this tree). This implements the climb directly: walk up from the
// parent until an ancestor has a previous sibling, then descend into
// that sibling's children.
func (loc Location) PrevCousin(s *node.Storage) (Location, bool) {
	switch loc.inner.kind {
	case kInText:
		return Location{}, false
	case kAfterNode:
		return Before(s, loc.inner.node), true
	}
	n, ok := loc.ParentNode(s)
	if !ok {
		return Location{}, false
	}
	for {
		if prev, ok := n.PrevSibling(s); ok {
			return AfterChildren(s, prev)
		}
		parent, ok := n.Parent(s)
		if !ok {
			return Location{}, false
		}
		n = parent
	}
}

// NextCousin is PrevCousin's mirror image.
func (loc Location) NextCousin(s *node.Storage) (Location, bool) {
	switch loc.inner.kind {
	case kInText:
		return Location{}, false
	case kBeforeNode:
		return After(s, loc.inner.node), true
	case kAfterNode:
		if sibling, ok := loc.inner.node.NextSibling(s); ok {
			return After(s, sibling), true
		}
	}
	n, ok := loc.ParentNode(s)
	if !ok {
		return Location{}, false
	}
	for {
		if next, ok := n.NextSibling(s); ok {
			return BeforeChildren(s, next)
		}
		parent, ok := n.Parent(s)
		if !ok {
			return Location{}, false
		}
		n = parent
	}
}

// PrevSibling, NextSibling move within the current child sequence
// without crossing into a different parent.
func (loc Location) PrevSibling(s *node.Storage) (Location, bool) {
	if loc.inner.kind == kAfterNode {
		return Before(s, loc.inner.node), true
	}
	return Location{}, false
}

func (loc Location) NextSibling(s *node.Storage) (Location, bool) {
	switch loc.inner.kind {
	case kAfterNode:
		sibling, ok := loc.inner.node.NextSibling(s)
		if !ok {
			return Location{}, false
		}
		return After(s, sibling), true
	case kBeforeNode:
		return After(s, loc.inner.node), true
	}
	return Location{}, false
}

// First, Last jump to the start/end of the current child sequence.
func (loc Location) First(s *node.Storage) (Location, bool) {
	switch loc.inner.kind {
	case kInText:
		return Location{}, false
	case kAfterNode:
		return Before(s, loc.inner.node.FirstSibling(s)), true
	default:
		return loc, true
	}
}

func (loc Location) Last(s *node.Storage) (Location, bool) {
	switch loc.inner.kind {
	case kInText:
		return Location{}, false
	case kBeforeNode, kAfterNode:
		return After(s, loc.inner.node.LastSibling(s)), true
	default:
		return loc, true
	}
}

// BeforeParent, AfterParent escape one level up the tree.
func (loc Location) BeforeParent(s *node.Storage) (Location, bool) {
	parent, ok := loc.ParentNode(s)
	if !ok {
		return Location{}, false
	}
	return Before(s, parent), true
}

func (loc Location) AfterParent(s *node.Storage) (Location, bool) {
	parent, ok := loc.ParentNode(s)
	if !ok {
		return Location{}, false
	}
	return After(s, parent), true
}

// InorderNext, InorderPrev walk loc forward/backward in an inorder
// tree traversal -- the primitive a "next hole" / "next match" search
// and linear cursor motion both build on.
func (loc Location) InorderNext(s *node.Storage) (Location, bool) {
	if right, ok := loc.RightNode(s); ok {
		if l, ok := BeforeChildren(s, right); ok {
			return l, true
		}
		return After(s, right), true
	}
	return loc.AfterParent(s)
}

func (loc Location) InorderPrev(s *node.Storage) (Location, bool) {
	if left, ok := loc.LeftNode(s); ok {
		if l, ok := AfterChildren(s, left); ok {
			return l, true
		}
		return Before(s, left), true
	}
	return loc.BeforeParent(s)
}

// ExitText returns the location just after the text node loc sits
// inside, or (ok=false) if loc is not a text location.
func (loc Location) ExitText() (Location, bool) {
	if loc.inner.kind != kInText {
		return Location{}, false
	}
	return Location{locationInner{kind: kAfterNode, node: loc.inner.node}}, true
}

package location

import "github.com/synless-editor/synless/internal/node"

// Insert places newNode at loc. In a listy sequence this inserts
// newNode and returns (nil, true), moving loc to just after it. In a
// fixed sequence this replaces the node to the right of loc with
// newNode and returns (oldNode, true). Returns (_, false) without
// modifying *loc if loc is a text location, is before/after a root, is
// past the last node of a fixed sequence, or newNode doesn't match the
// required sort.
func (loc *Location) Insert(s *node.Storage, newNode node.Node) (node.Node, bool) {
	parent, ok := loc.ParentNode(s)
	if !ok {
		return node.Node{}, false
	}

	if parent.Construct(s).IsListy(s.Lang) {
		var success bool
		switch loc.inner.kind {
		case kAfterNode:
			success = loc.inner.node.InsertAfter(s, newNode)
		case kBeforeNode:
			success = loc.inner.node.InsertBefore(s, newNode)
		case kBelowNode:
			success = parent.InsertLastChild(s, newNode)
		}
		if !success {
			return node.Node{}, false
		}
		*loc = After(s, newNode)
		return node.Node{}, true
	}

	// Fixed parent: replace the node to the right of loc.
	oldNode, ok := loc.RightNode(s)
	if !ok {
		return node.Node{}, false
	}
	if !newNode.Swap(s, oldNode) {
		return node.Node{}, false
	}
	*loc = After(s, newNode)
	return oldNode, true
}

// DeleteNeighbor removes the node immediately before (deleteBefore) or
// after loc. In a listy sequence the node is detached and loc moves to
// close the gap; in a fixed sequence the node is replaced by a hole and
// loc moves to sit beside the hole (fixed sequences can never shrink).
// Returns (deletedNode, true) on success.
func (loc *Location) DeleteNeighbor(s *node.Storage, deleteBefore bool) (node.Node, bool) {
	parent, ok := loc.ParentNode(s)
	if !ok {
		return node.Node{}, false
	}
	var target node.Node
	if deleteBefore {
		target, ok = loc.LeftNode(s)
	} else {
		target, ok = loc.RightNode(s)
	}
	if !ok {
		return node.Node{}, false
	}

	if parent.Construct(s).IsListy(s.Lang) {
		prevNode, hasPrev := target.PrevSibling(s)
		nextNode, hasNext := target.NextSibling(s)
		if !target.Detach(s) {
			return node.Node{}, false
		}
		switch {
		case hasPrev:
			*loc = Location{locationInner{kind: kAfterNode, node: prevNode}}
		case hasNext:
			*loc = Location{locationInner{kind: kBeforeNode, node: nextNode}}
		default:
			*loc = Location{locationInner{kind: kBelowNode, node: parent}}
		}
		return target, true
	}

	hole := node.NewHole(s, target.Language(s))
	if !target.Swap(s, hole) {
		return node.Node{}, false
	}
	if deleteBefore {
		*loc = Before(s, hole)
	} else {
		*loc = After(s, hole)
	}
	return target, true
}

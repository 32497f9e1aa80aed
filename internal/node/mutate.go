package node

import "github.com/synless-editor/synless/internal/lang"

// acceptsReplacement reports whether other is allowed wherever n
// currently sits, per n's parent's arity at n's sibling index (spec.md
// §4.D swap). A root accepts anything, since there is no parent arity to
// violate.
func (n Node) acceptsReplacement(s *Storage, other Node) bool {
	parent, ok := s.forest.Parent(n.ix)
	if !ok {
		return true
	}
	sort := Node{parent}.childSortAt(s, n.SiblingIndex(s))
	return sort.Accepts(s.Lang, other.Construct(s))
}

// childSortAt returns the Sort a child at index i of n must satisfy. n
// must be Fixed or Listy; texty nodes have no children to ask about.
func (n Node) childSortAt(s *Storage, i int) lang.SortRef {
	c := n.Construct(s)
	switch {
	case c.IsFixed(s.Lang):
		return c.FixedSorts().At(s.Lang, i)
	case c.IsListy(s.Lang):
		return c.ListySort(s.Lang)
	default:
		panic("node: childSortAt called on a texty node")
	}
}

// isListyAndAcceptsChild reports whether n is Listy and its child sort
// accepts other's construct.
func (n Node) isListyAndAcceptsChild(s *Storage, other Node) bool {
	c := n.Construct(s)
	if !c.IsListy(s.Lang) {
		return false
	}
	return c.ListySort(s.Lang).Accepts(s.Lang, other.Construct(s))
}

// Swap attempts to exchange the positions of n and other, returning true
// iff it succeeds. Fails (returns false, no change) if either node is an
// ancestor of the other, or either is incompatible with the arity of its
// new parent.
func (n Node) Swap(s *Storage, other Node) bool {
	if !n.acceptsReplacement(s, other) || !other.acceptsReplacement(s, n) {
		return false
	}
	return s.forest.Swap(n.ix, other.ix)
}

// InsertBefore attempts to insert newSibling immediately to the left of
// n. Fails if n is a root, the parent is not listy, or the parent's
// listy sort rejects newSibling's construct.
func (n Node) InsertBefore(s *Storage, newSibling Node) bool {
	parent, ok := n.Parent(s)
	if !ok || !parent.isListyAndAcceptsChild(s, newSibling) {
		return false
	}
	s.forest.InsertBefore(n.ix, newSibling.ix)
	return true
}

// InsertAfter attempts to insert newSibling immediately to the right of n.
func (n Node) InsertAfter(s *Storage, newSibling Node) bool {
	parent, ok := n.Parent(s)
	if !ok || !parent.isListyAndAcceptsChild(s, newSibling) {
		return false
	}
	s.forest.InsertAfter(n.ix, newSibling.ix)
	return true
}

// InsertLastChild attempts to insert newChild as n's new last child.
// Fails if n is not listy or its sort rejects newChild's construct.
func (n Node) InsertLastChild(s *Storage, newChild Node) bool {
	if !n.isListyAndAcceptsChild(s, newChild) {
		return false
	}
	s.forest.InsertLastChild(n.ix, newChild.ix)
	return true
}

// InsertFirstChild attempts to insert newChild as n's new first child.
func (n Node) InsertFirstChild(s *Storage, newChild Node) bool {
	if !n.isListyAndAcceptsChild(s, newChild) {
		return false
	}
	s.forest.InsertFirstChild(n.ix, newChild.ix)
	return true
}

// Detach attempts to remove n from its listy parent, making it a root.
// Fails if n is already a root, or its parent is not listy: fixed
// children are never structurally removed, they are replaced with holes
// instead, at the Location layer (spec.md §4.D).
func (n Node) Detach(s *Storage) bool {
	parent, ok := n.Parent(s)
	if !ok {
		return false
	}
	if !parent.Construct(s).IsListy(s.Lang) {
		return false
	}
	s.forest.Detach(n.ix)
	return true
}

// DeleteRoot destroys n and every descendant. n must be a root.
func (n Node) DeleteRoot(s *Storage) {
	s.forest.DeleteRoot(n.ix)
}

// WalkTree performs a depth-first, post-order traversal of n's subtree,
// calling visit on every node including n itself last. Used by the
// source-text post-processor that converts placeholder text back into
// holes after parsing (spec.md §4.D, §6).
func (n Node) WalkTree(s *Storage, visit func(Node)) {
	if numChildren, isBranch := n.NumChildren(s); isBranch {
		for i := 0; i < numChildren; i++ {
			child, _ := n.NthChild(s, i)
			child.WalkTree(s, visit)
		}
	}
	visit(n)
}

package forest

import "github.com/synless-editor/synless/internal/bug"

// requireRoot panics (a Bug) unless n is currently a root. All four
// insert_* operations require this (spec.md §4.A).
func (f *Forest[D]) requireRoot(n NodeIx) {
	if _, hasParent := f.Parent(n); hasParent {
		bug.Bugf("forest: insert requires %v to be a root", n)
	}
}

// Detach opens the crack in n's sibling ring, closes it, and makes n a
// root with a self-loop. A no-op if n is already a root.
func (f *Forest[D]) Detach(n NodeIx) {
	e := f.get(n)
	if !e.hasParent {
		return
	}
	parent := e.parent
	prev, next := e.prev, e.next
	if prev == n {
		// n was the only child.
		pe := f.get(parent)
		pe.hasChild = false
		pe.firstChild = Nil
	} else {
		f.get(prev).next = next
		f.get(next).prev = prev
		if f.get(parent).firstChild == n {
			f.get(parent).firstChild = next
		}
	}
	e = f.get(n)
	e.hasParent = false
	e.parent = Nil
	e.prev = n
	e.next = n
}

// InsertFirstChild makes n the new first child of p. n must be a root;
// panics otherwise. Also rejects (panics) an attempt to make an ancestor
// of p into p's own child, which would introduce a cycle.
func (f *Forest[D]) InsertFirstChild(p, n NodeIx) {
	f.requireRoot(n)
	if f.isAncestorOrSelf(n, p) {
		bug.Bugf("forest: insert_first_child would create a cycle")
	}
	pe := f.get(p)
	if pe.hasChild {
		fc := pe.firstChild
		last := f.get(fc).prev
		f.get(n).prev = last
		f.get(n).next = fc
		f.get(last).next = n
		f.get(fc).prev = n
	} else {
		f.get(n).prev = n
		f.get(n).next = n
		pe.hasChild = true
	}
	pe = f.get(p)
	pe.firstChild = n
	ne := f.get(n)
	ne.hasParent = true
	ne.parent = p
}

// InsertLastChild makes n the new last child of p.
func (f *Forest[D]) InsertLastChild(p, n NodeIx) {
	f.requireRoot(n)
	if f.isAncestorOrSelf(n, p) {
		bug.Bugf("forest: insert_last_child would create a cycle")
	}
	pe := f.get(p)
	if pe.hasChild {
		fc := pe.firstChild
		last := f.get(fc).prev
		f.get(n).prev = last
		f.get(n).next = fc
		f.get(last).next = n
		f.get(fc).prev = n
	} else {
		f.get(n).prev = n
		f.get(n).next = n
		pe.hasChild = true
		f.get(p).firstChild = n
	}
	ne := f.get(n)
	ne.hasParent = true
	ne.parent = p
}

// InsertBefore inserts n immediately before at in at's sibling ring. at
// must already have a parent (you cannot insert beside a root).
func (f *Forest[D]) InsertBefore(at, n NodeIx) {
	f.requireRoot(n)
	parent, hasParent := f.Parent(at)
	if !hasParent {
		bug.Bugf("forest: cannot insert_before a root")
	}
	if f.isAncestorOrSelf(n, parent) {
		bug.Bugf("forest: insert_before would create a cycle")
	}
	prev := f.get(at).prev
	f.get(n).prev = prev
	f.get(n).next = at
	f.get(prev).next = n
	f.get(at).prev = n
	if f.get(parent).firstChild == at {
		f.get(parent).firstChild = n
	}
	ne := f.get(n)
	ne.hasParent = true
	ne.parent = parent
}

// InsertAfter inserts n immediately after at in at's sibling ring.
func (f *Forest[D]) InsertAfter(at, n NodeIx) {
	f.requireRoot(n)
	parent, hasParent := f.Parent(at)
	if !hasParent {
		bug.Bugf("forest: cannot insert_after a root")
	}
	if f.isAncestorOrSelf(n, parent) {
		bug.Bugf("forest: insert_after would create a cycle")
	}
	next := f.get(at).next
	f.get(n).prev = at
	f.get(n).next = next
	f.get(at).next = n
	f.get(next).prev = n
	ne := f.get(n)
	ne.hasParent = true
	ne.parent = parent
}

// ringPosition is the internal Crack-like descriptor of a node's place in
// its sibling ring, recorded so it can be recreated after the node has
// been detached. Two adjacent Cracks must never exist simultaneously
// (spec.md §4.A); Swap's algorithm below avoids that by always recording
// a position from the live ring immediately before it uses it.
type ringPosition struct {
	hasParent bool
	parent    NodeIx
	hasPrev   bool
	prevNode  NodeIx
}

func (f *Forest[D]) recordPosition(n NodeIx) ringPosition {
	parent, hasParent := f.Parent(n)
	if !hasParent {
		return ringPosition{}
	}
	if f.IsFirst(n) {
		return ringPosition{hasParent: true, parent: parent}
	}
	prev, _ := f.Prev(n)
	return ringPosition{hasParent: true, parent: parent, hasPrev: true, prevNode: prev}
}

func (f *Forest[D]) insertAtPosition(pos ringPosition, n NodeIx) {
	if !pos.hasParent {
		return // n simply remains a (detached) root
	}
	if pos.hasPrev {
		f.InsertAfter(pos.prevNode, n)
	} else {
		f.InsertFirstChild(pos.parent, n)
	}
}

// Swap exchanges the positions of a and b in the forest. It returns false
// and makes no changes if a is an ancestor of b or vice versa (including
// a == b only in the degenerate sense that neither is a proper ancestor of
// itself, so swapping a node with itself trivially succeeds as a no-op).
//
// The implementation uses a reserved "swap dummy" node to hold a's old
// place open while b moves into it, so that adjacent siblings swap
// correctly too (spec.md §4.A).
func (f *Forest[D]) Swap(a, b NodeIx) bool {
	if a == b {
		return true
	}
	if f.isAncestorOrSelf(a, b) || f.isAncestorOrSelf(b, a) {
		return false
	}

	var zero D
	dummy := f.NewNode(zero)

	posA := f.recordPosition(a)
	f.Detach(a)
	f.insertAtPosition(posA, dummy)

	posB := f.recordPosition(b) // recorded *after* dummy replaces a
	f.Detach(b)
	f.insertAtPosition(posB, a)

	posDummy := f.recordPosition(dummy)
	f.Detach(dummy)
	f.insertAtPosition(posDummy, b)

	f.DeleteRoot(dummy)
	return true
}

// DeleteRoot destroys r and every descendant. Panics if r is not a root.
// Every NodeIx into the deleted subtree becomes invalid: IsValid returns
// false for all of them from this point on.
func (f *Forest[D]) DeleteRoot(r NodeIx) {
	if _, hasParent := f.Parent(r); hasParent {
		bug.Bugf("forest: delete_root requires a root")
	}
	stack := []NodeIx{r}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fc, ok := f.FirstChild(n); ok {
			cur := fc
			for {
				next := f.rawNext(cur)
				stack = append(stack, cur)
				if next == fc {
					break
				}
				cur = next
			}
		}
		f.release(n)
	}
}

func (f *Forest[D]) release(n NodeIx) {
	e := f.get(n)
	gen := e.gen
	f.entries[n.slot] = entry[D]{state: stateFree, gen: gen}
	f.freeList = append(f.freeList, n.slot)
}

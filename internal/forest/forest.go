// Package forest implements the arena described in spec.md §3/§4.A: a
// single slab of nodes linked by parent / first-child / prev-sibling /
// next-sibling indices, with O(1) detach/insert/swap and a cyclic sibling
// ring per parent (a lone child points to itself).
//
// The arena shape is grounded on the teacher's (nihei9/vartan) habit of
// packing small dense IDs into plain integers (grammar/symbol.Symbol) and
// on npillmayer-gorgo/lr/sppf's arena-of-nodes-with-parent-back-pointers;
// the cyclic-ring sibling representation itself is spec.md's own
// redesign (§9 "Design Notes").
package forest

import "github.com/synless-editor/synless/internal/bug"

// NodeIx identifies a live or free slot in a Forest. The zero value is
// never a valid index (slot 0 is reserved as a sentinel), so a NodeIx can
// be stored in a plain (non-pointer, non-Option) field when "no node" is
// meant to be impossible by construction; callers who need "no node" use
// (NodeIx, bool) or a dedicated Option-shaped field, matching Rust's
// Option<NodeIx> from spec.md.
type NodeIx struct {
	slot uint32
	gen  uint32
}

// Nil is the distinguished "not a node" index.
var Nil = NodeIx{}

// IsNil reports whether ix is the zero value.
func (ix NodeIx) IsNil() bool { return ix.slot == 0 }

type slotState uint8

const (
	stateFree slotState = iota
	stateLive
)

type entry[D any] struct {
	state slotState
	gen   uint32

	parent     NodeIx // Nil if root
	hasParent  bool
	firstChild NodeIx // Nil if no children
	hasChild   bool
	prev       NodeIx // cyclic: always valid when part of a ring of >=1
	next       NodeIx

	data D
}

// Forest is the process-wide arena of nodes of type D (synless-go
// instantiates it with language.NodeData, see internal/lang). It owns no
// external references: every edge is a NodeIx, never a pointer, so there
// are no borrow cycles to worry about (spec.md §9).
type Forest[D any] struct {
	entries  []entry[D]
	freeList []uint32 // free-list of slot indices (slot 0 never enters it)
}

// New constructs an empty Forest. Slot 0 is reserved so the zero NodeIx is
// never a valid handle.
func New[D any]() *Forest[D] {
	f := &Forest[D]{entries: make([]entry[D], 1)}
	f.entries[0] = entry[D]{state: stateFree}
	return f
}

// NewNode allocates an isolated root: parent=None, no children, and a
// self-loop sibling ring (prev == next == self), matching spec.md §3
// "A lone child points to itself".
func (f *Forest[D]) NewNode(data D) NodeIx {
	var slot uint32
	var gen uint32
	if n := len(f.freeList); n > 0 {
		slot = f.freeList[n-1]
		f.freeList = f.freeList[:n-1]
		gen = f.entries[slot].gen + 1
	} else {
		slot = uint32(len(f.entries))
		f.entries = append(f.entries, entry[D]{})
		gen = 1
	}
	ix := NodeIx{slot: slot, gen: gen}
	f.entries[slot] = entry[D]{
		state: stateLive,
		gen:   gen,
		prev:  ix,
		next:  ix,
		data:  data,
	}
	return ix
}

func (f *Forest[D]) get(ix NodeIx) *entry[D] {
	if ix.IsNil() {
		bug.Bugf("forest: operation on nil NodeIx")
	}
	if int(ix.slot) >= len(f.entries) {
		bug.Bugf("forest: NodeIx out of range")
	}
	e := &f.entries[ix.slot]
	if e.state != stateLive || e.gen != ix.gen {
		bug.Bugf("forest: use of stale or deleted NodeIx")
	}
	return e
}

// IsValid reports whether n still refers to a live node. Unlike get, this
// never panics -- it is the one query that is meant to be used on handles
// that might have been deleted (spec.md §4.A).
func (f *Forest[D]) IsValid(n NodeIx) bool {
	if n.IsNil() || int(n.slot) >= len(f.entries) {
		return false
	}
	e := &f.entries[n.slot]
	return e.state == stateLive && e.gen == n.gen
}

// Data returns a pointer to n's payload for read or write.
func (f *Forest[D]) Data(n NodeIx) *D {
	return &f.get(n).data
}

// Parent returns n's parent, or (Nil, false) if n is a root.
func (f *Forest[D]) Parent(n NodeIx) (NodeIx, bool) {
	e := f.get(n)
	return e.parent, e.hasParent
}

// FirstChild returns n's first child, or (Nil, false) if n has none.
func (f *Forest[D]) FirstChild(n NodeIx) (NodeIx, bool) {
	e := f.get(n)
	return e.firstChild, e.hasChild
}

// IsFirst reports whether n is the first child of its parent (or is a
// root, which synless-go treats as vacuously "first" — callers that care
// about roots check Parent first).
func (f *Forest[D]) IsFirst(n NodeIx) bool {
	p, ok := f.Parent(n)
	if !ok {
		return true
	}
	fc, _ := f.FirstChild(p)
	return fc == n
}

// IsLast reports whether n is the last child of its parent.
func (f *Forest[D]) IsLast(n NodeIx) bool {
	p, ok := f.Parent(n)
	if !ok {
		return true
	}
	fc, _ := f.FirstChild(p)
	return fc == f.rawNext(n)
}

func (f *Forest[D]) rawNext(n NodeIx) NodeIx { return f.get(n).next }
func (f *Forest[D]) rawPrev(n NodeIx) NodeIx { return f.get(n).prev }

// Next returns n's next sibling, or (Nil, false) if n is the last child
// (derived from parent.first_child, per spec.md §3).
func (f *Forest[D]) Next(n NodeIx) (NodeIx, bool) {
	if f.IsLast(n) {
		return Nil, false
	}
	return f.rawNext(n), true
}

// Prev returns n's previous sibling, or (Nil, false) if n is the first child.
func (f *Forest[D]) Prev(n NodeIx) (NodeIx, bool) {
	if f.IsFirst(n) {
		return Nil, false
	}
	return f.rawPrev(n), true
}

// Root walks the parent axis to the root of n's tree. O(depth).
func (f *Forest[D]) Root(n NodeIx) NodeIx {
	for {
		p, ok := f.Parent(n)
		if !ok {
			return n
		}
		n = p
	}
}

// SiblingIndex returns the 0-based index of n among its siblings.
// O(siblings before n).
func (f *Forest[D]) SiblingIndex(n NodeIx) int {
	p, ok := f.Parent(n)
	if !ok {
		return 0
	}
	fc, _ := f.FirstChild(p)
	i := 0
	cur := fc
	for cur != n {
		i++
		cur = f.rawNext(cur)
	}
	return i
}

// NumChildren counts n's children. O(children).
func (f *Forest[D]) NumChildren(n NodeIx) int {
	fc, ok := f.FirstChild(n)
	if !ok {
		return 0
	}
	count := 1
	for cur := f.rawNext(fc); cur != fc; cur = f.rawNext(cur) {
		count++
	}
	return count
}

// Children returns n's children left to right, as a freshly allocated
// slice. Convenience wrapper; callers on a hot path should walk Next
// themselves.
func (f *Forest[D]) Children(n NodeIx) []NodeIx {
	fc, ok := f.FirstChild(n)
	if !ok {
		return nil
	}
	out := []NodeIx{fc}
	for cur := f.rawNext(fc); cur != fc; cur = f.rawNext(cur) {
		out = append(out, cur)
	}
	return out
}

// isAncestor reports whether a is an ancestor of b (or a == b).
func (f *Forest[D]) isAncestorOrSelf(a, b NodeIx) bool {
	for {
		if a == b {
			return true
		}
		p, ok := f.Parent(b)
		if !ok {
			return false
		}
		b = p
	}
}

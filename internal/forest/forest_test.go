package forest

import "testing"

func assertLinkage[D any](t *testing.T, f *Forest[D], root NodeIx) {
	t.Helper()
	var walk func(n NodeIx)
	walk = func(n NodeIx) {
		if fc, ok := f.FirstChild(n); ok {
			cur := fc
			seen := 0
			for {
				if p, ok := f.Parent(cur); !ok || p != n {
					t.Fatalf("child %v does not agree with parent %v", cur, n)
				}
				walk(cur)
				next := f.rawNext(cur)
				if f.rawPrev(next) != cur {
					t.Fatalf("prev/next not mutual between %v and %v", cur, next)
				}
				seen++
				cur = next
				if cur == fc {
					break
				}
				if seen > 1000 {
					t.Fatalf("sibling ring of %v looks corrupt (too many siblings)", n)
				}
			}
		}
	}
	walk(root)
}

func TestSiblingRing(t *testing.T) {
	f := New[string]()
	a := f.NewNode("A")
	b := f.NewNode("B")

	f.InsertLastChild(a, b)
	if fc, _ := f.FirstChild(a); fc != b {
		t.Fatalf("first_child(A) = %v, want B", fc)
	}
	if !f.IsFirst(b) || !f.IsLast(b) {
		t.Fatalf("B should be both first and last child")
	}
	if _, ok := f.Prev(b); ok {
		t.Fatalf("lone child should have no Prev")
	}
	if _, ok := f.Next(b); ok {
		t.Fatalf("lone child should have no Next")
	}

	c := f.NewNode("C")
	f.InsertLastChild(a, c)
	if fc, _ := f.FirstChild(a); fc != b {
		t.Fatalf("first_child(A) changed unexpectedly")
	}
	if p := f.rawPrev(b); p != c {
		t.Fatalf("Prev(B) = %v, want C (cyclic ring)", p)
	}
	if n := f.rawNext(c); n != b {
		t.Fatalf("Next(C) = %v, want B (cyclic ring)", n)
	}
	if !f.IsFirst(b) || f.IsLast(b) {
		t.Fatalf("B should be first but not last")
	}
	if f.IsFirst(c) || !f.IsLast(c) {
		t.Fatalf("C should be last but not first")
	}
	assertLinkage(t, f, a)
}

func TestCycleRejection(t *testing.T) {
	f := New[string]()
	root := f.NewNode("root")
	child := f.NewNode("child")
	f.InsertLastChild(root, child)

	if f.Swap(root, child) {
		t.Fatalf("swap of ancestor/descendant should return false")
	}
	if fc, _ := f.FirstChild(root); fc != child {
		t.Fatalf("swap must not mutate the forest on failure")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("insert_first_child(root, root) should panic")
		}
	}()
	f.InsertFirstChild(root, root)
}

func TestDeleteRootInvalidatesDescendants(t *testing.T) {
	f := New[string]()
	root := f.NewNode("root")
	a := f.NewNode("a")
	b := f.NewNode("b")
	f.InsertLastChild(root, a)
	f.InsertLastChild(root, b)

	f.DeleteRoot(root)
	for _, n := range []NodeIx{root, a, b} {
		if f.IsValid(n) {
			t.Fatalf("%v should be invalid after delete_root", n)
		}
	}
}

func TestSwapAdjacentSiblings(t *testing.T) {
	f := New[string]()
	p := f.NewNode("p")
	a := f.NewNode("a")
	b := f.NewNode("b")
	f.InsertLastChild(p, a)
	f.InsertLastChild(p, b)

	if !f.Swap(a, b) {
		t.Fatalf("swap of adjacent siblings should succeed")
	}
	if fc, _ := f.FirstChild(p); fc != b {
		t.Fatalf("after swap, first child should be b, got %v", fc)
	}
	if n, _ := f.Next(b); n != a {
		t.Fatalf("after swap, next(b) should be a")
	}
	assertLinkage(t, f, p)
}

func TestSwapNonAdjacent(t *testing.T) {
	f := New[string]()
	p := f.NewNode("p")
	a := f.NewNode("a")
	mid := f.NewNode("mid")
	b := f.NewNode("b")
	f.InsertLastChild(p, a)
	f.InsertLastChild(p, mid)
	f.InsertLastChild(p, b)

	if !f.Swap(a, b) {
		t.Fatalf("swap should succeed")
	}
	var order []NodeIx
	fc, _ := f.FirstChild(p)
	cur := fc
	for {
		order = append(order, cur)
		n, ok := f.Next(cur)
		if !ok {
			break
		}
		cur = n
	}
	want := []NodeIx{b, mid, a}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	assertLinkage(t, f, p)
}

func TestDetachIsolatesRoot(t *testing.T) {
	f := New[string]()
	p := f.NewNode("p")
	a := f.NewNode("a")
	b := f.NewNode("b")
	f.InsertLastChild(p, a)
	f.InsertLastChild(p, b)

	f.Detach(a)
	if _, ok := f.Parent(a); ok {
		t.Fatalf("detached node should have no parent")
	}
	if n, ok := f.Next(a); ok || n != Nil {
		t.Fatalf("detached node should have no sibling")
	}
	if fc, _ := f.FirstChild(p); fc != b {
		t.Fatalf("parent's first_child should now be b")
	}
	if !f.IsFirst(b) || !f.IsLast(b) {
		t.Fatalf("b should be the lone child now")
	}
}

func TestNumChildrenAndSiblingIndex(t *testing.T) {
	f := New[string]()
	p := f.NewNode("p")
	if f.NumChildren(p) != 0 {
		t.Fatalf("empty parent should report 0 children")
	}
	var kids []NodeIx
	for i := 0; i < 5; i++ {
		k := f.NewNode("k")
		f.InsertLastChild(p, k)
		kids = append(kids, k)
	}
	if f.NumChildren(p) != 5 {
		t.Fatalf("NumChildren = %d, want 5", f.NumChildren(p))
	}
	for i, k := range kids {
		if f.SiblingIndex(k) != i {
			t.Fatalf("SiblingIndex(%d) = %d", i, f.SiblingIndex(k))
		}
	}
}

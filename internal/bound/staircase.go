package bound

import "github.com/emirpasic/gods/v2/trees/redblacktree"

// staircase is the per-width acceleration structure FitWidth queries:
// keyed by width, it answers "what is the minimum height (ties broken by
// minimum indent) achievable using any bound whose width is at most
// this much" in O(log n) via Floor, instead of a linear scan of the
// whole frontier every time a column width is requested. FitWidth builds
// it afresh from the current frontier on every call; it is not cached
// (spec.md §4.E "fit_width(w)... among bounds
// with width <= w, return the one of minimum height; ties by minimum
// indent"). Uses github.com/emirpasic/gods/v2's generic red-black tree,
// the same ordered-map structure npillmayer-gorgo reaches for to back
// its own indexed lookups.
type staircase[T any] struct {
	tree *redblacktree.Tree[int, entry[T]]
}

// newWidthStaircase builds the staircase from a BoundSet's frontier,
// keyed by width, each record holding the best (min-height,
// tie-break-min-indent) bound seen at or below that width so far.
func newWidthStaircase[T any](entries []entry[T]) *staircase[T] {
	sorted := make([]entry[T], len(entries))
	copy(sorted, entries)
	insertionSortByWidth(sorted)

	tree := redblacktree.New[int, entry[T]]()
	haveBest := false
	var best entry[T]
	for _, e := range sorted {
		if !haveBest || better(e.bound, best.bound) {
			haveBest = true
			best = e
		}
		tree.Put(e.bound.Width, best)
	}
	return &staircase[T]{tree: tree}
}

// better reports whether bound a is a strictly preferable FitWidth
// answer to bound b: lower height wins, ties broken by lower indent.
func better(a, b Bound) bool {
	if a.Height != b.Height {
		return a.Height < b.Height
	}
	return a.Indent < b.Indent
}

func insertionSortByWidth[T any](es []entry[T]) {
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && es[j].bound.Width < es[j-1].bound.Width; j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}

// bestAtOrBelow returns the entry with minimum height (tie-break minimum
// indent) among all entries whose width is <= maxWidth.
func (s *staircase[T]) bestAtOrBelow(maxWidth int) (entry[T], bool) {
	node, found := s.tree.Floor(maxWidth)
	if !found {
		return entry[T]{}, false
	}
	return node.Value, true
}

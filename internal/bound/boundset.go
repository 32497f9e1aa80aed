package bound

import "errors"

// ErrNoFit is returned by FitWidth when every bound in the set is wider
// than the requested width (spec.md §4.E says this "panics (or returns a
// dedicated error)"; synless-go returns the error, since a width query
// against a malformed BoundSet is a caller-reachable condition, not an
// internal invariant violation).
var ErrNoFit = errors.New("bound: no entry in this set fits the requested width")

// entry pairs one frontier bound with the witness recording how it is
// achieved.
type entry[T any] struct {
	bound Bound
	value T
}

// BoundSet is the Pareto-minimal frontier of (Bound, T) pairs achievable
// by some Choice of layouts, where T is a witness recording how each
// bound is achieved (spec.md §4.E/§4.F). The zero value is not usable;
// construct with New.
type BoundSet[T any] struct {
	entries []entry[T]
}

// New returns an empty BoundSet.
func New[T any]() *BoundSet[T] { return &BoundSet[T]{} }

// Singleton returns a BoundSet containing exactly one bound.
func Singleton[T any](b Bound, value T) *BoundSet[T] {
	return &BoundSet[T]{entries: []entry[T]{{bound: b, value: value}}}
}

// Len reports how many bounds are on the frontier.
func (s *BoundSet[T]) Len() int { return len(s.entries) }

// Entries exposes the frontier for read-only iteration (internal/layout
// needs to walk every bound when compiling a Choice).
func (s *BoundSet[T]) Entries() []struct {
	Bound Bound
	Value T
} {
	out := make([]struct {
		Bound Bound
		Value T
	}, len(s.entries))
	for i, e := range s.entries {
		out[i] = struct {
			Bound Bound
			Value T
		}{e.bound, e.value}
	}
	return out
}

// Insert adds (b, value) to the frontier, dropping it if some existing
// entry already dominates it, and dropping every existing entry it
// dominates in turn.
func (s *BoundSet[T]) Insert(b Bound, value T) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if dominates(e.bound, b) {
			return // existing entry already makes the new one pointless
		}
		if !dominates(b, e.bound) {
			kept = append(kept, e)
		}
	}
	s.entries = append(kept, entry[T]{bound: b, value: value})
}

// Union merges two frontiers, the way Choice(ns) does (spec.md §4.F
// "union of the compiled BoundSets, dominated entries dropped on
// insert").
func Union[T any](sets ...*BoundSet[T]) *BoundSet[T] {
	out := New[T]()
	for _, s := range sets {
		for _, e := range s.entries {
			out.Insert(e.bound, e.value)
		}
	}
	return out
}

// Filter returns a new BoundSet containing only entries for which keep
// returns true -- used to implement NoWrap (spec.md §4.F "filter to
// entries with height == 1").
func (s *BoundSet[T]) Filter(keep func(Bound, T) bool) *BoundSet[T] {
	out := New[T]()
	for _, e := range s.entries {
		if keep(e.bound, e.value) {
			out.Insert(e.bound, e.value)
		}
	}
	return out
}

// Map transforms every witness in the frontier, keeping the bounds (and
// therefore the Pareto structure) unchanged.
func Map[T, U any](s *BoundSet[T], f func(Bound, T) U) *BoundSet[U] {
	out := &BoundSet[U]{entries: make([]entry[U], len(s.entries))}
	for i, e := range s.entries {
		out.entries[i] = entry[U]{bound: e.bound, value: f(e.bound, e.value)}
	}
	return out
}

// FollowCombine combines two BoundSets with Follow. Both frontiers are
// already Pareto-pruned (never more than a handful of entries for any
// realistic notation), so a full cross product followed by Insert's
// dominance pruning is cheap and, unlike a one-sided staircase
// shortcut, unconditionally correct: every combination is considered,
// and only the Pareto-dominated ones are dropped (spec.md §4.E).
// combine merges the two witnesses into the result's witness type U.
func FollowCombine[A, B, U any](a *BoundSet[A], b *BoundSet[B], combine func(A, B) U) *BoundSet[U] {
	out := New[U]()
	for _, ea := range a.entries {
		for _, eb := range b.entries {
			out.Insert(Follow(ea.bound, eb.bound), combine(ea.value, eb.value))
		}
	}
	return out
}

// VertCombine combines two BoundSets with Vert. Unlike Follow, Vert only
// needs each side's minimum height at a given width (spec.md §4.E "vert
// requires only A's minimum height at each width; its indent is
// irrelevant"), so a plain cross product over the (already small)
// frontiers is sufficient.
func VertCombine[A, B, U any](a *BoundSet[A], b *BoundSet[B], combine func(A, B) U) *BoundSet[U] {
	out := New[U]()
	for _, ea := range a.entries {
		for _, eb := range b.entries {
			out.Insert(Vert(ea.bound, eb.bound), combine(ea.value, eb.value))
		}
	}
	return out
}

// FitWidth returns the entry with minimum height among bounds with
// width <= w, breaking ties by minimum indent (spec.md §4.E).
func (s *BoundSet[T]) FitWidth(w int) (Bound, T, error) {
	var zero T
	if len(s.entries) == 0 {
		return Bound{}, zero, ErrNoFit
	}
	stair := newWidthStaircase(s.entries)
	e, ok := stair.bestAtOrBelow(w)
	if !ok {
		return Bound{}, zero, ErrNoFit
	}
	return e.bound, e.value, nil
}

// Package layout implements components F and G of spec.md §4: compiling a
// style.Notation plus its children's size envelopes into a BoundSet of
// candidate layouts (Compile), and then, once a concrete screen width
// picks a winner from that frontier, turning it into a tree of concrete
// screen positions (Realize).
//
// Grounded on original_source/pretty/src/layout/{compute_bounds.rs,
// compute_layout.rs,notation_ops.rs}: the recursion structure over
// Notation's variants is carried over case for case, collapsing the
// original's generic NotationOps trait (which let the same recursion
// compute either a size-only Bound, a fully-resolved layout tree, or a
// plain unit witness depending on which T it was instantiated with) into
// a single concrete Go recursion that always produces *ResolvedNotation
// witnesses -- idiomatic Go favors one concrete function over a
// parametrized trait hierarchy when there is only ever one production
// instantiation in play (internal/bound.BoundSet's own generic T already
// carries the abstraction synless-go actually needs).
package layout

import (
	"github.com/synless-editor/synless/internal/bound"
	"github.com/synless-editor/synless/internal/style"
)

// ResolvedKind discriminates ResolvedNotation, the "chosen concrete plan"
// a BoundSet witness becomes once Compile has picked a winner from every
// Choice/Repeat/NoWrap alternative along the way.
type ResolvedKind int

const (
	RKEmpty ResolvedKind = iota
	RKLiteral
	RKText
	RKChild
	RKFollow
	RKVert
	RKStyled
	RKFocusMark
)

// ResolvedNotation is a fully-resolved layout plan: every Choice has been
// decided, every Repeat expanded, every NoWrap and IfEmptyText/IfCondition
// branch taken. Only Bound and Realize ever need to look inside one.
type ResolvedNotation struct {
	Kind ResolvedKind

	Bound bound.Bound // valid for RKLiteral, RKText, RKChild only

	Text       string // RKLiteral
	ChildIndex int    // RKChild

	Left, Right *ResolvedNotation // RKFollow, RKVert
	Inner       *ResolvedNotation // RKStyled, RKFocusMark

	Label style.StyleLabel // RKStyled
}

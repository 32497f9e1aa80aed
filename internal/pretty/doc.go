// Package pretty implements component H of spec.md §4: turning a tree of
// Doc nodes into concrete, positioned output on a Window, by recursively
// applying internal/layout's Compile+Realize at each node and recursing
// into child placeholders with the width that node's chosen layout gave
// them.
//
// Grounded on original_source/pretty/src/pretty/{pretty.rs,pretty_window.rs,
// plain_text.rs} for the overall shape (a PrettyDocument/PrettyScreen split,
// here Doc/Window) and original_source/src/pretty_doc.rs for what a real
// Doc implementation in this codebase needs to expose (id/notation/
// condition/lookup_style/node_style/num_children/text/child) -- ppp, the
// newer partial_pretty_printer crate pretty_doc.rs actually targets, isn't
// itself in the retrieval pack, so the recursion here is built directly
// against the older, fully-available pretty.rs/pretty_window.rs shape and
// widened to cover pretty_doc.rs's styling hooks.
package pretty

import "github.com/synless-editor/synless/internal/style"

// Doc is the read-only view the driver needs of one tree node in order to
// render it. A concrete implementation (internal/doc, layered over
// internal/node + internal/location) supplies cursor-awareness in
// NodeStyle/LookupStyle; this package never inspects a cursor itself.
//
// Doc deliberately omits unwrap_last_child/unwrap_prev_sibling from
// pretty_doc.rs's PrettyDoc: those exist there only to support an
// incremental re-layout optimization, which is out of scope (spec.md's
// Non-goals).
type Doc interface {
	// Notation is this node's resolved display notation.
	Notation() *style.Notation

	// Condition evaluates one of the Condition predicates an IfCondition
	// notation branches on, against this node and its siblings.
	Condition(cond style.Condition) bool

	// LookupStyle resolves a StyleLabel to a concrete style override, for
	// whatever Labels a Styled wrapper in Notation attaches. May depend on
	// this node's cursor state (e.g. StyleLabel Open only highlights when
	// the cursor sits at this exact child slot).
	LookupStyle(label style.StyleLabel) style.ConcreteStyle

	// NodeStyle is this node's own base style (e.g. a cursor or
	// invalid-text highlight), folded under every LookupStyle result.
	NodeStyle() style.ConcreteStyle

	// NumChildren reports how many children this node has, and false if
	// it is texty instead of branching.
	NumChildren() (int, bool)

	// Text is this node's text, valid only when NumChildren's second
	// result is false.
	Text() string

	// Child returns the i'th child's Doc view.
	Child(i int) Doc
}

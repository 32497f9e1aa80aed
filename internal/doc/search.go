package doc

import (
	"github.com/synless-editor/synless/internal/location"
	"github.com/synless-editor/synless/internal/node"
)

// FindFrom walks forward from loc in document order, testing predicate
// against every node the cursor passes over, and returns the location
// immediately before the first node predicate accepts. It returns
// (Location{}, false) once the walk runs off the end of the document
// without a match.
//
// Grounded on original_source/src/engine/search.rs's Search type, whose
// SearchPattern enum (Construct/Node/Substring/Regex) all reduce to "does
// this node match" -- collapsed here into a single caller-supplied
// predicate, since the menu/keymap layer that builds one of those four
// patterns from user input is out of scope (spec.md §1). The walk itself
// is original_source/src/tree/location.rs's inorder_next, already ported
// as internal/location.Location.InorderNext.
func (d *Doc) FindFrom(s *node.Storage, loc location.Location, predicate func(*node.Storage, node.Node) bool) (location.Location, bool) {
	cur := loc
	for {
		candidate, hasCandidate := cur.RightNode(s)
		next, ok := cur.InorderNext(s)
		if !ok {
			return location.Location{}, false
		}
		if hasCandidate && predicate(s, candidate) {
			return location.Before(s, candidate), true
		}
		cur = next
	}
}

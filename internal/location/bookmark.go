package location

import "github.com/synless-editor/synless/internal/node"

// Bookmark saves loc so it can be returned to later, even across
// edits. The bookmark may outlive the node it refers to.
func (loc Location) Bookmark() Bookmark {
	return Bookmark{loc.inner}
}

// ValidateBookmark resolves mark, as long as mark's node is still
// present somewhere in the same tree as loc. Works even if the tree was
// edited since the bookmark was taken; returns (_, false) if the
// bookmarked node has since been deleted, or now lives in a different
// tree.
func (loc Location) ValidateBookmark(s *node.Storage, mark Bookmark) (Location, bool) {
	markNode := mark.inner.referenceNode()
	if markNode.IsValid(s) && markNode.Root(s) == loc.RootNode(s) {
		return Location{mark.inner.normalize(s)}, true
	}
	return Location{}, false
}

package doc

import "errors"

// One sentinel per original_source/src/engine/doc.rs DocError variant,
// following internal/lang/errors.go's sentinel-catalog convention.
var (
	ErrNotInTextMode    = errors.New("cannot execute a text command while not in text mode")
	ErrNotInTreeMode    = errors.New("cannot execute a tree command while not in tree mode")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToRedo    = errors.New("nothing to redo")
	ErrCannotMove       = errors.New("cannot move there")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrCannotDeleteChar = errors.New("cannot delete character here")
	ErrCannotDeleteNode = errors.New("no node there to delete")
	ErrCannotInsertNode = errors.New("cannot insert that node here")
)

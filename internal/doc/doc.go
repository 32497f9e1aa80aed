// Package doc implements the command-dispatch, cursor, and undo/redo
// engine described in spec.md §4.J: every edit a caller wants to make
// goes through Doc.Execute, which records its inverse so Undo/Redo can
// play it back regardless of what the command actually did.
//
// Grounded directly on original_source/src/engine/{doc.rs,
// doc_command.rs}; the coarser engine.rs (multi-document management,
// clipboard, pane-based printing) is left to cmd/synless, since upstream
// itself leaves Engine::new as `todo!()`.
package doc

import (
	"github.com/google/uuid"

	"github.com/synless-editor/synless/internal/location"
	"github.com/synless-editor/synless/internal/node"
)

// UndoGroup is a set of edits undone/redone as a single unit.
type UndoGroup struct {
	restoreLoc location.Location
	commands   []undoStep
}

type undoStep struct {
	loc location.Location
	cmd EdCommand
}

// Doc is a single editable tree plus its cursor and undo history. ID
// identifies the Doc within a future multi-document session (a
// cmd/synless-level DocSet keyed the way the teacher's session store
// keys long-lived resources) independent of the tree's own root node,
// which can be swapped out by a full-document replace.
type Doc struct {
	ID        uuid.UUID
	Cursor    location.Location
	recent    *UndoGroup
	undoStack []UndoGroup
	redoStack []UndoGroup
}

// New creates a Doc with the cursor positioned just before root.
func New(s *node.Storage, root node.Node) *Doc {
	return &Doc{ID: uuid.New(), Cursor: location.Before(s, root)}
}

// Mode reports whether the cursor is in tree or text mode.
func (d *Doc) Mode() location.Mode { return d.Cursor.Mode() }

// Bookmark saves the current cursor position.
func (d *Doc) Bookmark() location.Bookmark { return d.Cursor.Bookmark() }

// GotoBookmark moves the cursor to mark, if mark is still valid in this
// document's tree.
func (d *Doc) GotoBookmark(s *node.Storage, mark location.Bookmark) error {
	newLoc, ok := d.Cursor.ValidateBookmark(s, mark)
	if !ok {
		return ErrBookmarkNotFound
	}
	d.Cursor = newLoc
	return nil
}

// Execute runs a single command. Editing commands clear the redo stack
// and accumulate into the current (not-yet-ended) undo group;
// navigation commands do neither.
func (d *Doc) Execute(s *node.Storage, cmd Command) error {
	switch cmd.target {
	case targetEd:
		d.redoStack = nil
		restoreLoc := d.Cursor
		undos, err := executeEd(s, cmd.ed, &d.Cursor)
		if err != nil {
			return err
		}
		if d.recent != nil {
			d.recent.commands = append(d.recent.commands, undos...)
		} else {
			d.recent = &UndoGroup{restoreLoc: restoreLoc, commands: undos}
		}
		return nil
	default:
		return executeNav(s, cmd.nav, &d.Cursor)
	}
}

// EndUndoGroup closes out whatever edits have accumulated since the
// last call to EndUndoGroup, so Undo/Redo treat them as one unit.
func (d *Doc) EndUndoGroup() {
	if d.recent != nil {
		d.undoStack = append(d.undoStack, *d.recent)
		d.recent = nil
	}
}

// Undo pops the last undo group and replays it in reverse, pushing its
// inverse onto the redo stack. Any not-yet-ended recent edits are
// folded into the group first.
func (d *Doc) Undo(s *node.Storage) error {
	d.EndUndoGroup()

	n := len(d.undoStack)
	if n == 0 {
		return ErrNothingToUndo
	}
	group := d.undoStack[n-1]
	d.undoStack = d.undoStack[:n-1]

	redoGroup := group.run(s, &d.Cursor)
	d.redoStack = append(d.redoStack, redoGroup)
	return nil
}

// Redo pops the last redo group and replays it, pushing its inverse
// back onto the undo stack.
func (d *Doc) Redo(s *node.Storage) error {
	n := len(d.redoStack)
	if n == 0 {
		return ErrNothingToRedo
	}
	group := d.redoStack[n-1]
	d.redoStack = d.redoStack[:n-1]

	undoGroup := group.run(s, &d.Cursor)
	d.undoStack = append(d.undoStack, undoGroup)
	return nil
}

// run replays g's commands in reverse (each is already the inverse of
// the edit that produced it), jumping the cursor to each command's
// recorded location first, then finally restoring g.restoreLoc. It
// returns the group built from the inverses of what it just replayed,
// ready to be pushed onto the opposite stack.
func (g UndoGroup) run(s *node.Storage, cursor *location.Location) UndoGroup {
	var redoRestoreLoc *location.Location
	var redos []undoStep
	for i := len(g.commands) - 1; i >= 0; i-- {
		step := g.commands[i]
		if redoRestoreLoc == nil {
			redoRestoreLoc = &step.loc
		}
		jumpTo(s, cursor, step.loc)
		more, err := executeEd(s, step.cmd, cursor)
		if err != nil {
			panic("doc: failed to undo/redo: " + err.Error())
		}
		redos = append(redos, more...)
	}
	jumpTo(s, cursor, g.restoreLoc)
	return UndoGroup{restoreLoc: *redoRestoreLoc, commands: redos}
}

func jumpTo(s *node.Storage, cursor *location.Location, loc location.Location) {
	*cursor = loc
}

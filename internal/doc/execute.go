package doc

import (
	"github.com/synless-editor/synless/internal/location"
	"github.com/synless-editor/synless/internal/node"
)

func executeEd(s *node.Storage, cmd EdCommand, cursor *location.Location) ([]undoStep, error) {
	switch cmd.Kind {
	case EdTreeInsert, EdTreeBackspace, EdTreeDelete:
		return executeTreeEd(s, cmd, cursor)
	default:
		return executeTextEd(s, cmd, cursor)
	}
}

func executeNav(s *node.Storage, cmd NavCommand, cursor *location.Location) error {
	switch cmd.Kind {
	case NavTreePrev, NavTreeFirst, NavTreeNext, NavTreeLast,
		NavTreeInorderNext, NavTreeInorderPrev, NavTreeParent,
		NavTreeLastChild, NavTreeEnterText:
		return executeTreeNav(s, cmd, cursor)
	default:
		return executeTextNav(s, cmd, cursor)
	}
}

func executeTreeEd(s *node.Storage, cmd EdCommand, cursor *location.Location) ([]undoStep, error) {
	if cursor.Mode() != location.ModeTree {
		return nil, ErrNotInTreeMode
	}

	switch cmd.Kind {
	case EdTreeInsert:
		replaced, ok := cursor.Insert(s, cmd.Node)
		if !ok {
			return nil, ErrCannotInsertNode
		}
		if replaced == (node.Node{}) {
			return []undoStep{{loc: *cursor, cmd: TreeBackspace()}}, nil
		}
		// Fixed-sequence replace: cursor now sits just after the new
		// node. The location just before it is where re-inserting
		// the replaced node will put it back.
		prevLoc, _ := cursor.PrevSibling(s)
		return []undoStep{{loc: prevLoc, cmd: TreeInsert(replaced)}}, nil

	case EdTreeBackspace:
		old, ok := cursor.DeleteNeighbor(s, true)
		if !ok {
			return nil, ErrCannotDeleteNode
		}
		return []undoStep{{loc: *cursor, cmd: TreeInsert(old)}}, nil

	case EdTreeDelete:
		old, ok := cursor.DeleteNeighbor(s, false)
		if !ok {
			return nil, ErrCannotDeleteNode
		}
		return []undoStep{{loc: *cursor, cmd: TreeInsert(old)}}, nil
	}
	panic("doc: unreachable tree-ed command")
}

func executeTextEd(s *node.Storage, cmd EdCommand, cursor *location.Location) ([]undoStep, error) {
	n, charIndex, ok := cursor.TextPos()
	if !ok {
		return nil, ErrNotInTextMode
	}
	t, _ := n.Text(s)

	switch cmd.Kind {
	case EdTextInsert:
		t.InsertAt(charIndex, cmd.Char)
		charIndex++
		*cursor = cursor.WithCharPos(charIndex)
		return []undoStep{{loc: *cursor, cmd: TextBackspace()}}, nil

	case EdTextBackspace:
		if charIndex == 0 {
			return nil, ErrCannotDeleteChar
		}
		ch := t.DeleteAt(charIndex - 1)
		charIndex--
		*cursor = cursor.WithCharPos(charIndex)
		return []undoStep{{loc: *cursor, cmd: TextInsert(ch)}}, nil

	case EdTextDelete:
		if charIndex == t.NumChars() {
			return nil, ErrCannotDeleteChar
		}
		ch := t.DeleteAt(charIndex)
		return []undoStep{{loc: *cursor, cmd: TextInsert(ch)}}, nil
	}
	panic("doc: unreachable text-ed command")
}

func executeTreeNav(s *node.Storage, cmd NavCommand, cursor *location.Location) error {
	if cursor.Mode() != location.ModeTree {
		return ErrNotInTreeMode
	}

	var newLoc location.Location
	var ok bool
	switch cmd.Kind {
	case NavTreePrev:
		newLoc, ok = cursor.PrevCousin(s)
	case NavTreeNext:
		newLoc, ok = cursor.NextCousin(s)
	case NavTreeFirst:
		newLoc, ok = cursor.First(s)
	case NavTreeLast:
		newLoc, ok = cursor.Last(s)
	case NavTreeParent:
		newLoc, ok = cursor.AfterParent(s)
	case NavTreeLastChild:
		var left node.Node
		left, ok = cursor.LeftNode(s)
		if ok {
			newLoc, ok = location.AfterChildren(s, left)
		}
	case NavTreeInorderNext:
		newLoc, ok = cursor.InorderNext(s)
	case NavTreeInorderPrev:
		newLoc, ok = cursor.InorderPrev(s)
	case NavTreeEnterText:
		var left node.Node
		left, ok = cursor.LeftNode(s)
		if ok {
			newLoc, ok = location.EndOfText(s, left)
		}
	}

	if !ok {
		return ErrCannotMove
	}
	*cursor = newLoc
	return nil
}

func executeTextNav(s *node.Storage, cmd NavCommand, cursor *location.Location) error {
	n, charIndex, ok := cursor.TextPos()
	if !ok {
		return ErrNotInTextMode
	}
	t, _ := n.Text(s)

	switch cmd.Kind {
	case NavTextLeft:
		if charIndex == 0 {
			return ErrCannotMove
		}
		*cursor = cursor.WithCharPos(charIndex - 1)
	case NavTextRight:
		if charIndex >= t.NumChars() {
			return ErrCannotMove
		}
		*cursor = cursor.WithCharPos(charIndex + 1)
	case NavTextBeginning:
		*cursor = cursor.WithCharPos(0)
	case NavTextEnd:
		*cursor = cursor.WithCharPos(t.NumChars())
	case NavTextExitText:
		newLoc, ok := cursor.ExitText()
		if !ok {
			panic("doc: exit-text command in text mode but ExitText failed")
		}
		*cursor = newLoc
	}
	return nil
}

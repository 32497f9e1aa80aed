package doc

import "github.com/synless-editor/synless/internal/node"

// EdCommandKind, NavCommandKind discriminate the editing/navigation
// command sum types (spec.md §4.J), using the same kind+fields tagged
// struct this codebase already uses for internal/style.Notation and
// internal/style.StyleLabel rather than Rust's nested enum-of-enums.
type EdCommandKind int

const (
	EdTreeInsert EdCommandKind = iota
	EdTreeBackspace
	EdTreeDelete
	EdTextInsert
	EdTextBackspace
	EdTextDelete
)

// EdCommand is one editing command, grounded on
// original_source/src/engine/doc_command.rs's TreeEdCommand/
// TextEdCommand.
type EdCommand struct {
	Kind EdCommandKind
	Node node.Node // EdTreeInsert
	Char rune      // EdTextInsert
}

func TreeInsert(n node.Node) EdCommand { return EdCommand{Kind: EdTreeInsert, Node: n} }
func TreeBackspace() EdCommand         { return EdCommand{Kind: EdTreeBackspace} }
func TreeDelete() EdCommand            { return EdCommand{Kind: EdTreeDelete} }
func TextInsert(ch rune) EdCommand     { return EdCommand{Kind: EdTextInsert, Char: ch} }
func TextBackspace() EdCommand         { return EdCommand{Kind: EdTextBackspace} }
func TextDelete() EdCommand            { return EdCommand{Kind: EdTextDelete} }

// NavCommandKind enumerates every cursor-motion command.
type NavCommandKind int

const (
	NavTreePrev NavCommandKind = iota
	NavTreeFirst
	NavTreeNext
	NavTreeLast
	NavTreeInorderNext
	NavTreeInorderPrev
	NavTreeParent
	NavTreeLastChild
	NavTreeEnterText
	NavTextLeft
	NavTextRight
	NavTextBeginning
	NavTextEnd
	NavTextExitText
)

// NavCommand is one cursor-motion command, grounded on
// original_source/src/engine/doc_command.rs's TreeNavCommand/
// TextNavCommand.
type NavCommand struct {
	Kind NavCommandKind
}

func TreePrev() NavCommand        { return NavCommand{Kind: NavTreePrev} }
func TreeFirst() NavCommand       { return NavCommand{Kind: NavTreeFirst} }
func TreeNext() NavCommand        { return NavCommand{Kind: NavTreeNext} }
func TreeLast() NavCommand        { return NavCommand{Kind: NavTreeLast} }
func TreeInorderNext() NavCommand { return NavCommand{Kind: NavTreeInorderNext} }
func TreeInorderPrev() NavCommand { return NavCommand{Kind: NavTreeInorderPrev} }
func TreeParent() NavCommand      { return NavCommand{Kind: NavTreeParent} }
func TreeLastChild() NavCommand   { return NavCommand{Kind: NavTreeLastChild} }
func TreeEnterText() NavCommand   { return NavCommand{Kind: NavTreeEnterText} }
func TextLeft() NavCommand        { return NavCommand{Kind: NavTextLeft} }
func TextRight() NavCommand       { return NavCommand{Kind: NavTextRight} }
func TextBeginning() NavCommand   { return NavCommand{Kind: NavTextBeginning} }
func TextEnd() NavCommand         { return NavCommand{Kind: NavTextEnd} }
func TextExitText() NavCommand    { return NavCommand{Kind: NavTextExitText} }

// commandTarget discriminates whether a Command carries an EdCommand or
// a NavCommand -- the single entry point Doc.Execute accepts, mirroring
// DocCommand's role as the keymap layer's one dispatch type.
type commandTarget int

const (
	targetEd commandTarget = iota
	targetNav
)

// Command is the single type Doc.Execute accepts, wrapping either an
// EdCommand or a NavCommand.
type Command struct {
	target commandTarget
	ed     EdCommand
	nav    NavCommand
}

func Ed(cmd EdCommand) Command   { return Command{target: targetEd, ed: cmd} }
func Nav(cmd NavCommand) Command { return Command{target: targetNav, nav: cmd} }

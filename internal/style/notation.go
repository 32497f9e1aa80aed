package style

// NotationKind discriminates the Notation sum type (spec.md §4.F). Go has
// no native sum types; a tagged struct with kind-specific fields is this
// codebase's stand-in, the same technique go/ast uses for its Expr nodes.
type NotationKind int

const (
	NEmpty NotationKind = iota
	NLiteral
	NText
	NChild
	NFollow
	NVert
	NNoWrap
	NChoice
	NIfEmptyText
	NIfCondition
	NRepeat
	NLeft     // valid only inside a Repeat's Join notation
	NRight    // valid only inside a Repeat's Join notation
	NSurrounded // valid only inside a Repeat's Surround notation
	NFocusMark
	NStyled
)

// Notation describes how to display a single syntactic construct
// (spec.md §4.F). It is built once per construct at language-compile
// time and is otherwise immutable; internal/layout compiles it into a
// BoundSet and, for the width actually chosen, a concrete Layout tree.
type Notation struct {
	Kind NotationKind

	Text string // NLiteral

	ChildIndex int // NChild

	Left, Right *Notation // NFollow, NVert, NIfEmptyText/NIfCondition (then/else)

	Inner *Notation // NNoWrap, NFocusMark, NStyled

	Choices []*Notation // NChoice

	Condition Condition  // NIfCondition
	Label     StyleLabel // NStyled

	Repeat *RepeatNotation // NRepeat
}

// RepeatNotation describes how to display the variable-arity children of
// a listy construct (spec.md §4.F): Empty/Lone are the 0- and 1-child
// cases; Join folds left-to-right over Left/Right placeholders, and the
// accumulated result is finally wrapped in Surround with Surrounded
// standing for the folded total.
type RepeatNotation struct {
	Empty     *Notation
	Lone      *Notation
	Join      *Notation // contains NLeft / NRight leaves
	Surround  *Notation // contains an NSurrounded leaf
}

func Empty() *Notation { return &Notation{Kind: NEmpty} }
func Lit(s string) *Notation { return &Notation{Kind: NLiteral, Text: s} }
func Text() *Notation { return &Notation{Kind: NText} }
func Child(i int) *Notation { return &Notation{Kind: NChild, ChildIndex: i} }
func Follow(a, b *Notation) *Notation { return &Notation{Kind: NFollow, Left: a, Right: b} }
func Vert(a, b *Notation) *Notation { return &Notation{Kind: NVert, Left: a, Right: b} }
func NoWrap(n *Notation) *Notation { return &Notation{Kind: NNoWrap, Inner: n} }

func Choice(ns ...*Notation) *Notation {
	return &Notation{Kind: NChoice, Choices: ns}
}

func IfEmptyText(ifEmpty, ifNonEmpty *Notation) *Notation {
	return &Notation{Kind: NIfEmptyText, Left: ifEmpty, Right: ifNonEmpty}
}

func IfCondition(cond Condition, then, els *Notation) *Notation {
	return &Notation{Kind: NIfCondition, Condition: cond, Left: then, Right: els}
}

func Repeat(r RepeatNotation) *Notation {
	return &Notation{Kind: NRepeat, Repeat: &r}
}

func LeftLeaf() *Notation      { return &Notation{Kind: NLeft} }
func RightLeaf() *Notation     { return &Notation{Kind: NRight} }
func SurroundedLeaf() *Notation { return &Notation{Kind: NSurrounded} }

func FocusMark(n *Notation) *Notation { return &Notation{Kind: NFocusMark, Inner: n} }

func Styled(label StyleLabel, n *Notation) *Notation {
	return &Notation{Kind: NStyled, Label: label, Inner: n}
}

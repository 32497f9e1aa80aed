package layout

import (
	"github.com/synless-editor/synless/internal/bound"
	"github.com/synless-editor/synless/internal/style"
)

// Pos is an upper-left screen position: Row is a line number, Col is a
// column, both 0-based.
type Pos struct {
	Row, Col int
}

// Region is a rectangular area of the screen: an upper-left Pos plus the
// Bound it occupies.
type Region struct {
	Pos   Pos
	Bound bound.Bound
}

// End returns the position immediately following this region on its last
// line -- where a Follow'd sibling would begin. Bound.Indent is measured
// relative to the region's own left margin, so it must be added to
// Pos.Col to become an absolute column.
func (r Region) End() Pos {
	return Pos{Row: r.Pos.Row + r.Bound.Height - 1, Col: r.Pos.Col + r.Bound.Indent}
}

// ElementKind discriminates Element.
type ElementKind int

const (
	ElementLiteral ElementKind = iota
	ElementText
	ElementChild
)

// Element is one concrete thing to draw: a literal string, a texty
// node's own text, or a nested child node (rendered by recursing into
// the driver, not by this package). Styled/FocusMark wrappers are
// flattened into Labels/IsFocus on whichever Elements they enclose.
// Labels is ordered outermost-to-innermost, the order internal/pretty's
// driver must fold through style.Combine to get a final ConcreteStyle
// (spec.md §4.H "styles nest; an inner StyleLabel is layered on top of
// its enclosing one, never replaces it").
type Element struct {
	Kind       ElementKind
	Region     Region
	Text       string // ElementLiteral
	ChildIndex int    // ElementChild
	Labels     []style.StyleLabel
	IsFocus    bool
}

// Layout is a concrete rendering plan for one node at one screen width:
// every Element to draw, plus Children indexed by position for direct
// lookup (spec.md §4.G).
type Layout struct {
	Elements []Element
	Children []*Element // indexed by NChild's index; nil if not present
	Bound    bound.Bound
}

// Realize picks the best-fitting entry of a BoundSet for the given width
// and turns it into a concrete Layout (spec.md §4.G). numChildren sizes
// the Children index.
func Realize(set *bound.BoundSet[*ResolvedNotation], width int, numChildren int) (Layout, error) {
	_, resolved, err := set.FitWidth(width)
	if err != nil {
		return Layout{}, err
	}
	r := &realizer{out: Layout{Children: make([]*Element, numChildren)}}
	b := r.layOut(resolved, Pos{}, nil, false)
	r.out.Bound = b
	return r.out, nil
}

type realizer struct {
	out Layout
}

// layOut mirrors original_source/pretty/src/layout/compute_layout.rs's
// ComputeLayout::lay_out, threading the accumulated Styled/FocusMark
// state (labels, focus) down to whichever leaf Elements it eventually
// wraps, since our Notation folds those in as wrapper kinds rather than
// the original's per-leaf Style field. labels is never mutated in place:
// RKStyled always appends to a fresh copy, so sibling recursions (e.g.
// the two sides of a Follow) never see each other's labels.
func (r *realizer) layOut(n *ResolvedNotation, pos Pos, labels []style.StyleLabel, focus bool) bound.Bound {
	switch n.Kind {
	case RKEmpty:
		return bound.Empty()

	case RKLiteral:
		region := Region{Pos: pos, Bound: n.Bound}
		r.out.Elements = append(r.out.Elements, Element{
			Kind: ElementLiteral, Region: region, Text: n.Text, Labels: labels, IsFocus: focus,
		})
		return n.Bound

	case RKText:
		region := Region{Pos: pos, Bound: n.Bound}
		r.out.Elements = append(r.out.Elements, Element{
			Kind: ElementText, Region: region, Labels: labels, IsFocus: focus,
		})
		return n.Bound

	case RKChild:
		region := Region{Pos: pos, Bound: n.Bound}
		el := Element{Kind: ElementChild, Region: region, ChildIndex: n.ChildIndex, Labels: labels, IsFocus: focus}
		r.out.Elements = append(r.out.Elements, el)
		r.out.Children[n.ChildIndex] = &el
		return n.Bound

	case RKFollow:
		leftBound := r.layOut(n.Left, pos, labels, focus)
		end := Region{Pos: pos, Bound: leftBound}.End()
		rightBound := r.layOut(n.Right, end, labels, focus)
		return bound.Follow(leftBound, rightBound)

	case RKVert:
		topBound := r.layOut(n.Left, pos, labels, focus)
		nextPos := Pos{Row: pos.Row + topBound.Height, Col: pos.Col}
		bottomBound := r.layOut(n.Right, nextPos, labels, focus)
		return bound.Vert(topBound, bottomBound)

	case RKStyled:
		nested := append(append([]style.StyleLabel{}, labels...), n.Label)
		return r.layOut(n.Inner, pos, nested, focus)

	case RKFocusMark:
		return r.layOut(n.Inner, pos, labels, true)

	default:
		panic("layout: unknown ResolvedNotation kind")
	}
}

package layout

import (
	"github.com/synless-editor/synless/internal/bound"
	"github.com/synless-editor/synless/internal/style"
)

// joinPair is the `in_join` context compute_bounds.rs threads through the
// Repeat recursion: inside a Join notation, Left/Right resolve to the
// accumulator-so-far and the next child, respectively.
type joinPair struct {
	left, right *bound.BoundSet[*ResolvedNotation]
}

// Compile computes the BoundSet of every candidate layout for notation n,
// given the already-compiled BoundSets of its children (childBounds[i]
// for NChild(i), and childBounds[0] doubling as the text envelope for
// NText on a texty node -- a node is never both texty and has indexed
// children, so the single slot is unambiguous), whether the node is
// texty with empty text, and an evaluator for NIfCondition's Condition
// (spec.md §4.F).
func Compile(
	n *style.Notation,
	childBounds []*bound.BoundSet[struct{}],
	isEmptyText bool,
	evalCondition func(style.Condition) bool,
) *bound.BoundSet[*ResolvedNotation] {
	c := &compiler{childBounds: childBounds, isEmptyText: isEmptyText, evalCondition: evalCondition}
	return c.compute(n, nil, nil)
}

type compiler struct {
	childBounds   []*bound.BoundSet[struct{}]
	isEmptyText   bool
	evalCondition func(style.Condition) bool
}

func (c *compiler) compute(n *style.Notation, inJoin *joinPair, inSurround *bound.BoundSet[*ResolvedNotation]) *bound.BoundSet[*ResolvedNotation] {
	switch n.Kind {
	case style.NEmpty:
		return bound.Singleton(bound.Empty(), &ResolvedNotation{Kind: RKEmpty})

	case style.NLiteral:
		b := bound.Literal(n.Text)
		return bound.Singleton(b, &ResolvedNotation{Kind: RKLiteral, Text: n.Text, Bound: b})

	case style.NText:
		return c.getTextBounds()

	case style.NChild:
		return c.getChildBounds(n.ChildIndex)

	case style.NFollow:
		left := c.compute(n.Left, inJoin, inSurround)
		right := c.compute(n.Right, inJoin, inSurround)
		return bound.FollowCombine(left, right, func(l, r *ResolvedNotation) *ResolvedNotation {
			return &ResolvedNotation{Kind: RKFollow, Left: l, Right: r}
		})

	case style.NVert:
		top := c.compute(n.Left, inJoin, inSurround)
		bottom := c.compute(n.Right, inJoin, inSurround)
		return bound.VertCombine(top, bottom, func(t, b *ResolvedNotation) *ResolvedNotation {
			return &ResolvedNotation{Kind: RKVert, Left: t, Right: b}
		})

	case style.NIfEmptyText:
		if c.isEmptyText {
			return c.compute(n.Left, inJoin, inSurround)
		}
		return c.compute(n.Right, inJoin, inSurround)

	case style.NIfCondition:
		if c.evalCondition(n.Condition) {
			return c.compute(n.Left, inJoin, inSurround)
		}
		return c.compute(n.Right, inJoin, inSurround)

	case style.NNoWrap:
		inner := c.compute(n.Inner, inJoin, inSurround)
		return inner.Filter(func(b bound.Bound, _ *ResolvedNotation) bool { return b.Height == 1 })

	case style.NChoice:
		out := bound.New[*ResolvedNotation]()
		for _, choice := range n.Choices {
			for _, e := range c.compute(choice, inJoin, inSurround).Entries() {
				out.Insert(e.Bound, e.Value)
			}
		}
		return out

	case style.NRepeat:
		return c.computeRepeat(n.Repeat)

	case style.NLeft:
		if inJoin == nil {
			panic("layout: Left notation used outside of a Repeat Join")
		}
		return inJoin.left

	case style.NRight:
		if inJoin == nil {
			panic("layout: Right notation used outside of a Repeat Join")
		}
		return inJoin.right

	case style.NSurrounded:
		if inSurround == nil {
			panic("layout: Surrounded notation used outside of a Repeat Surround")
		}
		return inSurround

	case style.NFocusMark:
		inner := c.compute(n.Inner, inJoin, inSurround)
		return bound.Map(inner, func(_ bound.Bound, v *ResolvedNotation) *ResolvedNotation {
			return &ResolvedNotation{Kind: RKFocusMark, Inner: v}
		})

	case style.NStyled:
		inner := c.compute(n.Inner, inJoin, inSurround)
		return bound.Map(inner, func(_ bound.Bound, v *ResolvedNotation) *ResolvedNotation {
			return &ResolvedNotation{Kind: RKStyled, Label: n.Label, Inner: v}
		})

	default:
		panic("layout: unknown Notation kind")
	}
}

// computeRepeat expands a listy node's Repeat notation over its actual
// number of children (spec.md §4.F): zero children uses Empty, one uses
// Lone, and two or more fold Join left-to-right over the accumulated
// BoundSet and each subsequent child before finally applying Surround.
func (c *compiler) computeRepeat(r *style.RepeatNotation) *bound.BoundSet[*ResolvedNotation] {
	switch len(c.childBounds) {
	case 0:
		return c.compute(r.Empty, nil, nil)
	case 1:
		return c.compute(r.Lone, nil, nil)
	default:
		total := c.getChildBounds(0)
		for i := 1; i < len(c.childBounds); i++ {
			child := c.getChildBounds(i)
			total = c.compute(r.Join, &joinPair{left: total, right: child}, nil)
		}
		return c.compute(r.Surround, nil, total)
	}
}

func (c *compiler) getChildBounds(i int) *bound.BoundSet[*ResolvedNotation] {
	out := bound.New[*ResolvedNotation]()
	for _, e := range c.childBounds[i].Entries() {
		out.Insert(e.Bound, &ResolvedNotation{Kind: RKChild, ChildIndex: i, Bound: e.Bound})
	}
	return out
}

func (c *compiler) getTextBounds() *bound.BoundSet[*ResolvedNotation] {
	out := bound.New[*ResolvedNotation]()
	for _, e := range c.childBounds[0].Entries() {
		out.Insert(e.Bound, &ResolvedNotation{Kind: RKText, Bound: e.Bound})
	}
	return out
}

package pretty

import (
	"github.com/synless-editor/synless/internal/bound"
	"github.com/synless-editor/synless/internal/layout"
	"github.com/synless-editor/synless/internal/style"
)

// Driver renders a Doc tree to a Window at a given width, by recursively
// compiling and realizing internal/layout's notation algebra one node at
// a time. Grounded on original_source/pretty/src/pretty/pretty.rs's
// generic_lay_out + pretty_print_rec pair, collapsed into one recursive
// method since Go has no need for their split into a cacheable
// compute_bounds step and a separate printing step (spec.md's Non-goals
// exclude incremental re-layout, so there is nothing to cache across
// renders).
//
// Driver has no state of its own: Base16Color resolution is owned by
// whatever Doc implementation computes NodeStyle/LookupStyle (it already
// needs a theme to do that), not by the driver.
type Driver struct{}

// NewDriver constructs a Driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Render prints doc to win, wrapping at width columns (or win's own width,
// if width is <= 0).
func (d *Driver) Render(doc Doc, win Window, width int) error {
	if width <= 0 {
		size, err := win.Size()
		if err != nil {
			return err
		}
		width = size.Col
	}
	return d.render(doc, win, layout.Pos{}, width, style.ConcreteStyle{})
}

// computeBounds computes doc's size envelope bottom-up, mirroring
// pretty.rs's generic_lay_out/compute_bounds: a node's Bounds depend only
// on its own Notation and its children's Bounds, never on the eventual
// print width.
func computeBounds(doc Doc) *bound.BoundSet[struct{}] {
	resolved := compileNode(doc)
	return bound.Map(resolved, func(_ bound.Bound, _ *layout.ResolvedNotation) struct{} { return struct{}{} })
}

// compileNode gathers doc's children's envelopes and compiles doc's own
// Notation against them (spec.md §4.F).
func compileNode(doc Doc) *bound.BoundSet[*layout.ResolvedNotation] {
	numChildren, isBranch := doc.NumChildren()
	var childBounds []*bound.BoundSet[struct{}]
	isEmptyText := false
	if isBranch {
		childBounds = make([]*bound.BoundSet[struct{}], numChildren)
		for i := 0; i < numChildren; i++ {
			childBounds[i] = computeBounds(doc.Child(i))
		}
	} else {
		text := doc.Text()
		isEmptyText = text == ""
		childBounds = []*bound.BoundSet[struct{}]{bound.Singleton(bound.Literal(text), struct{}{})}
	}
	return layout.Compile(doc.Notation(), childBounds, isEmptyText, doc.Condition)
}

// render lays out and prints doc at pos, recursing into ElementChild
// entries with the width doc's own chosen layout assigned that slot
// (mirroring pretty_print_rec's Child case re-fitting the child within
// lay.region.bound), and folds baseStyle under doc's own NodeStyle and
// every Styled label enclosing each Element in turn.
func (d *Driver) render(doc Doc, win Window, pos layout.Pos, width int, baseStyle style.ConcreteStyle) error {
	numChildren, isBranch := doc.NumChildren()
	childCount := 0
	if isBranch {
		childCount = numChildren
	}
	resolved := compileNode(doc)
	lay, err := layout.Realize(resolved, width, childCount)
	if err != nil {
		return err
	}

	nodeStyle := style.Layer(baseStyle, doc.NodeStyle())

	for _, el := range lay.Elements {
		if el.Kind == layout.ElementChild {
			continue
		}
		concrete := nodeStyle
		for _, label := range el.Labels {
			concrete = style.Layer(concrete, doc.LookupStyle(label))
		}
		text := el.Text
		if el.Kind == layout.ElementText {
			text = doc.Text()
		}
		absPos := layout.Pos{Row: pos.Row + el.Region.Pos.Row, Col: pos.Col + el.Region.Pos.Col}
		if err := win.Print(absPos, text, concrete); err != nil {
			return err
		}
	}

	for i, el := range lay.Children {
		if el == nil {
			continue
		}
		concrete := nodeStyle
		for _, label := range el.Labels {
			concrete = style.Layer(concrete, doc.LookupStyle(label))
		}
		absPos := layout.Pos{Row: pos.Row + el.Region.Pos.Row, Col: pos.Col + el.Region.Pos.Col}
		if err := d.render(doc.Child(i), win, absPos, el.Region.Bound.Width, concrete); err != nil {
			return err
		}
	}

	return nil
}

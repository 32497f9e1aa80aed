// Package bound implements the Bound / BoundSet size algebra spec.md
// §4.E describes: a Bound is the {width, height, indent} footprint a
// layout occupies, and a BoundSet is the Pareto-minimal frontier of
// Bounds achievable by a Choice of alternatives, carrying a witness value
// of type T recording how each bound is achieved (internal/layout
// instantiates T with either struct{} for a pure size computation, or
// *layout.ResolvedNotation once the actual layout is wanted).
//
// Ported from original_source/pretty/src/layout/layout.rs's Bound
// combinators (follow == its concat, vert == its vert), adjusted to
// spec.md §4.E's exact height convention (a single line has height 1, not
// 0, so vert adds heights directly instead of height+height+1).
package bound

import "github.com/mattn/go-runewidth"

// Bound is the rectangular footprint of a layout: the widest line it
// contains, how many lines it spans, and the column its last line ends
// at (the "indent" the next thing following it, via Follow, would start
// from).
type Bound struct {
	Width, Height, Indent int
}

// Empty is the footprint of displaying nothing.
func Empty() Bound { return Bound{Width: 0, Height: 1, Indent: 0} }

// Literal is the footprint of a single-line literal string, using
// terminal display width (via go-runewidth) rather than a naive rune
// count, so wide (e.g. CJK) characters are sized correctly.
func Literal(s string) Bound {
	w := runewidth.StringWidth(s)
	return Bound{Width: w, Height: 1, Indent: w}
}

// Follow is the footprint of displaying a immediately followed by b: b's
// first line starts at a's indent, and b's last line becomes the new
// indent (spec.md §4.E).
func Follow(a, b Bound) Bound {
	return Bound{
		Width:  max(a.Width, a.Indent+b.Width),
		Height: a.Height + b.Height - 1,
		Indent: a.Indent + b.Indent,
	}
}

// Vert is the footprint of displaying a above b on its own line(s); only
// b's indent survives since a's last line is followed by a hard newline.
func Vert(a, b Bound) Bound {
	return Bound{
		Width:  max(a.Width, b.Width),
		Height: a.Height + b.Height,
		Indent: b.Indent,
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// dominates reports whether a is at least as good as b in every
// dimension (width, height, indent) and strictly better in at least one
// -- the Pareto order BoundSet maintains its frontier under.
func dominates(a, b Bound) bool {
	if a.Width > b.Width || a.Height > b.Height || a.Indent > b.Indent {
		return false
	}
	return a != b
}

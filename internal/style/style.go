// Package style carries the notation-level styling vocabulary shared by
// the language registry (internal/lang), the layout compiler
// (internal/layout), and the pretty-print driver (internal/pretty):
// StyleLabel/Condition tag a Notation leaf or combinator (spec.md §4.C,
// §4.H), Base16Color/ColorTheme resolve those tags against a palette, and
// ConcreteStyle is the fully-resolved form a Window actually draws.
//
// Ported from original_source/src/style.rs, generalized from the
// original's generic Notation<StyleLabel, Condition> to a concrete Go
// Notation type (see internal/style/notation.go).
package style

import "github.com/charmbracelet/lipgloss"

// Priority is carried on a Properties label. Neither Combine nor Layer
// reads it: when nested labels both set a property (e.g. fg_color), the
// label applied last -- the innermost one -- wins, whatever its Priority.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityHigh
)

// CursorHalf distinguishes which half of a cursor-straddled boundary a
// style combinator is drawing (used when the cursor sits inside an empty
// text node or between two nodes).
type CursorHalf int

const (
	CursorLeft CursorHalf = iota
	CursorRight
)

// StyleLabelKind discriminates the StyleLabel sum type.
type StyleLabelKind int

const (
	LabelOpen StyleLabelKind = iota
	LabelClose
	LabelHole
	LabelProperties
)

// StyleLabel tags a Notation node with how it should be styled. Open/
// Close/Hole are fixed roles (bracket punctuation, the $hole glyph);
// Properties carries an explicit, independently-optional set of style
// overrides, mirroring the original's struct-variant enum case.
type StyleLabel struct {
	Kind StyleLabelKind

	// Valid only when Kind == LabelProperties; a nil pointer means "don't
	// override this property here", as opposed to "override it to empty".
	FgColor    *Base16Color
	BgColor    *Base16Color
	Bold       *bool
	Underlined *bool
	Priority   Priority
}

func Open() StyleLabel  { return StyleLabel{Kind: LabelOpen} }
func Close() StyleLabel { return StyleLabel{Kind: LabelClose} }
func Hole() StyleLabel  { return StyleLabel{Kind: LabelHole} }

// ConditionKind discriminates the Condition sum type evaluated by the
// pretty-print driver against the live document (spec.md §4.H).
type ConditionKind int

const (
	CondIsEmptyText ConditionKind = iota
	CondIsInvalidText
	CondIsCommentOrWs
	CondNeedsSeparator
)

// Condition is a predicate a Notation's IfCondition combinator tests
// against the node currently being rendered.
type Condition struct {
	Kind ConditionKind
}

func IsEmptyText() Condition   { return Condition{Kind: CondIsEmptyText} }
func IsInvalidText() Condition { return Condition{Kind: CondIsInvalidText} }
func IsCommentOrWs() Condition { return Condition{Kind: CondIsCommentOrWs} }
func NeedsSeparator() Condition { return Condition{Kind: CondNeedsSeparator} }

// Base16Color names one of the 16 slots of a base16 color scheme
// (https://github.com/chriskempson/base16), rather than a raw RGB triple,
// so a ColorTheme can be swapped without touching any notation.
type Base16Color int

const (
	Base00 Base16Color = iota
	Base01
	Base02
	Base03
	Base04
	Base05
	Base06
	Base07
	Base08
	Base09
	Base0A
	Base0B
	Base0C
	Base0D
	Base0E
	Base0F
)

// Rgb is a 24-bit color, the unit ColorTheme resolves Base16Color into.
type Rgb struct {
	R, G, B uint8
}

// ColorTheme maps every Base16Color slot to a concrete Rgb.
type ColorTheme struct {
	Base00, Base01, Base02, Base03 Rgb
	Base04, Base05, Base06, Base07 Rgb
	Base08, Base09, Base0A, Base0B Rgb
	Base0C, Base0D, Base0E, Base0F Rgb
}

func (t *ColorTheme) Resolve(c Base16Color) Rgb {
	switch c {
	case Base00:
		return t.Base00
	case Base01:
		return t.Base01
	case Base02:
		return t.Base02
	case Base03:
		return t.Base03
	case Base04:
		return t.Base04
	case Base05:
		return t.Base05
	case Base06:
		return t.Base06
	case Base07:
		return t.Base07
	case Base08:
		return t.Base08
	case Base09:
		return t.Base09
	case Base0A:
		return t.Base0A
	case Base0B:
		return t.Base0B
	case Base0C:
		return t.Base0C
	case Base0D:
		return t.Base0D
	case Base0E:
		return t.Base0E
	case Base0F:
		return t.Base0F
	default:
		return t.Base05
	}
}

// ConcreteStyle is a fully-resolved style, ready to be turned into a
// lipgloss.Style by a Window implementation (internal/pretty).
type ConcreteStyle struct {
	FgColor    *Rgb
	BgColor    *Rgb
	Bold       bool
	Underlined bool
	Cursor     *CursorHalf
	IsHole     bool
}

// HoleStyle, LeftCursorStyle, RightCursorStyle are the fixed ConcreteStyle
// overlays a Doc implementation reaches for when resolving StyleLabel.Hole,
// StyleLabel.Open at the cursor, and the node on either side of the
// cursor (spec.md §4.H;
// original_source/src/style.rs's HOLE_STYLE/LEFT_CURSOR_STYLE/
// RIGHT_CURSOR_STYLE constants, ported as functions since Go has no
// const-struct-literal-with-pointer-fields equivalent).
func HoleStyle(theme *ColorTheme) ConcreteStyle {
	c := theme.Resolve(Base0F)
	return ConcreteStyle{IsHole: true, Bold: true, FgColor: &c}
}

func LeftCursorStyle(theme *ColorTheme) ConcreteStyle {
	half := CursorLeft
	c := theme.Resolve(Base02)
	return ConcreteStyle{Cursor: &half, BgColor: &c}
}

func RightCursorStyle(theme *ColorTheme) ConcreteStyle {
	half := CursorRight
	c := theme.Resolve(Base00)
	return ConcreteStyle{Cursor: &half, BgColor: &c}
}

// Layer merges an override ConcreteStyle on top of a base one, the
// override's set fields winning -- used by internal/pretty's driver to
// fold a Doc's per-StyleLabel resolutions (which may depend on cursor
// position, unlike Combine's pure label+theme case) onto a node's own
// base style.
func Layer(base, override ConcreteStyle) ConcreteStyle {
	result := base
	if override.FgColor != nil {
		result.FgColor = override.FgColor
	}
	if override.BgColor != nil {
		result.BgColor = override.BgColor
	}
	if override.Bold {
		result.Bold = true
	}
	if override.Underlined {
		result.Underlined = true
	}
	if override.Cursor != nil {
		result.Cursor = override.Cursor
	}
	if override.IsHole {
		result.IsHole = true
	}
	return result
}

// Lipgloss turns a resolved ConcreteStyle into a lipgloss.Style, the one
// place this codebase depends on lipgloss (internal/pretty's terminal
// Window calls this per printed span; it never builds a lipgloss.Style
// itself).
func (cs ConcreteStyle) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle()
	if cs.FgColor != nil {
		s = s.Foreground(lipgloss.Color(hexColor(*cs.FgColor)))
	}
	if cs.BgColor != nil {
		s = s.Background(lipgloss.Color(hexColor(*cs.BgColor)))
	}
	if cs.Bold {
		s = s.Bold(true)
	}
	if cs.Underlined {
		s = s.Underline(true)
	}
	return s
}

func hexColor(c Rgb) string {
	const hex = "0123456789abcdef"
	b := []byte{'#',
		hex[c.R>>4], hex[c.R&0xf],
		hex[c.G>>4], hex[c.G&0xf],
		hex[c.B>>4], hex[c.B&0xf],
	}
	return string(b)
}

// Combine layers a StyleLabel onto an already-resolved ConcreteStyle:
// every property the label sets overwrites the one in outer. The label's
// Priority is not consulted.
func Combine(outer ConcreteStyle, label StyleLabel, theme *ColorTheme) ConcreteStyle {
	result := outer
	switch label.Kind {
	case LabelHole:
		result.IsHole = true
	case LabelProperties:
		if label.FgColor != nil {
			c := theme.Resolve(*label.FgColor)
			result.FgColor = &c
		}
		if label.BgColor != nil {
			c := theme.Resolve(*label.BgColor)
			result.BgColor = &c
		}
		if label.Bold != nil {
			result.Bold = *label.Bold
		}
		if label.Underlined != nil {
			result.Underlined = *label.Underlined
		}
	}
	return result
}

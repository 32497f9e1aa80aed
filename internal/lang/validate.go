package lang

import (
	"fmt"

	"github.com/synless-editor/synless/internal/style"
)

// repeatLeafContext tracks which of the Left/Right/Surrounded leaves are
// legal at the current point in the walk: they only make sense inside a
// Repeat's Join (Left/Right) or Surround (Surrounded) sub-notation
// (spec.md §4.C). loneChild marks a Repeat's Lone sub-notation, where
// Child(0) names a listy construct's single child.
type repeatLeafContext int

const (
	noRepeatLeaves repeatLeafContext = iota
	joinLeaves
	surroundLeaves
	loneChild
)

// validateNotation walks n once, checking it against construct's arity
// (spec.md §4.C "Notation validation walks the notation tree once"):
// Child(i) must be in range (on a listy construct, only Child(0) inside a
// Repeat's Lone), Repeat only appears on a listy construct,
// its Left/Right/Surrounded leaves only appear in their matching
// sub-notation, and Vert is rejected inside NoWrap.
func validateNotation(n *style.Notation, c *Construct) error {
	return walkValidate(n, c, false, noRepeatLeaves)
}

func walkValidate(n *style.Notation, c *Construct, insideNoWrap bool, leaves repeatLeafContext) error {
	if n == nil {
		return fmt.Errorf("notation is nil")
	}
	switch n.Kind {
	case style.NEmpty, style.NLiteral:
		return nil
	case style.NText:
		if c.Arity.Kind != ArityTexty {
			return fmt.Errorf("Text notation used on a non-texty construct %q", c.Name)
		}
		return nil
	case style.NChild:
		arity := 0
		switch c.Arity.Kind {
		case ArityFixed:
			arity = len(c.Arity.Fixed)
		case ArityListy:
			if leaves != loneChild {
				return fmt.Errorf("Child(%d) used on a listy construct %q; use Repeat instead", n.ChildIndex, c.Name)
			}
			arity = 1
		default:
			return fmt.Errorf("Child(%d) used on a texty construct %q", n.ChildIndex, c.Name)
		}
		if n.ChildIndex < 0 || n.ChildIndex >= arity {
			return fmt.Errorf("Child(%d) out of range for construct %q with arity %d", n.ChildIndex, c.Name, arity)
		}
		return nil
	case style.NFollow, style.NVert:
		if n.Kind == style.NVert && insideNoWrap {
			return fmt.Errorf("Vert not allowed inside NoWrap")
		}
		if err := walkValidate(n.Left, c, insideNoWrap, leaves); err != nil {
			return err
		}
		return walkValidate(n.Right, c, insideNoWrap, leaves)
	case style.NNoWrap:
		return walkValidate(n.Inner, c, true, leaves)
	case style.NChoice:
		for _, opt := range n.Choices {
			if err := walkValidate(opt, c, insideNoWrap, leaves); err != nil {
				return err
			}
		}
		return nil
	case style.NIfEmptyText:
		if c.Arity.Kind != ArityTexty {
			return fmt.Errorf("IfEmptyText used on a non-texty construct %q", c.Name)
		}
		if err := walkValidate(n.Left, c, insideNoWrap, leaves); err != nil {
			return err
		}
		return walkValidate(n.Right, c, insideNoWrap, leaves)
	case style.NIfCondition:
		if err := walkValidate(n.Left, c, insideNoWrap, leaves); err != nil {
			return err
		}
		return walkValidate(n.Right, c, insideNoWrap, leaves)
	case style.NRepeat:
		if c.Arity.Kind != ArityListy {
			return fmt.Errorf("Repeat used on a non-listy construct %q", c.Name)
		}
		r := n.Repeat
		if err := walkValidate(r.Empty, c, insideNoWrap, noRepeatLeaves); err != nil {
			return err
		}
		if err := walkValidate(r.Lone, c, insideNoWrap, loneChild); err != nil {
			return err
		}
		if err := walkValidate(r.Join, c, insideNoWrap, joinLeaves); err != nil {
			return err
		}
		return walkValidate(r.Surround, c, insideNoWrap, surroundLeaves)
	case style.NLeft, style.NRight:
		if leaves != joinLeaves {
			return fmt.Errorf("Left/Right leaf used outside a Repeat's Join notation")
		}
		return nil
	case style.NSurrounded:
		if leaves != surroundLeaves {
			return fmt.Errorf("Surrounded leaf used outside a Repeat's Surround notation")
		}
		return nil
	case style.NFocusMark:
		return walkValidate(n.Inner, c, insideNoWrap, leaves)
	case style.NStyled:
		return walkValidate(n.Inner, c, insideNoWrap, leaves)
	default:
		return fmt.Errorf("unknown notation kind %d", n.Kind)
	}
}

// Package text implements the mutable UTF-8 text buffer attached to texty
// nodes (spec.md §3 Text, §4.B). The cursor is a byte offset into the
// canonical source string; NumChars counts user-perceived characters
// (grapheme clusters, via github.com/rivo/uniseg — see SPEC_FULL.md Domain
// Stack) rather than bytes or runes, so combining marks and multi-rune
// emoji move as a single unit.
package text

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Text is a mutable, cursor-carrying UTF-8 string, optionally mirrored
// through a ReplacementTable.
type Text struct {
	source []byte
	cursor int // byte offset into source; SetCursorByte, InsertAt and DeleteAt do not keep it on a grapheme boundary
	table  *ReplacementTable
}

// New constructs a Text buffer with the given initial contents and cursor
// at the start. table may be nil.
func New(source string, table *ReplacementTable) *Text {
	return &Text{source: []byte(source), table: table}
}

// Source returns the canonical text, exactly as it will be serialised.
func (t *Text) Source() string { return string(t.source) }

// CursorByte returns the current byte offset into Source().
func (t *Text) CursorByte() int { return t.cursor }

// Display returns the text the pretty-printer should see: every
// registered source sequence replaced, greedily and left-to-right, by its
// display glyph.
func (t *Text) Display() string {
	return render(string(t.source), t.table)
}

func render(s string, table *ReplacementTable) string {
	if table == nil {
		return s
	}
	var out []byte
	for len(s) > 0 {
		if key, disp, ok := table.matchPrefix(s); ok {
			out = append(out, disp...)
			s = s[len(key):]
			continue
		}
		_, size := utf8.DecodeRuneInString(s)
		out = append(out, s[:size]...)
		s = s[size:]
	}
	return string(out)
}

// DisplayCursor returns the byte offset into Display() corresponding to
// the current source cursor, by tokenizing the source prefix up to the
// cursor the same way Display() tokenizes the whole string.
func (t *Text) DisplayCursor() int {
	return len(render(string(t.source[:t.cursor]), t.table))
}

func boundaries(s string) []int {
	bs := []int{0}
	g := uniseg.NewGraphemes(s)
	pos := 0
	for g.Next() {
		_, to := g.Positions()
		pos = to
		bs = append(bs, pos)
	}
	return bs
}

// NumChars returns the number of grapheme clusters in the source text.
func (t *Text) NumChars() int {
	bs := boundaries(string(t.source))
	return len(bs) - 1
}

// nextBoundary returns the byte offset of the grapheme boundary strictly
// after b (or len(source) if b is already the last one).
func (t *Text) nextBoundary(b int) int {
	bs := boundaries(string(t.source))
	for _, x := range bs {
		if x > b {
			return x
		}
	}
	return len(t.source)
}

// prevBoundary returns the byte offset of the grapheme boundary strictly
// before b (or 0).
func (t *Text) prevBoundary(b int) int {
	bs := boundaries(string(t.source))
	prev := 0
	for _, x := range bs {
		if x >= b {
			break
		}
		prev = x
	}
	return prev
}

// InsertChar inserts r at the cursor and advances the cursor past it.
func (t *Text) InsertChar(r rune) {
	buf := make([]byte, 0, len(t.source)+4)
	buf = append(buf, t.source[:t.cursor]...)
	buf = append(buf, []byte(string(r))...)
	buf = append(buf, t.source[t.cursor:]...)
	t.cursor += len(string(r))
	t.source = buf
}

// InsertReplacementSequence inserts the source form of a registered
// replacement sequence (e.g. "\alpha") at the cursor, if key is indeed
// registered; otherwise it does nothing and returns false, leaving the
// caller to fall back to inserting ordinary characters.
func (t *Text) InsertReplacementSequence(key string) bool {
	if !t.table.HasSource(key) {
		return false
	}
	buf := make([]byte, 0, len(t.source)+len(key))
	buf = append(buf, t.source[:t.cursor]...)
	buf = append(buf, key...)
	buf = append(buf, t.source[t.cursor:]...)
	t.cursor += len(key)
	t.source = buf
	return true
}

// MoveLeft moves the cursor left by one replacement sequence if one ends
// exactly at the cursor, else by one grapheme cluster.
func (t *Text) MoveLeft() bool {
	if t.cursor == 0 {
		return false
	}
	if key, _, ok := t.table.matchSuffix(string(t.source[:t.cursor])); ok {
		t.cursor -= len(key)
		return true
	}
	t.cursor = t.prevBoundary(t.cursor)
	return true
}

// MoveRight moves the cursor right by one replacement sequence if one
// starts exactly at the cursor, else by one grapheme cluster.
func (t *Text) MoveRight() bool {
	if t.cursor >= len(t.source) {
		return false
	}
	if key, _, ok := t.table.matchPrefix(string(t.source[t.cursor:])); ok {
		t.cursor += len(key)
		return true
	}
	t.cursor = t.nextBoundary(t.cursor)
	return true
}

// Backspace deletes the character (or whole replacement sequence)
// immediately before the cursor. Returns false if the cursor is at the
// start.
func (t *Text) Backspace() bool {
	if t.cursor == 0 {
		return false
	}
	start := t.cursor
	if key, _, ok := t.table.matchSuffix(string(t.source[:t.cursor])); ok {
		start = t.cursor - len(key)
	} else {
		start = t.prevBoundary(t.cursor)
	}
	t.source = append(t.source[:start], t.source[t.cursor:]...)
	t.cursor = start
	return true
}

// Delete deletes the character (or whole replacement sequence)
// immediately after the cursor. Returns false if the cursor is at the end.
func (t *Text) Delete() bool {
	if t.cursor >= len(t.source) {
		return false
	}
	end := t.cursor
	if key, _, ok := t.table.matchPrefix(string(t.source[t.cursor:])); ok {
		end = t.cursor + len(key)
	} else {
		end = t.nextBoundary(t.cursor)
	}
	t.source = append(t.source[:t.cursor], t.source[end:]...)
	return true
}

// charToByte returns the byte offset of the i-th grapheme boundary
// (0 <= i <= NumChars()).
func (t *Text) charToByte(i int) int {
	bs := boundaries(string(t.source))
	if i < 0 {
		i = 0
	}
	if i >= len(bs) {
		return len(t.source)
	}
	return bs[i]
}

// InsertAt inserts r immediately before the charIndex-th grapheme
// cluster, independent of (and without disturbing) the cursor --
// internal/doc's text-edit commands address an explicit char position
// the way original_source/src/engine/doc.rs's `text.insert(*char_index,
// ch)` does, rather than going through the single mutable cursor above.
func (t *Text) InsertAt(charIndex int, r rune) {
	b := t.charToByte(charIndex)
	buf := make([]byte, 0, len(t.source)+4)
	buf = append(buf, t.source[:b]...)
	buf = append(buf, []byte(string(r))...)
	buf = append(buf, t.source[b:]...)
	t.source = buf
}

// DeleteAt deletes and returns the charIndex-th grapheme cluster.
func (t *Text) DeleteAt(charIndex int) rune {
	start := t.charToByte(charIndex)
	end := t.charToByte(charIndex + 1)
	r, _ := utf8.DecodeRune(t.source[start:end])
	t.source = append(t.source[:start], t.source[end:]...)
	return r
}

// Set replaces the entire buffer contents, as a parser does when it
// hands a freshly-scanned string literal to a texty node, and resets the
// cursor to the end.
func (t *Text) Set(source string) {
	t.source = []byte(source)
	t.cursor = len(t.source)
}

// SetCursorByte moves the cursor directly to a byte offset. The caller is
// responsible for only passing offsets that fall on a rune boundary;
// offsets are clamped to [0, len(source)].
func (t *Text) SetCursorByte(b int) {
	if b < 0 {
		b = 0
	}
	if b > len(t.source) {
		b = len(t.source)
	}
	t.cursor = b
}

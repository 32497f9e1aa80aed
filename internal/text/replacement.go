package text

// ReplacementTable maps source escape sequences to their display glyphs,
// e.g. "\alpha" <-> "α" (spec.md §3 Text, §4.B). It is the only
// source/display mismatch in the core (spec.md §9): every other component
// deals with a single canonical text.
type ReplacementTable struct {
	toDisplay map[string]string
	fromDisplay map[string]string
}

// NewReplacementTable builds a table from source-sequence -> display-glyph
// pairs.
func NewReplacementTable(pairs map[string]string) *ReplacementTable {
	rt := &ReplacementTable{
		toDisplay:   make(map[string]string, len(pairs)),
		fromDisplay: make(map[string]string, len(pairs)),
	}
	for src, disp := range pairs {
		rt.toDisplay[src] = disp
		rt.fromDisplay[disp] = src
	}
	return rt
}

// HasSource reports whether seq is a registered source sequence.
func (rt *ReplacementTable) HasSource(seq string) bool {
	if rt == nil {
		return false
	}
	_, ok := rt.toDisplay[seq]
	return ok
}

// matchPrefix finds the longest registered source sequence that is a
// prefix of s, returning its display form too.
func (rt *ReplacementTable) matchPrefix(s string) (key, display string, ok bool) {
	if rt == nil {
		return "", "", false
	}
	bestLen := -1
	for k, d := range rt.toDisplay {
		if len(k) > bestLen && len(k) <= len(s) && s[:len(k)] == k {
			bestLen = len(k)
			key, display = k, d
		}
	}
	return key, display, bestLen >= 0
}

// matchSuffix finds the longest registered source sequence that is a
// suffix of s.
func (rt *ReplacementTable) matchSuffix(s string) (key, display string, ok bool) {
	if rt == nil {
		return "", "", false
	}
	bestLen := -1
	for k, d := range rt.toDisplay {
		if len(k) > bestLen && len(k) <= len(s) && s[len(s)-len(k):] == k {
			bestLen = len(k)
			key, display = k, d
		}
	}
	return key, display, bestLen >= 0
}

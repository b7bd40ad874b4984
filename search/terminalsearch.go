package search

// TerminalSearch tracks a live search over a LineSource: SetPattern always
// rebuilds the index, Reindex rebuilds it only when marked dirty, and it
// keeps a focused match that the caller can advance forward or backward,
// with wraparound at either end.
type TerminalSearch struct {
	src     LineSource
	pattern string
	dirty   bool
	index   *Index
	matches []Match
	focus   int // index into matches, -1 if none focused
}

// NewTerminalSearch creates a search bound to src. The first call to
// SetPattern or Reindex performs the initial index build.
func NewTerminalSearch(src LineSource) *TerminalSearch {
	return &TerminalSearch{src: src, dirty: true, focus: -1}
}

// MarkDirty forces the next query to rebuild the index, e.g. after the
// terminal's content has changed.
func (ts *TerminalSearch) MarkDirty() {
	ts.dirty = true
}

// SetPattern sets the search pattern and reruns the search, focusing the
// first match if one exists.
func (ts *TerminalSearch) SetPattern(pattern string) {
	ts.pattern = pattern
	ts.reindex()
	ts.matches = ts.index.Find(pattern)
	if len(ts.matches) > 0 {
		ts.focus = 0
	} else {
		ts.focus = -1
	}
}

// Reindex rebuilds the row index from the current LineSource content without
// changing the pattern, and reruns the current query. Safe to call whether
// or not the content actually changed; it is a no-op unless the dirty flag
// is set (by NewTerminalSearch or MarkDirty). Content changes in the bound
// source do not set the flag on their own.
func (ts *TerminalSearch) Reindex() {
	if !ts.dirty {
		return
	}
	ts.reindex()
	if ts.pattern != "" {
		ts.matches = ts.index.Find(ts.pattern)
		if ts.focus >= len(ts.matches) {
			ts.focus = len(ts.matches) - 1
		}
	}
}

func (ts *TerminalSearch) reindex() {
	ts.index = Build(ts.src)
	ts.dirty = false
}

// Matches returns all current matches in row/column order.
func (ts *TerminalSearch) Matches() []Match {
	return ts.matches
}

// Focused returns the currently focused match and true, or the zero Match
// and false if nothing is focused.
func (ts *TerminalSearch) Focused() (Match, bool) {
	if ts.focus < 0 || ts.focus >= len(ts.matches) {
		return Match{}, false
	}
	return ts.matches[ts.focus], true
}

// FocusNext moves focus to the first match strictly after (row, col),
// wrapping to the first match overall if none follows.
func (ts *TerminalSearch) FocusNext(row, col int) (Match, bool) {
	for i, m := range ts.matches {
		if m.Row > row || (m.Row == row && m.Col > col) {
			ts.focus = i
			return m, true
		}
	}
	if len(ts.matches) == 0 {
		return Match{}, false
	}
	ts.focus = 0
	return ts.matches[0], true
}

// FocusPrev moves focus to the last match strictly before (row, col),
// wrapping to the last match overall if none precedes.
func (ts *TerminalSearch) FocusPrev(row, col int) (Match, bool) {
	for i := len(ts.matches) - 1; i >= 0; i-- {
		m := ts.matches[i]
		if m.Row < row || (m.Row == row && m.Col < col) {
			ts.focus = i
			return m, true
		}
	}
	if len(ts.matches) == 0 {
		return Match{}, false
	}
	ts.focus = len(ts.matches) - 1
	return ts.matches[ts.focus], true
}

// AdvanceNext moves the currently focused index forward by one, wrapping
// modulo the match count. Unlike FocusNext/FocusPrev it ignores cursor
// position and simply cycles through matches in order.
func (ts *TerminalSearch) AdvanceNext() (Match, bool) {
	if len(ts.matches) == 0 {
		return Match{}, false
	}
	if ts.focus < 0 {
		ts.focus = 0
	} else {
		ts.focus = (ts.focus + 1) % len(ts.matches)
	}
	return ts.matches[ts.focus], true
}

// AdvancePrev moves the currently focused index backward by one, wrapping
// modulo the match count.
func (ts *TerminalSearch) AdvancePrev() (Match, bool) {
	if len(ts.matches) == 0 {
		return Match{}, false
	}
	if ts.focus < 0 {
		ts.focus = len(ts.matches) - 1
	} else {
		ts.focus = (ts.focus - 1 + len(ts.matches)) % len(ts.matches)
	}
	return ts.matches[ts.focus], true
}

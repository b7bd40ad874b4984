package search

// LineSource is the read surface an indexer needs from a terminal: a count
// of addressable rows (scrollback plus viewport) and the text of any one of
// them by absolute row index.
type LineSource interface {
	AbsoluteRowCount() int
	AbsoluteLineContent(row int) string
}

// Index holds a per-row bloom filter built from a LineSource's current
// content, so repeated queries against the same snapshot skip rows that
// cannot match before paying for a substring scan.
type Index struct {
	filters []RowFilter
	lines   []string
}

// Build indexes every row of src.
func Build(src LineSource) *Index {
	n := src.AbsoluteRowCount()
	idx := &Index{
		filters: make([]RowFilter, n),
		lines:   make([]string, n),
	}
	for row := 0; row < n; row++ {
		line := src.AbsoluteLineContent(row)
		idx.lines[row] = line
		idx.filters[row] = NewRowFilter(line)
	}
	return idx
}

// Find returns every match of pattern across the indexed rows, in row then
// column order.
func (idx *Index) Find(pattern string) []Match {
	if pattern == "" {
		return nil
	}

	// Bloom filters are built from real 3-rune trigrams of each row; a
	// pattern under 3 runes doesn't decompose into one, so MayContain can't
	// give a reliable answer for it. Scan every row directly instead of
	// risking false negatives from the filter.
	if len([]rune(pattern)) < 3 {
		var matches []Match
		for row, line := range idx.lines {
			matches = append(matches, scanLine(row, line, pattern)...)
		}
		return matches
	}

	var matches []Match
	for row, filter := range idx.filters {
		if !filter.MayContain(pattern) {
			continue
		}
		matches = append(matches, scanLine(row, idx.lines[row], pattern)...)
	}
	return matches
}

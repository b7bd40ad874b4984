package search

import (
	"hash/fnv"

	"github.com/bits-and-blooms/bitset"
)

// rowFilterBits is the bloom filter width per row. Rows are typically under
// 200 runes, so a few hundred trigrams at most; this keeps the false
// positive rate low without the filter outweighing the line text itself.
const rowFilterBits = 512

// RowFilter is a bloom filter over a single row's trigrams, used to decide
// whether a row is worth a full substring scan for a given query.
type RowFilter struct {
	bits *bitset.BitSet
}

// NewRowFilter builds a RowFilter from a line's text.
func NewRowFilter(line string) RowFilter {
	f := RowFilter{bits: bitset.New(rowFilterBits)}
	for _, tri := range Trigrams(line) {
		f.bits.Set(trigramHash(tri))
	}
	return f
}

// MayContain reports whether every trigram of pattern is present in the
// filter. A false return means the row definitely does not contain pattern;
// true means it might (subject to false positives) and warrants a scan.
func (f RowFilter) MayContain(pattern string) bool {
	if f.bits == nil {
		return true
	}
	trigrams := Trigrams(pattern)
	if len(trigrams) == 0 {
		return true
	}
	for _, tri := range trigrams {
		if !f.bits.Test(trigramHash(tri)) {
			return false
		}
	}
	return true
}

func trigramHash(tri string) uint {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tri))
	return uint(h.Sum32()) % rowFilterBits
}

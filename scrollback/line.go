// Package scrollback implements a memory-bounded, effectively unlimited
// terminal history: a hot tier of uncompressed lines, a warm tier of
// LZ4-compressed blocks, and a cold tier of Zstd-compressed blocks that may
// spill to a memory-mapped disk file once resident memory exceeds budget.
package scrollback

import "image/color"

// Cell mirrors the host package's Cell shape closely enough to round-trip
// through the wire format, without importing the host package (which would
// create an import cycle, since the host wires ScrollbackProvider
// implementations from here).
type Cell struct {
	Char           rune
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          uint32
}

// Line is one row of scrollback history: the cells plus whether the row was
// a soft line-wrap continuation of the previous one.
type Line struct {
	Wrapped bool
	Cells   []Cell
}

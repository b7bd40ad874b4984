package scrollback

import (
	"encoding/binary"
	"fmt"
)

// encodeLines serializes lines into the uncompressed wire representation
// described by the block format: the concatenation of each line as
// { wrapped: u8, cell_count: u32, cells: [{ glyph: u32, style: packed }] }.
// Each cell packs glyph (the rune) and three packed colors plus flags into a
// fixed 20-byte record.
func encodeLines(lines []Line) []byte {
	size := 0
	for _, l := range lines {
		size += 1 + 4 + len(l.Cells)*cellWireSize
	}
	buf := make([]byte, 0, size)

	for _, l := range lines {
		wrapped := byte(0)
		if l.Wrapped {
			wrapped = 1
		}
		buf = append(buf, wrapped)

		var cellCount [4]byte
		binary.LittleEndian.PutUint32(cellCount[:], uint32(len(l.Cells)))
		buf = append(buf, cellCount[:]...)

		for _, c := range l.Cells {
			buf = appendCell(buf, c)
		}
	}
	return buf
}

const cellWireSize = 4 + 4 + 4 + 4 + 4 // glyph, flags, fg, bg, underline

func appendCell(buf []byte, c Cell) []byte {
	var tmp [cellWireSize]byte
	binary.LittleEndian.PutUint32(tmp[0:4], uint32(c.Char))
	binary.LittleEndian.PutUint32(tmp[4:8], c.Flags)
	binary.LittleEndian.PutUint32(tmp[8:12], packColor(c.Fg))
	binary.LittleEndian.PutUint32(tmp[12:16], packColor(c.Bg))
	binary.LittleEndian.PutUint32(tmp[16:20], packColor(c.UnderlineColor))
	return append(buf, tmp[:]...)
}

// decodeLines reverses encodeLines. Returns an error if the buffer is
// truncated or otherwise malformed; callers treat this as a fatal,
// block-local failure per the tier's failure semantics.
func decodeLines(buf []byte) ([]Line, error) {
	var lines []Line
	for len(buf) > 0 {
		if len(buf) < 5 {
			return nil, fmt.Errorf("scrollback: truncated line header")
		}
		wrapped := buf[0] == 1
		count := binary.LittleEndian.Uint32(buf[1:5])
		buf = buf[5:]

		need := int(count) * cellWireSize
		if len(buf) < need {
			return nil, fmt.Errorf("scrollback: truncated cell data, need %d have %d", need, len(buf))
		}

		cells := make([]Cell, count)
		for i := range cells {
			rec := buf[i*cellWireSize : (i+1)*cellWireSize]
			cells[i] = Cell{
				Char:           rune(binary.LittleEndian.Uint32(rec[0:4])),
				Flags:          binary.LittleEndian.Uint32(rec[4:8]),
				Fg:             unpackColor(binary.LittleEndian.Uint32(rec[8:12])),
				Bg:             unpackColor(binary.LittleEndian.Uint32(rec[12:16])),
				UnderlineColor: unpackColor(binary.LittleEndian.Uint32(rec[16:20])),
			}
		}
		buf = buf[need:]

		lines = append(lines, Line{Wrapped: wrapped, Cells: cells})
	}
	return lines, nil
}

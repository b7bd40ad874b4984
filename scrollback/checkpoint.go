package scrollback

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Block kinds tag each serialized chunk so a reader can dispatch to the
// right decompressor without guessing from content.
const (
	blockKindHot  uint8 = 0
	blockKindWarm uint8 = 1
	blockKindCold uint8 = 2
)

// blockHeaderSize is kind(1) + lineCount(4) + uncompressedBytes(4) + payloadLen(4).
const blockHeaderSize = 1 + 4 + 4 + 4

// WriteBlocks serializes every tier to w in a fixed order: hot (uncompressed),
// then warm blocks oldest-first, then cold blocks oldest-first. It returns
// the counts a checkpoint header needs to later reconstruct the store with
// ReadBlocks. A cold block that was spilled to disk and has no attached
// DiskStore to read it back from is a hard error: the checkpoint would
// otherwise silently drop lines.
func (t *Tiered) WriteBlocks(w io.Writer) (hotCount, warmBlocks, coldBlocks int, err error) {
	if len(t.hot) > 0 {
		raw := encodeLines(t.hot)
		if err := writeBlock(w, blockKindHot, uint32(len(t.hot)), uint32(len(raw)), raw); err != nil {
			return 0, 0, 0, err
		}
		hotCount = 1
	}

	for _, b := range t.warm {
		if err := writeBlock(w, blockKindWarm, b.lineCount, b.uncompressedBytes, b.payload); err != nil {
			return 0, 0, 0, err
		}
	}

	for _, b := range t.cold {
		payload := b.payload
		if payload == nil {
			if t.disk == nil || b.diskPage < 0 {
				return 0, 0, 0, fmt.Errorf("scrollback: cold block spilled to disk with no store attached, cannot checkpoint")
			}
			payload, err = t.disk.ReadBlock(b.diskPage)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("scrollback: reading spilled cold block for checkpoint: %w", err)
			}
		}
		if err := writeBlock(w, blockKindCold, b.lineCount, b.uncompressedBytes, payload); err != nil {
			return 0, 0, 0, err
		}
	}

	return hotCount, len(t.warm), len(t.cold), nil
}

func writeBlock(w io.Writer, kind uint8, lineCount, uncompressedBytes uint32, payload []byte) error {
	header := make([]byte, blockHeaderSize)
	header[0] = kind
	binary.LittleEndian.PutUint32(header[1:5], lineCount)
	binary.LittleEndian.PutUint32(header[5:9], uncompressedBytes)
	binary.LittleEndian.PutUint32(header[9:13], uint32(len(payload)))
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadBlocks rebuilds a Tiered store's tiers by reading exactly
// hotBlocks+warmBlocks+coldBlocks blocks from r, in the order WriteBlocks
// produced them. It validates every block before touching t's state, so a
// truncated or corrupt stream leaves t unchanged.
func (t *Tiered) ReadBlocks(r io.Reader, hotBlocks, warmBlocks, coldBlocks int) error {
	var hot []Line
	var warm []*warmBlock
	var cold []*coldBlock

	for i := 0; i < hotBlocks; i++ {
		kind, lineCount, uncompressedBytes, payload, err := readBlock(r)
		if err != nil {
			return fmt.Errorf("scrollback: reading hot block %d: %w", i, err)
		}
		if kind != blockKindHot {
			return fmt.Errorf("scrollback: expected hot block %d, got kind %d", i, kind)
		}
		lines, err := decodeLines(payload)
		if err != nil {
			return fmt.Errorf("scrollback: decoding hot block %d: %w", i, err)
		}
		if uint32(len(lines)) != lineCount {
			return fmt.Errorf("scrollback: hot block %d line count mismatch", i)
		}
		_ = uncompressedBytes
		hot = append(hot, lines...)
	}

	for i := 0; i < warmBlocks; i++ {
		kind, lineCount, uncompressedBytes, payload, err := readBlock(r)
		if err != nil {
			return fmt.Errorf("scrollback: reading warm block %d: %w", i, err)
		}
		if kind != blockKindWarm {
			return fmt.Errorf("scrollback: expected warm block %d, got kind %d", i, kind)
		}
		wb := &warmBlock{lineCount: lineCount, uncompressedBytes: uncompressedBytes, payload: payload}
		if lines, err := wb.decompress(); err != nil || uint32(len(lines)) != lineCount {
			return fmt.Errorf("scrollback: warm block %d is corrupt", i)
		}
		warm = append(warm, wb)
	}

	for i := 0; i < coldBlocks; i++ {
		kind, lineCount, uncompressedBytes, payload, err := readBlock(r)
		if err != nil {
			return fmt.Errorf("scrollback: reading cold block %d: %w", i, err)
		}
		if kind != blockKindCold {
			return fmt.Errorf("scrollback: expected cold block %d, got kind %d", i, kind)
		}
		cb := &coldBlock{lineCount: lineCount, uncompressedBytes: uncompressedBytes, payload: payload, diskPage: -1}
		if lines, err := cb.decompress(); err != nil || uint32(len(lines)) != lineCount {
			return fmt.Errorf("scrollback: cold block %d is corrupt", i)
		}
		cold = append(cold, cb)
	}

	t.hot = hot
	t.warm = warm
	t.cold = cold
	return nil
}

func readBlock(r io.Reader) (kind uint8, lineCount, uncompressedBytes uint32, payload []byte, err error) {
	header := make([]byte, blockHeaderSize)
	if _, err = io.ReadFull(r, header); err != nil {
		return 0, 0, 0, nil, err
	}
	kind = header[0]
	lineCount = binary.LittleEndian.Uint32(header[1:5])
	uncompressedBytes = binary.LittleEndian.Uint32(header[5:9])
	payloadLen := binary.LittleEndian.Uint32(header[9:13])

	payload = make([]byte, payloadLen)
	if _, err = io.ReadFull(r, payload); err != nil {
		return 0, 0, 0, nil, err
	}
	return kind, lineCount, uncompressedBytes, payload, nil
}

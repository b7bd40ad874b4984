package scrollback

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// warmBlock holds line_count lines compressed with LZ4, per the warm block
// format: { line_count, uncompressed_bytes, lz4_payload }.
type warmBlock struct {
	lineCount         uint32
	uncompressedBytes uint32
	payload           []byte
}

// compressWarm builds a warmBlock from lines.
func compressWarm(lines []Line) (*warmBlock, error) {
	raw := encodeLines(lines)

	var out bytes.Buffer
	w := lz4.NewWriter(&out)
	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &warmBlock{
		lineCount:         uint32(len(lines)),
		uncompressedBytes: uint32(len(raw)),
		payload:           out.Bytes(),
	}, nil
}

// decompress recovers the original lines. A decode error drops this block
// per the tier's failure semantics; callers must not retry.
func (b *warmBlock) decompress() ([]Line, error) {
	r := lz4.NewReader(bytes.NewReader(b.payload))
	raw := make([]byte, b.uncompressedBytes)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	return decodeLines(raw)
}

// memoryUsed approximates the block's RAM footprint for budget accounting.
func (b *warmBlock) memoryUsed() int {
	return len(b.payload)
}

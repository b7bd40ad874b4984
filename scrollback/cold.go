package scrollback

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// coldBlock holds a warm block's content re-compressed with Zstd level 3,
// optionally spilled to the disk page file (diskPage >= 0) and evicted from
// memory (payload == nil) once durably written.
type coldBlock struct {
	lineCount         uint32
	uncompressedBytes uint32
	payload           []byte // nil once spilled to disk and evicted from RAM
	diskPage          int    // -1 if not on disk
}

var (
	zstdEncoderOnce *zstd.Encoder
	zstdDecoderOnce *zstd.Decoder
)

func zstdEncoder() (*zstd.Encoder, error) {
	if zstdEncoderOnce != nil {
		return zstdEncoderOnce, nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	zstdEncoderOnce = enc
	return enc, nil
}

func zstdDecoder() (*zstd.Decoder, error) {
	if zstdDecoderOnce != nil {
		return zstdDecoderOnce, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	zstdDecoderOnce = dec
	return dec, nil
}

// compressCold re-compresses a warm block's decompressed lines with Zstd.
func compressCold(lines []Line) (*coldBlock, error) {
	raw := encodeLines(lines)

	enc, err := zstdEncoder()
	if err != nil {
		return nil, err
	}
	compressed := enc.EncodeAll(raw, nil)

	return &coldBlock{
		lineCount:         uint32(len(lines)),
		uncompressedBytes: uint32(len(raw)),
		payload:           compressed,
		diskPage:          -1,
	}, nil
}

// decompress recovers the original lines from an in-memory cold block. A
// spilled block (payload == nil) must be read back from disk first via the
// disk store; see tiered.go.
func (b *coldBlock) decompress() ([]Line, error) {
	if b.payload == nil {
		return nil, io.ErrUnexpectedEOF
	}
	dec, err := zstdDecoder()
	if err != nil {
		return nil, err
	}
	raw, err := dec.DecodeAll(b.payload, make([]byte, 0, b.uncompressedBytes))
	if err != nil {
		return nil, err
	}
	return decodeLines(raw)
}

func (b *coldBlock) memoryUsed() int {
	return len(b.payload)
}

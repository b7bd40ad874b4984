package dterm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-dterm/dterm/scrollback"
)

// checkpointMagic identifies a checkpoint file. checkpointVersion is bumped
// whenever the cursor/modes section below changes shape.
var checkpointMagic = [4]byte{'D', 'T', 'C', 'K'}

const checkpointVersion uint16 = 1

// ErrCheckpointMagic, ErrCheckpointVersion and ErrCheckpointFlags are
// LogicPrecondition failures: the file is not (or no longer) a checkpoint
// this build understands. SaveCheckpoint/LoadCheckpoint never mutate a
// Grid's state before every validation below has passed.
var (
	ErrCheckpointMagic      = errors.New("dterm: not a checkpoint file (bad magic)")
	ErrCheckpointVersion    = errors.New("dterm: unsupported checkpoint version")
	ErrCheckpointFlags      = errors.New("dterm: checkpoint uses unknown flags")
	ErrCheckpointTruncated  = errors.New("dterm: checkpoint file truncated or corrupt")
)

// checkpointHeaderSize is magic(4) + version(2) + flags(2) + rows(2) + cols(2)
// + hotCount(4) + warmBlocks(4) + coldBlocks(4) + reserved(12).
const checkpointHeaderSize = 4 + 2 + 2 + 2 + 2 + 4 + 4 + 4 + 12

type checkpointHeader struct {
	version    uint16
	flags      uint16
	rows       uint16
	cols       uint16
	hotCount   uint32
	warmBlocks uint32
	coldBlocks uint32
}

// SaveCheckpoint serializes the grid's dimensions, cursor, modes, and
// scrollback history to w. The result can be handed to LoadCheckpoint,
// against this Grid or a freshly constructed one of matching size, to
// resume with identical subsequent behavior for any future Feed.
func (t *Grid) SaveCheckpoint(w io.Writer) error {
	t.mu.RLock()

	tiered, err := t.snapshotScrollbackLocked()
	if err != nil {
		t.mu.RUnlock()
		return err
	}

	var blocks bytes.Buffer
	hotCount, warmBlocks, coldBlocks, err := tiered.WriteBlocks(&blocks)
	if err != nil {
		t.mu.RUnlock()
		return fmt.Errorf("dterm: writing scrollback blocks: %w", err)
	}

	var cursorModes bytes.Buffer
	t.encodeCursorAndModesLocked(&cursorModes)

	t.mu.RUnlock()

	header := make([]byte, checkpointHeaderSize)
	copy(header[0:4], checkpointMagic[:])
	binary.LittleEndian.PutUint16(header[4:6], checkpointVersion)
	binary.LittleEndian.PutUint16(header[6:8], 0) // flags: none defined yet
	binary.LittleEndian.PutUint16(header[8:10], uint16(t.rows))
	binary.LittleEndian.PutUint16(header[10:12], uint16(t.cols))
	binary.LittleEndian.PutUint32(header[12:16], uint32(hotCount))
	binary.LittleEndian.PutUint32(header[16:20], uint32(warmBlocks))
	binary.LittleEndian.PutUint32(header[20:24], uint32(coldBlocks))
	// header[24:36] reserved, left zero.

	if _, err := w.Write(header); err != nil {
		return err
	}

	var cursorLen [4]byte
	binary.LittleEndian.PutUint32(cursorLen[:], uint32(cursorModes.Len()))
	if _, err := w.Write(cursorLen[:]); err != nil {
		return err
	}
	if _, err := w.Write(cursorModes.Bytes()); err != nil {
		return err
	}

	_, err = w.Write(blocks.Bytes())
	return err
}

// snapshotScrollbackLocked copies every retained scrollback line into a
// fresh, uncompressed-then-retiered store, independent of whatever
// ScrollbackProvider the Grid happens to be using. t.mu must be held for
// reading.
func (t *Grid) snapshotScrollbackLocked() (*scrollback.Tiered, error) {
	tiered := scrollback.NewTiered()
	if t.scrollbackStorage == nil {
		return tiered, nil
	}
	n := t.scrollbackStorage.Len()
	for i := 0; i < n; i++ {
		line := t.scrollbackStorage.Line(i)
		if err := tiered.PushLine(scrollback.Line{Cells: toScrollbackCells(line)}); err != nil {
			return nil, fmt.Errorf("dterm: snapshotting scrollback line %d: %w", i, err)
		}
	}
	return tiered, nil
}

// LoadCheckpoint validates and restores a checkpoint written by
// SaveCheckpoint into t. Validation runs to completion before any field of
// t is mutated: a truncated or corrupt stream, an unknown version, or
// unknown flags leaves t exactly as it was.
func (t *Grid) LoadCheckpoint(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(raw) >= 4 {
		var magic [4]byte
		copy(magic[:], raw[0:4])
		if magic != checkpointMagic {
			return ErrCheckpointMagic
		}
	}
	if len(raw) < checkpointHeaderSize+4 {
		return ErrCheckpointTruncated
	}

	hdr := checkpointHeader{
		version:    binary.LittleEndian.Uint16(raw[4:6]),
		flags:      binary.LittleEndian.Uint16(raw[6:8]),
		rows:       binary.LittleEndian.Uint16(raw[8:10]),
		cols:       binary.LittleEndian.Uint16(raw[10:12]),
		hotCount:   binary.LittleEndian.Uint32(raw[12:16]),
		warmBlocks: binary.LittleEndian.Uint32(raw[16:20]),
		coldBlocks: binary.LittleEndian.Uint32(raw[20:24]),
	}
	if hdr.version != checkpointVersion {
		return ErrCheckpointVersion
	}
	if hdr.flags != 0 {
		return ErrCheckpointFlags
	}
	if hdr.rows == 0 || hdr.cols == 0 {
		return ErrCheckpointTruncated
	}

	rest := raw[checkpointHeaderSize:]
	if len(rest) < 4 {
		return ErrCheckpointTruncated
	}
	cursorLen := binary.LittleEndian.Uint32(rest[0:4])
	rest = rest[4:]
	if uint32(len(rest)) < cursorLen {
		return ErrCheckpointTruncated
	}
	cursorModes, blockBytes := rest[:cursorLen], rest[cursorLen:]

	decodedCursor, err := decodeCursorAndModes(cursorModes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCheckpointTruncated, err)
	}

	tiered := scrollback.NewTiered()
	if err := tiered.ReadBlocks(bytes.NewReader(blockBytes), int(hdr.hotCount), int(hdr.warmBlocks), int(hdr.coldBlocks)); err != nil {
		return fmt.Errorf("%w: %v", ErrCheckpointTruncated, err)
	}

	// Every fallible step above has already succeeded; only now do we touch t.
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeLocked(int(hdr.rows), int(hdr.cols))
	decodedCursor.applyTo(t)
	t.scrollbackStorage = NewTieredScrollback(tiered)
	t.primaryBuffer.SetScrollbackProvider(t.scrollbackStorage)

	return nil
}

// checkpointCursorState is the cursor/modes section of a checkpoint: enough
// to resume identical subsequent behavior without re-deriving it from the
// grid buffers (which are not themselves checkpointed; only scrollback is).
type checkpointCursorState struct {
	cursorRow, cursorCol int
	cursorStyle          CursorStyle
	cursorVisible         bool
	scrollTop, scrollBottom int
	modes                TerminalMode
	activeCharset        CharsetIndex
	charsets             [4]Charset
	title                string
}

func (t *Grid) encodeCursorAndModesLocked(buf *bytes.Buffer) {
	var fixed [2*4 + 1 + 1 + 2*4 + 4 + 4 + 4*4]byte
	off := 0
	putInt := func(v int) {
		binary.LittleEndian.PutUint32(fixed[off:off+4], uint32(v))
		off += 4
	}

	putInt(t.cursor.Row)
	putInt(t.cursor.Col)
	fixed[off] = byte(t.cursor.Style)
	off++
	if t.cursor.Visible {
		fixed[off] = 1
	} else {
		fixed[off] = 0
	}
	off++
	putInt(t.scrollTop)
	putInt(t.scrollBottom)
	binary.LittleEndian.PutUint32(fixed[off:off+4], uint32(t.modes))
	off += 4
	putInt(int(t.cursor.Active))
	for _, cs := range t.cursor.Charsets {
		putInt(int(cs))
	}

	buf.Write(fixed[:off])

	titleBytes := []byte(t.title)
	var titleLen [4]byte
	binary.LittleEndian.PutUint32(titleLen[:], uint32(len(titleBytes)))
	buf.Write(titleLen[:])
	buf.Write(titleBytes)
}

func decodeCursorAndModes(data []byte) (*checkpointCursorState, error) {
	const fixedSize = 2*4 + 1 + 1 + 2*4 + 4 + 4 + 4*4
	if len(data) < fixedSize+4 {
		return nil, io.ErrUnexpectedEOF
	}

	s := &checkpointCursorState{}
	off := 0
	getInt := func() int {
		v := int(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
		return v
	}

	s.cursorRow = getInt()
	s.cursorCol = getInt()
	s.cursorStyle = CursorStyle(data[off])
	off++
	s.cursorVisible = data[off] != 0
	off++
	s.scrollTop = getInt()
	s.scrollBottom = getInt()
	s.modes = TerminalMode(binary.LittleEndian.Uint32(data[off : off+4]))
	off += 4
	s.activeCharset = CharsetIndex(getInt())
	for i := range s.charsets {
		s.charsets[i] = Charset(getInt())
	}

	titleLen := binary.LittleEndian.Uint32(data[off : off+4])
	off += 4
	if uint32(len(data)-off) < titleLen {
		return nil, io.ErrUnexpectedEOF
	}
	s.title = string(data[off : off+int(titleLen)])

	return s, nil
}

// applyTo writes the decoded section into t. Callers must hold t.mu for
// writing.
func (s *checkpointCursorState) applyTo(t *Grid) {
	t.cursor.Row = s.cursorRow
	t.cursor.Col = s.cursorCol
	t.cursor.Style = s.cursorStyle
	t.cursor.Visible = s.cursorVisible
	t.scrollTop = s.scrollTop
	t.scrollBottom = s.scrollBottom
	t.modes = s.modes
	t.cursor.Active = s.activeCharset
	t.cursor.Charsets = s.charsets
	t.title = s.title
}

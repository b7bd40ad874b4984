package scrollback

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/exp/mmap"
)

const (
	diskMagic      = "DSPG"
	diskVersion    = uint16(1)
	diskHeaderSize = 16
)

// DiskStore is an append-only page file holding cold scrollback blocks that
// no longer fit in the memory budget. Each page is prefixed with a
// { length: u32 } header; pages are read back through a read-only memory
// map. Corrupt or truncated pages are skipped rather than treated as fatal,
// per the tier's disk-spill failure semantics.
type DiskStore struct {
	path      string
	pageSize  uint32
	file      *os.File
	reader    *mmap.ReaderAt
	pageCount uint32
}

// OpenDiskStore creates (or truncates) a page file at path with the given
// nominal page size. The page size is advisory; pages are written
// length-prefixed and may exceed it for oversized blocks.
func OpenDiskStore(path string, pageSize uint32) (*DiskStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	d := &DiskStore{path: path, pageSize: pageSize, file: f}
	if err := d.writeHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

func (d *DiskStore) writeHeader() error {
	var hdr [diskHeaderSize]byte
	copy(hdr[0:4], diskMagic)
	binary.LittleEndian.PutUint16(hdr[4:6], diskVersion)
	binary.LittleEndian.PutUint16(hdr[6:8], 0) // reserved
	binary.LittleEndian.PutUint32(hdr[8:12], d.pageSize)
	binary.LittleEndian.PutUint32(hdr[12:16], d.pageCount)

	if _, err := d.file.WriteAt(hdr[:], 0); err != nil {
		return err
	}
	return nil
}

// AppendBlock writes a cold block's compressed payload as a new page and
// returns its page index. Fsync is not called per-write; callers durable
// across process restarts should call Sync periodically.
func (d *DiskStore) AppendBlock(payload []byte) (int, error) {
	info, err := d.file.Stat()
	if err != nil {
		return 0, err
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(len(payload)))

	offset := info.Size()
	if offset < diskHeaderSize {
		offset = diskHeaderSize
	}
	if _, err := d.file.WriteAt(lenPrefix[:], offset); err != nil {
		return 0, err
	}
	if _, err := d.file.WriteAt(payload, offset+4); err != nil {
		return 0, err
	}

	page := int(d.pageCount)
	d.pageCount++
	if err := d.writeHeader(); err != nil {
		return 0, err
	}

	// Invalidate the read-only mapping; it is rebuilt lazily on next read.
	if d.reader != nil {
		d.reader.Close()
		d.reader = nil
	}

	return page, nil
}

// Sync flushes pending writes to durable storage.
func (d *DiskStore) Sync() error {
	return d.file.Sync()
}

// ReadBlock reads back the payload written at AppendBlock's returned page
// index by re-scanning the page file sequentially. Returns an error for an
// out-of-range or corrupt page rather than panicking.
func (d *DiskStore) ReadBlock(page int) ([]byte, error) {
	if d.reader == nil {
		r, err := mmap.Open(d.path)
		if err != nil {
			return nil, err
		}
		d.reader = r
	}

	offset := int64(diskHeaderSize)
	size := d.reader.Len()
	for idx := 0; ; idx++ {
		if offset+4 > int64(size) {
			return nil, fmt.Errorf("scrollback: page %d not found", page)
		}
		var lenBuf [4]byte
		if _, err := d.reader.ReadAt(lenBuf[:], offset); err != nil {
			return nil, err
		}
		length := binary.LittleEndian.Uint32(lenBuf[:])
		dataOffset := offset + 4
		if idx == page {
			buf := make([]byte, length)
			if _, err := d.reader.ReadAt(buf, dataOffset); err != nil {
				return nil, err
			}
			return buf, nil
		}
		offset = dataOffset + int64(length)
	}
}

// Close releases the underlying file handles.
func (d *DiskStore) Close() error {
	if d.reader != nil {
		d.reader.Close()
	}
	return d.file.Close()
}

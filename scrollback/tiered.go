package scrollback

import "fmt"

const (
	defaultHotLimit    = 2000
	defaultWarmLimit   = 20000
	defaultBlockSize   = 256
	defaultMemoryBytes = 8 << 20 // 8 MiB
)

// Tiered is a three-tier scrollback store: hot holds the most recently
// pushed lines uncompressed, warm holds older lines in LZ4-compressed
// blocks, and cold holds the oldest lines Zstd-compressed, optionally
// spilled to a DiskStore once memory exceeds budget.
type Tiered struct {
	hot  []Line
	warm []*warmBlock
	cold []*coldBlock

	hotLimit     int
	warmLimit    int
	blockSize    int
	memoryBudget int

	disk *DiskStore
}

// NewTiered creates a Tiered store with the package's default limits.
func NewTiered() *Tiered {
	return &Tiered{
		hotLimit:     defaultHotLimit,
		warmLimit:    defaultWarmLimit,
		blockSize:    defaultBlockSize,
		memoryBudget: defaultMemoryBytes,
	}
}

// WithDiskStore attaches a DiskStore that cold blocks spill to once the
// memory budget can't be satisfied by compression alone.
func (t *Tiered) WithDiskStore(d *DiskStore) *Tiered {
	t.disk = d
	return t
}

// SetHotLimit sets the maximum number of uncompressed lines kept in hot.
func (t *Tiered) SetHotLimit(n int) { t.hotLimit = n }

// SetWarmLimit sets the maximum total number of lines kept across warm
// blocks before the oldest is evicted to cold.
func (t *Tiered) SetWarmLimit(n int) { t.warmLimit = n }

// SetBlockSize sets how many lines are grouped per warm/cold block when
// hot overflows.
func (t *Tiered) SetBlockSize(n int) { t.blockSize = n }

// LineCount returns the total number of lines retained across all tiers.
func (t *Tiered) LineCount() int {
	return t.coldTotalLines() + t.warmTotalLines() + len(t.hot)
}

func (t *Tiered) coldTotalLines() int {
	n := 0
	for _, b := range t.cold {
		n += int(b.lineCount)
	}
	return n
}

func (t *Tiered) warmTotalLines() int {
	n := 0
	for _, b := range t.warm {
		n += int(b.lineCount)
	}
	return n
}

func (t *Tiered) hotMemoryUsed() int {
	return len(encodeLines(t.hot))
}

func (t *Tiered) warmMemoryUsed() int {
	n := 0
	for _, b := range t.warm {
		n += b.memoryUsed()
	}
	return n
}

// PushLine appends a new line as the newest line in the store, promoting
// hot to warm and evicting warm to cold as needed to stay within the
// configured hot/warm/memory limits.
func (t *Tiered) PushLine(l Line) error {
	if len(t.hot) == t.hotLimit {
		if err := t.promoteHotToWarm(); err != nil {
			return err
		}
	}
	t.hot = append(t.hot, l)
	return t.evictWarmToCold()
}

func (t *Tiered) promoteHotToWarm() error {
	n := t.blockSize
	if n > len(t.hot) {
		n = len(t.hot)
	}
	if n == 0 {
		return nil
	}

	block, err := compressWarm(t.hot[:n])
	if err != nil {
		// Fatal for this block only: drop the lines rather than panic.
		t.hot = t.hot[n:]
		return nil
	}
	t.warm = append(t.warm, block)
	t.hot = t.hot[n:]
	return nil
}

// evictWarmToCold moves the oldest warm block to cold while over budget or
// over the warm line-count limit.
func (t *Tiered) evictWarmToCold() error {
	for (t.hotMemoryUsed()+t.warmMemoryUsed() > t.memoryBudget || t.warmTotalLines() > t.warmLimit) && len(t.warm) > 0 {
		oldest := t.warm[0]
		lines, err := oldest.decompress()
		if err != nil {
			// Fatal for this block: drop it and move on.
			t.warm = t.warm[1:]
			continue
		}

		cold, err := compressCold(lines)
		if err != nil {
			t.warm = t.warm[1:]
			continue
		}

		if t.disk != nil && t.hotMemoryUsed()+t.warmMemoryUsed()+t.coldMemoryUsed() > t.memoryBudget {
			if page, err := t.disk.AppendBlock(cold.payload); err == nil {
				cold.diskPage = page
				cold.payload = nil // evicted from RAM; read back from disk on demand
			}
			// A disk write failure leaves the cold block resident in RAM,
			// over budget as a last resort, per the tier's failure semantics.
		}

		t.cold = append(t.cold, cold)
		t.warm = t.warm[1:]
	}
	return nil
}

func (t *Tiered) coldMemoryUsed() int {
	n := 0
	for _, b := range t.cold {
		n += b.memoryUsed()
	}
	return n
}

// GetLine retrieves the line at absolute index i, where 0 is the oldest
// line currently retained. Returns false if i is out of range or the
// owning block failed to decompress.
func (t *Tiered) GetLine(i int) (Line, bool) {
	if i < 0 || i >= t.LineCount() {
		return Line{}, false
	}

	coldTotal := t.coldTotalLines()
	if i < coldTotal {
		return t.getFromCold(i)
	}
	i -= coldTotal

	warmTotal := t.warmTotalLines()
	if i < warmTotal {
		return t.getFromWarm(i)
	}
	i -= warmTotal

	return t.hot[i], true
}

func (t *Tiered) getFromCold(i int) (Line, bool) {
	for _, b := range t.cold {
		if i < int(b.lineCount) {
			lines, err := t.decompressCold(b)
			if err != nil || i >= len(lines) {
				return Line{}, false
			}
			return lines[i], true
		}
		i -= int(b.lineCount)
	}
	return Line{}, false
}

func (t *Tiered) decompressCold(b *coldBlock) ([]Line, error) {
	if b.payload != nil {
		return b.decompress()
	}
	if t.disk == nil || b.diskPage < 0 {
		return nil, fmt.Errorf("scrollback: cold block spilled with no disk store attached")
	}
	payload, err := t.disk.ReadBlock(b.diskPage)
	if err != nil {
		return nil, err
	}
	tmp := &coldBlock{payload: payload, uncompressedBytes: b.uncompressedBytes}
	return tmp.decompress()
}

func (t *Tiered) getFromWarm(i int) (Line, bool) {
	for _, b := range t.warm {
		if i < int(b.lineCount) {
			lines, err := b.decompress()
			if err != nil || i >= len(lines) {
				return Line{}, false
			}
			return lines[i], true
		}
		i -= int(b.lineCount)
	}
	return Line{}, false
}

// GetLineRev retrieves a line by reverse index; 0 is the newest line.
func (t *Tiered) GetLineRev(revIndex int) (Line, bool) {
	total := t.LineCount()
	if revIndex < 0 || revIndex >= total {
		return Line{}, false
	}
	return t.GetLine(total - 1 - revIndex)
}

// Iterator walks lines one at a time, oldest to newest, decompressing at
// most one block ahead of the current position.
type Iterator struct {
	t       *Tiered
	next    int
	reverse bool
}

// Iter returns an iterator starting at the oldest line.
func (t *Tiered) Iter() *Iterator { return &Iterator{t: t, next: 0} }

// IterRev returns an iterator starting at the newest line, walking
// backwards.
func (t *Tiered) IterRev() *Iterator {
	return &Iterator{t: t, next: t.LineCount() - 1, reverse: true}
}

// Next returns the next line and true, or a zero Line and false once
// exhausted.
func (it *Iterator) Next() (Line, bool) {
	if it.reverse {
		if it.next < 0 {
			return Line{}, false
		}
		l, ok := it.t.GetLine(it.next)
		it.next--
		return l, ok
	}
	if it.next >= it.t.LineCount() {
		return Line{}, false
	}
	l, ok := it.t.GetLine(it.next)
	it.next++
	return l, ok
}

// Clear empties all tiers, per (clear) — line_count resets to 0.
func (t *Tiered) Clear() {
	t.hot = nil
	t.warm = nil
	t.cold = nil
}

// Truncate retains only the last n lines, dropping everything older. Lines
// are resynthesized by replaying the retained tail through PushLine so the
// result satisfies the same invariants as ordinary pushes.
func (t *Tiered) Truncate(n int) error {
	if n < 0 {
		n = 0
	}
	total := t.LineCount()
	if n >= total {
		return nil
	}

	keep := make([]Line, 0, n)
	for i := total - n; i < total; i++ {
		line, ok := t.GetLine(i)
		if !ok {
			return fmt.Errorf("scrollback: truncate failed to read line %d", i)
		}
		keep = append(keep, line)
	}

	t.Clear()
	for _, l := range keep {
		if err := t.PushLine(l); err != nil {
			return err
		}
	}
	return nil
}

// SetMemoryBudget updates the memory budget and eagerly evicts warm blocks
// to cold if the new budget is tighter than the current usage.
func (t *Tiered) SetMemoryBudget(bytes int) error {
	t.memoryBudget = bytes
	return t.evictWarmToCold()
}

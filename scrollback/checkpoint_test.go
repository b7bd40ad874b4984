package scrollback

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestWriteReadBlocksRoundTrip(t *testing.T) {
	tr := NewTiered()
	tr.SetHotLimit(2)
	tr.SetBlockSize(2)
	tr.SetWarmLimit(2)

	for i := 0; i < 12; i++ {
		if err := tr.PushLine(makeLine(string(rune('a' + i)))); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}

	var buf bytes.Buffer
	hotCount, warmBlocks, coldBlocks, err := tr.WriteBlocks(&buf)
	if err != nil {
		t.Fatalf("WriteBlocks: %v", err)
	}

	restored := NewTiered()
	if err := restored.ReadBlocks(bytes.NewReader(buf.Bytes()), hotCount, warmBlocks, coldBlocks); err != nil {
		t.Fatalf("ReadBlocks: %v", err)
	}

	if restored.LineCount() != tr.LineCount() {
		t.Fatalf("LineCount after round-trip = %d, want %d", restored.LineCount(), tr.LineCount())
	}
	for i := 0; i < tr.LineCount(); i++ {
		want, ok := tr.GetLine(i)
		if !ok {
			t.Fatalf("source GetLine(%d) failed", i)
		}
		got, ok := restored.GetLine(i)
		if !ok || lineText(got) != lineText(want) {
			t.Errorf("GetLine(%d) = %q ok=%v, want %q", i, lineText(got), ok, lineText(want))
		}
	}
}

func TestReadBlocksRejectsTruncatedStream(t *testing.T) {
	tr := NewTiered()
	for i := 0; i < 5; i++ {
		tr.PushLine(makeLine("x"))
	}

	var buf bytes.Buffer
	hotCount, warmBlocks, coldBlocks, err := tr.WriteBlocks(&buf)
	if err != nil {
		t.Fatalf("WriteBlocks: %v", err)
	}

	truncated := buf.Bytes()[:buf.Len()-2]
	restored := NewTiered()
	if err := restored.ReadBlocks(bytes.NewReader(truncated), hotCount, warmBlocks, coldBlocks); err == nil {
		t.Fatal("expected an error reading a truncated block stream")
	}
}

func TestWriteBlocksFailsOnUnreachableSpilledColdBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cold.pages")
	d, err := OpenDiskStore(path, 4096)
	if err != nil {
		t.Fatalf("OpenDiskStore: %v", err)
	}

	tr := NewTiered().WithDiskStore(d)
	tr.SetHotLimit(2)
	tr.SetBlockSize(2)
	tr.SetWarmLimit(2)
	if err := tr.SetMemoryBudget(1); err != nil {
		t.Fatalf("SetMemoryBudget: %v", err)
	}
	for i := 0; i < 12; i++ {
		tr.PushLine(makeLine(string(rune('a' + i))))
	}

	defer d.Close()

	spilled := false
	for _, b := range tr.cold {
		if b.diskPage >= 0 {
			spilled = true
		}
	}
	if !spilled {
		t.Fatal("expected at least one cold block to spill under a tight budget")
	}

	tr.disk = nil // simulate the store being detached/unreachable

	var buf bytes.Buffer
	if _, _, _, err := tr.WriteBlocks(&buf); err == nil {
		t.Error("expected WriteBlocks to fail when a spilled cold block's disk store is unreachable")
	}
}

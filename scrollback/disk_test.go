package scrollback

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestDiskStoreAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cold.pages")
	d, err := OpenDiskStore(path, 4096)
	if err != nil {
		t.Fatalf("OpenDiskStore: %v", err)
	}
	defer d.Close()

	payloads := [][]byte{
		[]byte("first page payload"),
		[]byte("second, a bit longer page payload"),
	}

	var pages []int
	for _, p := range payloads {
		page, err := d.AppendBlock(p)
		if err != nil {
			t.Fatalf("AppendBlock: %v", err)
		}
		pages = append(pages, page)
	}

	for i, page := range pages {
		got, err := d.ReadBlock(page)
		if err != nil {
			t.Fatalf("ReadBlock(%d): %v", page, err)
		}
		if !bytes.Equal(got, payloads[i]) {
			t.Errorf("ReadBlock(%d) = %q, want %q", page, got, payloads[i])
		}
	}
}

func TestTieredWithDiskStoreSpill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cold.pages")
	d, err := OpenDiskStore(path, 4096)
	if err != nil {
		t.Fatalf("OpenDiskStore: %v", err)
	}
	defer d.Close()

	tr := NewTiered().WithDiskStore(d)
	tr.SetHotLimit(2)
	tr.SetBlockSize(2)
	tr.SetWarmLimit(2)
	if err := tr.SetMemoryBudget(1); err != nil {
		t.Fatalf("SetMemoryBudget: %v", err)
	}

	for i := 0; i < 12; i++ {
		if err := tr.PushLine(makeLine(string(rune('a' + i)))); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}

	spilled := false
	for _, b := range tr.cold {
		if b.diskPage >= 0 {
			spilled = true
		}
	}
	if !spilled {
		t.Fatal("expected at least one cold block to spill to disk under a tight budget")
	}

	for i := 0; i < 12; i++ {
		l, ok := tr.GetLine(i)
		want := string(rune('a' + i))
		if !ok || lineText(l) != want {
			t.Errorf("GetLine(%d) = %q ok=%v, want %q", i, lineText(l), ok, want)
		}
	}
}

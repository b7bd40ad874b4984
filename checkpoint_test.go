package dterm

import (
	"bytes"
	"testing"

	"github.com/go-dterm/dterm/scrollback"
)

func TestCheckpointSaveLoadRoundTrip(t *testing.T) {
	term := New(WithSize(4, 10), WithScrollback(NewTieredScrollback(scrollback.NewTiered())))
	term.WriteString("\x1b[1;32mhello\x1b[0m\r\n")
	term.WriteString("world\r\n")
	term.WriteString("\x1b[3;4H")

	var buf bytes.Buffer
	if err := term.SaveCheckpoint(&buf); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	restored := New(WithSize(4, 10))
	if err := restored.LoadCheckpoint(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}

	if restored.cursor.Row != 2 || restored.cursor.Col != 3 {
		t.Errorf("cursor = (%d, %d), want (2, 3)", restored.cursor.Row, restored.cursor.Col)
	}
	if restored.ScrollbackLen() != term.ScrollbackLen() {
		t.Errorf("ScrollbackLen = %d, want %d", restored.ScrollbackLen(), term.ScrollbackLen())
	}
}

func TestLoadCheckpointResizesBuffersOnSizeMismatch(t *testing.T) {
	term := New(WithSize(4, 10), WithScrollback(NewTieredScrollback(scrollback.NewTiered())))
	term.WriteString("\x1b[3;8Hx")

	var buf bytes.Buffer
	if err := term.SaveCheckpoint(&buf); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	restored := New(WithSize(24, 80))
	if err := restored.LoadCheckpoint(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}

	if restored.rows != 4 || restored.cols != 10 {
		t.Fatalf("grid size = (%d, %d), want (4, 10)", restored.rows, restored.cols)
	}
	if restored.primaryBuffer.rows != 4 || restored.primaryBuffer.cols != 10 {
		t.Errorf("primaryBuffer size = (%d, %d), want (4, 10)", restored.primaryBuffer.rows, restored.primaryBuffer.cols)
	}
	if restored.alternateBuffer.rows != 4 || restored.alternateBuffer.cols != 10 {
		t.Errorf("alternateBuffer size = (%d, %d), want (4, 10)", restored.alternateBuffer.rows, restored.alternateBuffer.cols)
	}

	restored.WriteString("\x1b[4;10Hy")
	if restored.cursor.Row != 3 || restored.cursor.Col != 10 {
		t.Errorf("cursor after write at restored bottom-right = (%d, %d), want (3, 10) (wrap pending)", restored.cursor.Row, restored.cursor.Col)
	}
}

func TestLoadCheckpointRejectsBadMagic(t *testing.T) {
	term := New(WithSize(4, 10))
	if err := term.LoadCheckpoint(bytes.NewReader([]byte("not a checkpoint at all"))); err != ErrCheckpointMagic {
		t.Errorf("err = %v, want ErrCheckpointMagic", err)
	}
}

func TestLoadCheckpointRejectsTruncated(t *testing.T) {
	term := New(WithSize(4, 10))
	var buf bytes.Buffer
	if err := term.SaveCheckpoint(&buf); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	truncated := buf.Bytes()[:buf.Len()-5]
	if err := term.LoadCheckpoint(bytes.NewReader(truncated)); err == nil {
		t.Error("expected an error loading a truncated checkpoint")
	}
}

func TestLoadCheckpointLeavesGridUnchangedOnFailure(t *testing.T) {
	term := New(WithSize(4, 10))
	term.WriteString("\x1b[2;2H")

	err := term.LoadCheckpoint(bytes.NewReader([]byte("garbage")))
	if err == nil {
		t.Fatal("expected an error")
	}
	if term.cursor.Row != 1 || term.cursor.Col != 1 {
		t.Errorf("cursor mutated despite failed LoadCheckpoint: (%d, %d)", term.cursor.Row, term.cursor.Col)
	}
}

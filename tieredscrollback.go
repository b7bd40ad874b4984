package dterm

import (
	"image/color"

	"github.com/go-dterm/dterm/scrollback"
)

// TieredScrollback adapts a scrollback.Tiered store to the ScrollbackProvider
// interface, so WithScrollback(NewTieredScrollback(...)) gives a Grid
// effectively unbounded history under a fixed memory budget instead of the
// default NoopScrollback or an in-memory slice.
type TieredScrollback struct {
	tiered   *scrollback.Tiered
	maxLines int
}

// NewTieredScrollback wraps an already-configured scrollback.Tiered store.
func NewTieredScrollback(tiered *scrollback.Tiered) *TieredScrollback {
	return &TieredScrollback{tiered: tiered}
}

// Push implements ScrollbackProvider.
func (s *TieredScrollback) Push(line []Cell) {
	_ = s.tiered.PushLine(scrollback.Line{Cells: toScrollbackCells(line)})
	if s.maxLines > 0 {
		_ = s.tiered.Truncate(s.maxLines)
	}
}

// Len implements ScrollbackProvider.
func (s *TieredScrollback) Len() int {
	return s.tiered.LineCount()
}

// Line implements ScrollbackProvider.
func (s *TieredScrollback) Line(index int) []Cell {
	l, ok := s.tiered.GetLine(index)
	if !ok {
		return nil
	}
	return fromScrollbackCells(l.Cells)
}

// Clear implements ScrollbackProvider.
func (s *TieredScrollback) Clear() {
	s.tiered.Clear()
}

// SetMaxLines implements ScrollbackProvider.
func (s *TieredScrollback) SetMaxLines(max int) {
	s.maxLines = max
	if max > 0 && s.tiered.LineCount() > max {
		_ = s.tiered.Truncate(max)
	}
}

// MaxLines implements ScrollbackProvider.
func (s *TieredScrollback) MaxLines() int {
	return s.maxLines
}

func toScrollbackCells(cells []Cell) []scrollback.Cell {
	out := make([]scrollback.Cell, len(cells))
	for i, c := range cells {
		out[i] = scrollback.Cell{
			Char:           c.Char,
			Fg:             c.Fg,
			Bg:             c.Bg,
			UnderlineColor: c.UnderlineColor,
			Flags:          uint32(c.Flags),
		}
	}
	return out
}

func fromScrollbackCells(cells []scrollback.Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{
			Char:           c.Char,
			Fg:             resolveScrollbackColor(c.Fg),
			Bg:             resolveScrollbackColor(c.Bg),
			UnderlineColor: resolveScrollbackColor(c.UnderlineColor),
			Flags:          CellFlags(c.Flags),
		}
	}
	return out
}

// resolveScrollbackColor converts a scrollback-decoded placeholder color
// (the scrollback package decodes every indexed or named color into its own
// placeholder type) back into the host's own IndexedColor/NamedColor types.
func resolveScrollbackColor(c color.Color) color.Color {
	if idx, ok := scrollback.ColorIndex(c); ok {
		return &IndexedColor{Index: idx}
	}
	if name, ok := scrollback.ColorName(c); ok {
		return &NamedColor{Name: name}
	}
	return c
}

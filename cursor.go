package dterm

import "github.com/go-dterm/dterm/vt"

// CursorStyle, Charset and CharsetIndex are aliased from vt: they're the
// same enums the decoder hands to SetCursorStyle/ConfigureCharset, so the
// values a VT stream selects and the values the Grid stores are identical
// with no translation layer of their own.
type (
	CursorStyle  = vt.CursorStyle
	Charset      = vt.Charset
	CharsetIndex = vt.CharsetIndex
)

const (
	CursorStyleBlinkingBlock      = vt.CursorStyleBlinkingBlock
	CursorStyleSteadyBlock        = vt.CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline  = vt.CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline    = vt.CursorStyleSteadyUnderline
	CursorStyleBlinkingBar        = vt.CursorStyleBlinkingBar
	CursorStyleSteadyBar          = vt.CursorStyleSteadyBar

	CharsetASCII       = vt.CharsetASCII
	CharsetLineDrawing = vt.CharsetLineDrawing

	CharsetIndexG0 = vt.CharsetIndexG0
	CharsetIndexG1 = vt.CharsetIndexG1
	CharsetIndexG2 = vt.CharsetIndexG2
	CharsetIndexG3 = vt.CharsetIndexG3
)

// Cursor tracks the current position, rendering style and per-slot charset
// assignment (0-based coordinates). Each Cursor carries its own charset
// slots (rather than one array shared across the whole Grid) so that
// SaveCursorPosition/RestoreCursorPosition round-trip charset state
// correctly even though primary and alternate screens share one Grid.
type Cursor struct {
	Row      int
	Col      int
	Style    CursorStyle
	Visible  bool
	Active   CharsetIndex
	Charsets [4]Charset
}

// NewCursor creates a cursor at (0, 0) with blinking block style, visible,
// G0 active and all charset slots set to ASCII.
func NewCursor() *Cursor {
	return &Cursor{
		Row:     0,
		Col:     0,
		Style:   CursorStyleBlinkingBlock,
		Visible: true,
		Active:  CharsetIndexG0,
	}
}

// translate maps r through the cursor's active charset, applying DEC
// special-graphics line-drawing substitution when selected.
func (c *Cursor) translate(r rune) rune {
	if c.Charsets[c.Active] != CharsetLineDrawing {
		return r
	}
	return lineDrawingRune(r)
}

// SavedCursor stores cursor position, cell attributes, and charset state for
// restoration. Used when switching between primary and alternate screens.
type SavedCursor struct {
	Row        int
	Col        int
	Attrs      CellTemplate
	OriginMode bool
	Active     CharsetIndex
	Charsets   [4]Charset
}

// CellTemplate defines default attributes applied to newly written characters.
// Modified by SGR (Select Graphic Rendition) escape sequences.
type CellTemplate struct {
	Cell
}

// NewCellTemplate creates a template with default attributes (default named colors, no flags).
func NewCellTemplate() CellTemplate {
	return CellTemplate{
		Cell: NewCell(),
	}
}

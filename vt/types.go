package vt

// ClearMode selects which portion of the screen ClearScreen affects.
type ClearMode int

const (
	ClearModeBelow ClearMode = iota
	ClearModeAbove
	ClearModeAll
	ClearModeSaved
)

// LineClearMode selects which portion of a line ClearLine affects.
type LineClearMode int

const (
	LineClearModeRight LineClearMode = iota
	LineClearModeLeft
	LineClearModeAll
)

// TabulationClearMode selects which tab stops ClearTabs removes.
type TabulationClearMode int

const (
	TabulationClearModeCurrent TabulationClearMode = iota
	TabulationClearModeAll
)

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// CharsetIndex selects one of four character set slots (G0-G3).
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)

// Charset selects the character encoding variant assigned to a slot.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// TerminalMode is a single addressable terminal behavior flag (DECSET/DECRST
// and ANSI SM/RM targets). The decoder resolves a raw mode number to one of
// these before calling SetMode/UnsetMode; a Handler ORs/ANDs it into whatever
// bitmask it keeps for its own state.
type TerminalMode uint32

const (
	ModeCursorKeys TerminalMode = 1 << iota
	ModeColumnMode
	ModeInsert
	ModeOrigin
	ModeLineWrap
	ModeBlinkingCursor
	ModeLineFeedNewLine
	ModeShowCursor
	ModeReportMouseClicks
	ModeReportCellMouseMotion
	ModeReportAllMouseMotion
	ModeReportFocusInOut
	ModeUTF8Mouse
	ModeSGRMouse
	ModeAlternateScroll
	ModeUrgencyHints
	ModeSwapScreenAndSetRestoreCursor
	ModeBracketedPaste
	ModeKeypadApplication
)

// Hyperlink is the decoded payload of an OSC 8 sequence.
type Hyperlink struct {
	ID  string
	URI string
}

// CharAttribute names one SGR (Select Graphic Rendition) effect. The decoder
// delivers one TerminalCharAttribute per SGR code in a CSI 'm' sequence,
// already split out of any colon/semicolon sub-parameters.
type CharAttribute int

const (
	CharAttributeReset CharAttribute = iota
	CharAttributeBold
	CharAttributeDim
	CharAttributeItalic
	CharAttributeUnderline
	CharAttributeDoubleUnderline
	CharAttributeCurlyUnderline
	CharAttributeDottedUnderline
	CharAttributeDashedUnderline
	CharAttributeBlinkSlow
	CharAttributeBlinkFast
	CharAttributeReverse
	CharAttributeHidden
	CharAttributeStrike
	CharAttributeCancelBold
	CharAttributeCancelBoldDim
	CharAttributeCancelItalic
	CharAttributeCancelUnderline
	CharAttributeCancelBlink
	CharAttributeCancelReverse
	CharAttributeCancelHidden
	CharAttributeCancelStrike
	CharAttributeForeground
	CharAttributeBackground
	CharAttributeUnderlineColor
)

// RGBColor is a fully specified 24-bit color from an extended SGR form
// (38/48/58 ; 2 ; r ; g ; b).
type RGBColor struct {
	R, G, B uint8
}

// IndexedColorAttr is a palette index from an extended SGR form
// (38/48/58 ; 5 ; n) or one of the 16 basic SGR color codes.
type IndexedColorAttr struct {
	Index int
}

// TerminalCharAttribute is one resolved SGR effect, with at most one of
// RGBColor/IndexedColor/NamedColor set for color-carrying attributes
// (Foreground, Background, UnderlineColor). All three nil means "reset this
// attribute to its default", as with SGR 39/49/59.
type TerminalCharAttribute struct {
	Attr         CharAttribute
	RGBColor     *RGBColor
	IndexedColor *IndexedColorAttr
	NamedColor   *int
}

package vt

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// decoderAdapter implements the full ansicode.Handler surface so a
// *ansicode.Decoder can drive it directly, translating each event into the
// narrower Handler this package exposes. Events outside this engine's scope
// (Kitty/Sixel graphics, cell pixel geometry, the keyboard-mode stack,
// working-directory reporting) are absorbed here as no-ops rather than
// widening Handler with methods nothing implements meaningfully.
type decoderAdapter struct {
	h Handler
}

var _ ansicode.Handler = (*decoderAdapter)(nil)

func (a *decoderAdapter) Input(r rune)        { a.h.Input(r) }
func (a *decoderAdapter) Backspace()          { a.h.Backspace() }
func (a *decoderAdapter) Bell()               { a.h.Bell() }
func (a *decoderAdapter) CarriageReturn()     { a.h.CarriageReturn() }
func (a *decoderAdapter) LineFeed()           { a.h.LineFeed() }
func (a *decoderAdapter) Substitute()         { a.h.Substitute() }
func (a *decoderAdapter) Decaln()             { a.h.Decaln() }
func (a *decoderAdapter) ResetState()         { a.h.ResetState() }

func (a *decoderAdapter) Goto(row, col int)        { a.h.Goto(row, col) }
func (a *decoderAdapter) GotoCol(col int)          { a.h.GotoCol(col) }
func (a *decoderAdapter) GotoLine(row int)         { a.h.GotoLine(row) }
func (a *decoderAdapter) MoveUp(n int)             { a.h.MoveUp(n) }
func (a *decoderAdapter) MoveDown(n int)           { a.h.MoveDown(n) }
func (a *decoderAdapter) MoveForward(n int)        { a.h.MoveForward(n) }
func (a *decoderAdapter) MoveBackward(n int)       { a.h.MoveBackward(n) }
func (a *decoderAdapter) MoveUpCr(n int)           { a.h.MoveUpCr(n) }
func (a *decoderAdapter) MoveDownCr(n int)         { a.h.MoveDownCr(n) }
func (a *decoderAdapter) MoveForwardTabs(n int)    { a.h.MoveForwardTabs(n) }
func (a *decoderAdapter) MoveBackwardTabs(n int)   { a.h.MoveBackwardTabs(n) }
func (a *decoderAdapter) HorizontalTabSet()        { a.h.HorizontalTabSet() }
func (a *decoderAdapter) Tab(n int)                { a.h.Tab(n) }

func (a *decoderAdapter) InsertBlank(n int)      { a.h.InsertBlank(n) }
func (a *decoderAdapter) InsertBlankLines(n int) { a.h.InsertBlankLines(n) }
func (a *decoderAdapter) DeleteChars(n int)      { a.h.DeleteChars(n) }
func (a *decoderAdapter) DeleteLines(n int)      { a.h.DeleteLines(n) }
func (a *decoderAdapter) EraseChars(n int)       { a.h.EraseChars(n) }
func (a *decoderAdapter) ScrollUp(n int)         { a.h.ScrollUp(n) }
func (a *decoderAdapter) ScrollDown(n int)       { a.h.ScrollDown(n) }
func (a *decoderAdapter) ReverseIndex()          { a.h.ReverseIndex() }

func (a *decoderAdapter) SetScrollingRegion(top, bottom int) { a.h.SetScrollingRegion(top, bottom) }
func (a *decoderAdapter) SaveCursorPosition()                { a.h.SaveCursorPosition() }
func (a *decoderAdapter) RestoreCursorPosition()              { a.h.RestoreCursorPosition() }
func (a *decoderAdapter) SetCursorStyle(style ansicode.CursorStyle) {
	a.h.SetCursorStyle(CursorStyle(style))
}

func (a *decoderAdapter) SetKeypadApplicationMode()   { a.h.SetKeypadApplicationMode() }
func (a *decoderAdapter) UnsetKeypadApplicationMode() { a.h.UnsetKeypadApplicationMode() }

func (a *decoderAdapter) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	a.h.ConfigureCharset(CharsetIndex(index), Charset(charset))
}
func (a *decoderAdapter) SetActiveCharset(n int) { a.h.SetActiveCharset(n) }

func (a *decoderAdapter) SetTitle(title string) { a.h.SetTitle(title) }
func (a *decoderAdapter) PushTitle()             { a.h.PushTitle() }
func (a *decoderAdapter) PopTitle()              { a.h.PopTitle() }

func (a *decoderAdapter) SetHyperlink(hyperlink *ansicode.Hyperlink) {
	if hyperlink == nil {
		a.h.SetHyperlink(nil)
		return
	}
	a.h.SetHyperlink(&Hyperlink{ID: hyperlink.ID, URI: hyperlink.URI})
}

func (a *decoderAdapter) SetColor(index int, c color.Color)  { a.h.SetColor(index, c) }
func (a *decoderAdapter) SetDynamicColor(prefix string, index int, terminator string) {
	a.h.SetDynamicColor(prefix, index, terminator)
}
func (a *decoderAdapter) ResetColor(i int) { a.h.ResetColor(i) }

func (a *decoderAdapter) ClipboardLoad(clipboard byte, terminator string) {
	a.h.ClipboardLoad(clipboard, terminator)
}
func (a *decoderAdapter) ClipboardStore(clipboard byte, data []byte) {
	a.h.ClipboardStore(clipboard, data)
}

func (a *decoderAdapter) DeviceStatus(n int)          { a.h.DeviceStatus(n) }
func (a *decoderAdapter) IdentifyTerminal(b byte)     { a.h.IdentifyTerminal(b) }

func (a *decoderAdapter) ApplicationCommandReceived(data []byte) { a.h.ApplicationCommandReceived(data) }
func (a *decoderAdapter) PrivacyMessageReceived(data []byte)     { a.h.PrivacyMessageReceived(data) }
func (a *decoderAdapter) StartOfStringReceived(data []byte)      { a.h.StartOfStringReceived(data) }

func (a *decoderAdapter) ClearScreen(mode ansicode.ClearMode) {
	var m ClearMode
	switch mode {
	case ansicode.ClearModeBelow:
		m = ClearModeBelow
	case ansicode.ClearModeAbove:
		m = ClearModeAbove
	case ansicode.ClearModeAll:
		m = ClearModeAll
	case ansicode.ClearModeSaved:
		m = ClearModeSaved
	}
	a.h.ClearScreen(m)
}

func (a *decoderAdapter) ClearLine(mode ansicode.LineClearMode) {
	var m LineClearMode
	switch mode {
	case ansicode.LineClearModeRight:
		m = LineClearModeRight
	case ansicode.LineClearModeLeft:
		m = LineClearModeLeft
	case ansicode.LineClearModeAll:
		m = LineClearModeAll
	}
	a.h.ClearLine(m)
}

func (a *decoderAdapter) ClearTabs(mode ansicode.TabulationClearMode) {
	var m TabulationClearMode
	switch mode {
	case ansicode.TabulationClearModeCurrent:
		m = TabulationClearModeCurrent
	case ansicode.TabulationClearModeAll:
		m = TabulationClearModeAll
	}
	a.h.ClearTabs(m)
}

// setMode translates a raw ansicode.TerminalMode event into this package's
// TerminalMode bit, returning ok=false for anything this engine ignores.
func setMode(mode ansicode.TerminalMode) (TerminalMode, bool) {
	switch mode {
	case ansicode.TerminalModeCursorKeys:
		return ModeCursorKeys, true
	case ansicode.TerminalModeColumnMode:
		return ModeColumnMode, true
	case ansicode.TerminalModeInsert:
		return ModeInsert, true
	case ansicode.TerminalModeOrigin:
		return ModeOrigin, true
	case ansicode.TerminalModeLineWrap:
		return ModeLineWrap, true
	case ansicode.TerminalModeBlinkingCursor:
		return ModeBlinkingCursor, true
	case ansicode.TerminalModeLineFeedNewLine:
		return ModeLineFeedNewLine, true
	case ansicode.TerminalModeShowCursor:
		return ModeShowCursor, true
	case ansicode.TerminalModeReportMouseClicks:
		return ModeReportMouseClicks, true
	case ansicode.TerminalModeReportCellMouseMotion:
		return ModeReportCellMouseMotion, true
	case ansicode.TerminalModeReportAllMouseMotion:
		return ModeReportAllMouseMotion, true
	case ansicode.TerminalModeReportFocusInOut:
		return ModeReportFocusInOut, true
	case ansicode.TerminalModeUTF8Mouse:
		return ModeUTF8Mouse, true
	case ansicode.TerminalModeSGRMouse:
		return ModeSGRMouse, true
	case ansicode.TerminalModeAlternateScroll:
		return ModeAlternateScroll, true
	case ansicode.TerminalModeUrgencyHints:
		return ModeUrgencyHints, true
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		return ModeSwapScreenAndSetRestoreCursor, true
	case ansicode.TerminalModeBracketedPaste:
		return ModeBracketedPaste, true
	default:
		return 0, false
	}
}

func (a *decoderAdapter) SetMode(mode ansicode.TerminalMode) {
	if m, ok := setMode(mode); ok {
		a.h.SetMode(m)
	}
}

func (a *decoderAdapter) UnsetMode(mode ansicode.TerminalMode) {
	if m, ok := setMode(mode); ok {
		a.h.UnsetMode(m)
	}
}

func (a *decoderAdapter) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	out := TerminalCharAttribute{Attr: charAttribute(attr.Attr)}
	if attr.RGBColor != nil {
		out.RGBColor = &RGBColor{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B}
	}
	if attr.IndexedColor != nil {
		out.IndexedColor = &IndexedColorAttr{Index: int(attr.IndexedColor.Index)}
	}
	if attr.NamedColor != nil {
		n := int(*attr.NamedColor)
		out.NamedColor = &n
	}
	a.h.SetTerminalCharAttribute(out)
}

func charAttribute(a ansicode.CharAttribute) CharAttribute {
	switch a {
	case ansicode.CharAttributeReset:
		return CharAttributeReset
	case ansicode.CharAttributeBold:
		return CharAttributeBold
	case ansicode.CharAttributeDim:
		return CharAttributeDim
	case ansicode.CharAttributeItalic:
		return CharAttributeItalic
	case ansicode.CharAttributeUnderline:
		return CharAttributeUnderline
	case ansicode.CharAttributeDoubleUnderline:
		return CharAttributeDoubleUnderline
	case ansicode.CharAttributeCurlyUnderline:
		return CharAttributeCurlyUnderline
	case ansicode.CharAttributeDottedUnderline:
		return CharAttributeDottedUnderline
	case ansicode.CharAttributeDashedUnderline:
		return CharAttributeDashedUnderline
	case ansicode.CharAttributeBlinkSlow:
		return CharAttributeBlinkSlow
	case ansicode.CharAttributeBlinkFast:
		return CharAttributeBlinkFast
	case ansicode.CharAttributeReverse:
		return CharAttributeReverse
	case ansicode.CharAttributeHidden:
		return CharAttributeHidden
	case ansicode.CharAttributeStrike:
		return CharAttributeStrike
	case ansicode.CharAttributeCancelBold:
		return CharAttributeCancelBold
	case ansicode.CharAttributeCancelBoldDim:
		return CharAttributeCancelBoldDim
	case ansicode.CharAttributeCancelItalic:
		return CharAttributeCancelItalic
	case ansicode.CharAttributeCancelUnderline:
		return CharAttributeCancelUnderline
	case ansicode.CharAttributeCancelBlink:
		return CharAttributeCancelBlink
	case ansicode.CharAttributeCancelReverse:
		return CharAttributeCancelReverse
	case ansicode.CharAttributeCancelHidden:
		return CharAttributeCancelHidden
	case ansicode.CharAttributeCancelStrike:
		return CharAttributeCancelStrike
	case ansicode.CharAttributeForeground:
		return CharAttributeForeground
	case ansicode.CharAttributeBackground:
		return CharAttributeBackground
	case ansicode.CharAttributeUnderlineColor:
		return CharAttributeUnderlineColor
	default:
		return CharAttributeReset
	}
}

// The following events fall outside this engine's domain surface (graphics
// protocols, pixel geometry, the keyboard-mode stack, working-directory
// reporting) and so are intentionally absorbed without reaching Handler.

func (a *decoderAdapter) SixelReceived(params [][]uint16, data []byte) {}
func (a *decoderAdapter) CellSizePixels()                              {}
func (a *decoderAdapter) TextAreaSizeChars()                           {}
func (a *decoderAdapter) TextAreaSizePixels()                          {}
func (a *decoderAdapter) SetWorkingDirectory(uri string)               {}
func (a *decoderAdapter) WorkingDirectory() string                     { return "" }
func (a *decoderAdapter) WorkingDirectoryPath() string                 { return "" }
func (a *decoderAdapter) PushKeyboardMode(mode ansicode.KeyboardMode)   {}
func (a *decoderAdapter) PopKeyboardMode(n int)                        {}
func (a *decoderAdapter) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}
func (a *decoderAdapter) ReportKeyboardMode()                                {}
func (a *decoderAdapter) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (a *decoderAdapter) ReportModifyOtherKeys()                             {}

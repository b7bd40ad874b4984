package vt

import "image/color"

// Handler receives the semantic terminal actions the decoder produces from
// a raw byte stream. Implementations should not retain byte slices passed
// to ApplicationCommandReceived/PrivacyMessageReceived/StartOfStringReceived
// beyond the call.
type Handler interface {
	Input(r rune)
	Backspace()
	Bell()
	CarriageReturn()
	LineFeed()
	Substitute()
	Decaln()
	ResetState()

	Goto(row, col int)
	GotoCol(col int)
	GotoLine(row int)
	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	MoveUpCr(n int)
	MoveDownCr(n int)
	MoveForwardTabs(n int)
	MoveBackwardTabs(n int)
	HorizontalTabSet()
	Tab(n int)

	ClearScreen(mode ClearMode)
	ClearLine(mode LineClearMode)
	ClearTabs(mode TabulationClearMode)
	InsertBlank(n int)
	InsertBlankLines(n int)
	DeleteChars(n int)
	DeleteLines(n int)
	EraseChars(n int)
	ScrollUp(n int)
	ScrollDown(n int)
	ReverseIndex()

	SetScrollingRegion(top, bottom int)
	SaveCursorPosition()
	RestoreCursorPosition()
	SetCursorStyle(style CursorStyle)

	SetMode(mode TerminalMode)
	UnsetMode(mode TerminalMode)
	SetKeypadApplicationMode()
	UnsetKeypadApplicationMode()

	ConfigureCharset(index CharsetIndex, charset Charset)
	SetActiveCharset(n int)

	SetTerminalCharAttribute(attr TerminalCharAttribute)

	SetTitle(title string)
	PushTitle()
	PopTitle()
	SetHyperlink(hyperlink *Hyperlink)
	SetColor(index int, c color.Color)
	SetDynamicColor(prefix string, index int, terminator string)
	ResetColor(i int)
	ClipboardLoad(clipboard byte, terminator string)
	ClipboardStore(clipboard byte, data []byte)

	DeviceStatus(n int)
	IdentifyTerminal(b byte)

	ApplicationCommandReceived(data []byte)
	PrivacyMessageReceived(data []byte)
	StartOfStringReceived(data []byte)
}

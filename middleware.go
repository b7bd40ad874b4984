package dterm

import (
	"image/color"

	"github.com/go-dterm/dterm/vt"
)

// Middleware intercepts Grid action calls, allowing custom behavior
// before/after execution. Each field wraps one action: it receives the
// original parameters and a next function to invoke the default
// implementation. Nil fields fall through to the default behavior.
type Middleware struct {
	Input          func(r rune, next func(rune))
	Bell           func(next func())
	Backspace      func(next func())
	CarriageReturn func(next func())
	LineFeed       func(next func())
	Tab            func(n int, next func(int))

	ClearLine   func(mode LineClearMode, next func(LineClearMode))
	ClearScreen func(mode ClearMode, next func(ClearMode))
	ClearTabs   func(mode TabulationClearMode, next func(TabulationClearMode))

	Goto    func(row, col int, next func(int, int))
	GotoLine func(row int, next func(int))
	GotoCol func(col int, next func(int))

	MoveUp           func(n int, next func(int))
	MoveDown         func(n int, next func(int))
	MoveForward      func(n int, next func(int))
	MoveBackward     func(n int, next func(int))
	MoveUpCr         func(n int, next func(int))
	MoveDownCr       func(n int, next func(int))
	MoveForwardTabs  func(n int, next func(int))
	MoveBackwardTabs func(n int, next func(int))

	InsertBlank      func(n int, next func(int))
	InsertBlankLines func(n int, next func(int))
	DeleteChars      func(n int, next func(int))
	DeleteLines      func(n int, next func(int))
	EraseChars       func(n int, next func(int))

	ScrollUp           func(n int, next func(int))
	ScrollDown         func(n int, next func(int))
	SetScrollingRegion func(top, bottom int, next func(int, int))

	SetMode                 func(mode TerminalMode, next func(TerminalMode))
	UnsetMode               func(mode TerminalMode, next func(TerminalMode))
	SetTitle                func(title string, next func(string))
	SetCursorStyle          func(style CursorStyle, next func(CursorStyle))
	SetTerminalCharAttribute func(attr vt.TerminalCharAttribute, next func(vt.TerminalCharAttribute))

	SaveCursorPosition    func(next func())
	RestoreCursorPosition func(next func())
	ReverseIndex          func(next func())
	ResetState            func(next func())
	Substitute            func(next func())
	Decaln                func(next func())
	DeviceStatus          func(n int, next func(int))
	IdentifyTerminal      func(b byte, next func(byte))
	ConfigureCharset      func(index CharsetIndex, charset Charset, next func(CharsetIndex, Charset))
	SetActiveCharset      func(n int, next func(int))

	SetKeypadApplicationMode   func(next func())
	UnsetKeypadApplicationMode func(next func())

	SetColor       func(index int, c color.Color, next func(int, color.Color))
	ResetColor     func(i int, next func(int))
	SetDynamicColor func(prefix string, index int, terminator string, next func(string, int, string))

	ClipboardLoad  func(clipboard byte, terminator string, next func(byte, string))
	ClipboardStore func(clipboard byte, data []byte, next func(byte, []byte))
	SetHyperlink   func(hyperlink *Hyperlink, next func(*Hyperlink))

	PushTitle func(next func())
	PopTitle  func(next func())

	HorizontalTabSet func(next func())

	ApplicationCommandReceived func(data []byte, next func([]byte))
	PrivacyMessageReceived     func(data []byte, next func([]byte))
	StartOfStringReceived      func(data []byte, next func([]byte))
}

// Merge copies non-nil middleware functions from other into this, overwriting existing values.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}
	if other.Input != nil {
		m.Input = other.Input
	}
	if other.Bell != nil {
		m.Bell = other.Bell
	}
	if other.Backspace != nil {
		m.Backspace = other.Backspace
	}
	if other.CarriageReturn != nil {
		m.CarriageReturn = other.CarriageReturn
	}
	if other.LineFeed != nil {
		m.LineFeed = other.LineFeed
	}
	if other.Tab != nil {
		m.Tab = other.Tab
	}
	if other.ClearLine != nil {
		m.ClearLine = other.ClearLine
	}
	if other.ClearScreen != nil {
		m.ClearScreen = other.ClearScreen
	}
	if other.ClearTabs != nil {
		m.ClearTabs = other.ClearTabs
	}
	if other.Goto != nil {
		m.Goto = other.Goto
	}
	if other.GotoLine != nil {
		m.GotoLine = other.GotoLine
	}
	if other.GotoCol != nil {
		m.GotoCol = other.GotoCol
	}
	if other.MoveUp != nil {
		m.MoveUp = other.MoveUp
	}
	if other.MoveDown != nil {
		m.MoveDown = other.MoveDown
	}
	if other.MoveForward != nil {
		m.MoveForward = other.MoveForward
	}
	if other.MoveBackward != nil {
		m.MoveBackward = other.MoveBackward
	}
	if other.MoveUpCr != nil {
		m.MoveUpCr = other.MoveUpCr
	}
	if other.MoveDownCr != nil {
		m.MoveDownCr = other.MoveDownCr
	}
	if other.MoveForwardTabs != nil {
		m.MoveForwardTabs = other.MoveForwardTabs
	}
	if other.MoveBackwardTabs != nil {
		m.MoveBackwardTabs = other.MoveBackwardTabs
	}
	if other.InsertBlank != nil {
		m.InsertBlank = other.InsertBlank
	}
	if other.InsertBlankLines != nil {
		m.InsertBlankLines = other.InsertBlankLines
	}
	if other.DeleteChars != nil {
		m.DeleteChars = other.DeleteChars
	}
	if other.DeleteLines != nil {
		m.DeleteLines = other.DeleteLines
	}
	if other.EraseChars != nil {
		m.EraseChars = other.EraseChars
	}
	if other.ScrollUp != nil {
		m.ScrollUp = other.ScrollUp
	}
	if other.ScrollDown != nil {
		m.ScrollDown = other.ScrollDown
	}
	if other.SetScrollingRegion != nil {
		m.SetScrollingRegion = other.SetScrollingRegion
	}
	if other.SetMode != nil {
		m.SetMode = other.SetMode
	}
	if other.UnsetMode != nil {
		m.UnsetMode = other.UnsetMode
	}
	if other.SetTitle != nil {
		m.SetTitle = other.SetTitle
	}
	if other.SetCursorStyle != nil {
		m.SetCursorStyle = other.SetCursorStyle
	}
	if other.SetTerminalCharAttribute != nil {
		m.SetTerminalCharAttribute = other.SetTerminalCharAttribute
	}
	if other.SaveCursorPosition != nil {
		m.SaveCursorPosition = other.SaveCursorPosition
	}
	if other.RestoreCursorPosition != nil {
		m.RestoreCursorPosition = other.RestoreCursorPosition
	}
	if other.ReverseIndex != nil {
		m.ReverseIndex = other.ReverseIndex
	}
	if other.ResetState != nil {
		m.ResetState = other.ResetState
	}
	if other.Substitute != nil {
		m.Substitute = other.Substitute
	}
	if other.Decaln != nil {
		m.Decaln = other.Decaln
	}
	if other.DeviceStatus != nil {
		m.DeviceStatus = other.DeviceStatus
	}
	if other.IdentifyTerminal != nil {
		m.IdentifyTerminal = other.IdentifyTerminal
	}
	if other.ConfigureCharset != nil {
		m.ConfigureCharset = other.ConfigureCharset
	}
	if other.SetActiveCharset != nil {
		m.SetActiveCharset = other.SetActiveCharset
	}
	if other.SetKeypadApplicationMode != nil {
		m.SetKeypadApplicationMode = other.SetKeypadApplicationMode
	}
	if other.UnsetKeypadApplicationMode != nil {
		m.UnsetKeypadApplicationMode = other.UnsetKeypadApplicationMode
	}
	if other.SetColor != nil {
		m.SetColor = other.SetColor
	}
	if other.ResetColor != nil {
		m.ResetColor = other.ResetColor
	}
	if other.SetDynamicColor != nil {
		m.SetDynamicColor = other.SetDynamicColor
	}
	if other.ClipboardLoad != nil {
		m.ClipboardLoad = other.ClipboardLoad
	}
	if other.ClipboardStore != nil {
		m.ClipboardStore = other.ClipboardStore
	}
	if other.SetHyperlink != nil {
		m.SetHyperlink = other.SetHyperlink
	}
	if other.PushTitle != nil {
		m.PushTitle = other.PushTitle
	}
	if other.PopTitle != nil {
		m.PopTitle = other.PopTitle
	}
	if other.HorizontalTabSet != nil {
		m.HorizontalTabSet = other.HorizontalTabSet
	}
	if other.ApplicationCommandReceived != nil {
		m.ApplicationCommandReceived = other.ApplicationCommandReceived
	}
	if other.PrivacyMessageReceived != nil {
		m.PrivacyMessageReceived = other.PrivacyMessageReceived
	}
	if other.StartOfStringReceived != nil {
		m.StartOfStringReceived = other.StartOfStringReceived
	}
}

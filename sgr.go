package dterm

import (
	"image/color"

	"github.com/go-dterm/dterm/vt"
)

// SetTerminalCharAttribute applies one resolved SGR effect to the cell
// template. The decoder has already split a CSI 'm' sequence into one
// TerminalCharAttribute per code and resolved any colon/semicolon extended
// color sub-parameters, so this is a straight switch with no parameter
// parsing of its own.
func (t *Grid) SetTerminalCharAttribute(attr vt.TerminalCharAttribute) {
	if t.middleware != nil && t.middleware.SetTerminalCharAttribute != nil {
		t.middleware.SetTerminalCharAttribute(attr, t.setTerminalCharAttributeInternal)
		return
	}
	t.setTerminalCharAttributeInternal(attr)
}

func (t *Grid) setTerminalCharAttributeInternal(attr vt.TerminalCharAttribute) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch attr.Attr {
	case vt.CharAttributeReset:
		t.template = NewCellTemplate()

	case vt.CharAttributeBold:
		t.template.SetFlag(CellFlagBold)

	case vt.CharAttributeDim:
		t.template.SetFlag(CellFlagDim)

	case vt.CharAttributeItalic:
		t.template.SetFlag(CellFlagItalic)

	case vt.CharAttributeUnderline:
		t.template.SetFlag(CellFlagUnderline)
		t.template.ClearFlag(CellFlagDoubleUnderline | CellFlagCurlyUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline)

	case vt.CharAttributeDoubleUnderline:
		t.template.SetFlag(CellFlagDoubleUnderline)
		t.template.ClearFlag(CellFlagUnderline | CellFlagCurlyUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline)

	case vt.CharAttributeCurlyUnderline:
		t.template.SetFlag(CellFlagCurlyUnderline)
		t.template.ClearFlag(CellFlagUnderline | CellFlagDoubleUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline)

	case vt.CharAttributeDottedUnderline:
		t.template.SetFlag(CellFlagDottedUnderline)
		t.template.ClearFlag(CellFlagUnderline | CellFlagDoubleUnderline | CellFlagCurlyUnderline | CellFlagDashedUnderline)

	case vt.CharAttributeDashedUnderline:
		t.template.SetFlag(CellFlagDashedUnderline)
		t.template.ClearFlag(CellFlagUnderline | CellFlagDoubleUnderline | CellFlagCurlyUnderline | CellFlagDottedUnderline)

	case vt.CharAttributeBlinkSlow:
		t.template.SetFlag(CellFlagBlinkSlow)

	case vt.CharAttributeBlinkFast:
		t.template.SetFlag(CellFlagBlinkFast)

	case vt.CharAttributeReverse:
		t.template.SetFlag(CellFlagReverse)

	case vt.CharAttributeHidden:
		t.template.SetFlag(CellFlagHidden)

	case vt.CharAttributeStrike:
		t.template.SetFlag(CellFlagStrike)

	case vt.CharAttributeCancelBold:
		t.template.ClearFlag(CellFlagBold)

	case vt.CharAttributeCancelBoldDim:
		t.template.ClearFlag(CellFlagBold | CellFlagDim)

	case vt.CharAttributeCancelItalic:
		t.template.ClearFlag(CellFlagItalic)

	case vt.CharAttributeCancelUnderline:
		t.template.ClearFlag(CellFlagUnderline | CellFlagDoubleUnderline | CellFlagCurlyUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline)

	case vt.CharAttributeCancelBlink:
		t.template.ClearFlag(CellFlagBlinkSlow | CellFlagBlinkFast)

	case vt.CharAttributeCancelReverse:
		t.template.ClearFlag(CellFlagReverse)

	case vt.CharAttributeCancelHidden:
		t.template.ClearFlag(CellFlagHidden)

	case vt.CharAttributeCancelStrike:
		t.template.ClearFlag(CellFlagStrike)

	case vt.CharAttributeForeground:
		t.template.Fg = resolveColor(attr, NamedColorForeground)

	case vt.CharAttributeBackground:
		t.template.Bg = resolveColor(attr, NamedColorBackground)

	case vt.CharAttributeUnderlineColor:
		if attr.RGBColor == nil && attr.IndexedColor == nil && attr.NamedColor == nil {
			t.template.UnderlineColor = nil
		} else {
			t.template.UnderlineColor = resolveColor(attr, NamedColorForeground)
		}
	}
}

// resolveColor turns a resolved SGR color attribute into a color.Color,
// falling back to dflt (a NamedColor index) when none of the attribute's
// three color forms is set.
func resolveColor(attr vt.TerminalCharAttribute, dflt int) color.Color {
	switch {
	case attr.RGBColor != nil:
		return color.RGBA{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B, A: 255}
	case attr.IndexedColor != nil:
		return &IndexedColor{Index: attr.IndexedColor.Index}
	case attr.NamedColor != nil:
		return &NamedColor{Name: *attr.NamedColor}
	default:
		return &NamedColor{Name: dflt}
	}
}

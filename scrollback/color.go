package scrollback

import "image/color"

// Packed color kinds, stored in the top byte of a packed uint32.
const (
	ColorKindNone uint32 = iota
	ColorKindRGB
	ColorKindIndexed
	ColorKindNamed
)

// PackedColor lets a host package's own color types (e.g. a palette-indexed
// or named-slot color) round-trip through the wire format without this
// package knowing their concrete types.
type PackedColor interface {
	ScrollbackPack() (kind uint32, payload uint32)
}

// indexedColor and namedColor stand in for a decoded indexed/named color
// when the original host type isn't available (e.g. a checkpoint loaded
// without the host package in scope). Callers that do have the host types
// should prefer ColorIndex/ColorName to reconstruct their own.
type indexedColor struct{ index int }

func (indexedColor) RGBA() (r, g, b, a uint32)          { return 0, 0, 0, 0xffff }
func (c indexedColor) ScrollbackPack() (uint32, uint32) { return ColorKindIndexed, uint32(c.index) }

type namedColor struct{ name int }

func (namedColor) RGBA() (r, g, b, a uint32)          { return 0, 0, 0, 0xffff }
func (c namedColor) ScrollbackPack() (uint32, uint32) { return ColorKindNamed, uint32(c.name) }

// IndexedColor returns a placeholder color.Color representing a palette
// index, as produced when decoding a packed cell.
func IndexedColor(index int) color.Color { return indexedColor{index: index} }

// NamedColor returns a placeholder color.Color representing a named slot
// (e.g. default foreground/background/cursor), as produced when decoding a
// packed cell.
func NamedColor(name int) color.Color { return namedColor{name: name} }

// ColorIndex reports whether c decodes to an indexed color and, if so, its
// index.
func ColorIndex(c color.Color) (int, bool) {
	ic, ok := c.(indexedColor)
	return ic.index, ok
}

// ColorName reports whether c decodes to a named color and, if so, its name
// slot.
func ColorName(c color.Color) (int, bool) {
	nc, ok := c.(namedColor)
	return nc.name, ok
}

// packColor encodes a color.Color into the wire format's 32-bit
// representation: kind byte in bits 24-31, payload in bits 0-23. Host types
// implementing PackedColor are encoded via their own kind/payload; anything
// else falls back to its RGBA() truncated to 8 bits per channel.
func packColor(c color.Color) uint32 {
	if c == nil {
		return ColorKindNone << 24
	}
	if pc, ok := c.(PackedColor); ok {
		kind, payload := pc.ScrollbackPack()
		return kind<<24 | (payload & 0xffffff)
	}
	r, g, b, _ := c.RGBA()
	return ColorKindRGB<<24 | uint32(byte(r>>8))<<16 | uint32(byte(g>>8))<<8 | uint32(byte(b>>8))
}

// unpackColor reverses packColor. Returns nil for ColorKindNone.
func unpackColor(packed uint32) color.Color {
	kind := packed >> 24
	payload := packed & 0xffffff
	switch kind {
	case ColorKindRGB:
		r := byte(payload >> 16)
		g := byte(payload >> 8)
		b := byte(payload)
		return color.RGBA{R: r, G: g, B: b, A: 255}
	case ColorKindIndexed:
		return IndexedColor(int(payload))
	case ColorKindNamed:
		return NamedColor(int(payload))
	default:
		return nil
	}
}

package vt

import "github.com/danielgatis/go-ansicode"

// Parser drives github.com/danielgatis/go-ansicode's decoder (itself built
// on go-vte's Paul-Williams/DEC-VT500 state machine) over a raw byte stream,
// translating its events into calls on a Handler. It holds no reference to
// a screen or cursor itself; all terminal state lives on whatever Handler it
// was built with.
//
// A Parser is not safe for concurrent use; each Grid owns one and drives it
// single-threaded.
type Parser struct {
	dec *ansicode.Decoder
}

// NewParser creates a Parser that delivers every decoded event to h for the
// lifetime of the Parser.
func NewParser(h Handler) *Parser {
	return &Parser{dec: ansicode.NewDecoder(&decoderAdapter{h: h})}
}

// Feed decodes data, dispatching any complete sequences it contains to the
// Handler this Parser was built with. It never returns an error: malformed
// input is absorbed by the decoder the same way a real terminal ignores
// garbage bytes.
func (p *Parser) Feed(data []byte) (int, error) {
	return p.dec.Write(data)
}

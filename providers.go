package dterm

import "io"

// The types below are the pluggable I/O boundaries a Grid talks to instead
// of touching a PTY, a window manager, or an OS clipboard directly. Each has
// a Noop implementation so a Grid can be constructed with none of them wired
// and still behave correctly — just silently, which is what headless parsing
// needs.

// ResponseProvider receives bytes the terminal emits back toward the PTY
// (DSR/DA responses, bracketed-paste echoes). Typically the PTY's write end.
type ResponseProvider = io.Writer

// NoopResponse discards everything written to it.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (n int, err error) { return len(p), nil }

// BellProvider is notified on BEL (0x07).
type BellProvider interface {
	Ring()
}

// NoopBell ignores bells.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider tracks window-title changes driven by OSC 0/1/2 and the
// title stack (OSC 22/23).
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle discards title changes.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}
func (NoopTitle) PushTitle()            {}
func (NoopTitle) PopTitle()             {}

// payloadProvider is the shape shared by the three raw string-payload
// sequences (APC, PM, SOS): a single Receive call with the payload bytes.
// ApplicationCommandReceived/PrivacyMessageReceived/StartOfStringReceived
// each hand their payload to one of these rather than a dedicated method per
// provider, since none of the three carries structure beyond "bytes arrived".
type payloadProvider interface {
	Receive(data []byte)
}

// APCProvider receives Application Program Command (OSC _) payloads.
type APCProvider = payloadProvider

// PMProvider receives Privacy Message (OSC ^) payloads.
type PMProvider = payloadProvider

// SOSProvider receives Start of String (OSC X) payloads.
type SOSProvider = payloadProvider

// NoopAPC, NoopPM and NoopSOS each discard the payload they're handed; kept
// as distinct types so callers can wire only the ones they care about
// without one shared Noop value's identity leaking across all three.
type (
	NoopAPC struct{}
	NoopPM  struct{}
	NoopSOS struct{}
)

func (NoopAPC) Receive(data []byte) {}
func (NoopPM) Receive(data []byte)  {}
func (NoopSOS) Receive(data []byte) {}

// ClipboardProvider backs OSC 52 clipboard read/write. clipboard is 'c' for
// the system clipboard or 'p' for the primary selection.
type ClipboardProvider interface {
	Read(clipboard byte) string
	Write(clipboard byte, data []byte)
}

// NoopClipboard answers every read with an empty string and discards writes.
type NoopClipboard struct{}

func (NoopClipboard) Read(clipboard byte) string        { return "" }
func (NoopClipboard) Write(clipboard byte, data []byte) {}

// ScrollbackProvider stores lines scrolled off the top of the primary
// buffer. Grid uses NoopScrollback unless WithScrollback supplies another
// provider; TieredScrollback (backed by the scrollback package's
// hot/warm/cold tiers) is the built-in one, and a caller that wants plain
// in-memory history without tiering can supply their own.
type ScrollbackProvider interface {
	Push(line []Cell)
	Len() int
	Line(index int) []Cell
	Clear()
	SetMaxLines(max int)
	MaxLines() int
}

// NoopScrollback discards every pushed line; used for the alternate screen,
// which the VT100 model never scrolls back.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell)      {}
func (NoopScrollback) Len() int              { return 0 }
func (NoopScrollback) Line(index int) []Cell { return nil }
func (NoopScrollback) Clear()                {}
func (NoopScrollback) SetMaxLines(max int)   {}
func (NoopScrollback) MaxLines() int         { return 0 }

// RecordingProvider captures raw bytes as Grid.Write receives them, before
// the VT parser ever sees them — independent of search indexing, which works
// off already-parsed cell content instead.
type RecordingProvider interface {
	Record(data []byte)
	Data() []byte
	Clear()
}

// NoopRecording discards everything written to it.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

var (
	_ ResponseProvider   = NoopResponse{}
	_ BellProvider       = NoopBell{}
	_ TitleProvider      = NoopTitle{}
	_ APCProvider        = NoopAPC{}
	_ PMProvider         = NoopPM{}
	_ SOSProvider        = NoopSOS{}
	_ ClipboardProvider  = NoopClipboard{}
	_ ScrollbackProvider = NoopScrollback{}
	_ RecordingProvider  = NoopRecording{}
)

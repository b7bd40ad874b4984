// Package dterm provides the core of a terminal emulator: a Grid that
// applies VT/ANSI actions to a cell matrix, with tiered scrollback and
// full-text search built on top. It has no PTY, no rendering, and no CLI —
// those live in whatever embeds this package.
//
// # Quick Start
//
//	term := dterm.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
//   - [Grid]: applies [vt.Handler] events to a cell matrix; owns cursor,
//     modes, scroll region and both screen buffers.
//   - [Cell]: a single glyph with colors and attributes.
//   - [Cursor]: position and rendering style, with a save/restore stack.
//   - the vt package: the byte-stream parser feeding the Grid.
//   - the scrollback package: tiered (hot/warm/cold) off-screen line storage.
//   - the search package: trigram-indexed search over the Grid and its
//     scrollback.
//
// # Dual Buffers
//
// Grid maintains two screens:
//
//   - Primary screen: normal mode, backed by scrollback.
//   - Alternate screen: used by full-screen apps (vim, less, htop), never
//     scrolls into history.
//
// Applications switch via CSI ?1049h/l. Check which is active:
//
//	if term.IsAlternateScreen() {
//	    // full-screen app is running
//	}
//
// # Cells and Attributes
//
//	cell := term.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(dterm.CellFlagBold))
//	}
//
// # Colors
//
// Colors are stored using Go's [image/color] interface: named (0-15),
// 256-color palette, or true color via [color.RGBA]. Snapshots resolve
// every color to RGBA against [DefaultPalette].
//
// # Scrollback
//
// Lines scrolled off the top of the primary screen are stored through a
// [ScrollbackProvider]; the built-in implementation is the scrollback
// package's tiered store:
//
//	tiered := scrollback.NewTiered()
//	tiered.SetMemoryBudget(16 << 20)
//	term := dterm.New(dterm.WithScrollback(dterm.NewTieredScrollback(tiered)))
//
// # Providers
//
// Providers handle terminal events and queries, each with a no-op default:
//
//   - [BellProvider], [TitleProvider], [ClipboardProvider]
//   - [ScrollbackProvider]: stores lines scrolled off screen
//   - [RecordingProvider]: captures raw input for replay
//   - [ResponseProvider]: writes DSR/DA responses back to the source
//
// # Terminal Modes
//
//	term.HasMode(dterm.ModeLineWrap)
//	term.HasMode(dterm.ModeShowCursor)
//	term.HasMode(dterm.ModeBracketedPaste)
//
// # Dirty Tracking
//
//	if term.HasDirty() {
//	    for _, pos := range term.DirtyCells() {
//	        // redraw cell at pos.Row, pos.Col
//	    }
//	    term.ClearDirty()
//	}
//
// # Checkpoints
//
// [Grid.SaveCheckpoint] serializes the grid's dimensions, cursor, modes and
// scrollback history (not the visible screen contents) into a single stream
// that [Grid.LoadCheckpoint] restores later; corrupt or truncated input is
// rejected before any mutation happens.
//
// # Thread Safety
//
// All Grid methods are safe for concurrent use; the engine uses internal
// locking. Multi-step operations still need caller-side synchronization if
// they must be atomic.
package dterm

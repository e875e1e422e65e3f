// Package virtualterm provides buffered virtual terminals: rectangular text
// regions drawn on a physical ANSI terminal that only send what changed.
//
// This package is useful for:
//   - Status panels and dashboards on serial consoles and slow links
//   - Several independent text windows sharing one screen
//   - Retro BBS style output with inline color codes
//   - Testing what a terminal would display, without a terminal
//
// # Quick Start
//
// Create a region, write into it and render:
//
//	sink := virtualterm.NewANSISink(os.Stdout)
//	term := virtualterm.New(40, 10, sink, virtualterm.WithOrigin(5, 3))
//	term.Init(virtualterm.FgWhite, virtualterm.BgBlue)
//	term.Println("Hello")
//	term.Display()
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [VirtualTerminal]: a region with its cursor, pen and render policy
//   - [Buffer]: the fixed-size grid of cells backing a region
//   - [Cell]: a single byte glyph with colors, attributes and a dirty flag
//   - [Sink]: the terminal control capability renders are sent through
//
// # Writing
//
// Writes only change the grid. A printable byte is stored with the current pen
// style at the cursor, '\n', '\r' and '\b' move the cursor, other control
// bytes are ignored. Past the right edge the cursor wraps to the next row
// (unless line wrapping is disabled, in which case it stays on the last column
// and further glyphs are dropped). Past the bottom edge the content scrolls up
// (unless scrolling is disabled, in which case the cursor leaves the grid and
// glyphs are dropped until it is moved back).
//
// Writing a glyph identical to the one already stored leaves the cell clean.
//
// # Rendering
//
// [VirtualTerminal.Display] never reads the screen back. Instead every cell
// carries a dirty flag, and the renderer keeps a shadow of what it
// last sent: cursor position, colors, attributes and cursor visibility. From
// the dirty counts it picks one of three strategies:
//
//   - Full redraw, when more than 70% of the cells are dirty
//   - Sparse update, when at most 30% of the rows are dirty: only runs of
//     dirty cells are sent, each preceded by a single cursor move
//   - Row update otherwise: every dirty row is sent whole
//
// Colors and attributes are only sent where they differ from the shadow.
// The thresholds can be tuned with [WithThresholds]. [VirtualTerminal.LastRender]
// reports what the last render did.
//
// # Sinks
//
// [ANSISink] writes ANSI/VT100 escape sequences to any io.Writer. Wrap the
// writer in a bufio.Writer for fewer system calls; the renderer flushes sinks
// implementing [Flusher] after each render. [TcellSink] draws into a
// tcell.Screen instead.
//
// Several regions can share one terminal. Wrap the sink in a [SharedSink]:
// it serializes renders and makes a region resynchronize its shadow when
// another region drew in between.
//
// # Pipe Codes
//
// [PipeWriter] interprets inline codes such as "|04" (red) or "|RA" (reset)
// and forwards the remaining bytes to a [Pen]:
//
//	pw := virtualterm.NewPipeWriter(term)
//	pw.WriteString("|14Warning:|07 disk almost full\n")
//
// # Testing
//
// [Mirror] decodes the escape sequences an [ANSISink] produces and keeps the
// resulting screen, so output can be inspected cell by cell or rendered to an
// image with [Mirror.Screenshot]. [LinkWriter] paces output to a given baud
// rate to see how a render behaves on a slow line.
//
// # Limits
//
// Glyphs are single bytes; wide and multi-byte characters are not supported.
// Physical coordinates are limited to 255 by default (see [WithCoordinateLimit]);
// regions reaching past the limit are truncated.
package virtualterm

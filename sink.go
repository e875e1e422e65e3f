package virtualterm

import "go.uber.org/zap"

// Sink is the terminal control capability the renderer draws through.
// Coordinates are 1-based physical screen positions. All calls are
// fire-and-forget; a sink must deliver them in order.
type Sink interface {
	// MoveCursor positions the physical cursor.
	MoveCursor(col, row int)
	// SetForeground selects the foreground color for subsequent glyphs.
	SetForeground(c Color)
	// SetBackground selects the background color for subsequent glyphs.
	SetBackground(c Color)
	// SetAttributes replaces the active attribute set without touching colors.
	SetAttributes(a Attr)
	// ResetAll restores default colors and attributes.
	ResetAll()
	// WriteGlyph draws one character at the cursor and advances it.
	WriteGlyph(ch byte)
	// SetCursorVisible shows or hides the physical cursor.
	SetCursorVisible(visible bool)
}

// Flusher is implemented by sinks that batch output and need an explicit flush.
// The renderer flushes at the end of every render that emitted commands.
type Flusher interface {
	Flush() error
}

// claimer is implemented by sinks shared between several virtual terminals.
// claim locks the sink for one render and reports whether another owner drew
// on it since the caller's last claim.
type claimer interface {
	claim(owner *VirtualTerminal) (stale bool)
	release()
}

// acquireSink claims a shared sink, invalidating the shadow when another
// instance drew in between. The returned func releases the claim.
func (t *VirtualTerminal) acquireSink() func() {
	c, ok := t.sink.(claimer)
	if !ok {
		return func() {}
	}
	if c.claim(t) {
		t.shadow.invalidate()
	}
	return c.release
}

// flushSink flushes sinks that buffer their output.
func (t *VirtualTerminal) flushSink() {
	f, ok := t.sink.(Flusher)
	if !ok {
		return
	}
	if err := f.Flush(); err != nil {
		t.logger.Debug("sink flush failed", zap.Error(err))
	}
}

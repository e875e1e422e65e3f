package virtualterm

// shadow records what the renderer believes the physical terminal currently shows:
// the physical cursor position, the last style sent and the cursor visibility.
// Each field group has a known flag; unknown state is always resent.
type shadow struct {
	col      int
	row      int
	posKnown bool

	style      Style
	styleKnown bool

	visible  bool
	visKnown bool

	// limit is the largest physical coordinate the sink can address.
	limit int

	moves        int
	styleChanges int
}

// invalidate forgets everything about the physical terminal.
func (s *shadow) invalidate() {
	s.posKnown = false
	s.styleKnown = false
	s.visKnown = false
}

// resetCounters zeroes the per-render command counters.
func (s *shadow) resetCounters() {
	s.moves = 0
	s.styleChanges = 0
}

// resetAll sends a full attribute reset; the style becomes the default.
func (s *shadow) resetAll(sink Sink) {
	sink.ResetAll()
	s.style = DefaultStyle()
	s.styleKnown = true
	s.styleChanges++
}

// moveTo positions the physical cursor unless it is already there.
func (s *shadow) moveTo(sink Sink, col, row int) {
	if s.posKnown && s.col == col && s.row == row {
		return
	}
	sink.MoveCursor(col, row)
	s.col = col
	s.row = row
	s.posKnown = true
	s.moves++
}

// applyStyle emits a command for every style field that differs from the last one sent.
func (s *shadow) applyStyle(sink Sink, style Style) {
	if !s.styleKnown || s.style.Attrs != style.Attrs {
		sink.SetAttributes(style.Attrs)
		s.style.Attrs = style.Attrs
		s.styleChanges++
	}
	if !s.styleKnown || s.style.Fg != style.Fg {
		sink.SetForeground(style.Fg)
		s.style.Fg = style.Fg
		s.styleChanges++
	}
	if !s.styleKnown || s.style.Bg != style.Bg {
		sink.SetBackground(style.Bg)
		s.style.Bg = style.Bg
		s.styleChanges++
	}
	s.styleKnown = true
}

// writeGlyph sends a glyph and advances the tracked column.
// Past the coordinate limit the terminal's cursor behavior is undefined, so the
// position becomes unknown.
func (s *shadow) writeGlyph(sink Sink, ch byte) {
	sink.WriteGlyph(ch)
	if !s.posKnown {
		return
	}
	s.col++
	if s.col > s.limit {
		s.posKnown = false
	}
}

// setCursorVisible shows or hides the physical cursor unless it is already in that state.
func (s *shadow) setCursorVisible(sink Sink, visible bool) {
	if s.visKnown && s.visible == visible {
		return
	}
	sink.SetCursorVisible(visible)
	s.visible = visible
	s.visKnown = true
}

package virtualterm

import "github.com/gdamore/tcell/v2"

// TcellSink draws into a tcell.Screen instead of emitting escape sequences.
// Changes become visible on Flush, which the renderer calls after every render.
type TcellSink struct {
	screen tcell.Screen
	style  Style
	col    int // 1-based
	row    int
	shown  bool
}

// NewTcellSink creates a sink drawing on an initialized screen.
func NewTcellSink(screen tcell.Screen) *TcellSink {
	return &TcellSink{
		screen: screen,
		style:  DefaultStyle(),
		col:    1,
		row:    1,
	}
}

// MoveCursor sets the position of the next glyph.
func (s *TcellSink) MoveCursor(col, row int) {
	s.col = col
	s.row = row
	if s.shown {
		s.screen.ShowCursor(col-1, row-1)
	}
}

// SetForeground selects the foreground color.
func (s *TcellSink) SetForeground(c Color) {
	s.style.Fg = c
}

// SetBackground selects the background color.
func (s *TcellSink) SetBackground(c Color) {
	s.style.Bg = c
}

// SetAttributes replaces the attribute set.
func (s *TcellSink) SetAttributes(a Attr) {
	s.style.Attrs = a
}

// ResetAll restores the default style.
func (s *TcellSink) ResetAll() {
	s.style = DefaultStyle()
}

// WriteGlyph puts the character at the current position and advances one column.
func (s *TcellSink) WriteGlyph(ch byte) {
	s.screen.SetContent(s.col-1, s.row-1, rune(ch), nil, TcellStyle(s.style))
	s.col++
}

// SetCursorVisible shows the cursor at the current position or hides it.
func (s *TcellSink) SetCursorVisible(visible bool) {
	s.shown = visible
	if visible {
		s.screen.ShowCursor(s.col-1, s.row-1)
	} else {
		s.screen.HideCursor()
	}
}

// Flush makes pending changes visible on the screen.
func (s *TcellSink) Flush() error {
	s.screen.Show()
	return nil
}

// TcellStyle converts a style to its tcell equivalent. Concealed text has no
// tcell attribute and is drawn with the foreground set to the background.
func TcellStyle(st Style) tcell.Style {
	fg := tcellColor(st.Fg)
	bg := tcellColor(st.Bg)
	if st.Attrs&AttrConcealed != 0 {
		fg = bg
	}

	return tcell.StyleDefault.
		Foreground(fg).
		Background(bg).
		Bold(st.Attrs&AttrBold != 0).
		Underline(st.Attrs&AttrUnderline != 0).
		Blink(st.Attrs&AttrBlink != 0).
		Reverse(st.Attrs&AttrReverse != 0)
}

func tcellColor(c Color) tcell.Color {
	if i := c.PaletteIndex(); i >= 0 {
		return tcell.PaletteColor(i)
	}
	return tcell.ColorDefault
}

package virtualterm

// Cursor tracks the logical write position inside a region (1-based coordinates).
// Col and Row may sit past the bottom edge when scrolling is disabled.
type Cursor struct {
	Col     int
	Row     int
	Visible bool
}

// NewCursor creates a visible cursor at (1, 1).
func NewCursor() *Cursor {
	return &Cursor{
		Col:     1,
		Row:     1,
		Visible: true,
	}
}

// InBounds returns true if the cursor addresses a cell of a width x height grid.
func (c *Cursor) InBounds(width, height int) bool {
	return c.Col >= 1 && c.Col <= width && c.Row >= 1 && c.Row <= height
}

// moveTo positions the cursor, folding column overflow into extra rows when
// wrapping is enabled and scrolling when the row passes the bottom edge.
// The result is always clamped to the grid.
func (t *VirtualTerminal) moveTo(col, row int) {
	w, h := t.buffer.Width(), t.buffer.Height()
	t.overflow = false

	if t.wrap && col > w {
		row += (col - 1) / w
		col = ((col - 1) % w) + 1
	}

	if t.scroll && row > h {
		t.ScrollUp(row - h)
		row = h
	}

	t.cursor.Col = clamp(col, 1, w)
	t.cursor.Row = clamp(row, 1, h)
}

// advanceOnGlyph moves the cursor past a written glyph.
func (t *VirtualTerminal) advanceOnGlyph() {
	t.cursor.Col++
	if t.cursor.Col <= t.buffer.Width() {
		return
	}

	if !t.wrap {
		// Pinned at the edge: further glyphs are dropped until the cursor moves.
		t.cursor.Col = t.buffer.Width()
		t.overflow = true
		return
	}

	t.cursor.Col = 1
	t.cursor.Row++
	t.scrollIfNeeded()
}

// advanceOnNewline moves the cursor to the start of the next row.
func (t *VirtualTerminal) advanceOnNewline() {
	t.overflow = false
	t.cursor.Col = 1
	t.cursor.Row++
	t.scrollIfNeeded()
}

// advanceOnCarriageReturn moves the cursor to the first column.
func (t *VirtualTerminal) advanceOnCarriageReturn() {
	t.overflow = false
	t.cursor.Col = 1
}

// backspace moves the cursor one column left, stopping at the first column.
func (t *VirtualTerminal) backspace() {
	t.overflow = false
	if t.cursor.Col > 1 {
		t.cursor.Col--
	}
}

// scrollIfNeeded scrolls one row when the cursor passed the bottom edge.
// With scrolling disabled the cursor is left out of range.
func (t *VirtualTerminal) scrollIfNeeded() {
	if t.cursor.Row > t.buffer.Height() && t.scroll {
		t.ScrollUp(1)
		t.cursor.Row = t.buffer.Height()
	}
}

package virtualterm

// Buffer stores a fixed-size grid of cells addressed with 1-based (col, row) coordinates.
// Every coordinate is clamped into bounds. A buffer created with a non-positive
// dimension has zero area and every operation on it is a no-op.
type Buffer struct {
	width  int
	height int
	cells  []Cell
	rowTmp []bool // per-row dirty scratch for the renderer, sized once
}

// NewBuffer creates a width x height buffer filled with blank, dirty cells in the default style.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		return &Buffer{}
	}

	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		rowTmp: make([]bool, height),
	}

	style := DefaultStyle()
	for i := range b.cells {
		b.cells[i] = NewCell(style)
	}

	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Empty returns true if the buffer has zero area.
func (b *Buffer) Empty() bool {
	return len(b.cells) == 0
}

// Clamp returns the effective coordinate used for (col, row).
func (b *Buffer) Clamp(col, row int) (int, int) {
	return clamp(col, 1, b.width), clamp(row, 1, b.height)
}

// index converts a 1-based coordinate to a slice index, clamping first.
func (b *Buffer) index(col, row int) int {
	col, row = b.Clamp(col, row)
	return (row-1)*b.width + (col - 1)
}

// Cell returns a copy of the cell at (col, row).
// Returns a blank default cell for a zero-area buffer.
func (b *Buffer) Cell(col, row int) Cell {
	if b.Empty() {
		return NewCell(DefaultStyle())
	}
	return b.cells[b.index(col, row)]
}

// cellAt returns a pointer to the cell at a coordinate already known to be in bounds.
func (b *Buffer) cellAt(col, row int) *Cell {
	return &b.cells[(row-1)*b.width+(col-1)]
}

// Set stores a glyph and style at (col, row) and marks the cell dirty.
func (b *Buffer) Set(col, row int, ch byte, style Style) {
	if b.Empty() {
		return
	}
	c := &b.cells[b.index(col, row)]
	c.Char = ch
	c.Style = style
	c.MarkDirty()
}

// Clear blanks every cell with the given style and marks it dirty.
func (b *Buffer) Clear(style Style) {
	for i := range b.cells {
		b.cells[i].Reset(style)
	}
}

// MarkAllDirty marks every cell as needing a repaint.
func (b *Buffer) MarkAllDirty() {
	for i := range b.cells {
		b.cells[i].MarkDirty()
	}
}

// ClearAllDirty resets the dirty state of all cells.
func (b *Buffer) ClearAllDirty() {
	for i := range b.cells {
		b.cells[i].ClearDirty()
	}
}

// DirtyCount returns the number of dirty cells.
func (b *Buffer) DirtyCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].IsDirty() {
			n++
		}
	}
	return n
}

// HasDirty returns true if any cell is dirty.
func (b *Buffer) HasDirty() bool {
	for i := range b.cells {
		if b.cells[i].IsDirty() {
			return true
		}
	}
	return false
}

// ScrollUp shifts rows up by n positions. n is clamped to the height.
// The exposed bottom rows are blanked with style; every cell is marked dirty.
func (b *Buffer) ScrollUp(n int, style Style) {
	if b.Empty() || n <= 0 {
		return
	}
	if n > b.height {
		n = b.height
	}

	shift := n * b.width
	copy(b.cells, b.cells[shift:])
	for i := 0; i < len(b.cells)-shift; i++ {
		b.cells[i].MarkDirty()
	}

	for i := len(b.cells) - shift; i < len(b.cells); i++ {
		b.cells[i].Reset(style)
	}
}

// Row returns a copy of a row's cells. Returns nil for a zero-area buffer; the row is clamped.
func (b *Buffer) Row(row int) []Cell {
	if b.Empty() {
		return nil
	}
	_, row = b.Clamp(1, row)

	start := (row - 1) * b.width
	line := make([]Cell, b.width)
	copy(line, b.cells[start:start+b.width])
	return line
}

// LineContent returns the text of a row, trimming trailing spaces.
// Returns empty string for a zero-area buffer; the row is clamped.
func (b *Buffer) LineContent(row int) string {
	if b.Empty() {
		return ""
	}
	_, row = b.Clamp(1, row)

	start := (row - 1) * b.width
	return lineText(b.cells[start : start+b.width])
}

// clamp ensures the value is within the given range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

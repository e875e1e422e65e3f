package virtualterm

// Scrollback stores rows scrolled off the top of a VirtualTerminal.
// Implementations can keep them in memory, on disk, etc.
type Scrollback interface {
	// Push appends a row. Oldest rows should be dropped past MaxLines.
	Push(line []Cell)
	// Len returns the number of stored rows.
	Len() int
	// Line returns the row at index, 0 being the oldest. Returns nil if out of range.
	Line(index int) []Cell
	// Clear removes all stored rows.
	Clear()
	// MaxLines returns the capacity; 0 means unlimited.
	MaxLines() int
}

// NoopScrollback discards every row. It is the default.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell)      {}
func (NoopScrollback) Len() int              { return 0 }
func (NoopScrollback) Line(index int) []Cell { return nil }
func (NoopScrollback) Clear()                {}
func (NoopScrollback) MaxLines() int         { return 0 }

// MemoryScrollback keeps scrolled rows in memory up to a fixed number of lines.
//
// Example:
//
//	history := virtualterm.NewMemoryScrollback(500)
//	term := virtualterm.New(60, 10, sink, virtualterm.WithScrollback(history))
type MemoryScrollback struct {
	lines    [][]Cell
	maxLines int
}

// NewMemoryScrollback creates an in-memory scrollback holding at most maxLines rows.
// If maxLines is 0, scrollback is unlimited.
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{maxLines: max(maxLines, 0)}
}

// Push stores a copy of line with dirty flags cleared, dropping the oldest row when full.
func (m *MemoryScrollback) Push(line []Cell) {
	lineCopy := make([]Cell, len(line))
	copy(lineCopy, line)
	for i := range lineCopy {
		lineCopy[i].ClearDirty()
	}

	m.lines = append(m.lines, lineCopy)
	if m.maxLines > 0 && len(m.lines) > m.maxLines {
		m.lines = m.lines[len(m.lines)-m.maxLines:]
	}
}

// Len returns the number of stored rows.
func (m *MemoryScrollback) Len() int {
	return len(m.lines)
}

// Line returns the row at index, where 0 is the oldest.
func (m *MemoryScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(m.lines) {
		return nil
	}
	return m.lines[index]
}

// LineContent returns the text of the row at index without trailing spaces.
func (m *MemoryScrollback) LineContent(index int) string {
	return lineText(m.Line(index))
}

// Clear removes all stored rows.
func (m *MemoryScrollback) Clear() {
	m.lines = nil
}

// MaxLines returns the capacity.
func (m *MemoryScrollback) MaxLines() int {
	return m.maxLines
}

// lineText returns the glyphs of a row, trimming trailing spaces.
func lineText(line []Cell) string {
	last := len(line) - 1
	for last >= 0 && line[last].Char == ' ' {
		last--
	}

	buf := make([]byte, 0, last+1)
	for col := 0; col <= last; col++ {
		buf = append(buf, line[col].Char)
	}
	return string(buf)
}

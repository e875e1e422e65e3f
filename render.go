package virtualterm

import "go.uber.org/zap"

// Strategy identifies how a render brought the physical screen up to date.
type Strategy int

const (
	// StrategyNone means nothing was dirty and no command was sent.
	StrategyNone Strategy = iota
	// StrategyFull repaints every cell.
	StrategyFull
	// StrategySparse repaints contiguous runs of dirty cells in the dirty rows.
	StrategySparse
	// StrategyRows repaints every row holding a dirty cell.
	StrategyRows
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyFull:
		return "full"
	case StrategySparse:
		return "sparse"
	case StrategyRows:
		return "rows"
	default:
		return "none"
	}
}

// RenderStats describes one Display call.
type RenderStats struct {
	Strategy     Strategy
	DirtyCells   int // counted during analysis; 0 when a full redraw was forced
	DirtyRows    int
	CellsPainted int
	Moves        int // cursor positioning commands
	StyleChanges int // attribute, color and reset commands
}

// Display brings the physical screen up to date with the grid.
//
// Unless a full redraw is pending, the grid is scanned once to count dirty
// cells and rows. Nothing dirty means no I/O at all. Otherwise the cheapest
// strategy is selected: a full redraw when more than the full-redraw ratio of
// cells is dirty, a sparse update when few rows are dirty, and a row-based
// update in between. Afterwards every painted cell is clean and the physical
// cursor sits at the logical cursor (or is hidden when out of range).
func (t *VirtualTerminal) Display() {
	if t.buffer.Empty() {
		return
	}

	stats := RenderStats{Strategy: StrategyFull}

	if !t.forceFull {
		stats.DirtyCells, stats.DirtyRows = t.analyze()
		if stats.DirtyCells == 0 {
			t.last = RenderStats{}
			return
		}

		total := float64(t.buffer.Width() * t.buffer.Height())
		switch {
		case float64(stats.DirtyCells) > total*t.fullRatio:
			stats.Strategy = StrategyFull
		case float64(stats.DirtyRows) <= float64(t.buffer.Height())*t.sparseRatio:
			stats.Strategy = StrategySparse
		default:
			stats.Strategy = StrategyRows
		}
	}

	release := t.acquireSink()
	defer release()

	t.shadow.resetCounters()

	// A full redraw resynchronizes the style; so does a render that does not
	// know what the terminal currently shows.
	if stats.Strategy == StrategyFull || !t.shadow.styleKnown {
		t.shadow.resetAll(t.sink)
	}

	switch stats.Strategy {
	case StrategyFull:
		stats.CellsPainted = t.paintFull()
	case StrategySparse:
		stats.CellsPainted = t.paintSparse()
	case StrategyRows:
		stats.CellsPainted = t.paintRows()
	}

	t.forceFull = false
	t.placeCursor()

	stats.Moves = t.shadow.moves
	stats.StyleChanges = t.shadow.styleChanges
	t.last = stats

	t.flushSink()

	t.logger.Debug("rendered",
		zap.Stringer("strategy", stats.Strategy),
		zap.Int("dirty_cells", stats.DirtyCells),
		zap.Int("dirty_rows", stats.DirtyRows),
		zap.Int("cells_painted", stats.CellsPainted),
		zap.Int("moves", stats.Moves),
		zap.Int("style_changes", stats.StyleChanges),
	)
}

// analyze counts dirty cells and flags dirty rows in the buffer's row scratch.
func (t *VirtualTerminal) analyze() (cells, rows int) {
	b := t.buffer
	for row := 1; row <= b.Height(); row++ {
		rowDirty := false
		for col := 1; col <= b.Width(); col++ {
			if b.cellAt(col, row).IsDirty() {
				cells++
				rowDirty = true
			}
		}
		b.rowTmp[row-1] = rowDirty
		if rowDirty {
			rows++
		}
	}
	return cells, rows
}

// paintFull repaints every row left to right.
func (t *VirtualTerminal) paintFull() int {
	painted := 0
	for row := 1; row <= t.buffer.Height(); row++ {
		painted += t.paintRun(row, 1, t.buffer.Width())
	}
	return painted
}

// paintRows repaints every dirty row in full.
func (t *VirtualTerminal) paintRows() int {
	painted := 0
	for row := 1; row <= t.buffer.Height(); row++ {
		if t.buffer.rowTmp[row-1] {
			painted += t.paintRun(row, 1, t.buffer.Width())
		}
	}
	return painted
}

// paintSparse repaints maximal runs of dirty cells. The first and last rows of
// the region are repainted whole so borders drawn there stay consistent.
func (t *VirtualTerminal) paintSparse() int {
	b := t.buffer
	painted := 0

	for row := 1; row <= b.Height(); row++ {
		if !b.rowTmp[row-1] {
			continue
		}

		if row == 1 || row == b.Height() {
			painted += t.paintRun(row, 1, b.Width())
			continue
		}

		col := 1
		for col <= b.Width() {
			if !b.cellAt(col, row).IsDirty() {
				col++
				continue
			}
			start := col
			for col <= b.Width() && b.cellAt(col, row).IsDirty() {
				col++
			}
			painted += t.paintRun(row, start, col-1)
		}
	}

	return painted
}

// paintRun draws cells [from, to] of a row. The physical cursor is positioned
// once at the start of the run; styles are sent only where they differ from
// the shadow. Painted cells become clean.
func (t *VirtualTerminal) paintRun(row, from, to int) int {
	t.shadow.moveTo(t.sink, t.originCol+from-1, t.originRow+row-1)

	for col := from; col <= to; col++ {
		cell := t.buffer.cellAt(col, row)
		t.shadow.applyStyle(t.sink, cell.Style)
		t.shadow.writeGlyph(t.sink, cell.Char)
		cell.ClearDirty()
	}

	return to - from + 1
}

// placeCursor leaves the physical cursor at the logical cursor's screen position
// when it is visible and in range, and hides it otherwise.
func (t *VirtualTerminal) placeCursor() {
	if !t.cursor.Visible || !t.cursor.InBounds(t.buffer.Width(), t.buffer.Height()) {
		t.shadow.setCursorVisible(t.sink, false)
		return
	}

	t.shadow.moveTo(t.sink, t.originCol+t.cursor.Col-1, t.originRow+t.cursor.Row-1)
	t.shadow.setCursorVisible(t.sink, true)
}

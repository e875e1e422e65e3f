package virtualterm

import (
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(80, 24)

	if b.Width() != 80 {
		t.Errorf("expected 80 cols, got %d", b.Width())
	}
	if b.Height() != 24 {
		t.Errorf("expected 24 rows, got %d", b.Height())
	}
	if b.Empty() {
		t.Error("expected non-empty buffer")
	}
	if b.DirtyCount() != 80*24 {
		t.Errorf("expected every cell dirty after creation, got %d", b.DirtyCount())
	}
}

func TestNewBufferZeroArea(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 10},
		{10, 0},
		{-1, 5},
		{0, 0},
	}

	for _, tt := range tests {
		b := NewBuffer(tt.width, tt.height)
		if !b.Empty() {
			t.Errorf("NewBuffer(%d, %d): expected zero area", tt.width, tt.height)
		}
		if b.Width() != 0 || b.Height() != 0 {
			t.Errorf("NewBuffer(%d, %d): expected 0x0, got %dx%d", tt.width, tt.height, b.Width(), b.Height())
		}

		// Every operation is a no-op
		b.Set(1, 1, 'A', DefaultStyle())
		b.Clear(DefaultStyle())
		b.ScrollUp(1, DefaultStyle())
		b.MarkAllDirty()
		if b.HasDirty() {
			t.Error("expected no dirty cells")
		}
		if got := b.Cell(1, 1).Char; got != ' ' {
			t.Errorf("expected ' ', got '%c'", got)
		}
		if got := b.LineContent(1); got != "" {
			t.Errorf("expected empty line, got %q", got)
		}
	}
}

func TestBufferSetAndCell(t *testing.T) {
	b := NewBuffer(10, 5)
	b.ClearAllDirty()

	style := Style{Fg: FgRed, Bg: BgBlue, Attrs: AttrBold}
	b.Set(3, 2, 'A', style)

	cell := b.Cell(3, 2)
	if cell.Char != 'A' {
		t.Errorf("expected 'A', got '%c'", cell.Char)
	}
	if cell.Style != style {
		t.Errorf("expected %+v, got %+v", style, cell.Style)
	}
	if !cell.IsDirty() {
		t.Error("expected cell to be dirty after Set")
	}
	if b.DirtyCount() != 1 {
		t.Errorf("expected 1 dirty cell, got %d", b.DirtyCount())
	}
}

func TestBufferClamping(t *testing.T) {
	b := NewBuffer(10, 5)

	tests := []struct {
		col, row         int
		wantCol, wantRow int
	}{
		{1, 1, 1, 1},
		{0, 0, 1, 1},
		{-5, 3, 1, 3},
		{11, 2, 10, 2},
		{4, 99, 4, 5},
		{100, 100, 10, 5},
	}

	for _, tt := range tests {
		col, row := b.Clamp(tt.col, tt.row)
		if col != tt.wantCol || row != tt.wantRow {
			t.Errorf("Clamp(%d, %d) = (%d, %d), want (%d, %d)", tt.col, tt.row, col, row, tt.wantCol, tt.wantRow)
		}

		b.Set(tt.col, tt.row, 'X', DefaultStyle())
		if got := b.Cell(tt.wantCol, tt.wantRow).Char; got != 'X' {
			t.Errorf("Set(%d, %d): expected 'X' at (%d, %d), got '%c'", tt.col, tt.row, tt.wantCol, tt.wantRow, got)
		}
		if got := b.Cell(tt.col, tt.row).Char; got != 'X' {
			t.Errorf("Cell(%d, %d): expected 'X', got '%c'", tt.col, tt.row, got)
		}
		b.Set(tt.wantCol, tt.wantRow, ' ', DefaultStyle())
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(4, 3)
	b.Set(2, 2, 'A', DefaultStyle())
	b.ClearAllDirty()

	style := Style{Fg: FgWhite, Bg: BgBlue}
	b.Clear(style)

	for row := 1; row <= 3; row++ {
		for col := 1; col <= 4; col++ {
			cell := b.Cell(col, row)
			if cell.Char != ' ' {
				t.Errorf("expected blank at (%d, %d), got '%c'", col, row, cell.Char)
			}
			if cell.Style != style {
				t.Errorf("expected %+v at (%d, %d), got %+v", style, col, row, cell.Style)
			}
		}
	}
	if b.DirtyCount() != 12 {
		t.Errorf("expected 12 dirty cells, got %d", b.DirtyCount())
	}
}

func TestBufferDirtyTracking(t *testing.T) {
	b := NewBuffer(5, 5)

	if !b.HasDirty() {
		t.Error("expected new buffer to be dirty")
	}

	b.ClearAllDirty()
	if b.HasDirty() {
		t.Error("expected no dirty cells after ClearAllDirty")
	}

	b.MarkAllDirty()
	if b.DirtyCount() != 25 {
		t.Errorf("expected 25 dirty cells, got %d", b.DirtyCount())
	}
}

func TestBufferScrollUp(t *testing.T) {
	b := NewBuffer(3, 3)
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			b.Set(col, row, byte('0'+row), DefaultStyle())
		}
	}
	b.ClearAllDirty()

	blank := Style{Fg: FgDefault, Bg: BgRed}
	b.ScrollUp(1, blank)

	if got := b.LineContent(1); got != "222" {
		t.Errorf("expected row 1 '222', got %q", got)
	}
	if got := b.LineContent(2); got != "333" {
		t.Errorf("expected row 2 '333', got %q", got)
	}
	if got := b.LineContent(3); got != "" {
		t.Errorf("expected blank row 3, got %q", got)
	}
	if got := b.Cell(2, 3).Bg; got != BgRed {
		t.Errorf("expected exposed row to take the blank style, got %d", got)
	}
	if b.DirtyCount() != 9 {
		t.Errorf("expected every cell dirty after scroll, got %d", b.DirtyCount())
	}
}

func TestBufferScrollUpClamped(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(1, 1, 'A', DefaultStyle())
	b.Set(1, 2, 'B', DefaultStyle())

	b.ScrollUp(10, DefaultStyle())

	for row := 1; row <= 2; row++ {
		if got := b.LineContent(row); got != "" {
			t.Errorf("expected blank row %d, got %q", row, got)
		}
	}
}

func TestBufferLineContent(t *testing.T) {
	b := NewBuffer(10, 2)
	b.Set(1, 1, 'H', DefaultStyle())
	b.Set(2, 1, 'i', DefaultStyle())
	b.Set(5, 1, '!', DefaultStyle())

	if got := b.LineContent(1); got != "Hi  !" {
		t.Errorf("expected 'Hi  !', got %q", got)
	}
	if got := b.LineContent(2); got != "" {
		t.Errorf("expected empty line, got %q", got)
	}
	// Rows are clamped
	if got := b.LineContent(0); got != "Hi  !" {
		t.Errorf("expected row 0 to clamp to row 1, got %q", got)
	}
}

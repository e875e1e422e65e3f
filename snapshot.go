package virtualterm

import "fmt"

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a capture of a grid, suitable for JSON encoding.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds grid dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor state. Positions are 1-based.
type SnapshotCursor struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	Visible bool `json:"visible"`
}

// SnapshotLine represents a single row.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment is a run of text sharing one style.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotCell represents a single cell.
type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotAttrs holds text attributes.
type SnapshotAttrs struct {
	Bold      bool `json:"bold,omitempty"`
	Underline bool `json:"underline,omitempty"`
	Blink     bool `json:"blink,omitempty"`
	Reverse   bool `json:"reverse,omitempty"`
	Concealed bool `json:"concealed,omitempty"`
}

// Snapshot captures the logical contents of the region. It reflects what has
// been written, whether or not it was displayed yet.
func (t *VirtualTerminal) Snapshot(detail SnapshotDetail) *Snapshot {
	col, row := t.cursor.Col, t.cursor.Row
	return snapshotBuffer(t.buffer, col, row, t.cursor.Visible, detail)
}

// Snapshot captures the screen as the mirror currently models it.
func (m *Mirror) Snapshot(detail SnapshotDetail) *Snapshot {
	return snapshotBuffer(m.buffer, m.col, m.row, m.visible, detail)
}

func snapshotBuffer(b *Buffer, col, row int, visible bool, detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Size: SnapshotSize{
			Rows: b.Height(),
			Cols: b.Width(),
		},
		Cursor: SnapshotCursor{
			Row:     row,
			Col:     col,
			Visible: visible,
		},
		Lines: make([]SnapshotLine, b.Height()),
	}

	for r := 1; r <= b.Height(); r++ {
		line := SnapshotLine{Text: b.LineContent(r)}

		switch detail {
		case SnapshotDetailStyled:
			line.Segments = lineToSegments(b.Row(r))
		case SnapshotDetailFull:
			line.Cells = lineToCells(b.Row(r))
		}

		snap.Lines[r-1] = line
	}

	return snap
}

// lineToSegments groups a row into runs of the same style.
func lineToSegments(cells []Cell) []SnapshotSegment {
	var segments []SnapshotSegment
	var text []byte
	var current Style

	for i, cell := range cells {
		if i > 0 && cell.Style != current {
			segments = append(segments, newSegment(string(text), current))
			text = text[:0]
		}
		current = cell.Style
		text = append(text, cell.Char)
	}

	if len(text) > 0 {
		segments = append(segments, newSegment(string(text), current))
	}
	return segments
}

func newSegment(text string, st Style) SnapshotSegment {
	return SnapshotSegment{
		Text:       text,
		Fg:         colorToHex(st.Fg),
		Bg:         colorToHex(st.Bg),
		Attributes: attrsToSnapshot(st.Attrs),
	}
}

// lineToCells converts a row to full cell data.
func lineToCells(cells []Cell) []SnapshotCell {
	out := make([]SnapshotCell, 0, len(cells))
	for _, cell := range cells {
		out = append(out, SnapshotCell{
			Char:       string(rune(cell.Char)),
			Fg:         colorToHex(cell.Fg),
			Bg:         colorToHex(cell.Bg),
			Attributes: attrsToSnapshot(cell.Attrs),
		})
	}
	return out
}

// colorToHex converts a color to a hex string using the default palette.
// Default colors resolve to the default foreground or background.
func colorToHex(c Color) string {
	rgba := resolveColor(c, &DefaultPalette, DefaultForeground, DefaultBackground)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func attrsToSnapshot(a Attr) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:      a.Has(AttrBold),
		Underline: a.Has(AttrUnderline),
		Blink:     a.Has(AttrBlink),
		Reverse:   a.Has(AttrReverse),
		Concealed: a.Has(AttrConcealed),
	}
}

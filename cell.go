package virtualterm

// Attr is a bitmask of text rendering attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrConcealed

	// AttrNone is the empty attribute set.
	AttrNone Attr = 0
)

// Has returns true if every flag in a is set.
func (f Attr) Has(a Attr) bool {
	return f&a == a
}

// Style is the foreground, background and attribute set applied to a glyph.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// DefaultStyle returns the terminal's power-on style: default colors, no attributes.
func DefaultStyle() Style {
	return Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrNone}
}

// Cell stores one glyph of the grid together with its style and dirty flag.
type Cell struct {
	Char byte
	Style
	dirty bool
}

// NewCell creates a blank (space) cell with the given style, marked dirty.
func NewCell(style Style) Cell {
	return Cell{Char: ' ', Style: style, dirty: true}
}

// Reset blanks the cell with the given style and marks it dirty.
func (c *Cell) Reset(style Style) {
	c.Char = ' '
	c.Style = style
	c.dirty = true
}

// IsDirty returns true if the cell changed since it was last painted.
func (c Cell) IsDirty() bool {
	return c.dirty
}

// MarkDirty marks the cell as needing a repaint.
func (c *Cell) MarkDirty() {
	c.dirty = true
}

// ClearDirty resets the dirty tracking flag.
func (c *Cell) ClearDirty() {
	c.dirty = false
}

package virtualterm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// ErrUnsupportedSequence is returned by Mirror.Write for escape sequences the
// mirror does not model.
var ErrUnsupportedSequence = errors.New("virtualterm: unsupported escape sequence")

// Mirror models the physical screen on the far side of an ANSISink.
//
// It decodes the byte stream an ANSISink produces (cursor positioning, SGR
// colors and attributes, cursor visibility, screen clears and plain glyphs)
// and keeps the resulting screen contents, which makes it a convenient
// io.Writer to render into when checking what a terminal would show.
type Mirror struct {
	buffer     *Buffer
	decoder    *ansicode.Decoder
	style      Style
	col, row   int // 1-based
	wrapNext   bool
	visible    bool
	glyphs     int
	unexpected int
}

// NewMirror creates a mirror of a cols x rows screen with the cursor home and visible.
func NewMirror(cols, rows int) *Mirror {
	m := &Mirror{
		buffer:  NewBuffer(cols, rows),
		style:   DefaultStyle(),
		col:     1,
		row:     1,
		visible: true,
	}
	m.decoder = ansicode.NewDecoder(&mirrorHandler{m: m})
	return m
}

// Write decodes p and applies it to the screen model.
func (m *Mirror) Write(p []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnsupportedSequence, r)
		}
	}()
	return m.decoder.Write(p)
}

// Cols returns the screen width.
func (m *Mirror) Cols() int {
	return m.buffer.Width()
}

// Rows returns the screen height.
func (m *Mirror) Rows() int {
	return m.buffer.Height()
}

// Cell returns the cell at (col, row), clamped into bounds.
func (m *Mirror) Cell(col, row int) Cell {
	c := m.buffer.Cell(col, row)
	c.ClearDirty()
	return c
}

// CursorPos returns the 1-based cursor position.
func (m *Mirror) CursorPos() (col, row int) {
	return m.col, m.row
}

// CursorVisible returns true if the cursor was last shown.
func (m *Mirror) CursorVisible() bool {
	return m.visible
}

// Style returns the current SGR state.
func (m *Mirror) Style() Style {
	return m.style
}

// Unexpected returns the number of decoded sequences an ANSISink never emits
// (partial clears, attributes without an equivalent) that were ignored.
func (m *Mirror) Unexpected() int {
	return m.unexpected
}

// Glyphs returns the number of printable characters received so far.
func (m *Mirror) Glyphs() int {
	return m.glyphs
}

// LineContent returns the text of a row without trailing spaces.
func (m *Mirror) LineContent(row int) string {
	return m.buffer.LineContent(row)
}

// Region returns the text of a rectangle, one line per row, keeping trailing spaces.
func (m *Mirror) Region(col, row, width, height int) []string {
	lines := make([]string, 0, height)
	for r := row; r < row+height; r++ {
		var sb strings.Builder
		for c := col; c < col+width; c++ {
			sb.WriteByte(m.buffer.Cell(c, r).Char)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String returns the visible content as plain text, one line per row.
func (m *Mirror) String() string {
	var sb strings.Builder
	for row := 1; row <= m.buffer.Height(); row++ {
		if row > 1 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.buffer.LineContent(row))
	}
	return sb.String()
}

func (m *Mirror) put(ch byte, width int) {
	if m.buffer.Empty() {
		return
	}
	if m.wrapNext {
		m.col = 1
		m.lineFeed()
		m.wrapNext = false
	}

	m.buffer.Set(m.col, m.row, ch, m.style)
	if width == 2 && m.col < m.buffer.Width() {
		m.buffer.Set(m.col+1, m.row, ' ', m.style)
	}
	m.glyphs++

	// The last column holds the cursor until the next glyph arrives.
	if m.col+width > m.buffer.Width() {
		m.wrapNext = true
		return
	}
	m.col += width
}

func (m *Mirror) lineFeed() {
	if m.row < m.buffer.Height() {
		m.row++
		return
	}
	m.buffer.ScrollUp(1, DefaultStyle())
}

// mirrorHandler receives decoder callbacks. Only the sequences a sink emits
// are modeled; anything else reaches the nil embedded Handler and is reported
// by Write as ErrUnsupportedSequence.
type mirrorHandler struct {
	ansicode.Handler
	m *Mirror
}

func (h *mirrorHandler) Input(r rune) {
	w := runeWidth(r)
	if w == 0 {
		return
	}
	ch := byte('?')
	if r < 0x80 {
		ch = byte(r)
	}
	h.m.put(ch, w)
}

func (h *mirrorHandler) Goto(row, col int) {
	m := h.m
	m.col, m.row = m.buffer.Clamp(col+1, row+1)
	m.wrapNext = false
}

func (h *mirrorHandler) GotoLine(row int) {
	h.Goto(row, h.m.col-1)
}

func (h *mirrorHandler) GotoCol(col int) {
	h.Goto(h.m.row-1, col)
}

func (h *mirrorHandler) MoveUp(n int) {
	h.Goto(h.m.row-1-max(n, 1), h.m.col-1)
}

func (h *mirrorHandler) MoveDown(n int) {
	h.Goto(h.m.row-1+max(n, 1), h.m.col-1)
}

func (h *mirrorHandler) MoveForward(n int) {
	h.Goto(h.m.row-1, h.m.col-1+max(n, 1))
}

func (h *mirrorHandler) MoveBackward(n int) {
	h.Goto(h.m.row-1, h.m.col-1-max(n, 1))
}

func (h *mirrorHandler) LineFeed() {
	h.m.wrapNext = false
	h.m.lineFeed()
}

func (h *mirrorHandler) CarriageReturn() {
	h.m.col = 1
	h.m.wrapNext = false
}

func (h *mirrorHandler) Backspace() {
	if h.m.col > 1 {
		h.m.col--
	}
	h.m.wrapNext = false
}

func (h *mirrorHandler) Bell() {}

func (h *mirrorHandler) ClearScreen(mode ansicode.ClearMode) {
	if mode != ansicode.ClearModeAll {
		h.m.unexpected++
		return
	}
	h.m.buffer.Clear(h.m.style)
}

func (h *mirrorHandler) SetMode(mode ansicode.TerminalMode) {
	if mode == ansicode.TerminalModeShowCursor {
		h.m.visible = true
	}
}

func (h *mirrorHandler) UnsetMode(mode ansicode.TerminalMode) {
	if mode == ansicode.TerminalModeShowCursor {
		h.m.visible = false
	}
}

func (h *mirrorHandler) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	st := &h.m.style

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		*st = DefaultStyle()
	case ansicode.CharAttributeBold:
		st.Attrs |= AttrBold
	case ansicode.CharAttributeUnderline, ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline, ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		st.Attrs |= AttrUnderline
	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		st.Attrs |= AttrBlink
	case ansicode.CharAttributeReverse:
		st.Attrs |= AttrReverse
	case ansicode.CharAttributeHidden:
		st.Attrs |= AttrConcealed
	case ansicode.CharAttributeCancelBold, ansicode.CharAttributeCancelBoldDim:
		st.Attrs &^= AttrBold
	case ansicode.CharAttributeCancelUnderline:
		st.Attrs &^= AttrUnderline
	case ansicode.CharAttributeCancelBlink:
		st.Attrs &^= AttrBlink
	case ansicode.CharAttributeCancelReverse:
		st.Attrs &^= AttrReverse
	case ansicode.CharAttributeCancelHidden:
		st.Attrs &^= AttrConcealed
	case ansicode.CharAttributeForeground:
		st.Fg = ForegroundFromIndex(attributeIndex(attr))
	case ansicode.CharAttributeBackground:
		st.Bg = BackgroundFromIndex(attributeIndex(attr))
	default:
		h.m.unexpected++
	}
}

// attributeIndex returns the 16-color palette index carried by a color
// attribute, or -1 for the default color and colors outside the 16-color set.
func attributeIndex(attr ansicode.TerminalCharAttribute) int {
	switch {
	case attr.NamedColor != nil:
		if n := int(*attr.NamedColor); n < 16 {
			return n
		}
	case attr.IndexedColor != nil:
		if n := int(attr.IndexedColor.Index); n < 16 {
			return n
		}
	}
	return -1
}

package virtualterm

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrZeroArea is returned by Write on a degraded (zero-area) terminal.
var ErrZeroArea = errors.New("virtualterm: zero-area terminal")

const (
	// DefaultCoordinateLimit is the largest physical row or column addressed by default.
	DefaultCoordinateLimit = 255
	// DefaultFullRedrawRatio is the dirty-cell fraction above which a full redraw is used.
	DefaultFullRedrawRatio = 0.7
	// DefaultSparseRowRatio is the dirty-row fraction up to which a sparse update is used.
	DefaultSparseRowRatio = 0.3
)

// VirtualTerminal is a rectangular text region positioned on a physical terminal.
// Writes only mutate the in-memory grid; Display sends the minimal set of
// commands through the sink to bring the physical screen up to date.
//
// A VirtualTerminal is not safe for concurrent use. Several instances may share
// one sink; wrap it in a SharedSink so their renders do not interleave.
type VirtualTerminal struct {
	buffer *Buffer
	sink   Sink

	// Position of the region on the physical screen (1-based)
	originCol int
	originRow int

	cursor   *Cursor
	overflow bool // cursor pinned at the right edge with wrapping off
	pen      Style
	shadow   shadow

	// Render policy
	wrap      bool
	scroll    bool
	forceFull bool

	fullRatio   float64
	sparseRatio float64
	limit       int

	history Scrollback

	logger *zap.Logger
	last   RenderStats
}

// Option configures a VirtualTerminal during construction.
type Option func(*VirtualTerminal)

// WithOrigin places the region's top-left cell at (col, row) on the physical screen.
// Values < 1 are replaced with 1.
func WithOrigin(col, row int) Option {
	return func(t *VirtualTerminal) {
		t.originCol = max(col, 1)
		t.originRow = max(row, 1)
	}
}

// WithLogger sets the logger used for render and scroll diagnostics.
// Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *VirtualTerminal) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithThresholds tunes strategy selection: a full redraw is used when more than
// full of the cells are dirty, a sparse update when at most sparse of the rows are.
// Ratios outside [0, 1] are ignored.
func WithThresholds(full, sparse float64) Option {
	return func(t *VirtualTerminal) {
		if full >= 0 && full <= 1 {
			t.fullRatio = full
		}
		if sparse >= 0 && sparse <= 1 {
			t.sparseRatio = sparse
		}
	}
}

// WithCoordinateLimit sets the largest physical row/column the sink can address.
// A region extending past the limit is truncated to fit. Values <= 0 are ignored.
func WithCoordinateLimit(n int) Option {
	return func(t *VirtualTerminal) {
		if n > 0 {
			t.limit = n
		}
	}
}

// WithScrollback keeps the rows scrolled off the top in s.
// Defaults to NoopScrollback.
func WithScrollback(s Scrollback) Option {
	return func(t *VirtualTerminal) {
		if s != nil {
			t.history = s
		}
	}
}

// WithLineWrapping sets the initial line wrapping policy. Default is enabled.
func WithLineWrapping(enabled bool) Option {
	return func(t *VirtualTerminal) {
		t.wrap = enabled
	}
}

// WithScrolling sets the initial scrolling policy. Default is enabled.
func WithScrolling(enabled bool) Option {
	return func(t *VirtualTerminal) {
		t.scroll = enabled
	}
}

// New creates a width x height virtual terminal drawing through sink.
// A non-positive dimension or a nil sink yields a degraded zero-area terminal
// on which every operation is a no-op.
func New(width, height int, sink Sink, opts ...Option) *VirtualTerminal {
	t := &VirtualTerminal{
		sink:        sink,
		originCol:   1,
		originRow:   1,
		cursor:      NewCursor(),
		pen:         DefaultStyle(),
		wrap:        true,
		scroll:      true,
		forceFull:   true,
		fullRatio:   DefaultFullRedrawRatio,
		sparseRatio: DefaultSparseRowRatio,
		limit:       DefaultCoordinateLimit,
		history:     NoopScrollback{},
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if sink == nil {
		width, height = 0, 0
	}

	t.originCol = min(t.originCol, t.limit)
	t.originRow = min(t.originRow, t.limit)
	width = min(width, t.limit-t.originCol+1)
	height = min(height, t.limit-t.originRow+1)

	t.buffer = NewBuffer(width, height)
	t.shadow.limit = t.limit

	if t.buffer.Empty() {
		t.logger.Debug("virtual terminal degraded to zero area",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Bool("has_sink", sink != nil),
		)
	}

	return t
}

// Width returns the region width in columns (0 when degraded).
func (t *VirtualTerminal) Width() int {
	return t.buffer.Width()
}

// Height returns the region height in rows (0 when degraded).
func (t *VirtualTerminal) Height() int {
	return t.buffer.Height()
}

// Origin returns the physical position of the region's top-left cell.
func (t *VirtualTerminal) Origin() (col, row int) {
	return t.originCol, t.originRow
}

// CursorPos returns the logical cursor position (1-based, region-relative).
func (t *VirtualTerminal) CursorPos() (col, row int) {
	return t.cursor.Col, t.cursor.Row
}

// CursorVisible returns true if the physical cursor is shown after a render.
func (t *VirtualTerminal) CursorVisible() bool {
	return t.cursor.Visible
}

// Cell returns the cell at (col, row); coordinates are clamped.
func (t *VirtualTerminal) Cell(col, row int) Cell {
	return t.buffer.Cell(col, row)
}

// CharAt returns the glyph at (col, row); coordinates are clamped.
// Returns a space on a degraded terminal.
func (t *VirtualTerminal) CharAt(col, row int) byte {
	return t.buffer.Cell(col, row).Char
}

// LineContent returns the text of a row, trimming trailing spaces.
func (t *VirtualTerminal) LineContent(row int) string {
	return t.buffer.LineContent(row)
}

// LineWrapping returns true if glyphs past the last column wrap to the next row.
func (t *VirtualTerminal) LineWrapping() bool {
	return t.wrap
}

// SetLineWrapping enables or disables line wrapping.
func (t *VirtualTerminal) SetLineWrapping(enabled bool) {
	t.wrap = enabled
	t.overflow = false
}

// Scrolling returns true if moving past the last row scrolls the content.
func (t *VirtualTerminal) Scrolling() bool {
	return t.scroll
}

// SetScrolling enables or disables scrolling.
func (t *VirtualTerminal) SetScrolling(enabled bool) {
	t.scroll = enabled
}

// Scrollback returns the store receiving rows scrolled off the top.
func (t *VirtualTerminal) Scrollback() Scrollback {
	return t.history
}

// LastRender returns the statistics of the most recent Display call.
func (t *VirtualTerminal) LastRender() RenderStats {
	return t.last
}

// --- Pen ---

// Style returns the pen style applied to newly written glyphs.
func (t *VirtualTerminal) Style() Style {
	return t.pen
}

// SetForeground sets the pen foreground color.
func (t *VirtualTerminal) SetForeground(c Color) {
	t.pen.Fg = c
}

// SetBackground sets the pen background color.
func (t *VirtualTerminal) SetBackground(c Color) {
	t.pen.Bg = c
}

// SetColors sets both pen colors.
func (t *VirtualTerminal) SetColors(fg, bg Color) {
	t.pen.Fg = fg
	t.pen.Bg = bg
}

// SetAttributes replaces the pen attribute set.
func (t *VirtualTerminal) SetAttributes(a Attr) {
	t.pen.Attrs = a
}

// AddAttributes enables attributes without affecting others.
func (t *VirtualTerminal) AddAttributes(a Attr) {
	t.pen.Attrs |= a
}

// RemoveAttributes disables attributes without affecting others.
func (t *VirtualTerminal) RemoveAttributes(a Attr) {
	t.pen.Attrs &^= a
}

// ResetAttributes restores the pen to the default style.
func (t *VirtualTerminal) ResetAttributes() {
	t.pen = DefaultStyle()
}

// --- Lifecycle ---

// Init sets the pen colors, forgets the physical terminal state, clears the
// region on screen and schedules a full redraw.
func (t *VirtualTerminal) Init(fg, bg Color) {
	if t.buffer.Empty() {
		return
	}

	t.pen = Style{Fg: fg, Bg: bg, Attrs: AttrNone}
	t.shadow.invalidate()
	t.forceFull = true

	t.Clear(true)
}

// Clear blanks the grid with the pen style and homes the cursor.
// With physical set, the region is also overwritten with spaces on screen.
func (t *VirtualTerminal) Clear(physical bool) {
	if t.buffer.Empty() {
		return
	}

	t.buffer.Clear(t.pen)
	t.SetCursor(1, 1)

	if !physical {
		return
	}

	release := t.acquireSink()
	defer release()

	if !t.shadow.styleKnown {
		t.shadow.resetAll(t.sink)
	}
	t.shadow.applyStyle(t.sink, t.pen)
	for row := 0; row < t.buffer.Height(); row++ {
		t.shadow.moveTo(t.sink, t.originCol, t.originRow+row)
		for col := 0; col < t.buffer.Width(); col++ {
			t.shadow.writeGlyph(t.sink, ' ')
		}
	}
	t.shadow.moveTo(t.sink, t.originCol, t.originRow)

	t.flushSink()
}

// SetOrigin moves the region on the physical screen. The shadow cursor is
// forgotten and the next Display repaints everything.
// The origin is clamped so the region stays within the coordinate limit.
func (t *VirtualTerminal) SetOrigin(col, row int) {
	if t.buffer.Empty() {
		return
	}

	t.originCol = clamp(col, 1, t.limit-t.buffer.Width()+1)
	t.originRow = clamp(row, 1, t.limit-t.buffer.Height()+1)
	t.shadow.posKnown = false
	t.ForceFullRedraw()
}

// ForceFullRedraw makes the next Display repaint every cell.
func (t *VirtualTerminal) ForceFullRedraw() {
	t.forceFull = true
	t.buffer.MarkAllDirty()
}

// SetCursorVisible shows or hides the cursor. The physical cursor is updated immediately.
func (t *VirtualTerminal) SetCursorVisible(visible bool) {
	t.cursor.Visible = visible
	if t.buffer.Empty() {
		return
	}

	release := t.acquireSink()
	defer release()

	t.shadow.setCursorVisible(t.sink, visible)
	t.flushSink()
}

// --- Writing ---

// SetCursor moves the logical cursor. Column overflow wraps into following rows
// when wrapping is enabled and rows past the bottom scroll the content when
// scrolling is enabled. The final position is clamped to the grid.
func (t *VirtualTerminal) SetCursor(col, row int) {
	if t.buffer.Empty() {
		return
	}
	t.moveTo(col, row)
}

// PutByte writes one byte at the cursor: '\n' starts a new row, '\r' returns to
// the first column, '\b' moves one column left, other control bytes are ignored
// and printable bytes are stored with the pen style.
// A glyph written while the cursor is out of range, or pinned at the right edge
// with wrapping disabled, is dropped but still counted.
// Returns 1, or 0 on a degraded terminal.
func (t *VirtualTerminal) PutByte(c byte) int {
	if t.buffer.Empty() {
		return 0
	}

	switch {
	case c == '\n':
		t.advanceOnNewline()
	case c == '\r':
		t.advanceOnCarriageReturn()
	case c == '\b':
		t.backspace()
	case c >= 0x20:
		if !t.overflow && t.cursor.InBounds(t.buffer.Width(), t.buffer.Height()) {
			t.putGlyph(c)
		}
		t.advanceOnGlyph()
	}

	return 1
}

// putGlyph stores a glyph at the in-bounds cursor, leaving unchanged cells clean.
func (t *VirtualTerminal) putGlyph(c byte) {
	cell := t.buffer.cellAt(t.cursor.Col, t.cursor.Row)
	if cell.Char == c && cell.Style == t.pen {
		return
	}
	cell.Char = c
	cell.Style = t.pen
	cell.MarkDirty()
}

// Write implements io.Writer by calling PutByte for every byte.
// Returns ErrZeroArea on a degraded terminal.
func (t *VirtualTerminal) Write(p []byte) (int, error) {
	if t.buffer.Empty() {
		return 0, ErrZeroArea
	}
	for _, c := range p {
		t.PutByte(c)
	}
	return len(p), nil
}

// Print writes every byte of s and returns the number of bytes accepted.
func (t *VirtualTerminal) Print(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n += t.PutByte(s[i])
	}
	return n
}

// Println writes s followed by a newline.
func (t *VirtualTerminal) Println(s string) int {
	return t.Print(s) + t.PutByte('\n')
}

// Printf formats according to a format specifier and writes the result.
func (t *VirtualTerminal) Printf(format string, args ...any) int {
	return t.Print(fmt.Sprintf(format, args...))
}

// ScrollUp shifts the content up by n rows (clamped to the height). The exposed
// rows take the pen style and the next Display repaints everything.
// No scroll command is sent to the physical terminal.
func (t *VirtualTerminal) ScrollUp(n int) {
	if t.buffer.Empty() || n <= 0 {
		return
	}

	n = min(n, t.buffer.Height())
	for row := 1; row <= n; row++ {
		t.history.Push(t.buffer.Row(row))
	}
	t.buffer.ScrollUp(n, t.pen)
	t.forceFull = true

	t.logger.Debug("scrolled", zap.Int("rows", n))
}

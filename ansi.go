package virtualterm

import (
	"io"
	"strconv"
)

var (
	csi          = []byte("\x1b[")
	csiSGR0      = []byte("\x1b[0m")
	csiClear     = []byte("\x1b[2J")
	csiHome      = []byte("\x1b[H")
	csiShowCurs  = []byte("\x1b[?25h")
	csiHideCurs  = []byte("\x1b[?25l")
	attrSGRCodes = [...]struct {
		attr    Attr
		on, off string
	}{
		{AttrBold, "1", "22"},
		{AttrBlink, "5", "25"},
		{AttrReverse, "7", "27"},
		{AttrConcealed, "8", "28"},
		// Last: decoders read the parameter after 4 as an underline style.
		{AttrUnderline, "4", "24"},
	}
)

// ANSISink emits ANSI/VT100 escape sequences to an io.Writer.
// It keeps no terminal state; write errors are recorded and reported by Err.
type ANSISink struct {
	w   io.Writer
	buf []byte
	err error
}

// NewANSISink creates a sink writing escape sequences to w.
func NewANSISink(w io.Writer) *ANSISink {
	return &ANSISink{
		w:   w,
		buf: make([]byte, 0, 32),
	}
}

// Err returns the first write error, if any. Once an error occurs further output is dropped.
func (s *ANSISink) Err() error {
	return s.err
}

func (s *ANSISink) write(p []byte) {
	if s.err != nil {
		return
	}
	if _, err := s.w.Write(p); err != nil {
		s.err = err
	}
}

// MoveCursor emits CUP (ESC [ row ; col H).
func (s *ANSISink) MoveCursor(col, row int) {
	b := append(s.buf[:0], csi...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	b = append(b, 'H')
	s.write(b)
}

// SetForeground emits the SGR code of the color.
func (s *ANSISink) SetForeground(c Color) {
	s.sgr(c)
}

// SetBackground emits the SGR code of the color.
func (s *ANSISink) SetBackground(c Color) {
	s.sgr(c)
}

func (s *ANSISink) sgr(c Color) {
	b := append(s.buf[:0], csi...)
	b = strconv.AppendInt(b, int64(c), 10)
	b = append(b, 'm')
	s.write(b)
}

// SetAttributes emits an explicit on or off code for every attribute, so colors
// are left untouched.
func (s *ANSISink) SetAttributes(a Attr) {
	b := append(s.buf[:0], csi...)
	for i, code := range attrSGRCodes {
		if i > 0 {
			b = append(b, ';')
		}
		if a&code.attr != 0 {
			b = append(b, code.on...)
		} else {
			b = append(b, code.off...)
		}
	}
	b = append(b, 'm')
	s.write(b)
}

// ResetAll emits SGR 0.
func (s *ANSISink) ResetAll() {
	s.write(csiSGR0)
}

// WriteGlyph writes the character byte as is.
func (s *ANSISink) WriteGlyph(ch byte) {
	b := append(s.buf[:0], ch)
	s.write(b)
}

// SetCursorVisible emits DECTCEM (ESC [ ? 25 h / l).
func (s *ANSISink) SetCursorVisible(visible bool) {
	if visible {
		s.write(csiShowCurs)
	} else {
		s.write(csiHideCurs)
	}
}

// ClearScreen erases the whole physical screen and homes the cursor.
// It is not part of Sink: regions only ever clear themselves.
func (s *ANSISink) ClearScreen() {
	s.write(csiClear)
	s.write(csiHome)
}

// Flush flushes the underlying writer when it buffers (e.g. *bufio.Writer)
// and returns the first error seen.
func (s *ANSISink) Flush() error {
	if f, ok := s.w.(interface{ Flush() error }); ok && s.err == nil {
		if err := f.Flush(); err != nil {
			s.err = err
		}
	}
	return s.err
}

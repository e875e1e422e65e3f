package virtualterm

// Pen receives the output of a PipeWriter: style changes and plain glyphs.
// *VirtualTerminal and *SinkPen implement it.
type Pen interface {
	SetForeground(c Color)
	SetBackground(c Color)
	AddAttributes(a Attr)
	RemoveAttributes(a Attr)
	ResetAttributes()
	PutByte(c byte) int
}

var (
	_ Pen = (*VirtualTerminal)(nil)
	_ Pen = (*SinkPen)(nil)
)

// pipeForeground maps pipe codes 00-15 to foreground colors (Renegade BBS order).
var pipeForeground = [16]Color{
	FgBlack, FgBlue, FgGreen, FgCyan, FgRed, FgMagenta, FgYellow, FgWhite,
	FgBrightBlack, FgBrightBlue, FgBrightGreen, FgBrightCyan,
	FgBrightRed, FgBrightMagenta, FgBrightYellow, FgBrightWhite,
}

// pipeBackground maps pipe codes 16-23 to background colors.
var pipeBackground = [8]Color{
	BgBlack, BgBlue, BgGreen, BgCyan, BgRed, BgMagenta, BgYellow, BgWhite,
}

// pipeAttrCodes maps the letter forms to their numeric equivalents.
var pipeAttrCodes = map[[2]byte]int{
	{'R', 'A'}: 24,
	{'B', '1'}: 25,
	{'U', '1'}: 26,
	{'F', '1'}: 27,
	{'R', '1'}: 28,
	{'B', '0'}: 29,
	{'U', '0'}: 30,
	{'F', '0'}: 31,
	{'R', '0'}: 32,
}

const (
	pipeIdle = iota
	pipeGotBar
	pipeGotFirst
)

// PipeWriter translates inline "pipe codes" into pen changes.
//
// A code is '|' followed by two characters: "|00".."|15" select the foreground,
// "|16".."|23" the background, "|24" (or "|RA") resets the style, "|25".."|28"
// (B1, U1, F1, R1) turn bold, underline, blink and reverse on and "|29".."|32"
// (B0, U0, F0, R0) turn them off. Anything else is passed through literally.
type PipeWriter struct {
	pen      Pen
	state    int
	first    byte
	disabled bool
}

// NewPipeWriter creates an enabled pipe-code writer in front of pen.
func NewPipeWriter(pen Pen) *PipeWriter {
	return &PipeWriter{pen: pen}
}

// SetEnabled turns code processing on or off. Disabling drops a pending partial code.
func (p *PipeWriter) SetEnabled(enabled bool) {
	p.disabled = !enabled
	if !enabled {
		p.state = pipeIdle
	}
}

// Enabled returns true if pipe codes are interpreted.
func (p *PipeWriter) Enabled() bool {
	return !p.disabled
}

// WriteByte feeds one byte through the tokenizer.
func (p *PipeWriter) WriteByte(c byte) error {
	if p.disabled {
		p.pen.PutByte(c)
		return nil
	}

	switch p.state {
	case pipeIdle:
		if c == '|' {
			p.state = pipeGotBar
			return nil
		}
		p.pen.PutByte(c)
	case pipeGotBar:
		p.first = c
		p.state = pipeGotFirst
	case pipeGotFirst:
		p.state = pipeIdle
		if !p.apply(p.first, c) {
			p.pen.PutByte('|')
			p.pen.PutByte(p.first)
			p.pen.PutByte(c)
		}
	}
	return nil
}

// Write feeds p through the tokenizer. It always consumes all of p.
func (p *PipeWriter) Write(b []byte) (int, error) {
	for _, c := range b {
		_ = p.WriteByte(c)
	}
	return len(b), nil
}

// WriteString is like Write but takes a string.
func (p *PipeWriter) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = p.WriteByte(s[i])
	}
	return len(s), nil
}

// Flush emits a dangling partial code literally.
func (p *PipeWriter) Flush() {
	switch p.state {
	case pipeGotBar:
		p.pen.PutByte('|')
	case pipeGotFirst:
		p.pen.PutByte('|')
		p.pen.PutByte(p.first)
	}
	p.state = pipeIdle
}

// apply executes a code; returns false if it is not a known code.
func (p *PipeWriter) apply(c1, c2 byte) bool {
	code, ok := pipeAttrCodes[[2]byte{c1, c2}]
	if !ok {
		if c1 < '0' || c1 > '9' || c2 < '0' || c2 > '9' {
			return false
		}
		code = int(c1-'0')*10 + int(c2-'0')
	}

	switch {
	case code < 16:
		p.pen.SetForeground(pipeForeground[code])
	case code < 24:
		p.pen.SetBackground(pipeBackground[code-16])
	case code == 24:
		p.pen.ResetAttributes()
	case code == 25:
		p.pen.AddAttributes(AttrBold)
	case code == 26:
		p.pen.AddAttributes(AttrUnderline)
	case code == 27:
		p.pen.AddAttributes(AttrBlink)
	case code == 28:
		p.pen.AddAttributes(AttrReverse)
	case code == 29:
		p.pen.RemoveAttributes(AttrBold)
	case code == 30:
		p.pen.RemoveAttributes(AttrUnderline)
	case code == 31:
		p.pen.RemoveAttributes(AttrBlink)
	case code == 32:
		p.pen.RemoveAttributes(AttrReverse)
	default:
		return false
	}
	return true
}

// SinkPen applies pipe-code output straight to a sink, bypassing any grid.
type SinkPen struct {
	sink  Sink
	attrs Attr
}

// NewSinkPen creates a pen drawing directly on sink.
func NewSinkPen(sink Sink) *SinkPen {
	return &SinkPen{sink: sink}
}

func (p *SinkPen) SetForeground(c Color) { p.sink.SetForeground(c) }
func (p *SinkPen) SetBackground(c Color) { p.sink.SetBackground(c) }

func (p *SinkPen) AddAttributes(a Attr) {
	p.attrs |= a
	p.sink.SetAttributes(p.attrs)
}

func (p *SinkPen) RemoveAttributes(a Attr) {
	p.attrs &^= a
	p.sink.SetAttributes(p.attrs)
}

func (p *SinkPen) ResetAttributes() {
	p.attrs = AttrNone
	p.sink.ResetAll()
}

func (p *SinkPen) PutByte(c byte) int {
	p.sink.WriteGlyph(c)
	return 1
}

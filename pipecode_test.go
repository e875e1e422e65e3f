package virtualterm

import (
	"testing"
)

func TestPipeWriterColors(t *testing.T) {
	term, _ := newTestTerminal(20, 2)
	pw := NewPipeWriter(term)

	pw.WriteString("|04Hi|RA!")

	if got := term.LineContent(1); got != "Hi!" {
		t.Errorf("expected 'Hi!', got %q", got)
	}
	if got := term.Cell(1, 1).Fg; got != FgRed {
		t.Errorf("expected red 'H', got %d", got)
	}
	if got := term.Cell(2, 1).Fg; got != FgRed {
		t.Errorf("expected red 'i', got %d", got)
	}
	if got := term.Cell(3, 1).Style; got != DefaultStyle() {
		t.Errorf("expected default style after |RA, got %+v", got)
	}
}

func TestPipeWriterCodes(t *testing.T) {
	tests := []struct {
		code string
		want Style
	}{
		{"|00", Style{Fg: FgBlack, Bg: BgDefault}},
		{"|01", Style{Fg: FgBlue, Bg: BgDefault}},
		{"|07", Style{Fg: FgWhite, Bg: BgDefault}},
		{"|08", Style{Fg: FgBrightBlack, Bg: BgDefault}},
		{"|12", Style{Fg: FgBrightRed, Bg: BgDefault}},
		{"|15", Style{Fg: FgBrightWhite, Bg: BgDefault}},
		{"|16", Style{Fg: FgDefault, Bg: BgBlack}},
		{"|20", Style{Fg: FgDefault, Bg: BgRed}},
		{"|23", Style{Fg: FgDefault, Bg: BgWhite}},
		{"|25", Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrBold}},
		{"|B1", Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrBold}},
		{"|U1", Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrUnderline}},
		{"|27", Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrBlink}},
		{"|R1", Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrReverse}},
		{"|B1|U1|B0", Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrUnderline}},
		{"|25|28|32", Style{Fg: FgDefault, Bg: BgDefault, Attrs: AttrBold}},
		{"|F1|31", DefaultStyle()},
		{"|04|17|B1|24", DefaultStyle()},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			term, _ := newTestTerminal(10, 1)
			pw := NewPipeWriter(term)

			pw.WriteString(tt.code)

			if got := term.Style(); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got := term.LineContent(1); got != "" {
				t.Errorf("expected codes to produce no glyphs, got %q", got)
			}
		})
	}
}

func TestPipeWriterPassThrough(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a|b", "a"},
		{"|99x", "|99x"},
		{"|zzx", "|zzx"},
		{"|3", ""},
		{"x||12y", "x||12y"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			term, _ := newTestTerminal(20, 1)
			pw := NewPipeWriter(term)

			pw.WriteString(tt.in)

			if got := term.LineContent(1); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPipeWriterFlush(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a|", "a|"},
		{"a|1", "a|1"},
		{"a|12", "a"},
	}

	for _, tt := range tests {
		term, _ := newTestTerminal(20, 1)
		pw := NewPipeWriter(term)

		pw.WriteString(tt.in)
		pw.Flush()

		if got := term.LineContent(1); got != tt.want {
			t.Errorf("%q: expected %q after flush, got %q", tt.in, tt.want, got)
		}
	}
}

func TestPipeWriterSplitAcrossWrites(t *testing.T) {
	term, _ := newTestTerminal(20, 1)
	pw := NewPipeWriter(term)

	pw.Write([]byte("|"))
	pw.Write([]byte("1"))
	pw.Write([]byte("4ok"))

	if got := term.Cell(1, 1).Fg; got != FgBrightYellow {
		t.Errorf("expected bright yellow, got %d", got)
	}
	if got := term.LineContent(1); got != "ok" {
		t.Errorf("expected 'ok', got %q", got)
	}
}

func TestPipeWriterDisabled(t *testing.T) {
	term, _ := newTestTerminal(20, 1)
	pw := NewPipeWriter(term)

	pw.WriteString("|0")
	pw.SetEnabled(false)
	if pw.Enabled() {
		t.Error("expected writer to be disabled")
	}
	pw.WriteString("|04x")

	if got := term.LineContent(1); got != "|04x" {
		t.Errorf("expected codes written literally, got %q", got)
	}
	if got := term.Style(); got != DefaultStyle() {
		t.Errorf("expected pen unchanged, got %+v", got)
	}

	pw.SetEnabled(true)
	pw.WriteString("|04y")
	if got := term.Cell(5, 1).Fg; got != FgRed {
		t.Errorf("expected red after enabling, got %d", got)
	}
}

func TestPipeWriterWriteReportsLength(t *testing.T) {
	term, _ := newTestTerminal(20, 1)
	pw := NewPipeWriter(term)

	n, err := pw.Write([]byte("|04abc"))
	if err != nil || n != 6 {
		t.Errorf("expected (6, nil), got (%d, %v)", n, err)
	}
}

func TestSinkPen(t *testing.T) {
	sink := &recordingSink{}
	pw := NewPipeWriter(NewSinkPen(sink))

	pw.WriteString("|02|17|B1a|U1|B0b|RAc")

	want := "fg(32) bg(44) attrs(1) glyph(a) attrs(3) attrs(2) glyph(b) reset glyph(c)"
	if got := sink.String(); got != want {
		t.Errorf("unexpected output:\n got: %s\nwant: %s", got, want)
	}
}

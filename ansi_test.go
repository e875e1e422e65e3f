package virtualterm

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func TestANSISinkSequences(t *testing.T) {
	tests := []struct {
		name string
		emit func(s *ANSISink)
		want string
	}{
		{"move", func(s *ANSISink) { s.MoveCursor(7, 12) }, "\x1b[12;7H"},
		{"foreground", func(s *ANSISink) { s.SetForeground(FgBrightRed) }, "\x1b[91m"},
		{"background", func(s *ANSISink) { s.SetBackground(BgDefault) }, "\x1b[49m"},
		{"attributes", func(s *ANSISink) { s.SetAttributes(AttrBold | AttrReverse) }, "\x1b[1;25;7;28;24m"},
		{"no attributes", func(s *ANSISink) { s.SetAttributes(AttrNone) }, "\x1b[22;25;27;28;24m"},
		{"reset", func(s *ANSISink) { s.ResetAll() }, "\x1b[0m"},
		{"glyph", func(s *ANSISink) { s.WriteGlyph('Q') }, "Q"},
		{"show cursor", func(s *ANSISink) { s.SetCursorVisible(true) }, "\x1b[?25h"},
		{"hide cursor", func(s *ANSISink) { s.SetCursorVisible(false) }, "\x1b[?25l"},
		{"clear screen", func(s *ANSISink) { s.ClearScreen() }, "\x1b[2J\x1b[H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewANSISink(&buf)
			tt.emit(s)
			if got := buf.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestANSISinkRender(t *testing.T) {
	var buf bytes.Buffer
	term := New(3, 1, NewANSISink(&buf), WithOrigin(2, 4))

	term.SetForeground(FgGreen)
	term.Print("ok")
	term.Display()

	want := "\x1b[0m\x1b[4;2H\x1b[32mok\x1b[39m \x1b[4;4H\x1b[?25h"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("line down")
}

func TestANSISinkError(t *testing.T) {
	w := &failingWriter{}
	s := NewANSISink(w)

	s.MoveCursor(1, 1)
	s.WriteGlyph('x')
	s.ResetAll()

	if s.Err() == nil {
		t.Fatal("expected an error")
	}
	if w.writes != 1 {
		t.Errorf("expected output to stop after the first error, got %d writes", w.writes)
	}
	if err := s.Flush(); err == nil {
		t.Error("expected Flush to report the error")
	}
}

func TestANSISinkFlush(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	term := New(3, 1, NewANSISink(bw))

	term.Print("hi")
	term.Display()

	if bw.Buffered() != 0 {
		t.Errorf("expected Display to flush the buffered writer, %d bytes pending", bw.Buffered())
	}
	if !bytes.Contains(buf.Bytes(), []byte("hi")) {
		t.Errorf("expected output to reach the writer, got %q", buf.String())
	}
}

package virtualterm

import (
	"fmt"
	"strings"
)

// sinkCall is one command received by a recordingSink.
type sinkCall struct {
	op   string
	a, b int
}

func (c sinkCall) String() string {
	switch c.op {
	case "move":
		return fmt.Sprintf("move(%d,%d)", c.a, c.b)
	case "glyph":
		return fmt.Sprintf("glyph(%c)", rune(c.a))
	case "reset":
		return "reset"
	default:
		return fmt.Sprintf("%s(%d)", c.op, c.a)
	}
}

// recordingSink records every command for inspection.
type recordingSink struct {
	calls   []sinkCall
	flushes int
}

func (s *recordingSink) MoveCursor(col, row int) {
	s.calls = append(s.calls, sinkCall{op: "move", a: col, b: row})
}

func (s *recordingSink) SetForeground(c Color) {
	s.calls = append(s.calls, sinkCall{op: "fg", a: int(c)})
}

func (s *recordingSink) SetBackground(c Color) {
	s.calls = append(s.calls, sinkCall{op: "bg", a: int(c)})
}

func (s *recordingSink) SetAttributes(a Attr) {
	s.calls = append(s.calls, sinkCall{op: "attrs", a: int(a)})
}

func (s *recordingSink) ResetAll() {
	s.calls = append(s.calls, sinkCall{op: "reset"})
}

func (s *recordingSink) WriteGlyph(ch byte) {
	s.calls = append(s.calls, sinkCall{op: "glyph", a: int(ch)})
}

func (s *recordingSink) SetCursorVisible(visible bool) {
	v := 0
	if visible {
		v = 1
	}
	s.calls = append(s.calls, sinkCall{op: "cursor", a: v})
}

func (s *recordingSink) Flush() error {
	s.flushes++
	return nil
}

func (s *recordingSink) reset() {
	s.calls = nil
	s.flushes = 0
}

func (s *recordingSink) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// glyphs returns every glyph written, in order.
func (s *recordingSink) glyphs() string {
	var sb strings.Builder
	for _, c := range s.calls {
		if c.op == "glyph" {
			sb.WriteByte(byte(c.a))
		}
	}
	return sb.String()
}

func (s *recordingSink) String() string {
	parts := make([]string, len(s.calls))
	for i, c := range s.calls {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// newTestTerminal creates a terminal over a recording sink.
func newTestTerminal(width, height int, opts ...Option) (*VirtualTerminal, *recordingSink) {
	sink := &recordingSink{}
	return New(width, height, sink, opts...), sink
}

// newSyncedTerminal creates a terminal whose initial full redraw has already been sent.
func newSyncedTerminal(width, height int, opts ...Option) (*VirtualTerminal, *recordingSink) {
	term, sink := newTestTerminal(width, height, opts...)
	term.Display()
	sink.reset()
	return term, sink
}

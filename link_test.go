package virtualterm

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestLinkWriterUnpaced(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLinkWriter(&buf, 0)

	n, err := lw.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("expected (5, nil), got (%d, %v)", n, err)
	}
	if buf.String() != "hello" {
		t.Errorf("expected 'hello', got %q", buf.String())
	}
	if lw.Written() != 5 {
		t.Errorf("expected 5 bytes written, got %d", lw.Written())
	}
}

func TestLinkWriterPacing(t *testing.T) {
	var buf bytes.Buffer
	// 9600 baud is 960 bytes per second, delivered in 19 byte bursts.
	lw := NewLinkWriter(&buf, 9600)

	data := bytes.Repeat([]byte("x"), 240)
	start := time.Now()
	n, err := lw.Write(data)
	elapsed := time.Since(start)

	if err != nil || n != len(data) {
		t.Fatalf("expected (%d, nil), got (%d, %v)", len(data), n, err)
	}
	if buf.Len() != len(data) {
		t.Errorf("expected %d bytes delivered, got %d", len(data), buf.Len())
	}
	// (240 - 19) / 960 s
	if elapsed < 200*time.Millisecond {
		t.Errorf("expected pacing to take at least 200ms, took %v", elapsed)
	}
}

func TestLinkWriterContextCancel(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLinkWriter(&buf, 300)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	n, err := lw.WriteContext(ctx, bytes.Repeat([]byte("x"), 100))
	if err == nil {
		t.Fatal("expected an error")
	}
	if n >= 100 {
		t.Errorf("expected a partial write, got %d", n)
	}
	if int64(n) != lw.Written() {
		t.Errorf("expected Written to match, got %d and %d", n, lw.Written())
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestLinkWriterPropagatesErrors(t *testing.T) {
	lw := NewLinkWriter(shortWriter{}, 9600)

	if _, err := lw.Write([]byte("abc")); err == nil {
		t.Error("expected the writer error")
	}
}

package virtualterm

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// LinkWriter paces writes to the throughput of a serial line, so the cost of a
// render on a slow link can be observed on a fast one.
// Each byte costs ten bit times (8N1 framing).
type LinkWriter struct {
	w       io.Writer
	limiter *rate.Limiter
	chunk   int
	written int64
}

// NewLinkWriter creates a writer delivering at most baud/10 bytes per second to w.
// A non-positive baud disables pacing.
func NewLinkWriter(w io.Writer, baud int) *LinkWriter {
	lw := &LinkWriter{w: w}
	if baud <= 0 {
		return lw
	}

	bps := max(baud/10, 1)
	// Bursts are kept short so output trickles out like on a real line.
	lw.chunk = max(bps/50, 1)
	lw.limiter = rate.NewLimiter(rate.Limit(bps), lw.chunk)
	return lw
}

// Written returns the number of bytes delivered so far.
func (l *LinkWriter) Written() int64 {
	return l.written
}

// Write implements io.Writer, blocking as needed to respect the line speed.
func (l *LinkWriter) Write(p []byte) (int, error) {
	return l.WriteContext(context.Background(), p)
}

// WriteContext is like Write but stops waiting when ctx is done.
func (l *LinkWriter) WriteContext(ctx context.Context, p []byte) (int, error) {
	if l.limiter == nil {
		n, err := l.w.Write(p)
		l.written += int64(n)
		return n, err
	}

	total := 0
	for len(p) > 0 {
		n := min(len(p), l.chunk)
		if err := l.limiter.WaitN(ctx, n); err != nil {
			return total, fmt.Errorf("link wait: %w", err)
		}
		m, err := l.w.Write(p[:n])
		total += m
		l.written += int64(m)
		if err != nil {
			return total, err
		}
		p = p[n:]
	}
	return total, nil
}

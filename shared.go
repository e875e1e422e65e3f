package virtualterm

import "sync"

// SharedSink lets several virtual terminals draw on one physical terminal.
//
// The physical cursor and colors are a single resource: a SharedSink serializes
// renders so they never interleave, and tells each terminal when another one
// drew since its last render so it stops trusting its shadow state.
type SharedSink struct {
	Sink

	mu   sync.Mutex
	last *VirtualTerminal
}

// NewSharedSink wraps sink for use by several virtual terminals.
func NewSharedSink(sink Sink) *SharedSink {
	return &SharedSink{Sink: sink}
}

func (s *SharedSink) claim(owner *VirtualTerminal) bool {
	s.mu.Lock()
	stale := s.last != nil && s.last != owner
	s.last = owner
	return stale
}

func (s *SharedSink) release() {
	s.mu.Unlock()
}

// Flush flushes the wrapped sink when it implements Flusher.
func (s *SharedSink) Flush() error {
	if f, ok := s.Sink.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

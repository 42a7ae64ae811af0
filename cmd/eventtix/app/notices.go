package app

import (
	"sync"

	eventtix "github.com/eventtix/eventtix"
)

// noticeSink collects notices emitted by client operations so commands can
// print them after the operation completes.
type noticeSink struct {
	mu      sync.Mutex
	notices []eventtix.Notice
}

func newNoticeSink() *noticeSink {
	return &noticeSink{}
}

// Notify implements the eventtix.Notifier interface.
func (s *noticeSink) Notify(n eventtix.Notice) {
	s.mu.Lock()
	s.notices = append(s.notices, n)
	s.mu.Unlock()
}

// Drain returns the collected notices and clears the sink.
func (s *noticeSink) Drain() []eventtix.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

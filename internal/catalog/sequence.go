package catalog

import "sync"

// Sequencer makes the "last response wins" race explicit: each fetch takes
// a sequence number, and a response is applied only when it belongs to the
// most recently issued request for the view.
type Sequencer struct {
	mu     sync.Mutex
	issued uint64
}

// Next reserves the sequence number for a new request
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// IsLatest reports whether seq still identifies the most recent request.
// Stale responses are dropped by the caller.
func (s *Sequencer) IsLatest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.issued
}

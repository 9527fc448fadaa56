package queries

import "sync"

// RankedOrdersSnapshot holds the most recent ranked view for the dashboard.
//
// The dashboard never rescores per request: a background job refreshes the
// snapshot on its schedule and the HTTP handler serves whatever is current.
// Safe for concurrent use; readers see either the previous or the new
// snapshot, never a partial one.
type RankedOrdersSnapshot struct {
	mu      sync.RWMutex
	current GetRankedOrdersQueryResponse
	loaded  bool
}

// NewRankedOrdersSnapshot creates an empty snapshot holder.
func NewRankedOrdersSnapshot() *RankedOrdersSnapshot {
	return &RankedOrdersSnapshot{}
}

// Set replaces the current snapshot.
func (s *RankedOrdersSnapshot) Set(response GetRankedOrdersQueryResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = response
	s.loaded = true
}

// Latest returns the current snapshot. The boolean is false until the first
// refresh has completed.
func (s *RankedOrdersSnapshot) Latest() (GetRankedOrdersQueryResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.loaded
}

// Package dedupe tracks hotel fingerprints that have already been collected.
//
// A single Store is constructed at run start and shared by reference between
// the orchestrator and the export sink, so both hold one consistent notion
// of "already seen" for the lifetime of the process. The store is primed
// from persisted output at startup, which extends the at-most-once guarantee
// across prior runs.
package dedupe

import (
	"sync"

	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

// Store is a concurrency-safe fingerprint seen-set.
type Store struct {
	mu   sync.Mutex
	seen map[string]bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{seen: make(map[string]bool)}
}

// Seen reports whether a fingerprint has been recorded.
func (s *Store) Seen(fingerprint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[fingerprint]
}

// Mark records a fingerprint. Returns false if it was already present.
func (s *Store) Mark(fingerprint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[fingerprint] {
		return false
	}
	s.seen[fingerprint] = true
	return true
}

// Len returns the number of recorded fingerprints.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// Filter returns the listings whose fingerprints are novel, marking each as
// it is kept. First-seen wins: a later duplicate is dropped silently
// regardless of which platform produced either record. The second return
// value is the number of duplicates dropped.
func (s *Store) Filter(listings []hotel.Listing) ([]hotel.Listing, int) {
	var unique []hotel.Listing
	dropped := 0
	for _, l := range listings {
		if s.Mark(l.Fingerprint()) {
			unique = append(unique, l)
		} else {
			dropped++
		}
	}
	return unique, dropped
}

package state

import (
	"slices"
	"sync"
	"time"

	"github.com/five82/rove/internal/tabnav"
)

// Snapshot is a point-in-time copy of the tab state.
type Snapshot struct {
	Tabs        []tabnav.TabID
	Active      tabnav.TabID
	Changes     int // number of SetActive calls since Reset
	LastChanged time.Time
}

// HasActive reports whether Active is one of Tabs.
func (s Snapshot) HasActive() bool {
	return tabnav.FocusIndex(s.Tabs, s.Active) >= 0
}

// Store owns the tab list and the active tab.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Reset replaces the tab list and active tab and clears the change counter.
func (s *Store) Reset(tabs []tabnav.TabID, active tabnav.TabID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		Tabs:   slices.Clone(tabs),
		Active: active,
	}
}

// SetActive records id as the active tab. It has the setter signature the
// navigation controller expects.
func (s *Store) SetActive(id tabnav.TabID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Active = id
	s.snapshot.Changes++
	s.snapshot.LastChanged = time.Now()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Tabs = slices.Clone(s.snapshot.Tabs)
	return snap
}

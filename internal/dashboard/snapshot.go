// Package dashboard orchestrates the fetch-render pipeline: one cycle per
// section, a last-write-wins snapshot store, and the market-hours-gated
// refresh scheduler.
package dashboard

import (
	"sync"
	"time"

	"github.com/bigclaw/claw-portal/internal/models"
)

// SnapshotStore holds the latest rendered fragment per section. Writers are
// the concurrent fetch-render cycles; readers are the HTTP handlers and the
// MCP tools. Last write wins, with no staleness check: a slow response from
// an earlier refresh pass may land after a later one and overwrite it.
// Thread-safe with sync.RWMutex.
type SnapshotStore struct {
	mu    sync.RWMutex
	items map[models.Section]models.Snapshot
	now   func() time.Time
}

// NewSnapshotStore creates an empty snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		items: make(map[models.Section]models.Snapshot),
		now:   time.Now,
	}
}

// Put stores the latest fragment for a section, replacing whatever was
// there. fallback marks fragments produced by a cycle failure.
func (s *SnapshotStore) Put(section models.Section, html string, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[section] = models.Snapshot{
		Section:   section,
		HTML:      html,
		Fallback:  fallback,
		UpdatedAt: s.now(),
	}
}

// Get returns the latest snapshot for a section.
func (s *SnapshotStore) Get(section models.Section) (models.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.items[section]
	return snap, ok
}

// All returns a copy of every stored snapshot.
func (s *SnapshotStore) All() map[models.Section]models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.Section]models.Snapshot, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}

package service

import (
	"sync/atomic"
	"time"

	"currency-converter-api/internal/domain/model"
)

// snapshotState couples a snapshot with its install time so both are
// swapped in one atomic operation.
type snapshotState struct {
	snapshot  *model.RateSnapshot
	updatedAt time.Time
}

// SnapshotStore holds the single authoritative rate snapshot. Reads never
// block on a concurrent Replace: readers obtain a consistent reference via
// an atomic pointer load and hold no lock across arithmetic. The refresh
// coordinator is structurally the only writer.
type SnapshotStore struct {
	state atomic.Pointer[snapshotState]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Current returns the installed snapshot, or ErrNotReady if no refresh
// has ever succeeded.
func (s *SnapshotStore) Current() (*model.RateSnapshot, error) {
	state := s.state.Load()
	if state == nil {
		return nil, ErrNotReady
	}
	return state.snapshot, nil
}

// Replace atomically swaps the whole snapshot and records the update time.
// A concurrent reader sees either the full old snapshot or the full new
// one, never a mix.
func (s *SnapshotStore) Replace(snapshot *model.RateSnapshot) {
	s.state.Store(&snapshotState{
		snapshot:  snapshot,
		updatedAt: time.Now().UTC(),
	})
}

// LastUpdated returns when the current snapshot was installed. The second
// return is false before the first install.
func (s *SnapshotStore) LastUpdated() (time.Time, bool) {
	state := s.state.Load()
	if state == nil {
		return time.Time{}, false
	}
	return state.updatedAt, true
}

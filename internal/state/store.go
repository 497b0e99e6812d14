package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/contour/internal/curve"
)

// Snapshot represents the latest curve data available to the UI.
type Snapshot struct {
	Location            string
	Result              curve.Result
	HasResult           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive load failures
}

// IsStale returns true when the source has failed to load repeatedly.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetLocation records where samples are loaded from.
func (s *Store) SetLocation(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Location = location
}

// Update replaces the stored result. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(result *curve.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if result != nil {
		s.snapshot.Result = cloneResult(*result)
		s.snapshot.HasResult = true
	} else {
		s.snapshot.Result = curve.Result{}
		s.snapshot.HasResult = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Result = cloneResult(s.snapshot.Result)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneResult(r curve.Result) curve.Result {
	r.Input = r.Input.Clone()
	r.Extremities = r.Extremities.Clone()
	r.Resampled = r.Resampled.Clone()
	return r
}

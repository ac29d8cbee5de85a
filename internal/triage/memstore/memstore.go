// Package memstore holds the dashboard's current scored batch in memory.
package memstore

import (
	"sync"

	"github.com/linnemanlabs/sift/internal/score"
	"github.com/linnemanlabs/sift/internal/triage"
)

// Store holds the most recent triage report behind a lock. Reads get a
// shallow copy with fresh slices so callers can filter and re-slice without
// racing a concurrent reload.
type Store struct {
	mu     sync.RWMutex
	report *triage.Report
}

// New initializes an empty Store.
func New() *Store {
	return &Store{}
}

// Set replaces the current report.
func (s *Store) Set(r *triage.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = r
}

// Snapshot returns a copy of the current report. ok is false before the
// first Set.
func (s *Store) Snapshot() (*triage.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return nil, false
	}
	cp := *s.report
	cp.Alerts = make([]score.Scored, len(s.report.Alerts))
	copy(cp.Alerts, s.report.Alerts)
	cp.Skipped = make([]triage.SkipWarning, len(s.report.Skipped))
	copy(cp.Skipped, s.report.Skipped)
	return &cp, true
}

package state

import (
	"sync"
	"time"

	"github.com/five82/skyexplorer/internal/booking"
)

const historyLimit = 50

// Snapshot is a copy of the notices raised during the session.
type Snapshot struct {
	Notices     []booking.Notice
	Searches    int // successful searches
	Rejected    int // searches refused by validation
	LastUpdated time.Time
}

// Last returns the most recent notice, if any.
func (s Snapshot) Last() (booking.Notice, bool) {
	if len(s.Notices) == 0 {
		return booking.Notice{}, false
	}
	return s.Notices[len(s.Notices)-1], true
}

// Store keeps the session's notice history. It implements
// booking.NotificationSink so it can sit alongside the UI and log sinks.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

var _ booking.NotificationSink = (*Store)(nil)

// Notify records n, dropping the oldest entries beyond the history limit.
func (s *Store) Notify(n booking.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.At.IsZero() {
		n.At = time.Now()
	}
	s.snapshot.Notices = append(s.snapshot.Notices, n)
	if over := len(s.snapshot.Notices) - historyLimit; over > 0 {
		s.snapshot.Notices = cloneNotices(s.snapshot.Notices[over:])
	}
	if n.Level == booking.LevelError {
		s.snapshot.Rejected++
	} else {
		s.snapshot.Searches++
	}
	s.snapshot.LastUpdated = n.At
}

// Snapshot returns a copy of the current history.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Notices = cloneNotices(s.snapshot.Notices)
	return snap
}

// Reset clears the history.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{}
}

func cloneNotices(items []booking.Notice) []booking.Notice {
	if len(items) == 0 {
		return nil
	}
	dup := make([]booking.Notice, len(items))
	copy(dup, items)
	return dup
}

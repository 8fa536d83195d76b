// Package actionlog provides the bounded action journal backing the
// statistics and device detail screens.
//
// Every state-changing operation appends one entry. The journal keeps
// only the most recent entries (50 by default); older entries are
// evicted and never recoverable. Entries are immutable once written.
package actionlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of entries retained when no capacity
// is configured.
const DefaultCapacity = 50

// defaultRecentLimit caps RecentFor results when no limit is given.
const defaultRecentLimit = 10

// DefaultUser is the label recorded when an action has no explicit user.
const DefaultUser = "User"

// Entry is a single action journal record.
type Entry struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Time renders the entry timestamp the way the log table displays it,
// with second precision.
func (e Entry) Time() string {
	return e.CreatedAt.Format("15:04:05")
}

// Log is a bounded, append-only journal of device actions.
//
// Storage order is insertion order; all accessors return entries
// newest-first, which is the display order. All methods are
// thread-safe.
type Log struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	now      func() time.Time
}

// New creates a journal retaining at most capacity entries.
// A capacity below 1 falls back to DefaultCapacity.
func New(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		now:      time.Now,
	}
}

// SetClock replaces the journal's time source. Tests use this to get
// deterministic timestamps.
func (l *Log) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Append records an action against a device, stamped with the current
// wall-clock time. An empty user defaults to DefaultUser. Once the
// journal exceeds its capacity the oldest entries are evicted.
//
// Returns the stored entry.
func (l *Log) Append(deviceID, action, user string) Entry {
	if user == "" {
		user = DefaultUser
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		ID:        "act-" + uuid.NewString()[:8],
		DeviceID:  deviceID,
		Action:    action,
		User:      user,
		CreatedAt: l.now(),
	}

	l.entries = append(l.entries, entry)
	if excess := len(l.entries) - l.capacity; excess > 0 {
		l.entries = append(l.entries[:0:0], l.entries[excess:]...)
	}

	return entry
}

// Entries returns all retained entries, newest first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// RecentFor returns up to limit entries for the given device, newest
// first. A limit below 1 defaults to 10 entries.
func (l *Log) RecentFor(deviceID string, limit int) []Entry {
	if limit < 1 {
		limit = defaultRecentLimit
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, 0, limit)
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if l.entries[i].DeviceID == deviceID {
			out = append(out, l.entries[i])
		}
	}
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Capacity returns the maximum number of retained entries.
func (l *Log) Capacity() int {
	return l.capacity
}

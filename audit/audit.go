package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is a single audit-trail record.
type Entry struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	UserName     string         `json:"userName"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resourceType"`
	ResourceID   string         `json:"resourceId"`
	Details      map[string]any `json:"details,omitempty"`
	IPAddress    string         `json:"ipAddress,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

// Log is an append-only in-memory audit trail.
type Log struct {
	lock    sync.RWMutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

// Append records an entry, assigning an ID and timestamp when absent, and
// returns the stored entry.
func (l *Log) Append(entry Entry) Entry {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	l.entries = append(l.entries, entry)
	return entry
}

// Entries returns the recorded entries, newest first.
func (l *Log) Entries() []Entry {
	l.lock.RLock()
	defer l.lock.RUnlock()

	out := make([]Entry, len(l.entries))
	for i, entry := range l.entries {
		out[len(l.entries)-1-i] = entry
	}
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return len(l.entries)
}

package storefake

import (
	"sync"

	"github.com/neurobridge/dashboard/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session.Store for tests.
type FakeStore struct {
	lock    sync.Mutex
	record  *session.Session
	SaveErr error // When set, Save fails with this error
}

func New() *FakeStore {
	return &FakeStore{}
}

// NewWithSession creates a fake store pre-seeded with a persisted session.
func NewWithSession(s *session.Session) *FakeStore {
	fs := New()
	fs.record = s
	return fs
}

func (fs *FakeStore) Load() *session.Session {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.record == nil {
		return nil
	}
	record := *fs.record
	return &record
}

func (fs *FakeStore) Save(s *session.Session) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.SaveErr != nil {
		return fs.SaveErr
	}
	record := *s
	fs.record = &record
	return nil
}

func (fs *FakeStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.record = nil
	return nil
}

// Has reports whether a record is currently persisted.
func (fs *FakeStore) Has() bool {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	return fs.record != nil
}

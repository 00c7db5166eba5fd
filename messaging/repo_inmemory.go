package messaging

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	lock     sync.RWMutex
	threads  map[string]Thread
	messages map[string][]Message // threadID -> messages, oldest first
}

// NewInMemoryRepo creates a new in-memory messaging repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		threads:  make(map[string]Thread),
		messages: make(map[string][]Message),
	}
}

// UpsertThread creates or updates a thread
func (r *InMemoryRepo) UpsertThread(t *Thread) error {
	if t.ID == "" {
		return fmt.Errorf("thread ID is required")
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.threads[t.ID] = *t
	return nil
}

// GetThread retrieves a thread by ID
func (r *InMemoryRepo) GetThread(id string) (*Thread, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	t, ok := r.threads[id]
	if !ok {
		return nil, ErrThreadNotFound
	}
	return &t, nil
}

// SearchThreads returns threads matching query, newest activity first
func (r *InMemoryRepo) SearchThreads(query string) ([]*Thread, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	results := make([]*Thread, 0, len(r.threads))
	for id := range r.threads {
		t := r.threads[id]
		if t.MatchesQuery(query) {
			results = append(results, &t)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].LastMessageAt.After(results[j].LastMessageAt)
	})
	return results, nil
}

// MessagesForThread returns a thread's messages, oldest first
func (r *InMemoryRepo) MessagesForThread(threadID string) ([]*Message, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if _, ok := r.threads[threadID]; !ok {
		return nil, ErrThreadNotFound
	}

	stored := r.messages[threadID]
	results := make([]*Message, 0, len(stored))
	for i := range stored {
		msg := stored[i]
		results = append(results, &msg)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

// PostMessage appends a message to its thread and bumps the thread's
// last-activity time
func (r *InMemoryRepo) PostMessage(msg *Message) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	thread, ok := r.threads[msg.ThreadID]
	if !ok {
		return ErrThreadNotFound
	}

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	r.messages[msg.ThreadID] = append(r.messages[msg.ThreadID], *msg)
	thread.LastMessageAt = msg.CreatedAt
	r.threads[msg.ThreadID] = thread
	return nil
}

// MarkThreadRead marks every message in the thread read and zeroes the
// thread's unread count
func (r *InMemoryRepo) MarkThreadRead(threadID string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	thread, ok := r.threads[threadID]
	if !ok {
		return ErrThreadNotFound
	}

	stored := r.messages[threadID]
	for i := range stored {
		stored[i].IsRead = true
	}
	thread.UnreadCount = 0
	r.threads[threadID] = thread
	return nil
}

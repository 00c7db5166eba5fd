package cases

import (
	"fmt"
	"sort"
	"sync"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	lock  sync.RWMutex
	cases map[string]LearnerCase
}

// NewInMemoryRepo creates a new in-memory case repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		cases: make(map[string]LearnerCase),
	}
}

// Upsert creates or updates a learner case
func (r *InMemoryRepo) Upsert(c *LearnerCase) error {
	if c.ID == "" {
		return fmt.Errorf("case ID is required")
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.cases[c.ID] = *c
	return nil
}

// Get retrieves a case by ID
func (r *InMemoryRepo) Get(id string) (*LearnerCase, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	c, ok := r.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// List returns the cases passing the filter, in the filter's sort order
func (r *InMemoryRepo) List(filter Filter) ([]*LearnerCase, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	results := make([]*LearnerCase, 0, len(r.cases))
	for id := range r.cases {
		c := r.cases[id]
		if filter.Matches(&c) {
			results = append(results, &c)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		switch filter.SortBy {
		case SortByCreated:
			return results[i].CreatedAt.After(results[j].CreatedAt)
		case SortByReference:
			return results[i].ReferenceNumber < results[j].ReferenceNumber
		default:
			return results[i].UpdatedAt.After(results[j].UpdatedAt)
		}
	})
	return results, nil
}

// CountByStatus returns case counts per workflow status
func (r *InMemoryRepo) CountByStatus() (map[Status]int, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	counts := make(map[Status]int, len(Statuses))
	for _, c := range r.cases {
		counts[c.Status]++
	}
	return counts, nil
}

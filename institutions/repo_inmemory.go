package institutions

import (
	"fmt"
	"sort"
	"sync"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	lock         sync.RWMutex
	institutions map[string]Institution
}

// NewInMemoryRepo creates a new in-memory institution repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		institutions: make(map[string]Institution),
	}
}

// Upsert creates or updates an institution profile
func (r *InMemoryRepo) Upsert(inst *Institution) error {
	if inst.ID == "" {
		return fmt.Errorf("institution ID is required")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	// Store a copy to avoid external modifications
	r.institutions[inst.ID] = *inst
	return nil
}

// Get retrieves an institution by ID
func (r *InMemoryRepo) Get(id string) (*Institution, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	inst, ok := r.institutions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &inst, nil
}

// Search returns the institutions passing the filters, sorted by name
func (r *InMemoryRepo) Search(filters SearchFilters) ([]*Institution, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	results := make([]*Institution, 0, len(r.institutions))
	for id := range r.institutions {
		inst := r.institutions[id]
		if filters.Matches(&inst) {
			results = append(results, &inst)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

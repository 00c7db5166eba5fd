package institutions

import "errors"

var ErrNotFound = errors.New("institution not found")

// Repo provides access to the institution directory.
type Repo interface {
	Upsert(inst *Institution) error
	Get(id string) (*Institution, error)

	// Search returns the institutions passing the filters, sorted by name
	Search(filters SearchFilters) ([]*Institution, error)
}

package cases

import "errors"

var ErrNotFound = errors.New("case not found")

// Repo provides access to learner cases.
type Repo interface {
	Upsert(c *LearnerCase) error
	Get(id string) (*LearnerCase, error)

	// List returns the cases passing the filter, in the filter's sort order
	List(filter Filter) ([]*LearnerCase, error)

	// CountByStatus returns case counts per workflow status
	CountByStatus() (map[Status]int, error)
}

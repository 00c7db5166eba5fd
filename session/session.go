package session

import "github.com/neurobridge/dashboard/users"

// Session is the persisted authentication record: the token pair plus the
// authenticated user. Exactly one session exists per process; it is created
// on successful login, replaced on each subsequent login and removed on
// logout. The tokens are opaque at this boundary.
type Session struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         users.User `json:"user"`
}

// Store persists a single Session record under a fixed location.
//
// Load never fails: an absent record and a malformed one both come back as
// nil, so a corrupt store degrades to "not signed in" rather than an error
// the caller has to handle.
type Store interface {
	// Load returns the persisted session, or nil when absent or malformed
	Load() *Session

	// Save writes the session, fully replacing any prior record
	Save(session *Session) error

	// Clear removes the record. Clearing an empty store is a no-op
	Clear() error
}

// Package auth holds the session manager: the single source of truth for
// authentication state within a running dashboard process.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/neurobridge/dashboard/audit"
	"github.com/neurobridge/dashboard/session"
	"github.com/neurobridge/dashboard/users"
)

// LoginClient exchanges credentials for a session.
type LoginClient interface {
	LoginWithCredentials(ctx context.Context, email, password string) (*session.Session, error)
}

// Manager coordinates the session store and the login client. It is
// constructed once at process start and handed to consumers explicitly; all
// state changes go through Login and Logout. Concurrent logins are not
// de-duplicated - last write wins, as callers are expected to serialise
// submissions.
type Manager struct {
	client  LoginClient
	store   session.Store
	trail   *audit.Log
	nowTime func() time.Time

	lock    sync.Mutex
	user    *users.User
	loading bool
	lastErr string
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithAuditLog records login and logout events to trail.
func WithAuditLog(trail *audit.Log) ManagerOption {
	return func(m *Manager) {
		m.trail = trail
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager wires the manager and hydrates state from the store: a persisted
// session means the process starts authenticated, its absence (or a malformed
// record, which the store collapses to absence) means unauthenticated.
func NewManager(client LoginClient, store session.Store, options ...ManagerOption) (*Manager, error) {
	if client == nil {
		return nil, errors.New("[NewManager] login client is required")
	}
	if store == nil {
		return nil, errors.New("[NewManager] session store is required")
	}

	m := &Manager{
		client:  client,
		store:   store,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}

	if sess := store.Load(); sess != nil {
		user := sess.User
		m.user = &user
		log.Info().Str("email", user.Email).Msg("session hydrated from store")
	}

	return m, nil
}

// Login exchanges credentials for a session, persists it and moves the
// manager to the authenticated state. On failure the mapped user-facing
// message is recorded (readable via LastError) and the underlying cause is
// returned, so callers can abort any optimistic follow-up such as a
// navigation. A session that cannot be persisted fails the login: the store
// must hold a record if and only if the process is authenticated.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.lock.Lock()
	m.loading = true
	m.lastErr = ""
	m.lock.Unlock()

	sess, err := m.client.LoginWithCredentials(ctx, email, password)
	if err == nil {
		if saveErr := m.store.Save(sess); saveErr != nil {
			err = errors.Wrap(saveErr, "persist session")
		}
	}
	if err != nil {
		m.lock.Lock()
		m.loading = false
		m.lastErr = FailureMessage(err)
		m.lock.Unlock()
		log.Warn().Err(err).Str("email", email).Msg("login failed")
		return errors.Wrap(err, "[Manager.Login]")
	}

	user := sess.User
	m.lock.Lock()
	m.user = &user
	m.loading = false
	m.lock.Unlock()

	log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("login succeeded")
	m.record("auth.login", &user)
	return nil
}

// Logout clears the persisted session and resets state synchronously. Safe to
// call when already unauthenticated; never touches the network.
func (m *Manager) Logout() {
	m.lock.Lock()
	user := m.user
	m.user = nil
	m.loading = false
	m.lastErr = ""
	m.lock.Unlock()

	if err := m.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear session store")
	}
	if user != nil {
		m.record("auth.logout", user)
	}
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (m *Manager) CurrentUser() *users.User {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// IsAuthenticated is derived state: a non-nil user.
func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

// IsLoading reports whether a login exchange is in flight.
func (m *Manager) IsLoading() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.loading
}

// LastError returns the user-facing message for the most recent login
// failure, or the empty string. It is cleared when a login starts and on
// logout; error display is state-driven, not exception-driven.
func (m *Manager) LastError() string {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.lastErr
}

func (m *Manager) record(action string, user *users.User) {
	if m.trail == nil {
		return
	}
	m.trail.Append(audit.Entry{
		UserID:       user.ID,
		UserName:     user.Name,
		Action:       action,
		ResourceType: "session",
		ResourceID:   user.ID,
		Timestamp:    m.nowTime(),
	})
}

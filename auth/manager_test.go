package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neurobridge/dashboard/audit"
	"github.com/neurobridge/dashboard/auth"
	"github.com/neurobridge/dashboard/authclient"
	"github.com/neurobridge/dashboard/session"
	"github.com/neurobridge/dashboard/session/storefake"
	"github.com/neurobridge/dashboard/users"
)

const (
	testEmail    = "school@oakwood.edu"
	testPassword = "password123"
)

type fakeLoginClient struct {
	session *session.Session
	err     error
	calls   int
}

func (f *fakeLoginClient) LoginWithCredentials(ctx context.Context, email, password string) (*session.Session, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func testSession() *session.Session {
	return &session.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: users.User{
			ID:            "user-1",
			Email:         testEmail,
			Name:          "James Peterson",
			Role:          users.RoleSchoolAdmin,
			InstitutionID: "inst-1",
			CreatedAt:     time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestNewManager_RequiresDependencies(t *testing.T) {
	_, err := auth.NewManager(nil, storefake.New())
	require.Error(t, err)

	_, err = auth.NewManager(&fakeLoginClient{}, nil)
	require.Error(t, err)
}

func TestNewManager_HydratesFromStore(t *testing.T) {
	t.Run("persisted session starts authenticated", func(t *testing.T) {
		store := storefake.NewWithSession(testSession())

		manager, err := auth.NewManager(&fakeLoginClient{}, store)
		require.NoError(t, err)

		require.True(t, manager.IsAuthenticated())
		require.False(t, manager.IsLoading())

		user := manager.CurrentUser()
		require.NotNil(t, user)
		require.Equal(t, testEmail, user.Email)
		require.Equal(t, users.RoleSchoolAdmin, user.Role)
	})

	t.Run("empty store starts unauthenticated", func(t *testing.T) {
		manager, err := auth.NewManager(&fakeLoginClient{}, storefake.New())
		require.NoError(t, err)

		require.False(t, manager.IsAuthenticated())
		require.Nil(t, manager.CurrentUser())
	})
}

func TestManager_LoginSuccess(t *testing.T) {
	client := &fakeLoginClient{session: testSession()}
	store := storefake.New()
	trail := audit.NewLog()

	manager, err := auth.NewManager(client, store, auth.WithAuditLog(trail))
	require.NoError(t, err)

	require.NoError(t, manager.Login(context.Background(), testEmail, testPassword))

	require.True(t, manager.IsAuthenticated())
	require.False(t, manager.IsLoading())
	require.Empty(t, manager.LastError())

	user := manager.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, testEmail, user.Email)

	persisted := store.Load()
	require.NotNil(t, persisted)
	require.Equal(t, "access-token", persisted.AccessToken)
	require.Equal(t, testEmail, persisted.User.Email)

	require.Equal(t, 1, trail.Len())
	require.Equal(t, "auth.login", trail.Entries()[0].Action)
}

func TestManager_LoginFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "invite-only gate",
			err:     &authclient.APIError{Status: http.StatusForbidden, Code: authclient.CodeInviteRequired},
			wantMsg: auth.MsgInviteRequired,
		},
		{
			name:    "rejected credentials",
			err:     &authclient.APIError{Status: http.StatusUnauthorized},
			wantMsg: auth.MsgInvalidCredentials,
		},
		{
			name:    "server error",
			err:     &authclient.APIError{Status: http.StatusInternalServerError},
			wantMsg: auth.MsgTryAgain,
		},
		{
			name:    "transport failure",
			err:     errors.New("dial tcp: connection refused"),
			wantMsg: auth.MsgTryAgain,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeLoginClient{err: tc.err}
			store := storefake.New()

			manager, err := auth.NewManager(client, store)
			require.NoError(t, err)

			err = manager.Login(context.Background(), testEmail, testPassword)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.err)

			require.Equal(t, tc.wantMsg, manager.LastError())
			require.False(t, manager.IsAuthenticated())
			require.False(t, manager.IsLoading())
			require.False(t, store.Has(), "a failed login must not persist a session")
		})
	}
}

func TestManager_LoginFailsWhenSaveFails(t *testing.T) {
	client := &fakeLoginClient{session: testSession()}
	store := storefake.New()
	store.SaveErr = errors.New("disk full")

	manager, err := auth.NewManager(client, store)
	require.NoError(t, err)

	err = manager.Login(context.Background(), testEmail, testPassword)
	require.Error(t, err)

	require.False(t, manager.IsAuthenticated())
	require.Equal(t, auth.MsgTryAgain, manager.LastError())
	require.False(t, store.Has())
}

func TestManager_LoginClearsPreviousError(t *testing.T) {
	client := &fakeLoginClient{err: &authclient.APIError{Status: http.StatusUnauthorized}}
	store := storefake.New()

	manager, err := auth.NewManager(client, store)
	require.NoError(t, err)

	require.Error(t, manager.Login(context.Background(), testEmail, "wrong"))
	require.Equal(t, auth.MsgInvalidCredentials, manager.LastError())

	client.err = nil
	client.session = testSession()

	require.NoError(t, manager.Login(context.Background(), testEmail, testPassword))
	require.Empty(t, manager.LastError())
	require.True(t, manager.IsAuthenticated())
}

func TestManager_Logout(t *testing.T) {
	client := &fakeLoginClient{session: testSession()}
	store := storefake.New()
	trail := audit.NewLog()

	manager, err := auth.NewManager(client, store, auth.WithAuditLog(trail))
	require.NoError(t, err)
	require.NoError(t, manager.Login(context.Background(), testEmail, testPassword))

	manager.Logout()

	require.False(t, manager.IsAuthenticated())
	require.Nil(t, manager.CurrentUser())
	require.Empty(t, manager.LastError())
	require.False(t, store.Has())
	require.Equal(t, 1, client.calls, "logout must not touch the network")

	entries := trail.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "auth.logout", entries[0].Action)

	// Logging out again is a no-op and records nothing
	manager.Logout()
	require.Equal(t, 2, trail.Len())
}

func TestManager_CurrentUserReturnsCopy(t *testing.T) {
	manager, err := auth.NewManager(&fakeLoginClient{}, storefake.NewWithSession(testSession()))
	require.NoError(t, err)

	first := manager.CurrentUser()
	first.Email = "tampered@example.com"

	require.Equal(t, testEmail, manager.CurrentUser().Email)
}

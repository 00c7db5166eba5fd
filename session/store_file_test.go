package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neurobridge/dashboard/session"
	"github.com/neurobridge/dashboard/users"
)

func testSession() *session.Session {
	lastLogin := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	return &session.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: users.User{
			ID:            "user-1",
			Email:         "school@oakwood.edu",
			Name:          "James Peterson",
			Role:          users.RoleSchoolAdmin,
			InstitutionID: "inst-1",
			CreatedAt:     time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			LastLoginAt:   &lastLogin,
		},
	}
}

func newStore(t *testing.T) *session.FileStore {
	t.Helper()
	return session.NewFileStore(filepath.Join(t.TempDir(), "auth_session.json"))
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newStore(t)
	original := testSession()

	require.NoError(t, store.Save(original))

	loaded := store.Load()
	require.NotNil(t, loaded)
	require.Equal(t, original, loaded)
}

func TestFileStore_SaveReplacesPriorRecord(t *testing.T) {
	store := newStore(t)

	first := testSession()
	require.NoError(t, store.Save(first))

	second := testSession()
	second.AccessToken = "newer-access-token"
	second.User.Email = "tutor@brighthorizons.edu"
	require.NoError(t, store.Save(second))

	loaded := store.Load()
	require.NotNil(t, loaded)
	require.Equal(t, "newer-access-token", loaded.AccessToken)
	require.Equal(t, "tutor@brighthorizons.edu", loaded.User.Email)
}

func TestFileStore_LoadAbsent(t *testing.T) {
	store := newStore(t)
	require.Nil(t, store.Load())
}

func TestFileStore_LoadMalformed(t *testing.T) {
	t.Run("non-JSON content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "auth_session.json")
		require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

		store := session.NewFileStore(path)
		require.Nil(t, store.Load())
	})

	t.Run("schema mismatch", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "auth_session.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"something":"else"}`), 0o600))

		store := session.NewFileStore(path)
		require.Nil(t, store.Load())
	})

	t.Run("unknown role", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "auth_session.json")
		record := `{"accessToken":"a","refreshToken":"r","user":{"id":"1","email":"a@b.c","name":"A","role":"intruder","createdAt":"2024-01-01T00:00:00Z"}}`
		require.NoError(t, os.WriteFile(path, []byte(record), 0o600))

		store := session.NewFileStore(path)
		require.Nil(t, store.Load())
	})
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(testSession()))
	require.NoError(t, store.Clear())
	require.Nil(t, store.Load())

	// Clearing an already empty store is a no-op, not an error
	require.NoError(t, store.Clear())
	require.Nil(t, store.Load())
}

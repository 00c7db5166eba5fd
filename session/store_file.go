package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var _ Store = (*FileStore)(nil)

// FileStore persists the session as a single JSON file, the process-local
// equivalent of a browser's origin-scoped key-value store. Saves replace the
// file atomically so a crash mid-write leaves either the old record or the
// new one, never a torn record.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at path. The parent directory is
// created lazily on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Load() *Session {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", fs.path).Msg("session record unreadable, treating as absent")
		}
		return nil
	}

	session, err := decodeSession(data)
	if err != nil {
		log.Warn().Err(err).Str("path", fs.path).Msg("discarding malformed session record")
		return nil
	}
	return session
}

func (fs *FileStore) Save(session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "[FileStore.Save] marshal session")
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.Save] create session directory")
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] write session record")
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return errors.Wrap(err, "[FileStore.Save] replace session record")
	}
	return nil
}

func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] remove session record")
	}
	return nil
}

// decodeSession validates as well as unmarshals: a record missing its access
// token or user identity, or carrying an unknown role, is as unusable as
// unparseable JSON and is treated identically.
func decodeSession(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "[decodeSession] unmarshal")
	}
	if s.AccessToken == "" || s.User.ID == "" || s.User.Email == "" {
		return nil, errors.New("[decodeSession] incomplete session record")
	}
	if !s.User.Role.Valid() {
		return nil, errors.Errorf("[decodeSession] unknown role %q", s.User.Role)
	}
	return &s, nil
}

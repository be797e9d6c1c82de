package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const credFileName = "credentials.json"

// TokenKey is the credential key the sign-in flow writes and the resolver
// reads.
const TokenKey = "userToken"

// CredentialStore is keyed persisted storage that survives process restarts.
// Get returns an empty token (and nil error) when no value is stored.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, token string) error
	Clear(ctx context.Context, key string) error
}

type credFile struct {
	Tokens    map[string]string `json:"tokens"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// FileStore persists credentials as a JSON file under the config dir,
// owner-only permissions.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// lazily on the first Set.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, credFileName)
}

func (s *FileStore) load() (credFile, error) {
	var cf credFile
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return credFile{Tokens: map[string]string{}}, nil
		}
		return cf, fmt.Errorf("read credentials: %w", err)
	}
	if err := json.Unmarshal(b, &cf); err != nil {
		return cf, fmt.Errorf("parse credentials: %w", err)
	}
	if cf.Tokens == nil {
		cf.Tokens = map[string]string{}
	}
	return cf, nil
}

func (s *FileStore) save(cf credFile) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	cf.UpdatedAt = time.Now()
	b, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(s.path(), b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	cf, err := s.load()
	if err != nil {
		return "", err
	}
	return cf.Tokens[key], nil
}

func (s *FileStore) Set(_ context.Context, key, token string) error {
	token = stripBearer(strings.TrimSpace(token))
	if token == "" {
		return fmt.Errorf("empty token")
	}
	cf, err := s.load()
	if err != nil {
		return err
	}
	cf.Tokens[key] = token
	return s.save(cf)
}

func (s *FileStore) Clear(_ context.Context, key string) error {
	cf, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := cf.Tokens[key]; !ok {
		return nil
	}
	delete(cf.Tokens, key)
	if len(cf.Tokens) == 0 {
		if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove: %w", err)
		}
		return nil
	}
	return s.save(cf)
}

func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}

package localstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Keys written by the login flow
const (
	KeyIsAuthenticated = "isAuthenticated"
	KeyUserID          = "userId"
	KeyToken           = "token"
	KeyUser            = "user"
)

// Store is a file-backed string key-value document, the terminal client's
// equivalent of browser local storage. Every write is flushed to disk.
//
// Keys are case-insensitive. viper lowercases them, so the file holds
// "userid" and "isauthenticated" rather than KeyUserID and
// KeyIsAuthenticated as written, and either spelling reads the same value.
type Store struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// Open loads the document at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, v: newViper(path)}
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return s, nil
}

// DefaultPath is ~/.secret-santa/session.json, or a relative fallback
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".secret-santa", "session.json")
	}
	return filepath.Join(home, ".secret-santa", "session.json")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	return v
}

// GetItem returns the value stored under key
func (s *Store) GetItem(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// SetItem stores value under key and persists the document
func (s *Store) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
	return s.flush()
}

// SetItems stores several values with a single write
func (s *Store) SetItems(items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, val := range items {
		s.v.Set(k, val)
	}
	return s.flush()
}

// RemoveItem deletes key and persists the document
func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// viper cannot unset a key, so rebuild without it
	settings := s.v.AllSettings()
	s.v = newViper(s.path)
	for k, val := range settings {
		if k != strings.ToLower(key) {
			s.v.Set(k, val)
		}
	}
	return s.flush()
}

// Clear drops every key and removes the file
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = newViper(s.path)
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return s.v.WriteConfigAs(s.path)
}

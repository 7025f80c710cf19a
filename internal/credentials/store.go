// Package credentials persists the Fitbit access token in a dotenv file.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// TokenKey is the dotenv key holding the access token.
const TokenKey = "FITBIT_ACCESS_TOKEN"

var (
	ErrHomeNotFound  = errors.New("home directory not found")
	ErrTokenNotFound = errors.New(TokenKey + " not found in credentials file")
)

// Store reads and writes the token file at Path.
type Store struct {
	Path string
}

// DefaultPath returns ~/.config/fitbit-sleep/credentials.env.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrHomeNotFound
	}
	return filepath.Join(home, ".config", "fitbit-sleep", "credentials.env"), nil
}

// NewStore returns a Store at path, or at DefaultPath when path is empty.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{Path: path}, nil
}

// Load returns the stored token.
func (s *Store) Load() (string, error) {
	values, err := godotenv.Read(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("read credentials %s: %w", s.Path, err)
	}

	token := strings.TrimSpace(values[TokenKey])
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// Save writes token to the file, keeping any other keys already present.
// Parent directories are created as needed and the file is private to the user.
func (s *Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("access token is empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	values, err := godotenv.Read(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read credentials %s: %w", s.Path, err)
		}
		values = map[string]string{}
	}
	values[TokenKey] = token

	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := writePrivate(s.Path, content+"\n"); err != nil {
		return fmt.Errorf("write credentials %s: %w", s.Path, err)
	}
	return nil
}

// writePrivate replaces the file at path with content. The file is mode 0600
// before any content reaches it, including when it already existed.
func writePrivate(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ResolveToken prefers an explicitly configured token and falls back to the
// token file at path (DefaultPath when empty).
func ResolveToken(configured, path string) (string, error) {
	if token := strings.TrimSpace(configured); token != "" {
		return token, nil
	}
	store, err := NewStore(path)
	if err != nil {
		return "", err
	}
	return store.Load()
}

// Package token persists the auth token between console runs, the Go
// equivalent of the browser's localStorage key. Absence of the file at
// startup means "not authenticated".
package token

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reynaldiarya/flashpos/pkg/crypt"
)

// Store reads and writes one token file. When APP_KEY is configured the
// token is AES-GCM encrypted at rest; otherwise it is stored as plain text.
type Store struct {
	path string
}

// NewStore builds a Store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the persisted token, or "" when none is stored or it cannot
// be decrypted. Satisfies api.TokenSource.
func (s *Store) Token() string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}

	stored := strings.TrimSpace(string(raw))
	plain, err := crypt.Decrypt(stored)
	switch {
	case err == nil:
		return plain
	case errors.Is(err, crypt.ErrNoKey):
		return stored // plaintext mode
	default:
		return "" // wrong key or corrupted file, treat as logged out
	}
}

// Exists reports whether a token is persisted.
func (s *Store) Exists() bool {
	return s.Token() != ""
}

// Save persists the token, creating the parent directory if needed.
func (s *Store) Save(tok string) error {
	stored := tok
	enc, err := crypt.Encrypt(tok)
	switch {
	case err == nil:
		stored = enc
	case errors.Is(err, crypt.ErrNoKey):
		// plaintext mode
	default:
		return fmt.Errorf("token: encrypt: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("token: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(stored), 0o600); err != nil {
		return fmt.Errorf("token: write: %w", err)
	}
	return nil
}

// Clear removes the persisted token. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("token: remove: %w", err)
	}
	return nil
}

// Expired reports whether the stored token is a JWT with an exp claim in
// the past. The claim is read without verifying the signature; only the
// backend can actually validate the token; this is a fast local check to
// skip a doomed /me call.
func (s *Store) Expired() bool {
	tok := s.Token()
	if tok == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false // not a JWT, let the backend decide
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

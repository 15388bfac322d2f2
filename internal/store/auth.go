package store

import (
	"context"
	"sync"

	"github.com/reynaldiarya/flashpos/internal/models"
)

// AuthAPI is the slice of the backend auth surface the session needs.
// api.AuthService satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// TokenStorage persists the bearer token between runs. token.Store
// satisfies it.
type TokenStorage interface {
	Token() string
	Save(tok string) error
	Clear() error
}

// Auth is the session store. IsAuthenticated is seeded from the presence
// of a persisted token at construction; the user is loaded lazily by the
// route guard.
type Auth struct {
	mu            sync.Mutex
	api           AuthAPI
	tokens        TokenStorage
	user          *models.User
	loading       bool
	authenticated bool
}

// NewAuth builds the session store.
func NewAuth(api AuthAPI, tokens TokenStorage) *Auth {
	return &Auth{
		api:           api,
		tokens:        tokens,
		authenticated: tokens.Token() != "",
	}
}

// Login requests a token, persists it, and loads the current user. On any
// failure the error propagates and no token is persisted. The loading flag
// is released on every path.
func (s *Auth) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	tok, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.tokens.Save(tok); err != nil {
		return err
	}

	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()

	return s.FetchUser(ctx)
}

// FetchUser replaces the session user wholesale. Failures propagate; the
// route guard treats them as "session invalid".
func (s *Auth) FetchUser(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout asks the backend to invalidate the token, then clears local state
// regardless of whether that call succeeded. The remote error, if any, is
// returned after the local reset.
func (s *Auth) Logout(ctx context.Context) error {
	remoteErr := s.api.Logout(ctx)

	_ = s.tokens.Clear()

	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()

	return remoteErr
}

// User returns the loaded user, nil before FetchUser succeeds.
func (s *Auth) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a session token is held.
func (s *Auth) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Loading reports whether a login is in flight.
func (s *Auth) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

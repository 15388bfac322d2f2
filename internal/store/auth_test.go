package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reynaldiarya/flashpos/internal/models"
)

type fakeAuthAPI struct {
	token    string
	loginErr error

	user  *models.User
	meErr error

	logoutErr   error
	logoutCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*models.User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.user, nil
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type memTokens struct {
	tok string
}

func (m *memTokens) Token() string         { return m.tok }
func (m *memTokens) Save(tok string) error { m.tok = tok; return nil }
func (m *memTokens) Clear() error          { m.tok = ""; return nil }

func TestNewAuthSeedsFromPersistedToken(t *testing.T) {
	assert.False(t, NewAuth(&fakeAuthAPI{}, &memTokens{}).IsAuthenticated())
	assert.True(t, NewAuth(&fakeAuthAPI{}, &memTokens{tok: "abc"}).IsAuthenticated())
}

func TestLoginPersistsTokenAndLoadsUser(t *testing.T) {
	backend := &fakeAuthAPI{token: "tok-123", user: &models.User{ID: 1, Name: "Admin", Email: "admin@flashpos.local"}}
	tokens := &memTokens{}
	session := NewAuth(backend, tokens)

	err := session.Login(context.Background(), "admin@flashpos.local", "password")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", tokens.tok)
	assert.True(t, session.IsAuthenticated())
	require.NotNil(t, session.User())
	assert.Equal(t, "Admin", session.User().Name)
	assert.False(t, session.Loading())
}

func TestLoginFailureLeavesNoToken(t *testing.T) {
	backend := &fakeAuthAPI{loginErr: errors.New("invalid credentials")}
	tokens := &memTokens{}
	session := NewAuth(backend, tokens)

	err := session.Login(context.Background(), "admin@flashpos.local", "wrong")
	require.Error(t, err)

	assert.Empty(t, tokens.tok, "no token may be persisted on a failed login")
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
	assert.False(t, session.Loading())
}

func TestLogoutClearsLocalStateEvenWhenRemoteFails(t *testing.T) {
	backend := &fakeAuthAPI{logoutErr: errors.New("network down")}
	tokens := &memTokens{tok: "tok-123"}
	session := NewAuth(backend, tokens)

	err := session.Logout(context.Background())
	require.Error(t, err, "the remote failure is reported")

	assert.Empty(t, tokens.tok, "local token is cleared regardless")
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
	assert.Equal(t, 1, backend.logoutCalls)
}

func TestGuardRedirectsUnauthenticatedFromProtectedRoute(t *testing.T) {
	guard := NewGuard(NewAuth(&fakeAuthAPI{}, &memTokens{}))

	assert.Equal(t, RedirectLogin, guard.Check(context.Background(), Route{Name: "dashboard", RequiresAuth: true}))
	assert.Equal(t, Proceed, guard.Check(context.Background(), Route{Name: "login", Guest: true}))
}

func TestGuardBouncesAuthenticatedFromGuestRoute(t *testing.T) {
	backend := &fakeAuthAPI{user: &models.User{ID: 1, Name: "Admin"}}
	session := NewAuth(backend, &memTokens{tok: "tok"})
	guard := NewGuard(session)

	assert.Equal(t, RedirectHome, guard.Check(context.Background(), Route{Name: "login", Guest: true}))
}

func TestGuardRefreshesMissingUser(t *testing.T) {
	backend := &fakeAuthAPI{user: &models.User{ID: 1, Name: "Admin"}}
	session := NewAuth(backend, &memTokens{tok: "tok"})
	guard := NewGuard(session)

	require.Nil(t, session.User())
	assert.Equal(t, Proceed, guard.Check(context.Background(), Route{Name: "dashboard", RequiresAuth: true}))
	assert.NotNil(t, session.User(), "the guard loads the user for an authenticated session")
}

func TestGuardLogsOutOnInvalidSession(t *testing.T) {
	backend := &fakeAuthAPI{meErr: errors.New("401 unauthorized")}
	tokens := &memTokens{tok: "expired"}
	session := NewAuth(backend, tokens)
	guard := NewGuard(session)

	decision := guard.Check(context.Background(), Route{Name: "dashboard", RequiresAuth: true})

	assert.Equal(t, RedirectLogin, decision)
	assert.False(t, session.IsAuthenticated(), "a session the backend rejects is torn down")
	assert.Empty(t, tokens.tok)
}

package token

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reynaldiarya/flashpos/config"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "token"))
}

func TestSaveAndTokenRoundTrip(t *testing.T) {
	s := newStore(t)

	assert.Empty(t, s.Token())
	assert.False(t, s.Exists())

	require.NoError(t, s.Save("tok-123"))
	assert.Equal(t, "tok-123", s.Token())
	assert.True(t, s.Exists())
}

func TestClearIsIdempotent(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Clear(), "clearing a missing token is not an error")

	require.NoError(t, s.Save("tok-123"))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	require.NoError(t, s.Clear())
}

func TestSaveEncryptsWhenKeyConfigured(t *testing.T) {
	config.Set("APP_KEY", "unit-test-secret")
	t.Cleanup(func() { config.Set("APP_KEY", "") })

	s := newStore(t)
	require.NoError(t, s.Save("tok-123"))

	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok-123", "the token must not be stored in plain text")

	assert.Equal(t, "tok-123", s.Token())
}

func TestTokenWithWrongKeyMeansLoggedOut(t *testing.T) {
	config.Set("APP_KEY", "first-key")
	t.Cleanup(func() { config.Set("APP_KEY", "") })

	s := newStore(t)
	require.NoError(t, s.Save("tok-123"))

	config.Set("APP_KEY", "second-key")
	assert.Empty(t, s.Token(), "an undecryptable token file reads as logged out")
	assert.False(t, s.Exists())
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return tok
}

func TestExpired(t *testing.T) {
	s := newStore(t)

	assert.False(t, s.Expired(), "no token, nothing to expire")

	require.NoError(t, s.Save("opaque-token"))
	assert.False(t, s.Expired(), "non-JWT tokens are left for the backend to judge")

	require.NoError(t, s.Save(signedJWT(t, time.Now().Add(time.Hour))))
	assert.False(t, s.Expired())

	require.NoError(t, s.Save(signedJWT(t, time.Now().Add(-time.Hour))))
	assert.True(t, s.Expired())
}

package api

import (
	"context"

	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/http"
)

// AuthService covers /login, /me, and /logout.
type AuthService struct {
	c *Client
}

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; persistence belongs to the session store.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}

	out, err := send[struct {
		Token string `json:"token"`
	}](ctx, http.Post(s.c.url("/login")).Body(payload))
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Me returns the authenticated user.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	user, err := send[models.User](ctx, http.Get(s.c.url("/me")).Bearer(s.c.token()))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the token server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return sendNoContent(ctx, http.Post(s.c.url("/logout")).Bearer(s.c.token()))
}

package store

import "context"

// Route describes what a destination screen demands from the session.
type Route struct {
	Name         string
	RequiresAuth bool
	Guest        bool // login screen: bounce already-authenticated users
}

// Decision is the guard's verdict for a navigation.
type Decision int

const (
	Proceed Decision = iota
	RedirectLogin
	RedirectHome
)

// Guard admits or redirects navigations based on session state, mirroring
// the admin console's routing rules.
type Guard struct {
	auth *Auth
}

// NewGuard wraps the session store.
func NewGuard(auth *Auth) *Guard {
	return &Guard{auth: auth}
}

// Check resolves one navigation. When a token is held but no user is
// loaded yet it refreshes the user first; a failed refresh means the
// session is invalid, so the guard logs out and sends the caller to the
// login screen.
func (g *Guard) Check(ctx context.Context, route Route) Decision {
	if g.auth.IsAuthenticated() && g.auth.User() == nil {
		if err := g.auth.FetchUser(ctx); err != nil {
			_ = g.auth.Logout(ctx)
			return RedirectLogin
		}
	}

	if route.RequiresAuth && !g.auth.IsAuthenticated() {
		return RedirectLogin
	}
	if route.Guest && g.auth.IsAuthenticated() {
		return RedirectHome
	}
	return Proceed
}

package devserver

import (
	"net/http"
	"strings"

	"github.com/reynaldiarya/flashpos/pkg/auth"
	"github.com/reynaldiarya/flashpos/pkg/logger"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	s.db.mu.Lock()
	u, ok := s.db.findUser(body.Email)
	s.db.mu.Unlock()

	if !ok || !auth.CheckPassword(u.PasswordHash, body.Password) {
		unauthorized(w)
		return
	}

	tok, err := auth.GenerateToken(u.ID, u.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("devserver: sign token", "error", err)
		fail(w, http.StatusInternalServerError, "Could not issue token")
		return
	}

	success(w, map[string]string{"token": tok})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	tok, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	claims, err := auth.ValidateToken(tok)
	if err != nil {
		unauthorized(w)
		return
	}

	s.db.mu.Lock()
	u, ok := s.db.userByID(claims.UserID)
	s.db.mu.Unlock()

	if !ok {
		unauthorized(w)
		return
	}
	success(w, u.User)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	tok, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.revoke(tok)
	success(w, map[string]string{"message": "Logged out"})
}

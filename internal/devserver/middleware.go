package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/reynaldiarya/flashpos/pkg/auth"
	"github.com/reynaldiarya/flashpos/pkg/logger"
	"github.com/reynaldiarya/flashpos/pkg/reqid"
)

// recoverer turns handler panics into a 500 instead of killing the process.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("devserver: panic recovered", "panic", rec, "path", r.URL.Path)
				fail(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestLogger tags the context logger with the request ID and logs one
// line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger.L.With("request_id", reqid.FromCtx(r.Context()))
		ctx := logger.InjectLogger(r.Context(), log)
		next.ServeHTTP(w, r.WithContext(ctx))

		log.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// requireAuth rejects requests without a valid bearer token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tok, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tok == "" {
			unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(tok)
		if err != nil {
			unauthorized(w)
			return
		}
		if s.revoked(tok) {
			unauthorized(w)
			return
		}

		s.db.mu.Lock()
		_, known := s.db.userByID(claims.UserID)
		s.db.mu.Unlock()
		if !known {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Package devserver is an in-memory stand-in for the real POS backend. It
// serves the exact REST surface the console consumes, so integration tests
// and `flashpos dev` work without any infrastructure.
package devserver

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/reynaldiarya/flashpos/pkg/logger"
	"github.com/reynaldiarya/flashpos/pkg/metrics"
	"github.com/reynaldiarya/flashpos/pkg/reqid"
)

// Server holds the fake database and the revocation list for logged-out
// tokens.
type Server struct {
	db     *data
	router chi.Router

	revMu      sync.Mutex
	revokedSet map[string]struct{}
}

// New builds a seeded dev backend.
func New() *Server {
	s := &Server{
		db:         newData(),
		revokedSet: map[string]struct{}{},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Use(reqid.Middleware())
	r.Use(requestLogger)
	r.Use(recoverer)

	r.Post("/api/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/api/me", s.handleMe)
		r.Post("/api/logout", s.handleLogout)

		r.Route("/api/customers", func(r chi.Router) {
			r.Get("/", s.handleCustomerList)
			r.Get("/options", s.handleCustomerOptions)
			r.Post("/", s.handleCustomerCreate)
			r.Get("/{id}", s.handleCustomerGet)
			r.Put("/{id}", s.handleCustomerUpdate)
			r.Delete("/{id}", s.handleCustomerDelete)
		})

		r.Route("/api/product-categories", func(r chi.Router) {
			r.Get("/", s.handleCategoryList)
			r.Post("/", s.handleCategoryCreate)
			r.Get("/{id}", s.handleCategoryGet)
			r.Put("/{id}", s.handleCategoryUpdate)
			r.Delete("/{id}", s.handleCategoryDelete)
			r.Post("/{id}/image", s.handleCategoryImage)
		})

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", s.handleProductList)
			r.Get("/options", s.handleProductOptions)
			r.Post("/", s.handleProductCreate)
			r.Get("/{id}", s.handleProductGet)
			r.Put("/{id}", s.handleProductUpdate)
			r.Delete("/{id}", s.handleProductDelete)
			r.Post("/{id}/image", s.handleProductImage)
		})

		r.Route("/api/transactions", func(r chi.Router) {
			r.Get("/", s.handleTransactionList)
			r.Post("/", s.handleTransactionCreate)
			r.Get("/{id}", s.handleTransactionGet)
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	s.router = r
}

// Handler exposes the router for httptest in integration tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen blocks serving the dev backend on the given port.
func (s *Server) Listen(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logger.Info("dev backend listening", "addr", addr, "login", DemoEmail, "password", DemoPassword)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) revoke(tok string) {
	s.revMu.Lock()
	defer s.revMu.Unlock()
	s.revokedSet[tok] = struct{}{}
}

func (s *Server) revoked(tok string) bool {
	s.revMu.Lock()
	defer s.revMu.Unlock()
	_, ok := s.revokedSet[tok]
	return ok
}

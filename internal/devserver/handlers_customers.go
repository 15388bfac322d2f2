package devserver

import (
	"net/http"
	"strconv"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/collection"
	"github.com/reynaldiarya/flashpos/pkg/validate"
)

func (s *Server) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	page, limit, search := listParams(r)

	s.db.mu.Lock()
	filtered := collection.Filter(s.db.customers, func(c models.Customer) bool {
		return matches(search, c.Name, c.Phone)
	})
	s.db.mu.Unlock()

	meta := pageMeta(page, limit, len(filtered))
	paginated(w, collection.Paginate(filtered, meta.CurrentPage, meta.PerPage), meta)
}

func (s *Server) handleCustomerOptions(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}

	s.db.mu.Lock()
	filtered := collection.Filter(s.db.customers, func(c models.Customer) bool {
		return matches(search, c.Name, c.Phone)
	})
	s.db.mu.Unlock()

	success(w, collection.Paginate(filtered, 1, limit))
}

func (s *Server) handleCustomerGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.db.mu.Lock()
	c, found := s.db.customerByID(id)
	s.db.mu.Unlock()

	if !found {
		notFound(w)
		return
	}
	success(w, c)
}

func (s *Server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	var in api.CustomerInput
	if err := decode(r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		validationFailed(w, errs)
		return
	}

	s.db.mu.Lock()
	c := models.Customer{ID: s.db.id("customers"), Name: in.Name, Phone: in.Phone}
	s.db.customers = append(s.db.customers, c)
	s.db.mu.Unlock()

	created(w, c)
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var in api.CustomerInput
	if err := decode(r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		validationFailed(w, errs)
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.customers {
		if s.db.customers[i].ID == id {
			s.db.customers[i].Name = in.Name
			s.db.customers[i].Phone = in.Phone
			success(w, s.db.customers[i])
			return
		}
	}
	notFound(w)
}

func (s *Server) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, found := s.db.customerByID(id); !found {
		notFound(w)
		return
	}
	s.db.customers = collection.Reject(s.db.customers, func(c models.Customer) bool {
		return c.ID == id
	})
	success(w, map[string]string{"message": "Deleted"})
}

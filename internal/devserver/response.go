package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/reynaldiarya/flashpos/internal/models"
)

// The dev backend speaks the same envelope the console consumes:
// `{data: …}` on success, `{data: {items, pagination}}` for lists, and
// `{message, errors}` on failure.

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

func created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

func fail(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

func validationFailed(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	})
}

func paginated(w http.ResponseWriter, items interface{}, p models.Pagination) {
	success(w, map[string]interface{}{
		"items":      items,
		"pagination": p,
	})
}

func unauthorized(w http.ResponseWriter) {
	fail(w, http.StatusUnauthorized, "Unauthorized")
}

func notFound(w http.ResponseWriter) {
	fail(w, http.StatusNotFound, "Not found")
}

// paginate slices one page out of total and builds the envelope metadata.
func pageMeta(page, limit, total int) models.Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	last := (total + limit - 1) / limit
	if last < 1 {
		last = 1
	}
	if page > last {
		page = last
	}

	from, to := 0, 0
	if total > 0 {
		from = (page-1)*limit + 1
		to = page * limit
		if to > total {
			to = total
		}
	}

	return models.Pagination{
		CurrentPage: page,
		LastPage:    last,
		PerPage:     limit,
		Total:       total,
		From:        from,
		To:          to,
	}
}

package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// listParams reads the shared page/limit/search query parameters.
func listParams(r *http.Request) (page, limit int, search string) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}
	return page, limit, r.URL.Query().Get("search")
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// decode binds the JSON request body into dest.
func decode(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

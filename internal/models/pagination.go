package models

// Pagination is the envelope metadata the backend returns alongside every
// list query. It is mirrored verbatim into store state.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Package store holds the console's in-memory state: paginated lists, the
// POS cart, and the auth session. Stores own their state; UI code reads it
// through accessors and mutates it only through actions.
package store

import (
	"context"
	"sync"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/event"
	"github.com/reynaldiarya/flashpos/pkg/logger"
)

// Fetcher loads one page of a resource from the backend.
type Fetcher[T any] func(ctx context.Context, q api.ListQuery) (*api.ListResult[T], error)

// List is the paginated, searchable collection state shared by customers,
// categories, products, and transactions.
//
// Fetch failures are logged and swallowed: the previous items and
// pagination stay visible (stale but consistent) and the loading flag is
// always released. The event.FetchFailed hook observes failures without
// changing that default.
type List[T any] struct {
	mu       sync.Mutex
	resource string
	fetch    Fetcher[T]
	decorate func(q *api.ListQuery) // optional extra params (product category filter)

	items      []T
	pagination models.Pagination
	page       int
	limit      int
	search     string
	loading    bool

	// fetchSeq orders overlapping fetches; a response is committed only if
	// no newer fetch has started, so out-of-order replies can never pair
	// one request's items with another's pagination.
	fetchSeq uint64
}

// NewList builds a list store for a resource. The resource name only shows
// up in logs and events.
func NewList[T any](resource string, fetch Fetcher[T]) *List[T] {
	return &List[T]{
		resource:   resource,
		fetch:      fetch,
		pagination: models.Pagination{CurrentPage: 1, LastPage: 1, PerPage: 10},
		page:       1,
		limit:      10,
	}
}

// Fetch loads the current page, limit, and search from the backend and
// replaces items and pagination wholesale. On failure the previous state is
// kept and the error is swallowed after logging.
func (s *List[T]) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.fetchSeq++
	seq := s.fetchSeq

	q := api.ListQuery{Page: s.page, Limit: s.limit, Search: s.search}
	if s.decorate != nil {
		s.decorate(&q)
	}
	s.mu.Unlock()

	res, err := s.fetch(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		return // a newer fetch owns the state (and the loading flag) now
	}
	s.loading = false

	if err != nil {
		logger.Error("failed to fetch "+s.resource, "error", err)
		event.Fire(event.FetchFailed, event.FetchFailedPayload{Resource: s.resource, Err: err})
		return
	}

	s.items = res.Items
	s.pagination = res.Pagination
}

// SetPage jumps to page n and refetches. No bounds check; use NextPage and
// PrevPage for bounded movement.
func (s *List[T]) SetPage(ctx context.Context, n int) {
	s.mu.Lock()
	s.page = n
	s.mu.Unlock()
	s.Fetch(ctx)
}

// SetLimit changes the page size. Changing it always returns to page 1.
func (s *List[T]) SetLimit(ctx context.Context, n int) {
	s.mu.Lock()
	s.limit = n
	s.page = 1
	s.mu.Unlock()
	s.Fetch(ctx)
}

// SetSearch updates the search term and refetches.
func (s *List[T]) SetSearch(ctx context.Context, term string) {
	s.mu.Lock()
	s.search = term
	s.mu.Unlock()
	s.Fetch(ctx)
}

// NextPage advances one page unless the last fetched page was already the
// last one; then it is a no-op and no fetch is issued.
func (s *List[T]) NextPage(ctx context.Context) {
	s.mu.Lock()
	if s.pagination.CurrentPage >= s.pagination.LastPage {
		s.mu.Unlock()
		return
	}
	s.page = s.pagination.CurrentPage + 1
	s.mu.Unlock()
	s.Fetch(ctx)
}

// PrevPage retreats one page unless the last fetched page was the first;
// then it is a no-op and no fetch is issued.
func (s *List[T]) PrevPage(ctx context.Context) {
	s.mu.Lock()
	if s.pagination.CurrentPage <= 1 {
		s.mu.Unlock()
		return
	}
	s.page = s.pagination.CurrentPage - 1
	s.mu.Unlock()
	s.Fetch(ctx)
}

// Items returns the last fetched page.
func (s *List[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Pagination returns the last fetched pagination envelope.
func (s *List[T]) Pagination() models.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// CurrentPage is the page the backend last confirmed.
func (s *List[T]) CurrentPage() int {
	p := s.Pagination().CurrentPage
	if p < 1 {
		return 1
	}
	return p
}

// TotalPages is the last confirmed page count.
func (s *List[T]) TotalPages() int {
	p := s.Pagination().LastPage
	if p < 1 {
		return 1
	}
	return p
}

// Page is the requested page (may differ from CurrentPage until the next
// fetch commits).
func (s *List[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Limit is the requested page size.
func (s *List[T]) Limit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit
}

// Search is the current search term.
func (s *List[T]) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Loading reports whether a fetch is in flight.
func (s *List[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

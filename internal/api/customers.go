package api

import (
	"context"
	"fmt"

	"github.com/reynaldiarya/flashpos/config"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/cache"
	"github.com/reynaldiarya/flashpos/pkg/http"
)

// CustomerInput is the create/update payload for a customer.
type CustomerInput struct {
	Name  string `json:"name"  validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"required,min=6,max=20"`
}

// CustomersService covers the /customers resource.
type CustomersService struct {
	c *Client
}

// List returns one page of customers.
func (s *CustomersService) List(ctx context.Context, q ListQuery) (*ListResult[models.Customer], error) {
	req := q.apply(http.Get(s.c.url("/customers")).Bearer(s.c.token()))
	out, err := send[ListResult[models.Customer]](ctx, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Options returns a lightweight customer list for pickers. Results are
// served from the options cache when one is connected.
func (s *CustomersService) Options(ctx context.Context, search string, limit int) ([]models.Customer, error) {
	key := fmt.Sprintf("flashpos:options:customers:%s:%d", search, limit)

	var cached []models.Customer
	if cache.Get(key, &cached) {
		return cached, nil
	}

	req := http.Get(s.c.url("/customers/options")).Bearer(s.c.token()).Query("search", search)
	if limit > 0 {
		req.QueryInt("limit", limit)
	}

	out, err := send[[]models.Customer](ctx, req)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(key, out, config.CacheTTL())
	return out, nil
}

// Get returns one customer by id.
func (s *CustomersService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	out, err := send[models.Customer](ctx, http.Get(s.c.url(fmt.Sprintf("/customers/%d", id))).Bearer(s.c.token()))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a customer.
func (s *CustomersService) Create(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	out, err := send[models.Customer](ctx, http.Post(s.c.url("/customers")).Bearer(s.c.token()).Body(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a customer's editable fields.
func (s *CustomersService) Update(ctx context.Context, id int64, in CustomerInput) (*models.Customer, error) {
	out, err := send[models.Customer](ctx, http.Put(s.c.url(fmt.Sprintf("/customers/%d", id))).Bearer(s.c.token()).Body(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a customer.
func (s *CustomersService) Delete(ctx context.Context, id int64) error {
	return sendNoContent(ctx, http.Delete(s.c.url(fmt.Sprintf("/customers/%d", id))).Bearer(s.c.token()))
}

// Package api is the typed client for the POS backend's REST surface.
//
// Every operation is a thin builder over pkg/http: it attaches the bearer
// token, hits one endpoint, and unwraps the `{data: …}` success envelope.
// All pricing, stock, and transaction arithmetic stays on the backend.
package api

import (
	"context"
	"fmt"

	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/http"
)

// TokenSource supplies the current auth token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client bundles the per-resource services against one backend.
type Client struct {
	base   string
	tokens TokenSource

	Auth              *AuthService
	Customers         *CustomersService
	ProductCategories *ProductCategoriesService
	Products          *ProductsService
	Transactions      *TransactionsService
}

// New builds a Client for the backend at baseURL (no trailing slash).
// tokens may be nil for an unauthenticated client.
func New(baseURL string, tokens TokenSource) *Client {
	c := &Client{base: baseURL, tokens: tokens}
	c.Auth = &AuthService{c: c}
	c.Customers = &CustomersService{c: c}
	c.ProductCategories = &ProductCategoriesService{c: c}
	c.Products = &ProductsService{c: c}
	c.Transactions = &TransactionsService{c: c}
	return c
}

// WithTokens returns a new Client against the same backend bound to a
// different token source. Used after login, when a token exists that the
// persistent store does not hold yet.
func (c *Client) WithTokens(tokens TokenSource) *Client {
	return New(c.base, tokens)
}

func (c *Client) url(path string) string {
	return c.base + path
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// ListQuery carries the shared list parameters. Zero values are omitted
// from the query string, so the backend's defaults apply.
type ListQuery struct {
	Page       int
	Limit      int
	Search     string
	CategoryID int64 // products only
}

func (q ListQuery) apply(r *http.Request) *http.Request {
	if q.Page > 0 {
		r.QueryInt("page", q.Page)
	}
	if q.Limit > 0 {
		r.QueryInt("limit", q.Limit)
	}
	r.Query("search", q.Search)
	if q.CategoryID > 0 {
		r.Query("product_category_id", fmt.Sprintf("%d", q.CategoryID))
	}
	return r
}

// ListResult is the `{items, pagination}` payload of every list endpoint.
type ListResult[T any] struct {
	Items      []T               `json:"items"`
	Pagination models.Pagination `json:"pagination"`
}

// dataEnvelope is the `{data: …}` success wrapper.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// send executes req and unwraps the data envelope into a T.
func send[T any](ctx context.Context, req *http.Request) (T, error) {
	var zero T

	resp, err := req.Send(ctx)
	if err != nil {
		return zero, err
	}
	if !resp.OK() {
		return zero, errorFrom(resp)
	}

	var env dataEnvelope[T]
	if err := resp.JSON(&env); err != nil {
		return zero, err
	}
	return env.Data, nil
}

// sendNoContent executes req and discards any payload.
func sendNoContent(ctx context.Context, req *http.Request) error {
	resp, err := req.Send(ctx)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return errorFrom(resp)
	}
	return nil
}

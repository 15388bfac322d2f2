package api

import (
	"context"
	"fmt"

	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/http"
)

// TransactionItemInput is one sold line in a checkout request. Prices are
// never sent; the backend prices items at transaction time.
type TransactionItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// TransactionInput is the checkout payload.
type TransactionInput struct {
	CustomerID int64                  `json:"customer_id"`
	Items      []TransactionItemInput `json:"items"`
}

// TransactionsService covers the /transactions resource. Transactions are
// append-only: list, get, create.
type TransactionsService struct {
	c *Client
}

// List returns one page of transactions.
func (s *TransactionsService) List(ctx context.Context, q ListQuery) (*ListResult[models.Transaction], error) {
	req := q.apply(http.Get(s.c.url("/transactions")).Bearer(s.c.token()))
	out, err := send[ListResult[models.Transaction]](ctx, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one transaction with its items.
func (s *TransactionsService) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	out, err := send[models.Transaction](ctx, http.Get(s.c.url(fmt.Sprintf("/transactions/%d", id))).Bearer(s.c.token()))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a sale and returns the priced, coded transaction.
func (s *TransactionsService) Create(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	out, err := send[models.Transaction](ctx, http.Post(s.c.url("/transactions")).Bearer(s.c.token()).Body(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

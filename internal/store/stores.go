package store

import (
	"context"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
)

// Per-resource constructors. Each store instance is independent, so tests
// and screens can build their own.

func NewCustomerList(customers *api.CustomersService) *List[models.Customer] {
	return NewList("customers", func(ctx context.Context, q api.ListQuery) (*api.ListResult[models.Customer], error) {
		return customers.List(ctx, q)
	})
}

func NewCategoryList(categories *api.ProductCategoriesService) *List[models.ProductCategory] {
	return NewList("product categories", func(ctx context.Context, q api.ListQuery) (*api.ListResult[models.ProductCategory], error) {
		return categories.List(ctx, q)
	})
}

func NewTransactionList(transactions *api.TransactionsService) *List[models.Transaction] {
	return NewList("transactions", func(ctx context.Context, q api.ListQuery) (*api.ListResult[models.Transaction], error) {
		return transactions.List(ctx, q)
	})
}

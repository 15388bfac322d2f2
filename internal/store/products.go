package store

import (
	"context"
	"sync"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
)

// ProductList is the product list store: the generic List plus the category
// filter the product grid exposes.
type ProductList struct {
	*List[models.Product]

	mu         sync.Mutex
	categoryID int64 // 0 = all categories
}

// NewProductList builds the product store on top of the products service.
func NewProductList(products *api.ProductsService) *ProductList {
	p := &ProductList{}
	p.List = NewList("products", func(ctx context.Context, q api.ListQuery) (*api.ListResult[models.Product], error) {
		return products.List(ctx, q)
	})
	p.List.decorate = func(q *api.ListQuery) {
		q.CategoryID = p.CategoryID()
	}
	return p
}

// SetCategoryID narrows the list to one category (0 clears the filter),
// returns to page 1, and refetches.
func (p *ProductList) SetCategoryID(ctx context.Context, id int64) {
	p.mu.Lock()
	p.categoryID = id
	p.mu.Unlock()

	p.List.mu.Lock()
	p.List.page = 1
	p.List.mu.Unlock()
	p.Fetch(ctx)
}

// CategoryID returns the active category filter, 0 when unset.
func (p *ProductList) CategoryID() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.categoryID
}

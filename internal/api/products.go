package api

import (
	"context"
	"fmt"
	"io"

	"github.com/reynaldiarya/flashpos/config"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/cache"
	"github.com/reynaldiarya/flashpos/pkg/http"
)

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	ProductCategoryID int64  `json:"product_category_id" validate:"required,gt=0"`
	Name              string `json:"name"                validate:"required,min=2,max=100"`
	Price             int64  `json:"price"               validate:"required,gt=0"`
	Stock             int64  `json:"stock"               validate:"gte=0"`
}

// ProductsService covers the /products resource.
type ProductsService struct {
	c *Client
}

// List returns one page of products. q.CategoryID narrows to one category.
func (s *ProductsService) List(ctx context.Context, q ListQuery) (*ListResult[models.Product], error) {
	req := q.apply(http.Get(s.c.url("/products")).Bearer(s.c.token()))
	out, err := send[ListResult[models.Product]](ctx, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Options returns a lightweight product list for the POS picker. Results
// are served from the options cache when one is connected.
func (s *ProductsService) Options(ctx context.Context, search string, limit int, categoryID int64) ([]models.Product, error) {
	key := fmt.Sprintf("flashpos:options:products:%s:%d:%d", search, limit, categoryID)

	var cached []models.Product
	if cache.Get(key, &cached) {
		return cached, nil
	}

	req := http.Get(s.c.url("/products/options")).Bearer(s.c.token()).Query("search", search)
	if limit > 0 {
		req.QueryInt("limit", limit)
	}
	if categoryID > 0 {
		req.Query("product_category_id", fmt.Sprintf("%d", categoryID))
	}

	out, err := send[[]models.Product](ctx, req)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(key, out, config.CacheTTL())
	return out, nil
}

// Get returns one product by id.
func (s *ProductsService) Get(ctx context.Context, id int64) (*models.Product, error) {
	out, err := send[models.Product](ctx, http.Get(s.c.url(fmt.Sprintf("/products/%d", id))).Bearer(s.c.token()))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a product.
func (s *ProductsService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	out, err := send[models.Product](ctx, http.Post(s.c.url("/products")).Bearer(s.c.token()).Body(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a product's editable fields.
func (s *ProductsService) Update(ctx context.Context, id int64, in ProductInput) (*models.Product, error) {
	out, err := send[models.Product](ctx, http.Put(s.c.url(fmt.Sprintf("/products/%d", id))).Bearer(s.c.token()).Body(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImage attaches an image to the product via multipart form data.
func (s *ProductsService) UploadImage(ctx context.Context, id int64, filename string, file io.Reader) (*models.Product, error) {
	req := http.Post(s.c.url(fmt.Sprintf("/products/%d/image", id))).
		Bearer(s.c.token()).
		File("image", filename, file)

	out, err := send[models.Product](ctx, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product.
func (s *ProductsService) Delete(ctx context.Context, id int64) error {
	return sendNoContent(ctx, http.Delete(s.c.url(fmt.Sprintf("/products/%d", id))).Bearer(s.c.token()))
}

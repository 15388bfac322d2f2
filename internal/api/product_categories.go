package api

import (
	"context"
	"fmt"
	"io"

	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/http"
)

// ProductCategoryInput is the create/update payload for a category.
type ProductCategoryInput struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"nullable,max=500"`
}

// ProductCategoriesService covers the /product-categories resource.
type ProductCategoriesService struct {
	c *Client
}

// List returns one page of categories.
func (s *ProductCategoriesService) List(ctx context.Context, q ListQuery) (*ListResult[models.ProductCategory], error) {
	req := q.apply(http.Get(s.c.url("/product-categories")).Bearer(s.c.token()))
	out, err := send[ListResult[models.ProductCategory]](ctx, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one category by id.
func (s *ProductCategoriesService) Get(ctx context.Context, id int64) (*models.ProductCategory, error) {
	out, err := send[models.ProductCategory](ctx, http.Get(s.c.url(fmt.Sprintf("/product-categories/%d", id))).Bearer(s.c.token()))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a category.
func (s *ProductCategoriesService) Create(ctx context.Context, in ProductCategoryInput) (*models.ProductCategory, error) {
	out, err := send[models.ProductCategory](ctx, http.Post(s.c.url("/product-categories")).Bearer(s.c.token()).Body(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a category's editable fields.
func (s *ProductCategoriesService) Update(ctx context.Context, id int64, in ProductCategoryInput) (*models.ProductCategory, error) {
	out, err := send[models.ProductCategory](ctx, http.Put(s.c.url(fmt.Sprintf("/product-categories/%d", id))).Bearer(s.c.token()).Body(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImage attaches an image to the category via multipart form data.
func (s *ProductCategoriesService) UploadImage(ctx context.Context, id int64, filename string, file io.Reader) (*models.ProductCategory, error) {
	req := http.Post(s.c.url(fmt.Sprintf("/product-categories/%d/image", id))).
		Bearer(s.c.token()).
		File("image", filename, file)

	out, err := send[models.ProductCategory](ctx, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a category.
func (s *ProductCategoriesService) Delete(ctx context.Context, id int64) error {
	return sendNoContent(ctx, http.Delete(s.c.url(fmt.Sprintf("/product-categories/%d", id))).Bearer(s.c.token()))
}

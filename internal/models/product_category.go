package models

// ProductCategory groups products. Image is a backend-relative path and may
// be empty when no image was uploaded.
type ProductCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

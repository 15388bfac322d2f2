package models

// Product is a sellable item. Price is in integer currency units (e.g.
// rupiah); the backend is the pricing authority at transaction time.
type Product struct {
	ID                int64            `json:"id"`
	ProductCategoryID int64            `json:"product_category_id"`
	Name              string           `json:"name"`
	Price             int64            `json:"price"`
	Stock             int64            `json:"stock"`
	Image             string           `json:"image,omitempty"`
	Category          *ProductCategory `json:"category,omitempty"`
}

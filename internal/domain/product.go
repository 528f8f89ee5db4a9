package domain

import "time"

type ProductCategory string

const (
	CategoryFans        ProductCategory = "fans"
	CategoryAppliances  ProductCategory = "appliances"
	CategoryAccessories ProductCategory = "accessories"
	CategorySpareParts  ProductCategory = "spare-parts"
)

// ProductFilter narrows product listings. A category of "" or "all" means
// every category.
type ProductFilter struct {
	Category     string
	ActiveOnly   bool
	FeaturedOnly bool
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	Brand       string          `json:"brand,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Stock       int             `json:"stock"`
	IsFeatured  bool            `json:"is_featured"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

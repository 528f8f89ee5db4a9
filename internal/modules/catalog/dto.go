package catalog

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Brand       string  `json:"brand"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock" validate:"gte=0"`
	IsFeatured  bool    `json:"is_featured"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
	ImageURL    *string  `json:"image_url"`
	Stock       *int     `json:"stock"`
	IsFeatured  *bool    `json:"is_featured"`
	IsActive    *bool    `json:"is_active"`
}

type CreateServiceRateRequest struct {
	DeviceType  string  `json:"device_type" validate:"required"`
	ServiceName string  `json:"service_name" validate:"required"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
	Description string  `json:"description"`
}

type UpdateServiceRateRequest struct {
	DeviceType  *string  `json:"device_type"`
	ServiceName *string  `json:"service_name"`
	BasePrice   *float64 `json:"base_price"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

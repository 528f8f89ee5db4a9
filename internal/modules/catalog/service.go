package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"
)

// DefaultLowStockThreshold is used when the caller does not supply one.
const DefaultLowStockThreshold = 5

type Service struct {
	products ProductRepository
	rates    ServiceRateRepository
	settings SettingRepository
}

func NewService(products ProductRepository, rates ServiceRateRepository, settings SettingRepository) *Service {
	return &Service{
		products: products,
		rates:    rates,
		settings: settings,
	}
}

func validCategory(c string) bool {
	switch domain.ProductCategory(c) {
	case domain.CategoryFans, domain.CategoryAppliances, domain.CategoryAccessories, domain.CategorySpareParts:
		return true
	}
	return false
}

func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}
	if !validCategory(req.Category) {
		return nil, ErrValidation
	}

	p := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.ProductCategory(req.Category),
		Brand:       req.Brand,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsFeatured:  req.IsFeatured,
		IsActive:    true,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListProducts serves both surfaces; the public catalog passes activeOnly.
func (s *Service) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	if f.Category != "" && f.Category != "all" && !validCategory(f.Category) {
		return nil, ErrValidation
	}
	return s.products.List(ctx, f)
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*domain.Product, error) {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		patch["price"] = *req.Price
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return nil, ErrValidation
		}
		patch["category"] = *req.Category
	}
	if req.Brand != nil {
		patch["brand"] = *req.Brand
	}
	if req.ImageURL != nil {
		patch["image_url"] = *req.ImageURL
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, ErrValidation
		}
		patch["stock"] = *req.Stock
	}
	if req.IsFeatured != nil {
		patch["is_featured"] = *req.IsFeatured
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	if len(patch) == 0 {
		return s.GetProduct(ctx, id)
	}

	p, err := s.products.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *Service) ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.products.ListLowStock(ctx, threshold)
}

func (s *Service) CreateServiceRate(ctx context.Context, req CreateServiceRateRequest) (*domain.ServiceRate, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	r := &domain.ServiceRate{
		DeviceType:  req.DeviceType,
		ServiceName: req.ServiceName,
		BasePrice:   req.BasePrice,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.rates.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListServiceRates(ctx context.Context, activeOnly bool) ([]domain.ServiceRate, error) {
	return s.rates.List(ctx, activeOnly)
}

func (s *Service) UpdateServiceRate(ctx context.Context, id int64, req UpdateServiceRateRequest) (*domain.ServiceRate, error) {
	patch := map[string]any{}
	if req.DeviceType != nil {
		patch["device_type"] = *req.DeviceType
	}
	if req.ServiceName != nil {
		patch["service_name"] = *req.ServiceName
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, ErrValidation
		}
		patch["base_price"] = *req.BasePrice
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	if len(patch) == 0 {
		return nil, ErrValidation
	}

	r, err := s.rates.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) DeleteServiceRate(ctx context.Context, id int64) error {
	return s.rates.Delete(ctx, id)
}

// Settings returns the shop configuration as a flat key/value map.
func (s *Service) Settings(ctx context.Context) (map[string]string, error) {
	rows, err := s.settings.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (s *Service) SetSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrValidation
	}
	err := s.settings.SetValue(ctx, key, value)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

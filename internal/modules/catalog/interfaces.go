package catalog

import (
	"context"

	"repairshop/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error)
}

type ServiceRateRepository interface {
	Create(ctx context.Context, s *domain.ServiceRate) error
	List(ctx context.Context, activeOnly bool) ([]domain.ServiceRate, error)
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.ServiceRate, error)
	Delete(ctx context.Context, id int64) error
}

type SettingRepository interface {
	List(ctx context.Context) ([]domain.Setting, error)
	SetValue(ctx context.Context, key, value string) error
	Upsert(ctx context.Context, key, value, description string) error
}

package warranty

import (
	"context"
	"time"

	"repairshop/internal/domain"
)

// WarrantyRepository defines the store operations the warranty service needs.
// IncrementClaims must be an atomic store-side increment.
type WarrantyRepository interface {
	Create(ctx context.Context, w *domain.Warranty) error
	GetByID(ctx context.Context, id int64) (*domain.Warranty, error)
	List(ctx context.Context) ([]domain.Warranty, error)
	ListActive(ctx context.Context, today time.Time) ([]domain.Warranty, error)
	ListExpiring(ctx context.Context, today, until time.Time) ([]domain.Warranty, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.Warranty, error)
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.Warranty, error)
	UpdateStatus(ctx context.Context, id int64, status domain.WarrantyStatus) error
	IncrementClaims(ctx context.Context, warrantyID int64) error
	CreateClaim(ctx context.Context, c *domain.WarrantyClaim) error
	ListClaims(ctx context.Context, warrantyID int64) ([]domain.WarrantyClaim, error)
}

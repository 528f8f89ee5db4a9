package customer

import (
	"context"

	"repairshop/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	FindByPhone(ctx context.Context, phone string) (*domain.Customer, error)
}

// BookingSource supplies the raw bookings the fallback aggregation runs over.
type BookingSource interface {
	List(ctx context.Context, status string) ([]domain.Booking, error)
}

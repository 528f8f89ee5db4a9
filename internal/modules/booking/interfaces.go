package booking

import (
	"context"

	"repairshop/internal/domain"
)

// BookingRepository defines the store operations the booking service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, status string) ([]domain.Booking, error)
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// EventSink receives fire-and-forget notifications about new bookings.
type EventSink interface {
	BookingCreated(b *domain.Booking)
}

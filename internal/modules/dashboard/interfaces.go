package dashboard

import (
	"context"
	"time"

	"repairshop/internal/domain"
)

type BookingSource interface {
	Recent(ctx context.Context, limit int) ([]domain.Booking, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Booking, error)
	CountByDeviceType(ctx context.Context, limit int) ([]domain.PopularDevice, error)
}

type IntakeCounter interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type StockSource interface {
	ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error)
}

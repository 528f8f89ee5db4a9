package dashboard

import (
	"context"
	"time"

	"repairshop/internal/domain"
)

const (
	defaultStatsDays    = 30
	defaultRecentLimit  = 5
	defaultPopularLimit = 5
	lowStockThreshold   = 5
)

type Service struct {
	bookings BookingSource
	intakes  IntakeCounter
	stock    StockSource
	now      func() time.Time
}

func NewService(bookings BookingSource, intakes IntakeCounter, stock StockSource) *Service {
	return &Service{
		bookings: bookings,
		intakes:  intakes,
		stock:    stock,
		now:      time.Now,
	}
}

// BookingStats aggregates bookings created in the trailing window. Revenue
// and the average come from completed bookings with a recorded cost only.
func (s *Service) BookingStats(ctx context.Context, daysBack int) (*domain.BookingStats, error) {
	if daysBack <= 0 {
		daysBack = defaultStatsDays
	}
	since := s.now().AddDate(0, 0, -daysBack)

	bookings, err := s.bookings.ListCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	stats := &domain.BookingStats{}
	var billedCompleted int64
	for _, b := range bookings {
		stats.TotalBookings++
		switch b.Status {
		case domain.BookingPending:
			stats.PendingBookings++
		case domain.BookingCompleted:
			stats.CompletedBookings++
			if b.ActualCost > 0 {
				stats.TotalRevenue += b.ActualCost
				billedCompleted++
			}
		}
	}
	if billedCompleted > 0 {
		stats.AvgRepairCost = stats.TotalRevenue / float64(billedCompleted)
	}
	return stats, nil
}

func (s *Service) PopularDevices(ctx context.Context, limit int) ([]domain.PopularDevice, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	return s.bookings.CountByDeviceType(ctx, limit)
}

func (s *Service) RecentBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.bookings.Recent(ctx, limit)
}

// TodayIntakeCount counts walk-in devices registered since local midnight.
func (s *Service) TodayIntakeCount(ctx context.Context) (int64, error) {
	now := s.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.intakes.CountCreatedBetween(ctx, from, from.AddDate(0, 0, 1))
}

func (s *Service) LowStock(ctx context.Context) ([]domain.Product, error) {
	return s.stock.ListLowStock(ctx, lowStockThreshold)
}

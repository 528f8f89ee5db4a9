package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"repairshop/internal/domain"
)

// Mock repositories
type MockBookingSource struct {
	mock.Mock
}

func (m *MockBookingSource) Recent(ctx context.Context, limit int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingSource) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingSource) CountByDeviceType(ctx context.Context, limit int) ([]domain.PopularDevice, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularDevice), args.Error(1)
}

type MockIntakeCounter struct {
	mock.Mock
}

func (m *MockIntakeCounter) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockStockSource struct {
	mock.Mock
}

func (m *MockStockSource) ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func TestService_BookingStats_AveragesBilledCompletedOnly(t *testing.T) {
	mockBookings := new(MockBookingSource)
	mockBookings.On("ListCreatedSince", mock.Anything, mock.Anything).Return([]domain.Booking{
		{Status: domain.BookingCompleted, ActualCost: 500},
		{Status: domain.BookingCompleted, ActualCost: 700},
		{Status: domain.BookingCompleted, ActualCost: 0}, // completed but never billed
		{Status: domain.BookingPending},
		{Status: domain.BookingCancelled},
	}, nil)

	service := NewService(mockBookings, new(MockIntakeCounter), new(MockStockSource))

	stats, err := service.BookingStats(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.PendingBookings)
	assert.Equal(t, int64(3), stats.CompletedBookings)
	assert.Equal(t, 1200.0, stats.TotalRevenue)
	assert.Equal(t, 600.0, stats.AvgRepairCost, "unbilled completions do not drag the average")
}

func TestService_BookingStats_EmptyWindow(t *testing.T) {
	mockBookings := new(MockBookingSource)
	mockBookings.On("ListCreatedSince", mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)

	service := NewService(mockBookings, new(MockIntakeCounter), new(MockStockSource))

	stats, err := service.BookingStats(context.Background(), 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalBookings)
	assert.Equal(t, 0.0, stats.AvgRepairCost)
}

func TestService_TodayIntakeCount_MidnightBounds(t *testing.T) {
	mockIntakes := new(MockIntakeCounter)
	mockIntakes.On("CountCreatedBetween", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool {
			return from.Hour() == 0 && from.Minute() == 0 && from.Second() == 0
		}),
		mock.MatchedBy(func(to time.Time) bool {
			return to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0
		}),
	).Return(int64(6), nil)

	service := NewService(new(MockBookingSource), mockIntakes, new(MockStockSource))

	n, err := service.TodayIntakeCount(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(6), n)
	mockIntakes.AssertExpectations(t)
}

func TestService_PopularDevices_DefaultLimit(t *testing.T) {
	mockBookings := new(MockBookingSource)
	mockBookings.On("CountByDeviceType", mock.Anything, defaultPopularLimit).
		Return([]domain.PopularDevice{{DeviceType: "Ceiling Fan", RepairCount: 12}}, nil)

	service := NewService(mockBookings, new(MockIntakeCounter), new(MockStockSource))

	devices, err := service.PopularDevices(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, devices, 1)
	mockBookings.AssertExpectations(t)
}

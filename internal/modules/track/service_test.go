package track

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"repairshop/internal/domain"
)

// Mock repositories
type MockDeviceSearcher struct {
	mock.Mock
}

func (m *MockDeviceSearcher) SearchBySerial(ctx context.Context, serial string) ([]domain.DeviceEntry, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeviceEntry), args.Error(1)
}

func (m *MockDeviceSearcher) ListByMobile(ctx context.Context, mobile string) ([]domain.DeviceEntry, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeviceEntry), args.Error(1)
}

type MockBookingFinder struct {
	mock.Mock
}

func (m *MockBookingFinder) ListByPhone(ctx context.Context, phone string) ([]domain.Booking, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockWarrantyFinder struct {
	mock.Mock
}

func (m *MockWarrantyFinder) ListByPhone(ctx context.Context, phone string) ([]domain.Warranty, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warranty), args.Error(1)
}

func TestStatusStep(t *testing.T) {
	assert.Equal(t, 1, StatusStep(domain.DeviceReceived))
	assert.Equal(t, 2, StatusStep(domain.DeviceInRepair))
	assert.Equal(t, 3, StatusStep(domain.DeviceReady))
	assert.Equal(t, 4, StatusStep(domain.DeviceDelivered))
	assert.Equal(t, 0, StatusStep(domain.DeviceCancelled))
}

func TestService_Lookup_SerialMode(t *testing.T) {
	mockDevices := new(MockDeviceSearcher)
	mockBookings := new(MockBookingFinder)
	mockWarranties := new(MockWarrantyFinder)

	mockDevices.On("SearchBySerial", mock.Anything, "RE2608").Return([]domain.DeviceEntry{
		{ID: 1, SerialNumber: "RE260829001", Status: domain.DeviceInRepair},
	}, nil)

	service := NewService(mockDevices, mockBookings, mockWarranties)

	res, err := service.Lookup(context.Background(), ModeSerial, "RE2608")

	assert.NoError(t, err)
	assert.Len(t, res.Devices, 1)
	assert.Equal(t, 2, res.Devices[0].StatusStep)
	assert.Empty(t, res.Bookings)
	assert.Empty(t, res.Warranties)
	mockBookings.AssertNotCalled(t, "ListByPhone")
	mockWarranties.AssertNotCalled(t, "ListByPhone")
}

func TestService_Lookup_PhoneModeFansOut(t *testing.T) {
	mockDevices := new(MockDeviceSearcher)
	mockBookings := new(MockBookingFinder)
	mockWarranties := new(MockWarrantyFinder)

	phone := "9876543210"
	mockDevices.On("ListByMobile", mock.Anything, phone).Return([]domain.DeviceEntry{
		{ID: 1, Status: domain.DeviceReady},
		{ID: 2, Status: domain.DeviceDelivered},
	}, nil)
	mockBookings.On("ListByPhone", mock.Anything, phone).Return([]domain.Booking{
		{ID: 10, Status: domain.BookingPending},
	}, nil)
	mockWarranties.On("ListByPhone", mock.Anything, phone).Return([]domain.Warranty{
		{ID: 20, Status: domain.WarrantyActive, EndDate: time.Now().AddDate(0, 0, 30)},
		{ID: 21, Status: domain.WarrantyActive, EndDate: time.Now().AddDate(0, 0, -1)},
		{ID: 22, Status: domain.WarrantyVoid, EndDate: time.Now().AddDate(0, 0, 30)},
	}, nil)

	service := NewService(mockDevices, mockBookings, mockWarranties)

	res, err := service.Lookup(context.Background(), ModePhone, phone)

	assert.NoError(t, err)
	assert.Len(t, res.Devices, 2)
	assert.Len(t, res.Bookings, 1)
	assert.Len(t, res.Warranties, 3)
	assert.True(t, res.Warranties[0].CurrentlyValid)
	assert.False(t, res.Warranties[1].CurrentlyValid, "expired by date")
	assert.False(t, res.Warranties[2].CurrentlyValid, "voided")
}

func TestService_Lookup_PhoneModeFailsWhole(t *testing.T) {
	mockDevices := new(MockDeviceSearcher)
	mockBookings := new(MockBookingFinder)
	mockWarranties := new(MockWarrantyFinder)

	phone := "9876543210"
	mockDevices.On("ListByMobile", mock.Anything, phone).Return([]domain.DeviceEntry{}, nil)
	mockBookings.On("ListByPhone", mock.Anything, phone).Return(nil, errors.New("db down"))
	mockWarranties.On("ListByPhone", mock.Anything, phone).Return([]domain.Warranty{}, nil)

	service := NewService(mockDevices, mockBookings, mockWarranties)

	_, err := service.Lookup(context.Background(), ModePhone, phone)
	assert.Error(t, err)
}

func TestService_Lookup_RejectsEmptyQueryAndUnknownMode(t *testing.T) {
	service := NewService(new(MockDeviceSearcher), new(MockBookingFinder), new(MockWarrantyFinder))

	_, err := service.Lookup(context.Background(), ModeSerial, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Lookup(context.Background(), "email", "someone@example.com")
	assert.ErrorIs(t, err, ErrValidation)
}

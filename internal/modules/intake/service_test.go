package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"repairshop/internal/domain"
)

// Mock repositories
type MockDeviceEntryRepository struct {
	mock.Mock
}

func (m *MockDeviceEntryRepository) Create(ctx context.Context, e *domain.DeviceEntry) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockDeviceEntryRepository) GetByID(ctx context.Context, id int64) (*domain.DeviceEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceEntry), args.Error(1)
}

func (m *MockDeviceEntryRepository) List(ctx context.Context, status string) ([]domain.DeviceEntry, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeviceEntry), args.Error(1)
}

func (m *MockDeviceEntryRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.DeviceEntry, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceEntry), args.Error(1)
}

func (m *MockDeviceEntryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeviceEntryRepository) FindBySerial(ctx context.Context, serial string) (*domain.DeviceEntry, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceEntry), args.Error(1)
}

func (m *MockDeviceEntryRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type stubSerialGenerator struct {
	serial string
}

func (s stubSerialGenerator) Next(ctx context.Context) string { return s.serial }

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) DeviceRegistered(e *domain.DeviceEntry) {
	m.Called(e)
}

func (m *MockEventSink) DeviceStatusChanged(e *domain.DeviceEntry) {
	m.Called(e)
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	mockSink := new(MockEventSink)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockSink.On("DeviceRegistered", mock.Anything).Return()

	service := NewService(mockRepo, stubSerialGenerator{serial: "RE260829042"}, mockSink)

	req := CreateDeviceEntryRequest{
		CustomerName:       "Murugan",
		MobileNumber:       "9876543210",
		DeviceType:         "Ceiling Fan",
		ProblemDescription: "Not rotating, humming noise",
	}

	e, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "RE260829042", e.SerialNumber)
	assert.Equal(t, domain.DeviceReceived, e.Status)
	assert.Equal(t, dateOnly(time.Now()), e.ReceivedDate)
	mockSink.AssertCalled(t, "DeviceRegistered", mock.Anything)
}

func TestService_Create_KeepsProvidedSerial(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, stubSerialGenerator{serial: "RE260829001"}, nil)

	req := CreateDeviceEntryRequest{
		SerialNumber:       "CUSTOM-77",
		CustomerName:       "Murugan",
		MobileNumber:       "9876543210",
		DeviceType:         "Mixer Grinder",
		ProblemDescription: "Blade jammed",
	}

	e, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "CUSTOM-77", e.SerialNumber)
}

func TestService_Create_ValidationError(t *testing.T) {
	service := NewService(new(MockDeviceEntryRepository), stubSerialGenerator{}, nil)

	req := CreateDeviceEntryRequest{
		CustomerName: "Murugan",
		// missing mobile number, device type, problem description
	}

	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_DeliveredStampsToday(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	mockSink := new(MockEventSink)

	delivered := string(domain.DeviceDelivered)
	updated := &domain.DeviceEntry{ID: 1, Status: domain.DeviceDelivered}

	mockRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(patch map[string]any) bool {
		d, ok := patch["delivered_date"].(time.Time)
		return ok && d.Equal(dateOnly(time.Now())) && patch["status"] == delivered
	})).Return(updated, nil)
	mockSink.On("DeviceStatusChanged", updated).Return()

	service := NewService(mockRepo, stubSerialGenerator{}, mockSink)

	_, err := service.Update(context.Background(), 1, UpdateDeviceEntryRequest{Status: &delivered})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockSink.AssertExpectations(t)
}

func TestService_Update_ExplicitDeliveredDatePreserved(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)

	delivered := string(domain.DeviceDelivered)
	date := "2026-08-15"
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	mockRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(patch map[string]any) bool {
		d, ok := patch["delivered_date"].(time.Time)
		return ok && d.Equal(want)
	})).Return(&domain.DeviceEntry{ID: 1, Status: domain.DeviceDelivered}, nil)

	service := NewService(mockRepo, stubSerialGenerator{}, nil)

	_, err := service.Update(context.Background(), 1, UpdateDeviceEntryRequest{
		Status:        &delivered,
		DeliveredDate: &date,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	service := NewService(new(MockDeviceEntryRepository), stubSerialGenerator{}, nil)

	bogus := "repaired"
	_, err := service.Update(context.Background(), 1, UpdateDeviceEntryRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	notes := "checked"
	mockRepo.On("Update", mock.Anything, int64(42), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRepo, stubSerialGenerator{}, nil)

	_, err := service.Update(context.Background(), 42, UpdateDeviceEntryRequest{Notes: &notes})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_EmptyPatchReturnsCurrent(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	current := &domain.DeviceEntry{ID: 7, Status: domain.DeviceInRepair}
	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(current, nil)

	service := NewService(mockRepo, stubSerialGenerator{}, nil)

	e, err := service.Update(context.Background(), 7, UpdateDeviceEntryRequest{})

	assert.NoError(t, err)
	assert.Equal(t, current, e)
	mockRepo.AssertNotCalled(t, "Update")
}

// Walks an entry through the full repair lifecycle and checks only the final
// transition stamps the delivered date.
func TestService_Update_LifecycleTransitions(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	service := NewService(mockRepo, stubSerialGenerator{}, nil)

	for _, status := range []string{"in-repair", "ready"} {
		status := status
		mockRepo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(patch map[string]any) bool {
			_, stamped := patch["delivered_date"]
			return patch["status"] == status && !stamped
		})).Return(&domain.DeviceEntry{ID: 3, Status: domain.DeviceEntryStatus(status)}, nil).Once()

		e, err := service.Update(context.Background(), 3, UpdateDeviceEntryRequest{Status: &status})
		assert.NoError(t, err)
		assert.Equal(t, domain.DeviceEntryStatus(status), e.Status)
	}

	delivered := string(domain.DeviceDelivered)
	mockRepo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(patch map[string]any) bool {
		_, stamped := patch["delivered_date"]
		return patch["status"] == delivered && stamped
	})).Return(&domain.DeviceEntry{ID: 3, Status: domain.DeviceDelivered}, nil).Once()

	_, err := service.Update(context.Background(), 3, UpdateDeviceEntryRequest{Status: &delivered})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_GetBySerial_MissingIsNil(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	mockRepo.On("FindBySerial", mock.Anything, "RE000000000").Return(nil, nil)

	service := NewService(mockRepo, stubSerialGenerator{}, nil)

	e, err := service.GetBySerial(context.Background(), "RE000000000")
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestService_TodayCount(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	mockRepo.On("CountCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(int64(4), nil)

	service := NewService(mockRepo, stubSerialGenerator{}, nil)

	n, err := service.TodayCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestService_Delete_RepoError(t *testing.T) {
	mockRepo := new(MockDeviceEntryRepository)
	mockRepo.On("Delete", mock.Anything, int64(5)).Return(errors.New("db down"))

	service := NewService(mockRepo, stubSerialGenerator{}, nil)

	assert.Error(t, service.Delete(context.Background(), 5))
}

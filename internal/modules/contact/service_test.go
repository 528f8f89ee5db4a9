package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"repairshop/internal/domain"
)

// Mock repositories
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListUnread(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactSink struct {
	mock.Mock
}

func (m *MockContactSink) ContactReceived(c *domain.Contact) {
	m.Called(c)
}

func TestService_Submit_Success(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockSink := new(MockContactSink)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockSink.On("ContactReceived", mock.Anything).Return()

	service := NewService(mockRepo, mockSink)

	c, err := service.Submit(context.Background(), SubmitContactRequest{
		Name:    "Priya",
		Email:   "priya@example.com",
		Message: "Do you repair table fans?",
	})

	assert.NoError(t, err)
	assert.False(t, c.IsRead)
	mockSink.AssertCalled(t, "ContactReceived", mock.Anything)
}

func TestService_Submit_InvalidEmail(t *testing.T) {
	service := NewService(new(MockContactRepository), nil)

	_, err := service.Submit(context.Background(), SubmitContactRequest{
		Name:    "Priya",
		Email:   "not-an-email",
		Message: "Hello",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_List_ReadFilter(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("List", mock.Anything).Return([]domain.Contact{
		{ID: 1, IsRead: true},
		{ID: 2, IsRead: false},
		{ID: 3, IsRead: true},
	}, nil)

	service := NewService(mockRepo, nil)

	read, err := service.List(context.Background(), "read")

	assert.NoError(t, err)
	assert.Len(t, read, 2)
}

func TestService_List_UnknownFilter(t *testing.T) {
	service := NewService(new(MockContactRepository), nil)

	_, err := service.List(context.Background(), "starred")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_MarkAllRead_CountsAll(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("ListUnread", mock.Anything).Return([]domain.Contact{
		{ID: 1}, {ID: 2}, {ID: 3},
	}, nil)
	mockRepo.On("MarkRead", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, nil)

	marked, err := service.MarkAllRead(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, marked)
}

// A failure mid-loop reports how many were flipped before it.
func TestService_MarkAllRead_PartialFailure(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("ListUnread", mock.Anything).Return([]domain.Contact{
		{ID: 1}, {ID: 2}, {ID: 3},
	}, nil)
	mockRepo.On("MarkRead", mock.Anything, int64(1)).Return(nil)
	mockRepo.On("MarkRead", mock.Anything, int64(2)).Return(errors.New("db down"))

	service := NewService(mockRepo, nil)

	marked, err := service.MarkAllRead(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, marked)
	mockRepo.AssertNotCalled(t, "MarkRead", mock.Anything, int64(3))
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"repairshop/internal/domain"
)

// Mock repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) { return "token-abc", nil }

func hashOf(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "admin@repairshop.local").Return(&domain.User{
		ID:           1,
		Email:        "admin@repairshop.local",
		PasswordHash: hashOf("admin123"),
		Role:         domain.RoleAdmin,
	}, nil)

	service := NewService(mockUsers, stubJWT{})

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "Admin@RepairShop.local",
		Password: "admin123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", result.Token)
	assert.Equal(t, int64(1), result.User.ID)
	mockUsers.AssertCalled(t, "GetByEmail", mock.Anything, "admin@repairshop.local")
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "admin@repairshop.local").Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf("admin123"),
	}, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@repairshop.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUserLooksTheSame(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "nobody@repairshop.local").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@repairshop.local",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Register_DefaultsToStaff(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "tech@repairshop.local").
		Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockUsers, stubJWT{})

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "tech@repairshop.local",
		Name:     "Technician",
		Password: "longenough",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")))
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "admin@repairshop.local").
		Return(&domain.User{ID: 1}, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "admin@repairshop.local",
		Name:     "Clone",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	mockUsers.AssertNotCalled(t, "Create")
}

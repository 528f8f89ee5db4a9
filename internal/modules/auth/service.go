package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks the password against the stored bcrypt hash. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

// Register creates a staff account. Only an already-authenticated admin
// reaches this; the default role is staff unless admin is asked for.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	role := domain.RoleStaff
	if req.Role == string(domain.RoleAdmin) {
		role = domain.RoleAdmin
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

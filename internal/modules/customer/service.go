package customer

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"
)

type Service struct {
	customers CustomerRepository
	bookings  BookingSource
}

func NewService(customers CustomerRepository, bookings BookingSource) *Service {
	return &Service{customers: customers, bookings: bookings}
}

func isVIP(repairs int, spent float64) bool {
	return repairs >= domain.VIPMinRepairs || spent >= domain.VIPMinSpent
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	c := &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// FindByPhone treats a missing customer as a nil result, not an error.
func (s *Service) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return s.customers.FindByPhone(ctx, phone)
}

// List returns stored customers; when none exist yet it synthesizes the list
// by aggregating bookings per phone number. Synthesized rows carry ID 0 and
// are never written back.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	stored, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}
	return s.aggregateFromBookings(ctx)
}

func (s *Service) aggregateFromBookings(ctx context.Context) ([]domain.Customer, error) {
	bookings, err := s.bookings.List(ctx, "all")
	if err != nil {
		return nil, err
	}

	byPhone := map[string]*domain.Customer{}
	order := []string{}
	for _, b := range bookings {
		if b.Phone == "" {
			continue
		}
		c, ok := byPhone[b.Phone]
		if !ok {
			c = &domain.Customer{
				Name:  b.CustomerName,
				Email: b.Email,
				Phone: b.Phone,
			}
			byPhone[b.Phone] = c
			order = append(order, b.Phone)
		}
		c.TotalRepairs++
		if b.Status == domain.BookingCompleted {
			c.TotalSpent += b.ActualCost
		}
	}

	out := make([]domain.Customer, 0, len(order))
	for _, phone := range order {
		c := byPhone[phone]
		c.IsVIP = isVIP(c.TotalRepairs, c.TotalSpent)
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent > out[j].TotalSpent
	})
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}
	if req.Notes != nil {
		patch["notes"] = *req.Notes
	}

	repairs := -1
	spent := -1.0
	if req.TotalRepairs != nil {
		if *req.TotalRepairs < 0 {
			return nil, ErrValidation
		}
		repairs = *req.TotalRepairs
		patch["total_repairs"] = repairs
	}
	if req.TotalSpent != nil {
		if *req.TotalSpent < 0 {
			return nil, ErrValidation
		}
		spent = *req.TotalSpent
		patch["total_spent"] = spent
	}
	if repairs >= 0 || spent >= 0 {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if repairs < 0 {
			repairs = current.TotalRepairs
		}
		if spent < 0 {
			spent = current.TotalSpent
		}
		patch["is_vip"] = isVIP(repairs, spent)
	}

	if len(patch) == 0 {
		return s.Get(ctx, id)
	}

	c, err := s.customers.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}

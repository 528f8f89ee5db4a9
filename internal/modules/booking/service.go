package booking

import (
	"context"
	"errors"
	"time"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	sink     EventSink
}

func NewService(bookings BookingRepository, sink EventSink) *Service {
	return &Service{
		bookings: bookings,
		sink:     sink,
	}
}

const dateLayout = "2006-01-02"

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create accepts a public booking submission. The persisted status is always
// pending and the priority medium, whatever the caller sent.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		CustomerName:     req.CustomerName,
		Phone:            req.Phone,
		Email:            req.Email,
		DeviceType:       req.DeviceType,
		Brand:            req.Brand,
		IssueDescription: req.IssueDescription,
		Status:           domain.BookingPending,
		Priority:         domain.PriorityMedium,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.sink != nil {
		s.sink.BookingCreated(b)
	}
	return b, nil
}

// Update applies a partial patch. Setting status to completed without a
// completed date stamps today, mirroring the intake delivered-date rule.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	patch := map[string]any{}

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		switch status {
		case domain.BookingPending, domain.BookingInProgress,
			domain.BookingCompleted, domain.BookingCancelled:
		default:
			return nil, ErrValidation
		}
		patch["status"] = string(status)
	}
	if req.Priority != nil {
		priority := domain.BookingPriority(*req.Priority)
		switch priority {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		default:
			return nil, ErrValidation
		}
		patch["priority"] = string(priority)
	}
	if req.EstimatedCost != nil {
		patch["estimated_cost"] = *req.EstimatedCost
	}
	if req.ActualCost != nil {
		patch["actual_cost"] = *req.ActualCost
	}
	if req.TechnicianName != nil {
		patch["technician_name"] = *req.TechnicianName
	}
	if req.TechnicianPhone != nil {
		patch["technician_phone"] = *req.TechnicianPhone
	}
	if req.Notes != nil {
		patch["notes"] = *req.Notes
	}

	setDate := func(col string, v *string) error {
		if v == nil {
			return nil
		}
		d, err := time.Parse(dateLayout, *v)
		if err != nil {
			return ErrValidation
		}
		patch[col] = dateOnly(d)
		return nil
	}
	if err := setDate("scheduled_date", req.ScheduledDate); err != nil {
		return nil, err
	}
	if err := setDate("completed_date", req.CompletedDate); err != nil {
		return nil, err
	}
	if err := setDate("warranty_until", req.WarrantyUntil); err != nil {
		return nil, err
	}

	if patch["status"] == string(domain.BookingCompleted) && req.CompletedDate == nil {
		patch["completed_date"] = dateOnly(time.Now())
	}

	if len(patch) == 0 {
		return s.Get(ctx, id)
	}

	b, err := s.bookings.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.Booking, error) {
	return s.bookings.List(ctx, status)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.bookings.Delete(ctx, id)
}

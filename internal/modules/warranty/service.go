package warranty

import (
	"context"
	"errors"
	"time"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	warranties WarrantyRepository
}

func NewService(warranties WarrantyRepository) *Service {
	return &Service{warranties: warranties}
}

const dateLayout = "2006-01-02"

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create computes the expiry window from the warranty days offset. The
// stored status starts as active regardless of caller input; whether the
// warranty is currently valid is always a separate date comparison.
func (s *Service) Create(ctx context.Context, req CreateWarrantyRequest) (*domain.Warranty, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	start := dateOnly(time.Now())
	if req.StartDate != "" {
		d, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, ErrValidation
		}
		start = dateOnly(d)
	}

	w := &domain.Warranty{
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		DeviceType:         req.DeviceType,
		DeviceBrand:        req.DeviceBrand,
		SerialNumber:       req.SerialNumber,
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, req.WarrantyDays),
		ServiceDescription: req.ServiceDescription,
		TechnicianName:     req.TechnicianName,
		Status:             domain.WarrantyActive,
	}

	if err := s.warranties.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Warranty, error) {
	w, err := s.warranties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Warranty, error) {
	return s.warranties.List(ctx)
}

// ListActive returns warranties that are active AND still inside their
// validity window. The stored status alone is not auto-expired on date
// passage, so the date filter is part of the definition, not an extra.
func (s *Service) ListActive(ctx context.Context) ([]domain.Warranty, error) {
	return s.warranties.ListActive(ctx, dateOnly(time.Now()))
}

// ListExpiring returns active warranties ending within the next `days` days.
func (s *Service) ListExpiring(ctx context.Context, days int) ([]domain.Warranty, error) {
	today := dateOnly(time.Now())
	return s.warranties.ListExpiring(ctx, today, today.AddDate(0, 0, days))
}

func (s *Service) ListByPhone(ctx context.Context, phone string) ([]domain.Warranty, error) {
	return s.warranties.ListByPhone(ctx, phone)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateWarrantyRequest) (*domain.Warranty, error) {
	patch := map[string]any{}

	setStr := func(col string, v *string) {
		if v != nil {
			patch[col] = *v
		}
	}
	setStr("customer_name", req.CustomerName)
	setStr("customer_phone", req.CustomerPhone)
	setStr("device_type", req.DeviceType)
	setStr("device_brand", req.DeviceBrand)
	setStr("serial_number", req.SerialNumber)
	setStr("service_description", req.ServiceDescription)
	setStr("technician_name", req.TechnicianName)

	if req.Status != nil {
		status := domain.WarrantyStatus(*req.Status)
		switch status {
		case domain.WarrantyActive, domain.WarrantyExpired,
			domain.WarrantyClaimed, domain.WarrantyVoid:
		default:
			return nil, ErrValidation
		}
		patch["status"] = string(status)
	}
	if req.EndDate != nil {
		d, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrValidation
		}
		patch["end_date"] = dateOnly(d)
	}

	if len(patch) == 0 {
		return s.Get(ctx, id)
	}

	w, err := s.warranties.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

// Void marks the warranty void. Voiding an already-void warranty is a no-op;
// there are no transitions out of void.
func (s *Service) Void(ctx context.Context, id int64) (*domain.Warranty, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Status == domain.WarrantyVoid {
		return w, nil
	}

	if err := s.warranties.UpdateStatus(ctx, id, domain.WarrantyVoid); err != nil {
		return nil, err
	}
	w.Status = domain.WarrantyVoid
	return w, nil
}

// RecordClaim appends a claim and bumps the parent counter through the
// store-side increment so concurrent claims cannot lose an update.
func (s *Service) RecordClaim(ctx context.Context, warrantyID int64, req CreateClaimRequest) (*domain.WarrantyClaim, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	if _, err := s.Get(ctx, warrantyID); err != nil {
		return nil, err
	}

	claim := &domain.WarrantyClaim{
		WarrantyID:       warrantyID,
		IssueDescription: req.IssueDescription,
		Resolution:       req.Resolution,
	}
	if err := s.warranties.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}

	if err := s.warranties.IncrementClaims(ctx, warrantyID); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *Service) ListClaims(ctx context.Context, warrantyID int64) ([]domain.WarrantyClaim, error) {
	return s.warranties.ListClaims(ctx, warrantyID)
}

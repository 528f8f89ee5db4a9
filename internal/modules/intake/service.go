package intake

import (
	"context"
	"errors"
	"time"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	entries DeviceEntryRepository
	serials SerialGenerator
	sink    EventSink
}

func NewService(entries DeviceEntryRepository, serials SerialGenerator, sink EventSink) *Service {
	return &Service{
		entries: entries,
		serials: serials,
		sink:    sink,
	}
}

const dateLayout = "2006-01-02"

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create registers a walk-in device. Status and received date are always set
// here, never taken from the caller. A missing serial gets a generated one.
func (s *Service) Create(ctx context.Context, req CreateDeviceEntryRequest) (*domain.DeviceEntry, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	serial := req.SerialNumber
	if serial == "" {
		serial = s.serials.Next(ctx)
	}

	var expected *time.Time
	if req.ExpectedDelivery != "" {
		d, err := time.Parse(dateLayout, req.ExpectedDelivery)
		if err != nil {
			return nil, ErrValidation
		}
		d = dateOnly(d)
		expected = &d
	}

	e := &domain.DeviceEntry{
		SerialNumber:        serial,
		CustomerName:        req.CustomerName,
		MobileNumber:        req.MobileNumber,
		VillageName:         req.VillageName,
		Address:             req.Address,
		DeviceType:          req.DeviceType,
		DeviceBrand:         req.DeviceBrand,
		DeviceModel:         req.DeviceModel,
		WindingType:         domain.WindingType(req.WindingType),
		MotorHP:             req.MotorHP,
		ProblemDescription:  req.ProblemDescription,
		AccessoriesReceived: req.AccessoriesReceived,
		EstimatedCost:       req.EstimatedCost,
		AdvancePaid:         req.AdvancePaid,
		Status:              domain.DeviceReceived,
		ReceivedDate:        dateOnly(time.Now()),
		ExpectedDelivery:    expected,
		TechnicianName:      req.TechnicianName,
		Notes:               req.Notes,
	}

	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.sink != nil {
		s.sink.DeviceRegistered(e)
	}
	return e, nil
}

// Update applies a partial patch. Transition legality is not enforced here;
// the guided buttons in the admin UI only ever offer the next forward step.
// Setting status to delivered without a delivered date stamps today.
func (s *Service) Update(ctx context.Context, id int64, req UpdateDeviceEntryRequest) (*domain.DeviceEntry, error) {
	patch := map[string]any{}

	setStr := func(col string, v *string) {
		if v != nil {
			patch[col] = *v
		}
	}
	setStr("serial_number", req.SerialNumber)
	setStr("customer_name", req.CustomerName)
	setStr("mobile_number", req.MobileNumber)
	setStr("village_name", req.VillageName)
	setStr("address", req.Address)
	setStr("device_type", req.DeviceType)
	setStr("device_brand", req.DeviceBrand)
	setStr("device_model", req.DeviceModel)
	setStr("winding_type", req.WindingType)
	setStr("motor_hp", req.MotorHP)
	setStr("problem_description", req.ProblemDescription)
	setStr("accessories_received", req.AccessoriesReceived)
	setStr("technician_name", req.TechnicianName)
	setStr("notes", req.Notes)

	if req.EstimatedCost != nil {
		patch["estimated_cost"] = *req.EstimatedCost
	}
	if req.AdvancePaid != nil {
		patch["advance_paid"] = *req.AdvancePaid
	}
	if req.FinalCost != nil {
		patch["final_cost"] = *req.FinalCost
	}

	if req.Status != nil {
		status := domain.DeviceEntryStatus(*req.Status)
		switch status {
		case domain.DeviceReceived, domain.DeviceInRepair, domain.DeviceReady,
			domain.DeviceDelivered, domain.DeviceCancelled:
		default:
			return nil, ErrValidation
		}
		patch["status"] = string(status)
	}

	if req.ExpectedDelivery != nil {
		d, err := time.Parse(dateLayout, *req.ExpectedDelivery)
		if err != nil {
			return nil, ErrValidation
		}
		patch["expected_delivery"] = dateOnly(d)
	}
	if req.DeliveredDate != nil {
		d, err := time.Parse(dateLayout, *req.DeliveredDate)
		if err != nil {
			return nil, ErrValidation
		}
		patch["delivered_date"] = dateOnly(d)
	}

	if patch["status"] == string(domain.DeviceDelivered) && req.DeliveredDate == nil {
		patch["delivered_date"] = dateOnly(time.Now())
	}

	if len(patch) == 0 {
		return s.Get(ctx, id)
	}

	e, err := s.entries.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.sink != nil && req.Status != nil {
		s.sink.DeviceStatusChanged(e)
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.DeviceEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.DeviceEntry, error) {
	return s.entries.List(ctx, status)
}

// Delete removes the entry unconditionally, with no dependency checks
// against related bookings or warranties.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.entries.Delete(ctx, id)
}

// GetBySerial returns nil when no entry carries the serial.
func (s *Service) GetBySerial(ctx context.Context, serial string) (*domain.DeviceEntry, error) {
	return s.entries.FindBySerial(ctx, serial)
}

// NextSerial previews the serial the intake form will prefill.
func (s *Service) NextSerial(ctx context.Context) string {
	return s.serials.Next(ctx)
}

// TodayCount counts entries registered since local midnight.
func (s *Service) TodayCount(ctx context.Context) (int64, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.entries.CountCreatedBetween(ctx, start, start.Add(24*time.Hour))
}

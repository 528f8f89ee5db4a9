package track

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"repairshop/internal/domain"
)

const (
	ModeSerial = "serial"
	ModePhone  = "phone"
)

// StatusStep maps a repair status onto the 4-step progress indicator shown
// to customers. Cancelled falls outside the progression and reports 0.
func StatusStep(status domain.DeviceEntryStatus) int {
	switch status {
	case domain.DeviceReceived:
		return 1
	case domain.DeviceInRepair:
		return 2
	case domain.DeviceReady:
		return 3
	case domain.DeviceDelivered:
		return 4
	default:
		return 0
	}
}

type DeviceResult struct {
	domain.DeviceEntry
	StatusStep int `json:"status_step"`
}

type WarrantyResult struct {
	domain.Warranty
	CurrentlyValid bool `json:"currently_valid"`
}

// Result is everything found for one lookup. Serial lookups only ever fill
// Devices; phone lookups fan out across all three record kinds.
type Result struct {
	Query      string           `json:"query"`
	Mode       string           `json:"mode"`
	Devices    []DeviceResult   `json:"devices"`
	Bookings   []domain.Booking `json:"bookings"`
	Warranties []WarrantyResult `json:"warranties"`
}

type Service struct {
	devices    DeviceEntrySearcher
	bookings   BookingFinder
	warranties WarrantyFinder
	now        func() time.Time
}

func NewService(devices DeviceEntrySearcher, bookings BookingFinder, warranties WarrantyFinder) *Service {
	return &Service{
		devices:    devices,
		bookings:   bookings,
		warranties: warranties,
		now:        time.Now,
	}
}

// Lookup runs a public self-service search. Serial mode is a partial,
// case-insensitive match against device serials; phone mode is an exact
// match fanned out to devices, bookings and warranties concurrently.
// Any failing branch fails the whole lookup.
func (s *Service) Lookup(ctx context.Context, mode, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrValidation
	}

	res := &Result{
		Query:      query,
		Mode:       mode,
		Devices:    []DeviceResult{},
		Bookings:   []domain.Booking{},
		Warranties: []WarrantyResult{},
	}

	switch mode {
	case ModeSerial:
		entries, err := s.devices.SearchBySerial(ctx, query)
		if err != nil {
			return nil, err
		}
		res.Devices = s.deviceResults(entries)
		return res, nil

	case ModePhone:
		var (
			entries    []domain.DeviceEntry
			bookings   []domain.Booking
			warranties []domain.Warranty
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			entries, err = s.devices.ListByMobile(gctx, query)
			return err
		})
		g.Go(func() error {
			var err error
			bookings, err = s.bookings.ListByPhone(gctx, query)
			return err
		})
		g.Go(func() error {
			var err error
			warranties, err = s.warranties.ListByPhone(gctx, query)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		res.Devices = s.deviceResults(entries)
		res.Bookings = bookings
		res.Warranties = s.warrantyResults(warranties)
		return res, nil

	default:
		return nil, ErrValidation
	}
}

func (s *Service) deviceResults(entries []domain.DeviceEntry) []DeviceResult {
	out := make([]DeviceResult, 0, len(entries))
	for _, e := range entries {
		out = append(out, DeviceResult{DeviceEntry: e, StatusStep: StatusStep(e.Status)})
	}
	return out
}

func (s *Service) warrantyResults(warranties []domain.Warranty) []WarrantyResult {
	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	out := make([]WarrantyResult, 0, len(warranties))
	for _, w := range warranties {
		valid := w.Status == domain.WarrantyActive && !w.EndDate.Before(today)
		out = append(out, WarrantyResult{Warranty: w, CurrentlyValid: valid})
	}
	return out
}

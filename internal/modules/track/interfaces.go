package track

import (
	"context"

	"repairshop/internal/domain"
)

type DeviceEntrySearcher interface {
	SearchBySerial(ctx context.Context, serial string) ([]domain.DeviceEntry, error)
	ListByMobile(ctx context.Context, mobile string) ([]domain.DeviceEntry, error)
}

type BookingFinder interface {
	ListByPhone(ctx context.Context, phone string) ([]domain.Booking, error)
}

type WarrantyFinder interface {
	ListByPhone(ctx context.Context, phone string) ([]domain.Warranty, error)
}

package intake

import (
	"context"
	"time"

	"repairshop/internal/domain"
)

// DeviceEntryRepository defines the store operations the intake service needs.
type DeviceEntryRepository interface {
	Create(ctx context.Context, e *domain.DeviceEntry) error
	GetByID(ctx context.Context, id int64) (*domain.DeviceEntry, error)
	List(ctx context.Context, status string) ([]domain.DeviceEntry, error)
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.DeviceEntry, error)
	Delete(ctx context.Context, id int64) error
	FindBySerial(ctx context.Context, serial string) (*domain.DeviceEntry, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// SerialGenerator produces the next device serial number.
type SerialGenerator interface {
	Next(ctx context.Context) string
}

// EventSink receives fire-and-forget notifications about intake changes.
type EventSink interface {
	DeviceRegistered(e *domain.DeviceEntry)
	DeviceStatusChanged(e *domain.DeviceEntry)
}

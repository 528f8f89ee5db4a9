package contact

import (
	"context"

	"repairshop/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	ListUnread(ctx context.Context) ([]domain.Contact, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// EventSink receives notifications about new messages; implementations
// must not block.
type EventSink interface {
	ContactReceived(c *domain.Contact)
}

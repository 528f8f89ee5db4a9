package billing

import (
	"context"

	"repairshop/internal/domain"
)

type InvoiceRepository interface {
	Create(ctx context.Context, i *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, id int64, patch map[string]any) (*domain.Invoice, error)
	Delete(ctx context.Context, id int64) error
	FindByNumber(ctx context.Context, number string) (*domain.Invoice, error)
}

// NumberGenerator hands out the next invoice number.
type NumberGenerator interface {
	Next(ctx context.Context) string
}

package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"
)

type Service struct {
	invoices InvoiceRepository
	numbers  NumberGenerator
}

func NewService(invoices InvoiceRepository, numbers NumberGenerator) *Service {
	return &Service{
		invoices: invoices,
		numbers:  numbers,
	}
}

func buildItems(reqs []InvoiceItemRequest) domain.InvoiceItems {
	items := make(domain.InvoiceItems, 0, len(reqs))
	for _, r := range reqs {
		desc := strings.TrimSpace(r.Description)
		if desc == "" {
			continue
		}
		items = append(items, domain.InvoiceItem{
			Description: desc,
			Qty:         r.Qty,
			Rate:        r.Rate,
			Amount:      ItemAmount(r.Qty, r.Rate),
		})
	}
	return items
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// The sqlite driver reports unique-index violations as a plain string.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create derives every amount server-side from the line items; caller-supplied
// totals are ignored. Blank-description items are dropped before anything else.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	items := buildItems(req.Items)
	if len(items) == 0 {
		return nil, ErrValidation
	}
	if req.Discount.IsNegative() || req.TaxPercent.IsNegative() || req.AmountPaid.IsNegative() {
		return nil, ErrValidation
	}

	number := req.InvoiceNumber
	if number == "" {
		number = s.numbers.Next(ctx)
	}

	subtotal := Subtotal(items)
	taxAmount := TaxAmount(subtotal, req.Discount, req.TaxPercent)
	total := Total(subtotal, req.Discount, taxAmount)
	status := PaymentStatusFor(req.AmountPaid, total)

	inv := &domain.Invoice{
		InvoiceNumber:   number,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		Subtotal:        subtotal,
		Discount:        req.Discount,
		TaxPercent:      req.TaxPercent,
		TaxAmount:       taxAmount,
		Total:           total,
		AmountPaid:      req.AmountPaid,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   status,
		Notes:           req.Notes,
	}
	if status == domain.PaymentPaid {
		now := time.Now()
		inv.PaymentDate = &now
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	inv, err := s.invoices.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNotFound
	}
	return inv, nil
}

func (s *Service) NextNumber(ctx context.Context) string {
	return s.numbers.Next(ctx)
}

// Update replaces whatever fields are present. Touching items, discount or
// tax percent recomputes the derived amounts; touching amount paid or the
// total reclassifies the payment status.
func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*domain.Invoice, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := map[string]any{}
	if req.CustomerName != nil {
		patch["customer_name"] = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		patch["customer_phone"] = *req.CustomerPhone
	}
	if req.CustomerAddress != nil {
		patch["customer_address"] = *req.CustomerAddress
	}
	if req.PaymentMethod != nil {
		patch["payment_method"] = *req.PaymentMethod
	}
	if req.Notes != nil {
		patch["notes"] = *req.Notes
	}

	items := current.Items
	discount := current.Discount
	taxPercent := current.TaxPercent
	amountPaid := current.AmountPaid
	total := current.Total

	recompute := false
	if req.Items != nil {
		items = buildItems(req.Items)
		if len(items) == 0 {
			return nil, ErrValidation
		}
		recompute = true
	}
	if req.Discount != nil {
		if req.Discount.IsNegative() {
			return nil, ErrValidation
		}
		discount = *req.Discount
		recompute = true
	}
	if req.TaxPercent != nil {
		if req.TaxPercent.IsNegative() {
			return nil, ErrValidation
		}
		taxPercent = *req.TaxPercent
		recompute = true
	}
	if recompute {
		subtotal := Subtotal(items)
		taxAmount := TaxAmount(subtotal, discount, taxPercent)
		total = Total(subtotal, discount, taxAmount)
		patch["items"] = items
		patch["subtotal"] = subtotal
		patch["discount"] = discount
		patch["tax_percent"] = taxPercent
		patch["tax_amount"] = taxAmount
		patch["total"] = total
	}

	if req.AmountPaid != nil {
		if req.AmountPaid.IsNegative() {
			return nil, ErrValidation
		}
		amountPaid = *req.AmountPaid
		patch["amount_paid"] = amountPaid
	}
	if recompute || req.AmountPaid != nil {
		status := PaymentStatusFor(amountPaid, total)
		patch["payment_status"] = string(status)
		if status == domain.PaymentPaid && current.PaymentDate == nil {
			patch["payment_date"] = time.Now()
		}
	}

	if len(patch) == 0 {
		return current, nil
	}

	inv, err := s.invoices.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// RecordPayment adds to the amount already paid and reclassifies the status.
func (s *Service) RecordPayment(ctx context.Context, id int64, req RecordPaymentRequest) (*domain.Invoice, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrValidation
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	amountPaid := current.AmountPaid.Add(req.Amount)
	status := PaymentStatusFor(amountPaid, current.Total)

	patch := map[string]any{
		"amount_paid":    amountPaid,
		"payment_status": string(status),
	}
	if req.Method != "" {
		patch["payment_method"] = req.Method
	}
	if status == domain.PaymentPaid && current.PaymentDate == nil {
		patch["payment_date"] = time.Now()
	}

	inv, err := s.invoices.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.invoices.Delete(ctx, id)
}

package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"repairshop/internal/domain"
)

// Mock repositories
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, i *domain.Invoice) error {
	args := m.Called(ctx, i)
	if i != nil {
		i.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Invoice, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

type stubNumberGenerator struct {
	number string
}

func (s stubNumberGenerator) Next(ctx context.Context) string { return s.number }

func TestService_Create_DerivesTotals(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, stubNumberGenerator{number: "INV-202608-042"})

	inv, err := service.Create(context.Background(), CreateInvoiceRequest{
		CustomerName:  "Raman",
		CustomerPhone: "9876543210",
		Items: []InvoiceItemRequest{
			{Description: "Winding Replacement", Qty: d("1"), Rate: d("750")},
			{Description: "Capacitor 2.5 MFD", Qty: d("1"), Rate: d("50")},
		},
		Discount:   d("50"),
		TaxPercent: d("10"),
		AmountPaid: d("400"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-202608-042", inv.InvoiceNumber)
	assert.True(t, inv.Subtotal.Equal(d("800")))
	assert.True(t, inv.TaxAmount.Equal(d("75")))
	assert.True(t, inv.Total.Equal(d("825")))
	assert.Equal(t, domain.PaymentPartial, inv.PaymentStatus)
	assert.Nil(t, inv.PaymentDate)
}

func TestService_Create_DropsBlankItems(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, stubNumberGenerator{number: "INV-202608-001"})

	inv, err := service.Create(context.Background(), CreateInvoiceRequest{
		CustomerName:  "Raman",
		CustomerPhone: "9876543210",
		Items: []InvoiceItemRequest{
			{Description: "  ", Qty: d("1"), Rate: d("999")},
			{Description: "Bearing Replacement", Qty: d("1"), Rate: d("150")},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, inv.Items, 1)
	assert.True(t, inv.Subtotal.Equal(d("150")))
}

func TestService_Create_AllItemsBlank(t *testing.T) {
	service := NewService(new(MockInvoiceRepository), stubNumberGenerator{})

	_, err := service.Create(context.Background(), CreateInvoiceRequest{
		CustomerName:  "Raman",
		CustomerPhone: "9876543210",
		Items:         []InvoiceItemRequest{{Description: "", Qty: d("1"), Rate: d("100")}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_FullPaymentStampsDate(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, stubNumberGenerator{number: "INV-202608-002"})

	inv, err := service.Create(context.Background(), CreateInvoiceRequest{
		CustomerName:  "Raman",
		CustomerPhone: "9876543210",
		Items:         []InvoiceItemRequest{{Description: "Service Charge", Qty: d("1"), Rate: d("300")}},
		AmountPaid:    d("300"),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, inv.PaymentStatus)
	assert.NotNil(t, inv.PaymentDate)
}

func TestService_Create_DuplicateNumber(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505"})

	service := NewService(mockRepo, stubNumberGenerator{})

	_, err := service.Create(context.Background(), CreateInvoiceRequest{
		InvoiceNumber: "INV-202608-003",
		CustomerName:  "Raman",
		CustomerPhone: "9876543210",
		Items:         []InvoiceItemRequest{{Description: "Service Charge", Qty: d("1"), Rate: d("300")}},
	})
	assert.ErrorIs(t, err, ErrDuplicateNumber)
}

func TestService_Create_DuplicateNumberSQLite(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("constraint failed: UNIQUE constraint failed: invoices.invoice_number (2067)"))

	service := NewService(mockRepo, stubNumberGenerator{})

	_, err := service.Create(context.Background(), CreateInvoiceRequest{
		InvoiceNumber: "INV-202608-003",
		CustomerName:  "Raman",
		CustomerPhone: "9876543210",
		Items:         []InvoiceItemRequest{{Description: "Service Charge", Qty: d("1"), Rate: d("300")}},
	})
	assert.ErrorIs(t, err, ErrDuplicateNumber)
}

func TestService_Update_ItemsRecomputeEverything(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	current := &domain.Invoice{
		ID:            1,
		Items:         domain.InvoiceItems{{Description: "Old", Qty: d("1"), Rate: d("100"), Amount: d("100")}},
		Subtotal:      d("100"),
		Discount:      d("0"),
		TaxPercent:    d("0"),
		Total:         d("100"),
		AmountPaid:    d("100"),
		PaymentStatus: domain.PaymentPaid,
	}
	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(current, nil)
	mockRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(patch map[string]any) bool {
		subtotal, ok := patch["subtotal"].(decimal.Decimal)
		// amount_paid untouched but status reclassified against new total
		return ok && subtotal.Equal(d("500")) &&
			patch["payment_status"] == string(domain.PaymentPartial)
	})).Return(&domain.Invoice{ID: 1}, nil)

	service := NewService(mockRepo, stubNumberGenerator{})

	_, err := service.Update(context.Background(), 1, UpdateInvoiceRequest{
		Items: []InvoiceItemRequest{{Description: "New", Qty: d("1"), Rate: d("500")}},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_RecordPayment_ReachesPaid(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	current := &domain.Invoice{
		ID:            2,
		Total:         d("825"),
		AmountPaid:    d("400"),
		PaymentStatus: domain.PaymentPartial,
	}
	mockRepo.On("GetByID", mock.Anything, int64(2)).Return(current, nil)
	mockRepo.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(patch map[string]any) bool {
		_, dated := patch["payment_date"]
		return patch["payment_status"] == string(domain.PaymentPaid) && dated
	})).Return(&domain.Invoice{ID: 2, PaymentStatus: domain.PaymentPaid}, nil)

	service := NewService(mockRepo, stubNumberGenerator{})

	inv, err := service.RecordPayment(context.Background(), 2, RecordPaymentRequest{Amount: d("425")})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, inv.PaymentStatus)
	mockRepo.AssertExpectations(t)
}

func TestService_RecordPayment_RejectsNonPositive(t *testing.T) {
	service := NewService(new(MockInvoiceRepository), stubNumberGenerator{})

	_, err := service.RecordPayment(context.Background(), 1, RecordPaymentRequest{Amount: d("0")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_GetByNumber_Missing(t *testing.T) {
	mockRepo := new(MockInvoiceRepository)
	mockRepo.On("FindByNumber", mock.Anything, "INV-000000-000").Return(nil, nil)

	service := NewService(mockRepo, stubNumberGenerator{})

	_, err := service.GetByNumber(context.Background(), "INV-000000-000")
	assert.ErrorIs(t, err, ErrNotFound)
}

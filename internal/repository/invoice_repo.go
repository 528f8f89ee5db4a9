package repository

import (
	"context"
	"errors"
	"time"

	"repairshop/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type invoiceModel struct {
	ID              int64               `gorm:"column:id;primaryKey"`
	InvoiceNumber   string              `gorm:"column:invoice_number;uniqueIndex"`
	CustomerName    string              `gorm:"column:customer_name"`
	CustomerPhone   string              `gorm:"column:customer_phone;index"`
	CustomerAddress *string             `gorm:"column:customer_address"`
	Items           domain.InvoiceItems `gorm:"column:items;type:text"`
	Subtotal        decimal.Decimal     `gorm:"column:subtotal;type:decimal(12,2)"`
	Discount        decimal.Decimal     `gorm:"column:discount;type:decimal(12,2)"`
	TaxPercent      decimal.Decimal     `gorm:"column:tax_percent;type:decimal(5,2)"`
	TaxAmount       decimal.Decimal     `gorm:"column:tax_amount;type:decimal(12,2)"`
	Total           decimal.Decimal     `gorm:"column:total;type:decimal(12,2)"`
	AmountPaid      decimal.Decimal     `gorm:"column:amount_paid;type:decimal(12,2)"`
	PaymentMethod   *string             `gorm:"column:payment_method"`
	PaymentStatus   string              `gorm:"column:payment_status;index"`
	PaymentDate     *time.Time          `gorm:"column:payment_date"`
	Notes           *string             `gorm:"column:notes;type:text"`
	CreatedAt       time.Time           `gorm:"column:created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at"`
}

func (invoiceModel) TableName() string { return "invoices" }

func toDomainInvoice(m invoiceModel) *domain.Invoice {
	return &domain.Invoice{
		ID:              m.ID,
		InvoiceNumber:   m.InvoiceNumber,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		CustomerAddress: strVal(m.CustomerAddress),
		Items:           m.Items,
		Subtotal:        m.Subtotal,
		Discount:        m.Discount,
		TaxPercent:      m.TaxPercent,
		TaxAmount:       m.TaxAmount,
		Total:           m.Total,
		AmountPaid:      m.AmountPaid,
		PaymentMethod:   strVal(m.PaymentMethod),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		PaymentDate:     m.PaymentDate,
		Notes:           strVal(m.Notes),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toInvoiceModel(i *domain.Invoice) invoiceModel {
	return invoiceModel{
		ID:              i.ID,
		InvoiceNumber:   i.InvoiceNumber,
		CustomerName:    i.CustomerName,
		CustomerPhone:   i.CustomerPhone,
		CustomerAddress: strPtr(i.CustomerAddress),
		Items:           i.Items,
		Subtotal:        i.Subtotal,
		Discount:        i.Discount,
		TaxPercent:      i.TaxPercent,
		TaxAmount:       i.TaxAmount,
		Total:           i.Total,
		AmountPaid:      i.AmountPaid,
		PaymentMethod:   strPtr(i.PaymentMethod),
		PaymentStatus:   string(i.PaymentStatus),
		PaymentDate:     i.PaymentDate,
		Notes:           strPtr(i.Notes),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, i *domain.Invoice) error {
	m := toInvoiceModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainInvoice(m)
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var m invoiceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInvoice(m), nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	var rows []invoiceModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Invoice, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainInvoice(m))
	}
	return out, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Invoice, error) {
	tx := r.db.WithContext(ctx).Model(&invoiceModel{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&invoiceModel{}, id).Error
}

// FindByNumber treats a missing row as a nil result, not an error.
func (r *InvoiceRepository) FindByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	var m invoiceModel
	tx := r.db.WithContext(ctx).Where("invoice_number = ?", number).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainInvoice(m), nil
}

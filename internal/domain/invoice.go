package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type InvoiceItem struct {
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceItems is stored as a single JSON column.
type InvoiceItems []InvoiceItem

func (items InvoiceItems) Value() (driver.Value, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (items *InvoiceItems) Scan(value any) error {
	if value == nil {
		*items = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("invoice items: unsupported column type %T", value)
	}
}

type Invoice struct {
	ID              int64           `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	Items           InvoiceItems    `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

package billing

import "github.com/shopspring/decimal"

type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber   string               `json:"invoice_number"`
	CustomerName    string               `json:"customer_name" validate:"required"`
	CustomerPhone   string               `json:"customer_phone" validate:"required"`
	CustomerAddress string               `json:"customer_address"`
	Items           []InvoiceItemRequest `json:"items"`
	Discount        decimal.Decimal      `json:"discount"`
	TaxPercent      decimal.Decimal      `json:"tax_percent"`
	AmountPaid      decimal.Decimal      `json:"amount_paid"`
	PaymentMethod   string               `json:"payment_method"`
	Notes           string               `json:"notes"`
}

// UpdateInvoiceRequest is a partial patch. Item changes replace the whole
// item list and recompute every derived amount.
type UpdateInvoiceRequest struct {
	CustomerName    *string              `json:"customer_name"`
	CustomerPhone   *string              `json:"customer_phone"`
	CustomerAddress *string              `json:"customer_address"`
	Items           []InvoiceItemRequest `json:"items"`
	Discount        *decimal.Decimal     `json:"discount"`
	TaxPercent      *decimal.Decimal     `json:"tax_percent"`
	AmountPaid      *decimal.Decimal     `json:"amount_paid"`
	PaymentMethod   *string              `json:"payment_method"`
	Notes           *string              `json:"notes"`
}

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

package billing

import (
	"github.com/shopspring/decimal"

	"repairshop/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ItemAmount is qty times rate, rounded to paise.
func ItemAmount(qty, rate decimal.Decimal) decimal.Decimal {
	return qty.Mul(rate).Round(2)
}

func Subtotal(items domain.InvoiceItems) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum.Round(2)
}

// TaxAmount applies the tax percentage to the discounted subtotal.
func TaxAmount(subtotal, discount, taxPercent decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Mul(taxPercent).Div(hundred).Round(2)
}

func Total(subtotal, discount, taxAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(taxAmount).Round(2)
}

// PaymentStatusFor classifies a payment. A zero amount against a zero total
// is still unpaid.
func PaymentStatusFor(amountPaid, total decimal.Decimal) domain.PaymentStatus {
	switch {
	case amountPaid.LessThanOrEqual(decimal.Zero):
		return domain.PaymentUnpaid
	case amountPaid.GreaterThanOrEqual(total):
		return domain.PaymentPaid
	default:
		return domain.PaymentPartial
	}
}

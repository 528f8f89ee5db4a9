package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"repairshop/internal/domain"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestItemAmount(t *testing.T) {
	assert.True(t, ItemAmount(d("2"), d("450")).Equal(d("900")))
	assert.True(t, ItemAmount(d("1.5"), d("120")).Equal(d("180")))
	assert.True(t, ItemAmount(d("3"), d("33.333")).Equal(d("100")))
}

func TestSubtotal(t *testing.T) {
	items := domain.InvoiceItems{
		{Description: "Winding Replacement", Qty: d("1"), Rate: d("450"), Amount: d("450")},
		{Description: "Capacitor 2.5 MFD", Qty: d("2"), Rate: d("45"), Amount: d("90")},
	}
	assert.True(t, Subtotal(items).Equal(d("540")))
	assert.True(t, Subtotal(nil).Equal(decimal.Zero))
}

func TestTotals_DiscountBeforeTax(t *testing.T) {
	subtotal := d("800")
	discount := d("50")
	taxPercent := d("10")

	tax := TaxAmount(subtotal, discount, taxPercent)
	assert.True(t, tax.Equal(d("75")), "tax applies to the discounted subtotal")

	total := Total(subtotal, discount, tax)
	assert.True(t, total.Equal(d("825")))
}

func TestTotals_ZeroTax(t *testing.T) {
	tax := TaxAmount(d("500"), d("0"), d("0"))
	assert.True(t, tax.Equal(decimal.Zero))
	assert.True(t, Total(d("500"), d("0"), tax).Equal(d("500")))
}

func TestPaymentStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		paid   string
		total  string
		expect domain.PaymentStatus
	}{
		{"nothing paid", "0", "825", domain.PaymentUnpaid},
		{"partly paid", "400", "825", domain.PaymentPartial},
		{"exactly paid", "825", "825", domain.PaymentPaid},
		{"overpaid", "900", "825", domain.PaymentPaid},
		{"zero against zero total", "0", "0", domain.PaymentUnpaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, PaymentStatusFor(d(tc.paid), d(tc.total)))
		})
	}
}

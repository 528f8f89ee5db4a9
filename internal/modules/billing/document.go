package billing

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"repairshop/internal/domain"
)

// ShopInfo is stamped on printable documents.
type ShopInfo struct {
	Name    string
	Phone   string
	Address string
}

func money(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// Document renders the printable invoice. Amounts come straight off the
// stored invoice, nothing is recomputed at render time.
func Document(inv *domain.Invoice, shop ShopInfo) string {
	var b strings.Builder

	b.WriteString("<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>Invoice %s</title>\n", html.EscapeString(inv.InvoiceNumber))
	b.WriteString(`<style>
body { font-family: Arial, sans-serif; padding: 20px; max-width: 700px; margin: 0 auto; }
.header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 10px; margin-bottom: 15px; }
.meta { display: flex; justify-content: space-between; font-size: 13px; margin-bottom: 15px; }
table { width: 100%; border-collapse: collapse; font-size: 13px; }
th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
th { background: #f0f0f0; }
td.num, th.num { text-align: right; }
.totals { margin-top: 10px; width: 260px; margin-left: auto; font-size: 13px; }
.totals .row { display: flex; justify-content: space-between; padding: 3px 0; }
.totals .grand { font-weight: bold; border-top: 1px solid #000; padding-top: 5px; }
.status { text-align: center; margin-top: 15px; font-weight: bold; text-transform: uppercase; }
.footer { margin-top: 25px; text-align: center; font-size: 11px; border-top: 1px dashed #000; padding-top: 10px; }
@media print { body { padding: 10px; } }
</style>
</head>
<body>
`)

	b.WriteString("<div class=\"header\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(shop.Name))
	if shop.Address != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(shop.Address))
	}
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(shop.Phone))
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"meta\">\n<div>\n")
	fmt.Fprintf(&b, "<p><strong>Invoice:</strong> %s</p>\n", html.EscapeString(inv.InvoiceNumber))
	fmt.Fprintf(&b, "<p><strong>Date:</strong> %s</p>\n", inv.CreatedAt.Format("02/01/2006"))
	b.WriteString("</div>\n<div>\n")
	fmt.Fprintf(&b, "<p><strong>Billed To:</strong> %s</p>\n", html.EscapeString(inv.CustomerName))
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(inv.CustomerPhone))
	if inv.CustomerAddress != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(inv.CustomerAddress))
	}
	b.WriteString("</div>\n</div>\n")

	b.WriteString("<table>\n<tr><th>#</th><th>Description</th><th class=\"num\">Qty</th><th class=\"num\">Rate</th><th class=\"num\">Amount</th></tr>\n")
	for i, it := range inv.Items {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td></tr>\n",
			i+1, html.EscapeString(it.Description), it.Qty.String(), money(it.Rate), money(it.Amount))
	}
	b.WriteString("</table>\n")

	b.WriteString("<div class=\"totals\">\n")
	totalRow := func(label string, v decimal.Decimal, class string) {
		fmt.Fprintf(&b, "<div class=\"row %s\"><span>%s</span><span>%s</span></div>\n",
			class, label, money(v))
	}
	totalRow("Subtotal", inv.Subtotal, "")
	if inv.Discount.IsPositive() {
		totalRow("Discount", inv.Discount.Neg(), "")
	}
	if inv.TaxAmount.IsPositive() {
		totalRow(fmt.Sprintf("Tax (%s%%)", inv.TaxPercent.String()), inv.TaxAmount, "")
	}
	totalRow("Total", inv.Total, "grand")
	totalRow("Paid", inv.AmountPaid, "")
	totalRow("Balance", inv.Total.Sub(inv.AmountPaid), "")
	b.WriteString("</div>\n")

	fmt.Fprintf(&b, "<div class=\"status\">%s</div>\n", html.EscapeString(string(inv.PaymentStatus)))

	b.WriteString("<div class=\"footer\">\n")
	fmt.Fprintf(&b, "<p>Thank you for choosing %s!</p>\n", html.EscapeString(shop.Name))
	b.WriteString("</div>\n</body>\n</html>\n")

	return b.String()
}

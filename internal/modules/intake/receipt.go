package intake

import (
	"fmt"
	"html"
	"strings"

	"repairshop/internal/domain"
)

// ShopInfo is stamped on printable documents.
type ShopInfo struct {
	Name  string
	Phone string
}

// Receipt renders the printable intake receipt. The serial is displayed
// prominently because customers bring the printed copy back at pickup;
// the field set and order are fixed, the markup itself is not load-bearing.
func Receipt(e *domain.DeviceEntry, shop ShopInfo) string {
	var b strings.Builder

	b.WriteString("<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>Device Receipt - %s</title>\n", html.EscapeString(e.SerialNumber))
	b.WriteString(`<style>
body { font-family: Arial, sans-serif; padding: 20px; max-width: 400px; margin: 0 auto; }
.header { text-align: center; border-bottom: 2px dashed #000; padding-bottom: 10px; margin-bottom: 15px; }
.serial { font-size: 24px; font-weight: bold; text-align: center; padding: 10px; background: #f0f0f0; margin: 10px 0; }
.row { display: flex; justify-content: space-between; padding: 5px 0; border-bottom: 1px dotted #ccc; font-size: 12px; }
.label { font-weight: bold; }
.footer { margin-top: 20px; text-align: center; font-size: 10px; border-top: 2px dashed #000; padding-top: 10px; }
@media print { body { padding: 10px; } }
</style>
</head>
<body>
`)

	b.WriteString("<div class=\"header\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(shop.Name))
	b.WriteString("<p>Device Repair Receipt</p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(shop.Phone))
	b.WriteString("</div>\n")

	serial := e.SerialNumber
	if serial == "" {
		serial = "N/A"
	}
	fmt.Fprintf(&b, "<div class=\"serial\">%s</div>\n", html.EscapeString(serial))
	b.WriteString("<p class=\"serial-hint\">Write this number on device</p>\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "<div class=\"row\"><span class=\"label\">%s:</span><span>%s</span></div>\n",
			label, html.EscapeString(value))
	}
	orDash := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}

	row("Date", e.ReceivedDate.Format("02/01/2006"))
	row("Customer", e.CustomerName)
	row("Mobile", e.MobileNumber)
	row("Village", orDash(e.VillageName))
	row("Device", e.DeviceType)
	row("Brand", orDash(e.DeviceBrand))
	if e.WindingType != "" {
		row("Winding", string(e.WindingType))
	}
	if e.MotorHP != "" {
		row("HP", e.MotorHP)
	}
	row("Problem", e.ProblemDescription)
	if e.AccessoriesReceived != "" {
		row("Accessories", e.AccessoriesReceived)
	}

	estCost := "TBD"
	if e.EstimatedCost > 0 {
		estCost = fmt.Sprintf("₹%.0f", e.EstimatedCost)
	}
	row("Est. Cost", estCost)
	row("Advance", fmt.Sprintf("₹%.0f", e.AdvancePaid))

	b.WriteString("<div class=\"footer\">\n")
	b.WriteString("<p>Please bring this receipt when collecting your device</p>\n")
	fmt.Fprintf(&b, "<p>Thank you for choosing %s!</p>\n", html.EscapeString(shop.Name))
	b.WriteString("</div>\n</body>\n</html>\n")

	return b.String()
}

package booking

import (
	"fmt"
	"html"
	"strings"

	"repairshop/internal/domain"
)

// JobCard renders the printable job card handed to the assigned technician.
func JobCard(b *domain.Booking, shopName string) string {
	var sb strings.Builder

	sb.WriteString("<html>\n<head>\n")
	fmt.Fprintf(&sb, "<title>Job Card - %d</title>\n", b.ID)
	sb.WriteString(`<style>
body { font-family: Arial, sans-serif; padding: 20px; }
.header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 10px; margin-bottom: 20px; }
.section { margin-bottom: 15px; }
.section-title { font-weight: bold; background: #f0f0f0; padding: 5px; }
.row { padding: 4px 0; }
.label { font-weight: bold; }
</style>
</head>
<body>
`)

	fmt.Fprintf(&sb, "<div class=\"header\"><h1>%s</h1><p>Repair Job Card</p></div>\n",
		html.EscapeString(shopName))

	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&sb, "<div class=\"row\"><span class=\"label\">%s:</span> %s</div>\n",
			label, html.EscapeString(value))
	}

	sb.WriteString("<div class=\"section\"><div class=\"section-title\">Customer</div>\n")
	row("Job #", fmt.Sprintf("%d", b.ID))
	row("Name", b.CustomerName)
	row("Phone", b.Phone)
	row("Email", b.Email)
	sb.WriteString("</div>\n")

	sb.WriteString("<div class=\"section\"><div class=\"section-title\">Device</div>\n")
	row("Device", b.DeviceType)
	row("Brand", b.Brand)
	row("Issue", b.IssueDescription)
	sb.WriteString("</div>\n")

	sb.WriteString("<div class=\"section\"><div class=\"section-title\">Job</div>\n")
	row("Status", string(b.Status))
	row("Priority", string(b.Priority))
	row("Technician", b.TechnicianName)
	if b.ScheduledDate != nil {
		row("Scheduled", b.ScheduledDate.Format("02/01/2006"))
	}
	if b.EstimatedCost > 0 {
		row("Est. Cost", fmt.Sprintf("₹%.0f", b.EstimatedCost))
	}
	row("Notes", b.Notes)
	sb.WriteString("</div>\n</body>\n</html>\n")

	return sb.String()
}

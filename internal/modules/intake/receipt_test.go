package intake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"repairshop/internal/domain"
)

func TestReceipt_ContainsKeyFields(t *testing.T) {
	e := &domain.DeviceEntry{
		SerialNumber:       "RE260829042",
		CustomerName:       "Murugan",
		MobileNumber:       "9876543210",
		DeviceType:         "Ceiling Fan",
		ProblemDescription: "Not rotating",
		EstimatedCost:      450,
		AdvancePaid:        100,
		ReceivedDate:       time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}

	out := Receipt(e, ShopInfo{Name: "Sri Raam Electricals", Phone: "+91 98765 43210"})

	assert.Contains(t, out, "RE260829042")
	assert.Contains(t, out, "Murugan")
	assert.Contains(t, out, "29/08/2026")
	assert.Contains(t, out, "₹450")
	assert.Contains(t, out, "₹100")
	assert.Contains(t, out, "Sri Raam Electricals")
}

func TestReceipt_EscapesCustomerInput(t *testing.T) {
	e := &domain.DeviceEntry{
		SerialNumber:       "RE260829001",
		CustomerName:       `<script>alert("x")</script>`,
		DeviceType:         "Fan",
		ProblemDescription: "a & b < c",
	}

	out := Receipt(e, ShopInfo{Name: "Shop"})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestReceipt_MissingCostShowsTBD(t *testing.T) {
	e := &domain.DeviceEntry{
		SerialNumber:       "RE260829002",
		CustomerName:       "Kala",
		DeviceType:         "Iron Box",
		ProblemDescription: "No heat",
	}

	out := Receipt(e, ShopInfo{Name: "Shop"})

	assert.True(t, strings.Contains(out, "TBD"))
}

package domain

import "time"

type DeviceEntryStatus string

const (
	DeviceReceived  DeviceEntryStatus = "received"
	DeviceInRepair  DeviceEntryStatus = "in-repair"
	DeviceReady     DeviceEntryStatus = "ready"
	DeviceDelivered DeviceEntryStatus = "delivered"
	DeviceCancelled DeviceEntryStatus = "cancelled"
)

type WindingType string

const (
	WindingCopper    WindingType = "copper"
	WindingAluminium WindingType = "aluminium"
	WindingOther     WindingType = "other"
)

// DeviceEntry is a walk-in repair intake record. The serial number is the
// shop-assigned identifier written on the physical device, independent of ID.
type DeviceEntry struct {
	ID                  int64             `json:"id"`
	SerialNumber        string            `json:"serial_number"`
	CustomerName        string            `json:"customer_name"`
	MobileNumber        string            `json:"mobile_number"`
	VillageName         string            `json:"village_name,omitempty"`
	Address             string            `json:"address,omitempty"`
	DeviceType          string            `json:"device_type"`
	DeviceBrand         string            `json:"device_brand,omitempty"`
	DeviceModel         string            `json:"device_model,omitempty"`
	WindingType         WindingType       `json:"winding_type,omitempty"`
	MotorHP             string            `json:"motor_hp,omitempty"`
	ProblemDescription  string            `json:"problem_description"`
	AccessoriesReceived string            `json:"accessories_received,omitempty"`
	EstimatedCost       float64           `json:"estimated_cost"`
	AdvancePaid         float64           `json:"advance_paid"`
	FinalCost           float64           `json:"final_cost"`
	Status              DeviceEntryStatus `json:"status"`
	ReceivedDate        time.Time         `json:"received_date"`
	ExpectedDelivery    *time.Time        `json:"expected_delivery,omitempty"`
	DeliveredDate       *time.Time        `json:"delivered_date,omitempty"`
	TechnicianName      string            `json:"technician_name,omitempty"`
	Notes               string            `json:"notes,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

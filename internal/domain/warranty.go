package domain

import "time"

type WarrantyStatus string

const (
	WarrantyActive  WarrantyStatus = "active"
	WarrantyExpired WarrantyStatus = "expired"
	WarrantyClaimed WarrantyStatus = "claimed"
	WarrantyVoid    WarrantyStatus = "void"
)

// Warranty is a time-bounded guarantee tied to a completed service.
// Status is a business state set by staff; "currently valid" additionally
// requires end_date >= today. Records are not auto-expired on date passage.
type Warranty struct {
	ID                 int64          `json:"id"`
	CustomerName       string         `json:"customer_name"`
	CustomerPhone      string         `json:"customer_phone"`
	DeviceType         string         `json:"device_type"`
	DeviceBrand        string         `json:"device_brand,omitempty"`
	SerialNumber       string         `json:"serial_number,omitempty"`
	StartDate          time.Time      `json:"start_date"`
	EndDate            time.Time      `json:"end_date"`
	ServiceDescription string         `json:"service_description,omitempty"`
	TechnicianName     string         `json:"technician_name,omitempty"`
	Status             WarrantyStatus `json:"status"`
	ClaimCount         int            `json:"claim_count"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// WarrantyClaim is one invocation of a warranty. Creating a claim also
// increments the parent warranty's claim counter store-side.
type WarrantyClaim struct {
	ID               int64     `json:"id"`
	WarrantyID       int64     `json:"warranty_id"`
	IssueDescription string    `json:"issue_description"`
	Resolution       string    `json:"resolution,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

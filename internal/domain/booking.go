package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

type BookingPriority string

const (
	PriorityLow    BookingPriority = "low"
	PriorityMedium BookingPriority = "medium"
	PriorityHigh   BookingPriority = "high"
)

// Booking is a repair request submitted remotely from the public site,
// as opposed to a DeviceEntry which is a walk-in intake.
type Booking struct {
	ID               int64           `json:"id"`
	CustomerName     string          `json:"customer_name"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email,omitempty"`
	DeviceType       string          `json:"device_type"`
	Brand            string          `json:"brand,omitempty"`
	IssueDescription string          `json:"issue_description"`
	Status           BookingStatus   `json:"status"`
	Priority         BookingPriority `json:"priority"`
	EstimatedCost    float64         `json:"estimated_cost"`
	ActualCost       float64         `json:"actual_cost"`
	TechnicianName   string          `json:"technician_name,omitempty"`
	TechnicianPhone  string          `json:"technician_phone,omitempty"`
	ScheduledDate    *time.Time      `json:"scheduled_date,omitempty"`
	CompletedDate    *time.Time      `json:"completed_date,omitempty"`
	WarrantyUntil    *time.Time      `json:"warranty_until,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BookingStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgRepairCost     float64 `json:"avg_repair_cost"`
}

type PopularDevice struct {
	DeviceType  string `json:"device_type"`
	RepairCount int64  `json:"repair_count"`
}

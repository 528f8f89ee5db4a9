package domain

import "time"

// VIP thresholds used by the booking-aggregation fallback.
const (
	VIPMinRepairs = 3
	VIPMinSpent   = 5000
)

// Customer is a stored customer record. When no rows exist the customer list
// is synthesized by aggregating bookings per phone number; synthesized rows
// have ID 0 and are never persisted.
type Customer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	TotalRepairs int       `json:"total_repairs"`
	TotalSpent   float64   `json:"total_spent"`
	IsVIP        bool      `json:"is_vip"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

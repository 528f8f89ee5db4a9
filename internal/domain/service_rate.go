package domain

import "time"

// ServiceRate is a published base price for a repair service on a device type.
type ServiceRate struct {
	ID          int64     `json:"id"`
	DeviceType  string    `json:"device_type"`
	ServiceName string    `json:"service_name"`
	BasePrice   float64   `json:"base_price"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

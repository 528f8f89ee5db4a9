package events

import "time"

// Event types pushed to connected back-office clients.
const (
	TypeBookingCreated      = "booking.created"
	TypeContactReceived     = "contact.received"
	TypeDeviceRegistered    = "device.registered"
	TypeDeviceStatusChanged = "device.status_changed"
)

type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data,omitempty"`
}

func New(eventType string, data any) Event {
	return Event{
		Type: eventType,
		At:   time.Now(),
		Data: data,
	}
}

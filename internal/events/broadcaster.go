package events

import "repairshop/internal/domain"

// Broadcaster adapts the hub to the notification interfaces the business
// modules expect. All methods are fire-and-forget.
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

func (b *Broadcaster) DeviceRegistered(e *domain.DeviceEntry) {
	b.hub.Broadcast(New(TypeDeviceRegistered, e))
}

func (b *Broadcaster) DeviceStatusChanged(e *domain.DeviceEntry) {
	b.hub.Broadcast(New(TypeDeviceStatusChanged, e))
}

func (b *Broadcaster) BookingCreated(bk *domain.Booking) {
	b.hub.Broadcast(New(TypeBookingCreated, bk))
}

func (b *Broadcaster) ContactReceived(c *domain.Contact) {
	b.hub.Broadcast(New(TypeContactReceived, c))
}

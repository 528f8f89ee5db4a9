package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans out admin events to every connected websocket client.
// Broadcast never blocks a mutation: a write failure just drops the client.
type Hub struct {
	connections map[int64]*websocket.Conn
	nextID      int64
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.connections[h.nextID] = conn
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, id)
	}
}

func (h *Hub) Broadcast(evt Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(evt); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

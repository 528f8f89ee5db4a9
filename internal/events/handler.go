package events

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin is already enforced by the CORS middleware on this route group
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events/ws", h.Subscribe)
}

// Subscribe upgrades the connection and keeps it registered until the
// client goes away. The read loop only exists to detect the close.
func (h *Handler) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("events: websocket upgrade failed: %v", err)
		return
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

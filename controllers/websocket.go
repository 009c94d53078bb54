package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Ezequiel060805/allge-care-apis/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebsocketHub tracks connected dashboard clients and pushes new readings and
// alert notifications to them. All methods are safe for concurrent use.
type WebsocketHub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewWebsocketHub() *WebsocketHub {
	return &WebsocketHub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client goes away. Incoming messages are drained and discarded.
func (h *WebsocketHub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastUpdate sends a new reading to every connected client.
func (h *WebsocketHub) BroadcastUpdate(m models.Medicion) {
	msg, _ := json.Marshal(m)
	h.broadcast(msg)
}

// BroadcastNotification sends an alert to every connected client.
func (h *WebsocketHub) BroadcastNotification(a models.Alerta) {
	msg, _ := json.Marshal(gin.H{
		"message": "Out-of-range reading detected",
		"alerta":  a,
	})
	h.broadcast(msg)
}

func (h *WebsocketHub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

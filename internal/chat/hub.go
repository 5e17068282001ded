// Package chat maintains the live websocket connections, grouped into one
// room per user id. The hub only fans out; message semantics live in the
// chat service.
package chat

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Frame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*websocket.Conn]bool
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*websocket.Conn]bool),
		logger: logger,
	}
}

// Register joins the connection to the user's room.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[userID][conn] = true
}

func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, userID)
		}
	}
}

// Push sends the event to every connection in the room. Best-effort: a
// failed write closes that connection and drops it from the room; nothing
// is queued for offline users.
func (h *Hub) Push(userID string, event string, payload interface{}) {
	frame, err := json.Marshal(Frame{Event: event, Data: payload})
	if err != nil {
		h.logger.Warn("chat frame marshal failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.rooms[userID] {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.logger.Debug("chat push failed, dropping connection",
				zap.String("user_id", userID), zap.Error(err))
			conn.Close()
			delete(h.rooms[userID], conn)
		}
	}
	if len(h.rooms[userID]) == 0 {
		delete(h.rooms, userID)
	}
}

package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/restobar-app/backend/utils"
)

// Event types pushed to connected clients. Events carry no payload: clients
// re-fetch whatever view they are showing (at-most-once, best-effort).
const (
	EventOrdersChanged = "pedidos_actualizados"
	EventTablesChanged = "mesas_actualizadas"
	EventMenusChanged  = "menus_actualizados"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Hub holds every connected client (mesero, cocinero, admin panels) and
// broadcasts change events to all of them. It implements services.Notifier.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// Register adds a connection together with the role it authenticated as.
func (h *Hub) Register(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// Unregister drops a connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) OrdersChanged() {
	h.broadcast(Message{Event: EventOrdersChanged})
}

func (h *Hub) TablesChanged() {
	h.broadcast(Message{Event: EventTablesChanged})
}

func (h *Hub) MenusChanged() {
	h.broadcast(Message{Event: EventMenusChanged})
}

func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling ws message: %v", err)
		return
	}

	for conn, role := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			// A dead client must not break the fan-out.
			utils.ErrorLogger.Printf("Error sending ws message to %s client: %v", role, err)
			continue
		}
	}
}

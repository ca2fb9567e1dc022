package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/restobar-app/backend/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSController struct {
	Hub *ws.Hub
}

func NewWSController(hub *ws.Hub) *WSController {
	return &WSController{Hub: hub}
}

// Handler -> GET /ws websocket endpoint. Clients receive the broadcast
// change events; inbound messages are drained and ignored.
func (wc *WSController) Handler(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := roleInterface.(string)

	switch role {
	case "admin", "mesero", "cocinero":
	default:
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	wc.Hub.Register(conn, role)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	wc.Hub.Unregister(conn)
}

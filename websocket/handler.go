package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket upgrades an already authenticated admin request and
// registers the connection with the hub until the peer goes away
func HandleWebSocket(c echo.Context, hub *Hub, email string) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := newClient(email, conn)

	hub.register <- client
	go client.writePump(hub.logger)

	client.enqueue(Notification{
		Type:    "connected",
		Message: "Lead feed connected",
	})

	// The feed is push-only; reading just detects disconnection
	go func() {
		defer func() {
			hub.unregister <- client
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

package handler

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"grover-graphql/internal/ws"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// RequireUpgrade rejects plain HTTP requests to the feed.
func (h *WSHandler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.SendStatus(fiber.StatusUpgradeRequired)
}

// Feed streams change events until the client goes away.
func (h *WSHandler) Feed() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		select {
		case h.hub.Register <- c:
		case <-h.hub.Done():
			return
		}
		defer func() {
			select {
			case h.hub.Unregister <- c:
			case <-h.hub.Done():
			}
		}()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	})
}

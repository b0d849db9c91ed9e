package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	ws "github.com/mkravets/safechat/internal/websocket"
)

// WebSocketHandler upgrades connections and hands them to the relay.
type WebSocketHandler struct {
	hub      *ws.Hub
	relay    ws.ClientMessageHandler
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *ws.Hub, relay ws.ClientMessageHandler) *WebSocketHandler {
	return &WebSocketHandler{
		hub:   hub,
		relay: relay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict origin in prod
				return true
			},
		},
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn)

	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h.relay)
}

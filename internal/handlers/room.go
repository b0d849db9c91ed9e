package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/safechat/internal/presence"
	ws "github.com/mkravets/safechat/internal/websocket"
)

type RoomHandler struct {
	presence *presence.Counter
	hub      *ws.Hub
}

func NewRoomHandler(counter *presence.Counter, hub *ws.Hub) *RoomHandler {
	return &RoomHandler{presence: counter, hub: hub}
}

// GetPresence exposes the membership counter for a room. Observability
// only; the relay never reads these numbers.
func (h *RoomHandler) GetPresence(c *gin.Context) {
	website := c.Param("room")

	c.JSON(http.StatusOK, gin.H{
		"room":        website,
		"count":       h.presence.Count(website),
		"connections": h.hub.RoomSize(website),
	})
}
